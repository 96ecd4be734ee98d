package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sanuei/YoutubePlanner/internal/repository"
)

// PurgeService hard-deletes soft-deleted channels and mind maps once they
// age past the retention window. Scheduled from main via cron.
type PurgeService struct {
	Channels  repository.ChannelRepository
	MindMaps  repository.MindMapRepository
	Retention time.Duration
	Logger    *zap.Logger
}

func (s *PurgeService) Run(ctx context.Context) {
	before := time.Now().UTC().Add(-s.Retention)

	channels, err := s.Channels.PurgeDeletedChannels(ctx, before)
	if err != nil {
		s.Logger.Warn("channel purge failed", zap.Error(err))
	}
	mindMaps, err := s.MindMaps.PurgeDeletedMindMaps(ctx, before)
	if err != nil {
		s.Logger.Warn("mind map purge failed", zap.Error(err))
	}
	if channels > 0 || mindMaps > 0 {
		s.Logger.Info("purged soft-deleted rows",
			zap.Int64("channels", channels),
			zap.Int64("mind_maps", mindMaps),
		)
	}
}
