package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/sanuei/YoutubePlanner/internal/apperr"
	"github.com/sanuei/YoutubePlanner/internal/dto"
	"github.com/sanuei/YoutubePlanner/internal/models"
	"github.com/sanuei/YoutubePlanner/internal/repository"
)

type ChannelService struct {
	Repo    repository.ChannelRepository
	Scripts repository.ScriptRepository
	Logger  *zap.Logger
}

func (s *ChannelService) Create(ctx context.Context, ownerID int64, req dto.CreateChannelRequest) (*dto.ChannelResponse, error) {
	exists, err := s.Repo.ChannelExistsByName(ctx, ownerID, req.ChannelName)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if exists {
		return nil, apperr.Conflict("channel name already exists")
	}

	channel := &models.Channel{
		ChannelName: req.ChannelName,
		UserID:      ownerID,
	}
	if err := s.Repo.CreateChannel(ctx, channel); err != nil {
		return nil, apperr.Internal(err)
	}
	return channelToResponse(channel), nil
}

func (s *ChannelService) List(ctx context.Context, ownerID int64, q dto.ListQuery) (*dto.PageResponse[dto.ChannelResponse], error) {
	ps := repository.PageSort{Page: q.Page, Limit: q.Limit, SortBy: q.SortBy, Order: q.Order}.Normalized()
	items, total, err := s.Repo.ListChannels(ctx, repository.ListChannelsParams{
		UserID:   ownerID,
		Search:   q.Search,
		PageSort: ps,
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	resp := make([]dto.ChannelResponse, 0, len(items))
	for i := range items {
		resp = append(resp, *channelToResponse(&items[i]))
	}
	return dto.NewPageResponse(resp, ps.Page, ps.Limit, total), nil
}

func (s *ChannelService) Get(ctx context.Context, ownerID, channelID int64) (*dto.ChannelDetailResponse, error) {
	channel, err := s.ownedChannel(ctx, ownerID, channelID)
	if err != nil {
		return nil, err
	}

	scriptsCount, err := s.Scripts.CountScriptsByChannel(ctx, channelID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &dto.ChannelDetailResponse{
		ChannelResponse: *channelToResponse(channel),
		ScriptsCount:    scriptsCount,
	}, nil
}

func (s *ChannelService) Update(ctx context.Context, ownerID, channelID int64, req dto.UpdateChannelRequest) (*dto.ChannelResponse, error) {
	channel, err := s.ownedChannel(ctx, ownerID, channelID)
	if err != nil {
		return nil, err
	}

	if channel.ChannelName != req.ChannelName {
		exists, err := s.Repo.ChannelExistsByName(ctx, ownerID, req.ChannelName)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if exists {
			return nil, apperr.Conflict("channel name already exists")
		}
	}

	channel.ChannelName = req.ChannelName
	if err := s.Repo.UpdateChannel(ctx, channel); err != nil {
		return nil, apperr.Internal(err)
	}
	return channelToResponse(channel), nil
}

// Delete is soft: the row stays until the purge job removes it.
func (s *ChannelService) Delete(ctx context.Context, ownerID, channelID int64) error {
	if _, err := s.ownedChannel(ctx, ownerID, channelID); err != nil {
		return err
	}
	if err := s.Repo.SoftDeleteChannel(ctx, channelID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *ChannelService) ownedChannel(ctx context.Context, ownerID, channelID int64) (*models.Channel, error) {
	channel, err := s.Repo.GetChannelByID(ctx, channelID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if channel == nil {
		return nil, apperr.NotFound("channel")
	}
	if channel.UserID != ownerID {
		return nil, apperr.Forbidden("no access to this channel")
	}
	return channel, nil
}

func channelToResponse(c *models.Channel) *dto.ChannelResponse {
	return &dto.ChannelResponse{
		ChannelID:   c.ChannelID,
		ChannelName: c.ChannelName,
		UserID:      c.UserID,
		CreatedAt:   c.CreatedAt,
	}
}
