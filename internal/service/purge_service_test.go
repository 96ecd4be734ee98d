package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/sanuei/YoutubePlanner/internal/config"
	"github.com/sanuei/YoutubePlanner/internal/models"
)

func adminCfg() config.AdminConfig {
	return config.AdminConfig{
		Bootstrap: true,
		Username:  "admin",
		Password:  "bootpass",
		Email:     "admin@example.com",
	}
}

func TestPurgeRespectsRetention(t *testing.T) {
	store := newFakeStore()
	ctx := context.Background()
	owner := seedUser(store, "alice")

	old := &models.Channel{ChannelName: "old", UserID: owner}
	recent := &models.Channel{ChannelName: "recent", UserID: owner}
	_ = store.CreateChannel(ctx, old)
	_ = store.CreateChannel(ctx, recent)
	_ = store.SoftDeleteChannel(ctx, old.ChannelID)
	_ = store.SoftDeleteChannel(ctx, recent.ChannelID)
	store.channels[old.ChannelID].UpdatedAt = time.Now().Add(-48 * time.Hour)

	oldMap := &models.MindMap{Title: "old", UserID: owner}
	_ = store.CreateMindMap(ctx, oldMap)
	_ = store.SoftDeleteMindMap(ctx, oldMap.MindMapID)
	store.mindMaps[oldMap.MindMapID].UpdatedAt = time.Now().Add(-48 * time.Hour)

	svc := &PurgeService{
		Channels:  store,
		MindMaps:  store,
		Retention: 24 * time.Hour,
		Logger:    zap.NewNop(),
	}
	svc.Run(ctx)

	if _, ok := store.channels[old.ChannelID]; ok {
		t.Fatal("old channel not purged")
	}
	if _, ok := store.channels[recent.ChannelID]; !ok {
		t.Fatal("recent channel purged too early")
	}
	if _, ok := store.mindMaps[oldMap.MindMapID]; ok {
		t.Fatal("old mind map not purged")
	}
}

func TestEnsureAdminSeedsOnce(t *testing.T) {
	store := newFakeStore()
	ctx := context.Background()

	cfg := adminCfg()
	if err := EnsureAdmin(ctx, store, cfg, zap.NewNop()); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	if n, _ := store.CountUsersByRole(ctx, models.RoleAdmin); n != 1 {
		t.Fatalf("admins = %d, want 1", n)
	}

	// Idempotent: a second boot does not add another admin.
	if err := EnsureAdmin(ctx, store, cfg, zap.NewNop()); err != nil {
		t.Fatalf("second bootstrap: %v", err)
	}
	if n, _ := store.CountUsersByRole(ctx, models.RoleAdmin); n != 1 {
		t.Fatalf("admins = %d, want 1", n)
	}
}
