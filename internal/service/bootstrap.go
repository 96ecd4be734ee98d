package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/sanuei/YoutubePlanner/internal/auth"
	"github.com/sanuei/YoutubePlanner/internal/config"
	"github.com/sanuei/YoutubePlanner/internal/models"
	"github.com/sanuei/YoutubePlanner/internal/repository"
)

// EnsureAdmin seeds the configured admin account if no ADMIN exists yet.
// Without it a fresh install has no way to reach the admin API.
func EnsureAdmin(ctx context.Context, users repository.UserRepository, cfg config.AdminConfig, logger *zap.Logger) error {
	if !cfg.Bootstrap {
		return nil
	}
	admins, err := users.CountUsersByRole(ctx, models.RoleAdmin)
	if err != nil {
		return err
	}
	if admins > 0 {
		return nil
	}
	if cfg.Password == "" {
		logger.Warn("admin bootstrap skipped: no password configured")
		return nil
	}

	hash, err := auth.HashPassword(cfg.Password)
	if err != nil {
		return err
	}
	admin := &models.User{
		Username:     cfg.Username,
		PasswordHash: hash,
		Email:        cfg.Email,
		Role:         models.RoleAdmin,
	}
	if err := users.CreateUser(ctx, admin); err != nil {
		return err
	}
	logger.Info("admin account bootstrapped",
		zap.Int64("user_id", admin.UserID),
		zap.String("username", admin.Username),
	)
	return nil
}
