package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/sanuei/YoutubePlanner/internal/apperr"
	"github.com/sanuei/YoutubePlanner/internal/auth"
	"github.com/sanuei/YoutubePlanner/internal/dto"
	"github.com/sanuei/YoutubePlanner/internal/models"
	"github.com/sanuei/YoutubePlanner/internal/repository"
)

type UserService struct {
	Users      repository.UserRepository
	Scripts    repository.ScriptRepository
	Channels   repository.ChannelRepository
	Categories repository.CategoryRepository
	Logger     *zap.Logger
}

func (s *UserService) Me(ctx context.Context, userID int64) (*dto.UserDetailResponse, error) {
	user, err := s.mustUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats, err := s.statsFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := userToDetail(user, stats)
	resp.ApiConfig = apiConfigToResponse(user)
	return resp, nil
}

func (s *UserService) UpdateMe(ctx context.Context, userID int64, req dto.UpdateUserRequest) (*dto.UserDetailResponse, error) {
	user, err := s.mustUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		exists, err := s.Users.UserExistsByEmail(ctx, *req.Email)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if exists {
			return nil, apperr.Conflict("email already exists")
		}
		user.Email = *req.Email
	}
	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if err := s.Users.UpdateUser(ctx, user); err != nil {
		return nil, apperr.Internal(err)
	}

	stats, err := s.statsFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return userToDetail(user, stats), nil
}

func (s *UserService) ChangePassword(ctx context.Context, userID int64, req dto.ChangePasswordRequest) error {
	user, err := s.mustUser(ctx, userID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(req.CurrentPassword, user.PasswordHash) {
		return apperr.Validation("invalid current password", apperr.FieldError{
			Field:   "current_password",
			Message: "current password is incorrect",
		})
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperr.Internal(err)
	}
	user.PasswordHash = hash
	if err := s.Users.UpdateUser(ctx, user); err != nil {
		return apperr.Internal(err)
	}

	s.Logger.Info("password changed", zap.Int64("user_id", userID))
	return nil
}

func (s *UserService) GetApiConfig(ctx context.Context, userID int64) (*dto.ApiConfigResponse, error) {
	user, err := s.mustUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return apiConfigToResponse(user), nil
}

func (s *UserService) UpdateApiConfig(ctx context.Context, userID int64, req dto.ApiConfigRequest) (*dto.ApiConfigResponse, error) {
	user, err := s.mustUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.ApiProvider != nil {
		user.ApiProvider = *req.ApiProvider
	}
	if req.ApiKey != nil {
		user.ApiKey = *req.ApiKey
	}
	if req.ApiBaseURL != nil {
		user.ApiBaseURL = *req.ApiBaseURL
	}
	if req.ApiModel != nil {
		user.ApiModel = *req.ApiModel
	}
	if err := s.Users.UpdateUser(ctx, user); err != nil {
		return nil, apperr.Internal(err)
	}
	return apiConfigToResponse(user), nil
}

func (s *UserService) mustUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.Users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if user == nil {
		return nil, apperr.NotFound("user")
	}
	return user, nil
}

func (s *UserService) statsFor(ctx context.Context, userID int64) (dto.UserStats, error) {
	var stats dto.UserStats
	var err error
	if stats.TotalScripts, err = s.Scripts.CountScriptsByUser(ctx, userID); err != nil {
		return stats, apperr.Internal(err)
	}
	if stats.TotalChannels, err = s.Channels.CountChannelsByUser(ctx, userID); err != nil {
		return stats, apperr.Internal(err)
	}
	if stats.TotalCategories, err = s.Categories.CountCategoriesByUser(ctx, userID); err != nil {
		return stats, apperr.Internal(err)
	}
	return stats, nil
}

func userToDetail(u *models.User, stats dto.UserStats) *dto.UserDetailResponse {
	return &dto.UserDetailResponse{
		UserID:      u.UserID,
		Username:    u.Username,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
		Stats:       stats,
	}
}

func apiConfigToResponse(u *models.User) *dto.ApiConfigResponse {
	return &dto.ApiConfigResponse{
		ApiProvider: u.ApiProvider,
		ApiBaseURL:  u.ApiBaseURL,
		ApiModel:    u.ApiModel,
		HasApiKey:   u.ApiKey != "",
	}
}
