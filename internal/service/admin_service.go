package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/sanuei/YoutubePlanner/internal/apperr"
	"github.com/sanuei/YoutubePlanner/internal/dto"
	"github.com/sanuei/YoutubePlanner/internal/models"
	"github.com/sanuei/YoutubePlanner/internal/repository"
)

// AdminService gates every operation on the caller's role, looked up fresh
// from the store so a demoted admin loses access immediately.
type AdminService struct {
	Users      repository.UserRepository
	Scripts    repository.ScriptRepository
	Channels   repository.ChannelRepository
	Categories repository.CategoryRepository
	Admin      repository.AdminRepository
	Logger     *zap.Logger
}

func (s *AdminService) ListUsers(ctx context.Context, callerID int64, q dto.ListQuery) (*dto.PageResponse[dto.AdminUserResponse], error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}

	ps := repository.PageSort{Page: q.Page, Limit: q.Limit, SortBy: q.SortBy, Order: q.Order}.Normalized()
	users, total, err := s.Users.ListUsers(ctx, repository.ListUsersParams{
		Search:   q.Search,
		PageSort: ps,
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	resp := make([]dto.AdminUserResponse, 0, len(users))
	for i := range users {
		item, err := s.toAdminUser(ctx, &users[i])
		if err != nil {
			return nil, err
		}
		resp = append(resp, *item)
	}
	return dto.NewPageResponse(resp, ps.Page, ps.Limit, total), nil
}

func (s *AdminService) GetUser(ctx context.Context, callerID, userID int64) (*dto.AdminUserResponse, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}
	user, err := s.mustUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toAdminUser(ctx, user)
}

func (s *AdminService) UpdateUser(ctx context.Context, callerID, userID int64, req dto.AdminUpdateUserRequest) (*dto.AdminUserResponse, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}
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
	if req.Role != nil {
		if err := s.applyRoleChange(ctx, user, *req.Role); err != nil {
			return nil, err
		}
	}
	if err := s.Users.UpdateUser(ctx, user); err != nil {
		return nil, apperr.Internal(err)
	}
	return s.toAdminUser(ctx, user)
}

func (s *AdminService) UpdateUserRole(ctx context.Context, callerID, userID int64, role string) (*dto.AdminUserResponse, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}
	user, err := s.mustUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.applyRoleChange(ctx, user, role); err != nil {
		return nil, err
	}
	if err := s.Users.UpdateUser(ctx, user); err != nil {
		return nil, apperr.Internal(err)
	}
	s.Logger.Info("user role changed",
		zap.Int64("user_id", userID),
		zap.Int64("admin_id", callerID),
		zap.String("role", role),
	)
	return s.toAdminUser(ctx, user)
}

// DeleteUser removes the user together with everything they own in one
// transaction. Deleting the last remaining admin is refused.
func (s *AdminService) DeleteUser(ctx context.Context, callerID, userID int64) error {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return err
	}
	user, err := s.mustUser(ctx, userID)
	if err != nil {
		return err
	}
	if user.IsAdmin() {
		admins, err := s.Users.CountUsersByRole(ctx, models.RoleAdmin)
		if err != nil {
			return apperr.Internal(err)
		}
		if admins <= 1 {
			return apperr.Conflict("cannot delete the last admin")
		}
	}

	result, err := s.Admin.DeleteUserCascade(ctx, userID)
	if err != nil {
		return apperr.Internal(err)
	}

	s.Logger.Info("user deleted",
		zap.Int64("user_id", userID),
		zap.Int64("admin_id", callerID),
		zap.Int64("chapters", result.Chapters),
		zap.Int64("scripts", result.Scripts),
		zap.Int64("mind_maps", result.MindMaps),
		zap.Int64("channels", result.Channels),
		zap.Int64("categories", result.Categories),
	)
	return nil
}

func (s *AdminService) applyRoleChange(ctx context.Context, user *models.User, role string) error {
	if role != models.RoleUser && role != models.RoleAdmin {
		return apperr.Validation("invalid role", apperr.FieldError{
			Field:   "role",
			Message: "must be USER or ADMIN",
		})
	}
	if user.IsAdmin() && role == models.RoleUser {
		admins, err := s.Users.CountUsersByRole(ctx, models.RoleAdmin)
		if err != nil {
			return apperr.Internal(err)
		}
		if admins <= 1 {
			return apperr.Conflict("cannot demote the last admin")
		}
	}
	user.Role = role
	return nil
}

func (s *AdminService) requireAdmin(ctx context.Context, callerID int64) error {
	caller, err := s.Users.GetUserByID(ctx, callerID)
	if err != nil {
		return apperr.Internal(err)
	}
	if caller == nil || !caller.IsAdmin() {
		return apperr.Forbidden("admin role required")
	}
	return nil
}

func (s *AdminService) mustUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.Users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if user == nil {
		return nil, apperr.NotFound("user")
	}
	return user, nil
}

func (s *AdminService) toAdminUser(ctx context.Context, user *models.User) (*dto.AdminUserResponse, error) {
	var stats dto.UserStats
	var err error
	if stats.TotalScripts, err = s.Scripts.CountScriptsByUser(ctx, user.UserID); err != nil {
		return nil, apperr.Internal(err)
	}
	if stats.TotalChannels, err = s.Channels.CountChannelsByUser(ctx, user.UserID); err != nil {
		return nil, apperr.Internal(err)
	}
	if stats.TotalCategories, err = s.Categories.CountCategoriesByUser(ctx, user.UserID); err != nil {
		return nil, apperr.Internal(err)
	}
	return &dto.AdminUserResponse{
		UserID:      user.UserID,
		Username:    user.Username,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        user.Role,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
		Stats:       stats,
	}, nil
}
