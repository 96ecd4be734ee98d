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

type AuthService struct {
	Users  repository.UserRepository
	Tokens *auth.Manager
	Logger *zap.Logger
}

func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserInfo, error) {
	exists, err := s.Users.UserExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if exists {
		return nil, apperr.Conflict("username already exists")
	}
	exists, err = s.Users.UserExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if exists {
		return nil, apperr.Conflict("email already exists")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: hash,
		Email:        req.Email,
		Role:         models.RoleUser,
	}
	if err := s.Users.CreateUser(ctx, user); err != nil {
		return nil, apperr.Internal(err)
	}

	s.Logger.Info("user registered",
		zap.Int64("user_id", user.UserID),
		zap.String("username", user.Username),
	)
	return &dto.UserInfo{UserID: user.UserID, Username: user.Username}, nil
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.Users.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if user == nil || !auth.CheckPassword(req.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("invalid username or password")
	}

	accessToken, err := s.Tokens.IssueAccessToken(user.UserID, user.Username)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	refreshToken, err := s.Tokens.IssueRefreshToken(user.UserID, user.Username)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.Tokens.AccessTTL().Seconds()),
		User:         &dto.UserInfo{UserID: user.UserID, Username: user.Username},
	}, nil
}

func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.Tokens.Parse(refreshToken)
	if err != nil {
		return nil, apperr.Unauthorized("invalid refresh token")
	}

	user, err := s.Users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if user == nil {
		return nil, apperr.Unauthorized("invalid refresh token")
	}

	accessToken, err := s.Tokens.IssueAccessToken(user.UserID, user.Username)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.Tokens.AccessTTL().Seconds()),
	}, nil
}

// Logout is a no-op: there is no server-side token state to revoke.
// Refresh token lifetime is bounded by its TTL.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return nil
}
