package dto

import "time"

type UserStats struct {
	TotalScripts    int64 `json:"total_scripts"`
	TotalChannels   int64 `json:"total_channels"`
	TotalCategories int64 `json:"total_categories"`
}

type UserDetailResponse struct {
	UserID      int64              `json:"user_id"`
	Username    string             `json:"username"`
	Email       string             `json:"email"`
	DisplayName string             `json:"display_name,omitempty"`
	AvatarURL   string             `json:"avatar_url,omitempty"`
	Role        string             `json:"role"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	Stats       UserStats          `json:"stats"`
	ApiConfig   *ApiConfigResponse `json:"api_config,omitempty"`
}

type UpdateUserRequest struct {
	Email       *string `json:"email" binding:"omitempty,email"`
	DisplayName *string `json:"display_name" binding:"omitempty,max=100"`
	AvatarURL   *string `json:"avatar_url" binding:"omitempty,max=500"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6,max=72"`
}

type ApiConfigRequest struct {
	ApiProvider *string `json:"api_provider"`
	ApiKey      *string `json:"api_key"`
	ApiBaseURL  *string `json:"api_base_url"`
	ApiModel    *string `json:"api_model"`
}

// ApiConfigResponse never echoes the stored key, only whether one exists.
type ApiConfigResponse struct {
	ApiProvider string `json:"api_provider,omitempty"`
	ApiBaseURL  string `json:"api_base_url,omitempty"`
	ApiModel    string `json:"api_model,omitempty"`
	HasApiKey   bool   `json:"has_api_key"`
}

type AdminUserResponse struct {
	UserID      int64     `json:"user_id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name,omitempty"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Stats       UserStats `json:"stats"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type AdminUpdateUserRequest struct {
	Email       *string `json:"email" binding:"omitempty,email"`
	DisplayName *string `json:"display_name" binding:"omitempty,max=100"`
	Role        *string `json:"role"`
}
