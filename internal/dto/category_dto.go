package dto

import "time"

type CreateCategoryRequest struct {
	CategoryName string `json:"category_name" binding:"required,min=1,max=100"`
}

type CategoryResponse struct {
	CategoryID   int64     `json:"category_id"`
	CategoryName string    `json:"category_name"`
	UserID       int64     `json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
}
