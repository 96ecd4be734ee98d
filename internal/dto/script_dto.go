package dto

import "time"

type ChapterRequest struct {
	ChapterNumber int    `json:"chapter_number" binding:"required,min=1"`
	Title         string `json:"title" binding:"max=255"`
	Content       string `json:"content"`
}

type CreateScriptRequest struct {
	Title             string           `json:"title" binding:"required,min=1,max=255"`
	AlternativeTitle1 string           `json:"alternative_title1" binding:"max=255"`
	Description       string           `json:"description"`
	Difficulty        *int             `json:"difficulty"`
	Status            string           `json:"status" binding:"max=50"`
	ReleaseDate       *string          `json:"release_date"`
	ChannelID         *int64           `json:"channel_id"`
	CategoryID        *int64           `json:"category_id"`
	Chapters          []ChapterRequest `json:"chapters"`
}

// UpdateScriptRequest carries only the fields to change; nil chapters means
// the chapter set is untouched.
type UpdateScriptRequest struct {
	Title             *string          `json:"title" binding:"omitempty,min=1,max=255"`
	AlternativeTitle1 *string          `json:"alternative_title1" binding:"omitempty,max=255"`
	Description       *string          `json:"description"`
	Difficulty        *int             `json:"difficulty"`
	Status            *string          `json:"status" binding:"omitempty,max=50"`
	ReleaseDate       *string          `json:"release_date"`
	ChannelID         *int64           `json:"channel_id"`
	CategoryID        *int64           `json:"category_id"`
	Chapters          []ChapterRequest `json:"chapters"`
}

type ListScriptsQuery struct {
	ListQuery
	ChannelID  *int64  `form:"channel_id"`
	CategoryID *int64  `form:"category_id"`
	Status     string  `form:"status"`
	Difficulty *int    `form:"difficulty"`
	DateFrom   *string `form:"date_from"`
	DateTo     *string `form:"date_to"`
}

type ChapterResponse struct {
	ChapterID     int64     `json:"chapter_id"`
	ChapterNumber int       `json:"chapter_number"`
	Title         string    `json:"title,omitempty"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ScriptResponse struct {
	ScriptID          int64             `json:"script_id"`
	Title             string            `json:"title"`
	AlternativeTitle1 string            `json:"alternative_title1,omitempty"`
	Description       string            `json:"description,omitempty"`
	Difficulty        int               `json:"difficulty"`
	Status            string            `json:"status,omitempty"`
	ReleaseDate       *string           `json:"release_date,omitempty"`
	UserID            int64             `json:"user_id"`
	ChannelID         *int64            `json:"channel_id,omitempty"`
	CategoryID        *int64            `json:"category_id,omitempty"`
	Chapters          []ChapterResponse `json:"chapters"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

type ChannelBrief struct {
	ChannelID   int64  `json:"channel_id"`
	ChannelName string `json:"channel_name"`
}

type CategoryBrief struct {
	CategoryID   int64  `json:"category_id"`
	CategoryName string `json:"category_name"`
}

type ScriptListItemResponse struct {
	ScriptID      int64          `json:"script_id"`
	Title         string         `json:"title"`
	Description   string         `json:"description,omitempty"`
	Status        string         `json:"status,omitempty"`
	Difficulty    int            `json:"difficulty"`
	ReleaseDate   *string        `json:"release_date,omitempty"`
	ChaptersCount int            `json:"chapters_count"`
	Channel       *ChannelBrief  `json:"channel,omitempty"`
	Category      *CategoryBrief `json:"category,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
