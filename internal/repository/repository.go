// Package repository defines the ownership-scoped persistence interfaces.
// Every query that touches user-owned rows filters by user id; soft-deleted
// rows are excluded by an explicit predicate in the implementation.
package repository

import (
	"context"
	"time"

	"github.com/sanuei/YoutubePlanner/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UserExistsByUsername(ctx context.Context, username string) (bool, error)
	UserExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateUser(ctx context.Context, user *models.User) error
	ListUsers(ctx context.Context, params ListUsersParams) ([]models.User, int64, error)
	CountUsersByRole(ctx context.Context, role string) (int64, error)
}

type CategoryRepository interface {
	CreateCategory(ctx context.Context, category *models.Category) error
	GetCategoryByID(ctx context.Context, id int64) (*models.Category, error)
	CategoryExistsByName(ctx context.Context, userID int64, name string) (bool, error)
	UpdateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, id int64) error
	ListCategories(ctx context.Context, params ListCategoriesParams) ([]models.Category, int64, error)
	CountCategoriesByUser(ctx context.Context, userID int64) (int64, error)
}

type ChannelRepository interface {
	CreateChannel(ctx context.Context, channel *models.Channel) error
	// GetChannelByID excludes soft-deleted rows.
	GetChannelByID(ctx context.Context, id int64) (*models.Channel, error)
	ChannelExistsByName(ctx context.Context, userID int64, name string) (bool, error)
	UpdateChannel(ctx context.Context, channel *models.Channel) error
	SoftDeleteChannel(ctx context.Context, id int64) error
	ListChannels(ctx context.Context, params ListChannelsParams) ([]models.Channel, int64, error)
	CountChannelsByUser(ctx context.Context, userID int64) (int64, error)
	PurgeDeletedChannels(ctx context.Context, before time.Time) (int64, error)
}

type ScriptRepository interface {
	// CreateScript persists the script together with its chapters.
	CreateScript(ctx context.Context, script *models.Script) error
	// GetScriptByID loads chapters ordered by chapter_number.
	GetScriptByID(ctx context.Context, id int64) (*models.Script, error)
	// UpdateScript saves scalar fields and replaces the chapter set with
	// script.Chapters (delete-absent, upsert-present, keyed by chapter_number).
	UpdateScript(ctx context.Context, script *models.Script) error
	DeleteScript(ctx context.Context, id int64) error
	ListScripts(ctx context.Context, params ListScriptsParams) ([]models.Script, int64, error)
	CountScriptsByUser(ctx context.Context, userID int64) (int64, error)
	CountScriptsByChannel(ctx context.Context, channelID int64) (int64, error)
}

type MindMapRepository interface {
	CreateMindMap(ctx context.Context, mindMap *models.MindMap) error
	// GetMindMapByID excludes soft-deleted rows.
	GetMindMapByID(ctx context.Context, id int64) (*models.MindMap, error)
	UpdateMindMap(ctx context.Context, mindMap *models.MindMap) error
	SoftDeleteMindMap(ctx context.Context, id int64) error
	ListMindMaps(ctx context.Context, params ListMindMapsParams) ([]models.MindMap, int64, error)
	CountMindMapsByUser(ctx context.Context, userID int64) (int64, error)
	PurgeDeletedMindMaps(ctx context.Context, before time.Time) (int64, error)
}

// CascadeResult reports per-table row counts for a cascading user deletion.
type CascadeResult struct {
	Chapters   int64
	Scripts    int64
	MindMaps   int64
	Channels   int64
	Categories int64
}

type AdminRepository interface {
	// DeleteUserCascade removes the user's entire owned graph and the user
	// row inside one transaction; any failure rolls everything back.
	DeleteUserCascade(ctx context.Context, userID int64) (CascadeResult, error)
}

// Repository is the unified store handed to main; services depend on the
// narrower interfaces above.
type Repository interface {
	UserRepository
	CategoryRepository
	ChannelRepository
	ScriptRepository
	MindMapRepository
	AdminRepository
}
