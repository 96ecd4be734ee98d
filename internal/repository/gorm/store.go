package gormrepository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/sanuei/YoutubePlanner/internal/models"
	"github.com/sanuei/YoutubePlanner/internal/repository"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return s.db.WithContext(ctx).Transaction(fn)
}

// --- users ------------------------------------------------------------------

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *Store) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "user_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) UserExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (s *Store) UserExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (s *Store) UpdateUser(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Save(user).Error
}

func (s *Store) ListUsers(ctx context.Context, params repository.ListUsersParams) ([]models.User, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.User{})
	if search := likePattern(params.Search); search != "" {
		query = query.Where("username ILIKE ? OR email ILIKE ?", search, search)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	ps := params.PageSort.Normalized()
	var items []models.User
	err := query.
		Order(ps.OrderClause([]string{"username", "email", "created_at", "updated_at"}, "created_at")).
		Limit(ps.Limit).Offset(ps.Offset()).
		Find(&items).Error
	return items, total, err
}

func (s *Store) CountUsersByRole(ctx context.Context, role string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("role = ?", role).Count(&count).Error
	return count, err
}

// --- categories -------------------------------------------------------------

func (s *Store) CreateCategory(ctx context.Context, category *models.Category) error {
	return s.db.WithContext(ctx).Create(category).Error
}

func (s *Store) GetCategoryByID(ctx context.Context, id int64) (*models.Category, error) {
	var category models.Category
	err := s.db.WithContext(ctx).First(&category, "category_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *Store) CategoryExistsByName(ctx context.Context, userID int64, name string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Category{}).
		Where("user_id = ? AND category_name = ?", userID, name).
		Count(&count).Error
	return count > 0, err
}

func (s *Store) UpdateCategory(ctx context.Context, category *models.Category) error {
	return s.db.WithContext(ctx).Save(category).Error
}

func (s *Store) DeleteCategory(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Delete(&models.Category{}, "category_id = ?", id).Error
}

func (s *Store) ListCategories(ctx context.Context, params repository.ListCategoriesParams) ([]models.Category, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Category{}).
		Where("user_id = ?", params.UserID)
	if search := likePattern(params.Search); search != "" {
		query = query.Where("category_name ILIKE ?", search)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	ps := params.PageSort.Normalized()
	var items []models.Category
	err := query.
		Order(ps.OrderClause([]string{"category_name", "created_at"}, "created_at")).
		Limit(ps.Limit).Offset(ps.Offset()).
		Find(&items).Error
	return items, total, err
}

func (s *Store) CountCategoriesByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Category{}).
		Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// --- channels ---------------------------------------------------------------
//
// Soft-delete filtering is an explicit predicate here, not ORM callback
// magic: every read adds "deleted = false".

func (s *Store) CreateChannel(ctx context.Context, channel *models.Channel) error {
	return s.db.WithContext(ctx).Create(channel).Error
}

func (s *Store) GetChannelByID(ctx context.Context, id int64) (*models.Channel, error) {
	var channel models.Channel
	err := s.db.WithContext(ctx).
		First(&channel, "channel_id = ? AND deleted = false", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &channel, nil
}

func (s *Store) ChannelExistsByName(ctx context.Context, userID int64, name string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Channel{}).
		Where("user_id = ? AND channel_name = ? AND deleted = false", userID, name).
		Count(&count).Error
	return count > 0, err
}

func (s *Store) UpdateChannel(ctx context.Context, channel *models.Channel) error {
	return s.db.WithContext(ctx).Save(channel).Error
}

func (s *Store) SoftDeleteChannel(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Model(&models.Channel{}).
		Where("channel_id = ?", id).
		Update("deleted", true).Error
}

func (s *Store) ListChannels(ctx context.Context, params repository.ListChannelsParams) ([]models.Channel, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Channel{}).
		Where("user_id = ? AND deleted = false", params.UserID)
	if search := likePattern(params.Search); search != "" {
		query = query.Where("channel_name ILIKE ?", search)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	ps := params.PageSort.Normalized()
	var items []models.Channel
	err := query.
		Order(ps.OrderClause([]string{"channel_name", "created_at"}, "created_at")).
		Limit(ps.Limit).Offset(ps.Offset()).
		Find(&items).Error
	return items, total, err
}

func (s *Store) CountChannelsByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Channel{}).
		Where("user_id = ? AND deleted = false", userID).Count(&count).Error
	return count, err
}

func (s *Store) PurgeDeletedChannels(ctx context.Context, before time.Time) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("deleted = true AND updated_at < ?", before).
		Delete(&models.Channel{})
	return res.RowsAffected, res.Error
}

// --- scripts ----------------------------------------------------------------

func (s *Store) CreateScript(ctx context.Context, script *models.Script) error {
	return s.db.WithContext(ctx).Create(script).Error
}

func (s *Store) GetScriptByID(ctx context.Context, id int64) (*models.Script, error) {
	var script models.Script
	err := s.db.WithContext(ctx).
		Preload("Chapters", func(db *gorm.DB) *gorm.DB {
			return db.Order("chapter_number asc")
		}).
		First(&script, "script_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &script, nil
}

// UpdateScript saves the script row and replaces its chapter set with
// script.Chapters: rows whose chapter_number is absent from the new set are
// deleted, the rest are updated in place or inserted. All inside one
// transaction.
func (s *Store) UpdateScript(ctx context.Context, script *models.Script) error {
	return s.InTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Omit("Chapters").Save(script).Error; err != nil {
			return err
		}

		keep := make([]int, 0, len(script.Chapters))
		for _, ch := range script.Chapters {
			keep = append(keep, ch.ChapterNumber)
		}
		del := tx.Where("script_id = ?", script.ScriptID)
		if len(keep) > 0 {
			del = del.Where("chapter_number NOT IN ?", keep)
		}
		if err := del.Delete(&models.ScriptChapter{}).Error; err != nil {
			return err
		}

		for i := range script.Chapters {
			ch := &script.Chapters[i]
			ch.ScriptID = script.ScriptID
			if ch.ChapterID != 0 {
				if err := tx.Save(ch).Error; err != nil {
					return err
				}
				continue
			}
			if err := tx.Create(ch).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) DeleteScript(ctx context.Context, id int64) error {
	return s.InTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("script_id = ?", id).Delete(&models.ScriptChapter{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Script{}, "script_id = ?", id).Error
	})
}

func (s *Store) ListScripts(ctx context.Context, params repository.ListScriptsParams) ([]models.Script, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Script{}).
		Where("user_id = ?", params.UserID)
	if params.ChannelID != nil {
		query = query.Where("channel_id = ?", *params.ChannelID)
	}
	if params.CategoryID != nil {
		query = query.Where("category_id = ?", *params.CategoryID)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Difficulty != nil {
		query = query.Where("difficulty = ?", *params.Difficulty)
	}
	if params.DateFrom != nil {
		query = query.Where("release_date >= ?", *params.DateFrom)
	}
	if params.DateTo != nil {
		query = query.Where("release_date <= ?", *params.DateTo)
	}
	if search := likePattern(params.Search); search != "" {
		query = query.Where("title ILIKE ?", search)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	ps := params.PageSort.Normalized()
	var items []models.Script
	err := query.
		Preload("Chapters", func(db *gorm.DB) *gorm.DB {
			return db.Order("chapter_number asc")
		}).
		Order(ps.OrderClause([]string{"title", "created_at", "updated_at", "release_date"}, "created_at")).
		Limit(ps.Limit).Offset(ps.Offset()).
		Find(&items).Error
	return items, total, err
}

func (s *Store) CountScriptsByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Script{}).
		Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (s *Store) CountScriptsByChannel(ctx context.Context, channelID int64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Script{}).
		Where("channel_id = ?", channelID).Count(&count).Error
	return count, err
}

// --- mind maps --------------------------------------------------------------

func (s *Store) CreateMindMap(ctx context.Context, mindMap *models.MindMap) error {
	return s.db.WithContext(ctx).Create(mindMap).Error
}

func (s *Store) GetMindMapByID(ctx context.Context, id int64) (*models.MindMap, error) {
	var mindMap models.MindMap
	err := s.db.WithContext(ctx).
		First(&mindMap, "mind_map_id = ? AND is_deleted = false", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &mindMap, nil
}

func (s *Store) UpdateMindMap(ctx context.Context, mindMap *models.MindMap) error {
	return s.db.WithContext(ctx).Save(mindMap).Error
}

func (s *Store) SoftDeleteMindMap(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Model(&models.MindMap{}).
		Where("mind_map_id = ?", id).
		Update("is_deleted", true).Error
}

func (s *Store) ListMindMaps(ctx context.Context, params repository.ListMindMapsParams) ([]models.MindMap, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.MindMap{}).
		Where("user_id = ? AND is_deleted = false", params.UserID)
	if search := likePattern(params.Search); search != "" {
		query = query.Where("title ILIKE ?", search)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	ps := params.PageSort.Normalized()
	var items []models.MindMap
	err := query.
		Order(ps.OrderClause([]string{"title", "created_at", "updated_at"}, "created_at")).
		Limit(ps.Limit).Offset(ps.Offset()).
		Find(&items).Error
	return items, total, err
}

func (s *Store) CountMindMapsByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.MindMap{}).
		Where("user_id = ? AND is_deleted = false", userID).Count(&count).Error
	return count, err
}

func (s *Store) PurgeDeletedMindMaps(ctx context.Context, before time.Time) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("is_deleted = true AND updated_at < ?", before).
		Delete(&models.MindMap{})
	return res.RowsAffected, res.Error
}

// --- cascading user deletion ------------------------------------------------

// DeleteUserCascade removes the user's owned graph in dependency order:
// chapters, scripts, mind maps, channels, categories, then the user row.
// One transaction; a failing step rolls everything back.
func (s *Store) DeleteUserCascade(ctx context.Context, userID int64) (repository.CascadeResult, error) {
	var result repository.CascadeResult
	err := s.InTx(ctx, func(tx *gorm.DB) error {
		scriptIDs := tx.Model(&models.Script{}).Select("script_id").Where("user_id = ?", userID)
		res := tx.Where("script_id IN (?)", scriptIDs).Delete(&models.ScriptChapter{})
		if res.Error != nil {
			return res.Error
		}
		result.Chapters = res.RowsAffected

		res = tx.Where("user_id = ?", userID).Delete(&models.Script{})
		if res.Error != nil {
			return res.Error
		}
		result.Scripts = res.RowsAffected

		res = tx.Where("user_id = ?", userID).Delete(&models.MindMap{})
		if res.Error != nil {
			return res.Error
		}
		result.MindMaps = res.RowsAffected

		res = tx.Where("user_id = ?", userID).Delete(&models.Channel{})
		if res.Error != nil {
			return res.Error
		}
		result.Channels = res.RowsAffected

		res = tx.Where("user_id = ?", userID).Delete(&models.Category{})
		if res.Error != nil {
			return res.Error
		}
		result.Categories = res.RowsAffected

		return tx.Delete(&models.User{}, "user_id = ?", userID).Error
	})
	if err != nil {
		return repository.CascadeResult{}, err
	}
	return result, nil
}
