package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sanuei/YoutubePlanner/internal/apperr"
	"github.com/sanuei/YoutubePlanner/internal/dto"
	"github.com/sanuei/YoutubePlanner/internal/models"
	"github.com/sanuei/YoutubePlanner/internal/repository"
)

const releaseDateLayout = "2006-01-02"

type ScriptService struct {
	Repo       repository.ScriptRepository
	Channels   repository.ChannelRepository
	Categories repository.CategoryRepository
	Logger     *zap.Logger
}

func (s *ScriptService) Create(ctx context.Context, ownerID int64, req dto.CreateScriptRequest) (*dto.ScriptResponse, error) {
	difficulty := 1
	if req.Difficulty != nil {
		if err := validateDifficulty(*req.Difficulty); err != nil {
			return nil, err
		}
		difficulty = *req.Difficulty
	}
	releaseDate, err := parseReleaseDate(req.ReleaseDate)
	if err != nil {
		return nil, err
	}
	chapters, err := chaptersFromRequests(req.Chapters)
	if err != nil {
		return nil, err
	}
	if err := s.checkRefs(ctx, ownerID, req.ChannelID, req.CategoryID); err != nil {
		return nil, err
	}

	script := &models.Script{
		Title:             req.Title,
		AlternativeTitle1: req.AlternativeTitle1,
		Description:       req.Description,
		Difficulty:        difficulty,
		Status:            req.Status,
		ReleaseDate:       releaseDate,
		UserID:            ownerID,
		ChannelID:         req.ChannelID,
		CategoryID:        req.CategoryID,
		Chapters:          chapters,
	}
	if err := s.Repo.CreateScript(ctx, script); err != nil {
		return nil, apperr.Internal(err)
	}
	return scriptToResponse(script), nil
}

func (s *ScriptService) List(ctx context.Context, ownerID int64, q dto.ListScriptsQuery) (*dto.PageResponse[dto.ScriptListItemResponse], error) {
	ps := repository.PageSort{Page: q.Page, Limit: q.Limit, SortBy: q.SortBy, Order: q.Order}.Normalized()
	params := repository.ListScriptsParams{
		UserID:     ownerID,
		ChannelID:  q.ChannelID,
		CategoryID: q.CategoryID,
		Status:     q.Status,
		Difficulty: q.Difficulty,
		Search:     q.Search,
		PageSort:   ps,
	}
	var err error
	if params.DateFrom, err = parseFilterDate(q.DateFrom, "date_from"); err != nil {
		return nil, err
	}
	if params.DateTo, err = parseFilterDate(q.DateTo, "date_to"); err != nil {
		return nil, err
	}

	items, total, err := s.Repo.ListScripts(ctx, params)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	resp := make([]dto.ScriptListItemResponse, 0, len(items))
	for i := range items {
		item, err := s.toListItem(ctx, &items[i])
		if err != nil {
			return nil, err
		}
		resp = append(resp, *item)
	}
	return dto.NewPageResponse(resp, ps.Page, ps.Limit, total), nil
}

func (s *ScriptService) Get(ctx context.Context, ownerID, scriptID int64) (*dto.ScriptResponse, error) {
	script, err := s.ownedScript(ctx, ownerID, scriptID)
	if err != nil {
		return nil, err
	}
	return scriptToResponse(script), nil
}

func (s *ScriptService) Update(ctx context.Context, ownerID, scriptID int64, req dto.UpdateScriptRequest) (*dto.ScriptResponse, error) {
	script, err := s.ownedScript(ctx, ownerID, scriptID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		script.Title = *req.Title
	}
	if req.AlternativeTitle1 != nil {
		script.AlternativeTitle1 = *req.AlternativeTitle1
	}
	if req.Description != nil {
		script.Description = *req.Description
	}
	if req.Difficulty != nil {
		if err := validateDifficulty(*req.Difficulty); err != nil {
			return nil, err
		}
		script.Difficulty = *req.Difficulty
	}
	if req.Status != nil {
		script.Status = *req.Status
	}
	if req.ReleaseDate != nil {
		releaseDate, err := parseReleaseDate(req.ReleaseDate)
		if err != nil {
			return nil, err
		}
		script.ReleaseDate = releaseDate
	}
	if req.ChannelID != nil || req.CategoryID != nil {
		if err := s.checkRefs(ctx, ownerID, req.ChannelID, req.CategoryID); err != nil {
			return nil, err
		}
	}
	if req.ChannelID != nil {
		script.ChannelID = req.ChannelID
	}
	if req.CategoryID != nil {
		script.CategoryID = req.CategoryID
	}

	if req.Chapters != nil {
		chapters, err := chaptersFromRequests(req.Chapters)
		if err != nil {
			return nil, err
		}
		// Carry over ids and creation times so rows keeping their
		// chapter_number are updated in place rather than recreated.
		// The store saves chapters whole, so a zero CreatedAt here
		// would be written through.
		existing := make(map[int]models.ScriptChapter, len(script.Chapters))
		for _, ch := range script.Chapters {
			existing[ch.ChapterNumber] = ch
		}
		for i := range chapters {
			chapters[i].ScriptID = script.ScriptID
			if prev, ok := existing[chapters[i].ChapterNumber]; ok {
				chapters[i].ChapterID = prev.ChapterID
				chapters[i].CreatedAt = prev.CreatedAt
			}
		}
		script.Chapters = chapters
	}

	if err := s.Repo.UpdateScript(ctx, script); err != nil {
		return nil, apperr.Internal(err)
	}

	updated, err := s.Repo.GetScriptByID(ctx, script.ScriptID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return scriptToResponse(updated), nil
}

func (s *ScriptService) Delete(ctx context.Context, ownerID, scriptID int64) error {
	if _, err := s.ownedScript(ctx, ownerID, scriptID); err != nil {
		return err
	}
	if err := s.Repo.DeleteScript(ctx, scriptID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *ScriptService) ownedScript(ctx context.Context, ownerID, scriptID int64) (*models.Script, error) {
	script, err := s.Repo.GetScriptByID(ctx, scriptID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if script == nil {
		return nil, apperr.NotFound("script")
	}
	if script.UserID != ownerID {
		return nil, apperr.Forbidden("no access to this script")
	}
	return script, nil
}

// checkRefs verifies that referenced channel and category exist and belong
// to the caller. A soft-deleted channel is treated as inaccessible.
func (s *ScriptService) checkRefs(ctx context.Context, ownerID int64, channelID, categoryID *int64) error {
	if channelID != nil {
		channel, err := s.Channels.GetChannelByID(ctx, *channelID)
		if err != nil {
			return apperr.Internal(err)
		}
		if channel == nil || channel.UserID != ownerID {
			return apperr.Forbidden("no access to this channel")
		}
	}
	if categoryID != nil {
		category, err := s.Categories.GetCategoryByID(ctx, *categoryID)
		if err != nil {
			return apperr.Internal(err)
		}
		if category == nil || category.UserID != ownerID {
			return apperr.Forbidden("no access to this category")
		}
	}
	return nil
}

func (s *ScriptService) toListItem(ctx context.Context, script *models.Script) (*dto.ScriptListItemResponse, error) {
	item := &dto.ScriptListItemResponse{
		ScriptID:      script.ScriptID,
		Title:         script.Title,
		Description:   script.Description,
		Status:        script.Status,
		Difficulty:    script.Difficulty,
		ReleaseDate:   formatReleaseDate(script.ReleaseDate),
		ChaptersCount: len(script.Chapters),
		CreatedAt:     script.CreatedAt,
		UpdatedAt:     script.UpdatedAt,
	}
	if script.ChannelID != nil {
		channel, err := s.Channels.GetChannelByID(ctx, *script.ChannelID)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if channel != nil {
			item.Channel = &dto.ChannelBrief{ChannelID: channel.ChannelID, ChannelName: channel.ChannelName}
		}
	}
	if script.CategoryID != nil {
		category, err := s.Categories.GetCategoryByID(ctx, *script.CategoryID)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if category != nil {
			item.Category = &dto.CategoryBrief{CategoryID: category.CategoryID, CategoryName: category.CategoryName}
		}
	}
	return item, nil
}

func validateDifficulty(d int) error {
	if d < 1 || d > 5 {
		return apperr.Validation("invalid difficulty", apperr.FieldError{
			Field:   "difficulty",
			Message: "must be between 1 and 5",
		})
	}
	return nil
}

func parseReleaseDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse(releaseDateLayout, *raw)
	if err != nil {
		return nil, apperr.Validation("invalid release_date", apperr.FieldError{
			Field:   "release_date",
			Message: "must be formatted as YYYY-MM-DD",
		})
	}
	return &t, nil
}

func parseFilterDate(raw *string, field string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse(releaseDateLayout, *raw)
	if err != nil {
		return nil, apperr.Validation("invalid "+field, apperr.FieldError{
			Field:   field,
			Message: "must be formatted as YYYY-MM-DD",
		})
	}
	return &t, nil
}

func formatReleaseDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(releaseDateLayout)
	return &s
}

// chaptersFromRequests rejects duplicate chapter numbers before anything
// hits the unique index.
func chaptersFromRequests(reqs []dto.ChapterRequest) ([]models.ScriptChapter, error) {
	seen := make(map[int]bool, len(reqs))
	chapters := make([]models.ScriptChapter, 0, len(reqs))
	for _, r := range reqs {
		if seen[r.ChapterNumber] {
			return nil, apperr.Conflict(fmt.Sprintf("duplicate chapter number %d", r.ChapterNumber))
		}
		seen[r.ChapterNumber] = true
		chapters = append(chapters, models.ScriptChapter{
			ChapterNumber: r.ChapterNumber,
			Title:         r.Title,
			Content:       r.Content,
		})
	}
	return chapters, nil
}

func scriptToResponse(script *models.Script) *dto.ScriptResponse {
	chapters := make([]dto.ChapterResponse, 0, len(script.Chapters))
	for _, ch := range script.Chapters {
		chapters = append(chapters, dto.ChapterResponse{
			ChapterID:     ch.ChapterID,
			ChapterNumber: ch.ChapterNumber,
			Title:         ch.Title,
			Content:       ch.Content,
			CreatedAt:     ch.CreatedAt,
			UpdatedAt:     ch.UpdatedAt,
		})
	}
	return &dto.ScriptResponse{
		ScriptID:          script.ScriptID,
		Title:             script.Title,
		AlternativeTitle1: script.AlternativeTitle1,
		Description:       script.Description,
		Difficulty:        script.Difficulty,
		Status:            script.Status,
		ReleaseDate:       formatReleaseDate(script.ReleaseDate),
		UserID:            script.UserID,
		ChannelID:         script.ChannelID,
		CategoryID:        script.CategoryID,
		Chapters:          chapters,
		CreatedAt:         script.CreatedAt,
		UpdatedAt:         script.UpdatedAt,
	}
}
