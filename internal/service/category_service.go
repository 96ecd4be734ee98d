package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/sanuei/YoutubePlanner/internal/apperr"
	"github.com/sanuei/YoutubePlanner/internal/dto"
	"github.com/sanuei/YoutubePlanner/internal/models"
	"github.com/sanuei/YoutubePlanner/internal/repository"
)

type CategoryService struct {
	Repo   repository.CategoryRepository
	Logger *zap.Logger
}

func (s *CategoryService) Create(ctx context.Context, ownerID int64, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	exists, err := s.Repo.CategoryExistsByName(ctx, ownerID, req.CategoryName)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if exists {
		return nil, apperr.Conflict("category name already exists")
	}

	category := &models.Category{
		CategoryName: req.CategoryName,
		UserID:       ownerID,
	}
	if err := s.Repo.CreateCategory(ctx, category); err != nil {
		return nil, apperr.Internal(err)
	}
	return categoryToResponse(category), nil
}

func (s *CategoryService) List(ctx context.Context, ownerID int64, q dto.ListQuery) (*dto.PageResponse[dto.CategoryResponse], error) {
	ps := repository.PageSort{Page: q.Page, Limit: q.Limit, SortBy: q.SortBy, Order: q.Order}.Normalized()
	items, total, err := s.Repo.ListCategories(ctx, repository.ListCategoriesParams{
		UserID:   ownerID,
		Search:   q.Search,
		PageSort: ps,
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	resp := make([]dto.CategoryResponse, 0, len(items))
	for i := range items {
		resp = append(resp, *categoryToResponse(&items[i]))
	}
	return dto.NewPageResponse(resp, ps.Page, ps.Limit, total), nil
}

func (s *CategoryService) Get(ctx context.Context, ownerID, categoryID int64) (*dto.CategoryResponse, error) {
	category, err := s.ownedCategory(ctx, ownerID, categoryID)
	if err != nil {
		return nil, err
	}
	return categoryToResponse(category), nil
}

func (s *CategoryService) Update(ctx context.Context, ownerID, categoryID int64, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := s.ownedCategory(ctx, ownerID, categoryID)
	if err != nil {
		return nil, err
	}

	if category.CategoryName != req.CategoryName {
		exists, err := s.Repo.CategoryExistsByName(ctx, ownerID, req.CategoryName)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if exists {
			return nil, apperr.Conflict("category name already exists")
		}
	}

	category.CategoryName = req.CategoryName
	if err := s.Repo.UpdateCategory(ctx, category); err != nil {
		return nil, apperr.Internal(err)
	}
	return categoryToResponse(category), nil
}

func (s *CategoryService) Delete(ctx context.Context, ownerID, categoryID int64) error {
	if _, err := s.ownedCategory(ctx, ownerID, categoryID); err != nil {
		return err
	}
	if err := s.Repo.DeleteCategory(ctx, categoryID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *CategoryService) ownedCategory(ctx context.Context, ownerID, categoryID int64) (*models.Category, error) {
	category, err := s.Repo.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if category == nil {
		return nil, apperr.NotFound("category")
	}
	if category.UserID != ownerID {
		return nil, apperr.Forbidden("no access to this category")
	}
	return category, nil
}

func categoryToResponse(c *models.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		CategoryID:   c.CategoryID,
		CategoryName: c.CategoryName,
		UserID:       c.UserID,
		CreatedAt:    c.CreatedAt,
	}
}
