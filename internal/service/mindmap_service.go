package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/sanuei/YoutubePlanner/internal/apperr"
	"github.com/sanuei/YoutubePlanner/internal/dto"
	"github.com/sanuei/YoutubePlanner/internal/models"
	"github.com/sanuei/YoutubePlanner/internal/repository"
)

type MindMapService struct {
	Repo   repository.MindMapRepository
	Logger *zap.Logger
}

func (s *MindMapService) Create(ctx context.Context, ownerID int64, req dto.MindMapRequest) (*dto.MindMapResponse, error) {
	mindMap := &models.MindMap{
		Title:       req.Title,
		Description: req.Description,
		NodesData:   datatypes.JSON(req.NodesData),
		EdgesData:   datatypes.JSON(req.EdgesData),
		UserID:      ownerID,
	}
	if err := s.Repo.CreateMindMap(ctx, mindMap); err != nil {
		return nil, apperr.Internal(err)
	}
	return mindMapToResponse(mindMap), nil
}

func (s *MindMapService) List(ctx context.Context, ownerID int64, q dto.ListQuery) (*dto.PageResponse[dto.MindMapListItemResponse], error) {
	ps := repository.PageSort{Page: q.Page, Limit: q.Limit, SortBy: q.SortBy, Order: q.Order}.Normalized()
	items, total, err := s.Repo.ListMindMaps(ctx, repository.ListMindMapsParams{
		UserID:   ownerID,
		Search:   q.Search,
		PageSort: ps,
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	resp := make([]dto.MindMapListItemResponse, 0, len(items))
	for i := range items {
		m := &items[i]
		resp = append(resp, dto.MindMapListItemResponse{
			MindMapID:   m.MindMapID,
			Title:       m.Title,
			Description: m.Description,
			UserID:      m.UserID,
			CreatedAt:   m.CreatedAt,
			UpdatedAt:   m.UpdatedAt,
		})
	}
	return dto.NewPageResponse(resp, ps.Page, ps.Limit, total), nil
}

func (s *MindMapService) Get(ctx context.Context, ownerID, mindMapID int64) (*dto.MindMapResponse, error) {
	mindMap, err := s.ownedMindMap(ctx, ownerID, mindMapID)
	if err != nil {
		return nil, err
	}
	return mindMapToResponse(mindMap), nil
}

func (s *MindMapService) Update(ctx context.Context, ownerID, mindMapID int64, req dto.MindMapRequest) (*dto.MindMapResponse, error) {
	mindMap, err := s.ownedMindMap(ctx, ownerID, mindMapID)
	if err != nil {
		return nil, err
	}

	mindMap.Title = req.Title
	mindMap.Description = req.Description
	if req.NodesData != nil {
		mindMap.NodesData = datatypes.JSON(req.NodesData)
	}
	if req.EdgesData != nil {
		mindMap.EdgesData = datatypes.JSON(req.EdgesData)
	}
	if err := s.Repo.UpdateMindMap(ctx, mindMap); err != nil {
		return nil, apperr.Internal(err)
	}
	return mindMapToResponse(mindMap), nil
}

// Delete is soft: the row stays until the purge job removes it. A map that
// is already soft-deleted reads as absent, so a second delete returns 404.
func (s *MindMapService) Delete(ctx context.Context, ownerID, mindMapID int64) error {
	if _, err := s.ownedMindMap(ctx, ownerID, mindMapID); err != nil {
		return err
	}
	if err := s.Repo.SoftDeleteMindMap(ctx, mindMapID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *MindMapService) ownedMindMap(ctx context.Context, ownerID, mindMapID int64) (*models.MindMap, error) {
	mindMap, err := s.Repo.GetMindMapByID(ctx, mindMapID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if mindMap == nil {
		return nil, apperr.NotFound("mind map")
	}
	if mindMap.UserID != ownerID {
		return nil, apperr.Forbidden("no access to this mind map")
	}
	return mindMap, nil
}

func mindMapToResponse(m *models.MindMap) *dto.MindMapResponse {
	return &dto.MindMapResponse{
		MindMapID:   m.MindMapID,
		Title:       m.Title,
		Description: m.Description,
		NodesData:   json.RawMessage(m.NodesData),
		EdgesData:   json.RawMessage(m.EdgesData),
		UserID:      m.UserID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
