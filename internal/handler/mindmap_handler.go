package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sanuei/YoutubePlanner/internal/dto"
	"github.com/sanuei/YoutubePlanner/internal/service"
)

type MindMapHandler struct {
	MindMaps *service.MindMapService
	Logger   *zap.Logger
}

func (h *MindMapHandler) Register(r *gin.Engine, authMW gin.HandlerFunc) {
	g := r.Group("/api/v1/mindmaps", authMW)
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *MindMapHandler) create(c *gin.Context) {
	p, okAuth := principal(c)
	if !okAuth {
		return
	}
	var req dto.MindMapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	mindMap, err := h.MindMaps.Create(c.Request.Context(), p.UserID, req)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	created(c, mindMap)
}

func (h *MindMapHandler) list(c *gin.Context) {
	p, okAuth := principal(c)
	if !okAuth {
		return
	}
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	page, err := h.MindMaps.List(c.Request.Context(), p.UserID, q)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	ok(c, page)
}

func (h *MindMapHandler) get(c *gin.Context) {
	p, okAuth := principal(c)
	if !okAuth {
		return
	}
	id, okID := pathID(c, "id")
	if !okID {
		return
	}
	mindMap, err := h.MindMaps.Get(c.Request.Context(), p.UserID, id)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	ok(c, mindMap)
}

func (h *MindMapHandler) update(c *gin.Context) {
	p, okAuth := principal(c)
	if !okAuth {
		return
	}
	id, okID := pathID(c, "id")
	if !okID {
		return
	}
	var req dto.MindMapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	mindMap, err := h.MindMaps.Update(c.Request.Context(), p.UserID, id, req)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	ok(c, mindMap)
}

func (h *MindMapHandler) delete(c *gin.Context) {
	p, okAuth := principal(c)
	if !okAuth {
		return
	}
	id, okID := pathID(c, "id")
	if !okID {
		return
	}
	if err := h.MindMaps.Delete(c.Request.Context(), p.UserID, id); err != nil {
		fail(c, h.Logger, err)
		return
	}
	noContent(c)
}
