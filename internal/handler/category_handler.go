package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sanuei/YoutubePlanner/internal/dto"
	"github.com/sanuei/YoutubePlanner/internal/service"
)

type CategoryHandler struct {
	Categories *service.CategoryService
	Logger     *zap.Logger
}

func (h *CategoryHandler) Register(r *gin.Engine, authMW gin.HandlerFunc) {
	g := r.Group("/api/v1/categories", authMW)
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *CategoryHandler) create(c *gin.Context) {
	p, okAuth := principal(c)
	if !okAuth {
		return
	}
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	category, err := h.Categories.Create(c.Request.Context(), p.UserID, req)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	created(c, category)
}

func (h *CategoryHandler) list(c *gin.Context) {
	p, okAuth := principal(c)
	if !okAuth {
		return
	}
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	page, err := h.Categories.List(c.Request.Context(), p.UserID, q)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	ok(c, page)
}

func (h *CategoryHandler) get(c *gin.Context) {
	p, okAuth := principal(c)
	if !okAuth {
		return
	}
	id, okID := pathID(c, "id")
	if !okID {
		return
	}
	category, err := h.Categories.Get(c.Request.Context(), p.UserID, id)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	ok(c, category)
}

func (h *CategoryHandler) update(c *gin.Context) {
	p, okAuth := principal(c)
	if !okAuth {
		return
	}
	id, okID := pathID(c, "id")
	if !okID {
		return
	}
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	category, err := h.Categories.Update(c.Request.Context(), p.UserID, id, req)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	ok(c, category)
}

func (h *CategoryHandler) delete(c *gin.Context) {
	p, okAuth := principal(c)
	if !okAuth {
		return
	}
	id, okID := pathID(c, "id")
	if !okID {
		return
	}
	if err := h.Categories.Delete(c.Request.Context(), p.UserID, id); err != nil {
		fail(c, h.Logger, err)
		return
	}
	noContent(c)
}
