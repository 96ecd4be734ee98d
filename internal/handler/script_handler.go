package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sanuei/YoutubePlanner/internal/dto"
	"github.com/sanuei/YoutubePlanner/internal/service"
)

type ScriptHandler struct {
	Scripts *service.ScriptService
	Logger  *zap.Logger
}

func (h *ScriptHandler) Register(r *gin.Engine, authMW gin.HandlerFunc) {
	g := r.Group("/api/v1/scripts", authMW)
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *ScriptHandler) create(c *gin.Context) {
	p, okAuth := principal(c)
	if !okAuth {
		return
	}
	var req dto.CreateScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	script, err := h.Scripts.Create(c.Request.Context(), p.UserID, req)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	created(c, script)
}

func (h *ScriptHandler) list(c *gin.Context) {
	p, okAuth := principal(c)
	if !okAuth {
		return
	}
	var q dto.ListScriptsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	page, err := h.Scripts.List(c.Request.Context(), p.UserID, q)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	ok(c, page)
}

func (h *ScriptHandler) get(c *gin.Context) {
	p, okAuth := principal(c)
	if !okAuth {
		return
	}
	id, okID := pathID(c, "id")
	if !okID {
		return
	}
	script, err := h.Scripts.Get(c.Request.Context(), p.UserID, id)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	ok(c, script)
}

func (h *ScriptHandler) update(c *gin.Context) {
	p, okAuth := principal(c)
	if !okAuth {
		return
	}
	id, okID := pathID(c, "id")
	if !okID {
		return
	}
	var req dto.UpdateScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	script, err := h.Scripts.Update(c.Request.Context(), p.UserID, id, req)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	ok(c, script)
}

func (h *ScriptHandler) delete(c *gin.Context) {
	p, okAuth := principal(c)
	if !okAuth {
		return
	}
	id, okID := pathID(c, "id")
	if !okID {
		return
	}
	if err := h.Scripts.Delete(c.Request.Context(), p.UserID, id); err != nil {
		fail(c, h.Logger, err)
		return
	}
	noContent(c)
}
