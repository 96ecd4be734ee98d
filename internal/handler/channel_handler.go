package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sanuei/YoutubePlanner/internal/dto"
	"github.com/sanuei/YoutubePlanner/internal/service"
)

type ChannelHandler struct {
	Channels *service.ChannelService
	Logger   *zap.Logger
}

func (h *ChannelHandler) Register(r *gin.Engine, authMW gin.HandlerFunc) {
	g := r.Group("/api/v1/channels", authMW)
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *ChannelHandler) create(c *gin.Context) {
	p, okAuth := principal(c)
	if !okAuth {
		return
	}
	var req dto.CreateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	channel, err := h.Channels.Create(c.Request.Context(), p.UserID, req)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	created(c, channel)
}

func (h *ChannelHandler) list(c *gin.Context) {
	p, okAuth := principal(c)
	if !okAuth {
		return
	}
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	page, err := h.Channels.List(c.Request.Context(), p.UserID, q)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	ok(c, page)
}

func (h *ChannelHandler) get(c *gin.Context) {
	p, okAuth := principal(c)
	if !okAuth {
		return
	}
	id, okID := pathID(c, "id")
	if !okID {
		return
	}
	channel, err := h.Channels.Get(c.Request.Context(), p.UserID, id)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	ok(c, channel)
}

func (h *ChannelHandler) update(c *gin.Context) {
	p, okAuth := principal(c)
	if !okAuth {
		return
	}
	id, okID := pathID(c, "id")
	if !okID {
		return
	}
	var req dto.UpdateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	channel, err := h.Channels.Update(c.Request.Context(), p.UserID, id, req)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	ok(c, channel)
}

func (h *ChannelHandler) delete(c *gin.Context) {
	p, okAuth := principal(c)
	if !okAuth {
		return
	}
	id, okID := pathID(c, "id")
	if !okID {
		return
	}
	if err := h.Channels.Delete(c.Request.Context(), p.UserID, id); err != nil {
		fail(c, h.Logger, err)
		return
	}
	noContent(c)
}
