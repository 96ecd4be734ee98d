package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sanuei/YoutubePlanner/internal/dto"
	"github.com/sanuei/YoutubePlanner/internal/service"
)

type UserHandler struct {
	Users  *service.UserService
	Logger *zap.Logger
}

func (h *UserHandler) Register(r *gin.Engine, authMW gin.HandlerFunc) {
	g := r.Group("/api/v1/users", authMW)
	g.GET("/me", h.me)
	g.PUT("/me", h.updateMe)
	g.PUT("/me/password", h.changePassword)
	g.GET("/me/api-config", h.getApiConfig)
	g.PUT("/me/api-config", h.updateApiConfig)
}

func (h *UserHandler) me(c *gin.Context) {
	p, okAuth := principal(c)
	if !okAuth {
		return
	}
	user, err := h.Users.Me(c.Request.Context(), p.UserID)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	ok(c, user)
}

func (h *UserHandler) updateMe(c *gin.Context) {
	p, okAuth := principal(c)
	if !okAuth {
		return
	}
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	user, err := h.Users.UpdateMe(c.Request.Context(), p.UserID, req)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	ok(c, user)
}

func (h *UserHandler) changePassword(c *gin.Context) {
	p, okAuth := principal(c)
	if !okAuth {
		return
	}
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.Users.ChangePassword(c.Request.Context(), p.UserID, req); err != nil {
		fail(c, h.Logger, err)
		return
	}
	okMessage(c, "password changed")
}

func (h *UserHandler) getApiConfig(c *gin.Context) {
	p, okAuth := principal(c)
	if !okAuth {
		return
	}
	cfg, err := h.Users.GetApiConfig(c.Request.Context(), p.UserID)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	ok(c, cfg)
}

func (h *UserHandler) updateApiConfig(c *gin.Context) {
	p, okAuth := principal(c)
	if !okAuth {
		return
	}
	var req dto.ApiConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	cfg, err := h.Users.UpdateApiConfig(c.Request.Context(), p.UserID, req)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	ok(c, cfg)
}
