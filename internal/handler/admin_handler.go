package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sanuei/YoutubePlanner/internal/dto"
	"github.com/sanuei/YoutubePlanner/internal/service"
)

// AdminHandler exposes user administration. Role enforcement happens in the
// service against the stored role, not the token.
type AdminHandler struct {
	Admin  *service.AdminService
	Logger *zap.Logger
}

func (h *AdminHandler) Register(r *gin.Engine, authMW gin.HandlerFunc) {
	g := r.Group("/api/v1/admin/users", authMW)
	g.GET("", h.listUsers)
	g.GET("/:id", h.getUser)
	g.PUT("/:id", h.updateUser)
	g.PUT("/:id/role", h.updateUserRole)
	g.DELETE("/:id", h.deleteUser)
}

func (h *AdminHandler) listUsers(c *gin.Context) {
	p, okAuth := principal(c)
	if !okAuth {
		return
	}
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	page, err := h.Admin.ListUsers(c.Request.Context(), p.UserID, q)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	ok(c, page)
}

func (h *AdminHandler) getUser(c *gin.Context) {
	p, okAuth := principal(c)
	if !okAuth {
		return
	}
	id, okID := pathID(c, "id")
	if !okID {
		return
	}
	user, err := h.Admin.GetUser(c.Request.Context(), p.UserID, id)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	ok(c, user)
}

func (h *AdminHandler) updateUser(c *gin.Context) {
	p, okAuth := principal(c)
	if !okAuth {
		return
	}
	id, okID := pathID(c, "id")
	if !okID {
		return
	}
	var req dto.AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	user, err := h.Admin.UpdateUser(c.Request.Context(), p.UserID, id, req)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	ok(c, user)
}

func (h *AdminHandler) updateUserRole(c *gin.Context) {
	p, okAuth := principal(c)
	if !okAuth {
		return
	}
	id, okID := pathID(c, "id")
	if !okID {
		return
	}
	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	user, err := h.Admin.UpdateUserRole(c.Request.Context(), p.UserID, id, req.Role)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	ok(c, user)
}

func (h *AdminHandler) deleteUser(c *gin.Context) {
	p, okAuth := principal(c)
	if !okAuth {
		return
	}
	id, okID := pathID(c, "id")
	if !okID {
		return
	}
	if err := h.Admin.DeleteUser(c.Request.Context(), p.UserID, id); err != nil {
		fail(c, h.Logger, err)
		return
	}
	noContent(c)
}
