package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sanuei/YoutubePlanner/internal/auth"
	"github.com/sanuei/YoutubePlanner/internal/dto"
	"github.com/sanuei/YoutubePlanner/internal/service"
)

type AuthHandler struct {
	Auth   *service.AuthService
	Logger *zap.Logger
}

func (h *AuthHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1/auth")
	g.POST("/register", h.register)
	g.POST("/login", h.login)
	g.POST("/refresh", h.refresh)
	g.POST("/logout", h.logout)
}

func (h *AuthHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	user, err := h.Auth.Register(c.Request.Context(), req)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	created(c, user)
}

func (h *AuthHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	tokens, err := h.Auth.Login(c.Request.Context(), req)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	ok(c, tokens)
}

func (h *AuthHandler) refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	tokens, err := h.Auth.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	ok(c, tokens)
}

func (h *AuthHandler) logout(c *gin.Context) {
	var req dto.RefreshTokenRequest
	// Body is optional; a missing token still logs out.
	_ = c.ShouldBindJSON(&req)
	if err := h.Auth.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		fail(c, h.Logger, err)
		return
	}
	okMessage(c, "logged out")
}

// principal fetches the authenticated identity set by the JWT middleware.
// Routes behind RequireJWT always have one; the guard is for miswiring.
func principal(c *gin.Context) (auth.Principal, bool) {
	p, ok := auth.PrincipalFrom(c)
	if !ok {
		respond(c, http.StatusUnauthorized, "authentication required", nil, nil)
	}
	return p, ok
}
