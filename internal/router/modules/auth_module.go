package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finboard/dashboard/internal/container"
	handlers "github.com/finboard/dashboard/internal/interface/http"
	"github.com/finboard/dashboard/internal/interface/middleware"
	"github.com/finboard/dashboard/pkg/helpers"
)

// AuthModule wires the sign-in endpoints.
// Public: POST /api/login, POST /api/refresh (both rate limited; private
// addresses bypass the limiter so local tooling never locks itself out)
// Protected: POST /api/logout
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.POST("/login", loginLimiter, m.Handler.Login)

	refreshLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	rg.POST("/refresh", refreshLimiter, m.Handler.Refresh)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.POST("/logout", m.Handler.Logout)
}
