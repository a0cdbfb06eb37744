package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/finboard/dashboard/internal/container"
	handlers "github.com/finboard/dashboard/internal/interface/http"
	"github.com/finboard/dashboard/internal/interface/middleware"
	"github.com/finboard/dashboard/pkg/helpers"
)

// DashboardModule wires the overview reads behind the session middleware.
type DashboardModule struct {
	Handler *handlers.DashboardHandler
	JWT     *helpers.JWTManager
}

func NewDashboardModule(h *handlers.DashboardHandler, jwt *helpers.JWTManager) *DashboardModule {
	return &DashboardModule{Handler: h, JWT: jwt}
}

func (m *DashboardModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/dashboard")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	{
		auth.GET("/revenue", m.Handler.Revenue)
		auth.GET("/latest-invoices", m.Handler.LatestInvoices)
		auth.GET("/cards", m.Handler.Cards)
	}
}
