package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/finboard/dashboard/internal/container"
	handlers "github.com/finboard/dashboard/internal/interface/http"
	"github.com/finboard/dashboard/internal/interface/middleware"
	"github.com/finboard/dashboard/pkg/helpers"
)

// CustomerModule wires the customer reads and validated mutations.
type CustomerModule struct {
	Handler *handlers.CustomerHandler
	JWT     *helpers.JWTManager
}

func NewCustomerModule(h *handlers.CustomerHandler, jwt *helpers.JWTManager) *CustomerModule {
	return &CustomerModule{Handler: h, JWT: jwt}
}

func (m *CustomerModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/customers")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	{
		auth.GET("", m.Handler.List)
		auth.GET("/filtered", m.Handler.Filtered)
		auth.GET("/pages", m.Handler.Pages)
		auth.GET("/:id", m.Handler.Get)
		auth.POST("", m.Handler.Create)
		auth.PUT("/:id", m.Handler.Update)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
