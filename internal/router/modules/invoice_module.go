package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/finboard/dashboard/internal/container"
	handlers "github.com/finboard/dashboard/internal/interface/http"
	"github.com/finboard/dashboard/internal/interface/middleware"
	"github.com/finboard/dashboard/pkg/helpers"
)

// InvoiceModule wires the invoice reads and validated mutations.
type InvoiceModule struct {
	Handler *handlers.InvoiceHandler
	JWT     *helpers.JWTManager
}

func NewInvoiceModule(h *handlers.InvoiceHandler, jwt *helpers.JWTManager) *InvoiceModule {
	return &InvoiceModule{Handler: h, JWT: jwt}
}

func (m *InvoiceModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/invoices")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	{
		auth.GET("", m.Handler.List)
		auth.GET("/pages", m.Handler.Pages)
		auth.GET("/:id", m.Handler.Get)
		auth.POST("", m.Handler.Create)
		auth.PUT("/:id", m.Handler.Update)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
