package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/finboard/dashboard/internal/application"
	"github.com/finboard/dashboard/pkg/response"
)

type DashboardHandler struct {
	Svc    *application.DashboardService
	Logger *logrus.Logger
}

func NewDashboardHandler(svc *application.DashboardService, logger *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{Svc: svc, Logger: logger}
}

func (h *DashboardHandler) Revenue(c *gin.Context) {
	rows, err := h.Svc.FetchRevenue(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("fetch revenue failed")
		response.Error(c, http.StatusInternalServerError, "failed to fetch revenue data", nil)
		return
	}
	out := make([]gin.H, 0, len(rows))
	for _, r := range rows {
		out = append(out, gin.H{"month": r.Month, "revenue": r.Revenue})
	}
	response.Success(c, http.StatusOK, out, "revenue", nil)
}

func (h *DashboardHandler) LatestInvoices(c *gin.Context) {
	rows, err := h.Svc.FetchLatestInvoices(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("fetch latest invoices failed")
		response.Error(c, http.StatusInternalServerError, "failed to fetch the latest invoices", nil)
		return
	}
	response.Success(c, http.StatusOK, rows, "latest invoices", nil)
}

func (h *DashboardHandler) Cards(c *gin.Context) {
	cards, err := h.Svc.FetchCardData(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("fetch card data failed")
		response.Error(c, http.StatusInternalServerError, "failed to fetch card data", nil)
		return
	}
	response.Success(c, http.StatusOK, cards, "card data", nil)
}
