package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/finboard/dashboard/internal/application"
	"github.com/finboard/dashboard/internal/forms"
	"github.com/finboard/dashboard/pkg/response"
)

type InvoiceHandler struct {
	Svc    *application.InvoiceService
	Logger *logrus.Logger
}

func NewInvoiceHandler(svc *application.InvoiceService, logger *logrus.Logger) *InvoiceHandler {
	return &InvoiceHandler{Svc: svc, Logger: logger}
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// List GET /api/invoices?query=&page=
func (h *InvoiceHandler) List(c *gin.Context) {
	rows, err := h.Svc.FetchFilteredInvoices(c.Request.Context(), c.Query("query"), pageParam(c))
	if err != nil {
		h.Logger.WithError(err).Error("fetch invoices failed")
		response.Error(c, http.StatusInternalServerError, "failed to fetch invoices", nil)
		return
	}
	out := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		out = append(out, gin.H{
			"id":        row.ID,
			"amount":    row.Amount,
			"date":      row.Date.Format(time.DateOnly),
			"status":    row.Status,
			"name":      row.Name,
			"email":     row.Email,
			"image_url": row.ImageURL,
		})
	}
	response.Success(c, http.StatusOK, out, "invoices", nil)
}

// Pages GET /api/invoices/pages?query=
func (h *InvoiceHandler) Pages(c *gin.Context) {
	pages, err := h.Svc.FetchInvoicesPages(c.Request.Context(), c.Query("query"))
	if err != nil {
		h.Logger.WithError(err).Error("fetch invoice pages failed")
		response.Error(c, http.StatusInternalServerError, "failed to fetch total number of invoices", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"total_pages": pages}, "invoice pages", nil)
}

// Get GET /api/invoices/:id
func (h *InvoiceHandler) Get(c *gin.Context) {
	inv, err := h.Svc.FetchInvoiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Logger.WithError(err).Error("fetch invoice failed")
		response.Error(c, http.StatusInternalServerError, "failed to fetch invoice", nil)
		return
	}
	if inv == nil {
		response.Error(c, http.StatusNotFound, "invoice not found", nil)
		return
	}
	response.Success(c, http.StatusOK, inv, "invoice", nil)
}

func invoiceForm(c *gin.Context) forms.InvoiceForm {
	return forms.InvoiceForm{
		CustomerID: c.PostForm("customerId"),
		Amount:     c.PostForm("amount"),
		Status:     c.PostForm("status"),
	}
}

// Create POST /api/invoices
func (h *InvoiceHandler) Create(c *gin.Context) {
	writeMutation(c, h.Svc.CreateInvoice(c.Request.Context(), invoiceForm(c)))
}

// Update PUT /api/invoices/:id
func (h *InvoiceHandler) Update(c *gin.Context) {
	writeMutation(c, h.Svc.UpdateInvoice(c.Request.Context(), c.Param("id"), invoiceForm(c)))
}

// Delete DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *gin.Context) {
	writeMutation(c, h.Svc.DeleteInvoice(c.Request.Context(), c.Param("id")))
}
