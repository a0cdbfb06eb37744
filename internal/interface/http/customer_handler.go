package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/finboard/dashboard/internal/application"
	"github.com/finboard/dashboard/internal/forms"
	"github.com/finboard/dashboard/pkg/response"
)

type CustomerHandler struct {
	Svc    *application.CustomerService
	Logger *logrus.Logger
}

func NewCustomerHandler(svc *application.CustomerService, logger *logrus.Logger) *CustomerHandler {
	return &CustomerHandler{Svc: svc, Logger: logger}
}

// List GET /api/customers — id and name only, for select inputs.
func (h *CustomerHandler) List(c *gin.Context) {
	rows, err := h.Svc.FetchCustomers(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("fetch customers failed")
		response.Error(c, http.StatusInternalServerError, "failed to fetch all customers", nil)
		return
	}
	out := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		out = append(out, gin.H{"id": row.ID, "name": row.Name})
	}
	response.Success(c, http.StatusOK, out, "customers", nil)
}

// Filtered GET /api/customers/filtered?query=&page=
func (h *CustomerHandler) Filtered(c *gin.Context) {
	rows, err := h.Svc.FetchFilteredCustomers(c.Request.Context(), c.Query("query"), pageParam(c))
	if err != nil {
		h.Logger.WithError(err).Error("fetch filtered customers failed")
		response.Error(c, http.StatusInternalServerError, "failed to fetch filtered customers", nil)
		return
	}
	response.Success(c, http.StatusOK, rows, "filtered customers", nil)
}

// Pages GET /api/customers/pages?query=
func (h *CustomerHandler) Pages(c *gin.Context) {
	pages, err := h.Svc.FetchCustomersPages(c.Request.Context(), c.Query("query"))
	if err != nil {
		h.Logger.WithError(err).Error("fetch customer pages failed")
		response.Error(c, http.StatusInternalServerError, "failed to fetch total number of customers", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"total_pages": pages}, "customer pages", nil)
}

// Get GET /api/customers/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	cust, err := h.Svc.FetchCustomerByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Logger.WithError(err).Error("fetch customer failed")
		response.Error(c, http.StatusInternalServerError, "failed to fetch customer", nil)
		return
	}
	if cust == nil {
		response.Error(c, http.StatusNotFound, "customer not found", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"id":        cust.ID,
		"name":      cust.Name,
		"email":     cust.Email,
		"image_url": cust.ImageURL,
	}, "customer", nil)
}

// customerForm copies the recognized fields out of the multipart form; any
// other submitted keys are ignored.
func (h *CustomerHandler) customerForm(c *gin.Context) forms.CustomerForm {
	form := forms.CustomerForm{
		Name:  c.PostForm("name"),
		Email: c.PostForm("email"),
	}
	fh, err := c.FormFile("image")
	if err != nil {
		return form
	}
	f, err := fh.Open()
	if err != nil {
		h.Logger.WithError(err).Warn("failed to open uploaded image")
		return form
	}
	defer func() { _ = f.Close() }()
	blob, err := io.ReadAll(f)
	if err != nil {
		h.Logger.WithError(err).Warn("failed to read uploaded image")
		return form
	}
	form.Image = blob
	form.ImageName = fh.Filename
	form.ImageType = fh.Header.Get("Content-Type")
	return form
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *gin.Context) {
	writeMutation(c, h.Svc.CreateCustomer(c.Request.Context(), h.customerForm(c)))
}

// Update PUT /api/customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	writeMutation(c, h.Svc.UpdateCustomer(c.Request.Context(), c.Param("id"), h.customerForm(c)))
}

// Delete DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	writeMutation(c, h.Svc.DeleteCustomer(c.Request.Context(), c.Param("id")))
}
