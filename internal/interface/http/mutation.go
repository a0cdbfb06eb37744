package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finboard/dashboard/internal/application"
	"github.com/finboard/dashboard/pkg/response"
)

// writeMutation translates a MutationResult into the API envelope. Validation
// failures carry field errors; store failures carry only the summary message.
// The redirect target is data for the caller, never a 3xx.
func writeMutation(c *gin.Context, res application.MutationResult) {
	switch {
	case res.Ok:
		data := gin.H{}
		if res.RedirectTo != "" {
			data["redirect_to"] = res.RedirectTo
		}
		msg := res.Message
		if msg == "" {
			msg = "ok"
		}
		response.Success(c, http.StatusOK, data, msg, nil)
	case len(res.FieldErrors) > 0:
		response.Error(c, http.StatusBadRequest, res.Message, res.FieldErrors)
	default:
		response.Error(c, http.StatusInternalServerError, res.Message, nil)
	}
}
