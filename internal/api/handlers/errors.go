package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Delfictus/neuromorphic-demo-feed/internal/utils"
)

// ErrorResponse is the error body served on every non-2xx response. The
// code field duplicates the HTTP status for clients that only look at the
// payload.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// RespondError maps typed request errors to their status codes and writes
// the standard error body. Unrecognized errors become a 500.
func RespondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	var badRequest *utils.BadRequestError
	var notFound *utils.NotFoundError
	switch {
	case errors.As(err, &badRequest):
		status = http.StatusBadRequest
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	}
	c.JSON(status, ErrorResponse{Error: err.Error(), Code: status})
}
