package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/aleviannaf/laboratory-app/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// RespondError maps the error taxonomy to HTTP: validation failures
// are 400 with their field message, the sniffed not-found class is
// 404, conflicts are 409, everything else from the backend is 502
// with the normalized text.
func RespondError(c *gin.Context, err error, fallback string) {
	message := apperrors.NormalizeError(err, fallback)

	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, NewErrorResponse(message))
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, NewErrorResponse(message))
	case apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, NewErrorResponse(message))
	default:
		c.JSON(http.StatusBadGateway, NewErrorResponse(message))
	}
}
