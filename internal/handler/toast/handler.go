package toast

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aleviannaf/laboratory-app/internal/handler"
	toastsvc "github.com/aleviannaf/laboratory-app/internal/service/toast"
)

type Handler struct {
	service *toastsvc.Service
}

func NewHandler(service *toastsvc.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	toasts := r.Group("/toasts")
	{
		toasts.GET("", h.ListToasts)
		toasts.DELETE("/:id", h.DismissToast)
	}
}

func (h *Handler) ListToasts(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.service.Items()))
}

func (h *Handler) DismissToast(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid toast id"))
		return
	}

	h.service.Dismiss(id)
	c.Status(http.StatusNoContent)
}
