package record

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aleviannaf/laboratory-app/internal/handler"
	"github.com/aleviannaf/laboratory-app/internal/model"
	"github.com/aleviannaf/laboratory-app/internal/service/record"
	"github.com/aleviannaf/laboratory-app/internal/service/toast"
	apperrors "github.com/aleviannaf/laboratory-app/pkg/errors"
)

type Handler struct {
	service *record.Service
	toasts  *toast.Service
}

func NewHandler(service *record.Service, toasts *toast.Service) *Handler {
	return &Handler{service: service, toasts: toasts}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	patients := r.Group("/patients")
	{
		patients.GET("/:id/record", h.GetRecord)
		patients.POST("/:id/attendances", h.CreateAttendance)
	}
}

func (h *Handler) GetRecord(c *gin.Context) {
	view, err := h.service.GetRecord(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.RespondError(c, err, "Nao foi possivel carregar o prontuario.")
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(view))
}

// CreateAttendance creates a record entry from selected catalog exams.
// Clients re-fetch the record afterwards; the response carries only
// the created entry.
func (h *Handler) CreateAttendance(c *gin.Context) {
	var payload model.CreateAttendancePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	payload.PatientID = c.Param("id")

	entry, err := h.service.CreateAttendance(c.Request.Context(), payload)
	if err != nil {
		h.toasts.Error(apperrors.NormalizeError(err, "Nao foi possivel concluir a operacao."))
		handler.RespondError(c, err, "Nao foi possivel concluir a operacao.")
		return
	}

	h.toasts.Success("Atendimento criado com sucesso.")
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(entry))
}
