package patient

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aleviannaf/laboratory-app/internal/handler"
	"github.com/aleviannaf/laboratory-app/internal/model"
	"github.com/aleviannaf/laboratory-app/internal/service/patient"
	"github.com/aleviannaf/laboratory-app/internal/service/toast"
	apperrors "github.com/aleviannaf/laboratory-app/pkg/errors"
)

type Handler struct {
	service *patient.Service
	toasts  *toast.Service
}

func NewHandler(service *patient.Service, toasts *toast.Service) *Handler {
	return &Handler{service: service, toasts: toasts}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	patients := r.Group("/patients")
	{
		patients.POST("", h.CreatePatient)
		patients.GET("", h.ListPatients)
	}
}

func (h *Handler) CreatePatient(c *gin.Context) {
	var draft model.PatientDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	created, err := h.service.Create(c.Request.Context(), draft)
	if err != nil {
		h.toasts.Error(apperrors.NormalizeError(err, "Erro ao salvar paciente."))
		handler.RespondError(c, err, "Erro ao salvar paciente.")
		return
	}

	h.toasts.Success("Paciente cadastrado com sucesso.")
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.service.List(c.Request.Context(), c.Query("query"))
	if err != nil {
		handler.RespondError(c, err, "Erro ao carregar pacientes.")
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(patients))
}
