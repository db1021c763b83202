package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aleviannaf/laboratory-app/internal/handler"
	"github.com/aleviannaf/laboratory-app/internal/service/catalog"
)

type Handler struct {
	service *catalog.Service
}

func NewHandler(service *catalog.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	exams := r.Group("/exams")
	{
		exams.GET("/catalog", h.ListCatalog)
		exams.GET("/catalog/:id", h.GetCatalogItem)
	}
}

func (h *Handler) ListCatalog(c *gin.Context) {
	sections, err := h.service.List(c.Request.Context(), c.Query("query"))
	if err != nil {
		handler.RespondError(c, err, "Erro ao carregar catalogo de exames.")
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(sections))
}

func (h *Handler) GetCatalogItem(c *gin.Context) {
	item, ok := h.service.FindByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("exame nao encontrado"))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(item))
}
