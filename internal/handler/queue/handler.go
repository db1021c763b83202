package queue

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aleviannaf/laboratory-app/internal/handler"
	"github.com/aleviannaf/laboratory-app/internal/model"
	"github.com/aleviannaf/laboratory-app/internal/service/queue"
	"github.com/aleviannaf/laboratory-app/internal/service/toast"
)

type Handler struct {
	service *queue.Service
	store   *queue.Store
	toasts  *toast.Service
}

func NewHandler(service *queue.Service, store *queue.Store, toasts *toast.Service) *Handler {
	return &Handler{service: service, store: store, toasts: toasts}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	attendances := r.Group("/attendances")
	{
		attendances.GET("", h.ListQueue)
		attendances.GET("/counts", h.CountByTab)
		attendances.POST("/:id/complete", h.CompleteAttendance)
	}
}

// ListQueue reloads the queue for the requested date and query, then
// applies the tab partition locally.
func (h *Handler) ListQueue(c *gin.Context) {
	date := c.DefaultQuery("date", today())
	req := queue.LoadRequest{Date: date, Query: c.Query("query")}

	items, err := h.service.ReloadInto(c.Request.Context(), h.store, req)
	if err != nil {
		handler.RespondError(c, err, "Erro ao carregar atendimentos.")
		return
	}

	if tab := c.Query("tab"); tab != "" {
		items = queue.FilterByTab(items, model.AttendanceTab(tab))
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(items))
}

// CountByTab reports date-scoped tab counts from the current snapshot.
func (h *Handler) CountByTab(c *gin.Context) {
	date := c.DefaultQuery("date", today())
	counts := queue.CountByTab(h.store.Items(), date)
	c.JSON(http.StatusOK, handler.NewSuccessResponse(counts))
}

// CompleteAttendance marks the attendance done on the backend and
// reloads the queue; the reloaded server state is what the client
// renders, not a local mutation.
func (h *Handler) CompleteAttendance(c *gin.Context) {
	date := c.DefaultQuery("date", today())
	req := queue.LoadRequest{Date: date, Query: c.Query("query")}

	items, err := h.service.CompleteAndReload(c.Request.Context(), h.store, c.Param("id"), req)
	if err != nil {
		handler.RespondError(c, err, "Erro ao concluir atendimento.")
		return
	}

	h.toasts.Success("Atendimento concluido.")
	c.JSON(http.StatusOK, handler.NewSuccessResponse(items))
}

func today() string {
	return time.Now().Format("2006-01-02")
}
