package exchange

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"aircontrol/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const maxImportSize = 16 << 20

type Handler struct {
	service *Service
	acts    *ActGenerator
}

func NewHandler(service *Service, acts *ActGenerator) *Handler {
	return &Handler{service: service, acts: acts}
}

// RegisterRoutes wires the read-side endpoints. Import goes into the
// admin group via RegisterAdminRoutes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	e := rg.Group("/exchange")
	{
		e.GET("/export", h.Export)
		e.GET("/export/schedule.xlsx", h.ScheduleExcel)
		e.GET("/acts/:contractId/:periodId", h.PeriodAct)
	}
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.POST("/exchange/import", h.Import)
}

func (h *Handler) Export(c *gin.Context) {
	payload, err := h.service.Export(c.Request.Context(), c.Query("kind"))
	if err != nil {
		if errors.Is(err, ErrUnknownKind) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to export data")
		return
	}
	response.Success(c, http.StatusOK, payload)
}

func (h *Handler) Import(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportSize))
	if err != nil || len(raw) == 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Request body is required")
		return
	}

	result, err := h.service.Import(c.Request.Context(), raw)
	if err != nil {
		if errors.Is(err, ErrBadPayload) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to import data")
		return
	}
	response.Success(c, http.StatusOK, result)
}

func (h *Handler) ScheduleExcel(c *gin.Context) {
	data, err := h.service.ScheduleWorkbook(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build schedule workbook")
		return
	}

	name := ScheduleFileName(time.Now())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, name))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (h *Handler) PeriodAct(c *gin.Context) {
	data, err := h.service.PeriodAct(c.Request.Context(), h.acts, c.Param("contractId"), c.Param("periodId"))
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, ErrPeriodNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Contract or period not found")
		case errors.Is(err, ErrNotDone):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build act")
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="act.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
