package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-studio/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-studio/internal/app"
	"github.com/jsamuelsen/quote-studio/internal/domain"
)

// HistoryHandler serves the generation history.
type HistoryHandler struct {
	history  *app.HistoryService
	location *time.Location
}

// NewHistoryHandler creates a history handler. Date filters are read in loc.
func NewHistoryHandler(history *app.HistoryService, loc *time.Location) *HistoryHandler {
	if loc == nil {
		loc = time.UTC
	}

	return &HistoryHandler{history: history, location: loc}
}

// List handles GET /api/v1/history.
// Entries come newest first and are paged with an opaque cursor.
//
// @Summary List generated quotes
// @Tags history
// @Produce json
// @Param theme query string false "Theme"
// @Param emotion query string false "Emotion"
// @Param label query string false "positive, neutral or negative"
// @Param q query string false "Text or author keyword"
// @Param from query string false "First day, 2006-01-02"
// @Param to query string false "Last day, 2006-01-02"
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size, 1-100"
// @Success 200 {object} dto.PaginatedResponse[dto.HistoryEntryResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/history [get]
func (h *HistoryHandler) List(c *gin.Context) {
	var q dto.HistoryQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		dto.HandleError(c, err)
		return
	}

	after, err := q.DecodeCursor()
	if err != nil && !errors.Is(err, dto.ErrNoCursor) {
		dto.HandleError(c, err)
		return
	}

	entries, err := h.history.List(c.Request.Context(), q.Filter(h.location))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	slices.Reverse(entries)

	items := make([]dto.HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.NewHistoryEntryResponse(e))
	}

	page, err := dto.PageAfter(items, after, q.GetLimit(), dto.HistoryCursor)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// Stats handles GET /api/v1/history/stats.
func (h *HistoryHandler) Stats(c *gin.Context) {
	stats, err := h.history.Stats(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Export handles GET /api/v1/history/export?format=json|csv|xlsx.
// The filters of List apply; pagination does not.
func (h *HistoryHandler) Export(c *gin.Context) {
	var q dto.HistoryExportQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		dto.HandleError(c, err)
		return
	}

	format, err := domain.ParseDataFormat(q.Format, domain.HistoryExportFormats())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := h.history.Export(c.Request.Context(), &buf, format, q.Filter(h.location)); err != nil {
		dto.HandleError(c, err)
		return
	}

	attachment(c, "history."+string(format), format.ContentType(), buf.Bytes())
}

// Clear handles DELETE /api/v1/history.
func (h *HistoryHandler) Clear(c *gin.Context) {
	if err := h.history.Clear(c.Request.Context()); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RegisterHistoryRoutes registers the read routes on rg. Clear is
// registered by the router behind the admin role.
func (h *HistoryHandler) RegisterHistoryRoutes(rg *gin.RouterGroup) {
	history := rg.Group("/history")
	history.GET("", h.List)
	history.GET("/stats", h.Stats)
	history.GET("/export", h.Export)
}

func attachment(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}
