package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-studio/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-studio/internal/app"
)

// StatsHandler serves the combined history and favorites overview.
type StatsHandler struct {
	history   *app.HistoryService
	favorites *app.FavoritesService
}

// NewStatsHandler creates a stats handler. Either service may be nil.
func NewStatsHandler(history *app.HistoryService, favorites *app.FavoritesService) *StatsHandler {
	return &StatsHandler{history: history, favorites: favorites}
}

// Overview handles GET /api/v1/stats.
func (h *StatsHandler) Overview(c *gin.Context) {
	overview, err := app.StatsOverview(c.Request.Context(), h.history, h.favorites)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}
