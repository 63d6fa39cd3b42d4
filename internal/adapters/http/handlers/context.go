package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-studio/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-studio/internal/app"
	"github.com/jsamuelsen/quote-studio/internal/domain"
	"github.com/jsamuelsen/quote-studio/internal/ports"
)

// ContextHandler shows what auto theme selection sees.
type ContextHandler struct {
	resolver *app.ContextResolver
	selector *app.ThemeSelector
}

// NewContextHandler creates a new context handler.
func NewContextHandler(resolver *app.ContextResolver, selector *app.ThemeSelector) *ContextHandler {
	return &ContextHandler{resolver: resolver, selector: selector}
}

// Get handles GET /api/v1/context.
//
// @Summary Current context and auto theme votes
// @Tags context
// @Produce json
// @Success 200 {object} dto.ContextDetailResponse
// @Router /api/v1/context [get]
func (h *ContextHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	current := h.resolver.Resolve(ctx)

	var reading *ports.WeatherReading
	if r, ok := h.resolver.Weather(ctx); ok {
		reading = &r
	}

	resp := dto.ContextDetailResponse{
		ContextResponse: dto.NewContextResponse(current),
		Message:         app.ContextMessage(current, reading),
		AutoTheme:       string(h.selector.Select(domain.ThemeAuto, current)),
		Scores:          h.selector.Explain(current),
	}

	if reading != nil {
		temp := reading.TempC
		resp.TemperatureC = &temp
	}

	c.JSON(http.StatusOK, resp)
}

// RegisterContextRoutes registers the context route on rg.
func (h *ContextHandler) RegisterContextRoutes(rg *gin.RouterGroup) {
	rg.GET("/context", h.Get)
}
