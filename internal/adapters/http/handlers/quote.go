package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-studio/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-studio/internal/app"
)

// Response headers set by GET /api/v1/quotes/image.
const (
	HeaderNotices   = "X-Quote-Notices"
	HeaderHistoryID = "X-History-ID"
	HeaderQuoteID   = "X-Quote-ID"
)

// QuoteHandler serves quote generation.
type QuoteHandler struct {
	generator *app.Generator
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(generator *app.Generator) *QuoteHandler {
	return &QuoteHandler{generator: generator}
}

// Generate handles POST /api/v1/quotes/generate.
// Runs the whole pipeline and returns the quote with the image inline.
//
// @Summary Generate a quote image
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body dto.GenerateRequest true "Generation options"
// @Success 200 {object} dto.GenerateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/quotes/generate [post]
func (h *QuoteHandler) Generate(c *gin.Context) {
	var req dto.GenerateRequest
	if c.Request.ContentLength != 0 {
		if err := dto.BindAndValidate(c, &req); err != nil {
			dto.HandleError(c, err)
			return
		}
	}

	result, err := h.generator.Generate(c.Request.Context(), req.ToApp())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewGenerateResponse(result))
}

// Image handles GET /api/v1/quotes/image.
// Same options as Generate, as query parameters; responds with the image bytes.
//
// @Summary Generate a quote image as a file
// @Tags quotes
// @Produce image/png,image/jpeg,image/webp
// @Param theme query string false "Theme or auto"
// @Param style query string false "minimal, modern or elegant"
// @Param format query string false "png, jpeg or webp"
// @Param preset query string false "Canvas preset"
// @Param lang query string false "Target language"
// @Success 200 {file} binary
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/quotes/image [get]
func (h *QuoteHandler) Image(c *gin.Context) {
	var req dto.GenerateRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	result, err := h.generator.Generate(c.Request.Context(), req.ToApp())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("quote-%s-%s.%s",
		result.Styled.Quote.Theme, result.Image.Preset, result.Image.Format.Extension())

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	c.Header(HeaderQuoteID, result.Styled.Quote.ID)

	if result.HistoryID != "" {
		c.Header(HeaderHistoryID, result.HistoryID)
	}

	if len(result.Notices) > 0 {
		c.Header(HeaderNotices, strings.Join(result.Notices, "; "))
	}

	c.Data(http.StatusOK, result.ContentType, result.Image.Data)
}

// Themes handles GET /api/v1/themes.
func (h *QuoteHandler) Themes(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewThemeResponse())
}

// Presets handles GET /api/v1/presets.
func (h *QuoteHandler) Presets(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewPresetResponse())
}

// RegisterQuoteRoutes registers quote routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.POST("/generate", h.Generate)
	quotes.GET("/image", h.Image)

	rg.GET("/themes", h.Themes)
	rg.GET("/presets", h.Presets)
}
