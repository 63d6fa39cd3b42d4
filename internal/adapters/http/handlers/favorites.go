package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-studio/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-studio/internal/app"
	"github.com/jsamuelsen/quote-studio/internal/domain"
)

// FavoritesHandler serves the favorites list.
type FavoritesHandler struct {
	favorites *app.FavoritesService
}

// NewFavoritesHandler creates a favorites handler.
func NewFavoritesHandler(favorites *app.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{favorites: favorites}
}

// List handles GET /api/v1/favorites.
//
// @Summary List favorites
// @Tags favorites
// @Produce json
// @Param theme query string false "Theme"
// @Param emotion query string false "Emotion"
// @Param q query string false "Text or author, accent-insensitive"
// @Success 200 {object} dto.FavoriteListResponse
// @Router /api/v1/favorites [get]
func (h *FavoritesHandler) List(c *gin.Context) {
	var q dto.FavoriteQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		dto.HandleError(c, err)
		return
	}

	filter := app.FavoriteFilter{Emotion: domain.Emotion(q.Emotion), Query: q.Query}
	if q.Theme != "" {
		filter.Theme, _ = domain.ParseTheme(q.Theme)
	}

	favorites, err := h.favorites.Filter(c.Request.Context(), filter)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewFavoriteListResponse(favorites))
}

// Add handles POST /api/v1/favorites.
//
// @Summary Save a favorite
// @Tags favorites
// @Accept json
// @Produce json
// @Param request body dto.AddFavoriteRequest true "Favorite"
// @Success 201 {object} dto.FavoriteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/v1/favorites [post]
func (h *FavoritesHandler) Add(c *gin.Context) {
	var req dto.AddFavoriteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	saved, err := h.favorites.Add(c.Request.Context(), req.ToDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewFavoriteResponse(saved))
}

// Remove handles DELETE /api/v1/favorites/:id.
func (h *FavoritesHandler) Remove(c *gin.Context) {
	id, err := dto.ParseFavoriteID(c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	if err := h.favorites.Remove(c.Request.Context(), id); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddTag handles POST /api/v1/favorites/:id/tags. Adding a tag the
// favorite already has is not an error.
func (h *FavoritesHandler) AddTag(c *gin.Context) {
	id, err := dto.ParseFavoriteID(c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	var req dto.AddTagRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	updated, err := h.favorites.AddTag(c.Request.Context(), id, req.Tag)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewFavoriteResponse(updated))
}

// Stats handles GET /api/v1/favorites/stats.
func (h *FavoritesHandler) Stats(c *gin.Context) {
	stats, err := h.favorites.Stats(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Export handles GET /api/v1/favorites/export?format=json|md|txt.
func (h *FavoritesHandler) Export(c *gin.Context) {
	var q dto.FavoriteExportQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		dto.HandleError(c, err)
		return
	}

	format, err := domain.ParseDataFormat(q.Format, domain.FavoriteExportFormats())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := h.favorites.Export(c.Request.Context(), &buf, format); err != nil {
		dto.HandleError(c, err)
		return
	}

	attachment(c, "favorites."+string(format), format.ContentType(), buf.Bytes())
}

// RegisterFavoritesRoutes registers the favorites routes on rg.
func (h *FavoritesHandler) RegisterFavoritesRoutes(rg *gin.RouterGroup) {
	favorites := rg.Group("/favorites")
	favorites.GET("", h.List)
	favorites.POST("", h.Add)
	favorites.GET("/stats", h.Stats)
	favorites.GET("/export", h.Export)
	favorites.DELETE("/:id", h.Remove)
	favorites.POST("/:id/tags", h.AddTag)
}
