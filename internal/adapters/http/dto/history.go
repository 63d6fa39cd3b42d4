package dto

import (
	"strconv"
	"time"

	"github.com/jsamuelsen/quote-studio/internal/domain"
)

// HistoryQuery filters GET /api/v1/history. Dates are inclusive days in
// the form 2006-01-02; To covers the whole day.
type HistoryQuery struct {
	PaginationRequest

	Theme   string `form:"theme"   validate:"omitempty,theme"`
	Emotion string `form:"emotion" validate:"omitempty,oneof=joy motivation wisdom love sadness anger fear"`
	Label   string `form:"label"   validate:"omitempty,oneof=positive neutral negative"`
	Query   string `form:"q"       validate:"omitempty,max=200"`
	From    string `form:"from"    validate:"omitempty,datetime=2006-01-02"`
	To      string `form:"to"      validate:"omitempty,datetime=2006-01-02"`
}

// Validate rejects a range that ends before it starts.
func (q *HistoryQuery) Validate() error {
	if q.From != "" && q.To != "" && q.To < q.From {
		return domain.NewValidationErrorWithValue("to", "must not be before from", q.To)
	}

	return nil
}

// Filter converts the query. Dates are interpreted in loc.
func (q *HistoryQuery) Filter(loc *time.Location) domain.HistoryFilter {
	if loc == nil {
		loc = time.UTC
	}

	f := domain.HistoryFilter{
		Emotion: domain.Emotion(q.Emotion),
		Label:   domain.Label(q.Label),
		Keyword: q.Query,
	}

	if q.Theme != "" {
		f.Theme, _ = domain.ParseTheme(q.Theme)
	}

	if from, err := time.ParseInLocation(time.DateOnly, q.From, loc); err == nil {
		f.From = from
	}

	if to, err := time.ParseInLocation(time.DateOnly, q.To, loc); err == nil {
		f.To = to.AddDate(0, 0, 1)
	}

	return f
}

// HistoryExportQuery selects the encoding of a history export.
type HistoryExportQuery struct {
	HistoryQuery

	Format string `form:"format" validate:"omitempty,oneof=json csv xlsx"`
}

// HistoryEntryResponse is one history record.
type HistoryEntryResponse struct {
	ID        string          `json:"id"`
	CreatedAt time.Time       `json:"createdAt"`
	Format    string          `json:"format"`
	Preset    string          `json:"preset"`
	Quote     QuoteResponse   `json:"quote"`
	Context   ContextResponse `json:"context"`
}

// NewHistoryEntryResponse converts a history entry.
func NewHistoryEntryResponse(e domain.HistoryEntry) HistoryEntryResponse {
	return HistoryEntryResponse{
		ID:        e.ID,
		CreatedAt: e.CreatedAt,
		Format:    string(e.Format),
		Preset:    e.Preset,
		Quote:     NewQuoteResponse(e.Styled),
		Context:   NewContextResponse(e.Styled.Context),
	}
}

// HistoryCursor positions the next page after e.
func HistoryCursor(e HistoryEntryResponse) *CursorData {
	return NewCursor("created_at", e.CreatedAt.UTC().Format(time.RFC3339Nano), e.ID)
}

// FavoriteQuery filters GET /api/v1/favorites.
type FavoriteQuery struct {
	Theme   string `form:"theme"   validate:"omitempty,theme"`
	Emotion string `form:"emotion" validate:"omitempty,oneof=joy motivation wisdom love sadness anger fear"`
	Query   string `form:"q"       validate:"omitempty,max=200"`
}

// FavoriteExportQuery selects the encoding of a favorites export.
type FavoriteExportQuery struct {
	Format string `form:"format" validate:"omitempty,oneof=json md markdown txt"`
}

// AddFavoriteRequest is the body of POST /api/v1/favorites.
type AddFavoriteRequest struct {
	Text    string   `json:"text"    validate:"required,notempty,max=1000"`
	Author  string   `json:"author"  validate:"omitempty,max=200"`
	Theme   string   `json:"theme"   validate:"omitempty,theme"`
	Emotion string   `json:"emotion" validate:"omitempty,oneof=joy motivation wisdom love sadness anger fear"`
	Tags    []string `json:"tags"    validate:"omitempty,max=20,dive,notempty,max=32"`
}

// ToDomain converts the request into an unsaved favorite.
func (r AddFavoriteRequest) ToDomain() domain.Favorite {
	f := domain.Favorite{
		Text:    r.Text,
		Author:  r.Author,
		Emotion: domain.Emotion(r.Emotion),
		Tags:    r.Tags,
	}

	if r.Theme != "" {
		f.Theme, _ = domain.ParseTheme(r.Theme)
	}

	return f
}

// AddTagRequest is the body of POST /api/v1/favorites/:id/tags.
type AddTagRequest struct {
	Tag string `json:"tag" validate:"required,notempty,max=32"`
}

// ParseFavoriteID reads a favorite ID from a path segment.
func ParseFavoriteID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, domain.NewValidationErrorWithValue("id", "must be a positive integer", raw)
	}

	return id, nil
}

// FavoriteResponse is a saved favorite.
type FavoriteResponse struct {
	ID        int       `json:"id"`
	QuoteID   string    `json:"quoteId,omitempty"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Theme     string    `json:"theme,omitempty"`
	Emotion   string    `json:"emotion,omitempty"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewFavoriteResponse converts a favorite.
func NewFavoriteResponse(f domain.Favorite) FavoriteResponse {
	tags := f.Tags
	if tags == nil {
		tags = []string{}
	}

	return FavoriteResponse{
		ID:        f.ID,
		QuoteID:   f.QuoteID,
		Text:      f.Text,
		Author:    f.Author,
		Theme:     string(f.Theme),
		Emotion:   string(f.Emotion),
		Tags:      tags,
		CreatedAt: f.CreatedAt,
	}
}

// FavoriteListResponse wraps a favorites listing.
type FavoriteListResponse struct {
	Items []FavoriteResponse `json:"items"`
	Total int                `json:"total"`
}

// NewFavoriteListResponse converts a favorites listing.
func NewFavoriteListResponse(favorites []domain.Favorite) FavoriteListResponse {
	items := make([]FavoriteResponse, 0, len(favorites))
	for _, f := range favorites {
		items = append(items, NewFavoriteResponse(f))
	}

	return FavoriteListResponse{Items: items, Total: len(items)}
}
