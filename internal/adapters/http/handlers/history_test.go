package handlers

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jsamuelsen/quote-studio/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-studio/internal/app"
)

func TestHistoryHandler_List(t *testing.T) {
	s := newStudio(t)

	for _, theme := range []string{"love", "wisdom", "courage"} {
		s.generate(t, `{"theme":"`+theme+`"}`)
	}

	w := s.do(http.MethodGet, "/api/v1/history", "")
	require.Equal(t, http.StatusOK, w.Code)

	var page dto.PaginatedResponse[dto.HistoryEntryResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))

	require.Len(t, page.Items, 3)
	assert.Equal(t, "courage", page.Items[0].Quote.Theme, "newest first")
	assert.Equal(t, "love", page.Items[2].Quote.Theme)
	assert.False(t, page.HasMore)
}

func TestHistoryHandler_List_Paging(t *testing.T) {
	s := newStudio(t)

	for _, theme := range []string{"love", "wisdom", "courage", "success", "happiness"} {
		s.generate(t, `{"theme":"`+theme+`"}`)
	}

	var (
		themes []string
		cursor string
	)

	for range 5 {
		target := "/api/v1/history?limit=2"
		if cursor != "" {
			target += "&cursor=" + cursor
		}

		w := s.do(http.MethodGet, target, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var page dto.PaginatedResponse[dto.HistoryEntryResponse]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))

		for _, item := range page.Items {
			themes = append(themes, item.Quote.Theme)
		}

		if !page.HasMore {
			break
		}

		cursor = page.NextCursor
	}

	assert.Equal(t, []string{"happiness", "success", "courage", "wisdom", "love"}, themes)
}

func TestHistoryHandler_List_Filters(t *testing.T) {
	s := newStudio(t)

	s.generate(t, `{"theme":"love"}`)
	s.generate(t, `{"theme":"wisdom"}`)

	tests := []struct {
		name      string
		query     string
		wantCount int
	}{
		{name: "theme", query: "theme=amour", wantCount: 1},
		{name: "keyword", query: "q=WISDOM", wantCount: 1},
		{name: "day of generation", query: "from=2024-03-04&to=2024-03-04", wantCount: 2},
		{name: "later days", query: "from=2024-03-05", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(http.MethodGet, "/api/v1/history?"+tt.query, "")
			require.Equal(t, http.StatusOK, w.Code)

			var page dto.PaginatedResponse[dto.HistoryEntryResponse]
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
			assert.Len(t, page.Items, tt.wantCount)
		})
	}
}

func TestHistoryHandler_List_BadCursor(t *testing.T) {
	s := newStudio(t)

	w := s.do(http.MethodGet, "/api/v1/history?cursor=not-base64!", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), dto.ErrorCodeBadRequest)
}

func TestHistoryHandler_Export(t *testing.T) {
	s := newStudio(t)
	s.generate(t, `{"theme":"love"}`)
	s.generate(t, `{"theme":"wisdom"}`)

	t.Run("csv", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/v1/history/export?format=csv&theme=love", "")
		require.Equal(t, http.StatusOK, w.Code)

		assert.Equal(t, `attachment; filename="history.csv"`, w.Header().Get("Content-Disposition"))
		assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")

		rows, err := csv.NewReader(bytes.NewReader(w.Body.Bytes())).ReadAll()
		require.NoError(t, err)
		assert.Len(t, rows, 2, "header plus the love entry")
	})

	t.Run("xlsx", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/v1/history/export?format=xlsx", "")
		require.Equal(t, http.StatusOK, w.Code)

		book, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
		require.NoError(t, err)
		defer book.Close()

		rows, err := book.GetRows(book.GetSheetName(0))
		require.NoError(t, err)
		assert.Len(t, rows, 3)
	})

	t.Run("json is the default", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/v1/history/export", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	})

	t.Run("unsupported format", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/v1/history/export?format=md", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHistoryHandler_StatsAndClear(t *testing.T) {
	s := newStudio(t)
	s.generate(t, `{"theme":"love"}`)
	s.generate(t, `{"theme":"love"}`)

	w := s.do(http.MethodGet, "/api/v1/history/stats", "")
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		Total   int            `json:"total"`
		ByTheme map[string]int `json:"by_theme"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 2, stats.ByTheme["love"])

	w = s.do(http.MethodDelete, "/api/v1/history", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(http.MethodGet, "/api/v1/stats", "")
	require.Equal(t, http.StatusOK, w.Code)

	var overview app.Overview
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &overview))
	assert.Zero(t, overview.History.Total)
	assert.Zero(t, overview.Favorites.Total)
}
