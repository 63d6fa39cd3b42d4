package storage

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jsamuelsen/quote-studio/internal/domain"
)

const historySheet = "History"

var historyHeader = []string{
	"id", "created_at", "theme", "style", "format", "preset", "language",
	"author", "text", "translation", "emotion", "label", "polarity",
}

// Exporter encodes history and favorites for download.
type Exporter struct{}

// NewExporter returns an Exporter.
func NewExporter() *Exporter { return &Exporter{} }

// ExportHistory writes entries as json, csv or xlsx.
func (Exporter) ExportHistory(w io.Writer, entries []domain.HistoryEntry, format domain.DataFormat) error {
	switch format {
	case domain.DataJSON:
		return writeJSON(w, nonNil(entries))
	case domain.DataCSV:
		return historyCSV(w, entries)
	case domain.DataXLSX:
		return historyXLSX(w, entries)
	default:
		return domain.NewValidationErrorWithValue("format", "unsupported history export format", format)
	}
}

// ExportFavorites writes favorites as json, md or txt.
func (Exporter) ExportFavorites(w io.Writer, favorites []domain.Favorite, format domain.DataFormat) error {
	switch format {
	case domain.DataJSON:
		return writeJSON(w, nonNil(favorites))
	case domain.DataMarkdown:
		return favoritesMarkdown(w, favorites)
	case domain.DataText:
		return favoritesText(w, favorites)
	default:
		return domain.NewValidationErrorWithValue("format", "unsupported favorites export format", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}

	return nil
}

func historyRow(e domain.HistoryEntry) []string {
	s := e.Styled

	var translation, label, polarity string

	if s.Translation != nil {
		translation = s.Translation.Text
	}

	if s.Sentiment != nil {
		label = string(s.Sentiment.Label)
		polarity = strconv.FormatFloat(s.Sentiment.Polarity, 'f', 4, 64)
	}

	return []string{
		e.ID,
		e.CreatedAt.UTC().Format(time.RFC3339),
		string(s.Quote.Theme),
		string(s.Style),
		string(e.Format),
		e.Preset,
		string(s.Quote.Language),
		s.Quote.Author,
		s.Quote.Text,
		translation,
		string(s.Emotion()),
		label,
		polarity,
	}
}

func historyCSV(w io.Writer, entries []domain.HistoryEntry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(historyHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, e := range entries {
		if err := cw.Write(historyRow(e)); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

func historyXLSX(w io.Writer, entries []domain.HistoryEntry) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", historySheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	rows := make([][]string, 0, len(entries)+1)
	rows = append(rows, historyHeader)

	for _, e := range entries {
		rows = append(rows, historyRow(e))
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}

		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}

		if err := f.SetSheetRow(historySheet, cell, &values); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}

	return nil
}

func favoritesMarkdown(w io.Writer, favorites []domain.Favorite) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# Favorite Quotes")
	fmt.Fprintln(bw)

	for _, f := range favorites {
		fmt.Fprintf(bw, "## %s\n", f.Author)
		fmt.Fprintf(bw, "> %s\n", f.Text)
		fmt.Fprintf(bw, "**Theme:** %s | **Emotion:** %s", f.Theme, f.Emotion)

		if len(f.Tags) > 0 {
			fmt.Fprintf(bw, " | **Tags:** %s", strings.Join(f.Tags, ", "))
		}

		fmt.Fprintln(bw)
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

func favoritesText(w io.Writer, favorites []domain.Favorite) error {
	bw := bufio.NewWriter(w)
	rule := strings.Repeat("-", 60)

	for _, f := range favorites {
		fmt.Fprintf(bw, "\"%s\"\n", f.Text)
		fmt.Fprintf(bw, "— %s\n", f.Author)
		fmt.Fprintf(bw, "Theme: %s | Emotion: %s\n", f.Theme, f.Emotion)
		fmt.Fprintln(bw, rule)
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}
