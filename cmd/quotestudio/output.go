package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	jsoniter "github.com/json-iterator/go"

	"github.com/jsamuelsen/quote-studio/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	colorTitle = lipgloss.Color("#7C4DFF")
	colorLabel = lipgloss.Color("#90A4AE")
	colorWarn  = lipgloss.Color("#FFB300")
	colorOK    = lipgloss.Color("#43A047")

	quoteBoxWidth = 64
	cellMaxWidth  = 48
)

// printer renders command output. Colors are dropped automatically when w
// is not a terminal.
type printer struct {
	w io.Writer
	r *lipgloss.Renderer

	title lipgloss.Style
	label lipgloss.Style
	warn  lipgloss.Style
	ok    lipgloss.Style
	cell  lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)

	return &printer{
		w:     w,
		r:     r,
		title: r.NewStyle().Bold(true).Foreground(colorTitle),
		label: r.NewStyle().Foreground(colorLabel),
		warn:  r.NewStyle().Foreground(colorWarn),
		ok:    r.NewStyle().Foreground(colorOK),
		cell:  r.NewStyle().Padding(0, 1),
	}
}

func (p *printer) Title(s string) {
	fmt.Fprintln(p.w, p.title.Render(s))
}

func (p *printer) Field(label string, value any) {
	fmt.Fprintf(p.w, "%s %v\n", p.label.Render(fmt.Sprintf("%-12s", label+":")), value)
}

func (p *printer) Success(format string, args ...any) {
	fmt.Fprintln(p.w, p.ok.Render(fmt.Sprintf(format, args...)))
}

func (p *printer) Notices(notices []string) {
	for _, n := range notices {
		fmt.Fprintln(p.w, p.warn.Render("! "+n))
	}
}

// Quote draws the display text in a box framed with the palette accent.
func (p *printer) Quote(styled domain.StyledQuote) {
	border := lipgloss.Color(styled.Palette.Accent)
	if styled.Palette.Accent == "" {
		border = colorTitle
	}

	box := p.r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2).
		Width(quoteBoxWidth)

	body := p.r.NewStyle().Italic(true).Render(fmt.Sprintf("%q", styled.DisplayText()))

	if author := styled.Quote.Author; author != "" {
		body += "\n\n" + p.label.Render("- "+author)
	}

	fmt.Fprintln(p.w, box.Render(body))
}

func (p *printer) Table(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.label).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return p.cell.Bold(true)
			}

			return p.cell
		})

	fmt.Fprintln(p.w, t.String())
}

func (p *printer) JSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}

	_, err = fmt.Fprintln(p.w, string(data))

	return err
}

// clip shortens s to n runes for table cells.
func clip(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n-1]) + "…"
}
