// Package catalog holds the local quote table the pipeline falls back to
// when the remote provider is unavailable.
//
// The table is compiled into the binary from quotes.yaml. An optional overlay
// file adds quotes at runtime and can be hot-reloaded with Watch. Every load
// is validated: a theme without quotes is a fatal domain.ConfigurationError.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen/quote-studio/internal/domain"
)

//go:embed quotes.yaml
var embedded []byte

const embeddedSource = "embedded catalog"

// file is the on-disk shape of quotes.yaml and overlays. An overlay with
// replace set substitutes the embedded table instead of extending it.
type file struct {
	Replace bool    `yaml:"replace"`
	Quotes  []entry `yaml:"quotes"`
}

type entry struct {
	Theme  string   `yaml:"theme"`
	Lang   string   `yaml:"lang"`
	Author string   `yaml:"author"`
	Text   string   `yaml:"text"`
	Tags   []string `yaml:"tags"`
}

// Options configure New.
type Options struct {
	// OverlayPath is an optional YAML file merged on top of the embedded table.
	// A missing file is not an error.
	OverlayPath string
	Logger      *slog.Logger
}

// Catalog is the validated local table, safe for concurrent use.
type Catalog struct {
	mu      sync.RWMutex
	byTheme map[domain.Theme][]domain.Quote

	base    map[domain.Theme][]domain.Quote
	overlay string
	logger  *slog.Logger
}

// New parses the embedded table, merges the overlay and validates the result.
func New(opts Options) (*Catalog, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	base, _, err := parse(bytes.NewReader(embedded), embeddedSource)
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		base:    base,
		overlay: opts.OverlayPath,
		logger:  logger.With(slog.String("component", "catalog")),
	}

	table, err := c.build()
	if err != nil {
		return nil, err
	}

	c.byTheme = table

	return c, nil
}

// Reload re-reads the overlay. On error the current table is kept.
func (c *Catalog) Reload() error {
	table, err := c.build()
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.byTheme = table
	c.mu.Unlock()

	c.logger.Info("catalog reloaded", slog.Any("themes", countThemes(table)))

	return nil
}

// ByTheme returns a copy of the quotes for theme.
func (c *Catalog) ByTheme(theme domain.Theme) []domain.Quote {
	c.mu.RLock()
	defer c.mu.RUnlock()

	quotes := c.byTheme[theme]
	out := make([]domain.Quote, len(quotes))
	copy(out, quotes)

	return out
}

// Themes returns the number of quotes per theme.
func (c *Catalog) Themes() map[domain.Theme]int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return countThemes(c.byTheme)
}

// Name is the health check name.
func (c *Catalog) Name() string { return "catalog" }

// Check re-validates the live table. It only fails if the table was
// corrupted after load, which would make fallback impossible.
func (c *Catalog) Check(_ context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return validate(c.byTheme, "live catalog")
}

func (c *Catalog) build() (map[domain.Theme][]domain.Quote, error) {
	table := make(map[domain.Theme][]domain.Quote, len(c.base))
	for theme, quotes := range c.base {
		table[theme] = append([]domain.Quote(nil), quotes...)
	}

	if c.overlay != "" {
		f, err := os.Open(c.overlay)

		switch {
		case errors.Is(err, os.ErrNotExist):
			c.logger.Debug("catalog overlay not found", slog.String("path", c.overlay))
		case err != nil:
			return nil, fmt.Errorf("opening catalog overlay: %w", err)
		default:
			extra, replace, err := parse(f, c.overlay)
			_ = f.Close()

			if err != nil {
				return nil, err
			}

			if replace {
				table = extra
			} else {
				merge(table, extra)
			}
		}
	}

	source := embeddedSource
	if c.overlay != "" {
		source = embeddedSource + " + " + c.overlay
	}

	if err := validate(table, source); err != nil {
		return nil, err
	}

	return table, nil
}

func parse(r io.Reader, source string) (map[domain.Theme][]domain.Quote, bool, error) {
	var f file

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, false, fmt.Errorf("parsing %s: %w", source, err)
	}

	table := make(map[domain.Theme][]domain.Quote)

	for i, e := range f.Quotes {
		theme, err := domain.ParseTheme(e.Theme)
		if err != nil || !theme.Concrete() {
			return nil, false, fmt.Errorf("%s: quote %d: unknown theme %q", source, i, e.Theme)
		}

		lang, err := domain.ParseLanguage(e.Lang)
		if err != nil {
			return nil, false, fmt.Errorf("%s: quote %d: %w", source, i, err)
		}

		q, err := domain.NewQuote(domain.QuoteParams{
			Text:     e.Text,
			Author:   e.Author,
			Theme:    theme,
			Tags:     append([]string{string(theme)}, e.Tags...),
			Language: lang,
			Source:   domain.SourceLocal,
		})
		if err != nil {
			return nil, false, fmt.Errorf("%s: quote %d: %w", source, i, err)
		}

		table[theme] = append(table[theme], q)
	}

	return table, f.Replace, nil
}

// merge appends extra to table, skipping quotes already present.
func merge(table, extra map[domain.Theme][]domain.Quote) {
	for theme, quotes := range extra {
		seen := make(map[string]bool, len(table[theme]))
		for _, q := range table[theme] {
			seen[q.ID] = true
		}

		for _, q := range quotes {
			if !seen[q.ID] {
				seen[q.ID] = true
				table[theme] = append(table[theme], q)
			}
		}
	}
}

// validate requires at least one quote for every concrete theme.
func validate(table map[domain.Theme][]domain.Quote, source string) error {
	for _, theme := range domain.AllThemes() {
		if len(table[theme]) == 0 {
			return domain.NewConfigurationError(theme, source)
		}
	}

	return nil
}

func countThemes(table map[domain.Theme][]domain.Quote) map[domain.Theme]int {
	out := make(map[domain.Theme]int, len(table))
	for theme, quotes := range table {
		out[theme] = len(quotes)
	}

	return out
}
