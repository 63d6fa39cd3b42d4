package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quote-studio/internal/app"
	"github.com/jsamuelsen/quote-studio/internal/domain"
	"github.com/jsamuelsen/quote-studio/internal/ports"
)

const defaultRenderConcurrency = 3

type generateOptions struct {
	req         app.GenerateRequest
	dark        bool
	outDir      string
	allPresets  bool
	concurrency int
	jsonOutput  bool
}

// generateSummary is the --json output of generate.
type generateSummary struct {
	QuoteID    string   `json:"quote_id"`
	Text       string   `json:"text"`
	Author     string   `json:"author"`
	Theme      string   `json:"theme"`
	Style      string   `json:"style"`
	Source     string   `json:"source"`
	Emotion    string   `json:"emotion,omitempty"`
	Language   string   `json:"language"`
	Files      []string `json:"files"`
	HistoryID  string   `json:"history_id,omitempty"`
	FavoriteID int      `json:"favorite_id,omitempty"`
	Notices    []string `json:"notices,omitempty"`
}

func newGenerateCmd(flags *rootFlags) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a quote image and record it in the history",
		Example: `  quotestudio generate
  quotestudio generate --theme sagesse --style elegant --format webp --preset instagram_story
  quotestudio generate --lang fr --favorite --all-presets --out ./images`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("dark") {
				opts.req.PreferDark = &opts.dark
			}

			return withStudio(cmd, flags, func(ctx context.Context, s *Studio) error {
				return runGenerate(ctx, cmd, s, opts)
			})
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.req.Theme, "theme", "t", "auto", "Theme, a French alias or auto")
	f.StringVarP(&opts.req.Style, "style", "s", "", "minimal, modern or elegant (default from config)")
	f.StringVarP(&opts.req.Format, "format", "f", "", "png, jpeg or webp (default from config)")
	f.StringVar(&opts.req.Preset, "preset", "", "Canvas preset (default from config)")
	f.StringVarP(&opts.req.Language, "lang", "l", "", "Target language, en or fr")
	f.BoolVar(&opts.req.Favorite, "favorite", false, "Also add the quote to the favorites")
	f.BoolVar(&opts.dark, "dark", false, "Prefer dark palettes")
	f.StringVarP(&opts.outDir, "out", "o", ".", "Directory the images are written to")
	f.BoolVar(&opts.allPresets, "all-presets", false, "Also render every other preset")
	f.IntVar(&opts.concurrency, "concurrency", defaultRenderConcurrency, "Renders in flight with --all-presets")
	f.BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runGenerate(ctx context.Context, cmd *cobra.Command, s *Studio, opts *generateOptions) error {
	result, err := s.Generator.Generate(ctx, opts.req)
	if err != nil {
		return err
	}

	images := []ports.RenderedImage{result.Image}

	if opts.allPresets {
		var others []domain.Preset

		for _, p := range domain.Presets() {
			if p.Name != result.Image.Preset {
				others = append(others, p)
			}
		}

		extra, err := s.Generator.RenderPresets(ctx, result.Styled, others, result.Image.Format, opts.concurrency)
		if err != nil {
			return err
		}

		images = append(images, extra...)
	}

	files, err := writeImages(opts.outDir, result.Styled.Quote.Theme, images)
	if err != nil {
		return err
	}

	summary := newGenerateSummary(result, files)
	p := newPrinter(cmd.OutOrStdout())

	if opts.jsonOutput {
		return p.JSON(summary)
	}

	p.Quote(result.Styled)
	p.Field("Theme", summary.Theme)
	p.Field("Style", summary.Style)
	p.Field("Source", summary.Source)

	if summary.Emotion != "" {
		p.Field("Emotion", summary.Emotion)
	}

	p.Field("Language", summary.Language)

	for _, file := range files {
		p.Field("Image", file)
	}

	if summary.FavoriteID > 0 {
		p.Field("Favorite", fmt.Sprintf("#%d", summary.FavoriteID))
	}

	p.Notices(result.Notices)

	return nil
}

func writeImages(dir string, theme domain.Theme, images []ports.RenderedImage) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	files := make([]string, 0, len(images))

	for _, img := range images {
		name := fmt.Sprintf("quote-%s-%s.%s", theme, img.Preset, img.Format.Extension())
		path := filepath.Join(dir, name)

		if err := os.WriteFile(path, img.Data, 0o644); err != nil { //nolint:gosec // images are meant to be shared
			return files, fmt.Errorf("writing %s: %w", name, err)
		}

		files = append(files, path)
	}

	return files, nil
}

func newGenerateSummary(result app.GenerateResult, files []string) generateSummary {
	styled := result.Styled

	return generateSummary{
		QuoteID:    styled.Quote.ID,
		Text:       styled.DisplayText(),
		Author:     styled.Quote.Author,
		Theme:      string(styled.Quote.Theme),
		Style:      string(styled.Style),
		Source:     string(styled.Quote.Source),
		Emotion:    string(styled.Emotion()),
		Language:   string(styled.DisplayLanguage()),
		Files:      files,
		HistoryID:  result.HistoryID,
		FavoriteID: result.FavoriteID,
		Notices:    result.Notices,
	}
}
