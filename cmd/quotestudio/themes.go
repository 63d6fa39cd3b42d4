package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quote-studio/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-studio/internal/app"
	"github.com/jsamuelsen/quote-studio/internal/app/session"
	"github.com/jsamuelsen/quote-studio/internal/domain"
	"github.com/jsamuelsen/quote-studio/internal/ports"
)

// themesOutput is the --json output of themes.
type themesOutput struct {
	dto.ThemeResponse
	dto.PresetResponse

	LocalQuotes map[domain.Theme]int `json:"local_quotes"`
}

func newThemesCmd(flags *rootFlags) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List themes, styles and presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStudio(cmd, flags, func(_ context.Context, s *Studio) error {
				counts := s.Catalog.Themes()
				p := newPrinter(cmd.OutOrStdout())

				if jsonOutput {
					return p.JSON(themesOutput{
						ThemeResponse:  dto.NewThemeResponse(),
						PresetResponse: dto.NewPresetResponse(),
						LocalQuotes:    counts,
					})
				}

				rows := make([][]string, 0, len(domain.AllThemes()))
				for _, t := range domain.AllThemes() {
					rows = append(rows, []string{string(t), strconv.Itoa(counts[t])})
				}

				p.Title("Themes")
				p.Table([]string{"THEME", "LOCAL QUOTES"}, rows)

				styles := make([]string, 0, len(domain.AllStyles()))
				for _, st := range domain.AllStyles() {
					styles = append(styles, string(st))
				}

				p.Field("Styles", strings.Join(styles, ", "))

				presets := make([][]string, 0, len(domain.Presets()))
				for _, pr := range domain.Presets() {
					presets = append(presets, []string{pr.Name, fmt.Sprintf("%dx%d", pr.Width, pr.Height)})
				}

				p.Title("Presets")
				p.Table([]string{"PRESET", "SIZE"}, presets)

				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func newContextCmd(flags *rootFlags) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "context",
		Short: "Show the current context and the auto theme votes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStudio(cmd, flags, func(ctx context.Context, s *Studio) error {
				resp := resolveContext(ctx, s)
				p := newPrinter(cmd.OutOrStdout())

				if jsonOutput {
					return p.JSON(resp)
				}

				printContext(p, resp)

				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

// resolveContext reads the weather once for both the context and the
// message.
func resolveContext(ctx context.Context, s *Studio) dto.ContextDetailResponse {
	ctx = session.WithContext(ctx, session.New(ctx))

	current := s.Resolver.Resolve(ctx)

	var reading *ports.WeatherReading
	if r, ok := s.Resolver.Weather(ctx); ok {
		reading = &r
	}

	resp := dto.ContextDetailResponse{
		ContextResponse: dto.NewContextResponse(current),
		Message:         app.ContextMessage(current, reading),
		AutoTheme:       string(s.Selector.Select(domain.ThemeAuto, current)),
		Scores:          s.Selector.Explain(current),
	}

	if reading != nil {
		temp := reading.TempC
		resp.TemperatureC = &temp
	}

	return resp
}

func printContext(p *printer, resp dto.ContextDetailResponse) {
	p.Title(resp.Message)
	p.Field("Time", resp.At.Format("Mon 2 Jan 15:04"))
	p.Field("Period", resp.Period)
	p.Field("Weather", resp.Weather)

	if resp.Location != "" {
		p.Field("Location", resp.Location)
	}

	if resp.TemperatureC != nil {
		p.Field("Temperature", fmt.Sprintf("%.0f°C", *resp.TemperatureC))
	}

	p.Field("Auto theme", resp.AutoTheme)

	rows := make([][]string, 0, len(resp.Scores))
	for _, sc := range resp.Scores {
		rows = append(rows, []string{string(sc.Theme), strconv.Itoa(sc.Score), strings.Join(sc.Reasons, ", ")})
	}

	p.Table([]string{"THEME", "SCORE", "REASONS"}, rows)
}

func newStatsCmd(flags *rootFlags) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show history and favorites statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStudio(cmd, flags, func(ctx context.Context, s *Studio) error {
				overview, err := app.StatsOverview(ctx, s.History, s.Favorites)
				if err != nil {
					return err
				}

				p := newPrinter(cmd.OutOrStdout())
				if jsonOutput {
					return p.JSON(overview)
				}

				printHistoryStats(p, overview.History, s.Config.Render.Location())
				printFavoriteStats(p, overview.Favorites)

				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "quotestudio %s\ncommit: %s\nbuilt: %s\n", Version, Commit, BuildTime)
			return nil
		},
	}
}
