package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quote-studio/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-studio/internal/domain"
)

const defaultListLimit = 20

type historyListOptions struct {
	query      dto.HistoryQuery
	jsonOutput bool
}

type historyExportOptions struct {
	query dto.HistoryExportQuery
	out   string
}

func newHistoryCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse, export and clear the generation history",
	}

	cmd.AddCommand(newHistoryListCmd(flags))
	cmd.AddCommand(newHistoryStatsCmd(flags))
	cmd.AddCommand(newHistoryClearCmd(flags))
	cmd.AddCommand(newHistoryExportCmd(flags))

	return cmd
}

// addHistoryFilterFlags binds the filter flags shared by list and export.
func addHistoryFilterFlags(cmd *cobra.Command, q *dto.HistoryQuery) {
	f := cmd.Flags()
	f.StringVar(&q.Theme, "theme", "", "Only this theme")
	f.StringVar(&q.Emotion, "emotion", "", "Only this emotion")
	f.StringVar(&q.Label, "label", "", "positive, neutral or negative")
	f.StringVarP(&q.Query, "query", "q", "", "Keyword in the text or author")
	f.StringVar(&q.From, "from", "", "First day, 2006-01-02")
	f.StringVar(&q.To, "to", "", "Last day, 2006-01-02")
}

func newHistoryListCmd(flags *rootFlags) *cobra.Command {
	opts := &historyListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List generated quotes, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := dto.ValidateAll(&opts.query); err != nil {
				return err
			}

			return withStudio(cmd, flags, func(ctx context.Context, s *Studio) error {
				return runHistoryList(ctx, cmd, s, opts)
			})
		},
	}

	addHistoryFilterFlags(cmd, &opts.query)
	cmd.Flags().IntVarP(&opts.query.Limit, "limit", "n", defaultListLimit, "Entries to show, 1-100")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runHistoryList(ctx context.Context, cmd *cobra.Command, s *Studio, opts *historyListOptions) error {
	loc := s.Config.Render.Location()

	entries, err := s.History.List(ctx, opts.query.Filter(loc))
	if err != nil {
		return err
	}

	slices.Reverse(entries)

	if limit := opts.query.GetLimit(); len(entries) > limit {
		entries = entries[:limit]
	}

	p := newPrinter(cmd.OutOrStdout())

	if opts.jsonOutput {
		items := make([]dto.HistoryEntryResponse, 0, len(entries))
		for _, e := range entries {
			items = append(items, dto.NewHistoryEntryResponse(e))
		}

		return p.JSON(items)
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No quotes generated yet.")
		fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'quotestudio generate' to create your first one.")

		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.CreatedAt.In(loc).Format("2006-01-02 15:04"),
			string(e.Styled.Quote.Theme),
			string(e.Styled.Emotion()),
			clip(e.Styled.Quote.Author, 24),
			clip(e.Styled.DisplayText(), cellMaxWidth),
		})
	}

	p.Table([]string{"WHEN", "THEME", "EMOTION", "AUTHOR", "QUOTE"}, rows)

	return nil
}

func newHistoryStatsCmd(flags *rootFlags) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show history statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStudio(cmd, flags, func(ctx context.Context, s *Studio) error {
				stats, err := s.History.Stats(ctx)
				if err != nil {
					return err
				}

				p := newPrinter(cmd.OutOrStdout())
				if jsonOutput {
					return p.JSON(stats)
				}

				printHistoryStats(p, stats, s.Config.Render.Location())

				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func printHistoryStats(p *printer, stats domain.HistoryStats, loc *time.Location) {
	p.Title("History")
	p.Field("Total", stats.Total)

	if stats.Total == 0 {
		return
	}

	p.Field("Last week", stats.LastWeek)
	p.Field("Last month", stats.LastMonth)

	if stats.First != nil && stats.Last != nil {
		p.Field("First", stats.First.In(loc).Format(time.DateTime))
		p.Field("Last", stats.Last.In(loc).Format(time.DateTime))
	}

	p.Field("Top theme", orDash(stats.FavoriteTheme))
	p.Field("Top emotion", orDash(stats.FavoriteEmotion))
	p.Field("Top author", orDash(stats.FavoriteAuthor))

	p.Table([]string{"THEME", "COUNT"}, countRows(stats.ByTheme))
}

func newHistoryClearCmd(flags *rootFlags) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the whole history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return newCommandError("clear", "confirming", errors.New("refusing to clear without --yes"),
					"Re-run with --yes to delete every history entry.")
			}

			return withStudio(cmd, flags, func(ctx context.Context, s *Studio) error {
				if err := s.History.Clear(ctx); err != nil {
					return err
				}

				newPrinter(cmd.OutOrStdout()).Success("History cleared.")

				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the deletion")

	return cmd
}

func newHistoryExportCmd(flags *rootFlags) *cobra.Command {
	opts := &historyExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the history as json, csv or xlsx",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := dto.ValidateAll(&opts.query); err != nil {
				return err
			}

			format, err := domain.ParseDataFormat(opts.query.Format, domain.HistoryExportFormats())
			if err != nil {
				return err
			}

			return withStudio(cmd, flags, func(ctx context.Context, s *Studio) error {
				filter := opts.query.Filter(s.Config.Render.Location())

				return writeExport(cmd, opts.out, func(w io.Writer) error {
					return s.History.Export(ctx, w, format, filter)
				})
			})
		},
	}

	addHistoryFilterFlags(cmd, &opts.query.HistoryQuery)
	cmd.Flags().StringVarP(&opts.query.Format, "format", "f", "json", "json, csv or xlsx")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "-", "Output file, - for stdout")

	return cmd
}

// writeExport runs export against out, or stdout for "-". A failed export
// removes the partial file.
func writeExport(cmd *cobra.Command, out string, export func(io.Writer) error) error {
	if out == "" || out == "-" {
		return export(cmd.OutOrStdout())
	}

	f, err := os.Create(out) //nolint:gosec // path chosen by the user
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}

	if err := export(f); err != nil {
		_ = f.Close()
		_ = os.Remove(out)

		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", out, err)
	}

	fmt.Fprintln(cmd.ErrOrStderr(), "wrote "+out)

	return nil
}

func countRows(counts map[string]int) [][]string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}

	slices.SortFunc(keys, func(a, b string) int {
		if c := cmp.Compare(counts[b], counts[a]); c != 0 {
			return c
		}

		return cmp.Compare(a, b)
	})

	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k, strconv.Itoa(counts[k])})
	}

	return rows
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
