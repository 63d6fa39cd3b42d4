package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quote-studio/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-studio/internal/app"
	"github.com/jsamuelsen/quote-studio/internal/domain"
)

func newFavoritesCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "Manage the favorite quotes",
	}

	cmd.AddCommand(newFavoritesListCmd(flags))
	cmd.AddCommand(newFavoritesAddCmd(flags))
	cmd.AddCommand(newFavoritesRemoveCmd(flags))
	cmd.AddCommand(newFavoritesTagCmd(flags))
	cmd.AddCommand(newFavoritesExportCmd(flags))
	cmd.AddCommand(newFavoritesStatsCmd(flags))

	return cmd
}

func newFavoritesListCmd(flags *rootFlags) *cobra.Command {
	var (
		query      dto.FavoriteQuery
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List favorites",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := dto.ValidateAll(&query); err != nil {
				return err
			}

			filter := app.FavoriteFilter{Emotion: domain.Emotion(query.Emotion), Query: query.Query}
			if query.Theme != "" {
				filter.Theme, _ = domain.ParseTheme(query.Theme)
			}

			return withStudio(cmd, flags, func(ctx context.Context, s *Studio) error {
				favorites, err := s.Favorites.Filter(ctx, filter)
				if err != nil {
					return err
				}

				p := newPrinter(cmd.OutOrStdout())
				if jsonOutput {
					return p.JSON(dto.NewFavoriteListResponse(favorites))
				}

				printFavorites(cmd, p, favorites)

				return nil
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&query.Theme, "theme", "", "Only this theme")
	f.StringVar(&query.Emotion, "emotion", "", "Only this emotion")
	f.StringVarP(&query.Query, "query", "q", "", "Keyword in the text or author")
	f.BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func printFavorites(cmd *cobra.Command, p *printer, favorites []domain.Favorite) {
	if len(favorites) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No favorites yet.")
		fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'quotestudio generate --favorite' or 'quotestudio favorites add' to save one.")

		return
	}

	rows := make([][]string, 0, len(favorites))
	for _, f := range favorites {
		rows = append(rows, []string{
			strconv.Itoa(f.ID),
			orDash(string(f.Theme)),
			orDash(string(f.Emotion)),
			clip(f.Author, 24),
			clip(f.Text, cellMaxWidth),
			strings.Join(f.Tags, ", "),
		})
	}

	p.Table([]string{"ID", "THEME", "EMOTION", "AUTHOR", "QUOTE", "TAGS"}, rows)
}

func newFavoritesAddCmd(flags *rootFlags) *cobra.Command {
	var req dto.AddFavoriteRequest

	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Save a quote as a favorite",
		Example: `  quotestudio favorites add --text "Carpe diem." --author Horace --theme sagesse --tag latin`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := dto.ValidateAll(&req); err != nil {
				return err
			}

			return withStudio(cmd, flags, func(ctx context.Context, s *Studio) error {
				saved, err := s.Favorites.Add(ctx, req.ToDomain())
				if err != nil {
					return err
				}

				newPrinter(cmd.OutOrStdout()).Success("Saved favorite #%d.", saved.ID)

				return nil
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Text, "text", "", "Quote text")
	f.StringVar(&req.Author, "author", "", "Author")
	f.StringVar(&req.Theme, "theme", "", "Theme")
	f.StringVar(&req.Emotion, "emotion", "", "Emotion")
	f.StringSliceVar(&req.Tags, "tag", nil, "Tag, repeatable")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func newFavoritesRemoveCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a favorite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := dto.ParseFavoriteID(args[0])
			if err != nil {
				return err
			}

			return withStudio(cmd, flags, func(ctx context.Context, s *Studio) error {
				if err := s.Favorites.Remove(ctx, id); err != nil {
					return err
				}

				newPrinter(cmd.OutOrStdout()).Success("Removed favorite #%d.", id)

				return nil
			})
		},
	}
}

func newFavoritesTagCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tag <id> <tag>",
		Short: "Tag a favorite",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := dto.ParseFavoriteID(args[0])
			if err != nil {
				return err
			}

			req := dto.AddTagRequest{Tag: args[1]}
			if err := dto.ValidateAll(&req); err != nil {
				return err
			}

			return withStudio(cmd, flags, func(ctx context.Context, s *Studio) error {
				fav, err := s.Favorites.AddTag(ctx, id, req.Tag)
				if err != nil {
					return err
				}

				newPrinter(cmd.OutOrStdout()).Success("Favorite #%d tags: %s", fav.ID, strings.Join(fav.Tags, ", "))

				return nil
			})
		},
	}
}

func newFavoritesExportCmd(flags *rootFlags) *cobra.Command {
	var (
		query dto.FavoriteExportQuery
		out   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the favorites as json, markdown or text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := dto.ValidateAll(&query); err != nil {
				return err
			}

			format, err := domain.ParseDataFormat(query.Format, domain.FavoriteExportFormats())
			if err != nil {
				return err
			}

			return withStudio(cmd, flags, func(ctx context.Context, s *Studio) error {
				return writeExport(cmd, out, func(w io.Writer) error {
					return s.Favorites.Export(ctx, w, format)
				})
			})
		},
	}

	cmd.Flags().StringVarP(&query.Format, "format", "f", "json", "json, md or txt")
	cmd.Flags().StringVarP(&out, "out", "o", "-", "Output file, - for stdout")

	return cmd
}

func newFavoritesStatsCmd(flags *rootFlags) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show favorites statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStudio(cmd, flags, func(ctx context.Context, s *Studio) error {
				stats, err := s.Favorites.Stats(ctx)
				if err != nil {
					return err
				}

				p := newPrinter(cmd.OutOrStdout())
				if jsonOutput {
					return p.JSON(stats)
				}

				printFavoriteStats(p, stats)

				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func printFavoriteStats(p *printer, stats domain.FavoriteStats) {
	p.Title("Favorites")
	p.Field("Total", stats.Total)

	if stats.Total == 0 {
		return
	}

	p.Table([]string{"THEME", "COUNT"}, countRows(stats.ByTheme))
	p.Table([]string{"EMOTION", "COUNT"}, countRows(stats.ByEmotion))
}
