package app

import (
	"context"
	"time"

	"github.com/jsamuelsen/quote-studio/internal/domain"
)

// Overview combines the history and favorites statistics.
type Overview struct {
	History   domain.HistoryStats  `json:"history"`
	Favorites domain.FavoriteStats `json:"favorites"`
}

// StatsOverview gathers both statistics concurrently. A nil service leaves
// its half empty.
func StatsOverview(ctx context.Context, history *HistoryService, favorites *FavoritesService) (Overview, error) {
	h, f, err := Parallel2(ctx,
		func(ctx context.Context) (domain.HistoryStats, error) {
			if history == nil {
				return ComputeHistoryStats(nil, time.Time{}, nil), nil
			}

			return history.Stats(ctx)
		},
		func(ctx context.Context) (domain.FavoriteStats, error) {
			if favorites == nil {
				return ComputeFavoriteStats(nil), nil
			}

			return favorites.Stats(ctx)
		},
	)
	if err != nil {
		return Overview{}, err
	}

	return Overview{History: h, Favorites: f}, nil
}
