package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/jsamuelsen/quote-studio/internal/domain"
)

type favoritesDocument struct {
	Favorites   []domain.Favorite `json:"favorites"`
	LastUpdated time.Time         `json:"last_updated"`
}

// Favorites is the JSON document store for favorites.
type Favorites struct {
	mu     sync.Mutex
	path   string
	now    func() time.Time
	logger *slog.Logger
}

// NewFavorites opens the store at path, creating its directory if needed.
func NewFavorites(path string, logger *slog.Logger) (*Favorites, error) {
	if path == "" {
		return nil, errors.New("favorites path is required")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating favorites directory: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Favorites{
		path:   path,
		now:    time.Now,
		logger: logger.With(slog.String("component", "favorites")),
	}, nil
}

// Add saves f under the next free ID. Text that is already saved, compared
// case- and accent-insensitively, is a conflict.
func (s *Favorites) Add(ctx context.Context, f domain.Favorite) (domain.Favorite, error) {
	if err := ctx.Err(); err != nil {
		return domain.Favorite{}, err
	}

	if f.Text == "" {
		return domain.Favorite{}, domain.NewValidationError("text", "must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return domain.Favorite{}, err
	}

	key := domain.FoldKey(f.Text)
	next := 1

	for _, existing := range doc.Favorites {
		if domain.FoldKey(existing.Text) == key {
			return domain.Favorite{}, domain.NewConflictError("favorite", "quote is already a favorite")
		}

		next = max(next, existing.ID+1)
	}

	f.ID = next
	if f.CreatedAt.IsZero() {
		f.CreatedAt = s.now().UTC()
	}

	if f.Tags == nil {
		f.Tags = []string{}
	}

	doc.Favorites = append(doc.Favorites, f)

	if err := s.save(doc); err != nil {
		return domain.Favorite{}, err
	}

	s.logger.Debug("favorite added", slog.Int("id", f.ID))

	return f, nil
}

// Remove deletes the favorite with id.
func (s *Favorites) Remove(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	for i, f := range doc.Favorites {
		if f.ID == id {
			doc.Favorites = append(doc.Favorites[:i], doc.Favorites[i+1:]...)
			return s.save(doc)
		}
	}

	return domain.NewNotFoundError("favorite", strconv.Itoa(id))
}

// Update replaces the favorite with f.ID.
func (s *Favorites) Update(ctx context.Context, f domain.Favorite) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	for i := range doc.Favorites {
		if doc.Favorites[i].ID == f.ID {
			doc.Favorites[i] = f
			return s.save(doc)
		}
	}

	return domain.NewNotFoundError("favorite", strconv.Itoa(f.ID))
}

// List returns every favorite in insertion order.
func (s *Favorites) List(ctx context.Context) ([]domain.Favorite, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	return doc.Favorites, nil
}

// Name is the health check name.
func (s *Favorites) Name() string { return "favorites" }

// Check verifies the document is readable.
func (s *Favorites) Check(ctx context.Context) error {
	_, err := s.List(ctx)
	return err
}

func (s *Favorites) load() (favoritesDocument, error) {
	var doc favoritesDocument

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return doc, nil
	}

	if err != nil {
		return doc, fmt.Errorf("reading favorites: %w", err)
	}

	if len(data) == 0 {
		return doc, nil
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("decoding favorites: %w", err)
	}

	return doc, nil
}

// save writes the document to a temp file and renames it into place.
func (s *Favorites) save(doc favoritesDocument) error {
	doc.LastUpdated = s.now().UTC()
	if doc.Favorites == nil {
		doc.Favorites = []domain.Favorite{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding favorites: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".favorites-*.json")
	if err != nil {
		return fmt.Errorf("writing favorites: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("writing favorites: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("writing favorites: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replacing favorites: %w", err)
	}

	return nil
}
