// Package storage persists generated quotes and favorites on the local disk.
//
// History is a JSON Lines file: one entry per line, appended and never
// rewritten except by Clear. Favorites are a single JSON document replaced
// atomically on every change. Both are meant for one process and one user;
// a mutex per store serializes access inside the process.
package storage

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/google/uuid"

	"github.com/jsamuelsen/quote-studio/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxLineSize bounds a single history record.
const maxLineSize = 1 << 20

// History is the append-only JSONL history store.
type History struct {
	mu     sync.Mutex
	path   string
	logger *slog.Logger
}

// NewHistory opens the store at path, creating its directory if needed.
// The file itself is created on first append.
func NewHistory(path string, logger *slog.Logger) (*History, error) {
	if path == "" {
		return nil, errors.New("history path is required")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &History{
		path:   path,
		logger: logger.With(slog.String("component", "history")),
	}, nil
}

// Path returns the backing file.
func (h *History) Path() string { return h.path }

// Append writes entry as one line. An empty ID is filled with a random UUID.
func (h *History) Append(ctx context.Context, entry domain.HistoryEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding history entry: %w", err)
	}

	line = append(line, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	f, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}

	if _, err := f.Write(line); err != nil {
		_ = f.Close()
		return fmt.Errorf("appending history: %w", err)
	}

	return f.Close()
}

// List returns the entries matching filter in insertion order, after
// applying the filter's offset and limit.
func (h *History) List(ctx context.Context, filter domain.HistoryFilter) ([]domain.HistoryEntry, error) {
	var out []domain.HistoryEntry

	skipped := 0

	err := h.scan(ctx, func(e domain.HistoryEntry) bool {
		if !filter.Matches(e) {
			return true
		}

		if skipped < filter.Offset {
			skipped++
			return true
		}

		out = append(out, e)

		return filter.Limit <= 0 || len(out) < filter.Limit
	})

	return out, err
}

// Recent returns up to n entries, newest first.
func (h *History) Recent(ctx context.Context, n int) ([]domain.HistoryEntry, error) {
	if n <= 0 {
		return nil, nil
	}

	ring := make([]domain.HistoryEntry, 0, n)

	err := h.scan(ctx, func(e domain.HistoryEntry) bool {
		if len(ring) == n {
			ring = ring[1:]
		}

		ring = append(ring, e)

		return true
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.HistoryEntry, len(ring))
	for i, e := range ring {
		out[len(ring)-1-i] = e
	}

	return out, nil
}

// Count returns the number of readable entries.
func (h *History) Count(ctx context.Context) (int, error) {
	n := 0

	err := h.scan(ctx, func(domain.HistoryEntry) bool {
		n++
		return true
	})

	return n, err
}

// Clear truncates the store to zero entries.
func (h *History) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := os.Truncate(h.path, 0); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clearing history: %w", err)
	}

	h.logger.Info("history cleared")

	return nil
}

// Name is the health check name.
func (h *History) Name() string { return "history" }

// Check verifies the history directory is writable.
func (h *History) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(h.path), ".probe-*")
	if err != nil {
		return fmt.Errorf("history directory not writable: %w", err)
	}

	name := f.Name()
	_ = f.Close()

	return os.Remove(name)
}

// scan feeds each decodable line to fn until fn returns false. Lines that
// fail to decode are logged and skipped so one bad record does not hide the
// rest of the history.
func (h *History) scan(ctx context.Context, fn func(domain.HistoryEntry) bool) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	f, err := os.Open(h.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer func() { _ = f.Close() }()

	return h.decodeLines(ctx, f, fn)
}

func (h *History) decodeLines(ctx context.Context, r io.Reader, fn func(domain.HistoryEntry) bool) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0

	for scanner.Scan() {
		line++

		if line%256 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		var e domain.HistoryEntry
		if err := json.Unmarshal(raw, &e); err != nil {
			h.logger.Warn("skipping unreadable history line",
				slog.Int("line", line),
				slog.Any("error", err),
			)

			continue
		}

		if !fn(e) {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading history: %w", err)
	}

	return nil
}
