package acl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen/quote-studio/internal/adapters/clients"
	"github.com/jsamuelsen/quote-studio/internal/platform/logging"
)

// maxResponseBody bounds provider payloads.
const maxResponseBody = 1 << 20

// BaseAdapter is embedded by every provider adapter.
type BaseAdapter struct {
	client      *clients.Client
	serviceName string
	logger      *slog.Logger
}

// NewBaseAdapter wraps client for the named provider.
func NewBaseAdapter(client *clients.Client, serviceName string, logger *slog.Logger) BaseAdapter {
	if logger == nil {
		logger = slog.Default()
	}

	return BaseAdapter{
		client:      client,
		serviceName: serviceName,
		logger:      logger.With(slog.String("provider", serviceName)),
	}
}

// Name identifies the provider in health checks and logs.
func (a *BaseAdapter) Name() string {
	return a.serviceName
}

// Optional marks every remote provider as non-critical for readiness:
// the pipeline has a local fallback for each of them.
func (a *BaseAdapter) Optional() bool {
	return true
}

// Check fails while the provider's circuit is open. It never calls the
// provider, so readiness probes do not spend rate-limited requests.
func (a *BaseAdapter) Check(_ context.Context) error {
	if state := a.client.CircuitState(); state == clients.StateOpen {
		return fmt.Errorf("%s: circuit %s", a.serviceName, state)
	}

	return nil
}

// Get performs a GET and returns the body of a 2xx response.
// The caller closes it.
func (a *BaseAdapter) Get(ctx context.Context, path string, query url.Values, operation string) (io.ReadCloser, error) {
	resp, err := a.client.Get(ctx, path, query)

	return a.handle(ctx, resp, err, operation)
}

// PostJSON encodes payload and POSTs it.
func (a *BaseAdapter) PostJSON(ctx context.Context, path string, payload any, operation string) (io.ReadCloser, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding %s request: %w", operation, err)
	}

	resp, err := a.client.Post(ctx, path, bytes.NewReader(body))

	return a.handle(ctx, resp, err, operation)
}

func (a *BaseAdapter) handle(ctx context.Context, resp *http.Response, err error, operation string) (io.ReadCloser, error) {
	if err != nil {
		return nil, MapHTTPError(nil, err, a.serviceName, operation)
	}

	a.logger.Log(ctx, logging.LevelTrace, "provider responded",
		slog.String("operation", operation),
		slog.Int("status", resp.StatusCode),
	)

	if resp.StatusCode >= http.StatusMultipleChoices {
		defer func() { _ = resp.Body.Close() }()

		return nil, MapHTTPError(resp, nil, a.serviceName, operation)
	}

	return resp.Body, nil
}

// DecodeResponse decodes a JSON body into T and closes it.
func DecodeResponse[T any](body io.ReadCloser) (T, error) {
	var result T

	if body == nil {
		return result, errors.New("response body is nil")
	}
	defer func() { _ = body.Close() }()

	if err := json.NewDecoder(io.LimitReader(body, maxResponseBody)).Decode(&result); err != nil {
		return result, fmt.Errorf("decoding response: %w", err)
	}

	return result, nil
}

// Translator converts one provider DTO to a domain value.
type Translator[External any, Domain any] func(ext *External) (Domain, error)

// TranslateSlice converts items, dropping the ones translate rejects.
// It returns the converted values and the rejected count.
func TranslateSlice[E any, D any](items []E, translate Translator[E, D]) ([]D, int) {
	result := make([]D, 0, len(items))
	rejected := 0

	for i := range items {
		translated, err := translate(&items[i])
		if err != nil {
			rejected++

			continue
		}

		result = append(result, translated)
	}

	return result, rejected
}
