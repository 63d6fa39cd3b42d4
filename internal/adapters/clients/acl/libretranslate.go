package acl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jsamuelsen/quote-studio/internal/adapters/clients"
	"github.com/jsamuelsen/quote-studio/internal/domain"
)

// minTranslationLen is the shortest result accepted as a real translation.
// Shorter answers are provider error strings or truncations.
const minTranslationLen = 10

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

// LibreTranslate is the remote translation provider.
type LibreTranslate struct {
	BaseAdapter
	apiKey string
}

// NewLibreTranslate builds the adapter. apiKey may be empty for open instances.
func NewLibreTranslate(client *clients.Client, apiKey string, logger *slog.Logger) *LibreTranslate {
	return &LibreTranslate{
		BaseAdapter: NewBaseAdapter(client, client.ServiceName(), logger),
		apiKey:      apiKey,
	}
}

// Translate sends text to POST /translate. Empty or too-short results are
// reported as domain.ErrUnavailable.
func (l *LibreTranslate) Translate(ctx context.Context, text string, source, target domain.Language) (string, error) {
	body, err := l.PostJSON(ctx, "/translate", translateRequest{
		Q:      text,
		Source: source.String(),
		Target: target.String(),
		Format: "text",
		APIKey: l.apiKey,
	}, "translate")
	if err != nil {
		return "", err
	}

	resp, err := DecodeResponse[translateResponse](body)
	if err != nil {
		return "", domain.NewUnavailableError(l.Name(), err.Error())
	}

	translated := strings.TrimSpace(resp.TranslatedText)
	if len([]rune(translated)) < minTranslationLen {
		return "", domain.NewUnavailableError(l.Name(), "translation result too short")
	}

	return translated, nil
}
