package ports

import "context"

// Feature flag names evaluated by the pipeline.
const (
	FlagWeather     = "weather"
	FlagTranslation = "translation"
	FlagSentiment   = "sentiment"
	FlagHistory     = "history"
)

// FeatureFlags switches optional pipeline stages on and off.
// Implementations return defaultValue for unknown flags.
type FeatureFlags interface {
	IsEnabled(ctx context.Context, flag string, defaultValue bool) bool
	GetFloat(ctx context.Context, flag string, defaultValue float64) float64
}
