package flags

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen/quote-studio/internal/ports"
)

func TestStatic(t *testing.T) {
	ctx := context.Background()
	features := map[string]bool{"Weather": false, ports.FlagHistory: true}

	var f ports.FeatureFlags = New(features)

	assert.False(t, f.IsEnabled(ctx, ports.FlagWeather, true))
	assert.True(t, f.IsEnabled(ctx, ports.FlagHistory, false))
	assert.True(t, f.IsEnabled(ctx, "unknown", true))
	assert.InDelta(t, 0.5, f.GetFloat(ctx, "ratio", 0.5), 0)

	features["weather"] = true
	assert.False(t, f.IsEnabled(ctx, ports.FlagWeather, true), "input map is copied")
}

func TestStatic_Overrides(t *testing.T) {
	ctx := context.Background()
	s := New(nil)

	s.Set(ports.FlagTranslation, false)
	s.SetFloat("ratio", 0.25)

	assert.False(t, s.IsEnabled(ctx, ports.FlagTranslation, true))
	assert.InDelta(t, 0.25, s.GetFloat(ctx, " RATIO ", 1), 0)
}
