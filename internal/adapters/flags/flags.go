// Package flags is a config-backed ports.FeatureFlags implementation.
package flags

import (
	"context"
	"strings"
	"sync"
)

// Static serves flags from the features section of the configuration.
// Values can be overridden at runtime, for example by CLI switches.
type Static struct {
	mu     sync.RWMutex
	bools  map[string]bool
	floats map[string]float64
}

// New copies features so later config mutation does not leak in.
func New(features map[string]bool) *Static {
	s := &Static{
		bools:  make(map[string]bool, len(features)),
		floats: make(map[string]float64),
	}

	for name, on := range features {
		s.bools[normalize(name)] = on
	}

	return s
}

// IsEnabled returns the configured value for flag, or defaultValue.
func (s *Static) IsEnabled(_ context.Context, flag string, defaultValue bool) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if on, ok := s.bools[normalize(flag)]; ok {
		return on
	}

	return defaultValue
}

// GetFloat returns the configured value for flag, or defaultValue.
func (s *Static) GetFloat(_ context.Context, flag string, defaultValue float64) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v, ok := s.floats[normalize(flag)]; ok {
		return v
	}

	return defaultValue
}

// Set overrides a boolean flag.
func (s *Static) Set(flag string, on bool) {
	s.mu.Lock()
	s.bools[normalize(flag)] = on
	s.mu.Unlock()
}

// SetFloat overrides a numeric flag.
func (s *Static) SetFloat(flag string, v float64) {
	s.mu.Lock()
	s.floats[normalize(flag)] = v
	s.mu.Unlock()
}

func normalize(flag string) string {
	return strings.ToLower(strings.TrimSpace(flag))
}
