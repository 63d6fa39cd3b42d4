package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/quote-studio/internal/app/session"
	"github.com/jsamuelsen/quote-studio/internal/domain"
	"github.com/jsamuelsen/quote-studio/internal/platform/logging"
	"github.com/jsamuelsen/quote-studio/internal/ports"
)

const weatherSessionKey = "context:weather"

// defaultWeatherTimeout bounds the weather lookup so a slow provider cannot
// hold up generation.
const defaultWeatherTimeout = 3 * time.Second

// ContextResolverConfig configures a ContextResolver.
type ContextResolverConfig struct {
	// Weather may be nil when no API key is configured.
	Weather  ports.WeatherProvider
	Flags    ports.FeatureFlags
	Clock    func() time.Time
	Location *time.Location
	Timeout  time.Duration
	Logger   *slog.Logger
}

// ContextResolver builds the situational context of a request.
type ContextResolver struct {
	weather  ports.WeatherProvider
	flags    ports.FeatureFlags
	clock    func() time.Time
	location *time.Location
	timeout  time.Duration
	logger   *slog.Logger
}

// NewContextResolver creates a resolver. Clock defaults to time.Now and
// Location to UTC.
func NewContextResolver(cfg ContextResolverConfig) *ContextResolver {
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultWeatherTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &ContextResolver{
		weather:  cfg.Weather,
		flags:    cfg.Flags,
		clock:    clock,
		location: loc,
		timeout:  timeout,
		logger:   logger.With(slog.String("component", "app.ContextResolver")),
	}
}

// Resolve returns the current context. Weather problems never fail the
// call; they leave Weather unknown.
func (r *ContextResolver) Resolve(ctx context.Context) domain.Context {
	c := domain.NewContext(r.clock().In(r.location))

	reading, ok := r.currentWeather(ctx)
	if ok {
		c.Weather = reading.Condition
		c.Location = reading.Location
	}

	return c
}

// Weather returns the memoized reading for this request, if any.
func (r *ContextResolver) Weather(ctx context.Context) (ports.WeatherReading, bool) {
	return r.currentWeather(ctx)
}

func (r *ContextResolver) currentWeather(ctx context.Context) (ports.WeatherReading, bool) {
	logger := logging.FromContext(ctx)
	if logger == nil {
		logger = r.logger
	}

	if r.weather == nil {
		logger.DebugContext(ctx, "weather provider not configured")
		return ports.WeatherReading{}, false
	}

	if r.flags != nil && !r.flags.IsEnabled(ctx, ports.FlagWeather, true) {
		logger.DebugContext(ctx, "weather disabled by flag")
		return ports.WeatherReading{}, false
	}

	reading, err := session.FetchCtx(ctx, weatherSessionKey, func(ctx context.Context) (ports.WeatherReading, error) {
		ctx, cancel := context.WithTimeout(ctx, r.timeout)
		defer cancel()

		return r.weather.Current(ctx)
	})
	if err != nil {
		level := slog.LevelWarn
		if errors.Is(err, domain.ErrUnavailable) || errors.Is(err, context.DeadlineExceeded) {
			level = slog.LevelDebug
		}

		logger.Log(ctx, level, "weather unavailable, continuing without it", slog.Any("error", err))

		return ports.WeatherReading{}, false
	}

	if reading.Condition == "" || reading.Condition == domain.WeatherUnknown {
		logger.DebugContext(ctx, "unrecognized weather condition", slog.String("description", reading.Description))
		return ports.WeatherReading{}, false
	}

	return reading, true
}

// greetings by period, shown with the resolved context.
var greetings = map[domain.Period]string{
	domain.PeriodMorning:   "Good morning",
	domain.PeriodAfternoon: "Good afternoon",
	domain.PeriodEvening:   "Good evening",
	domain.PeriodNight:     "Good night",
}

// ContextMessage is a one-line greeting for c, with the temperature when a
// reading is available.
func ContextMessage(c domain.Context, reading *ports.WeatherReading) string {
	greeting, ok := greetings[c.Period]
	if !ok {
		greeting = "Hello"
	}

	msg := greeting + "! "

	if reading != nil && reading.Condition != "" && reading.Condition != domain.WeatherUnknown {
		msg += fmt.Sprintf("%s %.0f°C · ", reading.Condition, reading.TempC)
	}

	msg += c.Weekday.String()

	switch {
	case c.Weekday == time.Monday:
		msg += " - have a great week!"
	case c.Weekday == time.Friday:
		msg += " - have a great weekend!"
	case c.Weekend():
		msg += " - enjoy your day!"
	}

	return msg
}
