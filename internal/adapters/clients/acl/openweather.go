package acl

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/jsamuelsen/quote-studio/internal/adapters/clients"
	"github.com/jsamuelsen/quote-studio/internal/domain"
	"github.com/jsamuelsen/quote-studio/internal/ports"
)

// owmResponse is the subset of /data/2.5/weather the studio reads.
type owmResponse struct {
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Name string `json:"name"`
	Dt   int64  `json:"dt"`
}

// OpenWeather reports current conditions from OpenWeatherMap.
type OpenWeather struct {
	BaseAdapter
	apiKey   string
	location string
}

// NewOpenWeather builds the adapter for a fixed location.
func NewOpenWeather(client *clients.Client, apiKey, location string, logger *slog.Logger) *OpenWeather {
	return &OpenWeather{
		BaseAdapter: NewBaseAdapter(client, client.ServiceName(), logger),
		apiKey:      apiKey,
		location:    location,
	}
}

// Current returns the weather at the configured location. An unrecognized
// condition is returned as domain.WeatherUnknown, not as an error.
func (o *OpenWeather) Current(ctx context.Context) (ports.WeatherReading, error) {
	query := url.Values{
		"q":     {o.location},
		"appid": {o.apiKey},
		"units": {"metric"},
	}

	body, err := o.Get(ctx, "/data/2.5/weather", query, "current weather")
	if err != nil {
		return ports.WeatherReading{}, err
	}

	ext, err := DecodeResponse[owmResponse](body)
	if err != nil {
		return ports.WeatherReading{}, domain.NewUnavailableError(o.Name(), err.Error())
	}

	reading := ports.WeatherReading{
		Condition: domain.WeatherUnknown,
		Location:  ext.Name,
		TempC:     ext.Main.Temp,
	}

	if reading.Location == "" {
		reading.Location = o.location
	}

	if ext.Dt > 0 {
		reading.ObservedAt = time.Unix(ext.Dt, 0).UTC()
	}

	if len(ext.Weather) > 0 {
		reading.Condition = domain.ParseWeather(ext.Weather[0].Main)
		reading.Description = ext.Weather[0].Description
	}

	o.logger.DebugContext(ctx, "weather resolved",
		slog.String("condition", string(reading.Condition)),
		slog.String("location", reading.Location),
	)

	return reading, nil
}
