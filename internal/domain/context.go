package domain

import "time"

// Period is the time-of-day bucket.
type Period string

// Periods of the day.
const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
	PeriodEvening   Period = "evening"
	PeriodNight     Period = "night"
)

// PeriodForHour buckets an hour: morning [5,12), afternoon [12,17),
// evening [17,21), night otherwise.
func PeriodForHour(hour int) Period {
	switch {
	case hour >= 5 && hour < 12:
		return PeriodMorning
	case hour >= 12 && hour < 17:
		return PeriodAfternoon
	case hour >= 17 && hour < 21:
		return PeriodEvening
	default:
		return PeriodNight
	}
}

// Weather is a coarse weather condition.
type Weather string

// Weather conditions. WeatherUnknown is the degraded default.
const (
	WeatherClear        Weather = "clear"
	WeatherClouds       Weather = "clouds"
	WeatherRain         Weather = "rain"
	WeatherDrizzle      Weather = "drizzle"
	WeatherThunderstorm Weather = "thunderstorm"
	WeatherSnow         Weather = "snow"
	WeatherMist         Weather = "mist"
	WeatherUnknown      Weather = "unknown"
)

// ParseWeather maps a provider condition name onto Weather.
// Fog, haze and smoke count as mist; anything unrecognized is unknown.
func ParseWeather(s string) Weather {
	switch FoldKey(s) {
	case "clear":
		return WeatherClear
	case "clouds", "cloudy":
		return WeatherClouds
	case "rain":
		return WeatherRain
	case "drizzle":
		return WeatherDrizzle
	case "thunderstorm":
		return WeatherThunderstorm
	case "snow":
		return WeatherSnow
	case "mist", "fog", "haze", "smoke":
		return WeatherMist
	default:
		return WeatherUnknown
	}
}

// Context is the situational signal set for one request. It is never persisted.
type Context struct {
	At      time.Time    `json:"at"`
	Hour    int          `json:"hour"`
	Weekday time.Weekday `json:"weekday"`
	Period  Period       `json:"period"`
	Weather Weather      `json:"weather"`
	// Location is the place the weather reading refers to, when one was made.
	Location string `json:"location,omitempty"`
}

// NewContext derives the time fields from t. Weather starts unknown.
func NewContext(t time.Time) Context {
	return Context{
		At:      t,
		Hour:    t.Hour(),
		Weekday: t.Weekday(),
		Period:  PeriodForHour(t.Hour()),
		Weather: WeatherUnknown,
	}
}

// Weekend reports whether the context falls on Saturday or Sunday.
func (c Context) Weekend() bool {
	return c.Weekday == time.Saturday || c.Weekday == time.Sunday
}
