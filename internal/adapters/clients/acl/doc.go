// Package acl holds the anti-corruption layer between remote providers and
// the quote studio domain.
//
// Each adapter owns the provider's wire format and hands back domain types
// only:
//
//   - [ZenQuotes] turns ZenQuotes batches into theme-tagged domain.Quote values
//   - [OpenWeather] maps OpenWeatherMap conditions onto domain.Weather
//   - [LibreTranslate] wraps the LibreTranslate /translate endpoint
//
// Provider DTOs never leave this package. Transport failures, open circuits
// and non-2xx statuses are mapped by [MapHTTPError] to domain errors, so
// callers only ever branch on domain.ErrUnavailable and friends.
//
// All adapters embed [BaseAdapter], which wraps a clients.Client and performs
// the error mapping, and decode bodies with [DecodeResponse].
package acl
