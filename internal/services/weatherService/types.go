package weatherservice

import (
	"context"
	"fmt"
)

// Location is a concrete place returned by a location search. The ID is
// assigned by the weather service and is sent back when requesting a forecast.
type Location struct {
	ID      string  `json:"id,omitempty"`
	Name    string  `json:"name"`
	State   string  `json:"state"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat,omitempty"`
	Lon     float64 `json:"lon,omitempty"`
}

// String returns the display form "name, state, country".
func (l Location) String() string {
	return fmt.Sprintf("%s, %s, %s", l.Name, l.State, l.Country)
}

// Forecast is the weather service's answer for one location and date.
type Forecast struct {
	MinT      float64 `json:"min_t"`
	MaxT      float64 `json:"max_t"`
	AvgT      float64 `json:"avg_t"`
	Condition string  `json:"condition"`
}

// Client is the set of remote operations the CLI needs from the weather service.
type Client interface {
	ListProviders(ctx context.Context) ([]string, error)
	SearchLocations(ctx context.Context, query string) ([]Location, error)
	GetWeather(ctx context.Context, provider string, location Location, date string) (Forecast, error)
}

// ConfigStore is the persistent key/value store holding the provider and server settings.
type ConfigStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Persist() error
}
