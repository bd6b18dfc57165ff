package weathercommand

import (
	"context"

	weatherservice "github.com/redjax/weather-cli/internal/services/weatherService"
	"github.com/redjax/weather-cli/internal/utils/spinner"
)

// spinningClient shows a spinner while each remote call is in flight.
type spinningClient struct {
	next weatherservice.Client
}

func (c spinningClient) ListProviders(ctx context.Context) ([]string, error) {
	defer spinner.StartSpinner("Fetching weather providers")()
	return c.next.ListProviders(ctx)
}

func (c spinningClient) SearchLocations(ctx context.Context, query string) ([]weatherservice.Location, error) {
	defer spinner.StartSpinner("Searching locations")()
	return c.next.SearchLocations(ctx, query)
}

func (c spinningClient) GetWeather(ctx context.Context, provider string, location weatherservice.Location, date string) (weatherservice.Forecast, error) {
	defer spinner.StartSpinner("Fetching forecast")()
	return c.next.GetWeather(ctx, provider, location, date)
}
