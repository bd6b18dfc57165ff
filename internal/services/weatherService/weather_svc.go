package weatherservice

import (
	"context"
	"fmt"
	"slices"

	"github.com/redjax/weather-cli/internal/config"
	"go.uber.org/zap"
)

// Dispatcher runs one Command against the weather service and the config store.
type Dispatcher struct {
	Client   Client
	Config   ConfigStore
	Resolver *Resolver
	Render   *Renderer
	Log      *zap.SugaredLogger
}

// Run executes cmd. Every failure is returned to the caller; nothing is retried.
func (d *Dispatcher) Run(ctx context.Context, cmd Command) error {
	d.logger().Debugw("running command", "command", cmd.Name())

	switch c := cmd.(type) {
	case ListProviders:
		return d.listProviders(ctx)
	case Configure:
		return d.configure(ctx, c.Provider)
	case GetForecast:
		return d.getForecast(ctx, c)
	default:
		return fmt.Errorf("unsupported command %q", cmd.Name())
	}
}

func (d *Dispatcher) listProviders(ctx context.Context) error {
	providers, err := d.Client.ListProviders(ctx)
	if err != nil {
		return err
	}

	d.Render.Providers(providers)
	return nil
}

func (d *Dispatcher) configure(ctx context.Context, provider string) error {
	providers, err := d.Client.ListProviders(ctx)
	if err != nil {
		return err
	}

	if !slices.Contains(providers, provider) {
		return &UnknownProviderError{Provider: provider, Available: providers}
	}

	if err := d.Config.Set(config.ProviderNameKey, provider); err != nil {
		return fmt.Errorf("%w: %v", ErrConfigPersist, err)
	}
	if err := d.Config.Persist(); err != nil {
		return fmt.Errorf("%w: %v", ErrConfigPersist, err)
	}

	d.logger().Debugw("provider configured", "provider", provider)
	d.Render.Configured(provider)
	return nil
}

func (d *Dispatcher) getForecast(ctx context.Context, c GetForecast) error {
	// Checked before any remote call: without a provider the request can't succeed.
	provider, ok := d.Config.Get(config.ProviderNameKey)
	if !ok {
		return fmt.Errorf("%w, run 'weather-cli configure <provider>' first", ErrProviderNotConfigured)
	}

	loc, err := d.Resolver.Resolve(ctx, c.AddressQuery)
	if err != nil {
		return err
	}

	d.logger().Debugw("location resolved", "query", c.AddressQuery, "location", loc.String(), "id", loc.ID)

	forecast, err := d.Client.GetWeather(ctx, provider, loc, c.Date)
	if err != nil {
		return err
	}

	d.Render.Forecast(c.Date, forecast)
	return nil
}

func (d *Dispatcher) logger() *zap.SugaredLogger {
	if d.Log == nil {
		return zap.NewNop().Sugar()
	}
	return d.Log
}
