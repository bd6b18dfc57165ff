package weatherservice

import (
	"context"
	"errors"
)

type weatherCall struct {
	Provider string
	Location Location
	Date     string
}

type fakeClient struct {
	providers []string
	locations []Location
	forecast  Forecast

	providersErr error
	searchErr    error
	weatherErr   error

	providerCalls int
	searchCalls   []string
	weatherCalls  []weatherCall
}

func (f *fakeClient) ListProviders(ctx context.Context) ([]string, error) {
	f.providerCalls++
	return f.providers, f.providersErr
}

func (f *fakeClient) SearchLocations(ctx context.Context, query string) ([]Location, error) {
	f.searchCalls = append(f.searchCalls, query)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	// Hand out a copy so tests can check the original set afterwards.
	return append([]Location(nil), f.locations...), nil
}

func (f *fakeClient) GetWeather(ctx context.Context, provider string, location Location, date string) (Forecast, error) {
	f.weatherCalls = append(f.weatherCalls, weatherCall{provider, location, date})
	return f.forecast, f.weatherErr
}

func (f *fakeClient) remoteCalls() int {
	return f.providerCalls + len(f.searchCalls) + len(f.weatherCalls)
}

type memoryStore struct {
	values     map[string]string
	persisted  map[string]string
	persistErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: map[string]string{}, persisted: map[string]string{}}
}

func (m *memoryStore) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok && v != ""
}

func (m *memoryStore) Set(key, value string) error {
	m.values[key] = value
	return nil
}

func (m *memoryStore) Persist() error {
	if m.persistErr != nil {
		return m.persistErr
	}
	for k, v := range m.values {
		m.persisted[k] = v
	}
	return nil
}

// failingChooser fails the test if it is ever consulted.
type failingChooser struct{ called bool }

func (c *failingChooser) Choose(ctx context.Context, candidates []Location) (int, error) {
	c.called = true
	return -1, errors.New("chooser must not be called")
}

var springfields = []Location{
	{ID: "1", Name: "Springfield", State: "IL", Country: "US"},
	{ID: "2", Name: "Springfield", State: "MO", Country: "US"},
	{ID: "3", Name: "Springfield", State: "MA", Country: "US"},
}
