package weatherservice

// Command is one unit of work for the Dispatcher. It is built once per
// invocation from the parsed command line.
type Command interface {
	Name() string
}

// ListProviders prints the providers the weather service supports.
type ListProviders struct{}

// Configure validates Provider against the service and stores it.
type Configure struct {
	Provider string
}

// GetForecast resolves AddressQuery to a single location and fetches the
// forecast for Date (MM.DD.YYYY).
type GetForecast struct {
	AddressQuery string
	Date         string
}

func (ListProviders) Name() string { return "list-providers" }
func (Configure) Name() string     { return "configure" }
func (GetForecast) Name() string   { return "get" }
