package weatherservice

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/muesli/termenv"
)

// Renderer writes command results to the user's terminal.
type Renderer struct {
	out     io.Writer
	heading lipgloss.Style
	// Table renders forecasts as a table instead of labeled lines.
	Table bool
}

// NewRenderer writes to out. Colors are only used when out is a terminal and
// noColor is false.
func NewRenderer(out io.Writer, noColor bool) *Renderer {
	lr := lipgloss.NewRenderer(out)
	if noColor {
		lr.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		out:     out,
		heading: lr.NewStyle().Bold(true).Foreground(lipgloss.Color("#25A065")),
	}
}

// Providers prints the provider names in the order the service returned them.
func (r *Renderer) Providers(providers []string) {
	fmt.Fprintln(r.out, r.heading.Render("Available providers:"))

	l := list.NewWriter()
	l.SetStyle(list.StyleBulletCircle)
	for _, p := range providers {
		l.AppendItem(p)
	}
	if len(providers) > 0 {
		fmt.Fprintln(r.out, l.Render())
	}
}

// Configured confirms that provider was stored.
func (r *Renderer) Configured(provider string) {
	fmt.Fprintf(r.out, "weather-cli is now ready to do weather forecast with %s provider!\n", provider)
}

// Forecast prints the four forecast fields labeled with date.
func (r *Renderer) Forecast(date string, f Forecast) {
	if r.Table {
		t := table.NewWriter()
		t.SetStyle(table.StyleLight)
		t.SetTitle("Weather on %s", date)
		t.AppendRows([]table.Row{
			{"Min temperature", f.MinT},
			{"Max temperature", f.MaxT},
			{"Avg temperature", f.AvgT},
			{"Weather condition", f.Condition},
		})
		fmt.Fprintln(r.out, t.Render())
		return
	}

	fmt.Fprintln(r.out, r.heading.Render(fmt.Sprintf("Weather on %s:", date)))
	fmt.Fprintf(r.out, "Min temperature: %v\n", f.MinT)
	fmt.Fprintf(r.out, "Max temperature: %v\n", f.MaxT)
	fmt.Fprintf(r.out, "Avg temperature: %v\n", f.AvgT)
	fmt.Fprintf(r.out, "Weather condition: %s\n", f.Condition)
}
