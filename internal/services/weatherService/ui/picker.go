package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"

	weatherservice "github.com/redjax/weather-cli/internal/services/weatherService"
	"github.com/redjax/weather-cli/internal/utils/terminal"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#25A065")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#874BFD"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(1, 0)
)

const (
	columnKeyIndex   = "index"
	columnKeyName    = "name"
	columnKeyState   = "state"
	columnKeyCountry = "country"
)

type keyMap struct {
	Select key.Binding
	Quit   key.Binding
}

// Row movement is left to the table's own key map (up/k, down/j).
var keys = keyMap{
	Select: key.NewBinding(key.WithKeys("enter")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
}

type model struct {
	candidates []weatherservice.Location
	table      table.Model
	choice     int
	chosen     bool
	aborted    bool
	tuiHelper  *terminal.ResponsiveTUIHelper
}

func newModel(candidates []weatherservice.Location) model {
	m := model{
		candidates: candidates,
		tuiHelper:  terminal.NewResponsiveTUIHelper(),
	}
	m.table = m.buildTable()
	return m
}

// buildTable lays the candidates out one row per location, numbered the same
// way as the line prompt.
func (m model) buildTable() table.Model {
	cols := []table.Column{
		table.NewColumn(columnKeyIndex, "#", 3),
		table.NewFlexColumn(columnKeyName, "Name", 2),
		table.NewFlexColumn(columnKeyState, "State", 1),
		table.NewFlexColumn(columnKeyCountry, "Country", 1),
	}

	rows := make([]table.Row, 0, len(m.candidates))
	for i, loc := range m.candidates {
		rows = append(rows, table.NewRow(table.RowData{
			columnKeyIndex:   i,
			columnKeyName:    loc.Name,
			columnKeyState:   loc.State,
			columnKeyCountry: loc.Country,
		}))
	}

	return table.New(cols).
		WithRows(rows).
		WithTargetWidth(m.tuiHelper.GetContentWidth()).
		HighlightStyle(selectedStyle).
		Focused(true)
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.tuiHelper.HandleWindowSizeMsg(msg)
		m.table = m.table.WithTargetWidth(m.tuiHelper.GetContentWidth())
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.aborted = true
		return m, tea.Quit
	case key.Matches(msg, keys.Select):
		idx, ok := m.table.HighlightedRow().Data[columnKeyIndex].(int)
		if !ok {
			return m, nil
		}
		m.choice = idx
		m.chosen = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.chosen || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Choose a location"))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/k up • ↓/j down • enter select • q quit"))
	return b.String()
}

// Picker is a full-screen alternative to the line prompt.
type Picker struct {
	In  io.Reader
	Out io.Writer
}

// Choose runs the picker until the user selects a location or quits.
func (p *Picker) Choose(ctx context.Context, candidates []weatherservice.Location) (int, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if p.In != nil {
		opts = append(opts, tea.WithInput(p.In))
	}
	if p.Out != nil {
		opts = append(opts, tea.WithOutput(p.Out))
	}

	final, err := tea.NewProgram(newModel(candidates), opts...).Run()
	if err != nil {
		return -1, fmt.Errorf("location picker: %w", err)
	}

	m := final.(model)
	if !m.chosen {
		return -1, weatherservice.ErrSelectionAborted
	}
	return m.choice, nil
}
