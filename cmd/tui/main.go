package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/bkinbkin/MinecraftStatFileAnalyzer/app"
	"github.com/bkinbkin/MinecraftStatFileAnalyzer/models"
)

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	inputStyle = lipgloss.NewStyle().
			Margin(1, 0, 1, 0)
	tableStyle = lipgloss.NewStyle().
			Margin(0, 0, 1, 0)
)

type model struct {
	textInput textinput.Model
	table     table.Model
	records   []models.FlatRecord
	matches   []models.FlatRecord
	err       error
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	var enter = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("⏎", "filter/open"),
	)
	var toggleFocus = key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "toggle focus"),
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, enter):
			if m.textInput.Focused() {
				stat := m.textInput.Value()
				if stat != "" {
					m.applyFilter(stat)
					m.textInput.Blur()
					m.table.Focus()
				}
				return m, nil
			} else if m.table.Focused() && len(m.matches) > 0 {
				// Open the selected row's source file
				selected := m.table.Cursor()
				if selected < len(m.matches) {
					if err := openFile(m.matches[selected].Path); err != nil {
						m.err = err
						return m, nil
					}
				}
				return m, nil
			}
		case key.Matches(msg, toggleFocus):
			if m.textInput.Focused() {
				m.textInput.Blur()
				m.table.Focus()
			} else {
				m.table.Blur()
				m.textInput.Focus()
			}
			return m, nil
		case key.Matches(msg, key.NewBinding(key.WithKeys("esc"))):
			return m, tea.Quit
		}

		if m.textInput.Focused() {
			m.textInput, cmd = m.textInput.Update(msg)
			return m, cmd
		}
		if m.table.Focused() {
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
		var tiCmd, tCmd tea.Cmd
		m.textInput, tiCmd = m.textInput.Update(msg)
		m.table, tCmd = m.table.Update(msg)
		return m, tea.Batch(tiCmd, tCmd)

	case tea.WindowSizeMsg:
		m.table.SetWidth(msg.Width)
		m.table.SetHeight(msg.Height - 8)
		return m, nil
	}

	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(inputStyle.Render(m.textInput.View()))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(fmt.Sprintf("Error: %v\n", m.err))
	} else {
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString(fmt.Sprintf("\n%d matching records. Press Enter to filter (in input) or open file (in table), Tab to toggle focus, Esc to quit.\n", len(m.matches)))

	return baseStyle.Render(b.String())
}

// applyFilter rebuilds the table rows for the given stat key, grouped by
// category and sorted the same way the printed report is.
func (m *model) applyFilter(stat string) {
	m.matches = m.matches[:0]
	rows := []table.Row{}
	for _, g := range app.GroupRecords(app.FilterRecords(m.records, stat)) {
		for _, r := range g.Records {
			m.matches = append(m.matches, r)
			rows = append(rows, table.Row{
				r.World,
				r.Player,
				r.Category,
				fmt.Sprintf("%d", r.Value),
				truncateLeft(r.Path, 60),
			})
		}
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

func main() {
	configPath := flag.String("config", "stats_config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	rl, err := app.NewRunLogger(os.Stderr, cfg.Scan.LogDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create run logger: %v\n", err)
		os.Exit(1)
	}

	records, err := app.BuildRecords(cfg, rl)
	rl.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Scan error: %v\n", err)
		os.Exit(1)
	}

	fd := os.Stdout.Fd()
	width, _, err := term.GetSize(fd)
	if err != nil {
		width = 120 // fallback
	}

	worldCol := 16
	uuidCol := 36
	categoryCol := 20
	valueCol := 10
	pathCol := width - worldCol - uuidCol - categoryCol - valueCol - 8
	if pathCol < 10 {
		pathCol = 10
	}

	ti := textinput.New()
	ti.Placeholder = "Enter stat key, e.g. minecraft:lantern..."
	ti.SetValue(cfg.Report.TargetStat)
	ti.Focus()
	ti.Width = 50

	columns := []table.Column{
		{Title: "World", Width: worldCol},
		{Title: "UUID", Width: uuidCol},
		{Title: "Category", Width: categoryCol},
		{Title: "Value", Width: valueCol},
		{Title: "File Path", Width: pathCol},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(styles)

	m := model{
		textInput: ti,
		table:     t,
		records:   records,
	}
	m.applyFilter(cfg.Report.TargetStat)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error starting program: %v\n", err)
		os.Exit(1)
	}
}
