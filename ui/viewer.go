package ui

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/DeadSix27/dfind/app"
	"github.com/DeadSix27/dfind/models"
)

var baseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

var titleStyle = lipgloss.NewStyle().Bold(true).PaddingBottom(1)

type keyMap struct {
	Open key.Binding
	Quit key.Binding
}

var keys = keyMap{
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type model struct {
	title string
	table table.Model
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Open):
			row := m.table.SelectedRow()
			if row != nil {
				openFile(row[0])
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return titleStyle.Render(m.title) + "\n" + baseStyle.Render(m.table.View()) + "\n"
}

// Show displays the search result in an interactive table. Enter
// opens the selected file with the platform opener.
func Show(res *models.SearchResult) error {
	width, height, err := term.GetSize(os.Stdout.Fd())
	if err != nil {
		width, height = 100, 30
	}

	sizeWidth := 12
	pathWidth := width - sizeWidth - 8
	if pathWidth < 20 {
		pathWidth = 20
	}
	columns := []table.Column{
		{Title: "Path", Width: pathWidth},
		{Title: "Size", Width: sizeWidth},
	}

	rows := make([]table.Row, 0, len(res.Items))
	for _, item := range res.Items {
		rows = append(rows, table.Row{item.FullPath, app.SizeToIEC(item.Size)})
	}

	tableHeight := height - 6
	if tableHeight < 5 {
		tableHeight = 5
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m := model{title: res.String(), table: t}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// openFile hands the path to the desktop environment. Failures are
// ignored; the viewer stays open either way.
func openFile(path string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	case "darwin":
		cmd = exec.Command("open", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to open %q: %v\n", path, err)
	}
}
