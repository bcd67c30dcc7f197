package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/crunch/internal/match3/levels"
)

// LevelPickerModel lists levels in a table and lets the user pick one.
type LevelPickerModel struct {
	levels   []levels.Level
	table    table.Model
	help     help.Model
	keys     PickerKeyMap
	theme    Theme
	width    int
	height   int
	selected *levels.Level
	quitting bool
}

// NewLevelPickerModel creates a picker over lvls with the cursor on the
// level whose ID is current.
func NewLevelPickerModel(lvls []levels.Level, current string, theme Theme, width, height int) LevelPickerModel {
	h := help.New()
	h.Width = width

	m := LevelPickerModel{
		levels: lvls,
		help:   h,
		keys:   DefaultPickerKeyMap(),
		theme:  theme,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	for i, lvl := range lvls {
		if lvl.ID == current {
			m.table.SetCursor(i)
		}
	}
	return m
}

// createTable builds the level table.
func (m *LevelPickerModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 12},
		{Title: "Name", Width: 16},
		{Title: "Size", Width: 6},
		{Title: "Tiles", Width: 6},
		{Title: "Types", Width: 6},
	}

	rows := make([]table.Row, len(m.levels))
	for i, lvl := range m.levels {
		types := "-"
		if lvl.PieceTypes > 0 {
			types = fmt.Sprintf("%d", lvl.PieceTypes)
		}
		rows[i] = table.Row{
			lvl.ID,
			lvl.Name,
			fmt.Sprintf("%dx%d", lvl.Columns(), lvl.Rows()),
			fmt.Sprintf("%d", lvl.Shape().TileCount()),
			types,
		}
	}

	height := m.height - 8 // title, frame and help
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = m.theme.TableHeader
	s.Selected = m.theme.TableSelected
	t.SetStyles(s)

	return t
}

// Init initializes the model.
func (m LevelPickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if i := m.table.Cursor(); i >= 0 && i < len(m.levels) {
				lvl := m.levels[i]
				m.selected = &lvl
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		cursor := m.table.Cursor()
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m LevelPickerModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.theme.MenuTitle.Render(centerText("C O O K I E   C R U N C H", m.width)))
	b.WriteString("\n")
	b.WriteString(m.theme.MenuFrame.Render(m.table.View()))
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))
	return b.String()
}

// Selected returns the chosen level, or nil.
func (m LevelPickerModel) Selected() *levels.Level {
	return m.selected
}

// IsQuitting returns true if the user left the picker.
func (m LevelPickerModel) IsQuitting() bool {
	return m.quitting
}

// RunLevelPicker shows the picker and returns the chosen level, or nil
// when the user quits.
func RunLevelPicker(lvls []levels.Level, current string, theme Theme, width, height int) (*levels.Level, error) {
	model := NewLevelPickerModel(lvls, current, theme, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(LevelPickerModel)
	if !ok || m.IsQuitting() {
		return nil, nil
	}
	return m.Selected(), nil
}
