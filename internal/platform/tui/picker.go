package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snowpush/internal/snowball/levels"
)

// PickerEntry is one level in the picker.
type PickerEntry struct {
	Level      levels.Level
	BestPushes int // 0 = never solved
}

// PickerSelection holds the user's selection from the level picker.
type PickerSelection struct {
	Level  levels.Level
	Stored bool // Replay the stored solution instead of solving
}

// LevelPickerModel is the level picker.
type LevelPickerModel struct {
	entries      []PickerEntry
	cursor       int
	width        int
	height       int
	keyMapper    *KeyMapper
	selection    PickerSelection
	choosing     bool
	quitting     bool
	back         bool
	scrollOffset int
	theme        Theme
}

// NewLevelPickerModel creates a new level selection model.
func NewLevelPickerModel(entries []PickerEntry, width, height int) LevelPickerModel {
	return LevelPickerModel{
		entries:   entries,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
		theme:     DefaultTheme(),
	}
}

// Init initializes the model.
func (m LevelPickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateScroll()
		return m, nil
	}
	return m, nil
}

func (m LevelPickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.cursor < len(m.entries)-1 {
			m.cursor++
			m.updateScroll()
		}
	case MenuActionSelect, MenuActionStored:
		if len(m.entries) == 0 {
			return m, nil
		}
		entry := m.entries[m.cursor]
		stored := action == MenuActionStored
		if stored && entry.BestPushes == 0 {
			return m, nil
		}
		m.choosing = false
		m.selection = PickerSelection{Level: entry.Level, Stored: stored}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m LevelPickerModel) visibleItems() int {
	visible := m.height - 10 // Account for header and footer
	if visible < 3 {
		visible = 3
	}
	return visible
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *LevelPickerModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// View renders the level selection.
func (m LevelPickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("S N O W P U S H"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.MenuDescription.Render("Select a level:"), m.width))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("No levels found"), m.width))
		b.WriteString("\n")
	}

	endIdx := m.scrollOffset + m.visibleItems()
	if endIdx > len(m.entries) {
		endIdx = len(m.entries)
	}

	for i := m.scrollOffset; i < endIdx; i++ {
		entry := m.entries[i]
		cursor := "  "
		style := m.theme.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}

		best := "unsolved"
		if entry.BestPushes > 0 {
			best = fmt.Sprintf("best %d", entry.BestPushes)
		}
		line := fmt.Sprintf("%s%2d. %-20s %s", cursor, i+1, entry.Level.Title(), m.theme.MenuDescription.Render(best))
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	if m.scrollOffset > 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}
	if endIdx < len(m.entries) {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := m.theme.HUDControls.Render("Up/Down: Navigate  |  Enter: Solve  |  O: Stored  |  Q: Quit")
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m LevelPickerModel) Selected() *PickerSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m LevelPickerModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelPickerModel) WantsBack() bool {
	return m.back
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunLevelPicker runs the level selection and returns the selection,
// or nil if the user quit.
func RunLevelPicker(entries []PickerEntry, width, height int) (*PickerSelection, error) {
	model := NewLevelPickerModel(entries, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(LevelPickerModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
