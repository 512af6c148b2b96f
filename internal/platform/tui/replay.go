package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snowpush/internal/snowball/core"
)

// Replay speed bounds
const (
	minStepDelay = 25 * time.Millisecond
	maxStepDelay = 5 * time.Second
)

// ReplayModel animates a solution one push per frame.
type ReplayModel struct {
	title      string
	note       string
	frames     []*core.State
	index      int
	playing    bool
	delay      time.Duration
	gen        int
	keys       ReplayKeyMap
	help       help.Model
	theme      Theme
	width      int
	height     int
	quitOnBack bool
	quitting   bool
	back       bool
}

// NewReplayModel creates a viewer over frames as returned by core.Frames.
// Playback starts automatically.
func NewReplayModel(title string, frames []*core.State, delay time.Duration) ReplayModel {
	if delay <= 0 {
		delay = 400 * time.Millisecond
	}
	return ReplayModel{
		title:   title,
		frames:  frames,
		playing: len(frames) > 1,
		delay:   clampDelay(delay),
		keys:    DefaultReplayKeyMap(),
		help:    help.New(),
		theme:   DefaultTheme(),
	}
}

// WithNote sets a line shown under the HUD.
func (m ReplayModel) WithNote(note string) ReplayModel {
	m.note = note
	return m
}

// WithTheme sets the theme.
func (m ReplayModel) WithTheme(theme Theme) ReplayModel {
	m.theme = theme
	return m
}

// WithSize sets the initial screen size.
func (m ReplayModel) WithSize(width, height int) ReplayModel {
	m.width = width
	m.height = height
	m.help.Width = width
	return m
}

func clampDelay(d time.Duration) time.Duration {
	if d < minStepDelay {
		return minStepDelay
	}
	if d > maxStepDelay {
		return maxStepDelay
	}
	return d
}

// Init starts playback.
func (m ReplayModel) Init() tea.Cmd {
	if m.playing {
		return tickCmd(m.delay, m.gen)
	}
	return nil
}

// Update handles messages.
func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		return m.handleTick(msg)
	}
	return m, nil
}

func (m ReplayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	last := len(m.frames) - 1

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.back = true
		if m.quitOnBack {
			return m, tea.Quit
		}
		return m, nil

	case key.Matches(msg, m.keys.PlayPause):
		if m.playing {
			m.pause()
			return m, nil
		}
		if last < 1 {
			return m, nil
		}
		if m.index >= last {
			m.index = 0
		}
		m.playing = true
		m.gen++
		return m, tickCmd(m.delay, m.gen)

	case key.Matches(msg, m.keys.Next):
		m.pause()
		if m.index < last {
			m.index++
		}

	case key.Matches(msg, m.keys.Prev):
		m.pause()
		if m.index > 0 {
			m.index--
		}

	case key.Matches(msg, m.keys.First):
		m.pause()
		m.index = 0

	case key.Matches(msg, m.keys.Last):
		m.pause()
		m.index = max(last, 0)

	case key.Matches(msg, m.keys.Faster):
		return m.setDelay(m.delay / 2)

	case key.Matches(msg, m.keys.Slower):
		return m.setDelay(m.delay * 2)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// pause stops playback and invalidates pending ticks.
func (m *ReplayModel) pause() {
	if m.playing {
		m.playing = false
		m.gen++
	}
}

func (m ReplayModel) setDelay(d time.Duration) (tea.Model, tea.Cmd) {
	m.delay = clampDelay(d)
	if !m.playing {
		return m, nil
	}
	m.gen++
	return m, tickCmd(m.delay, m.gen)
}

func (m ReplayModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.playing || msg.Gen != m.gen {
		return m, nil
	}
	if m.index < len(m.frames)-1 {
		m.index++
	}
	if m.index >= len(m.frames)-1 {
		m.playing = false
		return m, nil
	}
	return m, tickCmd(m.delay, m.gen)
}

// View renders the replay.
func (m ReplayModel) View() string {
	if m.quitting {
		return ""
	}
	if len(m.frames) == 0 {
		return m.theme.HUDError.Render("nothing to replay")
	}

	frame := m.frames[m.index]
	sep := m.theme.HUDSeparator.Render("  |  ")

	var b strings.Builder
	b.WriteString(m.theme.HUDTitle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(RenderBoard(frame, m.theme))
	b.WriteString("\n\n")

	status := "paused"
	if m.playing {
		status = "playing"
	}
	hud := []string{
		m.theme.HUDValue.Render(fmt.Sprintf("push %d/%d", m.index, len(m.frames)-1)),
		m.theme.HUDValue.Render(lastAction(frame)),
		m.theme.HUDControls.Render(fmt.Sprintf("%s @ %s", status, m.delay)),
	}
	b.WriteString(strings.Join(hud, sep))
	if frame.Solved() {
		b.WriteString(sep)
		b.WriteString(m.theme.HUDSolved.Render("SOLVED"))
	}
	b.WriteString("\n")
	if m.note != "" {
		b.WriteString(m.theme.HUDControls.Render(m.note))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	if m.width <= 0 || m.height <= 0 {
		return b.String()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

func lastAction(s *core.State) string {
	if len(s.Actions) == 0 {
		return "start"
	}
	a := s.Actions[len(s.Actions)-1]
	return fmt.Sprintf("ball %d %s", a.Ball, strings.ToLower(a.Dir.String()))
}

// Index returns the current frame index.
func (m ReplayModel) Index() int {
	return m.index
}

// Playing returns true while auto-play is running.
func (m ReplayModel) Playing() bool {
	return m.playing
}

// Delay returns the current step delay.
func (m ReplayModel) Delay() time.Duration {
	return m.delay
}

// WantsBack returns true if user pressed back.
func (m ReplayModel) WantsBack() bool {
	return m.back
}

// IsQuitting returns true if user wants to quit.
func (m ReplayModel) IsQuitting() bool {
	return m.quitting
}

// RunReplay runs the replay viewer until the user quits or goes back.
func RunReplay(title string, frames []*core.State, delay time.Duration, theme Theme) error {
	model := NewReplayModel(title, frames, delay).WithTheme(theme)
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
