package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snowpush/internal/snowball/core"
	"github.com/vovakirdan/snowpush/internal/snowball/levels"
	"github.com/vovakirdan/snowpush/internal/snowball/runner"
)

// sessionState is the screen a session is on.
type sessionState int

const (
	sessionPicking sessionState = iota
	sessionSolving
	sessionReplaying
	sessionFailed
)

// solvedMsg carries a finished search back into the session.
type solvedMsg struct {
	outcome runner.Outcome
	err     error
}

// SessionModel manages the full session flow: picker -> solve -> replay -> picker.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	loader *levels.Loader
	runner *runner.Runner
	delay  time.Duration
	theme  Theme
	width  int
	height int

	state    sessionState
	picker   LevelPickerModel
	replay   ReplayModel
	spinner  spinner.Model
	current  levels.Level
	started  time.Time
	failure  string
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(loader *levels.Loader, r *runner.Runner, delay time.Duration, width, height int) SessionModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))

	m := SessionModel{
		loader:  loader,
		runner:  r,
		delay:   delay,
		theme:   DefaultTheme(),
		width:   width,
		height:  height,
		spinner: sp,
	}
	m.picker = m.newPicker()
	return m
}

// PickerEntries lists the loader's levels with their best stored push counts.
func PickerEntries(loader *levels.Loader, r *runner.Runner) []PickerEntry {
	if loader == nil {
		return nil
	}
	lvls, err := loader.LoadAll()
	if err != nil {
		return nil
	}

	best := make(map[string]int)
	if r != nil && r.Store != nil {
		if sums, sumErr := r.Store.SolvedLevels(); sumErr == nil {
			for _, s := range sums {
				best[s.LevelID] = s.BestPushes
			}
		}
	}

	entries := make([]PickerEntry, len(lvls))
	for i, lvl := range lvls {
		entries[i] = PickerEntry{Level: lvl, BestPushes: best[lvl.ID]}
	}
	return entries
}

func (m SessionModel) newPicker() LevelPickerModel {
	return NewLevelPickerModel(PickerEntries(m.loader, m.runner), m.width, m.height)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.picker.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.state {
	case sessionSolving:
		return m.updateSolving(msg)
	case sessionReplaying:
		return m.updateReplay(msg)
	case sessionFailed:
		return m.updateFailed(msg)
	}
	return m.updatePicker(msg)
}

// updatePicker handles updates while choosing a level.
func (m SessionModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	newPicker, cmd := m.picker.Update(msg)
	if picker, ok := newPicker.(LevelPickerModel); ok {
		m.picker = picker
	}

	if m.picker.IsQuitting() || m.picker.WantsBack() {
		m.quitting = true
		return m, tea.Quit
	}

	// The picker quits its own program on select; here it hands over instead.
	if sel := m.picker.Selected(); sel != nil {
		m.current = sel.Level
		m.state = sessionSolving
		m.started = time.Now()
		return m, tea.Batch(m.spinner.Tick, m.solveCmd(*sel))
	}

	return m, cmd
}

// solveCmd runs the search off the UI loop.
func (m SessionModel) solveCmd(sel PickerSelection) tea.Cmd {
	r := m.runner
	return func() tea.Msg {
		if r == nil {
			return solvedMsg{err: errors.New("no solver configured")}
		}
		if sel.Stored {
			out, err := r.Stored(sel.Level)
			return solvedMsg{outcome: out, err: err}
		}
		out, err := r.Solve(sel.Level)
		return solvedMsg{outcome: out, err: err}
	}
}

// updateSolving handles updates while the search runs.
func (m SessionModel) updateSolving(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case solvedMsg:
		if msg.err != nil {
			m.state = sessionFailed
			m.failure = msg.err.Error()
			if errors.Is(msg.err, core.ErrUnsolvable) {
				m.failure = "no solution exists for this level"
			}
			return m, nil
		}

		frames, err := core.Frames(msg.outcome.Initial, msg.outcome.Final.Actions)
		if err != nil {
			m.state = sessionFailed
			m.failure = err.Error()
			return m, nil
		}

		note := fmt.Sprintf("%d pushes, %d states expanded in %s",
			msg.outcome.Final.Pushes(), msg.outcome.Stats.Expanded, msg.outcome.Elapsed.Round(time.Millisecond))
		if msg.outcome.Stored {
			note = fmt.Sprintf("stored solution: %d pushes", msg.outcome.Final.Pushes())
		}

		m.replay = NewReplayModel(m.current.Title(), frames, m.delay).
			WithNote(note).
			WithTheme(m.theme).
			WithSize(m.width, m.height)
		m.state = sessionReplaying
		return m, m.replay.Init()
	}
	return m, nil
}

// updateReplay handles updates while a solution plays.
func (m SessionModel) updateReplay(msg tea.Msg) (tea.Model, tea.Cmd) {
	newReplay, cmd := m.replay.Update(msg)
	if replay, ok := newReplay.(ReplayModel); ok {
		m.replay = replay
	}

	if m.replay.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.replay.WantsBack() {
		return m.backToPicker()
	}

	return m, cmd
}

// updateFailed waits for any key, then returns to the picker.
func (m SessionModel) updateFailed(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" || keyMsg.String() == "q" {
			m.quitting = true
			return m, tea.Quit
		}
		return m.backToPicker()
	}
	return m, nil
}

func (m SessionModel) backToPicker() (tea.Model, tea.Cmd) {
	m.state = sessionPicking
	m.failure = ""
	m.picker = m.newPicker()
	return m, m.picker.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case sessionSolving:
		elapsed := time.Since(m.started).Round(time.Second)
		body := fmt.Sprintf("%s Solving %s... %s", m.spinner.View(), m.current.Title(), elapsed)
		return m.place(m.theme.HUDTitle.Render(body))

	case sessionReplaying:
		return m.replay.View()

	case sessionFailed:
		var b strings.Builder
		b.WriteString(m.theme.HUDTitle.Render(m.current.Title()))
		b.WriteString("\n\n")
		b.WriteString(m.theme.HUDError.Render(m.failure))
		b.WriteString("\n\n")
		b.WriteString(m.theme.HUDControls.Render("Press any key to go back, Q to quit"))
		return m.place(b.String())
	}

	return m.picker.View()
}

func (m SessionModel) place(s string) string {
	if m.width <= 0 || m.height <= 0 {
		return s
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s)
}
