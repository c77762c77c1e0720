package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/keelow/flipdeck/internal/deck"
	"github.com/keelow/flipdeck/internal/engine"
	"github.com/keelow/flipdeck/internal/prefs"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Deck      deck.Deck
	DeckPath  string // used by the reload action
	Engine    *engine.Engine
	ThemeName string
	PrefsPath string
	Threshold int // swipe threshold in cells
	Log       zerolog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	deckPath  string
	prefsPath string
	log       zerolog.Logger

	// Presentation state
	deck    deck.Deck
	eng     *engine.Engine
	gesture *engine.Gesture

	// Timer bookkeeping: the generations we have already armed commands
	// for, so a snapshot with the same generation is not armed twice.
	armedAdvance uint64
	armedFlip    uint64

	// UI state
	theme  Theme
	styles Styles
	keys   keyMap
	width  int
	height int
	ready  bool

	// Components
	bar         progress.Model
	help        help.Model
	searchInput textinput.Model
	searchMode  bool
	showHelp    bool
	notice      string // transient line under the command bar
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	theme := GetTheme(opts.ThemeName)

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())

	input := textinput.New()
	input.Placeholder = "card number or front text"
	input.Prompt = "/ "
	input.CharLimit = 64

	m := Model{
		ctx:         ctx,
		deckPath:    opts.DeckPath,
		prefsPath:   opts.PrefsPath,
		log:         opts.Log,
		deck:        opts.Deck,
		eng:         opts.Engine,
		gesture:     engine.NewGesture(opts.Threshold),
		theme:       theme,
		styles:      theme.Styles(),
		keys:        DefaultKeyMap(),
		bar:         bar,
		help:        help.New(),
		searchInput: input,
	}

	// Record the generations Init will arm, so the first syncTimers
	// call does not arm them a second time.
	snap := m.eng.Snapshot()
	m.armedAdvance = snap.AdvanceGen
	m.armedFlip = snap.FlipGen
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnterAltScreen}
	snap := m.eng.Snapshot()
	if snap.AdvanceArmed {
		cmds = append(cmds,
			advanceTickCmd(m.eng.Config().TickInterval, snap.AdvanceGen),
			progressTickCmd(m.eng.ProgressInterval(), snap.AdvanceGen),
		)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.bar.Width = barWidth(msg.Width)
		m.ready = true
		return m, nil

	case advanceTickMsg:
		m.eng.AdvanceElapsed(msg.gen)
		return m, m.syncTimers()

	case progressTickMsg:
		m.eng.ProgressTick(msg.gen)
		// Keep the chain alive only while this generation is still the
		// armed one; a stale chain dies here.
		if snap := m.eng.Snapshot(); snap.AdvanceArmed && snap.AdvanceGen == msg.gen {
			return m, progressTickCmd(m.eng.ProgressInterval(), msg.gen)
		}
		return m, nil

	case flipRevertMsg:
		m.eng.FlipElapsed(msg.gen)
		return m, m.syncTimers()

	case deckReloadedMsg:
		if msg.err != nil {
			m.notice = fmt.Sprintf("reload failed: %v", msg.err)
			m.log.Error().Err(msg.err).Str("path", m.deckPath).Msg("deck reload failed")
			return m, nil
		}
		m.deck = msg.deck
		m.eng.Replace(m.deck.Len())
		m.notice = fmt.Sprintf("reloaded %s (%d cards)", m.deck.Name, m.deck.Len())
		m.log.Info().Str("deck", m.deck.Name).Int("cards", m.deck.Len()).Msg("deck reloaded")
		return m, m.syncTimers()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCard())
	b.WriteString("\n")
	b.WriteString(m.renderProgress())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchMode {
		return m.handleSearchKey(msg)
	}

	// Any key closes the help overlay.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Next):
		m.eng.Navigate(engine.Next)
		return m, m.syncTimers()

	case key.Matches(msg, m.keys.Previous):
		m.eng.Navigate(engine.Previous)
		return m, m.syncTimers()

	case key.Matches(msg, m.keys.First):
		m.eng.JumpTo(0)
		return m, m.syncTimers()

	case key.Matches(msg, m.keys.Last):
		m.eng.JumpTo(m.deck.Len() - 1)
		return m, m.syncTimers()

	case key.Matches(msg, m.keys.Flip):
		m.eng.ToggleFlip()
		return m, m.syncTimers()

	case key.Matches(msg, m.keys.PlayPause):
		m.eng.TogglePlay()
		return m, m.syncTimers()

	case key.Matches(msg, m.keys.Reload):
		return m, reloadDeckCmd(m.deckPath)

	case key.Matches(msg, m.keys.JumpSearch):
		m.searchMode = true
		m.searchInput.SetValue("")
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles()
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	}

	return m, nil
}

// handleSearchKey processes input while the jump-search prompt is open.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		query := strings.TrimSpace(m.searchInput.Value())
		m.searchMode = false
		m.searchInput.Blur()
		if query == "" {
			return m, nil
		}
		if idx, ok := resolveJumpTarget(m.deck, query); ok {
			m.eng.JumpTo(idx)
			return m, m.syncTimers()
		}
		m.notice = fmt.Sprintf("no card matching %q", query)
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.searchMode = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// handleMouse feeds drag coordinates to the gesture recognizer; a
// completed swipe becomes a navigate call.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.gesture.Begin(msg.X)
		}
	case tea.MouseActionMotion:
		m.gesture.Move(msg.X)
	case tea.MouseActionRelease:
		if dir, ok := m.gesture.End(); ok {
			m.eng.Navigate(dir)
			return m, m.syncTimers()
		}
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.eng.Close()
	m.log.Info().Msg("session end")
	return m, tea.Quit
}

// syncTimers arms Bubble Tea timer commands for any engine generation
// that is not armed yet. The engine validates generations on every
// firing, so over-arming is harmless but under-arming would stall the
// show; this is the single place arming happens.
func (m *Model) syncTimers() tea.Cmd {
	snap := m.eng.Snapshot()
	cfg := m.eng.Config()

	var cmds []tea.Cmd
	if snap.AdvanceArmed && snap.AdvanceGen != m.armedAdvance {
		m.armedAdvance = snap.AdvanceGen
		cmds = append(cmds,
			advanceTickCmd(cfg.TickInterval, snap.AdvanceGen),
			progressTickCmd(m.eng.ProgressInterval(), snap.AdvanceGen),
		)
	}
	if snap.FlipArmed && snap.FlipGen != m.armedFlip {
		m.armedFlip = snap.FlipGen
		cmds = append(cmds, flipRevertCmd(cfg.FlipRevert, snap.FlipGen))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// resolveJumpTarget interprets a jump query: a bare number goes to that
// card (1-based), anything else matches case-insensitively against the
// card fronts.
func resolveJumpTarget(d deck.Deck, query string) (int, bool) {
	if d.Len() == 0 {
		return 0, false
	}
	var n int
	if _, err := fmt.Sscanf(query, "%d", &n); err == nil && fmt.Sprintf("%d", n) == query {
		if n < 1 || n > d.Len() {
			return 0, false
		}
		return n - 1, true
	}
	needle := strings.ToLower(query)
	for i := 0; i < d.Len(); i++ {
		if strings.Contains(strings.ToLower(d.Card(i).Title()), needle) {
			return i, true
		}
	}
	return 0, false
}

func barWidth(termWidth int) int {
	w := termWidth - 4
	if w < 10 {
		w = 10
	}
	if w > 80 {
		w = 80
	}
	return w
}

// Messages

type advanceTickMsg struct{ gen uint64 }

type progressTickMsg struct{ gen uint64 }

type flipRevertMsg struct{ gen uint64 }

type deckReloadedMsg struct {
	deck deck.Deck
	err  error
}

// Commands

func advanceTickCmd(d time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return advanceTickMsg{gen: gen}
	})
}

func progressTickCmd(d time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return progressTickMsg{gen: gen}
	})
}

func flipRevertCmd(d time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return flipRevertMsg{gen: gen}
	})
}

func reloadDeckCmd(path string) tea.Cmd {
	return func() tea.Msg {
		d, err := deck.Load(path)
		return deckReloadedMsg{deck: d, err: err}
	}
}

// Run starts the Bubble Tea program and blocks until the session ends.
func Run(opts Options) error {
	model := New(opts)
	prog := tea.NewProgram(model,
		tea.WithMouseCellMotion(),
		tea.WithContext(model.ctx),
	)
	_, err := prog.Run()
	return err
}
