package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gesture-snake/internal/control"
	"github.com/vovakirdan/gesture-snake/internal/core"
	"github.com/vovakirdan/gesture-snake/internal/game"
	"github.com/vovakirdan/gesture-snake/internal/storage"
	"github.com/vovakirdan/gesture-snake/internal/track"
)

// calibrationSeconds is how long the player holds their hand still before
// the neutral position is locked in.
const calibrationSeconds = 3

var calibrationStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("6")).
	Padding(1, 2)

// Options bundles everything a game session needs. Source and Recorder
// may be nil for keyboard-only play.
type Options struct {
	Engine   *game.Engine
	Bridge   *control.Bridge
	Source   track.Source
	Recorder *track.Recorder
	Store    *storage.Store
	Runtime  core.RuntimeConfig
	// InputName labels saved scores with the control channel (tracker,
	// replay, keyboard).
	InputName string
}

// Model is the Bubble Tea model for a single game session.
type Model struct {
	engine     *game.Engine
	bridge     *control.Bridge
	source     track.Source
	recorder   *track.Recorder
	store      *storage.Store
	screen     *core.Screen
	keyMapper  *KeyMapper
	runtime    core.RuntimeConfig
	inputFrame core.InputFrame
	inputName  string
	spinner    spinner.Model

	calibrating      bool
	calibrationTicks int
	lastPos          *core.Vec

	highScore  int
	quitting   bool
	scoreSaved bool
}

// NewModel creates a new Bubble Tea model for a game session.
func NewModel(opts Options) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	m := Model{
		engine:     opts.Engine,
		bridge:     opts.Bridge,
		source:     opts.Source,
		recorder:   opts.Recorder,
		store:      opts.Store,
		screen:     core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		keyMapper:  NewKeyMapper(),
		runtime:    opts.Runtime,
		inputFrame: core.NewInputFrame(),
		inputName:  opts.InputName,
		spinner:    sp,
	}

	// Calibration only makes sense when a tracker feeds the bridge.
	if m.source != nil && m.bridge != nil {
		m.calibrating = true
		m.calibrationTicks = calibrationSeconds * m.runtime.TickRate
	}

	if m.store != nil {
		if high, err := m.store.HighScore(); err == nil {
			m.highScore = high
		}
	}

	return m
}

// Init starts the tick loop and the calibration spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.runtime.TickRate), m.spinner.Tick)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Enter skips calibration: play from raw motion without a neutral point.
	if m.calibrating && msg.String() == "enter" {
		m.calibrating = false
	}

	return m, nil
}

// handleTick advances the tracker -> bridge -> engine pipeline by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	sample, hasSample := m.pollSource()

	if m.calibrating {
		return m.handleCalibrationTick(sample, hasSample)
	}

	if m.inputFrame.Has(core.ActionRestart) && m.engine.GameOver() {
		m.engine.Reset()
		if m.bridge != nil {
			m.bridge.Reset()
		}
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.runtime.TickRate)
	}

	if hasSample && m.bridge != nil {
		m.bridge.Update(sample.Position, sample.Keypoints)
		if m.bridge.ConsumePauseTrigger() {
			m.engine.TogglePause()
		}
	}

	if m.inputFrame.Has(core.ActionPause) {
		m.engine.TogglePause()
	}

	// Keyboard steering wins over the tracker when both are present.
	dir := m.inputFrame.SteerDirection()
	if dir == core.DirNone && m.bridge != nil {
		dir = m.bridge.Direction()
	}

	boost := m.inputFrame.Has(core.ActionBoost)
	if !boost && m.bridge != nil {
		boost = m.bridge.Boost()
	}

	m.engine.Update(dir, boost)

	if m.engine.GameOver() && !m.scoreSaved && m.engine.Score() > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.inputName, m.engine.Score())
			if high, err := m.store.HighScore(); err == nil {
				m.highScore = high
			}
		}
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.runtime.TickRate)
}

// handleCalibrationTick counts down while tracking the most recent hand position.
func (m Model) handleCalibrationTick(sample track.Sample, hasSample bool) (tea.Model, tea.Cmd) {
	if hasSample && sample.Position != nil {
		pos := *sample.Position
		m.lastPos = &pos
	}

	if m.calibrationTicks > 0 {
		m.calibrationTicks--
	}

	// Hold until the countdown is done and at least one position was seen.
	if m.calibrationTicks == 0 && m.lastPos != nil {
		m.bridge.Calibrate(m.lastPos)
		m.calibrating = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.runtime.TickRate)
}

// pollSource reads one sample from the tracker, recording it if requested.
func (m Model) pollSource() (track.Sample, bool) {
	if m.source == nil {
		return track.Sample{}, false
	}

	sample := m.source.Sample()
	if m.recorder != nil {
		//nolint:errcheck // Recording failures never interrupt play
		m.recorder.Write(sample)
	}
	return sample, true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.calibrating {
		return m.calibrationView()
	}

	m.render(m.screen)
	return RenderScreen(m.screen)
}

// calibrationView shows the hold-still countdown before play starts.
func (m Model) calibrationView() string {
	seconds := (m.calibrationTicks + m.runtime.TickRate - 1) / m.runtime.TickRate

	status := fmt.Sprintf("hold your hand still... %ds", seconds)
	if m.calibrationTicks == 0 {
		status = "waiting for the tracker to see a hand..."
	}

	return calibrationStyle.Render(fmt.Sprintf(
		"%s Calibrating\n\n%s\n\n(enter to skip, q to quit)",
		m.spinner.View(), status,
	))
}

// render draws the playfield, snake, food and HUD into the screen buffer.
func (m Model) render(s *core.Screen) {
	s.Clear()

	gw, gh := m.engine.GridSize()

	// Center the bordered playfield, leaving a HUD row below.
	ox := (s.Width() - (gw + 2)) / 2
	oy := (s.Height() - (gh + 3)) / 2
	if ox < 0 {
		ox = 0
	}
	if oy < 0 {
		oy = 0
	}

	s.DrawBox(core.NewRect(ox, oy, gw+2, gh+2))

	s.SetColored(ox+1+m.engine.Food().X, oy+1+m.engine.Food().Y, '*', core.ColorBrightRed)

	for i, c := range m.engine.Snake() {
		ch := 'o'
		color := core.ColorGreen
		if i == 0 {
			ch = 'O'
			color = core.ColorBrightGreen
		}
		s.SetColored(ox+1+c.X, oy+1+c.Y, ch, color)
	}

	m.renderHUD(s, ox, oy+gh+2)

	switch {
	case m.engine.GameOver():
		m.drawCenteredColored(s, oy+gh/2, "GAME OVER", core.ColorBrightRed)
		m.drawCenteredColored(s, oy+gh/2+1, fmt.Sprintf("score: %d  (r)estart (q)uit", m.engine.Score()), core.ColorWhite)
	case m.engine.Paused():
		m.drawCenteredColored(s, oy+gh/2+1, "PAUSED", core.ColorBrightYellow)
	}
}

func (m Model) drawCenteredColored(s *core.Screen, y int, text string, c core.Color) {
	s.DrawTextColored((s.Width()-len(text))/2, y, text, c)
}

// renderHUD draws the status line under the playfield.
func (m Model) renderHUD(s *core.Screen, x, y int) {
	hud := fmt.Sprintf("score %d  high %d  dir %s", m.engine.Score(), m.highScore, m.engine.Direction())

	if m.bridge != nil {
		boost := " "
		if m.bridge.Boost() {
			boost = "BOOST"
		}
		hud = fmt.Sprintf("%s  [%s]  %s", hud, m.inputName, boost)
	}

	s.DrawTextColored(x, y, hud, core.ColorWhite)
}

// Run starts the Bubble Tea program for a game session and blocks until
// it finishes. The source and recorder are closed on exit. The engine in
// opts arrives already seeded; Run adds no randomness of its own.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()

	if opts.Recorder != nil {
		//nolint:errcheck // Nothing left to do with a close error on exit
		opts.Recorder.Close()
	}
	if opts.Source != nil {
		//nolint:errcheck
		opts.Source.Close()
	}

	return err
}
