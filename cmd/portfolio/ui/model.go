package ui

import (
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"portfolio/internal/carousel"
	"portfolio/internal/ux"
)

// Fallback screen size until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 128
	defaultHeight = 36
)

// ItemsReloadedMsg replaces the carousel items, keeping the active index
// where possible.
type ItemsReloadedMsg struct {
	Items []carousel.Item
}

// PreferencesChangedMsg carries preferences reloaded from disk.
type PreferencesChangedMsg struct {
	Prefs *ux.Preferences
}

// stateMsg delivers a snapshot from the controller subscription.
type stateMsg struct {
	controller string
	state      carousel.State
}

// moveSettledMsg ends the focal highlight for one move.
type moveSettledMsg struct {
	gen int
}

type dragState struct {
	x  int
	at time.Time
}

// Options configures the carousel model.
type Options struct {
	Items []carousel.Item

	// ControllerOptions are applied to every controller the model creates
	// (interval, clock, logger, thresholds).
	ControllerOptions []carousel.Option

	// Prefs persists theme and reduced-motion changes. Optional.
	Prefs *ux.PreferencesManager

	// ReducedMotion applies when the preferences hold no explicit choice.
	ReducedMotion bool

	CellWidthPx int
	Logger      *zap.Logger

	// Now is the time source for swipe velocity.
	Now func() time.Time
}

// Model is the bubbletea model hosting one carousel.
type Model struct {
	opts   Options
	logger *zap.Logger

	ctrl        *carousel.Controller
	items       []carousel.Item
	state       carousel.State
	states      <-chan carousel.State
	unsubscribe func()

	// motion is the viewer's reduced-motion preference; the running
	// controller follows it.
	motion       *carousel.MotionDetector
	unwireMotion func()

	keys       KeyMap
	help       help.Model
	theme      ux.Theme
	styles     Styles
	detail     *DetailRenderer
	showDetail bool

	width, height int
	drag          *dragState

	// moving is set while the last move's transition runs.
	moving  bool
	moveGen int
	moveFor time.Duration

	frame  carousel.Frame
	body   string
	layout screenLayout
}

// NewModel builds the model and its first controller. Call Close when the
// program exits.
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.CellWidthPx <= 0 {
		opts.CellWidthPx = 8
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	prefs := ux.DefaultPreferences()
	if opts.Prefs != nil {
		prefs = opts.Prefs.Get()
	}

	m := Model{
		opts:       opts,
		logger:     opts.Logger,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		theme:      prefs.Theme,
		styles:     NewStyles(ResolveTheme(prefs.Theme)),
		detail:     NewDetailRenderer(opts.Logger),
		showDetail: true,
		motion:     carousel.NewMotionDetector(prefs.ResolveReducedMotion(opts.ReducedMotion)),
	}
	m.startController(opts.Items, 0)
	m.refresh()
	return m
}

// startController mounts a controller over items. extra options apply
// after the model's own, so a remount can carry state across.
func (m *Model) startController(items []carousel.Item, start int, extra ...carousel.Option) {
	copts := append(slices.Clone(m.opts.ControllerOptions),
		carousel.WithStartIndex(start),
		carousel.WithReducedMotion(m.motion.Reduced()),
		carousel.WithViewportWidth(m.viewportPx()),
	)
	copts = append(copts, extra...)
	m.items = slices.Clone(items)
	m.ctrl = carousel.NewController(m.items, copts...)
	m.states, m.unsubscribe = m.ctrl.Subscribe()
	m.unwireMotion = m.motion.Subscribe(m.ctrl.SetReducedMotion)
	m.state = m.ctrl.Snapshot()
}

// Close stops the controller and its timers.
func (m Model) Close() {
	if m.unwireMotion != nil {
		m.unwireMotion()
	}
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	if m.ctrl != nil {
		m.ctrl.Close()
	}
}

// Controller exposes the running controller.
func (m Model) Controller() *carousel.Controller {
	return m.ctrl
}

// Motion exposes the reduced-motion preference the controller follows.
func (m Model) Motion() *carousel.MotionDetector {
	return m.motion
}

// State returns the last state the model rendered.
func (m Model) State() carousel.State {
	return m.state
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return waitForState(m.ctrl.ID(), m.states)
}

func waitForState(id string, ch <-chan carousel.State) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return stateMsg{controller: id, state: s}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.ctrl.SetViewportWidth(m.viewportPx())
		return m, m.sync()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, m.sync()

	case tea.BlurMsg:
		m.drag = nil
		m.ctrl.SetHover(false)
		return m, m.sync()

	case stateMsg:
		if msg.controller != m.ctrl.ID() {
			return m, nil
		}
		var settle tea.Cmd
		if msg.state.Version >= m.state.Version {
			settle = m.apply(msg.state)
		}
		return m, tea.Batch(settle, waitForState(m.ctrl.ID(), m.states))

	case moveSettledMsg:
		if msg.gen == m.moveGen && m.moving {
			m.moving = false
			m.refresh()
		}
		return m, nil

	case ItemsReloadedMsg:
		prev := m.state
		m.Close()
		m.startController(msg.Items, prev.ActiveIndex,
			carousel.WithAutoplay(prev.Autoplay),
			carousel.WithHover(prev.HoverPaused))
		m.logger.Info("carousel items replaced",
			zap.Int("count", len(msg.Items)),
			zap.Int("active", m.state.ActiveIndex),
			zap.Bool("autoplay", m.state.Autoplay))
		m.moving = false
		m.refresh()
		return m, waitForState(m.ctrl.ID(), m.states)

	case PreferencesChangedMsg:
		if msg.Prefs == nil {
			return m, nil
		}
		m.applyTheme(msg.Prefs.Theme)
		m.motion.Set(msg.Prefs.ResolveReducedMotion(m.opts.ReducedMotion))
		return m, m.sync()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Detail):
		m.showDetail = !m.showDetail

	case key.Matches(msg, m.keys.Theme):
		next := m.theme.Next()
		if m.opts.Prefs != nil {
			next = m.opts.Prefs.CycleTheme()
			m.savePrefs()
		}
		m.applyTheme(next)

	case key.Matches(msg, m.keys.ReducedMotion):
		reduced := !m.motion.Reduced()
		if m.opts.Prefs != nil {
			m.opts.Prefs.SetReducedMotion(reduced)
			m.savePrefs()
		}
		m.motion.Set(reduced)

	default:
		if k := m.keys.CarouselKey(msg); k != carousel.KeyUnknown {
			m.ctrl.HandleKey(k)
		}
	}
	return m, m.sync()
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionMotion:
		m.ctrl.SetHover(m.layout.inRegion(msg.Y))

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		z, ok := m.layout.hit(msg.X, msg.Y)
		switch {
		case ok && z.kind == zoneControl:
			m.pressControl(z.control)
		case ok && z.kind == zoneIndicator:
			m.ctrl.JumpTo(z.index)
		case m.layout.inStage(msg.Y):
			m.drag = &dragState{x: msg.X, at: m.opts.Now()}
		}

	case tea.MouseActionRelease:
		if m.drag == nil {
			return
		}
		d := *m.drag
		m.drag = nil

		dx := msg.X - d.x
		if dx == 0 {
			// A click on a side card brings it to the front.
			if z, ok := m.layout.hit(msg.X, msg.Y); ok && z.kind == zoneCard {
				m.ctrl.JumpTo(z.index)
			}
			return
		}
		offset := float64(dx * m.opts.CellWidthPx)
		var velocity float64
		if secs := m.opts.Now().Sub(d.at).Seconds(); secs > 0 {
			velocity = offset / secs
		}
		swipe := m.ctrl.HandleDrag(carousel.Drag{Offset: offset, Velocity: velocity})
		m.logger.Debug("drag released",
			zap.Float64("offset", offset),
			zap.Float64("velocity", velocity),
			zap.Stringer("swipe", swipe))
	}
}

func (m *Model) pressControl(kind carousel.ControlKind) {
	switch kind {
	case carousel.ControlPrevious:
		m.ctrl.Previous()
	case carousel.ControlNext:
		m.ctrl.Next()
	case carousel.ControlAutoplay:
		m.ctrl.ToggleAutoplay()
	}
}

func (m *Model) applyTheme(theme ux.Theme) {
	if theme == m.theme {
		return
	}
	m.theme = theme
	m.styles = NewStyles(ResolveTheme(theme))
	m.logger.Debug("theme changed", zap.String("theme", string(theme)))
}

func (m *Model) savePrefs() {
	if err := m.opts.Prefs.Save(); err != nil {
		m.logger.Warn("failed to save preferences", zap.Error(err))
	}
}

// sync pulls the controller's state after a direct call so the next
// render does not wait for the subscription round trip.
func (m *Model) sync() tea.Cmd {
	return m.apply(m.ctrl.Snapshot())
}

// apply renders a new state. When the focal card changed it highlights
// the card for the frame's transition and returns the command that
// clears it.
func (m *Model) apply(s carousel.State) tea.Cmd {
	moved := s.ActiveIndex != m.state.ActiveIndex && s.ItemCount > 0
	m.state = s
	m.frame = carousel.Compose(m.items, m.state)

	var settle tea.Cmd
	if moved {
		m.moveGen++
		m.moving = true
		m.moveFor = m.frame.Transition
		gen := m.moveGen
		settle = tea.Tick(m.frame.Transition, func(time.Time) tea.Msg {
			return moveSettledMsg{gen: gen}
		})
	}
	m.draw()
	return settle
}

func (m *Model) refresh() {
	m.frame = carousel.Compose(m.items, m.state)
	m.draw()
}

func (m *Model) draw() {
	width, height := m.size()
	detail := ""
	if m.showDetail {
		if focal, ok := m.frame.Focal(); ok {
			detail = m.detail.Render(focal.Item, width, m.styles.Theme)
		}
	}
	m.body, m.layout = renderFrame(m.frame, m.styles, width, height-1, m.opts.CellWidthPx, m.moving, detail)
}

func (m Model) size() (int, int) {
	if m.width == 0 || m.height == 0 {
		return defaultWidth, defaultHeight
	}
	return m.width, m.height
}

func (m Model) viewportPx() int {
	if m.width == 0 {
		return carousel.DesktopMinWidth
	}
	return m.width * m.opts.CellWidthPx
}

// View implements tea.Model.
func (m Model) View() string {
	footer := m.styles.Footer.Render(m.help.View(m.keys))
	if m.body == "" {
		return footer
	}
	return m.body + "\n" + footer
}

// RenderStatic draws one frame without a running program.
func RenderStatic(items []carousel.Item, state carousel.State, theme Theme, width, height, cellPx int, withDetail bool) string {
	frame := carousel.Compose(items, state)
	detail := ""
	if withDetail {
		if focal, ok := frame.Focal(); ok {
			detail = NewDetailRenderer(nil).Render(focal.Item, width, theme)
		}
	}
	body, _ := renderFrame(frame, NewStyles(theme), width, height, max(cellPx, 1), false, detail)
	return body
}
