package viz

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/rain/internal/config"
	"github.com/san-kum/rain/internal/debug"
	"github.com/san-kum/rain/internal/grid"
	"github.com/san-kum/rain/internal/rain"
	"github.com/san-kum/rain/internal/sim"
)

type TickMsg time.Time

// Model owns the simulator and the shared animation settings for one
// terminal session.
type Model struct {
	sim           *sim.Simulator
	compositor    *grid.Compositor
	renderer      *Renderer
	anim          *config.Animation
	src           rain.Source
	keys          KeyMap
	help          help.Model
	frame         *grid.Frame
	width, height int
	showHelp      bool
	err           error
}

// NewModel wires a simulator to the animation settings. src drives color
// cycling and rainbow sampling.
func NewModel(s *sim.Simulator, anim *config.Animation, src rain.Source) Model {
	return Model{
		sim:        s,
		compositor: grid.NewCompositor(src),
		renderer:   NewRenderer(),
		anim:       anim,
		src:        src,
		keys:       DefaultKeyMap(),
		help:       help.New(),
	}
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick(m.anim.Interval)
}

// Update handles input events and advances the animation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		rebuilt, err := m.sim.Resize(msg.Width, msg.Height, m.anim.Direction)
		m.err = err
		if err != nil {
			debug.Log("resize %dx%d: %v", msg.Width, msg.Height, err)
		} else if rebuilt {
			debug.Log("grid rebuilt for %dx%d falling %s", msg.Width, msg.Height, m.anim.Direction)
		}
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		g, err := m.sim.Tick(m.anim.Direction)
		m.err = err
		m.frame = m.compositor.Compose(g, m.anim)
		return m, tick(m.anim.Interval)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Color):
		debug.Log("color -> %s", m.anim.CycleColor(m.src))
	case key.Matches(msg, m.keys.Speed):
		if len(msg.Runes) == 1 && m.anim.SetSpeedKey(msg.Runes[0]) {
			debug.Log("interval -> %v", m.anim.Interval)
		}
	case key.Matches(msg, m.keys.Bold):
		debug.Log("bold -> %v", m.anim.ToggleBold())
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	default:
		if dir, ok := m.keys.direction(msg); ok && m.anim.SetDirection(dir) {
			_, err := m.sim.Reconcile(dir)
			m.err = err
			debug.Log("direction -> %s (err=%v)", dir, err)
		}
	}
	return m, nil
}

// View renders the current frame.
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(m.err.Error())
	}
	out := m.renderer.Render(m.frame)
	if !m.showHelp {
		return out
	}
	line := helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
	lines := strings.Split(out, "\n")
	if len(lines) == 0 || out == "" {
		return line
	}
	lines[len(lines)-1] = line
	return strings.Join(lines, "\n")
}

// Animation exposes the shared settings.
func (m Model) Animation() *config.Animation { return m.anim }
