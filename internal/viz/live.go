// Package viz renders moving bodies in the terminal: a braille canvas
// for body outlines and a bubbletea model that animates a scenario.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/bodykin/internal/body"
	"github.com/san-kum/bodykin/internal/config"
	"github.com/san-kum/bodykin/internal/motion"
)

const (
	width  = 80
	height = 24
	// Centroid trail length, in steps.
	trailCapacity = 400
)

type TickMsg time.Time

// Model steps a scenario's bodies under their motions and draws the
// inertial-frame outlines each frame.
type Model struct {
	name    string
	bodies  body.List
	motions motion.List

	state motion.State
	t, dt float64

	canvas   *Canvas
	viewport *Viewport
	trail    [][2]float64

	running bool
	err     error
}

// NewModel builds the live view for a scenario. The viewport is sized
// to hold the bodies across the configured duration of drift.
func NewModel(cfg *config.Config) (Model, error) {
	bodies, motions, err := cfg.Build()
	if err != nil {
		return Model{}, err
	}
	state, err := motion.ListState(bodies, motions)
	if err != nil {
		return Model{}, err
	}

	c := NewCanvas(width, height)
	minX, maxX, minY, maxY := bounds(bodies, cfg.Duration)
	return Model{
		name:     cfg.Name,
		bodies:   bodies,
		motions:  motions,
		state:    state,
		dt:       cfg.Dt,
		canvas:   c,
		viewport: NewViewport(c, minX, maxX, minY, maxY),
		trail:    make([][2]float64, 0, trailCapacity),
		running:  true,
	}, nil
}

// bounds guesses a viewport from the initial body extents plus room for
// the configured duration of unit-speed drift, padded and aspect-fixed.
func bounds(bodies body.List, duration float64) (minX, maxX, minY, maxY float64) {
	minX, maxX = -1, 1
	minY, maxY = -1, 1
	for _, b := range bodies {
		for i := range b.X {
			if b.X[i] < minX {
				minX = b.X[i]
			}
			if b.X[i] > maxX {
				maxX = b.X[i]
			}
			if b.Y[i] < minY {
				minY = b.Y[i]
			}
			if b.Y[i] > maxY {
				maxY = b.Y[i]
			}
		}
	}
	maxX += duration // leave room for drifting downstream
	minX -= 0.5
	minY -= 0.5
	maxY += 0.5
	// Match the canvas sub-pixel aspect so circles stay round.
	worldAspect := (maxX - minX) / (maxY - minY)
	canvasAspect := float64(width*2) / float64(height*4)
	if worldAspect < canvasAspect {
		cx := 0.5 * (minX + maxX)
		half := 0.5 * (maxY - minY) * canvasAspect
		minX, maxX = cx-half, cx+half
	} else {
		cy := 0.5 * (minY + maxY)
		half := 0.5 * (maxX - minX) / canvasAspect
		minY, maxY = cy-half, cy+half
	}
	return minX, maxX, minY, maxY
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		}
	case TickMsg:
		if m.running && m.err == nil {
			m.step()
		}
		m.draw()
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// step advances the flat state one Euler push and writes it back into
// the bodies, exactly the loop an external solver runs.
func (m *Model) step() {
	vel, err := motion.ListVelocity(m.bodies, m.motions, m.t)
	if err != nil {
		m.err = err
		return
	}
	for j := range m.state {
		m.state[j] += m.dt * vel[j]
	}
	m.t += m.dt
	if _, err := motion.UpdateBodies(m.bodies, m.state, m.motions); err != nil {
		m.err = err
		return
	}

	for _, b := range m.bodies {
		m.trail = append(m.trail, [2]float64{b.Cent.X, b.Cent.Y})
	}
	if len(m.trail) > trailCapacity {
		m.trail = m.trail[len(m.trail)-trailCapacity:]
	}
}

func (m *Model) draw() {
	m.canvas.Clear()
	for _, p := range m.trail {
		m.viewport.Mark(p[0], p[1])
	}
	for _, b := range m.bodies {
		m.viewport.DrawClosedCurve(b.X, b.Y)
	}
}

func (m Model) View() string {
	var sb strings.Builder

	status := statusRunning.Render("running")
	if !m.running {
		status = statusPaused.Render("paused")
	}
	sb.WriteString(headerStyle.Render(fmt.Sprintf("bodykin live: %s", m.name)))
	sb.WriteString("\n")
	sb.WriteString(canvasStyle.Render(m.canvas.String()))
	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render("t") + valueStyle.Render(fmt.Sprintf("%8.3f", m.t)))
	sb.WriteString("  " + status)
	if m.err != nil {
		sb.WriteString("\n" + helpStyle.Render("error: "+m.err.Error()))
	}
	for i, b := range m.bodies {
		sb.WriteString(fmt.Sprintf("\n%s%s",
			labelStyle.Render(fmt.Sprintf("body %d", i)),
			valueStyle.Render(fmt.Sprintf("cent=(%7.3f, %7.3f)  alpha=%7.3f", b.Cent.X, b.Cent.Y, b.Alpha))))
	}
	sb.WriteString("\n" + helpStyle.Render("space pause/resume · q quit"))
	return sb.String()
}

// Run starts the live view for a scenario and blocks until quit.
func Run(cfg *config.Config) error {
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
