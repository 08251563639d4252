package viz

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/dkoval/ringfall/internal/config"
	"github.com/dkoval/ringfall/internal/session"
)

const (
	width           = 80
	height          = 30
	historyCapacity = 600
)

type TickMsg time.Time

// LiveModel runs a session at the configured frame rate and draws each
// snapshot onto a braille canvas with a stats sidebar.
type LiveModel struct {
	sess      *session.Session
	opts      config.Options
	dt        float64
	canvas    *Canvas
	snap      session.Snapshot
	speedHist []float64
	running   bool
}

func NewLiveModel(opts config.Options, rng *rand.Rand) LiveModel {
	sess := session.New(opts, rng)
	m := LiveModel{
		sess:      sess,
		opts:      opts,
		dt:        1.0 / float64(opts.FrameRate),
		canvas:    NewCanvas(width, height),
		speedHist: make([]float64, 0, historyCapacity),
		running:   true,
	}
	m.snap = sess.Snapshot()
	return m
}

func (m LiveModel) tick() tea.Cmd {
	interval := time.Second / time.Duration(m.opts.FrameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m LiveModel) Init() tea.Cmd {
	return m.tick()
}

func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.sess.Reset()
			m.snap = m.sess.Snapshot()
			m.speedHist = m.speedHist[:0]
		case "t":
			CycleTheme()
		}
	case TickMsg:
		if m.running {
			m.snap = m.sess.Advance(m.dt)
			m.speedHist = append(m.speedHist, m.snap.Speed)
			if len(m.speedHist) > historyCapacity {
				m.speedHist = m.speedHist[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

// draw maps world coordinates onto the sub-pixel grid: rings first,
// then particles, the ball on top.
func (m *LiveModel) draw() {
	m.canvas.Clear()

	cw, ch := width*2, height*4
	cx, cy := cw/2, ch/2

	extent := m.opts.OuterRadius() + m.opts.BallRadius*4
	if extent <= 0 {
		extent = 1
	}
	scale := (float64(minInt(cw, ch))/2 - 2) / extent

	for _, arc := range m.snap.Rings {
		if !arc.Alive {
			continue
		}
		m.canvas.Ink = arc.Color
		m.canvas.DrawArc(cx, cy, arc.Radius*scale, arc.ArcStart, arc.ArcEnd)
	}

	for _, p := range m.snap.Particles {
		if p.Alpha < 0.15 {
			continue
		}
		m.canvas.Ink = p.Color
		m.canvas.Set(cx+int(p.Pos.X*scale), cy-int(p.Pos.Y*scale))
	}

	ball := m.snap.Ball
	m.canvas.Ink = ball.Color
	r := ball.Radius * scale
	if r < 1 {
		r = 1
	}
	m.canvas.DrawDisc(cx+int(ball.Pos.X*scale), cy-int(ball.Pos.Y*scale), r)

	m.canvas.Ink = ""
}

func (m LiveModel) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.Styled())

	// Resetting never survives to a snapshot; a run regenerates and
	// returns to Running within the same tick.
	phases := phaseStyle(CurrentTheme)
	status := phases["running"].Render("RUNNING")
	if !m.running {
		status = phases["paused"].Render("PAUSED")
	} else if m.snap.Phase == session.Complete {
		status = phases["complete"].Render("COMPLETE")
	}

	rotation := "counterclockwise"
	if m.snap.RotationDir < 0 {
		rotation = "clockwise"
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render("RINGFALL") + "\n")
	s.WriteString(status + "\n\n")

	if len(m.speedHist) > 1 {
		chart := asciigraph.Plot(m.speedHist,
			asciigraph.Height(4), asciigraph.Width(26), asciigraph.Caption("Speed"))
		s.WriteString(chart + "\n\n")
	}

	s.WriteString(labelStyle.Render("Clock") + valueStyle.Render(m.snap.Clock) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%.2f", m.snap.Speed)) + "\n")
	s.WriteString(labelStyle.Render("Restitution") + valueStyle.Render(fmt.Sprintf("%.2f", m.snap.Restitution)) + "\n")
	s.WriteString(labelStyle.Render("Rotation") + valueStyle.Render(rotation) + "\n")
	s.WriteString(labelStyle.Render("Rings") + valueStyle.Render(fmt.Sprintf("%d / %d", m.snap.AliveRings, len(m.snap.Rings))) + "\n")
	s.WriteString(labelStyle.Render("Bounces") + valueStyle.Render(fmt.Sprintf("%d", m.snap.Bounces)) + "\n")
	s.WriteString(labelStyle.Render("Escapes") + valueStyle.Render(fmt.Sprintf("%d", m.snap.Escapes)) + "\n")
	s.WriteString(labelStyle.Render("Resets") + valueStyle.Render(fmt.Sprintf("%d", m.snap.Resets)) + "\n")

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Restart\nT:Theme  Q:Quit"))

	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
