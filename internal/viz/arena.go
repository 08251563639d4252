package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoval/ringfall/internal/arena"
	"github.com/dkoval/ringfall/internal/geom"
)

// ArenaModel is the free-bounce scene: click anywhere inside the
// boundary to drop a ball. Run the program with mouse support enabled
// (tea.WithMouseCellMotion).
type ArenaModel struct {
	world   *arena.World
	canvas  *Canvas
	fps     int
	running bool
}

func NewArenaModel(world *arena.World, fps int) ArenaModel {
	return ArenaModel{
		world:   world,
		canvas:  NewCanvas(width, height),
		fps:     fps,
		running: true,
	}
}

func (m ArenaModel) tick() tea.Cmd {
	interval := time.Second / time.Duration(m.fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m ArenaModel) Init() tea.Cmd {
	return m.tick()
}

func (m ArenaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "c":
			m.world.Clear()
		case "t":
			CycleTheme()
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if at, ok := m.cellToWorld(msg.X, msg.Y); ok {
				m.world.Spawn(at)
			}
		}
	case TickMsg:
		if m.running {
			m.world.Step(1.0 / float64(m.fps))
		}
		return m, m.tick()
	}
	return m, nil
}

func (m ArenaModel) scale() (cx, cy int, s float64) {
	cw, ch := width*2, height*4
	cx, cy = cw/2, ch/2
	s = (float64(minInt(cw, ch))/2 - 2) / m.world.Radius
	return cx, cy, s
}

// cellToWorld maps a terminal cell under the cursor to world
// coordinates, accounting for the canvas padding. Clicks outside the
// boundary are ignored.
func (m ArenaModel) cellToWorld(col, row int) (geom.Vec2, bool) {
	px := (col-2)*2 + 1
	py := (row-1)*4 + 2

	cx, cy, s := m.scale()
	at := geom.Vec2{
		X: float64(px-cx) / s,
		Y: float64(cy-py) / s,
	}
	if at.Len() >= m.world.Radius*0.95 {
		return geom.Vec2{}, false
	}
	return at, true
}

func (m *ArenaModel) draw() {
	m.canvas.Clear()
	cx, cy, s := m.scale()

	m.canvas.Ink = string(CurrentTheme.Muted)
	m.canvas.DrawCircle(cx, cy, m.world.Radius*s)

	for _, b := range m.world.Balls() {
		m.canvas.Ink = b.Color
		r := b.Radius * s
		if r < 1 {
			r = 1
		}
		m.canvas.DrawDisc(cx+int(b.Pos.X*s), cy-int(b.Pos.Y*s), r)
	}
	m.canvas.Ink = ""
}

func (m ArenaModel) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.Styled())

	phases := phaseStyle(CurrentTheme)
	status := phases["running"].Render("RUNNING")
	if !m.running {
		status = phases["paused"].Render("PAUSED")
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render("ARENA") + "\n")
	s.WriteString(status + "\n\n")
	s.WriteString(labelStyle.Render("Balls") + valueStyle.Render(fmt.Sprintf("%d", m.world.Count())) + "\n")
	s.WriteString(helpStyle.Render("\n─────────────────────\nClick:Drop ball\nSP:Pause C:Clear\nT:Theme  Q:Quit"))

	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}
