package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type Canvas struct {
	Width, Height int
	Grid          [][]rune

	// Ink is the hex color applied by subsequent Set calls. Empty means
	// uncolored; the cell renders in the terminal default.
	Ink string

	colors [][]string
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		colors: make([][]string, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.colors[i] = make([]string, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

// Set sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4). The cell
// takes the current Ink; the last writer wins.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	subX := x % 2
	subY := y % 4

	c.Grid[row][col] |= rune(pixelMap[subY][subX])
	c.colors[row][col] = c.Ink
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
			c.colors[i][j] = ""
		}
	}
}

// DrawArc draws the portion of a circle between two angles, walking
// counterclockwise from start to end. Angles are in radians; cx, cy and
// r are in sub-pixel coordinates.
func (c *Canvas) DrawArc(cx, cy int, r float64, start, end float64) {
	sweep := end - start
	for sweep < 0 {
		sweep += 2 * math.Pi
	}

	// Step fine enough that adjacent samples land on neighboring
	// sub-pixels.
	steps := int(r*sweep) + 8
	for i := 0; i <= steps; i++ {
		a := start + sweep*float64(i)/float64(steps)
		x := cx + int(math.Round(r*math.Cos(a)))
		y := cy - int(math.Round(r*math.Sin(a)))
		c.Set(x, y)
	}
}

// DrawCircle draws a full circle outline.
func (c *Canvas) DrawCircle(cx, cy int, r float64) {
	c.DrawArc(cx, cy, r, 0, 2*math.Pi)
}

// DrawDisc fills a solid disc.
func (c *Canvas) DrawDisc(cx, cy int, r float64) {
	ri := int(math.Ceil(r))
	for dy := -ri; dy <= ri; dy++ {
		for dx := -ri; dx <= ri; dx++ {
			if float64(dx*dx+dy*dy) <= r*r {
				c.Set(cx+dx, cy+dy)
			}
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Styled renders the canvas with per-cell foreground colors. Runs of
// the same color share one style application to keep the output small.
func (c *Canvas) Styled() string {
	styles := make(map[string]lipgloss.Style)
	styleFor := func(hex string) lipgloss.Style {
		st, ok := styles[hex]
		if !ok {
			st = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
			styles[hex] = st
		}
		return st
	}

	var b strings.Builder
	for i, row := range c.Grid {
		j := 0
		for j < len(row) {
			hex := c.colors[i][j]
			k := j
			for k < len(row) && c.colors[i][k] == hex {
				k++
			}
			run := string(row[j:k])
			if hex == "" {
				b.WriteString(run)
			} else {
				b.WriteString(styleFor(hex).Render(run))
			}
			j = k
		}
		b.WriteString("\n")
	}
	return b.String()
}
