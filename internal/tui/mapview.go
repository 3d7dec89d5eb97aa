package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tatianab/no-escape/internal/models"
	"github.com/tatianab/no-escape/internal/world"
)

// Each map cell is six columns wide and three rows tall. A room at (x, y)
// spans from (3y+1, 6x+2) to (3y+3, 6x+6), stretched by its width and height.
const (
	cellWidth  = 6
	cellHeight = 3
)

type paint int

const (
	paintPlain paint = iota
	paintCurrent
	paintItem
)

type cell struct {
	r     rune
	paint paint
	item  string
}

type canvas struct {
	width, height int
	cells         [][]cell
}

func newCanvas(width, height int) *canvas {
	cells := make([][]cell, height)
	for y := range cells {
		cells[y] = make([]cell, width)
		for x := range cells[y] {
			cells[y][x] = cell{r: ' '}
		}
	}
	return &canvas{width: width, height: height, cells: cells}
}

// set draws r at row y, column x. Anything off the canvas is dropped.
func (c *canvas) set(y, x int, r rune, p paint) {
	if y < 0 || y >= c.height || x < 0 || x >= c.width {
		return
	}
	c.cells[y][x] = cell{r: r, paint: p}
}

func (c *canvas) text(y, x int, s string, p paint) {
	for i, r := range []rune(s) {
		c.set(y, x+i, r, p)
	}
}

func (c *canvas) rect(top, left, bottom, right int, p paint) {
	for x := left + 1; x < right; x++ {
		c.set(top, x, '─', p)
		c.set(bottom, x, '─', p)
	}
	for y := top + 1; y < bottom; y++ {
		c.set(y, left, '│', p)
		c.set(y, right, '│', p)
	}
	c.set(top, left, '┌', p)
	c.set(top, right, '┐', p)
	c.set(bottom, left, '└', p)
	c.set(bottom, right, '┘', p)
}

func (c *canvas) style(cl cell) lipgloss.Style {
	switch cl.paint {
	case paintCurrent:
		return currentStyle
	case paintItem:
		return itemStyle(cl.item)
	default:
		return lipgloss.NewStyle()
	}
}

// String renders the canvas, styling runs of equally painted cells together.
func (c *canvas) String() string {
	lines := make([]string, c.height)
	for y, row := range c.cells {
		var b strings.Builder
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].paint == row[start].paint && row[x].item == row[start].item {
				continue
			}
			run := make([]rune, 0, x-start)
			for _, cl := range row[start:x] {
				run = append(run, cl.r)
			}
			if row[start].paint == paintPlain {
				b.WriteString(string(run))
			} else {
				b.WriteString(c.style(row[start]).Render(string(run)))
			}
			start = x
		}
		lines[y] = strings.TrimRight(b.String(), " ")
	}
	return strings.Join(lines, "\n")
}

// drawRoom draws the room's box, its exit stubs and a dot for its item.
func (c *canvas) drawRoom(room *models.Room, current bool) {
	layout := room.Layout
	w, h := layout.Size()
	x, y := layout.X, layout.Y

	top := y*cellHeight + 1
	left := x*cellWidth + 2
	bottom := y*cellHeight + 3 + cellHeight*(h-1)
	right := x*cellWidth + 6 + cellWidth*(w-1)

	p := paintPlain
	if current {
		p = paintCurrent
	}
	c.rect(top, left, bottom, right, p)

	place := layout.Placement
	for _, dir := range models.Directions {
		if _, ok := room.Exits[dir]; !ok {
			continue
		}
		switch dir {
		case models.North:
			c.text(top, x*cellWidth+4+place[dir], "╨", p)
		case models.South:
			c.text(bottom, x*cellWidth+4+place[dir], "╥", p)
		case models.East:
			c.text(y*cellHeight+2+place[dir], right, "╞═", p)
		case models.West:
			c.text(y*cellHeight+2+place[dir], x*cellWidth+1, "═╡", p)
		}
	}

	if room.HasItem() {
		dy, dx := y*cellHeight+2, x*cellWidth+4
		if dy >= 0 && dy < c.height && dx >= 0 && dx < c.width {
			c.cells[dy][dx] = cell{r: '●', paint: paintItem, item: room.Item}
		}
	}
}

// renderMap draws every discovered room, the current one last so that it
// sits on top of shared walls.
func renderMap(m *world.Map, discovered []string) string {
	c := newCanvas(MapWidth-4, Height-2)
	for _, name := range discovered {
		if name == m.CurrentName() {
			continue
		}
		if room, ok := m.Room(name); ok {
			c.drawRoom(room, false)
		}
	}
	if current := m.Current(); !current.Layout.Hidden {
		c.drawRoom(current, true)
	}
	return c.String()
}
