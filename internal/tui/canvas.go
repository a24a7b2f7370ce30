package tui

import (
	"math"

	"github.com/san-kum/hsatom/internal/mesh"
)

type canvas struct {
	w, h  int
	cells [][]rune
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, cells: make([][]rune, h)}
	for i := range c.cells {
		c.cells[i] = make([]rune, w)
	}
	c.clear()
	return c
}

func (c *canvas) clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = ' '
		}
	}
}

func (c *canvas) set(x, y int, r rune) {
	if x >= 0 && x < c.w && y >= 0 && y < c.h {
		c.cells[y][x] = r
	}
}

func (c *canvas) line(x1, y1, x2, y2 int, r rune) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		c.set(x1, y1, r)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func (c *canvas) rows() []string {
	out := make([]string, c.h)
	for i, row := range c.cells {
		out[i] = string(row)
	}
	return out
}

// plotCharge draws the effective nuclear charge -r·V/2 against mesh index:
// Z at the nucleus falling to the residual charge of the tail.
func (c *canvas) plotCharge(m *mesh.Mesh, v []float64, z int) {
	c.clear()
	if len(v) != m.Count() || m.Count() < 2 {
		return
	}
	for x := 0; x < c.w; x++ {
		c.set(x, c.h-1, '─')
	}
	top := float64(z)
	type point struct{ x, y int }
	pts := make([]point, 0, c.w)
	for x := 0; x < c.w; x++ {
		i := 1 + x*(m.Count()-2)/max(c.w-1, 1)
		q := -m.R(i) * v[i] / 2
		if math.IsNaN(q) || math.IsInf(q, 0) {
			continue
		}
		y := c.h - 2 - int(math.Round(q/top*float64(c.h-2)))
		pts = append(pts, point{x, min(max(y, 0), c.h-2)})
	}
	for k := 1; k < len(pts); k++ {
		c.line(pts[k-1].x, pts[k-1].y, pts[k].x, pts[k].y, '·')
	}
	for _, p := range pts {
		c.set(p.x, p.y, '•')
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
