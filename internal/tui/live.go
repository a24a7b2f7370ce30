package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/san-kum/hsatom/internal/atom"
	"github.com/san-kum/hsatom/internal/mesh"
)

const (
	width       = 70
	height      = 16
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer redraws a plain-terminal frame per iteration. It is an
// atom.Observer for runs without an interactive terminal.
type LiveRenderer struct {
	label     string
	z         int
	mesh      *mesh.Mesh
	frameRate int
	lastFrame time.Time
	canvas    *canvas
	out       io.Writer
}

// NewLiveRenderer draws at most frameRate frames per second; 0 draws every
// iteration.
func NewLiveRenderer(label string, z int, m *mesh.Mesh, frameRate int, out io.Writer) *LiveRenderer {
	return &LiveRenderer{
		label:     label,
		z:         z,
		mesh:      m,
		frameRate: frameRate,
		canvas:    newCanvas(width, height),
		out:       out,
	}
}

func (r *LiveRenderer) OnIteration(it atom.Iteration) {
	if r.frameRate > 0 {
		if time.Since(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
			return
		}
		r.lastFrame = time.Now()
	}
	r.canvas.plotCharge(r.mesh, it.Potential, r.z)
	r.render(it)
}

func (r *LiveRenderer) render(it atom.Iteration) {
	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  %s  iteration %d  ΔV=%.3e\n", r.label, it.Number, it.MaxDelta))
	b.WriteString("  " + strings.Repeat("-", width) + "\n")
	for _, row := range r.canvas.rows() {
		b.WriteString("  " + row + "\n")
	}
	b.WriteString("  " + strings.Repeat("-", width) + "\n")

	levels := "  "
	for i, lv := range it.Levels {
		if i >= 6 {
			levels += "…"
			break
		}
		levels += lv.String() + " "
	}
	b.WriteString(levels + "\n")

	fmt.Fprint(r.out, b.String())
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.out, showCursor) }
