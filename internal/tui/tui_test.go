package tui

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/hsatom/internal/atom"
	"github.com/san-kum/hsatom/internal/element"
	"github.com/san-kum/hsatom/internal/mesh"
)

func coulomb(m *mesh.Mesh, z float64) []float64 {
	v := make([]float64, m.Count())
	v[0] = math.Inf(-1)
	for i := 1; i < m.Count(); i++ {
		v[i] = -2 * z / m.R(i)
	}
	return v
}

func TestPlotChargeFlatForBareNucleus(t *testing.T) {
	m := mesh.Must(3, mesh.Normal)
	c := newCanvas(40, 10)
	c.plotCharge(m, coulomb(m, 3), 3)

	rows := c.rows()
	if !strings.Contains(rows[0], "•") {
		t.Errorf("bare charge should sit on the top row: %q", rows[0])
	}
	for _, row := range rows[1 : len(rows)-1] {
		if strings.Contains(row, "•") {
			t.Errorf("unexpected point below the top row: %q", row)
		}
	}
	if utf8.RuneCountInString(rows[len(rows)-1]) != 40 || !strings.HasPrefix(rows[len(rows)-1], "─") {
		t.Errorf("missing axis: %q", rows[len(rows)-1])
	}
}

func TestSparkline(t *testing.T) {
	if sparkline(nil, 10) != "" {
		t.Error("expected empty sparkline")
	}
	s := sparkline([]float64{-4, -2, 0}, 3)
	if s != "▁▄█" {
		t.Errorf("got %q", s)
	}
}

func TestLiveRendererWritesFrame(t *testing.T) {
	m := mesh.Must(2, mesh.Abridged)
	var buf bytes.Buffer
	r := NewLiveRenderer("He", 2, m, 0, &buf)
	r.OnIteration(atom.Iteration{
		Number:    3,
		MaxDelta:  1.5e-3,
		Potential: coulomb(m, 2),
		Levels:    []atom.Level{{N: 1, L: 0, Occupancy: 2, Energy: -1.8}},
	})

	out := buf.String()
	for _, want := range []string{clearScreen, "He  iteration 3", "1.500e-03", "1s:-1.800000"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q", want)
		}
	}
}

func TestModelTracksIterations(t *testing.T) {
	el, _ := element.ByNumber(2)
	conf := element.MustParse("1s2")
	m := mesh.Must(2, mesh.Normal)
	canceled := false
	mdl := newModel(el, conf, atom.DefaultConfig(), m, func() { canceled = true })

	var next tea.Model = mdl
	for i, d := range []float64{1e-1, 1e-2, 1e-3} {
		next, _ = next.Update(iterationMsg{Number: i + 1, MaxDelta: d, Potential: coulomb(m, 2)})
	}
	got := next.(model)
	if got.last.Number != 3 || len(got.history) != 3 {
		t.Fatalf("expected 3 iterations tracked, got %d/%d", got.last.Number, len(got.history))
	}
	if math.Abs(got.history[2]+3) > 1e-12 {
		t.Errorf("history should hold log10 ΔV, got %v", got.history)
	}
	if view := got.View(); !strings.Contains(view, "3/200") || !strings.Contains(view, "solving") {
		t.Errorf("view missing progress:\n%s", view)
	}

	next, _ = next.Update(doneMsg{err: errors.New("boom")})
	if view := next.View(); !strings.Contains(view, "boom") {
		t.Errorf("view missing error:\n%s", view)
	}

	_, cmd := next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil || !canceled {
		t.Error("q should cancel the solve and quit")
	}
}
