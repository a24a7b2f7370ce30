package tui

import (
	"context"
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/hsatom/internal/atom"
	"github.com/san-kum/hsatom/internal/element"
	"github.com/san-kum/hsatom/internal/mesh"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

type iterationMsg atom.Iteration

type doneMsg struct {
	atom *atom.Atom
	err  error
}

type model struct {
	element element.Element
	conf    element.Configuration
	cfg     atom.Config
	mesh    *mesh.Mesh
	cancel  context.CancelFunc

	last    atom.Iteration
	history []float64
	done    bool
	result  *atom.Atom
	err     error

	width  int
	height int
}

func newModel(el element.Element, conf element.Configuration, cfg atom.Config, m *mesh.Mesh, cancel context.CancelFunc) model {
	return model{
		element: el,
		conf:    conf,
		cfg:     cfg,
		mesh:    m,
		cancel:  cancel,
		history: make([]float64, 0, cfg.MaxIterations),
		width:   80,
		height:  24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case iterationMsg:
		m.last = atom.Iteration(msg)
		if msg.MaxDelta > 0 {
			m.history = append(m.history, math.Log10(msg.MaxDelta))
		}
	case doneMsg:
		m.done = true
		m.result = msg.atom
		m.err = msg.err
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	statusIcon := green.Render("●")
	statusText := green.Render("solving")
	switch {
	case m.err != nil:
		statusIcon, statusText = red.Render("✕"), red.Render(m.err.Error())
	case m.done && m.result.Status().Converged:
		statusIcon, statusText = cyan.Render("◆"), cyan.Render("converged")
	case m.done:
		statusIcon, statusText = yellow.Render("○"), yellow.Render("iteration cap")
	}
	b.WriteString(fmt.Sprintf("\n   %s %s %s  %s\n",
		statusIcon, white.Render(m.element.Symbol), dim.Render(m.conf.String()), statusText))

	progress := float64(m.last.Number) / float64(max(m.cfg.MaxIterations, 1))
	barWidth := 36
	filled := min(int(progress*float64(barWidth)), barWidth)
	bar := cyan.Render(strings.Repeat("━", filled)) + dimmer.Render(strings.Repeat("─", barWidth-filled))
	b.WriteString(fmt.Sprintf("   %s %s  %s\n\n", bar,
		dim.Render(fmt.Sprintf("%d/%d", m.last.Number, m.cfg.MaxIterations)),
		magenta.Render(fmt.Sprintf("ΔV %.2e", m.last.MaxDelta))))

	cw := max(m.width-6, 40)
	ch := max(m.height-14, 8)
	c := newCanvas(cw, ch)
	if m.last.Potential != nil {
		c.plotCharge(m.mesh, m.last.Potential, m.element.Z)
	}
	for _, row := range c.rows() {
		b.WriteString("   " + dim.Render(row) + "\n")
	}
	b.WriteString("   " + dimmer.Render(fmt.Sprintf("-r·V/2 from %g to the tail", float64(m.element.Z))) + "\n\n")

	for i, lv := range m.last.Levels {
		if i >= 8 {
			b.WriteString("   " + dim.Render("…") + "\n")
			break
		}
		label := element.Subshell{N: lv.N, L: lv.L}.Label()
		b.WriteString(fmt.Sprintf("   %s %s %s\n",
			white.Render(fmt.Sprintf("%-4s", label)),
			dim.Render(fmt.Sprintf("%5.2f", lv.Occupancy)),
			cyan.Render(fmt.Sprintf("%14.6f Ry", lv.Energy))))
	}

	if len(m.history) > 1 {
		b.WriteString(fmt.Sprintf("\n   %s %s\n", dim.Render("log ΔV"), cyan.Render(sparkline(m.history, 32))))
	}

	b.WriteString("\n" + dim.Render("   q quit") + "\n")
	return b.String()
}

func sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	rang := maxVal - minVal
	if rang == 0 {
		rang = 1
	}
	step := len(data) / width
	if step < 1 {
		step = 1
	}
	var sb strings.Builder
	for i := 0; i < width && i*step < len(data); i++ {
		idx := int((data[i*step] - minVal) / rang * 7)
		sb.WriteRune(chars[min(max(idx, 0), 7)])
	}
	return sb.String()
}

// Run solves el in conf while showing the iterations full screen. Quitting
// early cancels the solve and returns atom.ErrCanceled.
func Run(ctx context.Context, solver *atom.Solver, el element.Element, conf element.Configuration, cfg atom.Config) (*atom.Atom, error) {
	m, err := mesh.New(el.Z, cfg.Mesh)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newModel(el, conf, cfg, m, cancel), tea.WithAltScreen())
	solver.AddObserver(atom.ObserverFunc(func(it atom.Iteration) {
		p.Send(iterationMsg(it))
	}))
	go func() {
		a, err := solver.Solve(ctx, el, conf, cfg)
		p.Send(doneMsg{atom: a, err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	fm := final.(model)
	if !fm.done {
		return nil, atom.ErrCanceled
	}
	return fm.result, fm.err
}
