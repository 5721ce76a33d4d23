package cli

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dav88dev/skillorbit/pkg/engine"
	"github.com/dav88dev/skillorbit/pkg/layout"
	"github.com/dav88dev/skillorbit/pkg/pipeline"
)

// Terminal cells are mapped to canvas pixels at a fixed ratio so the
// engine works in the same units as a batch render.
const (
	cellWidth   = 8.0
	cellHeight  = 16.0
	panelHeight = 7
	frameRate   = time.Second / 60
	maxFrameDT  = 0.1
)

// View styles
var (
	viewEdgeStyle      = lipgloss.NewStyle().Foreground(colorDim)
	viewEdgeHighlight  = lipgloss.NewStyle().Foreground(colorCyan)
	viewLabelStyle     = lipgloss.NewStyle().Foreground(colorGray)
	viewLabelHighlight = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	viewPanelStyle     = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)

// viewCommand creates the view command.
func (c *CLI) viewCommand() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Animate skills in the terminal with mouse hover",
		Long: `View runs the animation live in the terminal. Hover a skill with the mouse
to highlight its connections and show its details.

Keys: 1-5 pick a layout mode, m or tab cycles modes, q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			reg, err := pipeline.Load(ctx, pipeline.Options{Source: args[0]})
			if err != nil {
				return err
			}

			eng := engine.FromRegistry(reg, c.Config().EngineOptions()...)
			if cmd.Flags().Changed("mode") {
				if err := pipeline.ValidateMode(mode); err != nil {
					return err
				}
				eng.SetMode(mode)
			}

			p := tea.NewProgram(newViewModel(eng, args[0]),
				tea.WithAltScreen(),
				tea.WithMouseAllMotion(),
				tea.WithReportFocus(),
				tea.WithContext(ctx),
			)
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "", "initial layout mode: orbit, float, grid, wave, spiral")
	return cmd
}

// =============================================================================
// viewModel - Live engine host
// =============================================================================

// frameMsg drives one engine tick.
type frameMsg time.Time

func nextFrame() tea.Cmd {
	return tea.Tick(frameRate, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// viewModel hosts an engine inside a bubbletea program. It owns the frame
// loop and forwards terminal size, mouse and focus events.
type viewModel struct {
	eng    *engine.Engine
	source string

	width, height int // terminal cells
	last          time.Time
	fps           float64
}

func newViewModel(eng *engine.Engine, source string) viewModel {
	return viewModel{eng: eng, source: source}
}

func (m viewModel) Init() tea.Cmd {
	return nextFrame()
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "m", "tab":
			m.eng.SetMode(string(nextMode(m.eng.Mode())))
		case "1", "2", "3", "4", "5":
			m.eng.SetMode(string(layout.Modes()[key[0]-'1']))
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.eng.Resize(float64(m.width)*cellWidth, float64(m.canvasRows())*cellHeight)

	case tea.MouseMsg:
		if msg.Y >= m.canvasRows() {
			m.eng.PointerLeave()
			break
		}
		m.eng.PointerMove((float64(msg.X)+0.5)*cellWidth, (float64(msg.Y)+0.5)*cellHeight)

	case tea.BlurMsg:
		m.eng.PointerLeave()

	case frameMsg:
		now := time.Time(msg)
		dt := 1.0 / 60
		if !m.last.IsZero() {
			dt = math.Min(now.Sub(m.last).Seconds(), maxFrameDT)
			if dt > 0 {
				m.fps = 0.9*m.fps + 0.1/dt
			}
		}
		m.last = now
		m.eng.Tick(dt)
		return m, nextFrame()
	}
	return m, nil
}

func (m viewModel) canvasRows() int {
	return max(1, m.height-panelHeight)
}

// nextMode returns the mode after cur in [layout.Modes] order.
func nextMode(cur layout.Mode) layout.Mode {
	modes := layout.Modes()
	for i, mode := range modes {
		if mode == cur {
			return modes[(i+1)%len(modes)]
		}
	}
	return modes[0]
}

func (m viewModel) View() string {
	if m.width == 0 {
		return StyleDim.Render("starting...")
	}

	f := m.eng.Frame()
	var b strings.Builder
	b.WriteString(drawCanvas(f, m.width, m.canvasRows()))
	b.WriteString("\n")
	b.WriteString(m.panel(f))
	return b.String()
}

func (m viewModel) panel(f engine.Frame) string {
	status := fmt.Sprintf("%s  %s  t=%.1fs  %.0f fps",
		StyleTitle.Render(m.source),
		StyleHighlight.Render(string(f.Mode)),
		f.Elapsed, m.fps)
	help := StyleDim.Render("hover a skill · 1-5 mode · m next · q quit")

	if f.Detail == nil {
		return status + "\n" + help
	}

	d := f.Detail
	name := lipgloss.NewStyle().Bold(true).Foreground(nodeColor(d.Color)).Render(d.Name)
	lines := []string{
		name + StyleDim.Render("  "+d.Category),
		levelBar(d.Level, 20) + " " + StyleNumber.Render(fmt.Sprintf("%d", d.Level)),
	}
	if d.Description != "" {
		lines = append(lines, StyleValue.Render(d.Description))
	}
	if len(d.Connections) > 0 {
		names := make([]string, 0, len(d.Connections))
		for _, id := range d.Connections {
			if s, ok := m.eng.Skill(id); ok {
				names = append(names, s.Name)
			}
		}
		lines = append(lines, StyleDim.Render(iconArrow+" "+strings.Join(names, ", ")))
	}
	return status + "\n" + viewPanelStyle.Render(strings.Join(lines, "\n"))
}

func levelBar(level, width int) string {
	filled := level * width / 100
	return StyleHighlight.Render(strings.Repeat("█", filled)) + StyleDim.Render(strings.Repeat("░", width-filled))
}

func nodeColor(c string) lipgloss.Color {
	if c == "" {
		return colorCyan
	}
	return lipgloss.Color(c)
}

// =============================================================================
// Character Canvas
// =============================================================================

type cell struct {
	r      rune
	style  lipgloss.Style
	styled bool
}

type grid struct {
	w, h  int
	cells []cell
}

func newGrid(w, h int) *grid {
	g := &grid{w: w, h: h, cells: make([]cell, w*h)}
	for i := range g.cells {
		g.cells[i].r = ' '
	}
	return g
}

func (g *grid) in(x, y int) bool { return x >= 0 && y >= 0 && x < g.w && y < g.h }

func (g *grid) set(x, y int, r rune, style lipgloss.Style) {
	if g.in(x, y) {
		g.cells[y*g.w+x] = cell{r: r, style: style, styled: true}
	}
}

func (g *grid) empty(x, y int) bool {
	return g.in(x, y) && g.cells[y*g.w+x].r == ' '
}

// line draws a Bresenham segment. Unless over is set only empty cells
// are written.
func (g *grid) line(x0, y0, x1, y1 int, r rune, style lipgloss.Style, over bool) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	for {
		if over || g.empty(x0, y0) {
			g.set(x0, y0, r, style)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (g *grid) String() string {
	var b strings.Builder
	for y := 0; y < g.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, c := range g.cells[y*g.w : (y+1)*g.w] {
			if c.styled {
				b.WriteString(c.style.Render(string(c.r)))
			} else {
				b.WriteRune(c.r)
			}
		}
	}
	return b.String()
}

func toCell(x, y float64) (int, int) {
	return int(math.Floor(x / cellWidth)), int(math.Floor(y / cellHeight))
}

// drawCanvas rasterizes a frame: edges first, then labels, then nodes with
// the hovered node on top.
func drawCanvas(f engine.Frame, w, h int) string {
	g := newGrid(w, h)

	byID := make(map[int]engine.NodeState, len(f.Nodes))
	for _, n := range f.Nodes {
		byID[n.ID] = n
	}

	for _, e := range f.Edges {
		a, b := byID[e.From], byID[e.To]
		ax, ay := toCell(a.X, a.Y)
		bx, by := toCell(b.X, b.Y)
		if e.Highlighted {
			g.line(ax, ay, bx, by, '•', viewEdgeHighlight, true)
		} else {
			g.line(ax, ay, bx, by, '·', viewEdgeStyle, false)
		}
	}

	for _, n := range f.Nodes {
		x, y := toCell(n.X, n.Y)
		style := viewLabelStyle
		if n.Hovered || n.ConnectedToHovered {
			style = viewLabelHighlight
		}
		for i, r := range []rune(n.Name) {
			g.set(x+2+i, y, r, style)
		}
	}

	var hovered *engine.NodeState
	for i, n := range f.Nodes {
		if n.Hovered {
			hovered = &f.Nodes[i]
			continue
		}
		x, y := toCell(n.X, n.Y)
		glyph := '●'
		if n.ConnectedToHovered {
			glyph = '◉'
		}
		g.set(x, y, glyph, lipgloss.NewStyle().Foreground(nodeColor(n.Color)))
	}
	if hovered != nil {
		x, y := toCell(hovered.X, hovered.Y)
		g.set(x, y, '◎', lipgloss.NewStyle().Bold(true).Foreground(nodeColor(hovered.Color)))
	}

	return g.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
