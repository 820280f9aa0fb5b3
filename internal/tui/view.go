package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"honnef.co/go/interp"
)

// Coordinates beyond this magnitude aren't drawn. Lagrange polynomials in
// particular can overshoot far outside of the canvas.
const maxMicro = 1 << 15

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	w, h := m.canvasSize()

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render(" curvedit "),
		dimStyle.Render("─ "),
		m.renderTabs(),
	)
	header = lipgloss.NewStyle().Width(w).MaxHeight(headerHeight).Render(header)

	canvas := lipgloss.NewStyle().Width(w).Height(h).Render(m.renderCanvas(w, h))

	var status string
	if m.errMsg != "" {
		status = errorStyle.Render(" " + m.errMsg + " ")
	} else {
		status = dimStyle.Render(" " + m.status + " ")
	}
	info := dimStyle.Render(" " + strings.Join(m.debugInfo(), "  "))
	line := lipgloss.NewStyle().Width(w).MaxHeight(1)
	footer := lipgloss.JoinVertical(lipgloss.Left,
		line.Render(status),
		line.Render(info),
		m.help.View(m.keys),
	)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, canvas, footer)
	return appStyle.Width(w).Height(m.height).Render(ui)
}

func (m Model) renderTabs() string {
	var tabs []string
	for _, k := range interp.Kinds() {
		style := tabStyle
		if k == m.kind {
			style = activeTab
		}
		tabs = append(tabs, style.Render(k.Title()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) debugInfo() []string {
	info := []string{
		fmt.Sprintf("points: %d", m.points.Len()),
		fmt.Sprintf("method: %s", m.kind.Title()),
		fmt.Sprintf("segments: %d", m.segments),
	}
	if m.dragging {
		info = append(info, fmt.Sprintf("dragging point: %d", m.dragIndex+1))
	}
	return info
}

type cellKind int

const (
	cellEmpty cellKind = iota
	cellPolygon
	cellCurve
	cellPoint
	cellActivePoint
)

// renderCanvas draws control points, the curve and, for Bézier curves, the
// control polygon, on a canvas of w×h cells.
func (m Model) renderCanvas(w, h int) string {
	poly := newBrailleBuf(w, h)
	if m.kind == interp.Bezier {
		drawPolyline(poly, m.points.Points())
	}
	curve := newBrailleBuf(w, h)
	drawPolyline(curve, m.curve)

	kinds := make([][]cellKind, h)
	runes := make([][]rune, h)
	for y := range h {
		kinds[y] = make([]cellKind, w)
		runes[y] = make([]rune, w)
		for x := range w {
			if r, ok := curve.cell(x, y); ok {
				kinds[y][x], runes[y][x] = cellCurve, r
			} else if r, ok := poly.cell(x, y); ok {
				kinds[y][x], runes[y][x] = cellPolygon, r
			} else {
				runes[y][x] = ' '
			}
		}
	}
	for i, pt := range m.points.All() {
		cx, cy, ok := toCell(pt, w, h)
		if !ok {
			continue
		}
		if i == m.hoverIndex || (m.dragging && i == m.dragIndex) {
			kinds[cy][cx], runes[cy][cx] = cellActivePoint, '◉'
		} else if kinds[cy][cx] != cellActivePoint {
			kinds[cy][cx], runes[cy][cx] = cellPoint, '●'
		}
	}

	lines := make([]string, h)
	for y := range h {
		lines[y] = renderRow(kinds[y], runes[y])
	}
	return strings.Join(lines, "\n")
}

// renderRow styles runs of equal cell kinds together.
func renderRow(kinds []cellKind, runes []rune) string {
	var sb strings.Builder
	start := 0
	for x := 1; x <= len(kinds); x++ {
		if x < len(kinds) && kinds[x] == kinds[start] {
			continue
		}
		sb.WriteString(styleFor(kinds[start]).Render(string(runes[start:x])))
		start = x
	}
	return sb.String()
}

func styleFor(k cellKind) lipgloss.Style {
	switch k {
	case cellPolygon:
		return polygonStyle
	case cellCurve:
		return curveStyle
	case cellPoint:
		return pointStyle
	case cellActivePoint:
		return activeStyle
	default:
		return lipgloss.NewStyle()
	}
}

// drawPolyline connects consecutive drawable points. Points that can't be
// drawn break the line.
func drawPolyline(b *brailleBuf, pts []interp.Point) {
	var prevX, prevY int
	havePrev := false
	for _, pt := range pts {
		mx, my, ok := toMicro(pt)
		if !ok {
			havePrev = false
			continue
		}
		if havePrev {
			b.drawLine(prevX, prevY, mx, my)
		} else {
			b.setPixel(mx, my)
		}
		prevX, prevY, havePrev = mx, my, true
	}
}

func toMicro(pt interp.Point) (int, int, bool) {
	if !pt.IsFinite() || math.Abs(pt.X) > maxMicro || math.Abs(pt.Y) > maxMicro {
		return 0, 0, false
	}
	pt = pt.Round()
	return int(pt.X), int(pt.Y), true
}

func toCell(pt interp.Point, w, h int) (int, int, bool) {
	mx, my, ok := toMicro(pt)
	if !ok || mx < 0 || my < 0 {
		return 0, 0, false
	}
	cx, cy := mx/2, my/4
	if cx >= w || cy >= h {
		return 0, 0, false
	}
	return cx, cy, true
}
