// Package tui implements a terminal editor for control points. It maps mouse
// and keyboard input to a [interp.PointSet] and draws the curve of the
// selected strategy on a braille canvas.
//
// A left click adds a point, or starts dragging the point under the cursor.
// An alt+click on an edge of the control polygon inserts a point into it. A
// right click removes the point under the cursor, or all points if there is
// none.
//
// Canvas coordinates are micro-pixels: each terminal cell is two
// micro-pixels wide and four tall, with y growing downwards.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"honnef.co/go/interp"
)

const (
	DefaultSegments = 100
	DefaultRadius   = 10.0

	MinSegments  = 1
	MaxSegments  = 500
	segmentsStep = 10

	headerHeight = 1
	footerHeight = 3
)

// Config holds the editor's initial state.
type Config struct {
	Kind     interp.Kind
	Segments int
	// Radius is the distance in micro-pixels within which a click picks an
	// existing point.
	Radius float64
	Points []interp.Point
}

type Model struct {
	width  int
	height int

	keys keyMap
	help help.Model

	points   *interp.PointSet
	kind     interp.Kind
	strategy interp.Strategy
	segments int
	radius   float64

	// last successfully computed curve
	curve  []interp.Point
	errMsg string
	status string

	dragging   bool
	dragIndex  int
	hoverIndex int
}

// New returns an editor for cfg. Zero fields of cfg take default values.
func New(cfg Config) (Model, error) {
	if cfg.Kind == 0 {
		cfg.Kind = interp.Bezier
	}
	if cfg.Segments == 0 {
		cfg.Segments = DefaultSegments
	}
	if cfg.Radius == 0 {
		cfg.Radius = DefaultRadius
	}
	s, err := interp.NewStrategy(cfg.Kind)
	if err != nil {
		return Model{}, err
	}
	m := Model{
		keys:       newKeyMap(),
		help:       help.New(),
		points:     interp.NewPointSet(cfg.Points...),
		kind:       cfg.Kind,
		strategy:   s,
		segments:   min(max(cfg.Segments, MinSegments), MaxSegments),
		radius:     cfg.Radius,
		status:     "click to add points, drag to move, right-click to remove",
		dragIndex:  -1,
		hoverIndex: -1,
	}
	m.recompute()
	return m, nil
}

func (m Model) Init() tea.Cmd { return nil }

// setKind switches to the strategy for k.
func (m *Model) setKind(k interp.Kind) {
	s, err := interp.NewStrategy(k)
	if err != nil {
		m.errMsg = "error: " + err.Error()
		return
	}
	m.kind = k
	m.strategy = s
	m.recompute()
}

func (m *Model) nextKind() {
	kinds := interp.Kinds()
	for i, k := range kinds {
		if k == m.kind {
			m.setKind(kinds[(i+1)%len(kinds)])
			return
		}
	}
	m.setKind(kinds[0])
}

func (m *Model) setSegments(n int) {
	m.segments = min(max(n, MinSegments), MaxSegments)
	m.recompute()
}

// recompute samples the curve for the current points. On failure the last
// good curve is kept and the error is reported instead.
func (m *Model) recompute() {
	m.errMsg = ""
	if !m.points.HasEnoughPointsForCurve() {
		m.curve = nil
		return
	}
	curve, err := m.strategy.Calculate(m.points.Points(), m.segments)
	if err != nil {
		m.errMsg = "error: " + err.Error()
		return
	}
	m.curve = curve
}

func (m *Model) resetDragging() {
	m.dragging = false
	m.dragIndex = -1
}

// canvasSize returns the size of the canvas in cells.
func (m Model) canvasSize() (int, int) {
	return max(10, m.width), max(4, m.height-headerHeight-footerHeight)
}

// canvasPoint converts a terminal cell position to canvas coordinates,
// using the center of the cell. Positions outside the canvas are clamped to
// it and reported as not ok.
func (m Model) canvasPoint(x, y int) (interp.Point, bool) {
	w, h := m.canvasSize()
	cy := y - headerHeight
	ok := x >= 0 && x < w && cy >= 0 && cy < h
	x = min(max(x, 0), w-1)
	cy = min(max(cy, 0), h-1)
	return interp.Pt(float64(x*2+1), float64(cy*4+2)), ok
}
