package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"honnef.co/go/interp"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Bezier):
			m.setKind(interp.Bezier)
		case key.Matches(msg, m.keys.Lagrange):
			m.setKind(interp.Lagrange)
		case key.Matches(msg, m.keys.Spline):
			m.setKind(interp.CubicSpline)
		case key.Matches(msg, m.keys.Cycle):
			m.nextKind()
		case key.Matches(msg, m.keys.More):
			m.setSegments(m.segments + segmentsStep)
			m.status = fmt.Sprintf("segments: %d", m.segments)
		case key.Matches(msg, m.keys.Fewer):
			m.setSegments(m.segments - segmentsStep)
			m.status = fmt.Sprintf("segments: %d", m.segments)
		case key.Matches(msg, m.keys.Clear):
			m.points.Clear()
			m.resetDragging()
			m.hoverIndex = -1
			m.recompute()
			m.status = "cleared"
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	pt, inside := m.canvasPoint(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if !inside {
			return
		}
		switch msg.Button {
		case tea.MouseButtonLeft:
			if msg.Alt && m.insertOnEdge(pt) {
				return
			}
			m.handlePrimaryPress(pt)
		case tea.MouseButtonRight:
			m.handleSecondaryPress(pt)
		}
	case tea.MouseActionMotion:
		if m.dragging {
			// Dragging continues outside of the canvas, clamped to its edge.
			if err := m.points.Update(m.dragIndex, pt); err != nil {
				m.resetDragging()
				m.errMsg = "error: " + err.Error()
				return
			}
			m.hoverIndex = m.dragIndex
			m.recompute()
			return
		}
		m.hoverIndex = -1
		if inside {
			m.hoverIndex = m.points.NearestIndex(pt, m.radius)
		}
	case tea.MouseActionRelease:
		if m.dragging {
			m.status = fmt.Sprintf("moved point %d", m.dragIndex+1)
		}
		m.resetDragging()
	}
}

// handlePrimaryPress starts dragging the point under the cursor, or adds a
// new point if there is none.
func (m *Model) handlePrimaryPress(pt interp.Point) {
	if i := m.points.NearestIndex(pt, m.radius); i != -1 {
		m.dragging = true
		m.dragIndex = i
		m.hoverIndex = i
		return
	}
	m.points.Add(pt)
	m.hoverIndex = m.points.Len() - 1
	m.status = fmt.Sprintf("added point %d", m.points.Len())
	m.recompute()
}

// insertOnEdge inserts pt into the control polygon edge under the cursor and
// starts dragging it. It reports false if there is no such edge.
func (m *Model) insertOnEdge(pt interp.Point) bool {
	i := m.points.NearestEdge(pt, m.radius)
	if i == -1 {
		return false
	}
	if err := m.points.Insert(i+1, pt); err != nil {
		m.errMsg = "error: " + err.Error()
		return true
	}
	m.dragging = true
	m.dragIndex = i + 1
	m.hoverIndex = i + 1
	m.status = fmt.Sprintf("inserted point %d", i+2)
	m.recompute()
	return true
}

// handleSecondaryPress removes the point under the cursor, or all points if
// there is none.
func (m *Model) handleSecondaryPress(pt interp.Point) {
	if i := m.points.NearestIndex(pt, m.radius); i != -1 {
		if err := m.points.RemoveAt(i); err != nil {
			m.errMsg = "error: " + err.Error()
			return
		}
		m.status = fmt.Sprintf("removed point %d", i+1)
	} else {
		m.points.Clear()
		m.status = "cleared"
	}
	m.resetDragging()
	m.hoverIndex = -1
	m.recompute()
}
