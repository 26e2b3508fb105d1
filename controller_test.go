package gielis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T) (*Registry, *Controller, Shape) {
	t.Helper()
	reg := newTestRegistry()
	s := reg.AddShape(Point{})
	return reg, NewController(reg, WithViewportSize(800, 600)), s
}

func primary(x, y float64) PointerEvent {
	return PointerEvent{X: x, Y: y, Button: ButtonPrimary}
}

func TestDragShape(t *testing.T) {
	reg, c, s := newTestController(t)

	require.Equal(t, DraggingShape, c.PointerDownAt(primary(400, 300)))
	kind, id := c.State()
	assert.Equal(t, DraggingShape, kind)
	assert.Equal(t, s.ID, id)

	c.PointerMove(primary(420, 310))
	got, _ := reg.Shape(s.ID)
	assert.Equal(t, Point{X: 20, Y: 10}, got.Position)

	// Moves are measured from pointer-down, not the previous move.
	c.PointerMove(primary(430, 300))
	got, _ = reg.Shape(s.ID)
	assert.Equal(t, Point{X: 30, Y: 0}, got.Position)

	c.PointerUp(primary(430, 300))
	kind, _ = c.State()
	assert.Equal(t, Idle, kind)
	assert.Equal(t, Point{}, c.Viewport().Pan, "dragging a shape never pans")

	// Moves after pointer-up are ignored.
	c.PointerMove(primary(500, 500))
	got, _ = reg.Shape(s.ID)
	assert.Equal(t, Point{X: 30, Y: 0}, got.Position)
}

func TestDragShapeScaledByZoom(t *testing.T) {
	reg, c, s := newTestController(t)
	c.SetZoom(2)

	require.Equal(t, DraggingShape, c.PointerDown(primary(400, 300), s.ID))
	c.PointerMove(primary(440, 280))
	got, _ := reg.Shape(s.ID)
	assert.Equal(t, Point{X: 20, Y: -10}, got.Position)

	// Zoom changed mid-gesture does not affect the ongoing drag.
	c.SetZoom(4)
	c.PointerMove(primary(440, 280))
	got, _ = reg.Shape(s.ID)
	assert.Equal(t, Point{X: 20, Y: -10}, got.Position)
}

func TestDragActivatesShape(t *testing.T) {
	reg, c, s := newTestController(t)
	other := reg.AddShape(Point{X: 1000})
	require.Equal(t, other.ID, reg.ActiveID())

	c.PointerDown(primary(400, 300), s.ID)
	assert.Equal(t, s.ID, reg.ActiveID())
}

func TestPanViewport(t *testing.T) {
	reg, c, s := newTestController(t)

	require.Equal(t, PanningViewport, c.PointerDownAt(primary(10, 10)))
	c.PointerMove(primary(30, 20))
	assert.Equal(t, Point{X: 20, Y: 10}, c.Viewport().Pan)

	c.PointerUp(primary(30, 20))
	got, _ := reg.Shape(s.ID)
	assert.Equal(t, Point{}, got.Position, "panning never moves shapes")

	// Pan is divided by zoom too.
	c.SetZoom(2)
	c.PointerDown(primary(10, 10), "")
	c.PointerMove(primary(50, 10))
	assert.Equal(t, Point{X: 40, Y: 10}, c.Viewport().Pan)
	c.Cancel()
}

func TestPointerDownIgnored(t *testing.T) {
	_, c, s := newTestController(t)

	assert.Equal(t, Idle, c.PointerDownAt(PointerEvent{X: 400, Y: 300, Button: ButtonSecondary}))
	assert.Equal(t, Idle, c.PointerDown(PointerEvent{X: 10, Y: 10, Button: ButtonAuxiliary}, ""))
	kind, _ := c.State()
	assert.Equal(t, Idle, kind)

	// A second pointer-down during a gesture does not restart it.
	c.PointerDown(primary(400, 300), s.ID)
	assert.Equal(t, Idle, c.PointerDown(primary(10, 10), ""))
	kind, _ = c.State()
	assert.Equal(t, DraggingShape, kind)
}

func TestPointerDownOnStaleTargetPans(t *testing.T) {
	_, c, _ := newTestController(t)
	assert.Equal(t, PanningViewport, c.PointerDown(primary(400, 300), "gone"))
}

func TestZoomClamp(t *testing.T) {
	_, c, _ := newTestController(t)

	for i := 0; i < 200; i++ {
		c.ZoomIn()
	}
	assert.Equal(t, float64(MaxZoom), c.Viewport().Zoom)

	for i := 0; i < 200; i++ {
		c.ZoomOut()
	}
	assert.Equal(t, float64(MinZoom), c.Viewport().Zoom)

	assert.Equal(t, 10.0, c.SetZoom(50))
	assert.Equal(t, 0.1, c.SetZoom(-1))
	assert.Equal(t, 0.1, c.SetZoom(math.NaN()))

	limited := NewController(NewRegistry(), WithZoomLimits(0.5, 2), WithZoomStep(1))
	assert.Equal(t, 2.0, limited.ZoomIn())
	assert.Equal(t, 1.0, limited.ZoomOut())
	assert.Equal(t, 0.5, limited.ZoomOut())
}

func TestPanStepRoundTrip(t *testing.T) {
	_, c, _ := newTestController(t)

	c.PanStep(PanLeft)
	assert.Equal(t, Point{X: -10}, c.Viewport().Pan)
	c.PanStep(PanUp)
	assert.Equal(t, Point{X: -10, Y: -10}, c.Viewport().Pan)
	c.PanStep(PanRight)
	c.PanStep(PanDown)
	assert.Equal(t, Point{}, c.Viewport().Pan)

	custom := NewController(NewRegistry(), WithPanStep(25))
	custom.PanStep(PanDown)
	assert.Equal(t, Point{Y: 25}, custom.Viewport().Pan)
}

func TestHitTestTopmost(t *testing.T) {
	reg, c, a := newTestController(t)
	b := reg.AddShape(Point{X: 20})

	id, ok := c.HitTest(Point{X: 410, Y: 300})
	require.True(t, ok)
	assert.Equal(t, b.ID, id, "later shapes render on top")

	// Only a covers world (-90, 0).
	id, ok = c.HitTest(Point{X: 310, Y: 300})
	require.True(t, ok)
	assert.Equal(t, a.ID, id)

	_, ok = c.HitTest(Point{X: 5, Y: 5})
	assert.False(t, ok)

	// Hit testing follows pan and zoom.
	c.PanBy(300, 0)
	_, ok = c.HitTest(Point{X: 400, Y: 300})
	assert.False(t, ok)
	id, ok = c.HitTest(Point{X: 610, Y: 300})
	require.True(t, ok)
	assert.Equal(t, a.ID, id)
}

func TestShapeMatrix(t *testing.T) {
	reg, c, s := newTestController(t)
	require.True(t, reg.SetPosition(s.ID, 10, 20))
	c.SetZoom(2)
	c.PanBy(5, -5)

	m, ok := c.ShapeMatrix(s.ID)
	require.True(t, ok)
	// origin -> 400 + 2*(5+10), 300 + 2*(-5+20)
	assert.Equal(t, Point{X: 430, Y: 330}, m.TransformPoint(Point{}))

	_, ok = c.ShapeMatrix("missing")
	assert.False(t, ok)

	c.SetViewportSize(100, 100)
	assert.Equal(t, 100.0, c.Viewport().Width)
}

func TestGestureObservers(t *testing.T) {
	reg, c, s := newTestController(t)

	var events []GestureEvent
	h := c.OnGesture(func(ev GestureEvent) { events = append(events, ev) })

	c.PointerDown(primary(400, 300), s.ID)
	c.PointerUp(primary(400, 300))
	require.Len(t, events, 2)
	assert.Equal(t, GestureEvent{Kind: DraggingShape, ShapeID: s.ID, Started: true}, events[0])
	assert.Equal(t, GestureEvent{Kind: DraggingShape, ShapeID: s.ID, Started: false}, events[1])

	// Removing the shape mid-drag ends the gesture on the next move.
	c.PointerDown(primary(400, 300), s.ID)
	reg.RemoveShape(s.ID)
	c.PointerMove(primary(410, 300))
	kind, _ := c.State()
	assert.Equal(t, Idle, kind)
	require.Len(t, events, 4)
	assert.False(t, events[3].Started)

	h.Remove()
	c.PointerDown(primary(10, 10), "")
	c.Cancel()
	assert.Len(t, events, 4)

	CallbackHandle{}.Remove()
}

func TestPanByRoundTrip(t *testing.T) {
	_, c, _ := newTestController(t)
	c.PanBy(3.7, -12.25)
	assert.Equal(t, Point{X: 3.7, Y: -12.25}, c.Viewport().Pan)
	c.PanBy(-3.7, 12.25)
	assert.Equal(t, Point{}, c.Viewport().Pan)
}

func TestZoomByIgnoresNonFinite(t *testing.T) {
	_, c, _ := newTestController(t)
	assert.Equal(t, 1.0, c.ZoomBy(math.NaN()))
	assert.Equal(t, 1.0, c.ZoomBy(math.Inf(1)))
}
