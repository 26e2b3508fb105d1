package gielis

import (
	"log/slog"
	"sync"
)

// GestureKind is the state of the pointer gesture state machine.
type GestureKind int

const (
	Idle GestureKind = iota
	DraggingShape
	PanningViewport
)

func (k GestureKind) String() string {
	switch k {
	case Idle:
		return "Idle"
	case DraggingShape:
		return "DraggingShape"
	case PanningViewport:
		return "PanningViewport"
	}
	return "GestureKind(?)"
}

// Button identifies a pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonAuxiliary
	ButtonSecondary
)

// PointerEvent is a pointer position in screen space plus the button that
// changed.
type PointerEvent struct {
	X, Y   float64
	Button Button
}

func (ev PointerEvent) point() Point { return Point{X: ev.X, Y: ev.Y} }

// GestureEvent is delivered to OnGesture observers when a gesture starts or
// ends.
type GestureEvent struct {
	Kind    GestureKind
	ShapeID string // set for DraggingShape
	Started bool   // false when the gesture ended
}

// gesture is the state captured at pointer-down. Moves are computed from it
// rather than incrementally, so rounding never accumulates.
type gesture struct {
	kind    GestureKind
	shapeID string
	origin  Point   // screen position at pointer-down
	start   Point   // shape position or pan at pointer-down
	zoom    float64 // zoom at pointer-down
}

type gestureObserver struct {
	id uint32
	fn func(GestureEvent)
}

// Controller owns the viewport and turns pointer input into either dragging
// one shape or panning the whole scene.
//
// A pointer-down on a shape is consumed by the shape: the viewport never
// starts panning from the same event. Move and up events are only handled
// while a gesture is active; the gesture is the subscription and ends on
// pointer-up or Cancel.
type Controller struct {
	mu   sync.Mutex
	reg  *Registry
	opts controllerOptions
	vp   Viewport
	g    *gesture

	observers []gestureObserver
	nextObsID uint32
}

// NewController creates a controller for reg with zoom 1 and zero pan.
func NewController(reg *Registry, opts ...ControllerOption) *Controller {
	o := defaultControllerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Controller{
		reg:  reg,
		opts: o,
		vp: Viewport{
			Zoom:   clampZoom(1, o.minZoom, o.maxZoom),
			Width:  o.width,
			Height: o.height,
		},
	}
}

// Viewport returns the current viewport.
func (c *Controller) Viewport() Viewport {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.vp
}

// State returns the current gesture state and, while dragging, the shape id.
func (c *Controller) State() (GestureKind, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.g == nil {
		return Idle, ""
	}
	return c.g.kind, c.g.shapeID
}

// PointerDown starts a gesture. target is the id of the shape under the
// pointer, or "" for empty canvas; a target that is not a live shape counts
// as canvas. Non-primary buttons and pointer-downs during a gesture are
// ignored. It returns the state entered (Idle when ignored).
func (c *Controller) PointerDown(ev PointerEvent, target string) GestureKind {
	if ev.Button != ButtonPrimary {
		return Idle
	}

	c.mu.Lock()
	if c.g != nil {
		c.mu.Unlock()
		return Idle
	}
	g := &gesture{kind: PanningViewport, origin: ev.point(), start: c.vp.Pan, zoom: c.vp.Zoom}
	if target != "" {
		if s, ok := c.reg.Shape(target); ok {
			c.reg.SetActive(target)
			g.kind = DraggingShape
			g.shapeID = target
			g.start = s.Position
		}
	}
	c.g = g
	c.mu.Unlock()

	Logger().Debug("gielis: gesture started", slog.String("kind", g.kind.String()), slog.String("id", g.shapeID))
	c.notify(GestureEvent{Kind: g.kind, ShapeID: g.shapeID, Started: true})
	return g.kind
}

// PointerDownAt hit-tests the topmost shape under the pointer and starts the
// matching gesture.
func (c *Controller) PointerDownAt(ev PointerEvent) GestureKind {
	if ev.Button != ButtonPrimary {
		return Idle
	}
	id, _ := c.HitTest(ev.point())
	return c.PointerDown(ev, id)
}

// PointerMove updates the dragged shape or the pan. The displacement since
// pointer-down is divided by the zoom captured at pointer-down, so motion
// tracks the pointer 1:1 on screen. Without an active gesture it does nothing.
func (c *Controller) PointerMove(ev PointerEvent) {
	c.mu.Lock()
	g := c.g
	if g == nil {
		c.mu.Unlock()
		return
	}
	delta := ev.point().Sub(g.origin).Div(g.zoom)
	next := g.start.Add(delta)

	switch g.kind {
	case DraggingShape:
		if !c.reg.SetPosition(g.shapeID, next.X, next.Y) {
			// The shape went away mid-drag.
			c.g = nil
			c.mu.Unlock()
			c.ended(g)
			return
		}
	case PanningViewport:
		c.vp.Pan = next
	}
	c.mu.Unlock()
}

// PointerUp ends the active gesture.
func (c *Controller) PointerUp(PointerEvent) {
	c.Cancel()
}

// Cancel ends the active gesture without further movement.
func (c *Controller) Cancel() {
	c.mu.Lock()
	g := c.g
	c.g = nil
	c.mu.Unlock()

	if g != nil {
		c.ended(g)
	}
}

func (c *Controller) ended(g *gesture) {
	Logger().Debug("gielis: gesture ended", slog.String("kind", g.kind.String()), slog.String("id", g.shapeID))
	c.notify(GestureEvent{Kind: g.kind, ShapeID: g.shapeID, Started: false})
}

// HitTest returns the id of the topmost shape whose outline contains the
// screen point.
func (c *Controller) HitTest(screen Point) (string, bool) {
	world := c.Viewport().ScreenToWorld(screen)
	shapes := c.reg.Shapes()
	for i := len(shapes) - 1; i >= 0; i-- {
		s := shapes[i]
		if s.Outline.Contains(world.Sub(s.Position)) {
			return s.ID, true
		}
	}
	return "", false
}

// ZoomBy changes the zoom by delta, clamped to the zoom limits, and returns
// the new zoom.
func (c *Controller) ZoomBy(delta float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if isFinite(delta) {
		c.vp.Zoom = clampZoom(c.vp.Zoom+delta, c.opts.minZoom, c.opts.maxZoom)
	}
	return c.vp.Zoom
}

// SetZoom sets the zoom, clamped to the zoom limits, and returns it.
func (c *Controller) SetZoom(z float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if isFinite(z) {
		c.vp.Zoom = clampZoom(z, c.opts.minZoom, c.opts.maxZoom)
	}
	return c.vp.Zoom
}

// ZoomIn increases the zoom by one step.
func (c *Controller) ZoomIn() float64 { return c.ZoomBy(c.opts.zoomStep) }

// ZoomOut decreases the zoom by one step.
func (c *Controller) ZoomOut() float64 { return c.ZoomBy(-c.opts.zoomStep) }

// PanBy moves the pan by (dx, dy).
func (c *Controller) PanBy(dx, dy float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vp.Pan = Point{X: c.vp.Pan.X + dx, Y: c.vp.Pan.Y + dy}
}

// PanStep moves the pan by one step in direction d.
func (c *Controller) PanStep(d Direction) {
	v := d.vector().Mul(c.opts.panStep)
	c.PanBy(v.X, v.Y)
}

// SetViewportSize records the screen size.
func (c *Controller) SetViewportSize(width, height float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vp.Width, c.vp.Height = width, height
}

// ShapeMatrix returns the full world-to-screen transform of a shape:
// viewport outermost, shape position innermost.
func (c *Controller) ShapeMatrix(id string) (Matrix, bool) {
	s, ok := c.reg.Shape(id)
	if !ok {
		return Matrix{}, false
	}
	return c.Viewport().ShapeMatrix(s.Position), true
}

// CallbackHandle allows removing a registered gesture observer.
type CallbackHandle struct {
	id uint32
	c  *Controller
}

// Remove unregisters the observer so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.c == nil {
		return
	}
	h.c.mu.Lock()
	defer h.c.mu.Unlock()
	for i := range h.c.observers {
		if h.c.observers[i].id == h.id {
			h.c.observers = append(h.c.observers[:i], h.c.observers[i+1:]...)
			return
		}
	}
}

// OnGesture registers fn to be called when a gesture starts or ends.
// fn runs without the controller lock held and may call back into it.
func (c *Controller) OnGesture(fn func(GestureEvent)) CallbackHandle {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextObsID++
	c.observers = append(c.observers, gestureObserver{id: c.nextObsID, fn: fn})
	return CallbackHandle{id: c.nextObsID, c: c}
}

func (c *Controller) notify(ev GestureEvent) {
	c.mu.Lock()
	obs := make([]gestureObserver, len(c.observers))
	copy(obs, c.observers)
	c.mu.Unlock()

	for _, o := range obs {
		o.fn(ev)
	}
}
