package gielis

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Shape is a snapshot of one 2D shape entity.
//
// Outline and Path always correspond to Params: the registry rebuilds them in
// the same critical section that stores new params. Outline.Vertices is shared
// with the registry and must be treated as read-only.
type Shape struct {
	ID       string
	Params   Params
	Outline  Outline
	Path     string
	Color    string // "#rrggbb"
	Position Point  // world-space translation
}

type shapeEntry struct {
	id       string
	params   Params
	outline  Outline
	path     string
	color    string
	position Point
}

func (e *shapeEntry) snapshot() Shape {
	return Shape{
		ID:       e.id,
		Params:   e.params,
		Outline:  e.outline,
		Path:     e.path,
		Color:    e.color,
		Position: e.position,
	}
}

// Registry is the authoritative collection of 2D shapes.
//
// The active shape is held by id only and re-validated on every use, so a
// removed shape simply reads as "no active shape".
//
// Registry is safe for concurrent use; mutations are atomic with respect to
// readers.
type Registry struct {
	mu     sync.RWMutex
	shapes []*shapeEntry // render order
	active string

	clock  func() time.Time
	rng    *rand.Rand
	lastID int64
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	o := defaultRegistryOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry{clock: o.clock, rng: o.rng}
}

func (r *Registry) find(id string) *shapeEntry {
	for _, e := range r.shapes {
		if e.id == id {
			return e
		}
	}
	return nil
}

// nextID returns a time-based id that is strictly greater than the previous
// one and not used by any shape.
func (r *Registry) nextID() string {
	n := r.clock().UnixMilli()
	if n <= r.lastID {
		n = r.lastID + 1
	}
	for r.find(strconv.FormatInt(n, 10)) != nil {
		n++
	}
	r.lastID = n
	return strconv.FormatInt(n, 10)
}

// AddShape creates a shape with default parameters, a fresh id and a random
// colour, placed at the active shape's position plus offset (or at offset
// when there is no active shape). The new shape becomes active.
func (r *Registry) AddShape(offset Point) Shape {
	params := DefaultParams()
	outline, _ := BuildOutline(params)

	r.mu.Lock()
	defer r.mu.Unlock()

	pos := offset
	if a := r.find(r.active); a != nil {
		pos = a.position.Add(offset)
	}
	e := &shapeEntry{
		id:       r.nextID(),
		params:   params,
		outline:  outline,
		path:     outline.Path().String(),
		color:    RandomHue(r.rng),
		position: pos,
	}
	r.shapes = append(r.shapes, e)
	r.active = e.id

	Logger().Debug("gielis: shape added", slog.String("id", e.id), slog.Float64("x", pos.X), slog.Float64("y", pos.Y))
	return e.snapshot()
}

// RemoveShape deletes the shape with the given id. Removing the active shape
// clears the active designation. Unknown ids are ignored.
func (r *Registry) RemoveShape(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := slices.IndexFunc(r.shapes, func(e *shapeEntry) bool { return e.id == id })
	if i < 0 {
		return
	}
	r.shapes = slices.Delete(r.shapes, i, i+1)
	if r.active == id {
		r.active = ""
	}
	Logger().Debug("gielis: shape removed", slog.String("id", id))
}

// UpdateParam sets one parameter of the shape with the given id and rebuilds
// its geometry. Only that shape is recomputed. Unknown ids are ignored.
//
// Invalid values are rejected with an error matching ErrInvalidParameter and
// leave the previous params and geometry in place; unknown keys return
// ErrUnknownParam.
func (r *Registry) UpdateParam(id, key string, value float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.find(id)
	if e == nil {
		return nil
	}
	return r.updateLocked(e, key, value)
}

// UpdateActiveParam routes a parameter edit to the active shape. Without a
// live active shape it does nothing.
func (r *Registry) UpdateActiveParam(key string, value float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.find(r.active)
	if e == nil {
		return nil
	}
	return r.updateLocked(e, key, value)
}

func (r *Registry) updateLocked(e *shapeEntry, key string, value float64) error {
	next, err := e.params.With(key, value)
	if err != nil {
		Logger().Warn("gielis: rejected parameter",
			slog.String("id", e.id), slog.String("key", key), slog.Float64("value", value), slog.Any("err", err))
		return err
	}
	outline, err := BuildOutline(next)
	if err != nil {
		return err
	}
	if serr := outline.Err(); serr != nil {
		Logger().Warn("gielis: partial outline", slog.String("id", e.id), slog.Any("err", serr))
	}
	e.params = next
	e.outline = outline
	e.path = outline.Path().String()

	Logger().Debug("gielis: geometry rebuilt",
		slog.String("id", e.id), slog.String("key", key), slog.Int("vertices", len(outline.Vertices)))
	return nil
}

// RenameShape replaces the id of a shape. The new id is trimmed and
// NFC-normalised; an empty result returns ErrInvalidID and a collision with
// another shape returns ErrIDConflict. The active designation follows the
// rename. Unknown ids are ignored.
func (r *Registry) RenameShape(id, newID string) error {
	newID = norm.NFC.String(strings.TrimSpace(newID))
	if newID == "" {
		return ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.find(id)
	if e == nil || newID == id {
		return nil
	}
	if r.find(newID) != nil {
		return fmt.Errorf("%w: %q", ErrIDConflict, newID)
	}
	e.id = newID
	if r.active == id {
		r.active = newID
	}
	Logger().Debug("gielis: shape renamed", slog.String("from", id), slog.String("to", newID))
	return nil
}

// SetPosition overwrites a shape's world position. It reports whether the
// shape exists.
func (r *Registry) SetPosition(id string, x, y float64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.find(id)
	if e == nil {
		return false
	}
	e.position = Point{X: x, Y: y}
	return true
}

// SetColor sets a shape's colour from a hex string. Unknown ids are ignored.
func (r *Registry) SetColor(id, hex string) error {
	c, err := NormalizeHex(hex)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if e := r.find(id); e != nil {
		e.color = c
	}
	return nil
}

// SetActive marks the shape with the given id active. It reports whether the
// shape exists; unknown ids leave the active designation unchanged.
func (r *Registry) SetActive(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.find(id) == nil {
		return false
	}
	r.active = id
	return true
}

// ClearActive removes the active designation.
func (r *Registry) ClearActive() {
	r.mu.Lock()
	r.active = ""
	r.mu.Unlock()
}

// ActiveID returns the raw active id, which may refer to a removed shape.
// Use Active to resolve it.
func (r *Registry) ActiveID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// Active resolves the active shape. A stale or empty reference reports false.
func (r *Registry) Active() (Shape, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if e := r.find(r.active); e != nil {
		return e.snapshot(), true
	}
	return Shape{}, false
}

// Shape returns a snapshot of the shape with the given id.
func (r *Registry) Shape(id string) (Shape, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if e := r.find(id); e != nil {
		return e.snapshot(), true
	}
	return Shape{}, false
}

// Shapes returns snapshots of all shapes in render order.
func (r *Registry) Shapes() []Shape {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Shape, len(r.shapes))
	for i, e := range r.shapes {
		out[i] = e.snapshot()
	}
	return out
}

// Len returns the number of shapes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.shapes)
}

// ListParams returns the parameters of a shape as ordered key/value pairs.
func (r *Registry) ListParams(id string) ([]ParamValue, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e := r.find(id)
	if e == nil {
		return nil, false
	}
	return e.params.List(), true
}
