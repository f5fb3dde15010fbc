package selection

import (
	"errors"
	"sync"

	"selectkit/internal/eventbus"
)

// ErrStaleVersion is returned by ApplyIfVersion when another change landed first
var ErrStaleVersion = errors.New("selection version is stale")

// Listener receives the outcome of every effective action
type Listener func(Outcome)

// Controller owns the authoritative selection for one picker.
// Calls are serialized; the listener runs synchronously inside Apply.
type Controller struct {
	mu          sync.Mutex
	mode        Mode
	constraints Constraints
	current     Set
	version     uint64
	listener    Listener
	bus         eventbus.EventBus
	anchor      string // last toggled id, for range selection
}

// NewController creates a controller seeded with an initial selection.
// The seed is narrowed to at most one id in Single mode.
func NewController(mode Mode, c Constraints, initial ...string) *Controller {
	return &Controller{
		mode:        mode,
		constraints: c,
		current:     Narrow(NewSet(initial...), mode),
	}
}

// SetListener registers the single outcome listener
func (c *Controller) SetListener(l Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listener = l
}

// SetBus attaches an event bus that receives a SelectionChangedEvent per outcome
func (c *Controller) SetBus(bus eventbus.EventBus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bus = bus
}

// SetConstraints replaces the constraints used by later calls
func (c *Controller) SetConstraints(cons Constraints) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.constraints = cons
}

// Mode returns the controller's selection mode
func (c *Controller) Mode() Mode {
	return c.mode
}

// Constraints returns the current constraints
func (c *Controller) Constraints() Constraints {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.constraints
}

// Apply runs the engine against the current selection and stores the result
func (c *Controller) Apply(req Request) (Outcome, bool) {
	c.mu.Lock()
	out, ok := c.applyLocked(req)
	listener, bus, version := c.listener, c.bus, c.version
	c.mu.Unlock()

	if ok {
		c.notify(listener, bus, out, version)
	}
	return out, ok
}

// ApplyIfVersion applies req only if the selection is still at version
func (c *Controller) ApplyIfVersion(version uint64, req Request) (Outcome, bool, error) {
	c.mu.Lock()
	if c.version != version {
		c.mu.Unlock()
		return Outcome{}, false, ErrStaleVersion
	}
	out, ok := c.applyLocked(req)
	listener, bus, next := c.listener, c.bus, c.version
	c.mu.Unlock()

	if ok {
		c.notify(listener, bus, out, next)
	}
	return out, ok, nil
}

func (c *Controller) applyLocked(req Request) (Outcome, bool) {
	out, ok := Apply(c.current, c.mode, c.constraints, req)
	if !ok {
		return out, false
	}

	c.current = out.Selection
	c.version++
	if t, isToggle := req.(Toggle); isToggle {
		c.anchor = t.ID
	}
	if _, isClear := req.(Clear); isClear {
		c.anchor = ""
	}

	// hand out a copy so callers cannot mutate controller state
	out.Selection = out.Selection.Clone()
	return out, true
}

func (c *Controller) notify(l Listener, bus eventbus.EventBus, out Outcome, version uint64) {
	if l != nil {
		l(out)
	}
	if bus != nil {
		bus.Publish(eventbus.SelectionChangedEvent{
			Action:    string(out.Action),
			TargetIDs: out.TargetIDs,
			Selected:  out.Selection.Sorted(),
			Version:   version,
		})
	}
}

// SelectRange selects the ids between the last toggled id and target,
// using the display order given by ordered. Without an anchor it behaves
// like a Toggle of target.
func (c *Controller) SelectRange(ordered []string, target string) (Outcome, bool) {
	c.mu.Lock()
	var req Request = Toggle{ID: target}
	start, end := indexOf(ordered, c.anchor), indexOf(ordered, target)
	if start >= 0 && end >= 0 && c.mode == Multi {
		if start > end {
			start, end = end, start
		}
		ids := make([]string, 0, end-start+1)
		ids = append(ids, ordered[start:end+1]...)
		req = Select{IDs: ids}
	}
	out, ok := c.applyLocked(req)
	listener, bus, version := c.listener, c.bus, c.version
	c.mu.Unlock()

	if ok {
		c.notify(listener, bus, out, version)
	}
	return out, ok
}

func indexOf(ids []string, id string) int {
	if id == "" {
		return -1
	}
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

// Selection returns a copy of the current selection
func (c *Controller) Selection() Set {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current.Clone()
}

// IsSelected checks if an id is selected
func (c *Controller) IsSelected(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current.Has(id)
}

// Summary projects the current selection
func (c *Controller) Summary() Summary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Project(c.current, c.mode, c.constraints)
}

// Version increases by one per effective action
func (c *Controller) Version() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.version
}

// WithMode returns a fresh controller in the given mode, seeded with the
// current selection narrowed to fit it. Listener and bus carry over.
func (c *Controller) WithMode(mode Mode) *Controller {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := NewController(mode, c.constraints, c.current.Sorted()...)
	next.listener = c.listener
	next.bus = c.bus
	return next
}
