// Package element holds the diagram nodes a chart is built from.
//
// An [Element] carries an id, a label, style overrides, outgoing edges and
// event listeners. Elements live in a [Registry] keyed by id so that a render
// pass can map the opaque node ids handed back by a layout engine to the
// element that declared them.
//
// Edges reference their target by id only. Whether the target exists is not
// checked until a chart is rendered.
package element

import (
	"sort"
	"sync"

	"github.com/matzehuels/flowchart/pkg/errors"
	"github.com/matzehuels/flowchart/pkg/style"
	"github.com/matzehuels/flowchart/pkg/surface"
)

// Options configures an element.
type Options struct {
	Label string      `json:"label,omitempty" toml:"label,omitempty"`
	Shape style.Shape `json:"shape,omitempty" toml:"shape,omitempty"`
	Text  style.Text  `json:"text,omitempty" toml:"text,omitempty"`
}

// EdgeOptions configures an edge.
type EdgeOptions struct {
	Label string `json:"label,omitempty" toml:"label,omitempty"`
}

// Edge is an outgoing relation to the element with id Target.
type Edge struct {
	Target  string
	Options EdgeOptions
}

// ListenerFunc handles an event on the rendered node of element id.
type ListenerFunc func(id string, ev *surface.Event)

// Listener pairs an event name with its handler.
type Listener struct {
	Event string
	Fn    ListenerFunc
}

// Element is one diagram node.
type Element struct {
	id       string
	opts     Options
	registry *Registry

	mu        sync.Mutex
	edges     []Edge
	listeners []Listener
}

// ID returns the element's id.
func (e *Element) ID() string { return e.id }

// Options returns the options the element was created with.
func (e *Element) Options() Options { return e.opts }

// Label returns the display label: the configured label, or the id if none.
func (e *Element) Label() string {
	if e.opts.Label != "" {
		return e.opts.Label
	}
	return e.id
}

// AddEdge appends an outgoing edge to targetID and returns e for chaining.
func (e *Element) AddEdge(targetID string, opts EdgeOptions) *Element {
	e.mu.Lock()
	e.edges = append(e.edges, Edge{Target: targetID, Options: opts})
	e.mu.Unlock()
	return e
}

// AddListener appends a listener for event and returns e for chaining.
// Several listeners for the same event are all kept. A nil fn is ignored.
func (e *Element) AddListener(event string, fn ListenerFunc) *Element {
	if fn == nil {
		return e
	}
	e.mu.Lock()
	e.listeners = append(e.listeners, Listener{Event: event, Fn: fn})
	e.mu.Unlock()
	return e
}

// Edges returns a copy of the outgoing edges in declaration order.
func (e *Element) Edges() []Edge {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Edge(nil), e.edges...)
}

// Listeners returns a copy of the listeners in registration order.
func (e *Element) Listeners() []Listener {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Listener(nil), e.listeners...)
}

// Unregister removes e from its registry. Calling it again is a no-op, and it
// never removes a different element registered later under the same id.
// Edges elsewhere that point at e are left in place.
func (e *Element) Unregister() {
	if e.registry != nil {
		e.registry.remove(e)
	}
}

// Registry maps ids to live elements. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	elements map[string]*Element
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{elements: make(map[string]*Element)}
}

// Create constructs an element and registers it under id.
// It fails with [errors.ErrCodeDuplicateID] if id is already registered.
func (r *Registry) Create(id string, opts Options) (*Element, error) {
	if err := errors.ValidateElementID(id); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.elements[id]; ok {
		return nil, errors.New(errors.ErrCodeDuplicateID, "element %q is already registered", id)
	}
	e := &Element{id: id, opts: opts, registry: r}
	r.elements[id] = e
	return e, nil
}

// Get returns the element registered under id.
func (r *Registry) Get(id string) (*Element, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.elements[id]
	return e, ok
}

// Len returns the number of registered elements.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.elements)
}

// IDs returns the registered ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	ids := make([]string, 0, len(r.elements))
	for id := range r.elements {
		ids = append(ids, id)
	}
	r.mu.RUnlock()
	sort.Strings(ids)
	return ids
}

func (r *Registry) remove(e *Element) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cur, ok := r.elements[e.id]; ok && cur == e {
		delete(r.elements, e.id)
	}
}
