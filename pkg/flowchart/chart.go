package flowchart

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/flowchart/pkg/element"
	"github.com/matzehuels/flowchart/pkg/layout"
)

// Chart is one diagram instance. It owns the elements added through it for
// teardown, while element ids live in the shared registry.
//
// A Chart is safe for concurrent use, but renders onto the same host must be
// serialized by the caller.
type Chart struct {
	// Logger receives debug output about render passes.
	Logger *log.Logger

	registry *element.Registry
	engine   layout.Engine

	mu       sync.Mutex
	opts     Options
	elements []*element.Element
	rendered bool
}

// New creates a chart. A nil registry gets a private one. Invalid options
// are logged and replaced by defaults; use [Chart.Configure] to have them
// returned instead.
func New(registry *element.Registry, engine layout.Engine, opts Options) *Chart {
	if registry == nil {
		registry = element.NewRegistry()
	}
	c := &Chart{
		Logger:   log.Default(),
		registry: registry,
		engine:   engine,
	}
	if err := c.Configure(opts); err != nil {
		c.logger().Warn("invalid chart options, using defaults", "err", err)
		c.opts = Options{}
		c.opts.SetDefaults()
	}
	return c
}

// Configure replaces the chart options. Unset fields take their defaults.
func (c *Chart) Configure(opts Options) error {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	c.opts = opts
	c.mu.Unlock()
	return nil
}

// Options returns the effective options.
func (c *Chart) Options() Options {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.opts
}

// Registry returns the registry the chart's elements live in.
func (c *Chart) Registry() *element.Registry { return c.registry }

// AddElement creates an element, registers it and appends it to the chart.
// The returned handle can be used to add edges and listeners.
func (c *Chart) AddElement(id string, opts element.Options) (*element.Element, error) {
	el, err := c.registry.Create(id, opts)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.elements = append(c.elements, el)
	c.mu.Unlock()
	return el, nil
}

// Element returns the owned element with the given id.
func (c *Chart) Element(id string) (*element.Element, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, el := range c.elements {
		if el.ID() == id {
			return el, true
		}
	}
	return nil, false
}

// Elements returns the owned elements in insertion order.
func (c *Chart) Elements() []*element.Element {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*element.Element(nil), c.elements...)
}

// Destroy unregisters every owned element and empties the chart.
// Calling it again is a no-op.
func (c *Chart) Destroy() {
	c.mu.Lock()
	els := c.elements
	c.elements = nil
	c.mu.Unlock()

	for _, el := range els {
		el.Unregister()
	}
}

// Rendered reports whether at least one render has completed.
func (c *Chart) Rendered() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rendered
}
