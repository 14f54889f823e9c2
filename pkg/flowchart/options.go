package flowchart

import (
	"github.com/matzehuels/flowchart/pkg/errors"
	"github.com/matzehuels/flowchart/pkg/layout"
	"github.com/matzehuels/flowchart/pkg/wrap"
)

// Options configures a chart.
type Options struct {
	// Direction is the rank direction. Empty means [layout.DefaultDirection].
	Direction layout.Direction `json:"direction,omitempty" toml:"direction,omitempty"`

	// Wrap word-wraps element labels before layout. Nil leaves labels as declared.
	Wrap *wrap.Options `json:"wrap,omitempty" toml:"wrap,omitempty"`
}

// SetDefaults fills unset fields.
func (o *Options) SetDefaults() {
	if o.Direction == "" {
		o.Direction = layout.DefaultDirection
	}
}

// Validate checks the options after defaults have been applied.
func (o Options) Validate() error {
	if !o.Direction.Valid() {
		return errors.New(errors.ErrCodeInvalidDirection, "invalid direction %q", o.Direction)
	}
	if o.Wrap != nil && o.Wrap.Width < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "wrap width must not be negative")
	}
	return nil
}
