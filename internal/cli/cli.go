// Package cli implements the flowchart command-line interface.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/flowchart/pkg/buildinfo"
	"github.com/matzehuels/flowchart/pkg/element"
	"github.com/matzehuels/flowchart/pkg/flowchart"
	fio "github.com/matzehuels/flowchart/pkg/io"
	"github.com/matzehuels/flowchart/pkg/layout"
	"github.com/matzehuels/flowchart/pkg/observability"
	"github.com/matzehuels/flowchart/pkg/render/nodelink"
	"github.com/matzehuels/flowchart/pkg/surface"
	"github.com/matzehuels/flowchart/pkg/wrap"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "flowchart"

	// hostID is the id of the element charts are rendered under.
	hostID = "chart"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// errOut receives spinners and status lines; nil means os.Stderr.
	errOut io.Writer

	// engine overrides the Graphviz engine; tests swap in a fake.
	engine layout.Engine

	// convertFunc overrides render.Convert; tests swap in a fake.
	convertFunc func(svg []byte, format string, scale float64) ([]byte, error)
}

// New creates a new CLI instance logging to w, which also receives
// spinners and status lines.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), errOut: w}
}

func (c *CLI) errWriter() io.Writer {
	if c.errOut == nil {
		return os.Stderr
	}
	return c.errOut
}

// SetLogLevel updates the logger's level. At debug level the render and
// HTTP hooks report to the logger as well.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		hooks := &logHooks{logger: c.Logger}
		observability.SetRenderHooks(hooks)
		observability.SetHTTPHooks(hooks)
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Flowchart renders declarative charts through Graphviz",
		Long:         `Flowchart lays out chart definitions with Graphviz, applies per-element styles and event bindings, and renders them to SVG, PDF or PNG, serves live previews, or inspects them interactively.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Chart Loading
// =============================================================================

// layoutEngine returns the engine charts are rendered with.
func (c *CLI) layoutEngine() layout.Engine {
	if c.engine != nil {
		return c.engine
	}
	return nodelink.NewEngine(c.Logger)
}

// chartOverrides are command-line overrides of definition settings.
type chartOverrides struct {
	direction string
	wrap      int // 0 keeps the definition's policy
}

func (o chartOverrides) apply(def *fio.Definition) {
	if o.direction != "" {
		def.Direction = o.direction
	}
	if o.wrap > 0 {
		var w wrap.Options
		if def.Wrap != nil {
			w = *def.Wrap
		}
		w.Width = o.wrap
		def.Wrap = &w
	}
}

// loadChart imports a definition file and builds it into a fresh registry.
func (c *CLI) loadChart(path string, overrides chartOverrides, onAction fio.ActionFunc) (*fio.Definition, *flowchart.Chart, error) {
	def, err := fio.Import(path)
	if err != nil {
		return nil, nil, err
	}
	overrides.apply(def)

	chart, err := def.Build(element.NewRegistry(), c.layoutEngine(), onAction)
	if err != nil {
		return nil, nil, err
	}
	chart.Logger = c.Logger
	return def, chart, nil
}

// newHost creates a detached element to render charts under.
func newHost() *surface.Element {
	return surface.NewDocument("div").Root().SetAttr("id", hostID)
}
