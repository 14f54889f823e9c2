package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/flowchart/pkg/layout"
	"github.com/matzehuels/flowchart/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string  // output file path; derived from the input when empty
	format    string  // output format: "svg", "pdf", "png"
	scale     float64 // PNG scale factor
	overrides chartOverrides
}

// renderCommand creates the render command for writing a chart to a file.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: render.FormatSVG, scale: render.DefaultScale}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a chart definition to SVG, PDF or PNG",
		Long: `Render lays out a chart definition (.json or .toml) with Graphviz, applies
element styles, and writes the result. PDF and PNG output requires rsvg-convert.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			if opts.overrides.direction != "" {
				if _, err := layout.ParseDirection(opts.overrides.direction); err != nil {
					return err
				}
			}
			path, err := c.runRender(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			if path != "-" {
				printFile(cmd.ErrOrStderr(), path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with the format's extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg, pdf, png")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().StringVarP(&opts.overrides.direction, "direction", "d", "", "override the layout direction: TB, BT, LR, RL")
	cmd.Flags().IntVar(&opts.overrides.wrap, "wrap", 0, "word-wrap labels at this width")

	return cmd
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{render.FormatSVG: true, render.FormatPDF: true, render.FormatPNG: true}

func validateFormat(f string) error {
	if !validFormats[f] {
		return fmt.Errorf("invalid format: %s (must be 'svg', 'pdf', or 'png')", f)
	}
	return nil
}

// outputPath derives the output file from the input when none is given.
func outputPath(output, input, format string) string {
	if output != "" {
		return output
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}

// runRender renders input and writes it in the requested format. It returns
// the path written.
func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) (string, error) {
	def, chart, err := c.loadChart(input, opts.overrides, nil)
	if err != nil {
		return "", err
	}
	defer chart.Destroy()

	ctx = withChart(ctx, def.Name, c.Logger)
	prog := newProgress(ctx, c.Logger)
	prog.step("loaded", "elements", len(def.Elements))

	svg, err := chart.Render(ctx, newHost())
	if err != nil {
		return "", fmt.Errorf("render %s: %w", input, err)
	}
	prog.step("rendered", "width", svg.Attr("width"), "height", svg.Attr("height"))
	data, err := svg.Bytes()
	if err != nil {
		return "", err
	}

	if opts.format != render.FormatSVG {
		data, err = c.convert(ctx, data, opts)
		if err != nil {
			return "", err
		}
		prog.step("converted", "format", opts.format, "bytes", len(data))
	}

	path := outputPath(opts.output, input, opts.format)
	if err := writeFile(path, data); err != nil {
		return "", err
	}
	prog.done(fmt.Sprintf("Rendered %s", filepath.Base(path)))
	return path, nil
}

// convert exports svg to a raster or PDF format behind a spinner.
func (c *CLI) convert(ctx context.Context, svg []byte, opts renderOpts) ([]byte, error) {
	format := strings.ToUpper(opts.format)
	sp := newSpinner(ctx, c.errWriter(), "Converting to "+format)
	sp.Start()

	convert := c.convertFunc
	if convert == nil {
		convert = render.Convert
	}
	data, err := convert(svg, opts.format, opts.scale)
	if sp.Cancelled() {
		sp.Stop()
		return nil, ctx.Err()
	}
	if err != nil {
		sp.StopWithError(format + " conversion failed")
		return nil, err
	}
	sp.StopWithSuccess("Converted to " + format)
	return data, nil
}

// writeFile writes data to path, or to stdout when path is "-".
func writeFile(path string, data []byte) error {
	var w io.Writer = os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	_, err := w.Write(data)
	return err
}
