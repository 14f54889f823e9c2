package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/flowchart/internal/server"
)

// serveCommand creates the serve command for live chart previews.
func (c *CLI) serveCommand() *cobra.Command {
	cfg := server.Config{Addr: server.DefaultAddr, Dir: "."}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a directory of chart definitions as live SVG previews",
		Long: `Serve renders definitions from a directory on every request, so edits show
up on reload. Charts are available at /charts/{name}.svg, and simulated events
can be posted to /charts/{name}/nodes/{id}/events/{event}.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Engine = c.layoutEngine()
			cfg.Logger = c.Logger

			out := cmd.ErrOrStderr()
			printKeyValue(out, "Address", "http://"+cfg.Addr)
			printKeyValue(out, "Charts", cfg.Dir)
			return server.New(cfg).ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	cmd.Flags().StringVar(&cfg.Dir, "dir", cfg.Dir, "directory containing .json and .toml definitions")

	return cmd
}
