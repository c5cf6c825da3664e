// Package serve handles the HTTP server command.
package serve

import (
	"fincoach/cmd/root"
	"fincoach/internal/advisor"
	"fincoach/internal/processor"
	"fincoach/internal/server"

	"github.com/spf13/cobra"
)

var (
	host string
	port int
)

// Cmd represents the serve command.
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Serve the processing and coaching API over HTTP:
document upload, sample data, and financial analyses.`,
	RunE: serveFunc,
}

func init() {
	Cmd.Flags().StringVar(&host, "host", "", "Listen address (overrides config)")
	Cmd.Flags().IntVar(&port, "port", 0, "Listen port (overrides config)")
}

func serveFunc(cmd *cobra.Command, args []string) error {
	if host != "" {
		root.Cfg.Server.Host = host
	}
	if port != 0 {
		root.Cfg.Server.Port = port
	}

	cat, err := root.NewCategorizer()
	if err != nil {
		return err
	}

	srv := server.New(root.Cfg, processor.New(cat, root.Log), advisor.New(root.Log), root.Log)
	return srv.Run()
}
