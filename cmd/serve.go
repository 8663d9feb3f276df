package cmd

import (
	"log/slog"

	"github.com/Lumos-Labs-HQ/mockdata/internal/schema"
	"github.com/Lumos-Labs-HQ/mockdata/internal/server"
	"github.com/Lumos-Labs-HQ/mockdata/internal/types"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	serveAddr    string
	serveMaxRows int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generator over HTTP",
	Long: `
Start an HTTP server exposing the generator.

Endpoints:
  GET  /healthz
  GET  /metrics
  GET  /api/presets
  GET  /api/presets/{name}
  GET  /api/patterns
  GET  /api/types
  POST /api/generate
  POST /api/preview`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		addr := cfg.Server.Addr
		if serveAddr != "" {
			addr = serveAddr
		}
		maxRows := cfg.Server.MaxRows
		if cmd.Flags().Changed("max-rows") {
			maxRows = serveMaxRows
		}

		srv := server.New(server.Options{
			Addr:    addr,
			Version: Version,
			MaxRows: maxRows,
			Defaults: schema.Defaults{
				Rows:      cfg.Defaults.Rows,
				Format:    types.Format(cfg.Defaults.Format),
				TableName: cfg.Defaults.TableName,
			},
			Logger: slog.Default(),
		})

		color.Green("🚀 mockdata server starting on %s", addr)
		return srv.Start(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, :8080)")
	serveCmd.Flags().IntVar(&serveMaxRows, "max-rows", 0, "Largest row count a request may ask for")
}
