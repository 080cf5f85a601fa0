package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/gloss/internal/config"
	"github.com/jackzampolin/gloss/internal/server"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gloss server",
	Long: `Start the gloss HTTP server.

The server reads the glossary files in the home directory per request,
so extractions running alongside it show up without a restart.

The server provides:
  - /health           - Server health and glossary count
  - /api/glossaries   - Glossary files and their term counts
  - /api/terms        - Terms of one glossary (?glossary=name) or all
  - /api/terms/search - Term and definition search (?q=query)

Examples:
  gloss serve                  # Start on default port 8080
  gloss serve --port 3000      # Start on custom port
  gloss serve --host 0.0.0.0   # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		logger := newLogger()

		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfg := cm.Get()

		h, err := openHome()
		if err != nil {
			return err
		}

		if !cmd.Flags().Changed("host") {
			serveHost = cfg.Server.Host
		}
		if !cmd.Flags().Changed("port") {
			servePort = cfg.Server.Port
		}

		// Watch for config changes while serving. The listen address is
		// fixed for the life of the process.
		cm.OnChange(func(c *config.Config) {
			logger.Info("configuration reloaded",
				"layout", c.Extract.Layout, "backend", c.Extract.Backend)
		})
		cm.WatchConfig()

		srv, err := server.New(server.Config{
			Host:   serveHost,
			Port:   servePort,
			Home:   h,
			Logger: logger,
		})
		if err != nil {
			return err
		}

		// Start server (blocks until shutdown)
		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "Host to bind to")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")

	rootCmd.AddCommand(serveCmd)
}
