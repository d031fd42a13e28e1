package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/fragredirect/internal/log"
	"github.com/ziadkadry99/fragredirect/internal/server"
)

var (
	servePort     int
	serveDocsDir  string
	serveAllowAll bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the docs, the redirect endpoints and the browser shim",
	Long: `Starts the redirect service:

  GET /api/resolve?path=&fragment=   JSON redirect decision
  GET /r?path=&fragment=             302 to the new page
  GET /_static/js/fragredirect.js    browser shim for legacy pages
  GET /*                             files from docs_dir`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
		if cmd.Flags().Changed("docs") {
			cfg.DocsDir = serveDocsDir
		}
		if cmd.Flags().Changed("allow-all-origins") {
			cfg.AllowAllOrigins = serveAllowAll
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(server.Config{
			Port:           cfg.Port,
			DocsDir:        cfg.DocsDir,
			AllowAll:       cfg.AllowAllOrigins,
			RequestTimeout: cfg.RequestTimeout,
		}, log.WithComponent("server"))
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "port to listen on")
	serveCmd.Flags().StringVar(&serveDocsDir, "docs", "", "built docs directory to serve (empty: API only)")
	serveCmd.Flags().BoolVar(&serveAllowAll, "allow-all-origins", false, "allow CORS requests from any origin")
	rootCmd.AddCommand(serveCmd)
}
