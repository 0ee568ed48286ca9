package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/postboard/internal/server"
	"github.com/ziadkadry99/postboard/internal/telemetry"
	"github.com/ziadkadry99/postboard/internal/views"
)

var (
	servePort     int
	serveAllowAll bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web front end",
	Long:  `Starts the HTTP server with the post list at / and post pages at /post/{id}, plus a JSON mirror under /api, /healthz and /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}
		if cmd.Flags().Changed("allow-all-origins") {
			cfg.Server.AllowAllOrigins = serveAllowAll
		}

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		shutdownTracing, err := telemetry.Init(ctx, telemetry.Config{
			Endpoint:    cfg.Telemetry.OTLPEndpoint,
			ServiceName: cfg.Telemetry.ServiceName,
			SampleRatio: cfg.Telemetry.SampleRatio,
			Version:     Version,
		})
		if err != nil {
			return fmt.Errorf("starting tracing: %w", err)
		}
		defer func() {
			c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdownTracing(c)
		}()

		v, err := views.New(newFetcherFromConfig(cfg), views.Options{
			Title:        cfg.UI.Title,
			ImageBaseURL: cfg.UI.ImageBaseURL,
		})
		if err != nil {
			return fmt.Errorf("loading templates: %w", err)
		}

		srv := server.New(server.Config{
			Port:        cfg.Server.Port,
			AllowAll:    cfg.Server.AllowAllOrigins,
			ServiceName: cfg.Telemetry.ServiceName,
		}, v)

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(c)
		}()

		fmt.Fprintf(os.Stderr, "postboard server v%s starting on port %d\n", Version, cfg.Server.Port)
		fmt.Fprintf(os.Stderr, "  Upstream: %s\n", cfg.API.BaseURL)
		if cfg.Telemetry.OTLPEndpoint != "" {
			fmt.Fprintf(os.Stderr, "  Traces: %s\n", cfg.Telemetry.OTLPEndpoint)
		}

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on (overrides server.port)")
	serveCmd.Flags().BoolVar(&serveAllowAll, "allow-all-origins", false, "allow all CORS origins (dev mode)")
	rootCmd.AddCommand(serveCmd)
}
