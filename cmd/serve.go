package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/flowbridge/flowbridge/internal/integration"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the flow HTTP server",
	Long:  `Starts the HTTP server exposing the browser test page, the /invoke-flow endpoint and the /health endpoint.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("host") {
			cfg.Host = serveHost
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}

		logger, err := buildLogger()
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		defer logger.Sync()

		integ, err := integration.New(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			integ.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "flowbridge v%s starting on %s:%d\n", Version, cfg.Host, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Flow: %s (alias %s, region %s)\n", cfg.FlowID, cfg.FlowAliasID, cfg.Region)
		fmt.Fprintf(os.Stderr, "  Web interface: http://localhost:%d\n", cfg.Port)

		if err := integ.RunServer(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "0.0.0.0", "host to bind")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on")
	rootCmd.AddCommand(serveCmd)
}
