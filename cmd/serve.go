package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/naka-gawa/github-insights/internal/domain"
	"github.com/naka-gawa/github-insights/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis API for the dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("port") {
			cfg.Port, _ = cmd.Flags().GetInt("port")
		}
		if cmd.Flags().Changed("origin") {
			cfg.AllowedOrigin, _ = cmd.Flags().GetString("origin")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		// Without a token the server still starts; analysis requests report the configuration error.
		analyzer, err := newAnalyzer(cfg, logger)
		if err != nil && !errors.Is(err, domain.ErrMissingToken) {
			return err
		}
		var api server.Analyzer
		if analyzer != nil {
			api = analyzer
		} else {
			logger.Println("Warning: GITHUB_TOKEN is not set; analysis requests will fail.")
		}

		srv := server.NewServer(logger, cfg, server.NewHandler(logger, cfg, api))

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start()
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Stop(shutdownCtx)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on (overrides PORT)")
	serveCmd.Flags().String("origin", "", "Allowed CORS origin (overrides ALLOWED_ORIGIN)")
}
