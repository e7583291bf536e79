package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/nutricalc/nutricalc/internal/adapters/inbound/httpapi"
	"github.com/spf13/cobra"
)

const defaultAddr = ":8080"

func newServeCmd(verbose *bool) *cobra.Command {
	var (
		addr      string
		configDir string
		envFile   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator over HTTP",
		Long: "Start an HTTP server exposing POST /api/calculate and the catalogs. " +
			"NUTRICALC_ADDR and NUTRICALC_CORS_ORIGINS are read from the environment or a .env file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env file is fine.
			_ = godotenv.Load(envFile)

			if addr == "" {
				addr = envOr("NUTRICALC_ADDR", defaultAddr)
			}
			origins := splitAndTrim(envOr("NUTRICALC_CORS_ORIGINS", "*"))

			logger := newLogger(cmd.ErrOrStderr(), *verbose)
			svc, err := newCalculateService(configDir, 0, logger)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              addr,
				Handler:           httpapi.NewRouter(svc, logger, origins),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("listening", "addr", addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("serving http: %w", err)
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default $NUTRICALC_ADDR or :8080)")
	cmd.Flags().StringVar(&configDir, "config-dir", ".", "Directory containing .nutricalc.yaml")
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "Environment file to load")

	return cmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
