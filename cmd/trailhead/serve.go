package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fieldset/trailhead"
	"github.com/fieldset/trailhead/internal/logging"
	httpAdapter "github.com/fieldset/trailhead/pkg/adapters/http"
	redisAdapter "github.com/fieldset/trailhead/pkg/adapters/redis"
	"github.com/fieldset/trailhead/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve [form]",
	Short: "Start the HTTP API server",
	Long:  `Serves the form's branching operations as a JSON API over HTTP, with optional Redis-backed session storage.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")

		logger := logging.New(slog.LevelInfo)
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			logger = logging.New(slog.LevelDebug)
		}

		metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
		eng, err := newEngine(cmd, args, trailhead.WithMetrics(metrics))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		adapterOpts := []httpAdapter.Option{httpAdapter.WithLogger(logger)}
		if addr, _ := cmd.Flags().GetString("redis-addr"); addr != "" {
			password, _ := cmd.Flags().GetString("redis-password")
			db, _ := cmd.Flags().GetInt("redis-db")
			ttl, _ := cmd.Flags().GetDuration("session-ttl")

			store := redisAdapter.New(addr, password, db, redisAdapter.WithTTL(ttl))
			defer store.Close()
			adapterOpts = append(adapterOpts, httpAdapter.WithResponseStore(store))
			logger.Info("session storage enabled", "backend", "redis", "addr", addr)
		}

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: httpAdapter.NewHandler(eng, adapterOpts...),
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("starting server", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			logger.Error("server error", "error", err)
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("starting shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "error", err)
				if err := srv.Close(); err != nil {
					logger.Error("failed to kill server", "error", err)
				}
			}
			logger.Info("server stopped")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("redis-addr", "", "Redis address for session storage (empty keeps sessions in memory off)")
	serveCmd.Flags().String("redis-password", "", "Redis password")
	serveCmd.Flags().Int("redis-db", 0, "Redis database number")
	serveCmd.Flags().Duration("session-ttl", 0, "Session expiry (0 keeps sessions forever)")
}
