// Command seqanalyser-server provides a REST API over analysis sessions.
//
// Usage:
//
//	seqanalyser-server [options]
//
// Options:
//
//	--port      Port to listen on (default: 8080)
//	--host      Host to bind to (default: localhost)
//	--config    Settings file
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aria-lang/seqanalyser-go/internal/config"
)

func main() {
	if err := newServerCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newServerCmd() *cobra.Command {
	v := config.New()

	cmd := &cobra.Command{
		Use:          "seqanalyser-server",
		Short:        "Serve the sequence analyser API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(v, path)
			if err != nil {
				return err
			}
			return serve(cfg)
		},
	}

	cmd.Flags().StringP("config", "c", "", "settings file (yaml, json or toml)")
	cmd.Flags().Int("port", 8080, "Port to listen on")
	cmd.Flags().String("host", "localhost", "Host to bind to")
	cmd.Flags().String("log-level", "info", "log level: debug, info, warn, error")
	cmd.Flags().Bool("legacy-dispatch", false, "read every non-CSV upload as FASTA")
	cmd.Flags().Duration("session-ttl", 30*time.Minute, "drop sessions idle for longer than this (0 keeps them)")
	cmd.Flags().Int("max-sessions", 1000, "most sessions kept at once (0 means no limit)")
	v.BindPFlag("server.port", cmd.Flags().Lookup("port"))
	v.BindPFlag("server.host", cmd.Flags().Lookup("host"))
	v.BindPFlag("log.level", cmd.Flags().Lookup("log-level"))
	v.BindPFlag("parser.legacy-dispatch", cmd.Flags().Lookup("legacy-dispatch"))
	v.BindPFlag("session.ttl", cmd.Flags().Lookup("session-ttl"))
	v.BindPFlag("session.max", cmd.Flags().Lookup("max-sessions"))

	return cmd
}

func serve(cfg *config.Config) error {
	logger := cfg.Log.NewLogger(os.Stderr)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      newRouter(cfg, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Graceful shutdown
	done := make(chan struct{})
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("server is shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("could not gracefully shutdown", "err", err)
		}
		close(done)
	}()

	logger.Info("seqanalyser API server starting", "addr", "http://"+cfg.Server.Addr())
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("could not listen", "addr", cfg.Server.Addr(), "err", err)
		return err
	}

	<-done
	logger.Info("server stopped")
	return nil
}
