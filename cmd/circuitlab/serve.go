package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/circuitlab/internal/config"
	"github.com/katalvlaran/circuitlab/internal/httpapi"
	"github.com/katalvlaran/circuitlab/internal/metrics"
	"github.com/katalvlaran/circuitlab/session"
	"github.com/katalvlaran/circuitlab/session/redisstore"
	"github.com/katalvlaran/circuitlab/session/sqlitestore"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long:  `Serves the circuit library, stateless evaluation and lesson sessions over HTTP, with a websocket per session.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, opts, logger)
		},
	}
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (overrides server.addr)")

	return cmd
}

// openStore builds the configured session store. The returned close func is
// never nil.
func openStore(ctx context.Context, cfg config.StoreConfig) (session.Store, func() error, error) {
	switch cfg.Kind {
	case config.StoreRedis:
		s := redisstore.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			redisstore.WithPrefix(cfg.Redis.Prefix),
			redisstore.WithTTL(cfg.Redis.TTL),
		)
		if err := s.Ping(ctx); err != nil {
			_ = s.Close()
			return nil, nil, fmt.Errorf("redis %s: %w", cfg.Redis.Addr, err)
		}
		return s, s.Close, nil
	case config.StoreSQLite:
		s, err := sqlitestore.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return session.NewMemoryStore(), func() error { return nil }, nil
	}
}

func serve(ctx context.Context, cfg config.Config, opts *rootOptions, logger *slog.Logger) error {
	lib, err := opts.library(cfg, logger)
	if err != nil {
		return err
	}
	store, closeStore, err := openStore(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn("closing session store", "error", err)
		}
	}()

	m := metrics.New()
	mgr := session.NewManager(store, lib,
		session.WithLogger(logger),
		session.WithHooks(m.SessionHooks()),
	)
	apiOpts := []httpapi.Option{
		httpapi.WithLogger(logger),
		httpapi.WithCompression(cfg.Server.Compress),
	}
	if cfg.Server.Metrics {
		apiOpts = append(apiOpts, httpapi.WithMetrics(m))
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      httpapi.New(lib, mgr, apiOpts...).Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", "addr", srv.Addr, "store", cfg.Store.Kind, "circuits", len(lib.Entries()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", "timeout", cfg.Server.ShutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")

	return nil
}
