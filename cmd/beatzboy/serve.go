package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/beatzboy/site/internal/adapter/driven/content"
	httphandler "github.com/beatzboy/site/internal/adapter/driving/http"
	webhandler "github.com/beatzboy/site/internal/adapter/driving/web"
	"github.com/beatzboy/site/internal/application"
	"github.com/beatzboy/site/internal/config"
)

// baseWriteTimeout is added to the longest splash delay to bound page writes.
const baseWriteTimeout = 30 * time.Second

// NewServeCmd creates the serve command. Its flags are inherited from the root command.
func NewServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServeCmd(cmd, v)
		},
	}
	return cmd
}

func runServeCmd(cmd *cobra.Command, v *viper.Viper) error {
	if noSplash, _ := cmd.Flags().GetBool("no-splash"); noSplash {
		v.Set(config.KeySplashEnabled, false)
	}

	// Load configuration (fail fast on invalid values).
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)
	logger.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"content_path", cfg.ContentPath,
		"splash_enabled", cfg.SplashEnabled,
		"home_splash_delay", cfg.HomeSplashDelay,
		"gifted_splash_delay", cfg.GiftedSplashDelay,
	)

	// Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, cfg, logger)
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	started := time.Now()

	// Load content once; it is immutable for the life of the process.
	pages := application.DefaultPages(cfg.HomeSplashDelay, cfg.GiftedSplashDelay)
	site, err := application.LoadSite(ctx, content.NewSource(cfg.ContentPath), pages, nil)
	if err != nil {
		return err
	}
	logger.Info("content loaded", "pages", len(site.Pages()))

	// Wire handlers.
	healthSvc := application.NewHealthService(site, started)
	router := httphandler.NewRouter(logger)
	httphandler.RegisterRoutes(router, httphandler.NewHandler(healthSvc, logger))
	webhandler.RegisterRoutes(router, webhandler.NewHandler(site, cfg.SplashEnabled, logger))

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      baseWriteTimeout + max(cfg.HomeSplashDelay, cfg.GiftedSplashDelay),
		IdleTimeout:       120 * time.Second,
		// Shutdown cancels request contexts, which deactivates pending splash gates.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	err = g.Wait()
	logger.Info("shutdown complete")
	return err
}
