package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/claes/tabcast/internal/browser"
	"github.com/claes/tabcast/internal/config"
	"github.com/claes/tabcast/internal/events"
	apphttp "github.com/claes/tabcast/internal/http"
	"github.com/claes/tabcast/internal/media"
	"github.com/claes/tabcast/internal/notify"
	"github.com/claes/tabcast/internal/video"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}

	// Flags
	var port int
	flag.IntVar(&port, "port", 0, "port to listen on (overrides PORT env)")
	flag.Parse()
	if port > 0 {
		cfg.Port = port
	}

	// Configure structured logging to stderr
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(log)
	log.Info("server configuration", "config", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hub := events.NewHub()
	scheduler := notify.NewLocal(hub, cfg.NotificationsPermitted)
	defer scheduler.Close()

	engine := media.NewVirtual(
		media.WithInterval(cfg.StatusInterval),
		media.WithDurations(video.KnownDurations),
		media.WithFallbackDuration(cfg.DefaultDuration),
	)
	controller := video.NewController(engine, hub)
	screen := browser.NewScreen(scheduler, hub)

	if err := controller.Mount(ctx); err != nil {
		log.Error("mount video screen", "err", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &nethttp.Server{
		Addr:              addr,
		Handler:           apphttp.NewServer(screen, controller, hub, log),
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		// no WriteTimeout: /events holds its connection open
		IdleTimeout: 60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return engine.Run(gctx) })
	g.Go(func() error { return controller.Run(gctx, engine.Updates()) })
	g.Go(func() error {
		log.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("graceful shutdown failed", "err", err)
			_ = srv.Close()
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("server failed", "err", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
