package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"styleboard/internal/api"
	"styleboard/internal/config"
	"styleboard/internal/router"
	"styleboard/internal/server"
	"styleboard/internal/store"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal("load config", "error", err)
	}

	table, err := store.Open(cfg.StorePath)
	if err != nil {
		log.Fatal("open style table", "error", err)
	}
	log.Info("style table ready", "path", cfg.StorePath, "presets", len(table.List()))

	runtime, err := server.New(cfg, table, router.DefaultChain(cfg.RateLimitPerMinute, cfg.RateLimitBurst, table))
	if err != nil {
		log.Fatal("build ssh server", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.Routes(table),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info("http api listening", "address", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Error("http api stopped", "error", err)
			stop()
		}
	}()

	if err := runtime.Run(ctx); err != nil {
		log.Error("run ssh server", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", "error", err)
	}
}
