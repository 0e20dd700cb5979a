// cmd/web/main.go
//
// frontdoor – HTTP entry point.
//
// Boot sequence
// -------------
//
//  1. Load config (defaults → .env → conf/global.yaml → FRONTDOOR_ env).
//
//  2. Start daily rotating logger (tees to console when running in a TTY).
//
//  3. Build the chi router: middleware chain, locale redirect on "/",
//     /metrics, /healthz, and every registered component.
//
//  4. Serve until SIGINT or SIGTERM, then drain for up to shutdownGrace.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/yanizio/frontdoor/components/auth"
	_ "github.com/yanizio/frontdoor/components/text"
	"github.com/yanizio/frontdoor/internal/config"
	"github.com/yanizio/frontdoor/internal/logger"
	"github.com/yanizio/frontdoor/internal/router"
	"github.com/yanizio/frontdoor/internal/server"
)

const shutdownGrace = 10 * time.Second

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logOut, err := logger.New(cfg.Log, runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}
	defer func() { _ = logOut.Sync() }()

	handler, err := router.New(cfg)
	if err != nil {
		logOut.Fatalw("build router", "err", err)
	}

	srv := server.New(cfg.HTTP, handler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logOut.Infow("listening", "addr", cfg.HTTP.ListenAddr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			logOut.Fatalw("http server", "err", err)
		}
	case <-ctx.Done():
		logOut.Infow("shutting down", "grace", shutdownGrace)
		sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			logOut.Errorw("graceful shutdown failed", "err", err)
		}
	}
}
