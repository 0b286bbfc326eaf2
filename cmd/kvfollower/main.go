package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"memoryscramble/internal/config"
	"memoryscramble/internal/kv"
	"memoryscramble/internal/kvapi"
)

func main() {
	cfg, err := config.LoadFollower()
	if err != nil {
		log.Fatalf("load follower config: %v", err)
	}

	delay := kv.DelayRange{MinMs: cfg.MinDelayMs, MaxMs: cfg.MaxDelayMs}
	follower := kv.NewFollower(cfg.ID, delay)
	log.Printf("follower %s initialized, delay range [%d, %d]ms", cfg.ID, cfg.MinDelayMs, cfg.MaxDelayMs)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           kvapi.NewFollowerRouter(follower),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("starting kv follower %s on %s", cfg.ID, cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("kv follower failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down kv follower...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("kv follower shutdown error: %v", err)
	}
}
