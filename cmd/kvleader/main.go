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
	cfg, err := config.LoadLeader()
	if err != nil {
		log.Fatalf("load leader config: %v", err)
	}

	leader := kv.NewLeader(cfg.Followers, cfg.Quorum)
	log.Printf("leader initialized with %d followers: %v", len(cfg.Followers), cfg.Followers)
	log.Printf("write quorum: %d", cfg.Quorum)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           kvapi.NewLeaderRouter(leader),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("starting kv leader on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("kv leader failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down kv leader...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("kv leader shutdown error: %v", err)
	}
}
