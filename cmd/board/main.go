package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"memoryscramble/internal/boardapi"
	"memoryscramble/internal/boardengine"
	"memoryscramble/internal/config"
)

func main() {
	cfg := config.LoadBoard()

	b, err := boardengine.LoadBoard(cfg.BoardFile)
	if err != nil {
		log.Fatalf("load board file %s: %v", cfg.BoardFile, err)
	}
	defer b.Close()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           boardapi.NewServer(b),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("starting board server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("board server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down board server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("board server shutdown error: %v", err)
	}
}
