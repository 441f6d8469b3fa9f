package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quizdoc/internal/config"
	"quizdoc/internal/db"
	"quizdoc/internal/httpapi"
	"quizdoc/internal/quiz"
	"quizdoc/internal/quiz/sqlstore"
)

func main() {
	configPath := flag.String("config", os.Getenv("QUIZ_CONFIG"), "optional YAML config file")
	addr := flag.String("addr", "", "HTTP listen address (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *addr != "" {
		cfg.HTTPAddr = *addr
	}

	repo, closeRepo, err := openRepository(cfg)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	defer closeRepo()

	service := quiz.NewService(repo, quiz.WithCache())
	server := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: httpapi.NewRouter(service, httpapi.Options{
			CORSOrigins: cfg.CORSOrigins,
			Timeout:     cfg.RequestTimeout,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("quiz-service listening on %s (db=%s)", cfg.HTTPAddr, cfg.DBDriver)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server failed: %v", err)
	}
}

func openRepository(cfg config.Config) (quiz.Repository, func(), error) {
	if cfg.DBDriver == config.DBDriverMemory {
		return quiz.NewMemoryRepository(), func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	driver := db.Driver(cfg.DBDriver)
	conn, err := db.Open(ctx, driver, cfg.DBDSN)
	if err != nil {
		return nil, nil, err
	}
	store, err := sqlstore.New(ctx, conn, driver)
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}
	return store, func() { _ = store.Close() }, nil
}
