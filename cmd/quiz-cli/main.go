package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"quizdoc/internal/client"
	"quizdoc/internal/config"
	"quizdoc/internal/history"
)

func main() {
	configPath := flag.String("config", os.Getenv("QUIZ_CONFIG"), "optional YAML config file")
	server := flag.String("server", "", "quiz service base URL (overrides config)")
	timeout := flag.Duration("timeout", 5*time.Second, "HTTP timeout")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fail(err)
	}
	if *server != "" {
		cfg.APIBaseURL = *server
	}

	ctx := context.Background()
	store, closeStore, err := openHistoryStore(ctx, cfg)
	if err != nil {
		fail(err)
	}
	defer closeStore()

	clientID, err := history.ClientID(ctx, store)
	if err != nil {
		fail(err)
	}

	err = client.Run(ctx, os.Stdin, os.Stdout, client.Config{
		ServerURL:   cfg.APIBaseURL,
		HTTPTimeout: *timeout,
		NoColor:     *noColor,
		History:     history.NewLog(store, clientID),
	})
	if err != nil {
		fail(err)
	}
}

func openHistoryStore(ctx context.Context, cfg config.Config) (history.Store, func(), error) {
	switch cfg.HistoryDriver {
	case config.HistoryDriverMemory:
		return history.NewMemoryStore(), func() {}, nil
	case config.HistoryDriverSQLite:
		if err := os.MkdirAll(cfg.HistoryPath, 0o755); err != nil {
			return nil, nil, err
		}
		store, err := history.OpenSQLiteStore(ctx, filepath.Join(cfg.HistoryPath, "history.db"))
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	default:
		store, err := history.NewFileStore(cfg.HistoryPath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
