package main

import (
	"context"
	"flag"
	"io/fs"
	"log/slog"
	"os"

	"mindtree/internal/config"
	"mindtree/internal/handler"
	"mindtree/internal/logger"
	"mindtree/internal/service"
	"mindtree/internal/store"
	"mindtree/web"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "err", err)
		os.Exit(1)
	}

	st, closeStore, err := store.Open(cfg)
	if err != nil {
		slog.Error("store open failed", "backend", cfg.Store.Backend, "err", err)
		os.Exit(1)
	}
	defer closeStore()

	llm, err := service.NewLLM(context.Background(), cfg.LLM)
	if err != nil {
		slog.Error("llm client init failed", "provider", cfg.LLM.Provider, "err", err)
		os.Exit(1)
	}
	ai := service.NewAIService(llm)
	checkinSvc := service.NewCheckinService(ai, ai, st, cfg.LLMTimeout())

	var site fs.FS = web.Site
	if cfg.Server.StaticDir != "" {
		site = os.DirFS(cfg.Server.StaticDir)
	}

	r, err := handler.NewRouter(checkinSvc, site)
	if err != nil {
		slog.Error("router setup failed", "err", err)
		os.Exit(1)
	}

	slog.Info("server starting",
		"addr", cfg.Addr(),
		"store", cfg.Store.Backend,
		"llm", cfg.LLM.Provider,
	)
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
