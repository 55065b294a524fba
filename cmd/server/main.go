package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Goutam-aswani/pdf-to-html-converter/internal/config"
	"github.com/Goutam-aswani/pdf-to-html-converter/internal/llm"
	"github.com/Goutam-aswani/pdf-to-html-converter/internal/server"
	"github.com/Goutam-aswani/pdf-to-html-converter/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	client, err := llm.NewClient(context.Background(), cfg.LLM)
	if err != nil {
		slog.Error("failed to create model client", "error", err)
		os.Exit(1)
	}

	srv := server.New(services.NewConverter(client))
	router := srv.Router(cfg.AllowedOrigins)

	slog.Info("pdf-to-html converter listening", "addr", cfg.ListenAddr, "provider", cfg.LLM.Provider)
	if err := router.Run(cfg.ListenAddr); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
