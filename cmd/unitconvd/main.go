package main

import (
	"fmt"
	"net/http"

	"github.com/mark3labs/mcp-go/server"

	"github.com/comigor/unitconv-go/internal/config"
	"github.com/comigor/unitconv-go/internal/history"
	"github.com/comigor/unitconv-go/internal/logger"
	"github.com/comigor/unitconv-go/internal/mcptool"
	"github.com/comigor/unitconv-go/internal/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.L.Error("failed to load configuration", "error", err)
		return
	}
	logger.SetLevel(cfg.Log.Level)

	// Conversion history, partitioned per session
	store := history.New(cfg.History.Path, cfg.History.Capacity)
	defer store.Close()

	// Browser form plus the MCP tool surface on the same server
	mux := web.NewServer(store).Routes()
	mux.Handle("/mcp", server.NewStreamableHTTPServer(mcptool.New()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.L.Info("starting server", "address", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.L.Error("failed to start server", "error", err)
	}
}
