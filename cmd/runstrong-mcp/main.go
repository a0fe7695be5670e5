package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/claude/runstrong/internal/config"
	"github.com/claude/runstrong/internal/generator"
	"github.com/claude/runstrong/internal/mcp"
	"github.com/claude/runstrong/internal/storage"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "RunStrong server URL for remote mode (empty = local database)")
	apiKey := flag.String("api-key", os.Getenv("RUNSTRONG_AUTH_API_KEY"), "API key for remote catalog writes")
	configPath := flag.String("config", "config.yaml", "path to config file (local mode)")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("runstrong-mcp", Version)
		return
	}

	// Log to stderr — stdout carries the MCP stdio transport.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var ds mcp.DataSource

	if *serverURL != "" {
		ds = mcp.NewHTTPClient(*serverURL, *apiKey)
		log.Info("mcp remote mode", "server", *serverURL)
	} else {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}

		db, err := storage.New(context.Background(), cfg.Database.DSN())
		if err != nil {
			log.Error("failed to connect database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		gen := generator.New(db, rand.New(rand.NewSource(time.Now().UnixNano())), log)
		ds = mcp.NewLocal(db, gen, log)
		log.Info("mcp local mode", "database", cfg.Database.Name)
	}

	s := mcp.New(ds, Version, log)
	if err := mcpserver.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
