package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/claude/runstrong/internal/importer"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "RunStrong server URL (e.g. http://localhost:8080)")
	apiKey := flag.String("api-key", os.Getenv("RUNSTRONG_AUTH_API_KEY"), "API key for catalog writes")
	catalogPath := flag.String("path", "", "directory containing exercise catalog .json files")
	dryRun := flag.Bool("dry-run", false, "parse and validate but don't send to server")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("runstrong-import", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *catalogPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: runstrong-import -server <URL> -path <catalog dir> [-api-key KEY] [-dry-run]\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *serverURL == "" && !*dryRun {
		fmt.Fprintf(os.Stderr, "Error: -server is required (or use -dry-run)\n")
		os.Exit(1)
	}

	info, err := os.Stat(*catalogPath)
	if err != nil || !info.IsDir() {
		log.Error("catalog path does not exist or is not a directory", "path", *catalogPath)
		os.Exit(1)
	}

	// Open state database
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Error("failed to get home directory", "error", err)
		os.Exit(1)
	}
	stateDir := filepath.Join(homeDir, ".runstrong-import")

	state, err := importer.OpenStateDB(stateDir)
	if err != nil {
		log.Error("failed to open state database", "error", err)
		os.Exit(1)
	}
	defer state.Close()

	// Create client (nil-safe in dry-run mode)
	var client *importer.Client
	if !*dryRun {
		client = importer.NewClient(*serverURL, *apiKey)
	}

	if *dryRun {
		log.Info("DRY RUN mode — files will be parsed and validated but not sent")
	}

	imp := importer.New(client, state, log, *dryRun)
	stats, err := imp.Import(context.Background(), *catalogPath)
	if err != nil {
		log.Error("import failed", "error", err)
		os.Exit(1)
	}

	log.Info("import finished",
		"files_processed", stats.FilesProcessed,
		"files_skipped", stats.FilesSkipped,
		"files_errored", stats.FilesErrored,
		"exercises_created", stats.ExercisesCreated,
	)
	if stats.FilesErrored > 0 {
		os.Exit(1)
	}
}
