// Package importer bulk-loads exercise catalog files into a RunStrong
// server. Each input file is a JSON document with an "exercises" array;
// successfully imported files are recorded in a local SQLite state database
// so re-runs only send new or changed files.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/claude/runstrong/internal/models"
)

// Stats tracks import progress.
type Stats struct {
	FilesProcessed   int
	FilesSkipped     int
	FilesErrored     int
	ExercisesCreated int
}

// catalogFile is the on-disk shape of one import file.
type catalogFile struct {
	Exercises []models.NewExercise `json:"exercises"`
}

// ParseCatalogFile reads one import file and validates every entry before
// anything is sent, so a bad file is rejected whole.
func ParseCatalogFile(path string) ([]models.NewExercise, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing file: %w", err)
	}
	if len(file.Exercises) == 0 {
		return nil, fmt.Errorf("no exercises in file")
	}
	for i, ex := range file.Exercises {
		if err := ex.Validate(); err != nil {
			return nil, fmt.Errorf("exercise %d (%q): %w", i, ex.Name, err)
		}
	}
	return file.Exercises, nil
}

// Importer reads catalog JSON files from a directory and posts each exercise
// to the server.
type Importer struct {
	client *Client
	state  *StateDB
	log    *slog.Logger
	dryRun bool
	stats  Stats
}

// New creates a new Importer.
func New(client *Client, state *StateDB, log *slog.Logger, dryRun bool) *Importer {
	return &Importer{client: client, state: state, log: log, dryRun: dryRun}
}

// Import processes all .json files directly under dir, in name order.
func (imp *Importer) Import(ctx context.Context, dir string) (*Stats, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return &imp.stats, fmt.Errorf("reading catalog dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".json" {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return &imp.stats, err
		}
		if err := imp.importFile(ctx, dir, name); err != nil {
			imp.stats.FilesErrored++
			imp.log.Error("import failed", "file", name, "error", err)
			continue
		}
	}

	return &imp.stats, nil
}

func (imp *Importer) importFile(ctx context.Context, dir, name string) error {
	path := filepath.Join(dir, name)

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat: %w", err)
	}
	hash, err := HashFile(path)
	if err != nil {
		return fmt.Errorf("hashing: %w", err)
	}

	done, err := imp.state.IsImported(name, info.Size(), hash)
	if err != nil {
		return fmt.Errorf("checking state: %w", err)
	}
	if done {
		imp.stats.FilesSkipped++
		imp.log.Info("skipping already-imported file", "file", name)
		return nil
	}

	exercises, err := ParseCatalogFile(path)
	if err != nil {
		return err
	}

	if imp.dryRun {
		imp.log.Info("dry run: would import", "file", name, "exercises", len(exercises))
		imp.stats.FilesProcessed++
		return nil
	}

	for _, ex := range exercises {
		created, err := imp.client.CreateExercise(ctx, ex)
		if err != nil {
			return fmt.Errorf("creating %q: %w", ex.Name, err)
		}
		imp.stats.ExercisesCreated++
		imp.log.Info("created exercise", "id", created.ID, "name", created.Name)
	}

	if err := imp.state.MarkImported(name, info.Size(), hash); err != nil {
		return fmt.Errorf("recording state: %w", err)
	}
	imp.stats.FilesProcessed++
	return nil
}
