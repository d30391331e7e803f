package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/goliatone/go-webshell/pkg/config"
)

const (
	// HistoryFile is the name of the build log kept in an output directory.
	HistoryFile = "build_history.json"

	maxHistoryEntries = 50
)

// HistoryEntry records one render run.
type HistoryEntry struct {
	Timestamp         time.Time `json:"timestamp"`
	Project           string    `json:"project,omitempty"`
	PackageIdentifier string    `json:"packageIdentifier"`
	ContentMode       string    `json:"contentMode"`
	Targets           []string  `json:"targets"`
	OutputDir         string    `json:"outputDir"`
}

// History is the newest-first build log stored in an output directory.
type History struct {
	store *Store
	path  string
}

// History returns the build log kept in dir.
func (s *Store) History(dir string) *History {
	return &History{store: s, path: filepath.Join(dir, HistoryFile)}
}

// Path is the location of the history file.
func (h *History) Path() string {
	return h.path
}

// Entries returns the recorded runs, newest first. A missing file is an empty
// history.
func (h *History) Entries() ([]HistoryEntry, error) {
	data, err := os.ReadFile(h.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("project: read history %s: %w", h.path, err)
	}
	var entries []HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("project: decode history %s: %w", h.path, err)
	}
	return entries, nil
}

// Record prepends a run for cfg and keeps the newest 50 entries. An unreadable
// history is replaced rather than blocking the build.
func (h *History) Record(source string, cfg config.Configuration, targets []string) (HistoryEntry, error) {
	log := h.store.logger.Sugar().Named("history")

	entry := HistoryEntry{
		Timestamp:         h.store.now().UTC(),
		Project:           source,
		PackageIdentifier: cfg.PackageIdentifier,
		ContentMode:       string(cfg.ContentMode),
		Targets:           append([]string(nil), targets...),
		OutputDir:         filepath.Dir(h.path),
	}

	entries, err := h.Entries()
	if err != nil {
		log.Warnw("discarding unreadable build history", "path", h.path, "error", err)
		entries = nil
	}
	entries = append([]HistoryEntry{entry}, entries...)
	if len(entries) > maxHistoryEntries {
		entries = entries[:maxHistoryEntries]
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return HistoryEntry{}, fmt.Errorf("project: encode history: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(h.path), 0o755); err != nil {
		return HistoryEntry{}, fmt.Errorf("project: create %s: %w", filepath.Dir(h.path), err)
	}
	if err := os.WriteFile(h.path, append(data, '\n'), 0o644); err != nil {
		return HistoryEntry{}, fmt.Errorf("project: write history %s: %w", h.path, err)
	}

	log.Debugw("build recorded", "path", h.path, "targets", targets, "entries", len(entries))
	return entry, nil
}
