package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"searchads-go/pkg/keyword"
	"searchads-go/pkg/logger"
)

const (
	sourceLabel   = "Apple Search Ads API"
	schemaVersion = "1.0"

	// TrendingLimit caps the daily trending snapshot.
	TrendingLimit = 100

	categoriesDir = "categories"
	trendingDir   = "trending"
	metadataFile  = "metadata.json"
)

// Snapshot is the envelope written for category and trending files.
type Snapshot struct {
	Keywords    []keyword.Record `json:"keywords"`
	GeneratedAt time.Time        `json:"generatedAt"`
	Source      string           `json:"source"`
}

// Metadata describes the data set as a whole.
type Metadata struct {
	Categories  []string  `json:"categories"`
	LastUpdated time.Time `json:"lastUpdated"`
	Version     string    `json:"version"`
}

// SnapshotWriter serializes normalized records under a base directory.
// Every write fully replaces the previous file; runs never merge.
type SnapshotWriter struct {
	baseDir string
	now     func() time.Time
	log     *logger.Logger
}

func NewSnapshotWriter(baseDir string) *SnapshotWriter {
	return &SnapshotWriter{
		baseDir: baseDir,
		now:     time.Now,
		log:     logger.GetLogger().WithField("component", "snapshot_writer"),
	}
}

// WriteCategory writes categories/<category>.json.
func (w *SnapshotWriter) WriteCategory(records []keyword.Record, category string) error {
	path := filepath.Join(w.baseDir, categoriesDir, category+".json")
	if err := w.writeSnapshot(path, records); err != nil {
		return fmt.Errorf("failed to write category snapshot: %w", err)
	}

	w.log.WithFields(map[string]interface{}{
		"category": category,
		"count":    len(records),
		"file":     path,
	}).Info("Saved category snapshot")
	return nil
}

// WriteTrending writes the daily top-100 file trending/<YYYY-MM-DD>.json
// from the full cross-category collection. Rerunning on the same UTC day
// replaces that day's file.
func (w *SnapshotWriter) WriteTrending(records []keyword.Record) error {
	trending := TopTrending(records, TrendingLimit)

	day := w.now().UTC().Format("2006-01-02")
	path := filepath.Join(w.baseDir, trendingDir, day+".json")
	if err := w.writeSnapshot(path, trending); err != nil {
		return fmt.Errorf("failed to write trending snapshot: %w", err)
	}

	w.log.WithFields(map[string]interface{}{
		"count": len(trending),
		"file":  path,
	}).Info("Saved trending snapshot")
	return nil
}

// WriteMetadata writes metadata.json with the known category labels.
func (w *SnapshotWriter) WriteMetadata(categories []string) error {
	metadata := Metadata{
		Categories:  categories,
		LastUpdated: w.now().UTC(),
		Version:     schemaVersion,
	}

	data, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(w.baseDir, metadataFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write metadata: %w", err)
	}

	w.log.WithField("file", path).Info("Saved metadata")
	return nil
}

func (w *SnapshotWriter) writeSnapshot(path string, records []keyword.Record) error {
	snapshot := Snapshot{
		Keywords:    records,
		GeneratedAt: w.now().UTC(),
		Source:      sourceLabel,
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// TopTrending returns the limit highest-popularity records, descending.
// The sort is stable so equal scores keep their cross-category input
// order. The input slice is not modified.
func TopTrending(records []keyword.Record, limit int) []keyword.Record {
	sorted := make([]keyword.Record, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SearchPopularity > sorted[j].SearchPopularity
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
