package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"searchads-go/pkg/keyword"
)

func TestTopTrending_StableDescendingOrder(t *testing.T) {
	records := []keyword.Record{
		{ID: "a", SearchPopularity: 50},
		{ID: "b", SearchPopularity: 90},
		{ID: "c", SearchPopularity: 10},
		{ID: "d", SearchPopularity: 90},
	}

	trending := TopTrending(records, TrendingLimit)

	expected := []string{"b", "d", "a", "c"}
	if len(trending) != len(expected) {
		t.Fatalf("Expected %d records, got %d", len(expected), len(trending))
	}
	for i, id := range expected {
		if trending[i].ID != id {
			t.Errorf("Position %d: expected %s, got %s", i, id, trending[i].ID)
		}
	}

	// Input order must be untouched
	if records[0].ID != "a" || records[3].ID != "d" {
		t.Error("Expected input slice to remain unmodified")
	}
}

func TestTopTrending_TruncatesToLimit(t *testing.T) {
	records := make([]keyword.Record, 150)
	for i := range records {
		records[i] = keyword.Record{SearchPopularity: i}
	}

	trending := TopTrending(records, TrendingLimit)
	if len(trending) != TrendingLimit {
		t.Fatalf("Expected %d records after truncation, got %d", TrendingLimit, len(trending))
	}
	if trending[0].SearchPopularity != 149 {
		t.Errorf("Expected highest popularity first, got %d", trending[0].SearchPopularity)
	}
}

func TestWriteCategory_CreatesSnapshotFile(t *testing.T) {
	dir := t.TempDir()
	writer := NewSnapshotWriter(dir)

	records := []keyword.Record{
		{ID: "1", Keyword: "puzzle", SearchPopularity: 42, CompetitionLevel: keyword.CompetitionHigh},
	}

	if err := writer.WriteCategory(records, "games"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "categories", "games.json"))
	if err != nil {
		t.Fatalf("Expected snapshot file to exist, got: %v", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		t.Fatalf("Expected valid JSON, got: %v", err)
	}
	if len(snapshot.Keywords) != 1 {
		t.Fatalf("Expected 1 keyword, got %d", len(snapshot.Keywords))
	}
	if snapshot.Keywords[0].CompetitionLevel != keyword.CompetitionHigh {
		t.Errorf("Expected high competition, got %q", snapshot.Keywords[0].CompetitionLevel)
	}
	if snapshot.Source != "Apple Search Ads API" {
		t.Errorf("Unexpected source label: %q", snapshot.Source)
	}
	if snapshot.GeneratedAt.IsZero() {
		t.Error("Expected generatedAt to be stamped")
	}
	if strings.Contains(string(data), "suggestedBidRange") {
		t.Errorf("Expected no suggestedBidRange key for record without bid data, got: %s", data)
	}
}

func TestWriteCategory_OverwritesPriorFile(t *testing.T) {
	dir := t.TempDir()
	writer := NewSnapshotWriter(dir)

	first := []keyword.Record{{ID: "1"}, {ID: "2"}}
	if err := writer.WriteCategory(first, "games"); err != nil {
		t.Fatalf("Expected no error on first write, got: %v", err)
	}

	second := []keyword.Record{{ID: "3"}}
	if err := writer.WriteCategory(second, "games"); err != nil {
		t.Fatalf("Expected no error on second write, got: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "categories", "games.json"))
	if err != nil {
		t.Fatalf("Expected snapshot file to exist, got: %v", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		t.Fatalf("Expected valid JSON, got: %v", err)
	}
	if len(snapshot.Keywords) != 1 || snapshot.Keywords[0].ID != "3" {
		t.Errorf("Expected file to be fully replaced, got %+v", snapshot.Keywords)
	}
}

func TestWriteTrending_DailyFile(t *testing.T) {
	dir := t.TempDir()
	writer := NewSnapshotWriter(dir)
	fixedTime := time.Date(2025, 3, 15, 8, 30, 0, 0, time.UTC)
	writer.now = func() time.Time { return fixedTime }

	records := []keyword.Record{
		{ID: "low", SearchPopularity: 5},
		{ID: "high", SearchPopularity: 95},
	}

	if err := writer.WriteTrending(records); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "trending", "2025-03-15.json"))
	if err != nil {
		t.Fatalf("Expected date-named trending file, got: %v", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		t.Fatalf("Expected valid JSON, got: %v", err)
	}
	if len(snapshot.Keywords) != 2 {
		t.Fatalf("Expected 2 keywords, got %d", len(snapshot.Keywords))
	}
	if snapshot.Keywords[0].ID != "high" {
		t.Errorf("Expected descending popularity order, got %s first", snapshot.Keywords[0].ID)
	}
}

func TestWriteMetadata(t *testing.T) {
	dir := t.TempDir()
	writer := NewSnapshotWriter(dir)

	categories := []string{"games", "finance"}
	if err := writer.WriteMetadata(categories); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "metadata.json"))
	if err != nil {
		t.Fatalf("Expected metadata file, got: %v", err)
	}

	var metadata Metadata
	if err := json.Unmarshal(data, &metadata); err != nil {
		t.Fatalf("Expected valid JSON, got: %v", err)
	}
	if len(metadata.Categories) != 2 || metadata.Categories[0] != "games" {
		t.Errorf("Unexpected categories: %v", metadata.Categories)
	}
	if metadata.Version != "1.0" {
		t.Errorf("Expected version 1.0, got %q", metadata.Version)
	}
	if metadata.LastUpdated.IsZero() {
		t.Error("Expected lastUpdated to be stamped")
	}
}
