package main

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"

	"searchads-go/internal/config"
	"searchads-go/pkg/auth"
	"searchads-go/pkg/logger"
	"searchads-go/pkg/pipeline"
	"searchads-go/pkg/searchads"
	"searchads-go/pkg/storage"
)

func main() {
	// Local runs pick up a .env file; CI supplies real variables.
	_ = godotenv.Load()

	log := logger.GetLogger().WithField("component", "main")

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Configuration error")
	}

	tokens, err := auth.NewES256TokenSource(
		cfg.Credentials.ClientID,
		cfg.Credentials.TeamID,
		cfg.Credentials.KeyID,
		cfg.Credentials.PrivateKey,
	)
	if err != nil {
		log.WithError(err).Fatal("Invalid API credentials")
	}

	client, err := searchads.NewClient(searchads.ClientConfig{
		BaseURL:    cfg.API.BaseURL,
		OrgID:      cfg.API.OrgID,
		CampaignID: cfg.API.CampaignID,
		AdGroupID:  cfg.API.AdGroupID,
		Limit:      cfg.API.Limit,
		Timeout:    time.Duration(cfg.API.Timeout) * time.Second,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create API client")
	}

	writer := storage.NewSnapshotWriter(cfg.Output.Dir)
	pacer := pipeline.FixedDelayPacer{Delay: time.Duration(cfg.Job.DelaySeconds) * time.Second}
	job := pipeline.New(cfg.Job.Categories, tokens, client, writer, pacer)

	// Hard ceiling to prevent a hung run from blocking the schedule.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	log.WithFields(map[string]interface{}{
		"categories": len(cfg.Job.Categories),
		"output_dir": cfg.Output.Dir,
	}).Info("Starting keyword data fetch")
	startTime := time.Now()

	results, err := job.Run(ctx)
	if err != nil {
		log.WithError(err).Fatal("Keyword fetch failed")
	}

	successCount := 0
	totalKeywords := 0
	for _, result := range results {
		if result.Success {
			successCount++
			totalKeywords += result.Count
		}
	}

	log.WithFields(map[string]interface{}{
		"categories":     len(results),
		"success_count":  successCount,
		"failure_count":  len(results) - successCount,
		"total_keywords": totalKeywords,
		"duration":       time.Since(startTime).String(),
	}).Info("Keyword fetch completed")

	fmt.Printf("\n=== Keyword Fetch Results ===\n")
	for _, result := range results {
		if result.Success {
			fmt.Printf("✓ %s - %d keywords\n", result.Category, result.Count)
		} else {
			fmt.Printf("✗ %s - %s\n", result.Category, result.Error)
		}
	}
}
