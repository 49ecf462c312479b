// Package ingest defines the interface for catalog ingestion runs
package ingest

//go:generate mockgen -destination=mock/mock_service.go -package=ingestmock github.com/DylanBreuer/GenshinTools/internal/services/ingest Service

import (
	"context"
	"time"
)

// Service defines the interface for ingestion operations
type Service interface {
	// Run fetches the full upstream catalog, normalizes it and
	// reconciles it into the store. A failing endpoint aborts the whole
	// run; malformed individual records are dropped with a warning.
	Run(ctx context.Context, input *RunInput) (*RunOutput, error)
}

// RunInput defines the request for an ingestion run
type RunInput struct {
	// LegacyMaterials fetches materials from the single-payload
	// endpoint instead of walking the per-category endpoints
	LegacyMaterials bool
}

// RunOutput defines the response for an ingestion run
type RunOutput struct {
	Summary *Summary
}

// StageCount reports one catalog type's ingestion tally
type StageCount struct {
	// Fetched is how many records the upstream returned
	Fetched int
	// Created is how many of them were new to the store
	Created int
}

// Summary reports what an ingestion run did
type Summary struct {
	RunID        string
	Characters   StageCount
	Materials    StageCount
	Weapons      StageCount
	ArtifactSets StageCount

	// Placeholders created for recommendation names that matched no
	// fetched record
	PlaceholderWeapons      int
	PlaceholderArtifactSets int

	Duration time.Duration
}
