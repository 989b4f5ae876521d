package service

import (
	"context"

	"dining-importer/internal/importer"
	"dining-importer/internal/model"
)

// PublishService defines the boundary between the parse pipeline and the
// destination store.
type PublishService interface {
	// Publish constructs a restaurant aggregate for each catalog entry and
	// merge-upserts it into the store, one restaurant at a time. A failure
	// publishing one restaurant never prevents the rest from being
	// attempted; the report records every outcome.
	Publish(ctx context.Context, catalog *importer.Catalog, opts PublishOptions) *model.ImportReport
}

// PublishOptions controls a publish pass.
type PublishOptions struct {
	// DryRun performs every step except the store write, with identical
	// reporting.
	DryRun bool
}
