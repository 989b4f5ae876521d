package repository

import (
	"context"

	"dining-importer/internal/model"
)

// RestaurantRepository defines the interface for the destination catalog
// store. The importer only ever writes one record per restaurant; the store
// itself is an external collaborator.
type RestaurantRepository interface {
	// Upsert merges the restaurant record into the store keyed by its ID.
	// Fields absent from the new record are preserved per standard merge
	// semantics; re-running the same import is idempotent.
	Upsert(ctx context.Context, restaurant *model.Restaurant) error

	// GetByID retrieves a restaurant record by its ID. Returns nil when the
	// record does not exist.
	GetByID(ctx context.Context, id string) (*model.Restaurant, error)
}
