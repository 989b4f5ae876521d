package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"dining-importer/internal/model"
)

// restaurantRepository implements RestaurantRepository using a PostgreSQL
// JSONB document table. The merge-upsert uses the JSONB || operator so
// fields written by other feeds survive a re-import.
type restaurantRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewRestaurantRepository creates a new PostgreSQL-backed restaurant repository.
func NewRestaurantRepository(pool *pgxpool.Pool, logger zerolog.Logger) RestaurantRepository {
	return &restaurantRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "restaurant").Logger(),
	}
}

// Upsert merges the restaurant document into the store keyed by its ID.
func (r *restaurantRepository) Upsert(ctx context.Context, restaurant *model.Restaurant) error {
	doc, err := json.Marshal(restaurant)
	if err != nil {
		r.logger.Error().Err(err).Str("restaurant_id", restaurant.ID).Msg("failed to marshal restaurant")
		return fmt.Errorf("failed to marshal restaurant %s: %w", restaurant.ID, err)
	}

	query := `
		INSERT INTO restaurants (id, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET data = restaurants.data || EXCLUDED.data,
		    updated_at = EXCLUDED.updated_at
	`

	_, err = r.pool.Exec(ctx, query, restaurant.ID, doc, restaurant.LastUpdated)
	if err != nil {
		r.logger.Error().Err(err).Str("restaurant_id", restaurant.ID).Msg("failed to upsert restaurant")
		return fmt.Errorf("failed to upsert restaurant %s: %w", restaurant.ID, err)
	}

	r.logger.Debug().
		Str("restaurant_id", restaurant.ID).
		Int("menu_items", len(restaurant.Menu)).
		Msg("restaurant upserted")

	return nil
}

// GetByID retrieves a restaurant document by its ID.
func (r *restaurantRepository) GetByID(ctx context.Context, id string) (*model.Restaurant, error) {
	query := `SELECT data FROM restaurants WHERE id = $1`

	var doc []byte
	err := r.pool.QueryRow(ctx, query, id).Scan(&doc)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("restaurant_id", id).Msg("restaurant not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("restaurant_id", id).Msg("failed to query restaurant")
		return nil, fmt.Errorf("failed to query restaurant: %w", err)
	}

	var restaurant model.Restaurant
	if err := json.Unmarshal(doc, &restaurant); err != nil {
		return nil, fmt.Errorf("failed to unmarshal restaurant %s: %w", id, err)
	}

	return &restaurant, nil
}
