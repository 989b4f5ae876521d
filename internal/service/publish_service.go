package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"dining-importer/internal/importer"
	"dining-importer/internal/model"
	"dining-importer/internal/repository"
)

// defaultLocation is the fixed venue for this data source; the export never
// carries an address.
const defaultLocation = "Hilltop Dining Commons"

// defaultMealTypes is the fixed meal-period list for the venue.
var defaultMealTypes = []string{"Breakfast", "Lunch", "Dinner"}

// defaultHours is the fixed weekly operating-hours template merged into
// every published restaurant.
var defaultHours = model.Hours{
	Mon: model.DayHours{Open: "07:00", Close: "21:00"},
	Tue: model.DayHours{Open: "07:00", Close: "21:00"},
	Wed: model.DayHours{Open: "07:00", Close: "21:00"},
	Thu: model.DayHours{Open: "07:00", Close: "21:00"},
	Fri: model.DayHours{Open: "07:00", Close: "22:00"},
	Sat: model.DayHours{Open: "08:00", Close: "22:00"},
	Sun: model.DayHours{Open: "08:00", Close: "20:00"},
}

// publishService implements PublishService.
type publishService struct {
	repo   repository.RestaurantRepository
	logger zerolog.Logger
	now    func() time.Time
}

// NewPublishService creates a new publish service. The repository may be
// nil when the service will only ever run in dry-run mode.
func NewPublishService(repo repository.RestaurantRepository, logger zerolog.Logger) PublishService {
	return &publishService{
		repo:   repo,
		logger: logger.With().Str("service", "publish").Logger(),
		now:    time.Now,
	}
}

// Publish writes each assembled restaurant to the store sequentially.
func (s *publishService) Publish(ctx context.Context, catalog *importer.Catalog, opts PublishOptions) *model.ImportReport {
	report := &model.ImportReport{
		RunID:  uuid.NewString(),
		DryRun: opts.DryRun,
	}

	s.logger.Info().
		Str("run_id", report.RunID).
		Bool("dry_run", opts.DryRun).
		Int("restaurants", catalog.Len()).
		Msg("starting publish pass")

	for _, name := range catalog.Restaurants() {
		items := catalog.Items(name)
		restaurant := s.buildRestaurant(name, items)

		entry := model.RestaurantReport{
			ID:        restaurant.ID,
			Name:      restaurant.Name,
			ItemCount: len(items),
		}
		report.TotalItems += len(items)

		if err := s.write(ctx, restaurant, opts.DryRun); err != nil {
			s.logger.Error().
				Err(err).
				Str("run_id", report.RunID).
				Str("restaurant", name).
				Msg("failed to publish restaurant")
			entry.Error = err.Error()
			report.Failed++
		} else {
			entry.Published = true
			report.Published++
			s.logger.Info().
				Str("run_id", report.RunID).
				Str("restaurant", name).
				Str("restaurant_id", restaurant.ID).
				Int("items", len(items)).
				Bool("dry_run", opts.DryRun).
				Msg("restaurant published")
		}

		report.Restaurants = append(report.Restaurants, entry)
	}

	s.logger.Info().
		Str("run_id", report.RunID).
		Int("published", report.Published).
		Int("failed", report.Failed).
		Int("total_items", report.TotalItems).
		Msg("publish pass completed")

	return report
}

// write performs the store upsert unless this is a dry run.
func (s *publishService) write(ctx context.Context, restaurant *model.Restaurant, dryRun bool) error {
	if dryRun {
		return nil
	}
	if s.repo == nil {
		return fmt.Errorf("no repository configured for restaurant %s", restaurant.ID)
	}
	return s.repo.Upsert(ctx, restaurant)
}

// buildRestaurant assembles the aggregate persisted to the store: fixed
// hours template and meal-type list, generated id, name and description,
// and the ordered menu from the catalog.
func (s *publishService) buildRestaurant(name string, items []model.MenuItem) *model.Restaurant {
	display := importer.RestaurantDisplayName(name)

	return &model.Restaurant{
		ID:          importer.RestaurantID(name),
		Name:        display,
		Location:    defaultLocation,
		Description: fmt.Sprintf("%s serves a rotating menu at the %s.", display, defaultLocation),
		Hours:       defaultHours,
		MealTypes:   defaultMealTypes,
		Menu:        items,
		LastUpdated: s.now().UTC(),
	}
}
