package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dining-importer/internal/importer"
	"dining-importer/internal/model"
)

// mockRestaurantRepository is a mock implementation of repository.RestaurantRepository.
type mockRestaurantRepository struct {
	mock.Mock
}

func (m *mockRestaurantRepository) Upsert(ctx context.Context, restaurant *model.Restaurant) error {
	args := m.Called(ctx, restaurant)
	return args.Error(0)
}

func (m *mockRestaurantRepository) GetByID(ctx context.Context, id string) (*model.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Restaurant), args.Error(1)
}

func newTestService(repo *mockRestaurantRepository) *publishService {
	return &publishService{
		repo:   repo,
		logger: zerolog.Nop(),
		now:    func() time.Time { return time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC) },
	}
}

func testCatalog() *importer.Catalog {
	catalog := importer.NewCatalog()
	catalog.Add("Sizzle", model.MenuItem{ID: "hilltop-sizzle-entrees-grilled-chicken", Name: "Grilled Chicken"})
	catalog.Add("Sizzle", model.MenuItem{ID: "hilltop-sizzle-sides-elote", Name: "Elote"})
	catalog.Add("Fuego Grill", model.MenuItem{ID: "hilltop-fuego-grill-entrees-carne-asada", Name: "Carne Asada"})
	return catalog
}

func TestPublishService_Publish(t *testing.T) {
	mockRepo := new(mockRestaurantRepository)
	svc := newTestService(mockRepo)

	mockRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*model.Restaurant")).Return(nil)

	report := svc.Publish(context.Background(), testCatalog(), PublishOptions{})

	assert.NotEmpty(t, report.RunID)
	assert.False(t, report.DryRun)
	assert.Equal(t, 2, report.Published)
	assert.Equal(t, 0, report.Failed)
	assert.Equal(t, 3, report.TotalItems)
	require.Len(t, report.Restaurants, 2)

	first := report.Restaurants[0]
	assert.Equal(t, "hilltop-sizzle", first.ID)
	assert.Equal(t, "Sizzle at Hilltop", first.Name)
	assert.Equal(t, 2, first.ItemCount)
	assert.True(t, first.Published)
	assert.Empty(t, first.Error)

	mockRepo.AssertNumberOfCalls(t, "Upsert", 2)
}

func TestPublishService_Publish_DryRun(t *testing.T) {
	mockRepo := new(mockRestaurantRepository)
	svc := newTestService(mockRepo)

	report := svc.Publish(context.Background(), testCatalog(), PublishOptions{DryRun: true})

	assert.True(t, report.DryRun)
	assert.Equal(t, 2, report.Published)
	assert.Equal(t, 0, report.Failed)
	assert.Equal(t, 3, report.TotalItems)

	// A dry run never touches the store.
	mockRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestPublishService_Publish_DryRunRepeatable(t *testing.T) {
	mockRepo := new(mockRestaurantRepository)
	svc := newTestService(mockRepo)

	first := svc.Publish(context.Background(), testCatalog(), PublishOptions{DryRun: true})
	second := svc.Publish(context.Background(), testCatalog(), PublishOptions{DryRun: true})

	assert.Equal(t, first.Published, second.Published)
	assert.Equal(t, first.TotalItems, second.TotalItems)
	mockRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestPublishService_Publish_WithoutRepository(t *testing.T) {
	svc := &publishService{
		logger: zerolog.Nop(),
		now:    time.Now,
	}

	// Dry-run works with no repository configured.
	report := svc.Publish(context.Background(), testCatalog(), PublishOptions{DryRun: true})
	assert.Equal(t, 2, report.Published)

	// A real run without a store fails every restaurant instead of panicking.
	report = svc.Publish(context.Background(), testCatalog(), PublishOptions{})
	assert.Equal(t, 0, report.Published)
	assert.Equal(t, 2, report.Failed)
}

func TestPublishService_Publish_FailureIsolated(t *testing.T) {
	mockRepo := new(mockRestaurantRepository)
	svc := newTestService(mockRepo)

	mockRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(r *model.Restaurant) bool {
		return r.ID == "hilltop-sizzle"
	})).Return(errors.New("connection reset"))
	mockRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(r *model.Restaurant) bool {
		return r.ID == "hilltop-fuego-grill"
	})).Return(nil)

	report := svc.Publish(context.Background(), testCatalog(), PublishOptions{})

	assert.Equal(t, 1, report.Published)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Restaurants, 2)

	assert.False(t, report.Restaurants[0].Published)
	assert.Contains(t, report.Restaurants[0].Error, "connection reset")
	assert.True(t, report.Restaurants[1].Published)

	// One bad restaurant must not stop the rest of the pass.
	mockRepo.AssertNumberOfCalls(t, "Upsert", 2)
}

func TestPublishService_BuildRestaurant(t *testing.T) {
	svc := newTestService(nil)

	items := []model.MenuItem{
		{ID: "hilltop-sizzle-entrees-grilled-chicken", Name: "Grilled Chicken"},
	}
	restaurant := svc.buildRestaurant("Sizzle", items)

	assert.Equal(t, "hilltop-sizzle", restaurant.ID)
	assert.Equal(t, "Sizzle at Hilltop", restaurant.Name)
	assert.Equal(t, "Hilltop Dining Commons", restaurant.Location)
	assert.Contains(t, restaurant.Description, "Sizzle at Hilltop")
	assert.Equal(t, []string{"Breakfast", "Lunch", "Dinner"}, restaurant.MealTypes)
	assert.Equal(t, items, restaurant.Menu)
	assert.Equal(t, time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC), restaurant.LastUpdated)

	assert.Equal(t, "07:00", restaurant.Hours.Mon.Open)
	assert.Equal(t, "21:00", restaurant.Hours.Mon.Close)
	assert.Equal(t, "22:00", restaurant.Hours.Fri.Close)
	assert.Equal(t, "08:00", restaurant.Hours.Sat.Open)
	assert.Equal(t, "20:00", restaurant.Hours.Sun.Close)
}
