package importer

import "dining-importer/internal/model"

// Catalog is the run-scoped mapping from restaurant display name to its
// ordered item list. Insertion order is preserved for both restaurants and
// items; duplicate-looking items are intentionally kept as separate entries
// because the export lists the same dish under multiple days.
type Catalog struct {
	order []string
	items map[string][]model.MenuItem
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{items: make(map[string][]model.MenuItem)}
}

// Add appends an item to a restaurant's menu, registering the restaurant on
// first sight.
func (c *Catalog) Add(restaurant string, item model.MenuItem) {
	if _, exists := c.items[restaurant]; !exists {
		c.order = append(c.order, restaurant)
	}
	c.items[restaurant] = append(c.items[restaurant], item)
}

// Restaurants returns restaurant names in insertion order.
func (c *Catalog) Restaurants() []string {
	return c.order
}

// Items returns the ordered menu for a restaurant.
func (c *Catalog) Items(restaurant string) []model.MenuItem {
	return c.items[restaurant]
}

// Len returns the number of restaurants with at least one item.
func (c *Catalog) Len() int {
	return len(c.order)
}

// TotalItems returns the number of items across all restaurants.
func (c *Catalog) TotalItems() int {
	total := 0
	for _, items := range c.items {
		total += len(items)
	}
	return total
}
