package model

// RestaurantReport holds the per-restaurant outcome of a publish pass.
type RestaurantReport struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ItemCount int    `json:"itemCount"`
	Published bool   `json:"published"`
	Error     string `json:"error,omitempty"`
}

// ImportReport summarises a single import run.
type ImportReport struct {
	RunID       string             `json:"runId"`
	DryRun      bool               `json:"dryRun"`
	Restaurants []RestaurantReport `json:"restaurants"`
	Published   int                `json:"published"`
	Failed      int                `json:"failed"`
	TotalItems  int                `json:"totalItems"`
}
