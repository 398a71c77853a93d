package scraper

import (
	"context"

	"github.com/fr4nk3nst1ner/langsalary/internal/models"
)

// PageFunc receives one page of listings. Returning an error stops the walk.
type PageFunc func(page *models.Page) error

// Source is a paginated vacancy search on one job board.
type Source interface {
	// Name is the board's display name, e.g. "HeadHunter"
	Name() string
	// Walk fetches pages for keyword one at a time, starting at page 0, and
	// stops according to the board's own pagination rule.
	Walk(ctx context.Context, keyword string, fn PageFunc) error
}
