package analytics

import (
	"time"

	"github.com/Akshadkurundwade07/shopflow/internal/models"
)

const dateLayout = "2006-01-02"

// Engine derives chart and table views from a product/category snapshot.
// It keeps no state between calls; every result is recomputed from its arguments.
// Synthetic figures come from the configured RandomSource, so repeated calls differ
// unless a deterministic source is injected.
type Engine struct {
	rnd RandomSource
	now func() time.Time
}

type Option func(*Engine)

// WithRandomSource replaces the default goroutine-safe source.
// The given source must be safe for concurrent use if the engine is shared.
func WithRandomSource(src RandomSource) Option {
	return func(e *Engine) {
		if src != nil {
			e.rnd = src
		}
	}
}

// WithClock sets the function used to determine "today".
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		rnd: globalSource{},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Report computes every analytics view for the given range in one pass over the snapshot.
func (e *Engine) Report(products []models.Product, categories []models.Category, r DateRange) Report {
	return Report{
		DateRange:     r,
		Sales:         e.SalesSeries(products, r.Days()),
		Categories:    CategoryRollup(products, categories),
		Products:      e.ProductPerformance(products),
		Trends:        e.InventoryTrends(products, categories),
		StockMovement: e.StockMovementSeries(),
		Alerts:        e.ClassifyAlerts(products),
	}
}

// dayLabels returns n dates, oldest first, ending today.
func (e *Engine) dayLabels(n int) []string {
	today := e.now()
	labels := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		labels = append(labels, today.AddDate(0, 0, -i).Format(dateLayout))
	}
	return labels
}
