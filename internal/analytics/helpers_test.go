package analytics_test

import (
	"time"

	"github.com/Akshadkurundwade07/shopflow/internal/models"
)

// fixedSource returns the same draw every time. IntN is capped at n-1.
type fixedSource struct {
	f float64
	i int
}

func (s fixedSource) Float64() float64 { return s.f }

func (s fixedSource) IntN(n int) int {
	if s.i >= n {
		return n - 1
	}
	return s.i
}

var fixedNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func product(id, category string, price, cost float64, stock, minStock int) models.Product {
	return models.Product{
		ID:        id,
		Name:      "Product " + id,
		Category:  category,
		Price:     price,
		Cost:      cost,
		Stock:     stock,
		MinStock:  minStock,
		SKU:       "SKU-" + id,
		UpdatedAt: fixedNow.Add(-time.Hour),
	}
}

func category(id, name, color string) models.Category {
	return models.Category{ID: id, Name: name, Color: color}
}
