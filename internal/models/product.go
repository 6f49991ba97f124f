package models

import "time"

// OverstockFactor is the multiple of MinStock above which a product counts as overstocked.
const OverstockFactor = 5

// Product represents a product entity in the inventory system.
// Category holds the category name, not its id.
type Product struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"-"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Cost        float64   `json:"cost"`
	Stock       int       `json:"stock"`
	MinStock    int       `json:"min_stock"`
	SKU         string    `json:"sku"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsOutOfStock reports whether nothing is left on hand.
func (p Product) IsOutOfStock() bool {
	return p.Stock == 0
}

// IsLowStock reports whether stock is above zero but at or below MinStock.
func (p Product) IsLowStock() bool {
	return p.Stock > 0 && p.Stock <= p.MinStock
}

// IsOverstocked reports whether stock exceeds OverstockFactor times MinStock.
func (p Product) IsOverstocked() bool {
	return p.Stock > p.MinStock*OverstockFactor
}

// ProductPatch carries a partial product update. Nil fields are left untouched.
type ProductPatch struct {
	Name        *string
	Description *string
	Category    *string
	Price       *float64
	Cost        *float64
	Stock       *int
	MinStock    *int
	SKU         *string
	ImageURL    *string
}

// Apply copies every non-nil field of the patch onto p.
func (pp ProductPatch) Apply(p *Product) {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
	if pp.Category != nil {
		p.Category = *pp.Category
	}
	if pp.Price != nil {
		p.Price = *pp.Price
	}
	if pp.Cost != nil {
		p.Cost = *pp.Cost
	}
	if pp.Stock != nil {
		p.Stock = *pp.Stock
	}
	if pp.MinStock != nil {
		p.MinStock = *pp.MinStock
	}
	if pp.SKU != nil {
		p.SKU = *pp.SKU
	}
	if pp.ImageURL != nil {
		p.ImageURL = *pp.ImageURL
	}
}
