package repo

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Akshadkurundwade07/shopflow/internal/models"
	"github.com/google/uuid"
)

// InMemoryProductRepository keeps one ordered slice of products per owner.
// Every read returns copies, so callers get a stable snapshot.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products map[string][]models.Product
}

func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: map[string][]models.Product{},
	}
}

func (r *InMemoryProductRepository) skuTaken(ownerID, sku, exceptID string) bool {
	for _, p := range r.products[ownerID] {
		if p.SKU == sku && p.ID != exceptID {
			return true
		}
	}
	return false
}

func (r *InMemoryProductRepository) indexOf(ownerID, id string) int {
	for i, p := range r.products[ownerID] {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (r *InMemoryProductRepository) Create(_ context.Context, product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.skuTaken(product.OwnerID, product.SKU, "") {
		return models.Product{}, ErrDuplicateSKU
	}

	now := time.Now().UTC()
	product.ID = uuid.NewString()
	product.CreatedAt = now
	product.UpdatedAt = now
	r.products[product.OwnerID] = append(r.products[product.OwnerID], product)
	return product, nil
}

func (r *InMemoryProductRepository) GetAll(_ context.Context, ownerID string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]models.Product, len(r.products[ownerID]))
	copy(products, r.products[ownerID])
	return products, nil
}

func (r *InMemoryProductRepository) GetByID(_ context.Context, ownerID, id string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(ownerID, id); i >= 0 {
		return r.products[ownerID][i], nil
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) GetBySKU(_ context.Context, ownerID, sku string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products[ownerID] {
		if p.SKU == sku {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Update(_ context.Context, ownerID, id string, patch models.ProductPatch) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(ownerID, id)
	if i < 0 {
		return models.Product{}, ErrProductNotFound
	}
	if patch.SKU != nil && r.skuTaken(ownerID, *patch.SKU, id) {
		return models.Product{}, ErrDuplicateSKU
	}

	product := r.products[ownerID][i]
	patch.Apply(&product)
	product.UpdatedAt = time.Now().UTC()
	r.products[ownerID][i] = product
	return product, nil
}

func (r *InMemoryProductRepository) Delete(_ context.Context, ownerID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(ownerID, id)
	if i < 0 {
		return ErrProductNotFound
	}
	products := r.products[ownerID]
	r.products[ownerID] = append(products[:i:i], products[i+1:]...)
	return nil
}

func matchesFilter(p models.Product, pf ProductFilter) bool {
	if term := pf.search(); term != "" &&
		!strings.Contains(strings.ToLower(p.Name), term) &&
		!strings.Contains(strings.ToLower(p.SKU), term) {
		return false
	}
	if pf.Category != "" && p.Category != pf.Category {
		return false
	}
	return true
}

func lessBy(field string) func(a, b models.Product) int {
	switch field {
	case SortByStock:
		return func(a, b models.Product) int { return a.Stock - b.Stock }
	case SortByPrice:
		return func(a, b models.Product) int {
			switch {
			case a.Price < b.Price:
				return -1
			case a.Price > b.Price:
				return 1
			}
			return 0
		}
	case SortByCategory:
		return func(a, b models.Product) int {
			return strings.Compare(strings.ToLower(a.Category), strings.ToLower(b.Category))
		}
	case SortByName:
		return func(a, b models.Product) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
	}
	return nil
}

// Filter returns the requested page of matching products and the total match count.
func (r *InMemoryProductRepository) Filter(_ context.Context, ownerID string, pf ProductFilter) ([]models.Product, int, error) {
	r.mu.RLock()
	filtered := []models.Product{}
	for _, p := range r.products[ownerID] {
		if matchesFilter(p, pf) {
			filtered = append(filtered, p)
		}
	}
	r.mu.RUnlock()

	if cmp := lessBy(pf.SortBy); cmp != nil {
		sort.SliceStable(filtered, func(i, j int) bool {
			if pf.Desc {
				return cmp(filtered[i], filtered[j]) > 0
			}
			return cmp(filtered[i], filtered[j]) < 0
		})
	}

	start, end := page(len(filtered), pf.Offset, pf.Limit)
	return filtered[start:end], len(filtered), nil
}

func (r *InMemoryProductRepository) AdjustStock(_ context.Context, ownerID, id string, delta int) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(ownerID, id)
	if i < 0 {
		return models.Product{}, ErrProductNotFound
	}
	product := r.products[ownerID][i]
	if product.Stock+delta < 0 {
		return models.Product{}, ErrInvalidQuantityChange
	}

	product.Stock += delta
	product.UpdatedAt = time.Now().UTC()
	r.products[ownerID][i] = product
	return product, nil
}

// Clear drops every owner's products.
func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = map[string][]models.Product{}
}
