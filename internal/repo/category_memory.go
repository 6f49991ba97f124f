package repo

import (
	"context"
	"strings"
	"sync"

	"github.com/Akshadkurundwade07/shopflow/internal/models"
	"github.com/google/uuid"
)

type InMemoryCategoryRepository struct {
	mu         sync.RWMutex
	categories map[string][]models.Category
}

func NewInMemoryCategoryRepository() *InMemoryCategoryRepository {
	return &InMemoryCategoryRepository{
		categories: map[string][]models.Category{},
	}
}

func (r *InMemoryCategoryRepository) nameTaken(ownerID, name, exceptID string) bool {
	for _, c := range r.categories[ownerID] {
		if strings.EqualFold(c.Name, name) && c.ID != exceptID {
			return true
		}
	}
	return false
}

func (r *InMemoryCategoryRepository) indexOf(ownerID, id string) int {
	for i, c := range r.categories[ownerID] {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (r *InMemoryCategoryRepository) Create(_ context.Context, category models.Category) (models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nameTaken(category.OwnerID, category.Name, "") {
		return models.Category{}, ErrDuplicateCategory
	}
	category.ID = uuid.NewString()
	r.categories[category.OwnerID] = append(r.categories[category.OwnerID], category)
	return category, nil
}

func (r *InMemoryCategoryRepository) GetAll(_ context.Context, ownerID string) ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]models.Category, len(r.categories[ownerID]))
	copy(categories, r.categories[ownerID])
	return categories, nil
}

func (r *InMemoryCategoryRepository) GetByID(_ context.Context, ownerID, id string) (models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(ownerID, id); i >= 0 {
		return r.categories[ownerID][i], nil
	}
	return models.Category{}, ErrCategoryNotFound
}

func (r *InMemoryCategoryRepository) Update(_ context.Context, ownerID, id string, patch models.CategoryPatch) (models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(ownerID, id)
	if i < 0 {
		return models.Category{}, ErrCategoryNotFound
	}
	if patch.Name != nil && r.nameTaken(ownerID, *patch.Name, id) {
		return models.Category{}, ErrDuplicateCategory
	}

	category := r.categories[ownerID][i]
	patch.Apply(&category)
	r.categories[ownerID][i] = category
	return category, nil
}

func (r *InMemoryCategoryRepository) Delete(_ context.Context, ownerID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(ownerID, id)
	if i < 0 {
		return ErrCategoryNotFound
	}
	categories := r.categories[ownerID]
	r.categories[ownerID] = append(categories[:i:i], categories[i+1:]...)
	return nil
}

// Clear drops every owner's categories.
func (r *InMemoryCategoryRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories = map[string][]models.Category{}
}
