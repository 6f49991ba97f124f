package repo

import (
	"context"
	"sync"
	"time"

	"github.com/Akshadkurundwade07/shopflow/internal/models"
)

type InMemoryMovementRepository struct {
	mu        sync.RWMutex
	movements []models.Movement
	now       func() time.Time
}

func NewInMemoryMovementRepository() *InMemoryMovementRepository {
	return &InMemoryMovementRepository{
		movements: []models.Movement{},
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// AddMovement records a movement with an explicit timestamp.
func (r *InMemoryMovementRepository) AddMovement(ownerID, productID string, delta int, createdAt time.Time) models.Movement {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := models.Movement{
		ID:        len(r.movements) + 1,
		OwnerID:   ownerID,
		ProductID: productID,
		Delta:     delta,
		CreatedAt: createdAt,
	}
	r.movements = append(r.movements, m)
	return m
}

func (r *InMemoryMovementRepository) Log(_ context.Context, ownerID, productID string, delta int) (models.Movement, error) {
	return r.AddMovement(ownerID, productID, delta, r.now()), nil
}

// GetByProductID returns matching movements newest first, with the total before pagination.
func (r *InMemoryMovementRepository) GetByProductID(_ context.Context, ownerID, productID string, mf MovementFilter) ([]models.Movement, int, error) {
	r.mu.RLock()
	filtered := []models.Movement{}
	for i := len(r.movements) - 1; i >= 0; i-- {
		m := r.movements[i]
		if m.OwnerID != ownerID || m.ProductID != productID {
			continue
		}
		if (mf.Since != nil && m.CreatedAt.Before(*mf.Since)) ||
			(mf.Until != nil && m.CreatedAt.After(*mf.Until)) {
			continue
		}
		filtered = append(filtered, m)
	}
	r.mu.RUnlock()

	limit := mf.limit()
	start, end := page(len(filtered), mf.Offset, &limit)
	return filtered[start:end], len(filtered), nil
}

func (r *InMemoryMovementRepository) Summary(_ context.Context, ownerID string) (MovementSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var s MovementSummary
	counts := map[string]int{}
	var order []string
	for _, m := range r.movements {
		if m.OwnerID != ownerID {
			continue
		}
		s.TotalMovements++
		if counts[m.ProductID] == 0 {
			order = append(order, m.ProductID)
		}
		counts[m.ProductID]++
	}

	for _, id := range order {
		if counts[id] > s.MostMovedProduct.MovementCount {
			s.MostMovedProduct = MostMovedProduct{ProductID: id, MovementCount: counts[id]}
		}
	}
	return s, nil
}

func (r *InMemoryMovementRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movements = []models.Movement{}
}
