package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Akshadkurundwade07/shopflow/internal/models"
	"github.com/google/uuid"
)

type PostgresCategoryRepository struct {
	db *sql.DB
}

func NewPostgresCategoryRepository(db *sql.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

func (r *PostgresCategoryRepository) Create(ctx context.Context, c models.Category) (models.Category, error) {
	query := `INSERT INTO categories (id, owner_id, name, description, color) VALUES ($1, $2, $3, $4, $5)`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	c.ID = uuid.NewString()
	_, err := r.db.ExecContext(ctx, query, c.ID, c.OwnerID, c.Name, c.Description, c.Color)
	if isUniqueViolation(err) {
		return models.Category{}, ErrDuplicateCategory
	}
	if err != nil {
		return models.Category{}, fmt.Errorf("failed to insert category: %w", err)
	}
	return c, nil
}

func (r *PostgresCategoryRepository) GetAll(ctx context.Context, ownerID string) ([]models.Category, error) {
	query := `SELECT id, owner_id, name, description, color FROM categories WHERE owner_id = $1 ORDER BY seq`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Description, &c.Color); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresCategoryRepository) GetByID(ctx context.Context, ownerID, id string) (models.Category, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.Category{}, ErrCategoryNotFound
	}
	query := `SELECT id, owner_id, name, description, color FROM categories WHERE owner_id = $1 AND id = $2`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var c models.Category
	err := r.db.QueryRowContext(ctx, query, ownerID, id).Scan(&c.ID, &c.OwnerID, &c.Name, &c.Description, &c.Color)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Category{}, ErrCategoryNotFound
	}
	return c, err
}

func (r *PostgresCategoryRepository) Update(ctx context.Context, ownerID, id string, patch models.CategoryPatch) (models.Category, error) {
	c, err := r.GetByID(ctx, ownerID, id)
	if err != nil {
		return models.Category{}, err
	}
	patch.Apply(&c)

	query := `UPDATE categories SET name = $1, description = $2, color = $3 WHERE owner_id = $4 AND id = $5`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, c.Name, c.Description, c.Color, ownerID, id)
	if isUniqueViolation(err) {
		return models.Category{}, ErrDuplicateCategory
	}
	if err != nil {
		return models.Category{}, fmt.Errorf("failed to update category: %w", err)
	}
	if rowsAffected, _ := res.RowsAffected(); rowsAffected == 0 {
		return models.Category{}, ErrCategoryNotFound
	}
	return c, nil
}

func (r *PostgresCategoryRepository) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrCategoryNotFound
	}
	query := `DELETE FROM categories WHERE owner_id = $1 AND id = $2`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, ownerID, id)
	if err != nil {
		return err
	}
	if rowsAffected, _ := res.RowsAffected(); rowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
