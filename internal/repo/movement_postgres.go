package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Akshadkurundwade07/shopflow/internal/models"
)

type PostgresMovementRepository struct {
	db *sql.DB
}

func NewPostgresMovementRepository(db *sql.DB) *PostgresMovementRepository {
	return &PostgresMovementRepository{db: db}
}

// Log inserts a new stock movement.
func (r *PostgresMovementRepository) Log(ctx context.Context, ownerID, productID string, delta int) (models.Movement, error) {
	query := `INSERT INTO movements (owner_id, product_id, delta, created_at) VALUES ($1, $2, $3, $4) RETURNING id`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	m := models.Movement{OwnerID: ownerID, ProductID: productID, Delta: delta, CreatedAt: time.Now().UTC()}
	if err := r.db.QueryRowContext(ctx, query, ownerID, productID, delta, m.CreatedAt).Scan(&m.ID); err != nil {
		return models.Movement{}, fmt.Errorf("failed to insert movement: %w", err)
	}
	return m, nil
}

// GetByProductID returns matching movements newest first, with the total before pagination.
func (r *PostgresMovementRepository) GetByProductID(ctx context.Context, ownerID, productID string, mf MovementFilter) ([]models.Movement, int, error) {
	whereClause, args := buildMovementWhere(ownerID, productID, mf)

	total, err := r.getTotal(ctx, whereClause, args)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get total count: %w", err)
	}
	if mf.Offset != nil && *mf.Offset >= total {
		return []models.Movement{}, total, nil
	}

	query := fmt.Sprintf("SELECT id, owner_id, product_id, delta, created_at FROM movements %s ORDER BY created_at DESC, id DESC", whereClause)
	argIndex := len(args) + 1
	query += fmt.Sprintf(" LIMIT $%d", argIndex)
	args = append(args, mf.limit())
	argIndex++
	if mf.Offset != nil && *mf.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIndex)
		args = append(args, *mf.Offset)
	}

	movements, err := r.executeQuery(ctx, query, args)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to execute query: %w", err)
	}
	return movements, total, nil
}

func buildMovementWhere(ownerID, productID string, mf MovementFilter) (string, []any) {
	args := []any{ownerID, productID}
	whereClause := "WHERE owner_id = $1 AND product_id = $2"
	argIndex := 3

	if mf.Since != nil {
		whereClause += fmt.Sprintf(" AND created_at >= $%d", argIndex)
		args = append(args, *mf.Since)
		argIndex++
	}
	if mf.Until != nil {
		whereClause += fmt.Sprintf(" AND created_at <= $%d", argIndex)
		args = append(args, *mf.Until)
	}
	return whereClause, args
}

func (r *PostgresMovementRepository) getTotal(ctx context.Context, whereClause string, args []any) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var total int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM movements "+whereClause, args...).Scan(&total)
	return total, err
}

func (r *PostgresMovementRepository) executeQuery(ctx context.Context, query string, args []any) ([]models.Movement, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movements := []models.Movement{}
	for rows.Next() {
		var m models.Movement
		if err := rows.Scan(&m.ID, &m.OwnerID, &m.ProductID, &m.Delta, &m.CreatedAt); err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}

func (r *PostgresMovementRepository) Summary(ctx context.Context, ownerID string) (MovementSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var s MovementSummary
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM movements WHERE owner_id = $1`, ownerID).Scan(&s.TotalMovements); err != nil {
		return MovementSummary{}, err
	}

	err := r.db.QueryRowContext(ctx, `
		SELECT product_id, COUNT(*) AS cnt
		FROM movements
		WHERE owner_id = $1
		GROUP BY product_id
		ORDER BY cnt DESC, MIN(id)
		LIMIT 1
	`, ownerID).Scan(&s.MostMovedProduct.ProductID, &s.MostMovedProduct.MovementCount)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return MovementSummary{}, err
	}
	return s, nil
}
