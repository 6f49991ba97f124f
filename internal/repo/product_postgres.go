package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Akshadkurundwade07/shopflow/internal/models"
	"github.com/google/uuid"
)

const productColumns = `id, owner_id, name, description, category, price, cost, stock, min_stock, sku, image_url, created_at, updated_at`

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.Category, &p.Price, &p.Cost,
		&p.Stock, &p.MinStock, &p.SKU, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *PostgresProductRepository) Create(ctx context.Context, p models.Product) (models.Product, error) {
	query := `INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt, p.UpdatedAt = now, now

	_, err := r.db.ExecContext(ctx, query, p.ID, p.OwnerID, p.Name, p.Description, p.Category, p.Price, p.Cost,
		p.Stock, p.MinStock, p.SKU, p.ImageURL, p.CreatedAt, p.UpdatedAt)
	if isUniqueViolation(err) {
		return models.Product{}, ErrDuplicateSKU
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to insert product: %w", err)
	}
	return p, nil
}

func (r *PostgresProductRepository) GetAll(ctx context.Context, ownerID string) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE owner_id = $1 ORDER BY seq`
	return r.query(ctx, query, ownerID)
}

func (r *PostgresProductRepository) GetByID(ctx context.Context, ownerID, id string) (models.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.Product{}, ErrProductNotFound
	}
	query := `SELECT ` + productColumns + ` FROM products WHERE owner_id = $1 AND id = $2`
	return r.queryOne(ctx, query, ownerID, id)
}

func (r *PostgresProductRepository) GetBySKU(ctx context.Context, ownerID, sku string) (models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE owner_id = $1 AND sku = $2`
	return r.queryOne(ctx, query, ownerID, sku)
}

func (r *PostgresProductRepository) Update(ctx context.Context, ownerID, id string, patch models.ProductPatch) (models.Product, error) {
	p, err := r.GetByID(ctx, ownerID, id)
	if err != nil {
		return models.Product{}, err
	}
	patch.Apply(&p)
	p.UpdatedAt = time.Now().UTC()

	query := `UPDATE products
		SET name = $1, description = $2, category = $3, price = $4, cost = $5, stock = $6,
			min_stock = $7, sku = $8, image_url = $9, updated_at = $10
		WHERE owner_id = $11 AND id = $12`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, p.Name, p.Description, p.Category, p.Price, p.Cost, p.Stock,
		p.MinStock, p.SKU, p.ImageURL, p.UpdatedAt, ownerID, id)
	if isUniqueViolation(err) {
		return models.Product{}, ErrDuplicateSKU
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to update product: %w", err)
	}
	if rowsAffected, _ := res.RowsAffected(); rowsAffected == 0 {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (r *PostgresProductRepository) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrProductNotFound
	}
	query := `DELETE FROM products WHERE owner_id = $1 AND id = $2`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, ownerID, id)
	if err != nil {
		return err
	}
	if rowsAffected, _ := res.RowsAffected(); rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

var sortColumns = map[string]string{
	SortByName:     "lower(name)",
	SortByStock:    "stock",
	SortByPrice:    "price",
	SortByCategory: "lower(category)",
}

func filterConditions(ownerID string, pf ProductFilter) (string, []any, int) {
	query := " WHERE owner_id = $1"
	args := []any{ownerID}
	argIdx := 2

	if term := pf.search(); term != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR sku ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+escapeLike(term)+"%")
		argIdx++
	}
	if pf.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, pf.Category)
		argIdx++
	}

	return query, args, argIdx
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *PostgresProductRepository) Filter(ctx context.Context, ownerID string, pf ProductFilter) ([]models.Product, int, error) {
	conditions, args, argIdx := filterConditions(ownerID, pf)

	countCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var totalCount int
	if err := r.db.QueryRowContext(countCtx, "SELECT COUNT(*) FROM products"+conditions, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + productColumns + " FROM products" + conditions
	if col, ok := sortColumns[pf.SortBy]; ok {
		dir := "ASC"
		if pf.Desc {
			dir = "DESC"
		}
		query += " ORDER BY " + col + " " + dir + ", seq"
	} else {
		query += " ORDER BY seq"
	}

	if pf.Limit != nil && *pf.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, *pf.Limit)
		argIdx++
	}
	if pf.Offset != nil && *pf.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, *pf.Offset)
	}

	products, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return products, totalCount, nil
}

func (r *PostgresProductRepository) AdjustStock(ctx context.Context, ownerID, id string, delta int) (models.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.Product{}, ErrProductNotFound
	}
	query := `
		UPDATE products
		SET stock = stock + $1, updated_at = $2
		WHERE owner_id = $3 AND id = $4 AND stock + $1 >= 0
		RETURNING ` + productColumns
	p, err := r.queryOne(ctx, query, delta, time.Now().UTC(), ownerID, id)
	if errors.Is(err, ErrProductNotFound) {
		// The row is either missing or the change would go negative.
		if _, getErr := r.GetByID(ctx, ownerID, id); getErr != nil {
			return models.Product{}, getErr
		}
		return models.Product{}, ErrInvalidQuantityChange
	}
	return p, err
}

func (r *PostgresProductRepository) queryOne(ctx context.Context, query string, args ...any) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) query(ctx context.Context, query string, args ...any) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
