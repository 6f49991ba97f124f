package repo

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrProductNotFound       = errors.New("product not found")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrDuplicateSKU          = errors.New("product sku already exists")
	ErrDuplicateCategory     = errors.New("category name already exists")
	ErrDuplicateEmail        = errors.New("user email already exists")
	ErrInvalidQuantityChange = errors.New("invalid quantity change")
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
