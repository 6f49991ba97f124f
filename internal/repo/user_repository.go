package repo

import (
	"context"

	"github.com/Akshadkurundwade07/shopflow/internal/models"
)

// UserRepository stores accounts. Emails are unique, compared case-insensitively.
type UserRepository interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	Update(ctx context.Context, id string, patch models.UserPatch) (models.User, error)
	// Delete removes the account. The Postgres schema cascades to the owner's rows.
	Delete(ctx context.Context, id string) error
}
