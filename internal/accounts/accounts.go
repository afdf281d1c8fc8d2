// internal/accounts/accounts.go
package accounts

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/fakestore/storefront-backend/internal/models"
)

var ErrNotFound = errors.New("account not found")

// Repository is the account list port. Email lookups are case-insensitive;
// email uniqueness is the caller's concern (checked before Create).
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Count(ctx context.Context) (int64, error)
}

// SeedDemoAccounts creates the two demo accounts when the account list is
// empty, mirroring the original storefront's first-run behavior.
func SeedDemoAccounts(ctx context.Context, repo Repository) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	demos := []struct {
		name     string
		email    string
		password string
	}{
		{"Usuario Demo", "demo@fakestore.com", "123456"},
		{"Admin", "admin@fakestore.com", "admin123"},
	}

	for _, d := range demos {
		user := &models.User{
			ID:    uuid.New(),
			Name:  d.name,
			Email: d.email,
		}
		if err := user.SetPassword(d.password); err != nil {
			return err
		}
		if err := repo.Create(ctx, user); err != nil {
			return err
		}
	}

	logrus.WithField("count", len(demos)).Info("Seeded demo accounts")
	return nil
}
