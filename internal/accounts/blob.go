// internal/accounts/blob.go
package accounts

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fakestore/storefront-backend/internal/models"
	"github.com/fakestore/storefront-backend/internal/storage"
)

// accountRecord is the persisted account shape. Password holds the bcrypt
// hash, never plaintext.
type accountRecord struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Password  string     `json:"password"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin"`
}

// BlobRepository keeps the account list as one JSON blob in a Store, the way
// the original storefront kept its user list. It is the default when no
// database is configured.
type BlobRepository struct {
	store storage.Store
	mu    sync.Mutex
}

func NewBlobRepository(store storage.Store) *BlobRepository {
	return &BlobRepository{store: store}
}

func (r *BlobRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if strings.EqualFold(rec.Email, email) {
			return recordToUser(rec)
		}
	}
	return nil, ErrNotFound
}

func (r *BlobRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.ID == id.String() {
			return recordToUser(rec)
		}
	}
	return nil, ErrNotFound
}

func (r *BlobRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return err
	}
	records = append(records, userToRecord(user))
	return r.save(ctx, records)
}

func (r *BlobRepository) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i, rec := range records {
		if rec.ID == user.ID.String() {
			records[i] = userToRecord(user)
			return r.save(ctx, records)
		}
	}
	return ErrNotFound
}

func (r *BlobRepository) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return 0, err
	}
	return int64(len(records)), nil
}

func (r *BlobRepository) load(ctx context.Context) ([]accountRecord, error) {
	var records []accountRecord
	if _, err := storage.GetJSON(ctx, r.store, storage.KeyAccounts, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *BlobRepository) save(ctx context.Context, records []accountRecord) error {
	return storage.PutJSON(ctx, r.store, storage.KeyAccounts, records)
}

func userToRecord(user *models.User) accountRecord {
	return accountRecord{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Password:  user.PasswordHash,
		CreatedAt: user.CreatedAt,
		LastLogin: user.LastLoginAt,
	}
}

func recordToUser(rec accountRecord) (*models.User, error) {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return nil, err
	}
	return &models.User{
		ID:           id,
		Name:         rec.Name,
		Email:        rec.Email,
		PasswordHash: rec.Password,
		CreatedAt:    rec.CreatedAt,
		LastLoginAt:  rec.LastLogin,
	}, nil
}
