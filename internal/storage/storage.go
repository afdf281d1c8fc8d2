// internal/storage/storage.go
package storage

import (
	"context"
	"encoding/json"
	"errors"
)

// Keys for the string-keyed JSON blobs holding per-profile state. The names
// follow the browser storage keys of the original storefront.
const (
	KeyCart      = "fakeStoreCart"
	KeyFavorites = "fakeStoreFavorites"
	KeyViewed    = "fakeStoreViewed"
	KeyCompare   = "fakeStoreCompare"
	KeyRatings   = "fakeStoreRatings"
	KeyCoupon    = "fakeStoreCoupon"
	KeySession   = "fakeStoreSession"
	KeyAccounts  = "fakeStoreUsers"
)

// ErrNotFound is returned by Get for absent keys. Callers treat absence as
// "empty/default", never as a failure.
var ErrNotFound = errors.New("storage: key not found")

// Store is a string-keyed JSON blob store. Writes are synchronous: when Set
// returns, the value is persisted as far as the backend guarantees.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// GetJSON reads and unmarshals the blob at key into v. It reports false with
// a nil error when the key is absent, leaving v untouched.
func GetJSON(ctx context.Context, s Store, key string, v interface{}) (bool, error) {
	data, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, err
	}
	return true, nil
}

// PutJSON marshals v and writes it at key.
func PutJSON(ctx context.Context, s Store, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, data)
}
