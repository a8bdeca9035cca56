package vault

import "context"

//go:generate mockgen -destination=mock_$GOPACKAGE/store.go . Store

// Store gives access to the persisted vault of site keys.
// Lookups signal absence with the found boolean, never with an error.
type Store interface {
	// ListAll returns all keys sorted by name ascending.
	ListAll(ctx context.Context) (keys []Key, err error)
	// FindByName returns the key with the given name, or found false
	// if there is none.
	FindByName(ctx context.Context, name string) (key Key, found bool, err error)
	// Upsert inserts the key, or overwrites the domain and image of the
	// existing key with the same name.
	Upsert(ctx context.Context, key Key) (err error)
	// DeleteByName removes the key with the given name.
	// Deleting an absent name is not an error.
	DeleteByName(ctx context.Context, name string) (err error)
	// Check verifies the underlying database is reachable.
	Check(ctx context.Context) (err error)
	Close() (err error)
}
