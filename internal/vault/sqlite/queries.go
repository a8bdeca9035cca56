package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pwdhash/vault/internal/vault"
)

// ListAll returns all keys in the vault sorted by name ascending.
func (db *Database) ListAll(ctx context.Context) (keys []vault.Key, err error) {
	var models []keyModel
	err = db.bun.NewSelect().
		Model(&models).
		Order("name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing keys: %w", err)
	}

	keys = make([]vault.Key, len(models))
	for i, model := range models {
		keys[i] = modelToKey(model)
	}
	return keys, nil
}

// FindByName returns the key with the given name, with found set to
// false if no key has this name.
func (db *Database) FindByName(ctx context.Context, name string) (
	key vault.Key, found bool, err error) {
	var model keyModel
	err = db.bun.NewSelect().
		Model(&model).
		Where("name = ?", name).
		Limit(1).
		Scan(ctx)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return key, false, nil
	case err != nil:
		return key, false, fmt.Errorf("finding key %q: %w", name, err)
	}
	return modelToKey(model), true, nil
}

// Upsert inserts the key, or overwrites the domain and image of the
// existing row sharing its name, so names stay unique.
func (db *Database) Upsert(ctx context.Context, key vault.Key) (err error) {
	model := keyToModel(key)
	_, err = db.bun.NewInsert().
		Model(&model).
		On("CONFLICT (name) DO UPDATE").
		Set("domain = EXCLUDED.domain").
		Set("image = EXCLUDED.image").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upserting key %q: %w", key.Name, err)
	}
	return nil
}

// DeleteByName removes the key with the given name. It is a no-op
// when no key has this name.
func (db *Database) DeleteByName(ctx context.Context, name string) (err error) {
	_, err = db.bun.NewDelete().
		Model((*keyModel)(nil)).
		Where("name = ?", name).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("deleting key %q: %w", name, err)
	}
	return nil
}
