package sqlite

import (
	"github.com/uptrace/bun"

	"github.com/pwdhash/vault/internal/vault"
)

// keyModel maps the keys table for Bun queries.
type keyModel struct {
	bun.BaseModel `bun:"table:keys"`
	Name          string `bun:"name,pk"`
	Domain        string `bun:"domain,notnull"`
	Image         string `bun:"image,notnull"`
}

func modelToKey(m keyModel) vault.Key {
	return vault.Key{
		Name:   m.Name,
		Domain: m.Domain,
		Image:  m.Image,
	}
}

func keyToModel(key vault.Key) keyModel {
	return keyModel{
		Name:   key.Name,
		Domain: key.Domain,
		Image:  key.Image,
	}
}
