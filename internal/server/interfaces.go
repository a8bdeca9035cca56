package server

import (
	"context"

	"github.com/pwdhash/vault/internal/search"
	"github.com/pwdhash/vault/internal/vault"
)

type Store interface {
	ListAll(ctx context.Context) (keys []vault.Key, err error)
	FindByName(ctx context.Context, name string) (key vault.Key, found bool, err error)
	Upsert(ctx context.Context, key vault.Key) (err error)
	DeleteByName(ctx context.Context, name string) (err error)
}

type PasswordGenerator interface {
	Generate(domain string) (password string)
}

type Clipboard interface {
	// Copy writes text to the clipboard and reports whether it worked.
	Copy(text string) (ok bool)
	// Clear overwrites the clipboard with a placeholder.
	Clear()
}

type ImageSearcher interface {
	Page(ctx context.Context, query string, start int) (page search.Page, err error)
}

type Logger interface {
	Info(s string)
	Warn(s string)
	Error(s string)
}
