// Package server implements the vault web interface: the listing,
// entry form, about and image picker pages, password generation and
// vault mutations.
package server

import (
	"strings"

	"github.com/qdm12/goservices/httpserver"
)

type Settings struct {
	Address   string
	RootURL   string
	UIDir     string
	Store     Store
	Generator PasswordGenerator
	Clipboard Clipboard
	// Searcher may be nil when the image picker is not configured.
	Searcher ImageSearcher
	Logger   Logger
}

func New(settings Settings) (server *httpserver.Server, err error) {
	settings.RootURL = strings.TrimSuffix(settings.RootURL, "/")
	handler := newHandler(settings)
	name := "http server"
	return httpserver.New(httpserver.Settings{
		Handler: handler,
		Name:    &name,
		Address: &settings.Address,
		Logger:  settings.Logger,
	})
}
