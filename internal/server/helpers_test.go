package server

import (
	"context"

	"github.com/pwdhash/vault/internal/search"
)

type fakeClipboard struct {
	copied  []string
	copyOK  bool
	cleared int
}

func (c *fakeClipboard) Copy(text string) (ok bool) {
	c.copied = append(c.copied, text)
	return c.copyOK
}

func (c *fakeClipboard) Clear() {
	c.cleared++
}

type fakeGenerator struct{}

func (g *fakeGenerator) Generate(domain string) (password string) {
	return "pw-" + domain
}

type fakeSearcher struct {
	query string
	start int
	page  search.Page
	err   error
}

func (s *fakeSearcher) Page(_ context.Context, query string, start int) (
	page search.Page, err error) {
	s.query = query
	s.start = start
	return s.page, s.err
}

type noopLogger struct{}

func (l noopLogger) Info(string)  {}
func (l noopLogger) Warn(string)  {}
func (l noopLogger) Error(string) {}
