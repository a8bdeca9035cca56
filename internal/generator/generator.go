// Package generator derives site passwords from a master password
// and a site domain. The derivation is deterministic so the same
// (master password, domain) pair always yields the same password.
package generator

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

type Settings struct {
	MasterPassword string
	// Length is the number of characters of each generated password.
	Length int
}

type Generator struct {
	masterPassword []byte
	length         int
}

func New(settings Settings) *Generator {
	return &Generator{
		masterPassword: []byte(settings.MasterPassword),
		length:         settings.Length,
	}
}

// Generate derives the password for the given domain.
func (g *Generator) Generate(domain string) (password string) {
	mac := hmac.New(sha256.New, g.masterPassword)
	_, _ = mac.Write([]byte(domain))
	digest := mac.Sum(nil)

	encoded := base64.RawStdEncoding.EncodeToString(digest)
	if len(encoded) > g.length {
		encoded = encoded[:g.length]
	}
	return encoded
}
