package config

import (
	"errors"
	"fmt"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Generator struct {
	// MasterPassword seeds every generated site password.
	// It is required and has no default.
	MasterPassword string
	PasswordLength *int
}

func (g *Generator) setDefaults() {
	const defaultLength = 20
	g.PasswordLength = gosettings.DefaultPointer(g.PasswordLength, defaultLength)
}

var (
	ErrMasterPasswordNotSet = errors.New("master password is not set")
	ErrPasswordLengthBad    = errors.New("password length is not valid")
)

func (g Generator) Validate() (err error) {
	if g.MasterPassword == "" {
		return fmt.Errorf("%w: set MASTER_PASSWORD", ErrMasterPasswordNotSet)
	}

	// A SHA-256 digest base64-encodes to 43 characters.
	const minLength, maxLength = 4, 43
	if *g.PasswordLength < minLength || *g.PasswordLength > maxLength {
		return fmt.Errorf("%w: %d must be between %d and %d",
			ErrPasswordLengthBad, *g.PasswordLength, minLength, maxLength)
	}

	return nil
}

func (g Generator) String() string {
	return g.toLinesNode().String()
}

func (g Generator) toLinesNode() *gotree.Node {
	node := gotree.New("Generator")
	masterPassword := "[not set]"
	if g.MasterPassword != "" {
		masterPassword = "[set]"
	}
	node.Appendf("Master password: %s", masterPassword)
	node.Appendf("Password length: %d", *g.PasswordLength)
	return node
}

func (g *Generator) read(reader *reader.Reader) (err error) {
	g.MasterPassword = reader.String("MASTER_PASSWORD")

	g.PasswordLength, err = reader.IntPtr("PASSWORD_LENGTH")
	if err != nil {
		return err
	}

	return nil
}
