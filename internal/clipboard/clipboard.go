// Package clipboard wraps the OS clipboard used to hand generated
// passwords to the user without ever rendering them.
package clipboard

import (
	"github.com/atotto/clipboard"
)

// placeholder overwrites any password left on the clipboard.
const placeholder = "***"

type Clipboard struct {
	// Mockable function for tests.
	writeAll func(text string) error
}

func New() *Clipboard {
	return &Clipboard{
		writeAll: clipboard.WriteAll,
	}
}

// Copy writes text to the system clipboard and reports whether
// it succeeded. Headless systems without a clipboard report false.
func (c *Clipboard) Copy(text string) (ok bool) {
	err := c.writeAll(text)
	return err == nil
}

// Clear overwrites the clipboard with a placeholder, as a best effort
// privacy measure. Failures are ignored.
func (c *Clipboard) Clear() {
	_ = c.writeAll(placeholder)
}
