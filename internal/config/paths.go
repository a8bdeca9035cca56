package config

import (
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Paths struct {
	// DataDir is the directory holding the vault database.
	DataDir *string
	// UIDir is the directory holding the HTML templates and
	// static assets.
	UIDir *string
}

func (p *Paths) setDefaults() {
	p.DataDir = gosettings.DefaultPointer(p.DataDir, "./data")
	p.UIDir = gosettings.DefaultPointer(p.UIDir, "./ui")
}

func (p Paths) Validate() (err error) {
	return nil
}

func (p Paths) String() string {
	return p.toLinesNode().String()
}

func (p Paths) toLinesNode() *gotree.Node {
	node := gotree.New("Paths")
	node.Appendf("Data directory: %s", *p.DataDir)
	node.Appendf("UI directory: %s", *p.UIDir)
	return node
}

func (p *Paths) read(reader *reader.Reader) {
	p.DataDir = reader.Get("DATADIR")
	p.UIDir = reader.Get("UIDIR")
}
