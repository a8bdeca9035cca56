package config

import (
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Backup struct {
	// Period is the duration between two backups of the vault
	// database. Zero disables backups.
	Period    time.Duration
	Directory string
}

func (b *Backup) setDefaults() {
	b.Directory = gosettings.DefaultComparable(b.Directory, "./data")
}

func (b Backup) Validate() (err error) {
	return nil
}

func (b Backup) String() string {
	return b.toLinesNode().String()
}

func (b Backup) toLinesNode() *gotree.Node {
	if b.Period == 0 {
		return gotree.New("Backup: disabled")
	}
	node := gotree.New("Backup")
	node.Appendf("Period: %s", b.Period)
	node.Appendf("Directory: %s", b.Directory)
	return node
}

func (b *Backup) read(reader *reader.Reader) (err error) {
	b.Period, err = reader.Duration("BACKUP_PERIOD")
	if err != nil {
		return err
	}

	b.Directory = reader.String("BACKUP_DIRECTORY")

	return nil
}
