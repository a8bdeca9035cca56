// Package config reads, validates and formats all the program settings
// from environment variables.
package config

import (
	"fmt"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Config struct {
	Server    Server
	Health    Health
	Paths     Paths
	Logger    Logger
	Generator Generator
	Search    Search
	Backup    Backup
	Shoutrrr  Shoutrrr
}

func (c *Config) SetDefaults() {
	c.Server.setDefaults()
	c.Health.SetDefaults()
	c.Paths.setDefaults()
	c.Logger.setDefaults()
	c.Generator.setDefaults()
	c.Search.setDefaults()
	c.Backup.setDefaults()
	c.Shoutrrr.setDefaults()
}

func (c Config) Validate() (err error) {
	type validator interface {
		Validate() (err error)
	}
	toValidate := map[string]validator{
		"server":    &c.Server,
		"health":    &c.Health,
		"paths":     &c.Paths,
		"logger":    &c.Logger,
		"generator": &c.Generator,
		"search":    &c.Search,
		"backup":    &c.Backup,
		"shoutrrr":  &c.Shoutrrr,
	}

	for name, v := range toValidate {
		err = v.Validate()
		if err != nil {
			return fmt.Errorf("%s settings: %w", name, err)
		}
	}

	return nil
}

func (c Config) String() string {
	return c.toLinesNode().String()
}

func (c Config) toLinesNode() *gotree.Node {
	node := gotree.New("Settings summary:")
	node.AppendNode(c.Server.toLinesNode())
	node.AppendNode(c.Health.toLinesNode())
	node.AppendNode(c.Paths.toLinesNode())
	node.AppendNode(c.Logger.toLinesNode())
	node.AppendNode(c.Generator.toLinesNode())
	node.AppendNode(c.Search.toLinesNode())
	node.AppendNode(c.Backup.toLinesNode())
	node.AppendNode(c.Shoutrrr.toLinesNode())
	return node
}

func (c *Config) Read(reader *reader.Reader) (err error) {
	err = c.Server.read(reader)
	if err != nil {
		return fmt.Errorf("reading server settings: %w", err)
	}

	c.Health.Read(reader)
	c.Paths.read(reader)

	err = c.Logger.read(reader)
	if err != nil {
		return fmt.Errorf("reading logger settings: %w", err)
	}

	err = c.Generator.read(reader)
	if err != nil {
		return fmt.Errorf("reading generator settings: %w", err)
	}

	c.Search.read(reader)

	err = c.Backup.read(reader)
	if err != nil {
		return fmt.Errorf("reading backup settings: %w", err)
	}

	c.Shoutrrr.read(reader)

	return nil
}
