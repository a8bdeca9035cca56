package config

import (
	"errors"
	"fmt"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Search struct {
	// APIKey is the Google API key for the Custom Search API.
	// Leaving it empty disables the image picker.
	APIKey string
	// EngineID is the Programmable Search Engine identifier.
	EngineID string
}

func (s *Search) setDefaults() {}

var ErrSearchPartiallySet = errors.New("search settings are partially set")

func (s Search) Validate() (err error) {
	if (s.APIKey == "") != (s.EngineID == "") {
		return fmt.Errorf("%w: set both SEARCH_API_KEY and SEARCH_ENGINE_ID, "+
			"or neither to disable the image picker", ErrSearchPartiallySet)
	}

	return nil
}

// Enabled is true when the image picker is configured.
func (s Search) Enabled() bool {
	return s.APIKey != ""
}

func (s Search) String() string {
	return s.toLinesNode().String()
}

func (s Search) toLinesNode() *gotree.Node {
	if !s.Enabled() {
		return gotree.New("Image search: disabled")
	}
	node := gotree.New("Image search")
	node.Appendf("API key: [set]")
	node.Appendf("Engine ID: %s", s.EngineID)
	return node
}

func (s *Search) read(reader *reader.Reader) {
	s.APIKey = reader.String("SEARCH_API_KEY")
	s.EngineID = reader.String("SEARCH_ENGINE_ID")
}
