package vault

import (
	"context"
)

// Service wraps a Store so it can take part in the services
// start/stop sequence, closing the database on stop.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{
		store: store,
	}
}

func (s *Service) String() string {
	return "vault database"
}

func (s *Service) Start(_ context.Context) (_ <-chan error, err error) {
	return nil, nil //nolint:nilnil
}

func (s *Service) Stop() (err error) {
	return s.store.Close()
}
