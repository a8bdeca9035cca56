package health

import (
	"context"
	"time"
)

type Checker interface {
	Check(ctx context.Context) (err error)
}

// MakeIsHealthy builds the healthcheck function verifying the vault
// database answers queries.
func MakeIsHealthy(store Checker) func() error {
	return func() (err error) {
		const timeout = 3 * time.Second
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return store.Check(ctx)
	}
}
