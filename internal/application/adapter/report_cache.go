// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// ReportCache caches derived report payloads (trial balances, matrices)
// keyed by report name and period. It is a pure cache: the journal lines
// and transactions remain the source of truth, and every writer that
// touches a year invalidates it.
type ReportCache interface {
	// Get unmarshals the cached payload for key into dest. It returns
	// false when the key is absent; a broken payload is treated as absent.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set stores the payload for key with the given TTL.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// InvalidateYear removes every cached report that covers the year.
	InvalidateYear(ctx context.Context, year int) error
}
