// This file defines how cache entries expire over time.

package expiration

import (
	"time"

	"github.com/krisalay/simple-nav/types"
)

/*
Strategy decides when a stored entry stops being visible.
The cache never asks "how old is this"; it asks the strategy, so the rule can be swapped in tests.
*/
type Strategy interface {

	// IsExpired reports whether the entry must be treated as absent at now.
	IsExpired(*types.CacheEntry, time.Time) bool

	// OnWrite stamps a freshly built entry before it is stored.
	OnWrite(*types.CacheEntry, time.Time)
}
