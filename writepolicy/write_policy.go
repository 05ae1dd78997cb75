package writepolicy

import "context"

/*
WritePolicy decides how changes made to a fast front store reach the durable back store.

  - Write-through: the back store is updated before the write returns.
  - Write-back: the change is queued and applied by a background worker.

Failures are logged, never returned: the front store already holds the change
and the cache treats persistence as best effort.
*/
type WritePolicy interface {

	// OnWrite propagates a stored value.
	OnWrite(ctx context.Context, key, value string)

	// OnRemove propagates a delete.
	OnRemove(ctx context.Context, key string)

	// Flush blocks until every change accepted so far has reached the back store.
	Flush()

	// Close flushes and releases any background workers. The policy is unusable afterwards.
	Close()
}
