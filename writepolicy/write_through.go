package writepolicy

import (
	"context"

	"github.com/krisalay/simple-nav/types"
)

// WriteThroughPolicy forwards every change to the back store synchronously.
type WriteThroughPolicy struct {
	store  types.Loader
	logger types.Logger
}

// NewWriteThroughPolicy creates a write-through policy. A nil logger uses the standard logger.
func NewWriteThroughPolicy(store types.Loader, logger types.Logger) *WriteThroughPolicy {
	if logger == nil {
		logger = types.DefaultLogger()
	}
	return &WriteThroughPolicy{store: store, logger: logger}
}

func (w *WriteThroughPolicy) OnWrite(ctx context.Context, key, value string) {
	if err := w.store.Put(ctx, key, value); err != nil {
		w.logger.Printf("write-through put failed key=%q: %v", key, err)
	}
}

func (w *WriteThroughPolicy) OnRemove(ctx context.Context, key string) {
	if err := w.store.Delete(ctx, key); err != nil {
		w.logger.Printf("write-through delete failed key=%q: %v", key, err)
	}
}

// Flush is a no-op: nothing is ever pending.
func (w *WriteThroughPolicy) Flush() {}

// Close is a no-op: there is no worker to stop.
func (w *WriteThroughPolicy) Close() {}
