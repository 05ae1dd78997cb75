package types

import "context"

/*
Loader is the contract between a fast front store and a durable back store.

  - Load is called when the front misses. The back store is asked for the raw entry.
  - Put and Delete are called by write policies to propagate changes.
  - List and Purge let namespaced views enumerate and wipe what the back store holds.

Values are the raw serialized entries; a Loader never interprets them.
*/
type Loader interface {
	Load(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) ([]string, error)
	Purge(ctx context.Context) error
}
