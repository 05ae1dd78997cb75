package types

// This file defines how the cache reports what it is doing.

/*
Metrics lists the events the cache emits during its lifecycle.
The cache calls these methods whenever something happens; the implementation decides
where the numbers go (Prometheus in the server, counters in tests).
*/
type Metrics interface {

	// Hit is called when a lookup returns a stored, unexpired value.
	Hit()

	// Miss is called when a lookup finds nothing usable.
	Miss()

	// Expire is called when a lookup finds an entry past its TTL and removes it.
	Expire()

	// Eviction is called when a storage back-end drops a key to stay under its quota.
	Eviction()

	// Failure is called when a storage or serialization step fails.
	// op names the step: "set", "get", "decode", "remove", "clear".
	Failure(op string)
}

// NoopMetrics ignores every event. It is the default when no Metrics is configured.
type NoopMetrics struct{}

func (NoopMetrics) Hit()           {}
func (NoopMetrics) Miss()          {}
func (NoopMetrics) Expire()        {}
func (NoopMetrics) Eviction()      {}
func (NoopMetrics) Failure(string) {}
