package eviction

import "fmt"

/*
This file defines how a bounded storage back-end picks a victim when it runs out of room.
*/

/*
Policy tracks key usage for one store and names the next key to drop.
Policies are not goroutine-safe; the owning store serializes calls.
*/
type Policy interface {

	// OnGet records a read of key. LRU and LFU care; FIFO ignores it.
	OnGet(string)

	// OnPut records a write of key.
	OnPut(string)

	// Remove forgets key after an explicit delete.
	Remove(string)

	// Evict picks a victim, forgets it and returns it. "" means nothing is tracked.
	Evict() string
}

// PolicyType names a supported eviction strategy.
type PolicyType string

const (
	// None disables eviction: a full store rejects writes.
	None PolicyType = ""

	// LRU drops the key that was read or written least recently.
	LRU PolicyType = "LRU"

	// LFU drops the key read the fewest times; ties go to the oldest key.
	LFU PolicyType = "LFU"

	// FIFO drops the oldest inserted key regardless of reads.
	FIFO PolicyType = "FIFO"
)

// ParsePolicyType validates a configured policy name.
func ParsePolicyType(name string) (PolicyType, error) {
	switch t := PolicyType(name); t {
	case None, LRU, LFU, FIFO:
		return t, nil
	default:
		return None, fmt.Errorf("unknown eviction policy %q", name)
	}
}

// NewEvictionPolicy creates the policy for t. None yields nil.
func NewEvictionPolicy(t PolicyType) Policy {
	switch t {
	case LRU:
		return newLRU()
	case LFU:
		return newLFU()
	case FIFO:
		return newFIFO()
	default:
		return nil
	}
}
