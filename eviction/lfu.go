package eviction

// lfuNode tracks how often a key was read and when it was first stored.
type lfuNode struct {
	// key is the storage key this node stands for.
	key string

	// freq starts at 1 on insert and grows with every read.
	freq int

	// seq is the insert order, used to break frequency ties.
	seq uint64
}

/*
lfu evicts the least frequently read key.

Evict scans every tracked key; ties go to the oldest insert.
A rewrite of a tracked key keeps its frequency.
*/
type lfu struct {

	// nodes indexes every tracked key.
	nodes map[string]*lfuNode

	// next is the last insert sequence handed out.
	next uint64
}

// newLFU creates an empty tracker.
func newLFU() *lfu {
	return &lfu{nodes: make(map[string]*lfuNode)}
}

// OnGet counts one read of k. Unknown keys are ignored.
func (l *lfu) OnGet(k string) {
	if n, ok := l.nodes[k]; ok {
		n.freq++
	}
}

// OnPut starts tracking k with frequency 1. Already tracked keys are left alone.
func (l *lfu) OnPut(k string) {
	if _, ok := l.nodes[k]; ok {
		return
	}
	l.next++
	l.nodes[k] = &lfuNode{key: k, freq: 1, seq: l.next}
}

// Evict drops and returns the least frequently read key, or "" when nothing is tracked.
func (l *lfu) Evict() string {
	var victim *lfuNode
	for _, n := range l.nodes {
		if victim == nil || n.freq < victim.freq || (n.freq == victim.freq && n.seq < victim.seq) {
			victim = n
		}
	}
	if victim == nil {
		return ""
	}
	delete(l.nodes, victim.key)
	return victim.key
}

// Remove stops tracking k.
func (l *lfu) Remove(k string) {
	delete(l.nodes, k)
}
