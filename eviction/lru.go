package eviction

// lruNode is one key in the recency list.
type lruNode struct {
	// key is the storage key this node stands for.
	key string

	// prev points towards the most recently used end.
	prev *lruNode

	// next points towards the least recently used end.
	next *lruNode
}

/*
lru keeps keys in a doubly-linked list ordered from most to least recently used.

Every operation is O(1): the map finds the node, the list gives the order.
*/
type lru struct {

	// nodes indexes every tracked key.
	nodes map[string]*lruNode

	// head is the most recently used key, tail the least.
	head *lruNode
	tail *lruNode
}

// newLRU creates an empty tracker.
func newLRU() *lru {
	return &lru{nodes: make(map[string]*lruNode)}
}

// OnGet moves k to the front. Unknown keys are ignored.
func (l *lru) OnGet(k string) {
	if n, ok := l.nodes[k]; ok {
		l.unlink(n)
		l.pushFront(n)
	}
}

// OnPut tracks a new key as most recent. A rewrite counts as a use.
func (l *lru) OnPut(k string) {
	if n, ok := l.nodes[k]; ok {
		l.unlink(n)
		l.pushFront(n)
		return
	}
	n := &lruNode{key: k}
	l.nodes[k] = n
	l.pushFront(n)
}

// Evict drops and returns the least recently used key, or "" when nothing is tracked.
func (l *lru) Evict() string {
	if l.tail == nil {
		return ""
	}
	k := l.tail.key
	l.unlink(l.tail)
	delete(l.nodes, k)
	return k
}

// Remove stops tracking k.
func (l *lru) Remove(k string) {
	if n, ok := l.nodes[k]; ok {
		l.unlink(n)
		delete(l.nodes, k)
	}
}

// pushFront makes n the head. n must not be linked.
func (l *lru) pushFront(n *lruNode) {
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
}

// unlink detaches n from the list, fixing head and tail when n was at either end.
func (l *lru) unlink(n *lruNode) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
}
