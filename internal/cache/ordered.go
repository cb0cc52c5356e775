package cache

// LRU is a map that remembers the order in which its entries were last used.
// It has no capacity of its own: the owner decides when to evict by calling
// RemoveOldest, which keeps eviction policy (atlas space, not entry count)
// outside the container.
type LRU[K comparable, V any] struct {
	entries map[K]*lruNode[K, V]
	order   lruList[K, V]
}

// NewLRU creates an empty recency-ordered map.
func NewLRU[K comparable, V any]() *LRU[K, V] {
	return &LRU[K, V]{
		entries: make(map[K]*lruNode[K, V]),
	}
}

// Get returns the value for key and marks it most recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	node, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.MoveToFront(node)
	return node.value, true
}

// Peek returns the value for key without touching its recency.
func (c *LRU[K, V]) Peek(key K) (V, bool) {
	node, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	return node.value, true
}

// Contains reports whether key is present without touching its recency.
func (c *LRU[K, V]) Contains(key K) bool {
	_, ok := c.entries[key]
	return ok
}

// Put stores value under key as the most recently used entry.
// An existing entry is replaced and promoted.
func (c *LRU[K, V]) Put(key K, value V) {
	if node, ok := c.entries[key]; ok {
		node.value = value
		c.order.MoveToFront(node)
		return
	}
	c.entries[key] = c.order.PushFront(key, value)
}

// Remove deletes key. Returns the removed value and true if it was present.
func (c *LRU[K, V]) Remove(key K) (V, bool) {
	node, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.Remove(node)
	delete(c.entries, key)
	return node.value, true
}

// Oldest returns the least recently used entry without removing it.
func (c *LRU[K, V]) Oldest() (K, V, bool) {
	if c.order.tail == nil {
		var (
			zk K
			zv V
		)
		return zk, zv, false
	}
	return c.order.tail.key, c.order.tail.value, true
}

// RemoveOldest removes and returns the least recently used entry.
// Returns false if the map is empty.
func (c *LRU[K, V]) RemoveOldest() (K, V, bool) {
	node := c.order.tail
	if node == nil {
		var (
			zk K
			zv V
		)
		return zk, zv, false
	}
	c.order.Remove(node)
	delete(c.entries, node.key)
	return node.key, node.value, true
}

// Keys returns the keys from most to least recently used.
func (c *LRU[K, V]) Keys() []K {
	keys := make([]K, 0, c.order.len)
	for n := c.order.head; n != nil; n = n.next {
		keys = append(keys, n.key)
	}
	return keys
}

// Len returns the number of entries.
func (c *LRU[K, V]) Len() int {
	return c.order.len
}

// Clear removes all entries.
func (c *LRU[K, V]) Clear() {
	c.entries = make(map[K]*lruNode[K, V])
	c.order.Clear()
}
