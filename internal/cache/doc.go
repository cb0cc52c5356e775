// Package cache provides a recency-ordered map used to track glyph residency.
//
// LRU[K, V] pairs a hash index with an intrusive doubly linked list so that
// lookup, promotion to most-recently-used, and removal of the least recently
// used entry are all O(1). Iteration order never depends on Go map ordering.
//
//	c := cache.NewLRU[rune, int]()
//	c.Put('a', 1)
//	c.Put('b', 2)
//	c.Get('a')               // 'a' becomes most recently used
//	k, _, _ := c.RemoveOldest() // k == 'b'
//
// # Thread Safety
//
// LRU is not safe for concurrent use. It is owned by a single text context
// and mutated from the frame loop only.
package cache
