// Package bimap provides a map that can be queried in both directions.
package bimap

// BiMap is a one-to-one mapping between keys and values. Every mutation keeps
// the forward and inverse maps consistent: a value belongs to at most one key.
// It is not safe for concurrent use.
type BiMap[K comparable, V comparable] struct {
	forward map[K]V
	inverse map[V]K
	order   []K
}

// New returns an empty BiMap.
func New[K comparable, V comparable]() *BiMap[K, V] {
	return &BiMap[K, V]{
		forward: make(map[K]V),
		inverse: make(map[V]K),
	}
}

// Put maps k to v. Any previous value of k and any previous key of v are
// removed first.
func (b *BiMap[K, V]) Put(k K, v V) {
	if old, ok := b.forward[k]; ok {
		delete(b.inverse, old)
	} else {
		b.order = append(b.order, k)
	}

	if oldKey, ok := b.inverse[v]; ok && oldKey != k {
		b.Delete(oldKey)
	}

	b.forward[k] = v
	b.inverse[v] = k
}

// Get returns the value mapped to k.
func (b *BiMap[K, V]) Get(k K) (V, bool) {
	v, ok := b.forward[k]
	return v, ok
}

// Inverse returns the key mapped to v.
func (b *BiMap[K, V]) Inverse(v V) (K, bool) {
	k, ok := b.inverse[v]
	return k, ok
}

// Delete removes k and its value.
func (b *BiMap[K, V]) Delete(k K) {
	v, ok := b.forward[k]
	if !ok {
		return
	}

	delete(b.forward, k)
	delete(b.inverse, v)

	for i, key := range b.order {
		if key == k {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// DeleteValue removes v and its key.
func (b *BiMap[K, V]) DeleteValue(v V) {
	if k, ok := b.inverse[v]; ok {
		b.Delete(k)
	}
}

// Keys returns the keys in insertion order.
func (b *BiMap[K, V]) Keys() []K {
	keys := make([]K, len(b.order))
	copy(keys, b.order)

	return keys
}

// Len returns the number of pairs.
func (b *BiMap[K, V]) Len() int { return len(b.forward) }

// Clear removes every pair.
func (b *BiMap[K, V]) Clear() {
	clear(b.forward)
	clear(b.inverse)
	b.order = b.order[:0]
}
