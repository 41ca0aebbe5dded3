package idtree

import (
	"encoding/binary"
	"hash/maphash"
)

// Equal reports whether two trees are structurally equal: their arenas must
// be element-wise equal, topology links and payloads alike. Node IDs are
// arena indices, so equality is sensitive to allocation order, not only to
// the reachable tree shape.
func Equal[T comparable](a, b *Tree[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares payloads with eq, allowing
// non-comparable payload types.
func EqualFunc[T any](a, b *Tree[T], eq func(a, b T) bool) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if len(a.nodes) != len(b.nodes) {
		return false
	}
	for i := range a.nodes {
		x, y := &a.nodes[i], &b.nodes[i]
		if x.parent != y.parent ||
			x.prevSibling != y.prevSibling || x.nextSibling != y.nextSibling ||
			x.firstChild != y.firstChild || x.lastChild != y.lastChild {
			return false
		}
		if !eq(x.value, y.value) {
			return false
		}
	}
	return true
}

// Hash returns a hash of the tree consistent with Equal: equal trees hash to
// the same value for the same seed.
func Hash[T comparable](seed maphash.Seed, t *Tree[T]) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	for i := range t.nodes {
		n := &t.nodes[i]
		put(uint64(n.parent))
		put(uint64(n.prevSibling))
		put(uint64(n.nextSibling))
		put(uint64(n.firstChild))
		put(uint64(n.lastChild))
		put(maphash.Comparable(seed, n.value))
	}
	return h.Sum64()
}
