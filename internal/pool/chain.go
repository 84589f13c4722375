package pool

import (
	"fmt"
	"strings"

	"github.com/riverglade/hashlab/internal/metrics"
)

// Chain - One separate-chaining bucket. It holds its owning NodePool, the index of its head
// node in that pool's arena, and its size; the nodes themselves, and the freelist they
// return to on Clear, live entirely in the pool.
type Chain struct {
	pool *NodePool
	head int32
	size int
}

// NewChain - Returns a Chain backed by the given pool. Multiple chains may share one pool.
func NewChain(pool *NodePool) *Chain {
	return &Chain{pool: pool, head: none}
}

// Size - Returns the number of keys currently linked in this chain
func (C *Chain) Size() int {
	return C.size
}

// IsEmpty - Reports whether the chain has no keys
func (C *Chain) IsEmpty() bool {
	return C.head == none
}

// Insert - Inserts key at the head of the chain, pulling one node from the owning pool.
// Every existing node visited while walking the chain (there is no search for an
// existing key; a duplicate key is simply inserted again) counts as one comparison,
// mirroring chained search's notion of traversal cost. If the chain was non-empty
// before the insert, one collision is recorded. Returns false, leaving the chain and
// metrics for this key unmodified beyond the comparisons and the collision already
// counted, if the pool has no free node left.
func (C *Chain) Insert(key int, m *metrics.Metrics) bool {
	wasNonEmpty := C.head != none

	cur := C.head
	for cur != none {
		m.AddComparison()
		cur = C.pool.arena[cur].next
	}

	if wasNonEmpty {
		m.AddCollision()
	}

	idx, ok := C.pool.pop()
	if !ok {
		return false
	}

	C.pool.arena[idx] = chainNode{key: key, next: C.head}
	C.head = idx
	C.size++
	m.AddInsertion()

	return true
}

// Search - Walks the chain looking for key, counting one comparison per node visited,
// and reports whether it was found.
func (C *Chain) Search(key int, m *metrics.Metrics) bool {
	cur := C.head
	for cur != none {
		m.AddComparison()
		node := C.pool.arena[cur]
		if node.key == key {
			return true
		}
		cur = node.next
	}
	return false
}

// Lookup - Identical walk to Search but never touches metrics
func (C *Chain) Lookup(key int) bool {
	cur := C.head
	for cur != none {
		node := C.pool.arena[cur]
		if node.key == key {
			return true
		}
		cur = node.next
	}
	return false
}

// Clear - Returns every node of this chain to the owning pool and empties the chain
func (C *Chain) Clear() {
	cur := C.head
	for cur != none {
		next := C.pool.arena[cur].next
		C.pool.push(cur)
		cur = next
	}
	C.head = none
	C.size = 0
}

// String - Renders the chain head to tail as "k1 -> k2 -> ... -> None"
func (C *Chain) String() string {
	var b strings.Builder
	cur := C.head
	for cur != none {
		node := C.pool.arena[cur]
		fmt.Fprintf(&b, "%d -> ", node.key)
		cur = node.next
	}
	b.WriteString("None")
	return b.String()
}
