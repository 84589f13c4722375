package engine

import (
	"github.com/riverglade/hashlab/internal/metrics"
	"github.com/riverglade/hashlab/internal/pool"
)

// ChainingInsert - Inserts key into the chain at index, delegating the traversal,
// collision accounting, and node allocation to the Chain itself. Returns false if the
// owning pool had no node left to give.
func ChainingInsert(chains []*pool.Chain, key int, index int64, m *metrics.Metrics) bool {
	return chains[index].Insert(key, m)
}

// ChainingSearch - Searches the chain at index for key
func ChainingSearch(chains []*pool.Chain, key int, index int64, m *metrics.Metrics) bool {
	return chains[index].Search(key, m)
}

// ChainingLookup - Searches the chain at index for key without touching metrics
func ChainingLookup(chains []*pool.Chain, key int, index int64) bool {
	return chains[index].Lookup(key)
}
