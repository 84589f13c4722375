// Package engine implements the two collision-resolution algorithms offered by the core:
// open addressing (linear or quadratic probing) and separate chaining. Both are pure with
// respect to everything except the storage and metrics they are handed; neither engine
// owns the hash algorithm, the table configuration, or the pool.
package engine

import (
	"math"

	"github.com/riverglade/hashlab/internal/metrics"
)

// Slot - One cell of open-addressing storage
type Slot struct {
	Key      int
	Occupied bool
}

// probeIndex - Returns the candidate index for probe attempt i given a home index and a
// table size n. Linear probing advances by one slot per attempt; quadratic probing advances
// by c1*i + c2*i^2 slots, floored and reduced to a non-negative index.
func probeIndex(home, i, n int64, quadratic bool, c1, c2 float64) int64 {
	if !quadratic {
		idx := (home + i) % n
		if idx < 0 {
			idx += n
		}
		return idx
	}

	v := float64(home) + c1*float64(i) + c2*float64(i)*float64(i)
	idx := int64(math.Floor(v)) % n
	if idx < 0 {
		idx += n
	}
	return idx
}

// ProbingInsert - Inserts key into storage using open addressing starting from home.
// Walks probe attempts 0..n-1: each attempt counts one comparison; an occupied slot at
// attempt zero counts a primary collision, at any later attempt a secondary collision,
// followed in both cases by one probe. Returns true once an empty slot is found and
// written, or false if all n slots were occupied (the table is full for this key).
func ProbingInsert(storage []Slot, key int, home int64, quadratic bool, c1, c2 float64, m *metrics.Metrics) bool {
	n := int64(len(storage))
	for i := int64(0); i < n; i++ {
		idx := probeIndex(home, i, n, quadratic, c1, c2)
		m.AddComparison()

		if !storage[idx].Occupied {
			storage[idx] = Slot{Key: key, Occupied: true}
			m.AddInsertion()
			return true
		}

		if i == 0 {
			m.AddPrimaryCollision()
		} else {
			m.AddSecondaryCollision()
		}
		m.AddProbe()
	}

	return false
}

// ProbingSearch - Walks the same probe sequence ProbingInsert would have followed,
// counting one comparison per attempt, and reports whether key is present. Stops as
// soon as an empty slot is found, since insertion would have stopped there too.
func ProbingSearch(storage []Slot, key int, home int64, quadratic bool, c1, c2 float64, m *metrics.Metrics) bool {
	n := int64(len(storage))
	for i := int64(0); i < n; i++ {
		idx := probeIndex(home, i, n, quadratic, c1, c2)
		m.AddComparison()

		if !storage[idx].Occupied {
			return false
		}
		if storage[idx].Key == key {
			return true
		}
	}
	return false
}

// ProbingLookup - Identical probe walk to ProbingSearch but never touches metrics
func ProbingLookup(storage []Slot, key int, home int64, quadratic bool, c1, c2 float64) bool {
	n := int64(len(storage))
	for i := int64(0); i < n; i++ {
		idx := probeIndex(home, i, n, quadratic, c1, c2)

		if !storage[idx].Occupied {
			return false
		}
		if storage[idx].Key == key {
			return true
		}
	}
	return false
}
