//go:build unit

package hashlab

import (
	"fmt"
	"testing"

	"github.com/riverglade/hashlab/internal/engine"
	"github.com/riverglade/hashlab/internal/scheme"
	"github.com/stretchr/testify/assert"
)

func newLinear(t *testing.T, tableSize, modulus int64) *HashTable {
	h, err := NewHashTable(Config{
		TableSize:  tableSize,
		BucketSize: 1,
		Method:     scheme.Division,
		Strategy:   scheme.Linear,
		Modulus:    modulus,
	})
	assert.NoError(t, err)
	return h
}

func TestNewHashTableValidation(t *testing.T) {
	t.Run("rejects a non-positive table size", func(t *testing.T) {
		// Execute
		_, err := NewHashTable(Config{TableSize: 0, BucketSize: 1, Method: scheme.Division, Strategy: scheme.Linear, Modulus: 1})

		// Check
		assert.Error(t, err)
	})

	t.Run("rejects division without a modulus", func(t *testing.T) {
		// Execute
		_, err := NewHashTable(Config{TableSize: 10, BucketSize: 1, Method: scheme.Division, Strategy: scheme.Linear})

		// Check
		assert.Error(t, err)
	})

	t.Run("rejects negative quadratic constants", func(t *testing.T) {
		// Execute
		_, err := NewHashTable(Config{TableSize: 10, BucketSize: 1, Method: scheme.Fibonacci, Strategy: scheme.Quadratic, C1: -1})

		// Check
		assert.Error(t, err)
	})

	t.Run("accepts a valid fibonacci chaining configuration", func(t *testing.T) {
		// Execute
		h, err := NewHashTable(Config{TableSize: 10, BucketSize: 1, Method: scheme.Fibonacci, Strategy: scheme.Chaining})

		// Check
		assert.NoError(t, err)
		assert.NotNil(t, h)
	})
}

func TestInsertThenSearch(t *testing.T) {
	t.Run("a key just inserted is found by search and does not change storage", func(t *testing.T) {
		// Prepare
		h := newLinear(t, 10, 10)

		// Execute
		inserted := h.Insert(5)
		before := append([]engine.Slot(nil), h.RawOpenAddressing()...)
		found := h.Search(5)

		// Check
		assert.True(t, inserted)
		assert.True(t, found)
		assert.Equal(t, before, h.RawOpenAddressing())
	})
}

func TestSearchAbsentKey(t *testing.T) {
	t.Run("searching for a key never inserted returns false", func(t *testing.T) {
		// Prepare
		h := newLinear(t, 10, 10)
		h.Insert(5)

		// Execute
		found := h.Search(99)

		// Check
		assert.False(t, found)
	})
}

func TestLookupDoesNotMutateMetrics(t *testing.T) {
	t.Run("lookup returns the same answer as search but never changes metrics", func(t *testing.T) {
		// Prepare
		h := newLinear(t, 10, 10)
		h.Insert(5)
		before := h.Metrics().Comparisons()

		// Execute
		found := h.Lookup(5)

		// Check
		assert.True(t, found)
		assert.Equal(t, before, h.Metrics().Comparisons())
	})
}

func TestClearResetsTableAndMetrics(t *testing.T) {
	t.Run("clear empties storage and zeroes every counter", func(t *testing.T) {
		// Prepare
		h := newLinear(t, 10, 10)
		h.Insert(5)
		h.Insert(15)

		// Execute
		h.Clear()

		// Check
		assert.Equal(t, int64(0), h.Metrics().Insertions())
		assert.Equal(t, int64(0), h.Metrics().TotalCollisions())
		assert.False(t, h.Search(5))
	})
}

func TestClearReturnsChainNodesToPool(t *testing.T) {
	t.Run("clearing a chaining table returns every node to the pool", func(t *testing.T) {
		// Prepare
		h, err := NewHashTable(Config{TableSize: 4, BucketSize: 1, Method: scheme.Division, Strategy: scheme.Chaining, Modulus: 4})
		assert.NoError(t, err)
		h.Insert(1)
		h.Insert(5)
		h.Insert(9)

		// Execute
		h.Clear()

		// Check
		for _, c := range h.RawChains() {
			assert.True(t, c.IsEmpty())
		}
		assert.Equal(t, 8, h.nodes.Size())
	})
}

func TestLinearProbingCollisionScenario(t *testing.T) {
	t.Run("three keys mapping to the same home produce two primary collisions and one secondary collision", func(t *testing.T) {
		// Prepare: tableSize 5, modulus 5, so keys 0, 5, 10 all hash to index 0
		h := newLinear(t, 5, 5)

		// Execute
		h.Insert(0)
		h.Insert(5)
		h.Insert(10)

		// Check: inserting 5 collides with 0 at attempt 0 (primary); inserting 10 collides
		// with 0 at attempt 0 (primary) then with 5 at attempt 1 (secondary)
		assert.Equal(t, int64(2), h.Metrics().PrimaryCollisions())
		assert.Equal(t, int64(1), h.Metrics().SecondaryCollisions())
		assert.Equal(t, int64(3), h.Metrics().TotalCollisions())
		assert.Equal(t, int64(3), h.Metrics().Insertions())
	})
}

func TestChainingWorkedScenario(t *testing.T) {
	t.Run("scenario E: three keys sharing a home render head-to-tail and count one collision each after the first", func(t *testing.T) {
		// Prepare: tableSize 5, modulus 5, so keys 1, 6, 11 all hash to index 1
		h, err := NewHashTable(Config{TableSize: 5, BucketSize: 1, Method: scheme.Division, Strategy: scheme.Chaining, Modulus: 5})
		assert.NoError(t, err)

		// Execute
		h.Insert(1)
		h.Insert(6)
		h.Insert(11)

		// Check
		assert.Equal(t, "11 -> 6 -> 1 -> None", h.RawChains()[1].String())
		assert.Equal(t, int64(3), h.Metrics().Comparisons())
		assert.Equal(t, int64(2), h.Metrics().TotalCollisions())
		assert.Equal(t, int64(3), h.Metrics().Insertions())
		assert.Equal(t, int64(0), h.Metrics().Probes())
		assert.Equal(t, int64(0), h.Metrics().PrimaryCollisions())
		assert.Equal(t, int64(0), h.Metrics().SecondaryCollisions())
	})
}

func TestTableFullStopsInserting(t *testing.T) {
	t.Run("inserting more keys than slots leaves the extra key out and reports a TableFull diagnostic", func(t *testing.T) {
		// Prepare
		var diagnostics []string
		h, err := NewHashTable(Config{
			TableSize: 2, BucketSize: 1, Method: scheme.Division, Strategy: scheme.Linear, Modulus: 2,
			Diag: func(format string, args ...any) { diagnostics = append(diagnostics, fmt.Sprintf(format, args...)) },
		})
		assert.NoError(t, err)

		// Execute
		h.Insert(0)
		h.Insert(2)
		ok := h.Insert(4)

		// Check
		assert.False(t, ok)
		assert.NotEmpty(t, diagnostics)
		assert.Contains(t, diagnostics[len(diagnostics)-1], "table full")
		assert.Equal(t, int64(2), h.Metrics().Insertions())
	})
}

func TestPoolExhaustedStopsChainingInsert(t *testing.T) {
	t.Run("inserting more keys than the node pool can hold reports a PoolExhausted diagnostic", func(t *testing.T) {
		// Prepare
		var diagnostics []string
		h, err := NewHashTable(Config{
			TableSize: 1, BucketSize: 1, Method: scheme.Division, Strategy: scheme.Chaining, Modulus: 1,
			Diag: func(format string, args ...any) { diagnostics = append(diagnostics, fmt.Sprintf(format, args...)) },
		})
		assert.NoError(t, err)

		// Execute: the pool backing a table of size 1 holds 2 nodes
		h.Insert(1)
		h.Insert(2)
		ok := h.Insert(3)

		// Check
		assert.False(t, ok)
		assert.NotEmpty(t, diagnostics)
		assert.Contains(t, diagnostics[len(diagnostics)-1], "node pool exhausted")
	})
}

func TestLinearProbingWorkedScenarios(t *testing.T) {
	cases := []struct {
		name                string
		tableSize, modulus  int64
		inserts             []int
		wantComparisons     int64
		wantInsertions      int64
		wantPrimary         int64
		wantSecondary       int64
		wantTotalCollisions int64
		wantProbes          int64
	}{
		{
			name: "scenario A: two keys, one primary collision",
			tableSize: 10, modulus: 10, inserts: []int{2, 12},
			wantComparisons: 3, wantInsertions: 2, wantPrimary: 1, wantSecondary: 0, wantTotalCollisions: 1, wantProbes: 1,
		},
		{
			name: "scenario B: a repeated key walks past every occupied slot to the last free one",
			tableSize: 5, modulus: 5, inserts: []int{0, 1, 2, 3, 0},
			wantComparisons: 9, wantInsertions: 5, wantPrimary: 1, wantSecondary: 3, wantTotalCollisions: 4, wantProbes: 4,
		},
		{
			name: "scenario C: a fourth insert into a full table of size 3 is rejected",
			tableSize: 3, modulus: 3, inserts: []int{0, 1, 2, 3},
			wantComparisons: 6, wantInsertions: 3, wantPrimary: 1, wantSecondary: 2, wantTotalCollisions: 3, wantProbes: 3,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			// Prepare
			h := newLinear(t, c.tableSize, c.modulus)

			// Execute
			for _, key := range c.inserts {
				h.Insert(key)
			}

			// Check
			assert.Equal(t, c.wantComparisons, h.Metrics().Comparisons())
			assert.Equal(t, c.wantInsertions, h.Metrics().Insertions())
			assert.Equal(t, c.wantPrimary, h.Metrics().PrimaryCollisions())
			assert.Equal(t, c.wantSecondary, h.Metrics().SecondaryCollisions())
			assert.Equal(t, c.wantTotalCollisions, h.Metrics().TotalCollisions())
			assert.Equal(t, c.wantProbes, h.Metrics().Probes())
		})
	}
}

func TestStopTimerWithoutStartIsTimerMisuse(t *testing.T) {
	t.Run("stopping a timer that was never started surfaces as TimerMisuse", func(t *testing.T) {
		// Prepare
		h := newLinear(t, 5, 5)

		// Execute
		err := h.StopTimer()

		// Check
		assert.Error(t, err)
		_, ok := err.(TimerMisuse)
		assert.True(t, ok)
	})
}
