// Package hashlab implements a single-threaded hash table used to study how hash function
// and collision-resolution choices affect comparisons, collisions, probes and load factor.
// It offers two hash functions (division and Fibonacci/multiplicative) and three collision
// resolution techniques (linear probing, quadratic probing and separate chaining), all
// instrumented through a shared Metrics contract.
package hashlab

import (
	"fmt"

	"github.com/riverglade/hashlab/internal/engine"
	"github.com/riverglade/hashlab/internal/hashalgo"
	"github.com/riverglade/hashlab/internal/metrics"
	"github.com/riverglade/hashlab/internal/pool"
	"github.com/riverglade/hashlab/internal/scheme"
)

// Diag - A diagnostic sink a HashTable reports non-fatal conditions to, such as a table-full
// or pool-exhausted insert. May be left nil, in which case diagnostics are discarded.
type Diag func(format string, args ...any)

// Config - The immutable set of choices a HashTable is built from.
//   - TableSize is the number of addressable slots, always positive
//   - BucketSize is a presentation hint only (1 or 3); it never changes probing behavior
//   - Method selects the hash function (division or fibonacci)
//   - Strategy selects the collision resolution technique
//   - Modulus is required and must be positive when Method is division; unused otherwise
//   - C1, C2 are the quadratic probing constants; unused unless Strategy is quadratic
//   - Diag receives non-fatal diagnostics (table full, pool exhausted); may be nil
type Config struct {
	TableSize  int64
	BucketSize int
	Method     scheme.Method
	Strategy   scheme.Strategy
	Modulus    int64
	C1, C2     float64
	Diag       Diag
}

// validate - Checks Config against the invariants every HashTable must satisfy
func (C Config) validate() error {
	if C.TableSize <= 0 {
		return InvalidConfiguration{msg: "table size must be positive"}
	}
	if C.BucketSize != 1 && C.BucketSize != 3 {
		return InvalidConfiguration{msg: fmt.Sprintf("bucket size must be 1 or 3, got %d", C.BucketSize)}
	}

	switch C.Method {
	case scheme.Division, scheme.Fibonacci:
	default:
		return InvalidConfiguration{msg: fmt.Sprintf("unknown hash method %q", C.Method)}
	}

	switch C.Strategy {
	case scheme.Linear, scheme.Quadratic, scheme.Chaining:
	default:
		return InvalidConfiguration{msg: fmt.Sprintf("unknown strategy %q", C.Strategy)}
	}

	if C.Method == scheme.Division && C.Modulus <= 0 {
		return InvalidConfiguration{msg: "division hashing requires a positive modulus"}
	}

	if C.Strategy == scheme.Quadratic && (C.C1 < 0 || C.C2 < 0) {
		return InvalidConfiguration{msg: fmt.Sprintf("c1 and c2 must be non-negative, got c1=%v c2=%v", C.C1, C.C2)}
	}

	return nil
}

// HashTable - The façade tying together a hash algorithm, a collision resolution engine,
// storage, and the metrics gathered while inserting and searching. Exactly one of the open
// addressing storage or the chain array plus node pool is populated, chosen by Config.Strategy.
type HashTable struct {
	cfg Config

	algo hashalgo.Algorithm

	storage []engine.Slot
	chains  []*pool.Chain
	nodes   *pool.NodePool

	metrics *metrics.Metrics
	diag    Diag
}

// NewHashTable - Builds a HashTable from cfg, returning InvalidConfiguration if cfg does not
// satisfy the invariants described on Config.
func NewHashTable(cfg Config) (*HashTable, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	diag := cfg.Diag
	if diag == nil {
		diag = func(string, ...any) {}
	}

	var algo hashalgo.Algorithm
	if cfg.Method == scheme.Division {
		algo = hashalgo.NewDivision(cfg.Modulus)
	} else {
		algo = hashalgo.NewFibonacci()
	}

	h := &HashTable{
		cfg:     cfg,
		algo:    algo,
		metrics: metrics.New(cfg.TableSize),
		diag:    diag,
	}

	if cfg.Strategy == scheme.Chaining {
		h.nodes = pool.New(2 * cfg.TableSize)
		h.chains = make([]*pool.Chain, cfg.TableSize)
		for i := range h.chains {
			h.chains[i] = pool.NewChain(h.nodes)
		}
	} else {
		h.storage = make([]engine.Slot, cfg.TableSize)
	}

	return h, nil
}

// Config - Returns the configuration this table was built from
func (H *HashTable) Config() Config {
	return H.cfg
}

// Metrics - Returns the metrics instance this table updates on every insert and search
func (H *HashTable) Metrics() *metrics.Metrics {
	return H.metrics
}

// Insert - Computes key's home index and delegates to the probing or chaining engine
// depending on Config.Strategy. Returns false, after reporting it to Diag, if the table
// (or for chaining, the node pool) had no room left for key.
func (H *HashTable) Insert(key int) bool {
	home := H.algo.Home(key, H.cfg.TableSize)

	if H.cfg.Strategy == scheme.Chaining {
		ok := engine.ChainingInsert(H.chains, key, home, H.metrics)
		if !ok {
			err := PoolExhausted{msg: fmt.Sprintf("node pool exhausted, could not insert key %d at index %d", key, home)}
			H.diag("%v", err)
		}
		return ok
	}

	ok := engine.ProbingInsert(H.storage, key, home, H.cfg.Strategy == scheme.Quadratic, H.cfg.C1, H.cfg.C2, H.metrics)
	if !ok {
		err := TableFull{msg: fmt.Sprintf("table full, could not insert key %d", key)}
		H.diag("%v", err)
	}
	return ok
}

// Search - Computes key's home index and walks the same probe sequence or chain Insert
// would have, counting comparisons as it goes. Reports whether key is present.
func (H *HashTable) Search(key int) bool {
	home := H.algo.Home(key, H.cfg.TableSize)

	if H.cfg.Strategy == scheme.Chaining {
		return engine.ChainingSearch(H.chains, key, home, H.metrics)
	}
	return engine.ProbingSearch(H.storage, key, home, H.cfg.Strategy == scheme.Quadratic, H.cfg.C1, H.cfg.C2, H.metrics)
}

// Lookup - Identical to Search but never mutates Metrics
func (H *HashTable) Lookup(key int) bool {
	home := H.algo.Home(key, H.cfg.TableSize)

	if H.cfg.Strategy == scheme.Chaining {
		return engine.ChainingLookup(H.chains, key, home)
	}
	return engine.ProbingLookup(H.storage, key, home, H.cfg.Strategy == scheme.Quadratic, H.cfg.C1, H.cfg.C2)
}

// Clear - Empties every slot or chain and resets Metrics to its zero state
func (H *HashTable) Clear() {
	if H.cfg.Strategy == scheme.Chaining {
		for _, c := range H.chains {
			c.Clear()
		}
	} else {
		H.storage = make([]engine.Slot, H.cfg.TableSize)
	}
	H.metrics.ResetAll()
}

// StartTimer - Starts the metrics timer, to be stopped with StopTimer once the run completes
func (H *HashTable) StartTimer() {
	H.metrics.StartTimer()
}

// StopTimer - Stops the metrics timer, returning TimerMisuse if StartTimer was never called
func (H *HashTable) StopTimer() error {
	if err := H.metrics.StopTimer(); err != nil {
		return TimerMisuse{msg: err.Error()}
	}
	return nil
}

// RawOpenAddressing - Returns the open-addressing slot array for read-only inspection by a
// report formatter. Returns nil if the table was built with chaining.
func (H *HashTable) RawOpenAddressing() []engine.Slot {
	return H.storage
}

// RawChains - Returns the chain array for read-only inspection by a report formatter.
// Returns nil if the table was built with open addressing.
func (H *HashTable) RawChains() []*pool.Chain {
	return H.chains
}
