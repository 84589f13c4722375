package metrics

import (
	"runtime"
	"time"
)

// Metrics - Holds the counters and timers gathered while running insertions and searches
// against a hash table. A Metrics instance is owned exclusively by the HashTable that
// created it and is mutated only from its insert/search operations.
type Metrics struct {
	comparisons        int64
	primaryCollisions  int64
	secondaryCollisions int64
	totalCollisions     int64
	probes              int64
	insertions          int64
	tableSize           int64

	started  bool
	startAt  time.Time
	elapsed  time.Duration
	memStart uint64
	memUsed  uint64
}

// New - Returns a new Metrics instance for a table of the given size
func New(tableSize int64) *Metrics {
	return &Metrics{tableSize: tableSize}
}

// SetTableSize - Sets the table size used by LoadFactor
func (M *Metrics) SetTableSize(tableSize int64) {
	M.tableSize = tableSize
}

// AddComparison - Records one slot or chain-node inspection
func (M *Metrics) AddComparison() {
	M.comparisons++
}

// AddPrimaryCollision - Records a collision found at probe attempt zero
func (M *Metrics) AddPrimaryCollision() {
	M.primaryCollisions++
	M.totalCollisions++
}

// AddSecondaryCollision - Records a collision found at a probe attempt beyond zero
func (M *Metrics) AddSecondaryCollision() {
	M.secondaryCollisions++
	M.totalCollisions++
}

// AddCollision - Records a collision that chaining does not split into primary/secondary
func (M *Metrics) AddCollision() {
	M.totalCollisions++
}

// AddProbe - Records one step of advancing to the next candidate slot
func (M *Metrics) AddProbe() {
	M.probes++
}

// AddInsertion - Records a key successfully written to the table
func (M *Metrics) AddInsertion() {
	M.insertions++
}

// Comparisons - Returns the number of comparisons recorded so far
func (M *Metrics) Comparisons() int64 { return M.comparisons }

// PrimaryCollisions - Returns the number of primary collisions recorded so far
func (M *Metrics) PrimaryCollisions() int64 { return M.primaryCollisions }

// SecondaryCollisions - Returns the number of secondary collisions recorded so far
func (M *Metrics) SecondaryCollisions() int64 { return M.secondaryCollisions }

// TotalCollisions - Returns the number of collisions recorded so far, primary and secondary combined
func (M *Metrics) TotalCollisions() int64 { return M.totalCollisions }

// Probes - Returns the number of probe steps recorded so far
func (M *Metrics) Probes() int64 { return M.probes }

// Insertions - Returns the number of successful insertions recorded so far
func (M *Metrics) Insertions() int64 { return M.insertions }

// LoadFactor - Returns insertions divided by table size, or -1 if the table size is not
// a positive number
func (M *Metrics) LoadFactor() float64 {
	if M.tableSize <= 0 {
		return -1
	}
	return float64(M.insertions) / float64(M.tableSize)
}

// StartTimer - Marks the start of a timed operation. Also captures the current heap usage
// as a baseline for MemBytes.
func (M *Metrics) StartTimer() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	M.memStart = ms.HeapAlloc
	M.startAt = time.Now()
	M.started = true
}

// StopTimer - Marks the end of a timed operation and records elapsed wall-clock time and
// heap growth since StartTimer. Returns an error for which IsTimerMisuse reports true if
// StartTimer was never called.
func (M *Metrics) StopTimer() (err error) {
	if !M.started {
		return timerMisuseError{}
	}
	M.elapsed = time.Since(M.startAt)

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	if ms.HeapAlloc > M.memStart {
		M.memUsed = ms.HeapAlloc - M.memStart
	} else {
		M.memUsed = 0
	}
	M.started = false

	return
}

// ElapsedNs - Returns the duration of the last timed operation in nanoseconds
func (M *Metrics) ElapsedNs() int64 {
	return M.elapsed.Nanoseconds()
}

// MemBytes - Returns the heap growth observed during the last timed operation, in bytes
func (M *Metrics) MemBytes() int64 {
	return int64(M.memUsed)
}

// ResetAll - Resets every counter and timer to its zero value, keeping the configured table size
func (M *Metrics) ResetAll() {
	tableSize := M.tableSize
	*M = Metrics{tableSize: tableSize}
}

// timerMisuseError backs the exported TimerMisuse error without importing the root package,
// which would create an import cycle. The root package wraps it with hashlab.TimerMisuse.
type timerMisuseError struct{}

func (timerMisuseError) Error() string { return "timer stopped without having been started" }

// IsTimerMisuse - Reports whether err is the sentinel returned by StopTimer when no StartTimer
// preceded it
func IsTimerMisuse(err error) bool {
	_, ok := err.(timerMisuseError)
	return ok
}
