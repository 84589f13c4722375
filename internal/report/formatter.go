// Package report renders the end-of-run text report: the echoed input, the resolved
// configuration, the gathered statistics, the table body, and the timing/memory footer.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/riverglade/hashlab/internal/engine"
	"github.com/riverglade/hashlab/internal/pool"
	"github.com/riverglade/hashlab/internal/scheme"
)

// Info - Everything the formatter needs to render one report. Exactly one of Storage or
// Chains is populated, mirroring the HashTable it was captured from. SchemeNumber is 0 for
// a manually specified configuration, in which case the configuration line reads "manual"
// in place of a scheme number.
type Info struct {
	SchemeNumber int
	Method       scheme.Method
	Modulus      int64
	HasModulus   bool
	BucketSize   int
	Strategy     scheme.Strategy

	Input []int

	Storage []engine.Slot
	Chains  []*pool.Chain

	Comparisons         int64
	PrimaryCollisions   int64
	SecondaryCollisions int64
	TotalCollisions     int64
	Insertions          int64
	LoadFactor          float64

	ElapsedSeconds float64
	MemBytes       int64
}

const inputColumns = 5

// WriteReport - Writes the full report to w: echoed input, configuration line, statistics
// block, table body, and a trailing execution time/memory usage footer.
func WriteReport(w io.Writer, info Info) error {
	bw := bufio.NewWriter(w)

	writeInputBlock(bw, info.Input)
	fmt.Fprintln(bw)

	writeConfigLine(bw, info)
	writeStatsBlock(bw, info)
	fmt.Fprintln(bw)

	writeTableBody(bw, info)
	fmt.Fprintln(bw)

	fmt.Fprintf(bw, "Execution Time: %.6f seconds\n", info.ElapsedSeconds)
	fmt.Fprintf(bw, "Memory Usage: %d bytes\n", info.MemBytes)

	return bw.Flush()
}

// writeInputBlock - Echoes the input keys, five per line, comma-separated
func writeInputBlock(w io.Writer, input []int) {
	for i := 0; i < len(input); i += inputColumns {
		end := i + inputColumns
		if end > len(input) {
			end = len(input)
		}

		parts := make([]string, end-i)
		for j := i; j < end; j++ {
			parts[j-i] = strconv.Itoa(input[j])
		}
		fmt.Fprintln(w, strings.Join(parts, ", "))
	}
}

// writeConfigLine - Writes the one-line configuration summary
func writeConfigLine(w io.Writer, info Info) {
	id := "manual"
	if info.SchemeNumber > 0 {
		id = strconv.Itoa(info.SchemeNumber)
	}

	modulo := "N/A"
	if info.HasModulus {
		modulo = strconv.FormatInt(info.Modulus, 10)
	}

	fmt.Fprintf(w, "scheme %s (%s) - modulo: %s, bucket size: %d, %s\n",
		id, info.Method, modulo, info.BucketSize, info.Strategy)
}

// writeStatsBlock - Writes the collision and load-factor statistics. Chaining never
// decomposes its collisions into primary/secondary, so its line names only the total.
func writeStatsBlock(w io.Writer, info Info) {
	if info.Strategy == scheme.Chaining {
		fmt.Fprintf(w, "# of collisions: %d\n", info.TotalCollisions)
	} else {
		fmt.Fprintf(w, "# of primary collisions: %d, secondary collisions: %d, total collisions: %d\n",
			info.PrimaryCollisions, info.SecondaryCollisions, info.TotalCollisions)
	}

	fmt.Fprintf(w, "# of comparisons: %d, records inserted: %d, load factor: %.4f\n",
		info.Comparisons, info.Insertions, info.LoadFactor)
}

// writeTableBody - Renders the raw table. Both probing cells (width 8) and chaining cells
// (width 20) use 5 columns per row for bucket size 1 and 3 columns per row for bucket size 3.
func writeTableBody(w io.Writer, info Info) {
	columns := 5
	if info.BucketSize == 3 {
		columns = 3
	}

	if info.Strategy == scheme.Chaining {
		writeChainRows(w, info.Chains, columns, 20)
		return
	}

	writeSlotRows(w, info.Storage, columns, 8)
}

// writeSlotRows - Writes storage in fixed-width, fixed-column rows, printing "None" for
// every empty slot
func writeSlotRows(w io.Writer, storage []engine.Slot, columns, width int) {
	format := fmt.Sprintf("%%-%ds", width)

	for i := 0; i < len(storage); i += columns {
		end := i + columns
		if end > len(storage) {
			end = len(storage)
		}

		var b strings.Builder
		for j := i; j < end; j++ {
			cell := "None"
			if storage[j].Occupied {
				cell = strconv.Itoa(storage[j].Key)
			}
			fmt.Fprintf(&b, format, cell)
		}
		fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}
}

// writeChainRows - Writes the chain array in fixed-width, fixed-column rows, rendering
// each chain head to tail
func writeChainRows(w io.Writer, chains []*pool.Chain, columns, width int) {
	format := fmt.Sprintf("%%-%ds", width)

	for i := 0; i < len(chains); i += columns {
		end := i + columns
		if end > len(chains) {
			end = len(chains)
		}

		var b strings.Builder
		for j := i; j < end; j++ {
			fmt.Fprintf(&b, format, chains[j].String())
		}
		fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}
}
