// Package reader reads the integer keys, one per line, that a run is driven by.
package reader

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadResult - The outcome of reading a key file: the keys in file order and a count of
// non-blank lines that were skipped because they did not parse as a signed 32-bit integer.
// Blank lines are skipped without being counted.
type ReadResult struct {
	Keys    []int
	Skipped int
}

// Diag - A diagnostic sink the reader reports skipped lines to. Reading never aborts on a
// malformed line; it only reports it and moves on.
type Diag func(format string, args ...any)

// ReadIntegers - Opens path and reads one integer key per line, skipping blank lines and
// lines that do not parse as a signed 32-bit integer. Malformed lines are reported to diag,
// which may be nil to discard them, and counted in the returned ReadResult.Skipped; they do
// not abort the read.
func ReadIntegers(path string, diag Diag) (result ReadResult, err error) {
	if diag == nil {
		diag = func(string, ...any) {}
	}

	f, err := os.Open(path)
	if err != nil {
		err = fmt.Errorf("unable to open input file: %s", err)
		return
	}
	defer f.Close()

	diag("Reading file: %s", path)

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		v, perr := strconv.ParseInt(line, 10, 32)
		if perr != nil {
			diag("skipping line %d, not a valid integer: %q", lineNo, line)
			result.Skipped++
			continue
		}

		key := int(v)
		result.Keys = append(result.Keys, key)
		diag("read key: %d", key)
	}

	if err = scanner.Err(); err != nil {
		err = fmt.Errorf("error while reading input file: %s", err)
		return
	}

	diag("Finished reading file. Total keys loaded: %d", len(result.Keys))

	return
}
