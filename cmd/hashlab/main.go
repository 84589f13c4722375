// Command hashlab drives the hash table core against a file of integer keys and writes a
// text report of the run. It can resolve either a predefined scheme number (Mode A) or a
// manually specified combination of hash method, strategy, modulus, bucket size and
// quadratic probing constants (Mode B).
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/riverglade/hashlab"
	"github.com/riverglade/hashlab/internal/reader"
	"github.com/riverglade/hashlab/internal/report"
	"github.com/riverglade/hashlab/internal/scheme"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run - Parses flags, resolves a Configuration, drives the HashTable over the input file
// and writes the report. Returns 0 on success, 1 on invalid flags, 2 on I/O failure.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("hashlab", flag.ContinueOnError)
	fs.SetOutput(stderr)

	schemeNumber := fs.Int("scheme", 0, "predefined scheme number 1-14 (Mode A)")
	hashing := fs.String("hashing", "", "manual mode hash method: division or custom")
	strategyFlag := fs.String("strategy", "", "manual mode strategy: linear, quadratic or chaining")
	modFlag := fs.String("mod", "", "manual mode modulus, required for division")
	bucket := fs.Int("bucket", 1, "manual mode bucket size: 1 or 3")
	c1 := fs.Float64("c1", 0.5, "manual mode quadratic probing c1 constant")
	c2 := fs.Float64("c2", 0.5, "manual mode quadratic probing c2 constant")
	input := fs.String("input", "", "path to the input key file")
	output := fs.String("output", "", "path to write the report to")
	debug := fs.Bool("debug", false, "echo diagnostics to stderr while running")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *input == "" || *output == "" {
		fmt.Fprintln(stderr, "both --input and --output are required")
		return 1
	}

	diag := func(format string, a ...any) {
		if *debug {
			fmt.Fprintf(stderr, format+"\n", a...)
		}
	}

	cfg, schemeID, hasModulus, err := resolveConfig(*schemeNumber, *hashing, *strategyFlag, *modFlag, *bucket, *c1, *c2, diag)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	table, err := hashlab.NewHashTable(cfg)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	result, err := reader.ReadIntegers(*input, diag)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	table.StartTimer()
	for _, key := range result.Keys {
		table.Insert(key)
	}
	if err := table.StopTimer(); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	f, err := os.Create(*output)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	defer f.Close()

	var w io.Writer = f
	if *debug {
		w = io.MultiWriter(f, stdout)
	}

	m := table.Metrics()
	info := report.Info{
		SchemeNumber:        schemeID,
		Method:              cfg.Method,
		Modulus:             cfg.Modulus,
		HasModulus:          hasModulus,
		BucketSize:          cfg.BucketSize,
		Strategy:            cfg.Strategy,
		Input:               result.Keys,
		Storage:             table.RawOpenAddressing(),
		Chains:              table.RawChains(),
		Comparisons:         m.Comparisons(),
		PrimaryCollisions:   m.PrimaryCollisions(),
		SecondaryCollisions: m.SecondaryCollisions(),
		TotalCollisions:     m.TotalCollisions(),
		Insertions:          m.Insertions(),
		LoadFactor:          m.LoadFactor(),
		ElapsedSeconds:      float64(m.ElapsedNs()) / 1e9,
		MemBytes:            m.MemBytes(),
	}

	if err := report.WriteReport(w, info); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	return 0
}

// resolveConfig - Builds a hashlab.Config from either a predefined scheme number or a
// manually specified set of flags. Returns the scheme number to show in the report (0 for
// manual) and whether the resolved method takes a modulus.
func resolveConfig(
	schemeNumber int,
	hashing, strategyFlag, modFlag string,
	bucket int,
	c1, c2 float64,
	diag reader.Diag,
) (cfg hashlab.Config, schemeID int, hasModulus bool, err error) {

	if schemeNumber > 0 {
		s, serr := scheme.ByNumber(schemeNumber)
		if serr != nil {
			err = serr
			return
		}
		cfg = hashlab.Config{
			TableSize:  scheme.TableSize,
			BucketSize: s.Bucket,
			Method:     s.Method,
			Strategy:   s.Strategy,
			Modulus:    s.Mod,
			C1:         s.C1,
			C2:         s.C2,
			Diag:       hashlab.Diag(diag),
		}
		return cfg, s.Number, s.Method == scheme.Division, nil
	}

	if hashing == "" || strategyFlag == "" {
		err = fmt.Errorf("either --scheme or both --hashing and --strategy must be given")
		return
	}

	method, merr := parseMethod(hashing)
	if merr != nil {
		err = merr
		return
	}

	manual := scheme.Manual{
		Method:   method,
		Strategy: scheme.Strategy(strategyFlag),
		Bucket:   bucket,
		C1:       c1,
		C2:       c2,
	}

	if modFlag != "" {
		mod, perr := strconv.ParseInt(modFlag, 10, 64)
		if perr != nil {
			err = fmt.Errorf("invalid --mod value %q: %s", modFlag, perr)
			return
		}
		manual.Mod = mod
		manual.ModSet = true
	}

	if verr := manual.Validate(); verr != nil {
		err = verr
		return
	}

	s := manual.ToScheme()
	cfg = hashlab.Config{
		TableSize:  scheme.TableSize,
		BucketSize: s.Bucket,
		Method:     s.Method,
		Strategy:   s.Strategy,
		Modulus:    s.Mod,
		C1:         s.C1,
		C2:         s.C2,
		Diag:       hashlab.Diag(diag),
	}
	return cfg, 0, method == scheme.Division, nil
}

// parseMethod - Translates the manual-mode --hashing flag value into a scheme.Method.
// "custom" names the Fibonacci/multiplicative method, matching the CLI vocabulary the
// original driver used for its non-division hash function.
func parseMethod(hashing string) (scheme.Method, error) {
	switch hashing {
	case "division":
		return scheme.Division, nil
	case "custom":
		return scheme.Fibonacci, nil
	default:
		return "", fmt.Errorf("unknown --hashing value %q, expected division or custom", hashing)
	}
}
