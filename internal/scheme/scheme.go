// Package scheme resolves the command-line-facing notion of "which hash table to build" -
// either one of the fourteen predefined schemes or a manually specified combination of
// method, strategy, modulus, bucket size and probing constants - into validated values the
// core's HashTable constructor accepts.
package scheme

import "fmt"

// Method - The hash function a table is configured to use
type Method string

const (
	Division  Method = "division"
	Fibonacci Method = "fibonacci"
)

// Strategy - The collision-resolution technique a table is configured to use
type Strategy string

const (
	Linear    Strategy = "linear"
	Quadratic Strategy = "quadratic"
	Chaining  Strategy = "chaining"
)

// TableSize - The number of slots every predefined scheme, and every manual configuration,
// addresses. Fixed by the experiment design rather than user-configurable.
const TableSize int64 = 120

// Scheme - One row of the predefined scheme table. Mod is zero for fibonacci schemes, which
// the formatter renders as "N/A".
type Scheme struct {
	Number   int
	Method   Method
	Mod      int64
	Bucket   int
	Strategy Strategy
	C1, C2   float64
}

var predefined = []Scheme{
	{Number: 1, Method: Division, Mod: 120, Bucket: 1, Strategy: Linear},
	{Number: 2, Method: Division, Mod: 120, Bucket: 1, Strategy: Quadratic, C1: 0.5, C2: 0.5},
	{Number: 3, Method: Division, Mod: 120, Bucket: 1, Strategy: Chaining},
	{Number: 4, Method: Division, Mod: 127, Bucket: 1, Strategy: Linear},
	{Number: 5, Method: Division, Mod: 127, Bucket: 1, Strategy: Quadratic, C1: 0.5, C2: 0.5},
	{Number: 6, Method: Division, Mod: 127, Bucket: 1, Strategy: Chaining},
	{Number: 7, Method: Division, Mod: 113, Bucket: 1, Strategy: Linear},
	{Number: 8, Method: Division, Mod: 113, Bucket: 1, Strategy: Quadratic, C1: 0.5, C2: 0.5},
	{Number: 9, Method: Division, Mod: 113, Bucket: 1, Strategy: Chaining},
	{Number: 10, Method: Division, Mod: 41, Bucket: 3, Strategy: Linear},
	{Number: 11, Method: Division, Mod: 41, Bucket: 3, Strategy: Quadratic, C1: 0.5, C2: 0.5},
	{Number: 12, Method: Fibonacci, Bucket: 1, Strategy: Linear},
	{Number: 13, Method: Fibonacci, Bucket: 1, Strategy: Quadratic, C1: 0.5, C2: 0.5},
	{Number: 14, Method: Fibonacci, Bucket: 1, Strategy: Chaining},
}

// ByNumber - Returns the predefined scheme identified by number, which must be in 1..14
func ByNumber(number int) (s Scheme, err error) {
	for _, candidate := range predefined {
		if candidate.Number == number {
			return candidate, nil
		}
	}
	err = fmt.Errorf("unknown scheme number %d, expected 1 through %d", number, len(predefined))
	return
}

// Manual - A manually specified configuration as gathered from command-line flags.
// ModSet distinguishes an explicitly given modulus of zero from one never given, since a
// division scheme requires one but a fibonacci scheme forbids it.
type Manual struct {
	Method   Method
	Strategy Strategy
	Mod      int64
	ModSet   bool
	Bucket   int
	C1, C2   float64
}

// Validate - Checks a manual configuration against the same rules a predefined scheme
// always satisfies by construction: a known method and strategy, a bucket size of 1 or 3,
// a positive modulus given if and only if the method is division, and non-negative c1/c2
// when the strategy is quadratic.
func (M Manual) Validate() error {
	switch M.Method {
	case Division, Fibonacci:
	default:
		return fmt.Errorf("unknown hash method %q", M.Method)
	}

	switch M.Strategy {
	case Linear, Quadratic, Chaining:
	default:
		return fmt.Errorf("unknown strategy %q", M.Strategy)
	}

	if M.Bucket != 1 && M.Bucket != 3 {
		return fmt.Errorf("bucket size must be 1 or 3, got %d", M.Bucket)
	}

	if M.Method == Division {
		if !M.ModSet || M.Mod <= 0 {
			return fmt.Errorf("division hashing requires a positive modulus")
		}
	} else if M.ModSet {
		return fmt.Errorf("fibonacci hashing does not take a modulus")
	}

	if M.Strategy == Quadratic && (M.C1 < 0 || M.C2 < 0) {
		return fmt.Errorf("c1 and c2 must be non-negative, got c1=%v c2=%v", M.C1, M.C2)
	}

	return nil
}

// ToScheme - Converts a validated Manual configuration into a Scheme with Number 0,
// meaning "not a predefined scheme"
func (M Manual) ToScheme() Scheme {
	return Scheme{
		Method:   M.Method,
		Mod:      M.Mod,
		Bucket:   M.Bucket,
		Strategy: M.Strategy,
		C1:       M.C1,
		C2:       M.C2,
	}
}
