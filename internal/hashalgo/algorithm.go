// Package hashalgo implements the bucket-selection hash functions offered by the core:
// division hashing and Fibonacci (multiplicative) hashing.
package hashalgo

// Algorithm - Interface implemented by every hash function the core offers. An Algorithm
// maps a key directly to a home index in 0..n-1; probing and chaining build on top of
// whatever home index it returns.
type Algorithm interface {
	// Home - Returns the home index for key in a table of size n
	Home(key int, n int64) int64
}
