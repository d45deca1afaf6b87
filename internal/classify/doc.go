// Package classify partitions an inclusive integer range into primes,
// odd non-primes and even non-primes.
//
// Classification is a single ascending pass with naive trial division.
// Results are plain values; nothing is shared between calls.
package classify
