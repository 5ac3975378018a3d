// Package ring centralizes the index arithmetic for circular sample
// buffers. The FIR delay line and the IIR history buffers both walk their
// storage with the same wrap rules, so the wrap lives here exactly once.
package ring

// Next returns the index after i in a buffer of length n.
// i may be the -1 start sentinel, in which case Next returns 0.
func Next(i, n int) int {
	i++
	if i >= n {
		i = 0
	}
	return i
}

// Prev returns the index before i in a buffer of length n,
// wrapping to n-1 below zero.
func Prev(i, n int) int {
	i--
	if i < 0 {
		i = n - 1
	}
	return i
}
