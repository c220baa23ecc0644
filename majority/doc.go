// Package majority finds the element that occurs in more than half of a
// sequence using the Boyer-Moore vote: one pass, one candidate slot and one
// counter.
//
// The result is only meaningful when a majority element exists; Find does not
// verify it with a second pass. Use it where the majority is known to exist,
// or count the returned candidate afterwards.
package majority
