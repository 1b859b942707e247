// Package counter measures how many keystream bytes a stream transform has
// processed.
package counter

// Counter is a cumulative byte metric
type Counter interface {
	// Value is the total number of bytes added so far.
	Value() int64
	// RatePerSec is the byte rate observed over the last completed period.
	RatePerSec() int64

	Add(bytes int64)
}
