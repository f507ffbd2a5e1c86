package mocks

import (
	"fmt"

	"github.com/clubtools/spieltag/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing.
// String results can be queued explicitly; once the queue is exhausted it
// falls back to a deterministic counter sequence ("id-1", "id-2", ...) so
// tests that create many entities do not have to queue every ID.
type MockRandom struct {
	// StringResults is a queue of results to return from String
	StringResults []string
	stringIndex   int

	// IntnResults is a queue of results to return from Intn
	IntnResults []int
	intnIndex   int

	seq int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result, or 0 if none remaining
func (r *MockRandom) Intn(n int) int {
	if r.intnIndex >= len(r.IntnResults) {
		return 0
	}
	result := r.IntnResults[r.intnIndex]
	r.intnIndex++
	return result
}

// String returns the next queued result, or the next counter value if the
// queue is empty
func (r *MockRandom) String(length int, alphabet string) string {
	if r.stringIndex >= len(r.StringResults) {
		r.seq++
		return fmt.Sprintf("id-%d", r.seq)
	}
	result := r.StringResults[r.stringIndex]
	r.stringIndex++
	return result
}

// QueueString adds values to the String result queue
func (r *MockRandom) QueueString(values ...string) {
	r.StringResults = append(r.StringResults, values...)
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}

// Reset clears all queued results and the counter
func (r *MockRandom) Reset() {
	r.StringResults = nil
	r.stringIndex = 0
	r.IntnResults = nil
	r.intnIndex = 0
	r.seq = 0
}
