package store

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TimestampLayout is the fixed-width sortable timestamp form used for
// createdAt/updatedAt. Records are always stamped in UTC so lexical
// comparison of two timestamps matches chronological comparison.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Codec mints identifiers and timestamps for new records.
type Codec struct {
	mu   sync.Mutex
	last time.Time
}

// NewCodec creates a codec.
func NewCodec() *Codec {
	return &Codec{}
}

// NewID returns a fresh 128-bit random identifier.
func (c *Codec) NewID() string {
	return uuid.NewString()
}

// Now returns the current wall-clock reading in sortable string form.
// Successive calls never go backwards, even across clock adjustments:
// a reading at or before the previous one is bumped by one millisecond.
func (c *Codec) Now() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UTC().Truncate(time.Millisecond)
	if !now.After(c.last) {
		now = c.last.Add(time.Millisecond)
	}
	c.last = now
	return now.Format(TimestampLayout)
}

// Decode parses a collection snapshot. Empty input is an empty collection,
// never an error; malformed input reports ErrCorruptSnapshot via the store.
func Decode[T any](data []byte) ([]T, error) {
	if len(data) == 0 {
		return []T{}, nil
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Encode serializes a collection snapshot. Output is indented so snapshots
// remain human-diffable.
func Encode[T any](records []T) ([]byte, error) {
	if records == nil {
		records = []T{}
	}
	return json.MarshalIndent(records, "", "  ")
}
