package model

// Meta carries the three fields every record has. Timestamps use the
// fixed-width sortable form produced by the store codec, so lexical order
// is chronological order.
type Meta struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// RecordID returns the record's immutable identifier.
func (m Meta) RecordID() string { return m.ID }

// Created returns the creation timestamp in sortable string form.
func (m Meta) Created() string { return m.CreatedAt }

// Record is the minimal contract every stored entity exposes.
type Record interface {
	RecordID() string
	Created() string
}

// ActiveFlag is the tri-state visibility flag. Absence defaults to active,
// so only an explicit false hides a record.
type ActiveFlag struct {
	IsActive *bool `json:"isActive,omitempty"`
}

// Active reports whether the record is visible.
func (f ActiveFlag) Active() bool { return f.IsActive == nil || *f.IsActive }

// ReadFlag marks message-like records as seen. Absence counts as unread.
type ReadFlag struct {
	IsRead *bool `json:"isRead,omitempty"`
}

// Read reports whether the record has been marked as seen.
func (f ReadFlag) Read() bool { return f.IsRead != nil && *f.IsRead }

// Ordering carries the manual display position. Zero sorts first.
type Ordering struct {
	DisplayOrder int `json:"displayOrder,omitempty"`
}

// Order returns the manual display position.
func (o Ordering) Order() int { return o.DisplayOrder }

// Activatable is satisfied by records carrying an ActiveFlag.
type Activatable interface {
	Active() bool
}

// Readable is satisfied by records carrying a ReadFlag.
type Readable interface {
	Read() bool
}

// Orderable is satisfied by records carrying a manual display position.
type Orderable interface {
	Order() int
}

// Listable is the contract of publicly listed content: manually ordered
// with a recency tie-break.
type Listable interface {
	Record
	Orderable
}

// Bool returns a pointer to v, for populating the optional flags.
func Bool(v bool) *bool { return &v }
