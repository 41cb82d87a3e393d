package usecase

import (
	"estatehub/internal/domain/model"
	"estatehub/internal/store"
)

// newMeta stamps identity and timestamps for a freshly created record.
func newMeta(codec *store.Codec) model.Meta {
	now := codec.Now()
	return model.Meta{
		ID:        codec.NewID(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// indexOf locates a record by id, or -1.
func indexOf[T model.Record](records []T, id string) int {
	for i, r := range records {
		if r.RecordID() == id {
			return i
		}
	}
	return -1
}

// setString applies an optional field of a merge update.
func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
