package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"estatehub/internal/domain/model"
	apperrors "estatehub/internal/shared/errors"

	"go.uber.org/zap"
)

// Store owns one snapshot file per named collection. Every mutation in the
// system is a whole-collection read-modify-write; the store serializes those
// cycles per collection and keeps a version counter for optimistic writers.
// Collections are independent: a write to properties never blocks reviews.
type Store struct {
	dir    string
	logger *zap.Logger
	cols   map[model.Collection]*collectionState
}

type collectionState struct {
	mu      sync.RWMutex
	version uint64
}

// New creates a store rooted at dir, creating the directory if needed.
func New(dir string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperrors.NewDurabilityError("*").WithCause(err)
	}

	cols := make(map[model.Collection]*collectionState, len(model.Collections()))
	for _, name := range model.Collections() {
		cols[name] = &collectionState{}
	}

	return &Store{dir: dir, logger: logger, cols: cols}, nil
}

// Dir returns the directory holding the snapshot files.
func (s *Store) Dir() string { return s.dir }

func (s *Store) state(name model.Collection) (*collectionState, error) {
	st, ok := s.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownCollection, name)
	}
	return st, nil
}

func (s *Store) path(name model.Collection) string {
	return filepath.Join(s.dir, string(name)+".json")
}

// Version returns the current version counter for the collection.
func (s *Store) Version(name model.Collection) (uint64, error) {
	st, err := s.state(name)
	if err != nil {
		return 0, err
	}
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.version, nil
}

// readLocked loads and decodes the snapshot. Caller holds the collection lock.
// A missing file is an empty collection; an undecodable file is logged and
// degrades to an empty collection so unrelated collections stay available.
func readLocked[T any](s *Store, name model.Collection) ([]T, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		return nil, apperrors.NewDurabilityError(string(name)).WithCause(err)
	}

	records, err := Decode[T](data)
	if err != nil {
		s.logger.Error("corrupt collection snapshot, treating as empty",
			zap.String("collection", string(name)),
			zap.Error(err))
		return []T{}, nil
	}
	return records, nil
}

// writeLocked persists the snapshot atomically: encode to a temp file in the
// same directory, then rename over the old snapshot. A concurrent reader sees
// either the old file or the new one, never a partial write. Caller holds the
// collection lock.
func writeLocked[T any](s *Store, name model.Collection, records []T) error {
	data, err := Encode(records)
	if err != nil {
		return apperrors.NewDurabilityError(string(name)).WithCause(err)
	}

	tmp, err := os.CreateTemp(s.dir, string(name)+"-*.tmp")
	if err != nil {
		return apperrors.NewDurabilityError(string(name)).WithCause(err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apperrors.NewDurabilityError(string(name)).WithCause(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return apperrors.NewDurabilityError(string(name)).WithCause(err)
	}
	if err := os.Rename(tmpName, s.path(name)); err != nil {
		os.Remove(tmpName)
		return apperrors.NewDurabilityError(string(name)).WithCause(err)
	}
	return nil
}

// Read loads the full collection. Side-effect-free; safe for any number of
// concurrent callers.
func Read[T any](s *Store, name model.Collection) ([]T, error) {
	st, err := s.state(name)
	if err != nil {
		return nil, err
	}
	st.mu.RLock()
	defer st.mu.RUnlock()
	return readLocked[T](s, name)
}

// ReadVersion loads the full collection together with the version counter a
// subsequent ReplaceVersion call can be keyed on.
func ReadVersion[T any](s *Store, name model.Collection) ([]T, uint64, error) {
	st, err := s.state(name)
	if err != nil {
		return nil, 0, err
	}
	st.mu.RLock()
	defer st.mu.RUnlock()
	records, err := readLocked[T](s, name)
	if err != nil {
		return nil, 0, err
	}
	return records, st.version, nil
}

// Replace overwrites the entire collection with the given list. The write is
// serialized against every other mutation of the same collection. Two callers
// that each did their own Read before calling Replace still race on a
// whole-snapshot basis; use Mutate or ReplaceVersion for a safe cycle.
func Replace[T any](s *Store, name model.Collection, records []T) error {
	st, err := s.state(name)
	if err != nil {
		return err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if err := writeLocked(s, name, records); err != nil {
		return err
	}
	st.version++
	return nil
}

// ReplaceVersion overwrites the collection only if its version still equals
// baseVersion, rejecting stale writers with ErrStaleVersion.
func ReplaceVersion[T any](s *Store, name model.Collection, records []T, baseVersion uint64) error {
	st, err := s.state(name)
	if err != nil {
		return err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.version != baseVersion {
		return fmt.Errorf("%w: %q at version %d, write based on %d",
			apperrors.ErrStaleVersion, name, st.version, baseVersion)
	}
	if err := writeLocked(s, name, records); err != nil {
		return err
	}
	st.version++
	return nil
}

// Mutate runs a read-transform-replace cycle with the collection lock held
// throughout, so concurrent mutations to the same collection cannot lose
// updates. Returning an error from fn abandons the cycle without writing.
func Mutate[T any](s *Store, name model.Collection, fn func([]T) ([]T, error)) error {
	st, err := s.state(name)
	if err != nil {
		return err
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	records, err := readLocked[T](s, name)
	if err != nil {
		return err
	}
	next, err := fn(records)
	if err != nil {
		return err
	}
	if err := writeLocked(s, name, next); err != nil {
		return err
	}
	st.version++
	return nil
}

// ReadSingleton returns the one record of a singleton collection, or def
// materialized when the collection is empty.
func ReadSingleton[T any](s *Store, name model.Collection, def T) (T, error) {
	records, err := Read[T](s, name)
	if err != nil {
		return def, err
	}
	if len(records) == 0 {
		return def, nil
	}
	return records[0], nil
}

// ReplaceSingleton writes the one slot of a singleton collection. It never
// appends a second record.
func ReplaceSingleton[T any](s *Store, name model.Collection, record T) error {
	return Replace(s, name, []T{record})
}
