// Package fieldstore holds a fixed set of integer fields, each guarded by its
// own mutex. Single-field access only ever takes that field's lock; the
// snapshot path takes every lock in ascending index order.
package fieldstore

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/DjordjeVuckovic/fieldbench/internal/apperr"
)

const (
	// DefaultFieldCount is the field count the String snapshot path is built for.
	DefaultFieldCount = 3
	// Sentinel is returned by Get for an index outside the store.
	Sentinel = -1
)

// Store is a fixed set of integer fields, each guarded by its own lock.
type Store struct {
	fields []int
	locks  []sync.Mutex
}

// New returns a store of n zeroed fields. A negative n yields an empty store.
func New(n int) *Store {
	n = max(n, 0)
	return &Store{
		fields: make([]int, n),
		locks:  make([]sync.Mutex, n),
	}
}

// Len returns the number of fields.
func (s *Store) Len() int {
	return len(s.fields)
}

func (s *Store) inRange(index int) bool {
	return index >= 0 && index < len(s.fields)
}

// Set writes value at index. An out-of-range index is ignored.
func (s *Store) Set(index, value int) {
	if !s.inRange(index) {
		return
	}
	s.locks[index].Lock()
	s.fields[index] = value
	s.locks[index].Unlock()
}

// Get returns the value at index, or Sentinel when index is out of range.
// Use Lookup when a stored -1 must be told apart from a bad index.
func (s *Store) Get(index int) int {
	v, ok := s.Lookup(index)
	if !ok {
		return Sentinel
	}
	return v
}

// Lookup returns the value at index and whether index is in range.
func (s *Store) Lookup(index int) (int, bool) {
	if !s.inRange(index) {
		return 0, false
	}
	s.locks[index].Lock()
	v := s.fields[index]
	s.locks[index].Unlock()
	return v, true
}

// Snapshot renders every field as "Fields: [v0, v1, ...]" while holding all
// locks at once.
func (s *Store) Snapshot() string {
	s.lockAll()
	defer s.unlockAll()

	var b strings.Builder
	b.WriteString("Fields: [")
	for i, v := range s.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')
	return b.String()
}

// SnapshotExpecting returns Snapshot only if the store has exactly n fields.
// On mismatch no lock is taken and no field is read.
func (s *Store) SnapshotExpecting(n int) (string, error) {
	if s.Len() != n {
		return "", apperr.NewConfig("fields", n, s.Len())
	}
	return s.Snapshot(), nil
}

// String is the snapshot used by trace replay. A store that is not
// DefaultFieldCount wide yields a descriptive error string instead of a
// snapshot.
func (s *Store) String() string {
	out, err := s.SnapshotExpecting(DefaultFieldCount)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}
	return out
}

// lockAll acquires locks in ascending index order. It is the only place more
// than one lock is held, so any two snapshots acquire in the same order.
func (s *Store) lockAll() {
	for i := range s.locks {
		s.locks[i].Lock()
	}
}

func (s *Store) unlockAll() {
	for i := len(s.locks) - 1; i >= 0; i-- {
		s.locks[i].Unlock()
	}
}
