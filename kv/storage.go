package kv

import (
	"iter"

	"github.com/indigo-web/utils/strcomp"
)

type Pair struct {
	Key, Value string
}

// Storage is an associative structure for storing (string, string) pairs. It
// acts as a map but uses linear search instead, which proves to be more
// efficient on a relatively low amount of entries, which headers usually are.
//
// Keys are matched case-insensitively. Inserting a key that is already present
// doesn't produce a second entry: the new value is folded into the existing one
// with a comma separator, preserving insertion order of the fragments. So a
// key always maps to exactly one string.
type Storage struct {
	pairs []Pair
}

func New() *Storage {
	return new(Storage)
}

// NewPrealloc returns an instance of Storage with pre-allocated underlying storage.
func NewPrealloc(n int) *Storage {
	return &Storage{
		pairs: make([]Pair, 0, n),
	}
}

// Add inserts the pair, folding the value into an already present entry of the
// same key, if any.
func (s *Storage) Add(key, value string) *Storage {
	for i := range s.pairs {
		if strcomp.EqualFold(key, s.pairs[i].Key) {
			s.pairs[i].Value += "," + value
			return s
		}
	}

	s.pairs = append(s.pairs, Pair{
		Key:   key,
		Value: value,
	})

	return s
}

// Value returns the value corresponding to the key, or an empty string.
func (s *Storage) Value(key string) string {
	return s.ValueOr(key, "")
}

// ValueOr returns either the value corresponding to the key or the custom
// value passed as the second parameter.
func (s *Storage) ValueOr(key, or string) string {
	value, found := s.Get(key)
	if !found {
		return or
	}

	return value
}

// Get returns a value and a bool, indicating whether the entry was found. If
// it wasn't, the value is an empty string.
func (s *Storage) Get(key string) (value string, found bool) {
	for _, pair := range s.pairs {
		if strcomp.EqualFold(key, pair.Key) {
			return pair.Value, true
		}
	}

	return "", false
}

// Has indicates whether there's an entry of the key.
func (s *Storage) Has(key string) bool {
	_, found := s.Get(key)
	return found
}

// Iter returns an iterator over the pairs, in insertion order.
func (s *Storage) Iter() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, pair := range s.pairs {
			if !yield(pair.Key, pair.Value) {
				break
			}
		}
	}
}

// Len returns the number of stored pairs.
func (s *Storage) Len() int {
	return len(s.pairs)
}

func (s *Storage) Empty() bool {
	return s.Len() == 0
}

// Expose exposes the underlying pairs slice.
func (s *Storage) Expose() []Pair {
	return s.pairs
}

// Clear removes all the entries, keeping the allocated space.
func (s *Storage) Clear() *Storage {
	s.pairs = s.pairs[:0]
	return s
}
