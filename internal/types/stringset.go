package types

import (
	"encoding/json"
	"sort"
)

// StringSet is a set of lowercase tags (canonical skills, keywords).
// It marshals to a sorted JSON array so output is deterministic.
type StringSet map[string]struct{}

// NewStringSet builds a set from the given values.
func NewStringSet(values ...string) StringSet {
	s := make(StringSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts a value into the set.
func (s StringSet) Add(value string) {
	s[value] = struct{}{}
}

// Has reports whether the value is in the set.
func (s StringSet) Has(value string) bool {
	_, ok := s[value]
	return ok
}

// Sorted returns the set's values in ascending order.
func (s StringSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Intersect returns the values present in both sets, sorted.
func (s StringSet) Intersect(other StringSet) []string {
	out := make([]string, 0)
	for v := range s {
		if other.Has(v) {
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

// Subtract returns the values of s not present in other, sorted.
func (s StringSet) Subtract(other StringSet) []string {
	out := make([]string, 0)
	for v := range s {
		if !other.Has(v) {
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

// MarshalJSON implements json.Marshaler.
func (s StringSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON implements json.Unmarshaler, accepting a JSON array.
func (s *StringSet) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*s = NewStringSet(values...)
	return nil
}
