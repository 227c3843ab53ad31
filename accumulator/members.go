package accumulator

import (
	"sort"

	"github.com/accumulator-labs/go-accumulator/bigint"
)

// memberSet is the accumulator's member collection: ascending, duplicate-free
// prime encodings. The canonical ordering is what makes the binary encoding
// deterministic.
type memberSet []bigint.Int

// search returns the insertion index for p and whether p is present.
func (s memberSet) search(p bigint.Int) (int, bool) {
	i := sort.Search(len(s), func(i int) bool { return s[i].Cmp(p) >= 0 })
	return i, i < len(s) && s[i].Equal(p)
}

func (s memberSet) contains(p bigint.Int) bool {
	_, ok := s.search(p)
	return ok
}

// insert adds p if absent and reports whether the set changed.
func (s *memberSet) insert(p bigint.Int) bool {
	i, ok := s.search(p)
	if ok {
		return false
	}
	*s = append(*s, nil)
	copy((*s)[i+1:], (*s)[i:])
	(*s)[i] = p
	return true
}

// remove deletes p if present and reports whether the set changed.
func (s *memberSet) remove(p bigint.Int) bool {
	i, ok := s.search(p)
	if !ok {
		return false
	}
	*s = append((*s)[:i], (*s)[i+1:]...)
	return true
}

// clone returns a deep copy; the element Ints are cloned so no value is
// aliased across accumulator instances.
func (s memberSet) clone() memberSet {
	if s == nil {
		return nil
	}
	c := make(memberSet, len(s))
	for i, p := range s {
		c[i] = p.Clone()
	}
	return c
}

func (s memberSet) equal(o memberSet) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if !s[i].Equal(o[i]) {
			return false
		}
	}
	return true
}
