package word

import (
	"github.com/brownthomasp/xord/lib/set"
)

// Sorter collects words into a sorted set and hands the deduplicated
// sequence back in lexicographic (byte-wise, case-sensitive) order.
// Single logical owner, no internal locking.
type Sorter struct {
	set    *set.SortedSet[string]
	isDesc bool
}

type SorterOpt func(*Sorter)

func WithSorterDesc() SorterOpt {
	return func(s *Sorter) {
		s.isDesc = true
	}
}

func NewSorter(opts ...SorterOpt) *Sorter {
	s := &Sorter{}
	for _, o := range opts {
		o(s)
	}
	if s.isDesc {
		s.set = set.NewSortedSet[string](set.WithSortedSetDesc[string]())
	} else {
		s.set = set.NewSortedSet[string]()
	}
	return s
}

// Insert adds one word, reporting whether it was new.
func (s *Sorter) Insert(word string) bool {
	return s.set.Add(word)
}

// InsertText tokenizes text and inserts every token in encounter order.
// It reports how many tokens were new and how many were duplicates.
func (s *Sorter) InsertText(text string) (inserted, dups int) {
	for _, token := range Tokenize(text) {
		if s.set.Add(token) {
			inserted++
		} else {
			dups++
		}
	}
	return inserted, dups
}

func (s *Sorter) Contains(word string) bool {
	return s.set.Contains(word)
}

func (s *Sorter) Len() int64 {
	return s.set.Len()
}

// Words snapshots the sorted, duplicate-free sequence.
func (s *Sorter) Words() []string {
	return s.set.Keys()
}

// Foreach streams words without materializing the snapshot slice.
func (s *Sorter) Foreach(action func(idx int64, word string) bool) {
	s.set.Foreach(action)
}

func (s *Sorter) Release() {
	s.set.Release()
}
