package workspace

import (
	"sort"
	"sync"
)

// IgnoreSet tracks the cleaned words a session has chosen to skip.
// Ignoring is monotonic: words are added for the lifetime of the session
// and never removed.
type IgnoreSet struct {
	mutex sync.RWMutex
	words map[string]struct{}
}

// NewIgnoreSet creates an empty ignore set
func NewIgnoreSet() *IgnoreSet {
	return &IgnoreSet{
		words: make(map[string]struct{}),
	}
}

// Ignore adds a word to the set and reports whether it was newly added.
// Ignoring a word that is already present is a no-op.
func (s *IgnoreSet) Ignore(word string) bool {
	if word == "" {
		return false
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.words[word]; exists {
		return false
	}
	s.words[word] = struct{}{}

	return true
}

// IgnoreAll adds every word in the batch and returns the number of words
// that were not already present
func (s *IgnoreSet) IgnoreAll(words []string) int {
	added := 0
	for _, word := range words {
		if s.Ignore(word) {
			added++
		}
	}

	return added
}

// Contains reports whether a word has been ignored
func (s *IgnoreSet) Contains(word string) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	_, exists := s.words[word]
	return exists
}

// Words returns the ignored words in sorted order
func (s *IgnoreSet) Words() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	words := make([]string, 0, len(s.words))
	for word := range s.words {
		words = append(words, word)
	}
	sort.Strings(words)

	return words
}

// Len returns the number of ignored words
func (s *IgnoreSet) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.words)
}
