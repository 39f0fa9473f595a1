// Package document tracks checked documents and the spelling diagnostics
// most recently published against them
package document

import (
	"sort"
	"strings"
	"sync"
)

// Diagnostic is a single spelling annotation anchored to a byte range of
// the document text
type Diagnostic struct {
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Message  string `json:"message"`
	Code     string `json:"code"`
	Severity string `json:"severity"`
}

// SeverityWarning is the severity published for spelling diagnostics
const SeverityWarning = "warning"

// Position is a 1-based line and column location in a document
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Document represents one checked file: its text as of the last scan and
// the diagnostics produced by that scan
type Document struct {
	Path        string       `json:"path"`
	Text        string       `json:"-"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// New creates a document with no diagnostics
func New(path, text string) *Document {
	return &Document{
		Path: path,
		Text: text,
	}
}

// PositionFor converts a byte offset into a 1-based line and column.
// Offsets outside the text are clamped to its ends.
func (d *Document) PositionFor(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(d.Text) {
		offset = len(d.Text)
	}

	prefix := d.Text[:offset]
	line := strings.Count(prefix, "\n") + 1
	column := offset - strings.LastIndexByte(prefix, '\n')

	return Position{Line: line, Column: column}
}

// Store holds the documents tracked for a session, keyed by file path.
// Putting a document for a path that is already tracked replaces the
// previous entry, so each scan's diagnostics supersede the last scan's.
type Store struct {
	mutex sync.RWMutex
	docs  map[string]*Document
}

// NewStore creates an empty document store
func NewStore() *Store {
	return &Store{
		docs: make(map[string]*Document),
	}
}

// Put adds or replaces the document for its path
func (s *Store) Put(doc *Document) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.docs[doc.Path] = doc
}

// Get returns the document tracked for a path
func (s *Store) Get(path string) (*Document, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	doc, ok := s.docs[path]
	return doc, ok
}

// Remove drops the document tracked for a path
func (s *Store) Remove(path string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.docs, path)
}

// Paths returns the tracked file paths in sorted order
func (s *Store) Paths() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	paths := make([]string, 0, len(s.docs))
	for path := range s.docs {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	return paths
}

// Len returns the number of tracked documents
func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.docs)
}

// DiagnosticCount returns the total number of diagnostics across all
// tracked documents
func (s *Store) DiagnosticCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	count := 0
	for _, doc := range s.docs {
		count += len(doc.Diagnostics)
	}

	return count
}
