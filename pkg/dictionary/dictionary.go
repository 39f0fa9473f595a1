// Package dictionary provides the spelling model used to check words and
// produce ranked correction suggestions
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/sajari/fuzzy"
)

// Config controls how the dictionary is loaded
type Config struct {
	// DictDir is an optional directory holding a Hunspell-style dictionary
	// pair (<locale>.dic and <locale>.aff). When empty, the embedded word
	// list is used instead.
	DictDir string

	// Locale selects the dictionary pair inside DictDir
	Locale string

	// Depth is the maximum edit distance considered for suggestions
	Depth int

	// Threshold is the minimum training frequency for a word to count
	Threshold int

	// MaxSuggestions caps the number of suggestions returned per word
	MaxSuggestions int
}

// DefaultConfig returns the configuration used when no flags override it
func DefaultConfig() Config {
	return Config{
		Locale:         "en_US",
		Depth:          2,
		Threshold:      1,
		MaxSuggestions: 5,
	}
}

// Dictionary is a loaded spelling model. It is safe for concurrent use.
type Dictionary struct {
	model          *fuzzy.Model
	locale         string
	source         string
	wordCount      int
	maxSuggestions int
}

var (
	loadMutex sync.Mutex
	loaded    *Dictionary
)

// Load builds the process-wide dictionary. Loading happens once: later
// calls return the dictionary that is already trained, so repeated or
// concurrent activation never retrains the model.
func Load(config Config) (*Dictionary, error) {
	loadMutex.Lock()
	defer loadMutex.Unlock()

	if loaded != nil {
		log.Printf("[Dictionary] Already loaded (%s, %d words); reusing", loaded.locale, loaded.wordCount)
		return loaded, nil
	}

	dict, err := newDictionary(config)
	if err != nil {
		return nil, err
	}

	loaded = dict
	return dict, nil
}

// newDictionary trains a fresh model from the configured source
func newDictionary(config Config) (*Dictionary, error) {
	if config.Locale == "" {
		config.Locale = "en_US"
	}
	if config.Depth <= 0 {
		config.Depth = 2
	}
	if config.Threshold <= 0 {
		config.Threshold = 1
	}
	if config.MaxSuggestions <= 0 {
		config.MaxSuggestions = 5
	}

	// Create the fuzzy model
	model := fuzzy.NewModel()
	model.SetDepth(config.Depth)
	model.SetThreshold(config.Threshold)
	model.SetUseAutocomplete(true)

	words, source, err := loadWords(config)
	if err != nil {
		return nil, err
	}

	for _, word := range words {
		model.TrainWord(strings.ToLower(word))
	}

	// Train additional common programming terms so ordinary code
	// vocabulary in comments is not flagged
	for _, term := range programmingTerms {
		model.TrainWord(term)
	}

	log.Printf("[Dictionary] Trained %d words from %s", len(words), source)

	return &Dictionary{
		model:          model,
		locale:         config.Locale,
		source:         source,
		wordCount:      len(words),
		maxSuggestions: config.MaxSuggestions,
	}, nil
}

// loadWords reads the word list from the dictionary directory if one is
// configured, falling back to the embedded list otherwise
func loadWords(config Config) ([]string, string, error) {
	if config.DictDir == "" {
		words, err := loadEmbeddedWords()
		if err != nil {
			return nil, "", err
		}
		return words, "embedded word list", nil
	}

	dicPath := filepath.Join(config.DictDir, config.Locale+".dic")
	affPath := filepath.Join(config.DictDir, config.Locale+".aff")

	// The affix file is required alongside the word list even though the
	// fuzzy model only consumes the words
	if _, err := os.Stat(affPath); err != nil {
		return nil, "", fmt.Errorf("affix file for locale %s not found: %v", config.Locale, err)
	}

	file, err := os.Open(dicPath)
	if err != nil {
		return nil, "", fmt.Errorf("word list for locale %s not found: %v", config.Locale, err)
	}
	defer file.Close()

	words, err := parseDicFile(file)
	if err != nil {
		return nil, "", fmt.Errorf("error reading %s: %v", dicPath, err)
	}

	return words, dicPath, nil
}

// parseDicFile reads a Hunspell .dic word list: an optional leading entry
// count, then one entry per line with optional /flags after the word
func parseDicFile(r io.Reader) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if first {
			first = false
			if _, err := strconv.Atoi(line); err == nil {
				// Entry count header
				continue
			}
		}

		if idx := strings.IndexByte(line, '/'); idx >= 0 {
			line = line[:idx]
		}
		if line != "" {
			words = append(words, line)
		}
	}

	return words, scanner.Err()
}

// Check reports whether a word is spelled correctly. Checking is
// case-insensitive; the empty word is considered correct.
func (d *Dictionary) Check(word string) bool {
	lower := strings.ToLower(word)
	if lower == "" {
		return true
	}

	// A known word spell-checks to itself
	return d.model.SpellCheck(lower) == lower
}

// Suggest returns ranked corrections for a word, best first. The list may
// be empty when nothing in the model is close enough.
func (d *Dictionary) Suggest(word string) []string {
	return d.model.SpellCheckSuggestions(strings.ToLower(word), d.maxSuggestions)
}

// Locale returns the locale the dictionary was loaded for
func (d *Dictionary) Locale() string {
	return d.locale
}

// Source describes where the word list came from
func (d *Dictionary) Source() string {
	return d.source
}

// WordCount returns the number of words trained from the word list, not
// counting the built-in programming terms
func (d *Dictionary) WordCount() int {
	return d.wordCount
}
