package spellcheck

import (
	"path/filepath"
	"strings"
)

// Language represents a document kind the spell checker understands
type Language struct {
	Name           string
	FileExtensions []string

	// Prose marks kinds with no comment syntax. The whole document is
	// checked as a single comment span and no identifiers are extracted.
	Prose bool
}

// GetSupportedLanguages returns the document kinds the checker scans
func GetSupportedLanguages() []Language {
	return []Language{
		{
			Name:           "JavaScript",
			FileExtensions: []string{".js", ".jsx", ".mjs"},
		},
		{
			Name:           "TypeScript",
			FileExtensions: []string{".ts", ".tsx"},
		},
		{
			Name:           "Plain Text",
			FileExtensions: []string{".txt", ".text", ".md"},
			Prose:          true,
		},
	}
}

// GetLanguageByName returns a language by its name
func GetLanguageByName(name string) (Language, bool) {
	for _, lang := range GetSupportedLanguages() {
		if strings.EqualFold(lang.Name, name) {
			return lang, true
		}
	}
	return Language{}, false
}

// GetLanguageByExtension returns the language for a file path's extension
func GetLanguageByExtension(path string) (Language, bool) {
	ext := filepath.Ext(path)
	for _, lang := range GetSupportedLanguages() {
		for _, langExt := range lang.FileExtensions {
			if strings.EqualFold(langExt, ext) {
				return lang, true
			}
		}
	}
	return Language{}, false
}
