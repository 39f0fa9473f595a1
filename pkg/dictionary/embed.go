package dictionary

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed data/words.txt
var embeddedFS embed.FS

// loadEmbeddedWords reads the embedded word list, one word per line
func loadEmbeddedWords() ([]string, error) {
	file, err := embeddedFS.Open("data/words.txt")
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var words []string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}

	return words, scanner.Err()
}
