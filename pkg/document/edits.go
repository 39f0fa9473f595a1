package document

import (
	"fmt"
	"sort"
	"strings"
)

// Replacement is a single text splice: the bytes in [Start, End) are
// replaced by NewText
type Replacement struct {
	Start   int    `json:"start"`
	End     int    `json:"end"`
	NewText string `json:"new_text"`
}

// ApplyReplacements applies a batch of replacements to text. The batch is
// atomic: if any replacement is out of bounds or two replacements overlap,
// an error is returned and no edit is applied. Replacements may be given
// in any order.
func ApplyReplacements(text string, replacements []Replacement) (string, error) {
	if len(replacements) == 0 {
		return text, nil
	}

	sorted := make([]Replacement, len(replacements))
	copy(sorted, replacements)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	for i, rep := range sorted {
		if rep.Start < 0 || rep.End < rep.Start || rep.End > len(text) {
			return "", fmt.Errorf("replacement range [%d,%d) is outside the document (length %d)", rep.Start, rep.End, len(text))
		}
		if i > 0 && rep.Start < sorted[i-1].End {
			return "", fmt.Errorf("replacement ranges [%d,%d) and [%d,%d) overlap", sorted[i-1].Start, sorted[i-1].End, rep.Start, rep.End)
		}
	}

	var builder strings.Builder
	cursor := 0
	for _, rep := range sorted {
		builder.WriteString(text[cursor:rep.Start])
		builder.WriteString(rep.NewText)
		cursor = rep.End
	}
	builder.WriteString(text[cursor:])

	return builder.String(), nil
}
