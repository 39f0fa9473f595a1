package spellcheck

// Detect runs one comment's text through the filter pipeline and returns
// a record for every token occurrence the dictionary flags. A token is
// skipped when it matches an identifier, raw or after cleaning, when it
// cleans down to fewer than three letters, or when its cleaned form has
// been ignored for the session. Repeated misspellings produce one record
// per occurrence.
func Detect(text string, identifiers IdentifierSet, dict Dictionary, ignore Ignorer) []MisspellingRecord {
	var records []MisspellingRecord

	for _, token := range Tokenize(text) {
		if identifiers.Matches(token) {
			continue
		}

		cleaned := CleanWord(token)
		if len(cleaned) <= 2 {
			continue
		}

		// An identifier mention can reach here with punctuation attached
		// to the raw token
		if identifiers.Matches(cleaned) {
			continue
		}

		if ignore != nil && ignore.Contains(cleaned) {
			continue
		}

		if dict.Check(cleaned) {
			continue
		}

		records = append(records, MisspellingRecord{
			Original:    token,
			Cleaned:     cleaned,
			Suggestions: dict.Suggest(cleaned),
		})
	}

	return records
}
