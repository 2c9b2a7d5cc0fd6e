package roster

import "strings"

// isTermSeparator reports whether r splits search terms: the ASCII comma,
// the ideographic comma and the full-width comma
func isTermSeparator(r rune) bool {
	return r == ',' || r == '、' || r == '，'
}

// ParseQuery splits a raw search query into trimmed, non-empty terms
func ParseQuery(query string) []string {
	fields := strings.FieldsFunc(query, isTermSeparator)
	terms := make([]string, 0, len(fields))
	for _, field := range fields {
		if term := strings.TrimSpace(field); term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}

// MatchesTerms reports whether name contains at least one of terms.
// Matching is case-sensitive substring containment; no terms matches everything.
func MatchesTerms(name string, terms []string) bool {
	if len(terms) == 0 {
		return true
	}
	for _, term := range terms {
		if strings.Contains(name, term) {
			return true
		}
	}
	return false
}
