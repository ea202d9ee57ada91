// Package wordlist provides word list filtering helpers.
package wordlist

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// ASCIILetters keeps words made only of ASCII letters.
func ASCIILetters(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if (ch < 'a' || ch > 'z') && (ch < 'A' || ch > 'Z') {
			return false
		}
	}
	return true
}

// MaxLen keeps words of at most n letters, so a word always fits one lane row.
func MaxLen(n int) FilterFunc {
	return func(word string) bool {
		return n <= 0 || len(word) <= n
	}
}

// Apply returns the words accepted by every filter.
func Apply(words []string, filters ...FilterFunc) []string {
	out := make([]string, 0, len(words))
next:
	for _, word := range words {
		for _, keep := range filters {
			if !keep(word) {
				continue next
			}
		}
		out = append(out, word)
	}
	return out
}
