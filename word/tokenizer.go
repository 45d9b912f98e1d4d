// Package word tokenizes raw text into alphabetic words and feeds them
// into a sorted, duplicate-free set.
package word

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Tokenize splits s into maximal runs of ASCII alphabetic characters.
// Digits, punctuation and whitespace only separate runs and are never
// part of a token. An input without a single letter yields no tokens.
func Tokenize(s string) []string {
	tokens := make([]string, 0, 8)
	start := -1
	for i := 0; i < len(s); i++ {
		if isAlpha(s[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, s[start:i])
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, s[start:])
	}
	return tokens
}
