package horoscope

import (
	"unicode"
)

const languageWindow = 100

// head returns at most the first n runes of s.
func head(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

func isCyrillic(r rune) bool {
	return (r >= 'а' && r <= 'я') || (r >= 'А' && r <= 'Я') || r == 'ё' || r == 'Ё'
}

func isLatin(r rune) bool {
	return r < unicode.MaxASCII && unicode.IsLetter(r)
}

// HasCyrillic reports whether the first 100 characters of s contain a Russian letter.
func HasCyrillic(s string) bool {
	for _, r := range head(s, languageWindow) {
		if isCyrillic(r) {
			return true
		}
	}
	return false
}

// DetectLanguage guesses "ru", "en" or "unknown" from the first 100 characters.
func DetectLanguage(s string) string {
	var ru, en int
	for _, r := range head(s, languageWindow) {
		switch {
		case isCyrillic(r):
			ru++
		case isLatin(r):
			en++
		}
	}
	switch {
	case ru > en && ru > 5:
		return "ru"
	case en > ru && en > 5:
		return "en"
	default:
		return "unknown"
	}
}
