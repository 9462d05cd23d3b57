package akshar

import (
	"unicode"
	"unicode/utf8"
)

// TokenType identifies the type of token.
type TokenType int

const (
	TokenWord TokenType = iota
	TokenSeparator
)

// Token is a run of word or separator characters. Start and End are byte
// offsets, End exclusive.
type Token struct {
	Text  string
	Type  TokenType
	Start int
	End   int
}

// Words splits text into words and separators.
// Word characters: letters, numbers, and combining marks (matras, virama,
// anusvara and the rest of the Devanagari signs).
// Separators: whitespace, punctuation, danda, symbols.
func Words(text string) []Token {
	var tokens []Token
	if text == "" {
		return tokens
	}

	r, size := utf8.DecodeRuneInString(text)
	start := 0
	currentType := tokenType(r)

	for i := size; i <= len(text); {
		var nextType TokenType
		var width int
		if i < len(text) {
			r, width = utf8.DecodeRuneInString(text[i:])
			nextType = tokenType(r)
		} else {
			nextType = TokenType(-1) // force flush
		}

		if nextType != currentType {
			tokens = append(tokens, Token{
				Text:  text[start:i],
				Type:  currentType,
				Start: start,
				End:   i,
			})
			start = i
			currentType = nextType
		}
		if width == 0 {
			break
		}
		i += width
	}

	return tokens
}

// tokenType determines if a rune belongs to a word or a separator.
func tokenType(r rune) TokenType {
	switch KindOf(r) {
	case SentenceStop:
		return TokenSeparator
	case KindNone:
	default:
		return TokenWord
	}
	if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r) ||
		r == '\u200C' || r == '\u200D' {
		return TokenWord
	}
	return TokenSeparator
}
