package akshar

// Length is the quantity of a vowel or vowel sign.
type Length uint8

const (
	NoLength Length = iota
	Short           // ह्रस्व
	Long            // दीर्घ
)

// Inherent is the vowel carried by every bare consonant.
const Inherent = 'अ'

// signs maps independent vowels to their dependent signs. अ has no sign.
var signs = map[rune]rune{
	'आ': 'ा',
	'इ': 'ि',
	'ई': 'ी',
	'उ': 'ु',
	'ऊ': 'ू',
	'ऋ': 'ृ',
	'ॠ': 'ॄ',
	'ऌ': 'ॢ',
	'ॡ': 'ॣ',
	'ए': 'े',
	'ऐ': 'ै',
	'ओ': 'ो',
	'औ': 'ौ',
}

var vowelsBySign = invert(signs)

var lengthen = map[rune]rune{
	'इ': 'ई',
	'उ': 'ऊ',
	'ऋ': 'ॠ',
	'ऌ': 'ॡ',
	'ि': 'ी',
	'ु': 'ू',
	'ृ': 'ॄ',
	'ॢ': 'ॣ',
}

var shorten = invert(lengthen)

func invert(m map[rune]rune) map[rune]rune {
	out := make(map[rune]rune, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// SignOf returns the dependent sign of an independent vowel.
// It reports false for अ, which is written without a sign.
func SignOf(v rune) (rune, bool) {
	s, ok := signs[v]
	return s, ok
}

// IndependentVowel returns the independent vowel written by sign.
func IndependentVowel(sign rune) (rune, bool) {
	v, ok := vowelsBySign[sign]
	return v, ok
}

// Lengthen converts a short vowel or sign to its long counterpart.
func Lengthen(r rune) (rune, bool) {
	l, ok := lengthen[r]
	return l, ok
}

// Shorten converts a long vowel or sign to its short counterpart.
func Shorten(r rune) (rune, bool) {
	s, ok := shorten[r]
	return s, ok
}

// LengthOf classifies a vowel or vowel sign as short or long.
func LengthOf(r rune) Length {
	switch r {
	case 'अ', 'इ', 'उ', 'ऋ', 'ऌ', 'ि', 'ु', 'ृ', 'ॢ':
		return Short
	case 'आ', 'ई', 'ऊ', 'ॠ', 'ॡ', 'ए', 'ऐ', 'ओ', 'औ',
		'ा', 'ी', 'ू', 'ॄ', 'ॣ', 'े', 'ै', 'ो', 'ौ':
		return Long
	}
	return NoLength
}
