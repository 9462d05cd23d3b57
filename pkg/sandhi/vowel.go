package sandhi

import (
	"unicode/utf8"

	"github.com/kerem-kaynak/nepali-sandhi/pkg/akshar"
)

// guna and vriddhi results for a final अ/आ, keyed by the following vowel.
type aResult struct {
	full     string
	sign     string
	citation string
}

var aRules = map[rune]aResult{
	'अ': {"आ", "ा", "दीर्घ सन्धि: अ/आ + अ/आ → आ"},
	'आ': {"आ", "ा", "दीर्घ सन्धि: अ/आ + अ/आ → आ"},
	'इ': {"ए", "े", "गुण सन्धि: अ/आ + इ/ई → ए"},
	'ई': {"ए", "े", "गुण सन्धि: अ/आ + इ/ई → ए"},
	'उ': {"ओ", "ो", "गुण सन्धि: अ/आ + उ/ऊ → ओ"},
	'ऊ': {"ओ", "ो", "गुण सन्धि: अ/आ + उ/ऊ → ओ"},
	'ए': {"ऐ", "ै", "वृद्धि सन्धि: अ/आ + ए/ऐ → ऐ"},
	'ऐ': {"ऐ", "ै", "वृद्धि सन्धि: अ/आ + ए/ऐ → ऐ"},
	'ओ': {"औ", "ौ", "वृद्धि सन्धि: अ/आ + ओ/औ → औ"},
	'औ': {"औ", "ौ", "वृद्धि सन्धि: अ/आ + ओ/औ → औ"},
	'ऋ': {"अर्", "र्", "गुण सन्धि: अ/आ + ऋ → अर्"},
}

// ayadi replacements for a final ए/ऐ/ओ/औ before a vowel: independent form
// and sign form.
var ayadi = map[rune]struct {
	replacement string
	citation    string
}{
	'ए': {"अय", "अयादि सन्धि: ए + स्वर → अय्"},
	'े': {"य", "अयादि सन्धि: ए + स्वर → अय्"},
	'ऐ': {"आय", "अयादि सन्धि: ऐ + स्वर → आय्"},
	'ै': {"ाय", "अयादि सन्धि: ऐ + स्वर → आय्"},
	'ओ': {"अव", "अयादि सन्धि: ओ + स्वर → अव्"},
	'ो': {"व", "अयादि सन्धि: ओ + स्वर → अव्"},
	'औ': {"आव", "अयादि सन्धि: औ + स्वर → आव्"},
	'ौ': {"ाव", "अयादि सन्धि: औ + स्वर → आव्"},
}

func applyVowel(first, second string) (Outcome, bool) {
	last, lastSize := utf8.DecodeLastRuneInString(first)
	prefix := first[:len(first)-lastSize]
	next, nextSize := utf8.DecodeRuneInString(second)
	rest := second[nextSize:]

	if !akshar.IsVowel(next) {
		return Outcome{}, false
	}

	// After यण् the following vowel stays an independent letter; only the
	// inherent अ is absorbed.
	yanTail := second
	if next == akshar.Inherent {
		yanTail = rest
	}

	switch last {
	case 'इ', 'ई':
		return vowelOutcome(prefix+"य"+yanTail, "यण् सन्धि: इ/ई + स्वर → य"), true
	case 'ि', 'ी':
		return vowelOutcome(prefix+"्य"+yanTail, "यण् सन्धि: इ/ई + स्वर → य"), true
	case 'उ', 'ऊ':
		return vowelOutcome(prefix+"व"+yanTail, "यण् सन्धि: उ/ऊ + स्वर → व"), true
	case 'ु', 'ू':
		return vowelOutcome(prefix+"्व"+yanTail, "यण् सन्धि: उ/ऊ + स्वर → व"), true
	}

	inherent := carriesInherent(last)
	if inherent || last == 'अ' || last == 'आ' || last == 'ा' {
		if r, ok := aRules[next]; ok {
			var out string
			switch {
			case inherent:
				out = first + r.sign + rest
			case endsInConsonant(prefix):
				out = prefix + r.sign + rest
			default:
				out = prefix + r.full + rest
			}
			return vowelOutcome(out, r.citation), true
		}
	}

	if a, ok := ayadi[last]; ok {
		return vowelOutcome(prefix+a.replacement+vowelAsSign(next, rest), a.citation), true
	}

	return Outcome{}, false
}

func vowelOutcome(output, citation string) Outcome {
	return Outcome{Output: output, Category: Vowel, Citation: citation}
}

// carriesInherent reports whether a morpheme ending in r ends in the
// inherent अ: a bare consonant, or a consonant with nukta.
func carriesInherent(r rune) bool {
	k := akshar.KindOf(r)
	return k == akshar.Consonant || k == akshar.Nukta
}

func endsInConsonant(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	return carriesInherent(r)
}

// vowelAsSign renders vowel v followed by rest after a consonant: the
// inherent अ disappears, other vowels become their dependent sign.
func vowelAsSign(v rune, rest string) string {
	if v == akshar.Inherent {
		return rest
	}
	if sign, ok := akshar.SignOf(v); ok {
		return string(sign) + rest
	}
	return string(v) + rest
}
