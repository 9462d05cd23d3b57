package sandhi

import (
	"strings"
	"unicode/utf8"

	"github.com/kerem-kaynak/nepali-sandhi/pkg/akshar"
)

const visargaMark = "ः"

// satva maps the stops before which visarga turns into the sibilant of
// the same place of articulation.
var satva = map[rune]string{
	'च': "श्",
	'छ': "श्",
	'ट': "ष्",
	'ठ': "ष्",
	'त': "स्",
	'थ': "स्",
}

// retainsVisarga reports whether visarga survives unchanged before r.
func retainsVisarga(r rune) bool {
	switch r {
	case 'क', 'ख', 'प', 'फ':
		return true
	}
	g, ok := akshar.GroupOf(r)
	return ok && g == akshar.Sibilant
}

func applyVisarga(first, second string) (Outcome, bool) {
	prefix, ok := strings.CutSuffix(first, visargaMark)
	if !ok {
		return Outcome{}, false
	}
	next, size := utf8.DecodeRuneInString(second)
	rest := second[size:]

	switch {
	case retainsVisarga(next):
		return Outcome{
			Output:   first + second,
			Category: Visarga,
			Citation: "विसर्ग सन्धि: विसर्ग retained before स/श/ष/unvoiced stops",
		}, true

	case akshar.IsVowel(next):
		return Outcome{
			Output:   prefix + "र" + vowelAsSign(next, rest),
			Category: Visarga,
			Citation: "विसर्ग सन्धि: विसर्ग → र before vowel",
		}, true

	case akshar.IsVoiced(next):
		return Outcome{
			Output:   prefix + "र" + second,
			Category: Visarga,
			Citation: "विसर्ग सन्धि: विसर्ग → र before voiced consonant",
		}, true
	}

	if sibilant, ok := satva[next]; ok {
		return Outcome{
			Output:   prefix + sibilant + second,
			Category: Visarga,
			Citation: "विसर्ग सन्धि: विसर्ग → श्/ष्/स् before च/ट/त",
		}, true
	}

	return Outcome{}, false
}
