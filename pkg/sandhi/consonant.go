package sandhi

import (
	"strings"
	"unicode/utf8"

	"github.com/kerem-kaynak/nepali-sandhi/pkg/akshar"
)

const virama = "्"

type assimilation struct {
	prefix   string
	start    string
	merged   string
	citation string
}

// assimilations lists known prefix assimilations. They are checked before
// the general gemination, nasalization and voicing rules.
var assimilations = []assimilation{
	{"उत्", "ल", "उल्ल", "व्यञ्जन सन्धि: उत् + ल → उल्ल"},
	{"उत्", "च", "उच्च", "व्यञ्जन सन्धि: उत् + च → उच्च"},
	{"उत्", "ज", "उज्ज", "व्यञ्जन सन्धि: उत् + ज → उज्ज"},
	{"उत्", "ड", "उड्ड", "व्यञ्जन सन्धि: उत् + ड → उड्ड"},
	{"उत्", "न", "उन्न", "व्यञ्जन सन्धि: उत् + न → उन्न"},
	{"उत्", "ह", "उद्ध", "व्यञ्जन सन्धि: उत् + ह → उद्ध"},
	{"उत्", "स", "उत्स", "व्यञ्जन सन्धि: उत् + स → उत्स"},
	{"उत्", "थ", "उत्थ", "व्यञ्जन सन्धि: उत् + थ → उत्थ"},
	{"उत्", "प", "उत्प", "व्यञ्जन सन्धि: उत् + प → उत्प"},
	{"सम्", "क", "सङ्क", "व्यञ्जन सन्धि: सम् + क → सङ्क"},
}

func applyConsonant(first, second string) (Outcome, bool) {
	for _, a := range assimilations {
		if first != a.prefix {
			continue
		}
		if rest, ok := strings.CutPrefix(second, a.start); ok {
			return Outcome{
				Output:   a.merged + rest,
				Category: Consonant,
				Citation: a.citation,
			}, true
		}
	}

	stem, ok := strings.CutSuffix(first, virama)
	if !ok {
		return Outcome{}, false
	}
	base, size := utf8.DecodeLastRuneInString(stem)
	if !akshar.IsConsonant(base) {
		return Outcome{}, false
	}
	prefix := stem[:len(stem)-size]
	next, _ := utf8.DecodeRuneInString(second)

	if next == base {
		return Outcome{
			Output:   prefix + string(base) + virama + second,
			Category: Consonant,
			Citation: "व्यञ्जन सन्धि: gemination (same consonant doubling)",
		}, true
	}

	// Nasals are also voiced, so this must run before voicing.
	if akshar.IsNasal(next) {
		g, _ := akshar.GroupOf(base)
		if n, ok := akshar.NasalOf(g); ok {
			return Outcome{
				Output:   prefix + string(n) + virama + second,
				Category: Consonant,
				Citation: "व्यञ्जन सन्धि: stop → nasal of its group before a nasal",
			}, true
		}
	}

	if akshar.IsVoiceless(base) && akshar.IsVoiced(next) {
		if v, ok := akshar.VoicedCounterpart(base); ok {
			return Outcome{
				Output:   prefix + string(v) + virama + second,
				Category: Consonant,
				Citation: "व्यञ्जन सन्धि: voiceless stop → voiced before a voiced sound",
			}, true
		}
	}

	return Outcome{}, false
}
