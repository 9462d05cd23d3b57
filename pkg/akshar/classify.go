package akshar

// Kind is the semantic category of a Devanagari codepoint.
type Kind uint8

const (
	// KindNone is returned for lookahead past the end of input or
	// for characters outside the Devanagari block.
	KindNone Kind = iota
	Vowel
	Consonant
	VowelSign
	Virama
	Chandrabindu
	Anusvara
	Visarga
	Nukta
	Avagraha
	Numeral
	SentenceStop
	OtherMark
)

var kindNames = [...]string{
	KindNone:     "none",
	Vowel:        "vowel",
	Consonant:    "consonant",
	VowelSign:    "vowel-sign",
	Virama:       "virama",
	Chandrabindu: "chandrabindu",
	Anusvara:     "anusvara",
	Visarga:      "visarga",
	Nukta:        "nukta",
	Avagraha:     "avagraha",
	Numeral:      "numeral",
	SentenceStop: "sentence-stop",
	OtherMark:    "other-mark",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// CharInfo describes a classified codepoint. Group and Nasal are only
// meaningful when Kind is Consonant.
type CharInfo struct {
	Kind  Kind
	Group Group
	Nasal bool
}

const (
	blockStart = 0x0900
	blockEnd   = 0x097F
)

// table holds one entry per codepoint in U+0900..U+097F.
var table = buildTable()

type span struct {
	lo, hi rune
	info   CharInfo
}

func mark(k Kind) CharInfo { return CharInfo{Kind: k} }

func cons(g Group) CharInfo { return CharInfo{Kind: Consonant, Group: g} }

func nasal(g Group) CharInfo { return CharInfo{Kind: Consonant, Group: g, Nasal: true} }

// spans lists the block in ascending order. Gaps fall back to OtherMark.
var spans = []span{
	{0x0900, 0x0901, mark(Chandrabindu)}, // inverted chandrabindu, chandrabindu
	{0x0902, 0x0902, mark(Anusvara)},
	{0x0903, 0x0903, mark(Visarga)},
	{0x0904, 0x0914, mark(Vowel)},

	{0x0915, 0x0918, cons(Velar)}, // क ख ग घ
	{0x0919, 0x0919, nasal(Velar)},
	{0x091A, 0x091D, cons(Palatal)}, // च छ ज झ
	{0x091E, 0x091E, nasal(Palatal)},
	{0x091F, 0x0922, cons(Retroflex)}, // ट ठ ड ढ
	{0x0923, 0x0923, nasal(Retroflex)},
	{0x0924, 0x0927, cons(Dental)}, // त थ द ध
	{0x0928, 0x0929, nasal(Dental)}, // न ऩ
	{0x092A, 0x092D, cons(Labial)},  // प फ ब भ
	{0x092E, 0x092E, nasal(Labial)},
	{0x092F, 0x0935, cons(Semivowel)}, // य र ऱ ल ळ ऴ व
	{0x0936, 0x0938, cons(Sibilant)},  // श ष स
	{0x0939, 0x0939, cons(OtherGroup)},

	{0x093A, 0x093B, mark(VowelSign)},
	{0x093C, 0x093C, mark(Nukta)},
	{0x093D, 0x093D, mark(Avagraha)},
	{0x093E, 0x094C, mark(VowelSign)},
	{0x094D, 0x094D, mark(Virama)},
	{0x094E, 0x094F, mark(VowelSign)},
	{0x0950, 0x0950, mark(Vowel)},     // ॐ
	{0x0951, 0x0957, mark(VowelSign)}, // vedic accents and length marks

	{0x0958, 0x095A, cons(Velar)}, // क़ ख़ ग़
	{0x095B, 0x095B, cons(Palatal)},
	{0x095C, 0x095D, cons(Retroflex)},
	{0x095E, 0x095E, cons(Labial)},
	{0x095F, 0x095F, cons(Semivowel)},

	{0x0960, 0x0961, mark(Vowel)},
	{0x0962, 0x0963, mark(VowelSign)},
	{0x0964, 0x0965, mark(SentenceStop)},
	{0x0966, 0x096F, mark(Numeral)},
	{0x0970, 0x0971, mark(OtherMark)},
	{0x0972, 0x0977, mark(Vowel)},
	{0x0978, 0x097F, cons(OtherGroup)},
}

func buildTable() [blockEnd - blockStart + 1]CharInfo {
	var t [blockEnd - blockStart + 1]CharInfo
	for i := range t {
		t[i] = mark(OtherMark)
	}
	for _, s := range spans {
		for r := s.lo; r <= s.hi; r++ {
			t[r-blockStart] = s.info
		}
	}
	return t
}

// Classify returns the category of r. The boolean is false only for
// codepoints outside the Devanagari block.
func Classify(r rune) (CharInfo, bool) {
	if r < blockStart || r > blockEnd {
		return CharInfo{}, false
	}
	return table[r-blockStart], true
}

// KindOf returns the Kind of r, or KindNone outside the block.
func KindOf(r rune) Kind {
	info, _ := Classify(r)
	return info.Kind
}

// IsVowel reports whether r is an independent vowel.
func IsVowel(r rune) bool { return KindOf(r) == Vowel }

// IsConsonant reports whether r is a consonant, including nukta forms.
func IsConsonant(r rune) bool { return KindOf(r) == Consonant }

// IsVowelSign reports whether r is a dependent vowel sign (matra).
func IsVowelSign(r rune) bool { return KindOf(r) == VowelSign }

// IsVirama reports whether r is the virama (halanta).
func IsVirama(r rune) bool { return KindOf(r) == Virama }

// IsNasalization reports whether r is anusvara, chandrabindu or visarga,
// the marks that attach to the end of the preceding akshara.
func IsNasalization(r rune) bool {
	switch KindOf(r) {
	case Anusvara, Chandrabindu, Visarga:
		return true
	}
	return false
}
