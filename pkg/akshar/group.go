package akshar

// Group is the articulatory family (varga) of a consonant.
type Group uint8

const (
	NoGroup Group = iota
	Velar
	Palatal
	Retroflex
	Dental
	Labial
	Semivowel
	Sibilant
	OtherGroup
)

var groupNames = [...]string{
	NoGroup:    "none",
	Velar:      "velar",
	Palatal:    "palatal",
	Retroflex:  "retroflex",
	Dental:     "dental",
	Labial:     "labial",
	Semivowel:  "semivowel",
	Sibilant:   "sibilant",
	OtherGroup: "other",
}

func (g Group) String() string {
	if int(g) < len(groupNames) {
		return groupNames[g]
	}
	return "unknown"
}

// IsStop reports whether g is one of the five stop groups.
func (g Group) IsStop() bool {
	return g >= Velar && g <= Labial
}

// stopBase is the first (voiceless plain) consonant of each stop group.
var stopBase = map[Group]rune{
	Velar:     'क',
	Palatal:   'च',
	Retroflex: 'ट',
	Dental:    'त',
	Labial:    'प',
}

// nuktaPosition maps the precomposed nukta consonants to the position of
// the letter they are derived from.
var nuktaPosition = map[rune]int{
	'\u0958': 1, // क़
	'\u0959': 2, // ख़
	'\u095A': 3, // ग़
	'\u095B': 3, // ज़
	'\u095C': 3, // ड़
	'\u095D': 4, // ढ़
	'\u095E': 2, // फ़
	'\u0929': 5, // ऩ
}

const glottal = 'ह'

// GroupOf returns the group of consonant r.
func GroupOf(r rune) (Group, bool) {
	info, ok := Classify(r)
	if !ok || info.Kind != Consonant {
		return NoGroup, false
	}
	return info.Group, true
}

// GroupPosition returns the 1-indexed position of r inside its stop group:
// 1 voiceless, 2 voiceless aspirated, 3 voiced, 4 voiced aspirated, 5 nasal.
// Semivowels, sibilants and other consonants have no position.
func GroupPosition(r rune) (int, bool) {
	g, ok := GroupOf(r)
	if !ok || !g.IsStop() {
		return 0, false
	}
	if p, ok := nuktaPosition[r]; ok {
		return p, true
	}
	p := int(r-stopBase[g]) + 1
	if p < 1 || p > 5 {
		return 0, false
	}
	return p, true
}

// IsNasal reports whether r is the nasal member of a stop group.
func IsNasal(r rune) bool {
	info, ok := Classify(r)
	return ok && info.Kind == Consonant && info.Nasal
}

// IsVoiceless reports whether r is an unvoiced stop or a sibilant.
func IsVoiceless(r rune) bool {
	if g, ok := GroupOf(r); ok && g == Sibilant {
		return true
	}
	p, ok := GroupPosition(r)
	return ok && p <= 2
}

// IsVoiced reports whether r is a voiced stop, a nasal, a semivowel or ह.
func IsVoiced(r rune) bool {
	if r == glottal {
		return true
	}
	if g, ok := GroupOf(r); ok && g == Semivowel {
		return true
	}
	p, ok := GroupPosition(r)
	return ok && p >= 3
}

// NasalOf returns the nasal consonant of a stop group.
func NasalOf(g Group) (rune, bool) {
	base, ok := stopBase[g]
	if !ok {
		return 0, false
	}
	return base + 4, true
}

// VoicedCounterpart maps a voiceless stop to its voiced counterpart,
// keeping aspiration: position 1 becomes 3 and 2 becomes 4.
func VoicedCounterpart(r rune) (rune, bool) {
	p, ok := GroupPosition(r)
	if !ok || p > 2 {
		return 0, false
	}
	g, _ := GroupOf(r)
	return stopBase[g] + rune(p+1), true
}
