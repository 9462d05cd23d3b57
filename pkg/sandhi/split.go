package sandhi

import (
	"slices"
	"strings"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/kerem-kaynak/nepali-sandhi/pkg/akshar"
)

// CacheSize is the default maximum number of words in the split cache.
const CacheSize = 100_000

// Lexicon answers whether a word exists. Split only reads from it.
type Lexicon interface {
	Contains(word string) bool
}

// Candidate is one sound split: Apply(Left, Right) yields Outcome, whose
// Output is the split word.
type Candidate struct {
	Left    string
	Right   string
	Outcome Outcome
}

// Config controls a Splitter.
type Config struct {
	// Cache enables memoization of split results per word.
	Cache bool
	// CacheSize bounds the cache. Zero means CacheSize.
	CacheSize int
	// MinWordAksharas skips words shorter than this many aksharas.
	MinWordAksharas int
	// MinPartAksharas drops candidates with a shorter left or right part.
	MinPartAksharas int
}

// DefaultConfig returns the settings used by Split.
func DefaultConfig() Config {
	return Config{
		Cache:           true,
		CacheSize:       CacheSize,
		MinWordAksharas: 3,
		MinPartAksharas: 2,
	}
}

// standaloneVowels is the reconstruction order: the inherent vowel first.
var standaloneVowels = []string{"अ", "आ", "इ", "ई", "उ", "ऊ", "ए", "ऐ", "ओ", "औ", "ऋ"}

// signVowels maps a dependent sign at the start of a right half to the
// vowels that अ/आ may have merged with to produce it.
var signVowels = map[rune][]string{
	'ा': {"अ", "आ"},
	'े': {"इ", "ई"},
	'ो': {"उ", "ऊ"},
	'ै': {"ए", "ऐ"},
	'ौ': {"ओ", "औ"},
}

// Splitter finds sandhi splits of words against a Lexicon.
type Splitter struct {
	lex   Lexicon
	cfg   Config
	cache *lru.Cache[string, []Candidate]
}

// NewSplitter creates a splitter. The LRU cache is enabled when cfg.Cache is set.
func NewSplitter(lex Lexicon, cfg Config) *Splitter {
	s := &Splitter{lex: lex, cfg: cfg}
	if cfg.Cache {
		size := cfg.CacheSize
		if size <= 0 {
			size = CacheSize
		}
		s.cache, _ = lru.New[string, []Candidate](size)
	}
	return s
}

// NewSplitterNoCache creates a splitter with the default guards and no cache.
func NewSplitterNoCache(lex Lexicon) *Splitter {
	cfg := DefaultConfig()
	cfg.Cache = false
	return NewSplitter(lex, cfg)
}

// Split returns every sound split of word found by the search, sorted by
// (Left, Right). An empty result is common and not an error.
func Split(lex Lexicon, word string) []Candidate {
	return split(lex, DefaultConfig(), word)
}

// Split returns the sound splits of word, using the cache when enabled.
// The returned slice is owned by the caller.
func (s *Splitter) Split(word string) []Candidate {
	if s.cache == nil {
		return split(s.lex, s.cfg, word)
	}

	// LRU is thread-safe
	if result, ok := s.cache.Get(word); ok {
		return slices.Clone(result)
	}

	result := split(s.lex, s.cfg, word)
	s.cache.Add(word, result)
	return slices.Clone(result)
}

// ClearCache clears the memoization cache.
func (s *Splitter) ClearCache() {
	if s.cache != nil {
		s.cache.Purge()
	}
}

// CacheSize returns the number of cached entries (0 if cache is disabled).
func (s *Splitter) CacheSize() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.Len()
}

// CacheEnabled returns true if caching is enabled.
func (s *Splitter) CacheEnabled() bool {
	return s.cache != nil
}

func split(lex Lexicon, cfg Config, word string) []Candidate {
	if word == "" || akshar.Count(word) < cfg.MinWordAksharas {
		return nil
	}

	sr := &search{lex: lex, word: word, tried: make(map[[2]string]bool)}
	sr.knownPrefixes()
	sr.boundaries()

	out := sr.found[:0]
	for _, c := range sr.found {
		if akshar.Count(c.Left) >= cfg.MinPartAksharas && akshar.Count(c.Right) >= cfg.MinPartAksharas {
			out = append(out, c)
		}
	}

	slices.SortFunc(out, func(a, b Candidate) int {
		if c := strings.Compare(a.Left, b.Left); c != 0 {
			return c
		}
		return strings.Compare(a.Right, b.Right)
	})
	return out
}

// search holds the state of one Split call.
type search struct {
	lex   Lexicon
	word  string
	tried map[[2]string]bool
	found []Candidate
}

// reproduces reports whether Apply(left, right) yields the word.
func (s *search) reproduces(left, right string) (Outcome, bool) {
	out, err := Apply(left, right)
	if err != nil || out.Output != s.word {
		return Outcome{}, false
	}
	return out, true
}

// accept keeps (left, right) if both are words and the pair reproduces
// the word. Each pair is evaluated once.
func (s *search) accept(left, right string) bool {
	key := [2]string{left, right}
	if ok, seen := s.tried[key]; seen {
		return ok
	}
	s.tried[key] = false

	if left == "" || right == "" {
		return false
	}
	out, ok := s.reproduces(left, right)
	if !ok || !s.lex.Contains(left) || !s.lex.Contains(right) {
		return false
	}

	s.tried[key] = true
	s.found = append(s.found, Candidate{Left: left, Right: right, Outcome: out})
	return true
}

// knownPrefixes strips each surface form from the front of the word and
// restores the vowel the sandhi consumed, defaulting to अ.
func (s *search) knownPrefixes() {
	for _, p := range prefixForms {
		rest, ok := strings.CutPrefix(s.word, p.surface)
		if !ok || rest == "" {
			continue
		}
		for _, v := range standaloneVowels {
			right := restoreVowel(v, rest)
			if _, ok := s.reproduces(p.canonical, right); ok {
				s.accept(p.canonical, right)
				break
			}
		}
	}
}

// restoreVowel puts v back in front of rest. A leading dependent sign in
// rest is the trace of the consumed vowel and is replaced.
func restoreVowel(v, rest string) string {
	r, size := utf8.DecodeRuneInString(rest)
	if akshar.IsVowelSign(r) {
		return v + rest[size:]
	}
	return v + rest
}

// boundaries tries every internal character boundary of the word.
func (s *search) boundaries() {
	_, first := utf8.DecodeRuneInString(s.word)
	for i := first; i < len(s.word); {
		left, right := s.word[:i], s.word[i:]

		s.accept(left, right)
		s.prependedVowels(left, right)
		s.yan(left, right)
		s.visargaRa(left, right)
		s.satva(left, right)
		s.ayadi(left, right)
		s.mergedSign(left, right)

		_, size := utf8.DecodeRuneInString(right)
		i += size
	}
}

// prependedVowels restores a vowel in front of the right half and pairs it
// with the left half as-is, with आ appended, and with visarga appended.
func (s *search) prependedVowels(left, right string) {
	for _, v := range standaloneVowels {
		candidate := v + right
		if !s.lex.Contains(candidate) {
			continue
		}
		s.accept(left, candidate)
		s.accept(left+"ा", candidate)
		s.accept(left+visargaMark, candidate)
	}
}

// rightCandidates are the possible right morphemes after य/व was
// produced from a vowel: a restored vowel in front, the half itself when it
// already starts with a vowel, or its leading sign turned back into a vowel.
func rightCandidates(right string) []string {
	out := make([]string, 0, len(standaloneVowels)+1)
	for _, v := range standaloneVowels {
		out = append(out, v+right)
	}
	r, size := utf8.DecodeRuneInString(right)
	switch {
	case akshar.IsVowel(r):
		out = append(out, right)
	case akshar.IsVowelSign(r):
		if v, ok := akshar.IndependentVowel(r); ok {
			out = append(out, string(v)+right[size:])
		}
	}
	return out
}

func (s *search) pairWithRights(lefts []string, right string) {
	for _, left := range lefts {
		if !s.lex.Contains(left) {
			continue
		}
		for _, candidate := range rightCandidates(right) {
			if s.lex.Contains(candidate) {
				s.accept(left, candidate)
			}
		}
	}
}

// yan reverses इ/ई → य and उ/ऊ → व.
func (s *search) yan(left, right string) {
	if base, ok := strings.CutSuffix(left, "्य"); ok {
		s.pairWithRights([]string{base + "ि", base + "ी"}, right)
	}
	if base, ok := strings.CutSuffix(left, "्व"); ok {
		s.pairWithRights([]string{base + "ु", base + "ू"}, right)
	}
}

// visargaRa reverses visarga → र before a vowel or a voiced consonant.
func (s *search) visargaRa(left, right string) {
	withVisarga := left + visargaMark

	if rest, ok := strings.CutPrefix(right, "र्"); ok {
		s.accept(withVisarga, rest)
		return
	}
	rest, ok := strings.CutPrefix(right, "र")
	if !ok || rest == "" {
		return
	}
	r, size := utf8.DecodeRuneInString(rest)
	if v, ok := akshar.IndependentVowel(r); ok {
		s.accept(withVisarga, string(v)+rest[size:])
		return
	}
	s.accept(withVisarga, "अ"+rest)
	s.accept(withVisarga, rest)
}

var satvaSibilants = []struct {
	sibilant string
	stops    string
}{
	{"श्", "चछ"},
	{"ष्", "टठ"},
	{"स्", "तथ"},
}

// satva reverses visarga → sibilant before a stop of the same place.
func (s *search) satva(left, right string) {
	next, _ := utf8.DecodeRuneInString(right)
	for _, sv := range satvaSibilants {
		base, ok := strings.CutSuffix(left, sv.sibilant)
		if ok && strings.ContainsRune(sv.stops, next) {
			s.accept(base+visargaMark, right)
		}
	}
}

// ayadi reverses ए/ऐ/ओ/औ → अय/आय/अव/आव before a vowel.
func (s *search) ayadi(left, right string) {
	if base, ok := strings.CutSuffix(left, "ाय"); ok {
		s.pairWithRights([]string{base + "ै", base + "ऐ"}, right)
	} else if base, ok := strings.CutSuffix(left, "य"); ok {
		s.pairWithRights([]string{base + "े", base + "ए"}, right)
	}

	if base, ok := strings.CutSuffix(left, "ाव"); ok {
		s.pairWithRights([]string{base + "ौ", base + "औ"}, right)
	} else if base, ok := strings.CutSuffix(left, "व"); ok {
		s.pairWithRights([]string{base + "ो", base + "ओ"}, right)
	}
}

// mergedSign reverses दीर्घ, गुण and वृद्धि, whose result shows up as a
// dependent sign at the start of the right half.
func (s *search) mergedSign(left, right string) {
	r, size := utf8.DecodeRuneInString(right)
	vowels, ok := signVowels[r]
	if !ok {
		return
	}
	rest := right[size:]
	for _, v := range vowels {
		candidate := v + rest
		if !s.lex.Contains(candidate) {
			continue
		}
		s.accept(left, candidate)
		s.accept(left+"ा", candidate)
		s.accept(left+visargaMark, candidate)
	}
}
