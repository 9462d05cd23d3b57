package sandhi

import (
	"testing"
)

// wordSet is an in-memory Lexicon.
type wordSet map[string]bool

func (w wordSet) Contains(word string) bool { return w[word] }

func lexiconOf(words ...string) wordSet {
	w := make(wordSet, len(words))
	for _, word := range words {
		w[word] = true
	}
	return w
}

func TestSplit(t *testing.T) {
	tests := []struct {
		word     string
		lex      wordSet
		expected [][2]string
	}{
		{
			// यण् via the known prefix table
			word:     "अत्यधिक",
			lex:      lexiconOf("अति", "अधिक"),
			expected: [][2]string{{"अति", "अधिक"}},
		},
		{
			word:     "पुनरवलोकन",
			lex:      lexiconOf("पुनः", "अवलोकन"),
			expected: [][2]string{{"पुनः", "अवलोकन"}},
		},
		{
			word:     "पुनरागमन",
			lex:      lexiconOf("पुनः", "आगमन"),
			expected: [][2]string{{"पुनः", "आगमन"}},
		},
		{
			word:     "सूर्योदय",
			lex:      lexiconOf("सूर्य", "उदय"),
			expected: [][2]string{{"सूर्य", "उदय"}},
		},
		{
			word:     "देवेन्द्र",
			lex:      lexiconOf("देव", "इन्द्र"),
			expected: [][2]string{{"देव", "इन्द्र"}},
		},
		{
			word:     "हिमालय",
			lex:      lexiconOf("हिम", "आलय"),
			expected: [][2]string{{"हिम", "आलय"}},
		},
		{
			// Retained visarga: the raw halves are already words.
			word:     "प्रातःकाल",
			lex:      lexiconOf("प्रातः", "काल"),
			expected: [][2]string{{"प्रातः", "काल"}},
		},
		{
			word:     "अन्तश्चेतना",
			lex:      lexiconOf("अन्तः", "चेतना"),
			expected: [][2]string{{"अन्तः", "चेतना"}},
		},
		{
			word:     "उपेन्द्र",
			lex:      lexiconOf("उप", "इन्द्र"),
			expected: [][2]string{{"उप", "इन्द्र"}},
		},
		{
			// Every combination of a/ā on both sides reproduces the word.
			word: "विद्यालय",
			lex:  lexiconOf("विद्य", "विद्या", "अलय", "आलय"),
			expected: [][2]string{
				{"विद्य", "अलय"},
				{"विद्य", "आलय"},
				{"विद्या", "अलय"},
				{"विद्या", "आलय"},
			},
		},
		{
			// यण् with a left word outside the prefix table
			word:     "इत्यलम्",
			lex:      lexiconOf("इति", "अलम्"),
			expected: [][2]string{{"इति", "अलम्"}},
		},
		{
			word:     "मध्वरि",
			lex:      lexiconOf("मधु", "अरि"),
			expected: [][2]string{{"मधु", "अरि"}},
		},
		{
			// विसर्ग → र before a voiced consonant
			word:     "चतुरभुज",
			lex:      lexiconOf("चतुः", "भुज"),
			expected: [][2]string{{"चतुः", "भुज"}},
		},
	}

	for _, tt := range tests {
		result := Split(tt.lex, tt.word)
		if len(result) != len(tt.expected) {
			t.Errorf("Split(%q) = %v, want %v", tt.word, result, tt.expected)
			continue
		}
		for i, c := range result {
			if c.Left != tt.expected[i][0] || c.Right != tt.expected[i][1] {
				t.Errorf("Split(%q)[%d] = (%q, %q), want (%q, %q)",
					tt.word, i, c.Left, c.Right, tt.expected[i][0], tt.expected[i][1])
			}
		}
	}
}

func TestSplit_Sound(t *testing.T) {
	lex := lexiconOf(
		"अति", "अधिक", "पुनः", "अवलोकन", "सूर्य", "उदय", "हिम", "आलय",
		"विद्य", "विद्या", "अलय", "देव", "इन्द्र", "उप", "अन्तः", "चेतना",
	)
	words := []string{
		"अत्यधिक", "पुनरवलोकन", "सूर्योदय", "हिमालय", "विद्यालय",
		"देवेन्द्र", "उपेन्द्र", "अन्तश्चेतना", "नमस्ते", "काठमाडौं",
	}

	for _, word := range words {
		for _, c := range Split(lex, word) {
			out, err := Apply(c.Left, c.Right)
			if err != nil {
				t.Errorf("Split(%q) returned (%q, %q) which fails to apply: %v", word, c.Left, c.Right, err)
				continue
			}
			if out.Output != word {
				t.Errorf("Split(%q) returned (%q, %q) which applies to %q", word, c.Left, c.Right, out.Output)
			}
			if out != c.Outcome {
				t.Errorf("Split(%q) candidate outcome = %+v, want %+v", word, c.Outcome, out)
			}
			if !lex.Contains(c.Left) || !lex.Contains(c.Right) {
				t.Errorf("Split(%q) returned non-lexicon part (%q, %q)", word, c.Left, c.Right)
			}
		}
	}
}

func TestSplit_Guards(t *testing.T) {
	tests := []struct {
		name string
		word string
		lex  wordSet
	}{
		{"empty", "", lexiconOf("अति")},
		// Two aksharas is below the minimum word length.
		{"short word", "स्वर", lexiconOf("सु", "अर")},
		// नयन splits into ने + अन, but ने is a single akshara.
		{"short part", "नयन", lexiconOf("ने", "अन")},
		{"not in lexicon", "अत्यधिक", lexiconOf("अति")},
		{"no rule", "कमल", lexiconOf("क", "मल", "कम", "ल")},
	}

	for _, tt := range tests {
		if result := Split(tt.lex, tt.word); len(result) != 0 {
			t.Errorf("%s: Split(%q) = %v, want none", tt.name, tt.word, result)
		}
	}
}

func TestSplit_Deterministic(t *testing.T) {
	lex := lexiconOf("विद्य", "विद्या", "अलय", "आलय")
	first := Split(lex, "विद्यालय")
	for i := 0; i < 10; i++ {
		again := Split(lex, "विद्यालय")
		if len(again) != len(first) {
			t.Fatalf("run %d returned %d candidates, want %d", i, len(again), len(first))
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("run %d candidate %d = %+v, want %+v", i, j, again[j], first[j])
			}
		}
	}
}

func TestSplit_CustomConfig(t *testing.T) {
	lex := lexiconOf("ने", "अन")

	cfg := DefaultConfig()
	cfg.Cache = false
	cfg.MinPartAksharas = 1
	result := NewSplitter(lex, cfg).Split("नयन")

	if len(result) != 1 || result[0].Left != "ने" || result[0].Right != "अन" {
		t.Errorf("Split(नयन) with MinPartAksharas=1 = %v, want [(ने, अन)]", result)
	}
}

func TestSplit_VisargaRa(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cache = false
	cfg.MinPartAksharas = 1

	tests := []struct {
		word     string
		lex      wordSet
		expected [][2]string
	}{
		{
			// The prefix table restores अगति, which is not a word; the
			// boundary scan finds the bare consonant.
			word:     "दुरगति",
			lex:      lexiconOf("दुः", "गति"),
			expected: [][2]string{{"दुः", "गति"}},
		},
		{
			// Apply never writes र्, so निः + धन gives निरधन.
			word: "निर्धन",
			lex:  lexiconOf("निः", "धन"),
		},
	}

	for _, tt := range tests {
		result := NewSplitter(tt.lex, cfg).Split(tt.word)
		if len(result) != len(tt.expected) {
			t.Errorf("Split(%q) = %v, want %v", tt.word, result, tt.expected)
			continue
		}
		for i, c := range result {
			if c.Left != tt.expected[i][0] || c.Right != tt.expected[i][1] {
				t.Errorf("Split(%q)[%d] = (%q, %q), want (%q, %q)",
					tt.word, i, c.Left, c.Right, tt.expected[i][0], tt.expected[i][1])
			}
		}
	}
}

func TestSplitter_Cache(t *testing.T) {
	lex := lexiconOf("अति", "अधिक")
	splitter := NewSplitter(lex, DefaultConfig())

	if !splitter.CacheEnabled() {
		t.Fatal("Expected cache to be enabled")
	}

	// First call should add to cache
	first := splitter.Split("अत्यधिक")
	if splitter.CacheSize() != 1 {
		t.Errorf("Expected cache size 1 after first split, got %d", splitter.CacheSize())
	}

	// Mutating the returned slice must not leak into the cache
	first[0].Left = "changed"

	second := splitter.Split("अत्यधिक")
	if splitter.CacheSize() != 1 {
		t.Errorf("Expected cache size 1 after second split (cache hit), got %d", splitter.CacheSize())
	}
	if len(second) != 1 || second[0].Left != "अति" {
		t.Errorf("Cached Split = %v, want [(अति, अधिक)]", second)
	}

	// Misses are cached too
	splitter.Split("नमस्ते")
	if splitter.CacheSize() != 2 {
		t.Errorf("Expected cache size 2, got %d", splitter.CacheSize())
	}

	splitter.ClearCache()
	if splitter.CacheSize() != 0 {
		t.Errorf("Expected cache size 0 after clear, got %d", splitter.CacheSize())
	}
}

func TestSplitter_NoCache(t *testing.T) {
	splitter := NewSplitterNoCache(lexiconOf("अति", "अधिक"))

	if splitter.CacheEnabled() {
		t.Error("Expected cache to be disabled")
	}

	result := splitter.Split("अत्यधिक")
	if len(result) != 1 {
		t.Errorf("Split(अत्यधिक) = %v, want one candidate", result)
	}
	if splitter.CacheSize() != 0 {
		t.Errorf("Expected cache size 0, got %d", splitter.CacheSize())
	}

	// Clearing a disabled cache is a no-op
	splitter.ClearCache()
}

func FuzzSplitSound(f *testing.F) {
	lex := lexiconOf("अति", "अधिक", "पुनः", "अवलोकन", "हिम", "आलय", "सूर्य", "उदय", "अन्तः", "चेतना")
	for _, seed := range []string{"अत्यधिक", "पुनरवलोकन", "हिमालय", "सूर्योदय", "अन्तश्चेतना", "", "abc"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, word string) {
		for _, c := range Split(lex, word) {
			out, err := Apply(c.Left, c.Right)
			if err != nil || out.Output != word {
				t.Errorf("Split(%q) returned unsound (%q, %q): %+v, %v", word, c.Left, c.Right, out, err)
			}
		}
	})
}
