// Package analyzer runs the akshar and sandhi packages over running text
// with a dictionary-backed lexicon.
package analyzer

import (
	"github.com/kerem-kaynak/nepali-sandhi/pkg/akshar"
	"github.com/kerem-kaynak/nepali-sandhi/pkg/lexicon"
	"github.com/kerem-kaynak/nepali-sandhi/pkg/sandhi"
)

// Config controls an Analyzer.
type Config struct {
	Sandhi sandhi.Config
	// Normalize applies the akshar normalizer pipeline before analysis.
	// Offsets then refer to the normalized text.
	Normalize bool
}

// DefaultConfig returns cached splitting with normalization enabled.
func DefaultConfig() Config {
	return Config{
		Sandhi:    sandhi.DefaultConfig(),
		Normalize: true,
	}
}

// Split is a sandhi split in display form.
type Split struct {
	Left     string `json:"left"`
	Right    string `json:"right"`
	Category string `json:"category"`
	Label    string `json:"label"`
	Citation string `json:"citation"`
}

// WordAnalysis describes one word of the input.
type WordAnalysis struct {
	Word     string   `json:"word"`
	Start    int      `json:"start"`
	End      int      `json:"end"`
	Aksharas []string `json:"aksharas"`
	Splits   []Split  `json:"splits,omitempty"`
}

// Analyzer segments words and proposes sandhi splits for them.
type Analyzer struct {
	dict       *lexicon.Dictionary
	normalizer *akshar.Normalizer
	splitter   *sandhi.Splitter
}

// NewAnalyzer loads the dictionary at dictPath and creates an analyzer.
func NewAnalyzer(dictPath string, cfg Config) (*Analyzer, error) {
	dict, err := lexicon.NewDictionary(dictPath)
	if err != nil {
		return nil, err
	}
	return NewAnalyzerWithDictionary(dict, cfg), nil
}

// NewAnalyzerWithDictionary creates an analyzer over an existing dictionary.
// The analyzer takes ownership of dict and closes it in Close.
func NewAnalyzerWithDictionary(dict *lexicon.Dictionary, cfg Config) *Analyzer {
	a := &Analyzer{
		dict:     dict,
		splitter: sandhi.NewSplitter(dict, cfg.Sandhi),
	}
	if cfg.Normalize {
		a.normalizer = akshar.NewNormalizer()
	}
	return a
}

func (a *Analyzer) normalize(s string) string {
	if a.normalizer == nil {
		return s
	}
	return a.normalizer.Normalize(s)
}

// Analyze splits text into words and analyzes each one in order.
func (a *Analyzer) Analyze(text string) []WordAnalysis {
	text = a.normalize(text)

	var results []WordAnalysis
	for _, tok := range akshar.Words(text) {
		if tok.Type != akshar.TokenWord {
			continue
		}

		wa := WordAnalysis{
			Word:     tok.Text,
			Start:    tok.Start,
			End:      tok.End,
			Aksharas: akshar.Strings(tok.Text),
		}
		for _, c := range a.splitter.Split(tok.Text) {
			wa.Splits = append(wa.Splits, Split{
				Left:     c.Left,
				Right:    c.Right,
				Category: c.Outcome.Category.String(),
				Label:    c.Outcome.Category.Label(),
				Citation: c.Outcome.Citation,
			})
		}
		results = append(results, wa)
	}

	return results
}

// Segment returns the aksharas of text.
func (a *Analyzer) Segment(text string) []akshar.Akshara {
	return akshar.Segment(a.normalize(text))
}

// Apply combines two morphemes.
func (a *Analyzer) Apply(first, second string) (sandhi.Outcome, error) {
	return sandhi.Apply(a.normalize(first), a.normalize(second))
}

// Split returns the sandhi splits of a single word.
func (a *Analyzer) Split(word string) []sandhi.Candidate {
	return a.splitter.Split(a.normalize(word))
}

// AddWord adds a word to the dictionary. Cached splits are dropped since
// they may now be incomplete.
func (a *Analyzer) AddWord(word string) error {
	if err := a.dict.AddWord(word); err != nil {
		return err
	}
	a.splitter.ClearCache()
	return nil
}

// RemoveWord removes a word from the dictionary and drops cached splits.
func (a *Analyzer) RemoveWord(word string) error {
	if err := a.dict.RemoveWord(word); err != nil {
		return err
	}
	a.splitter.ClearCache()
	return nil
}

// RebuildDictionary rebuilds the FST and persists changes to disk.
func (a *Analyzer) RebuildDictionary() error {
	return a.dict.RebuildFST()
}

// Close releases resources (call when done with the analyzer).
func (a *Analyzer) Close() error {
	return a.dict.Close()
}

// DictionaryWordCount returns the number of words in the dictionary.
func (a *Analyzer) DictionaryWordCount() int {
	return a.dict.WordCount()
}

// CacheSize returns the number of cached splits.
func (a *Analyzer) CacheSize() int {
	return a.splitter.CacheSize()
}

// ClearCache clears the split cache.
func (a *Analyzer) ClearCache() {
	a.splitter.ClearCache()
}

// CacheEnabled returns true if caching is enabled.
func (a *Analyzer) CacheEnabled() bool {
	return a.splitter.CacheEnabled()
}
