// Package sandhi combines Devanagari morphemes by the phonological rules of
// sandhi and searches for plausible splits of already-combined words.
//
// Apply is the forward direction. It tries three rule families in a fixed
// order (visarga, consonant, vowel) and returns the first match. Split is the
// reverse direction: it proposes (left, right) pairs, keeps only those whose
// forward application reproduces the word, and checks both halves against a
// caller-supplied Lexicon.
//
// All functions are pure and safe for concurrent use.
package sandhi

import (
	"errors"
	"fmt"
)

// Category names the rule family that produced an Outcome.
type Category int

const (
	Vowel Category = iota
	Visarga
	Consonant
)

func (c Category) String() string {
	switch c {
	case Vowel:
		return "vowel"
	case Visarga:
		return "visarga"
	case Consonant:
		return "consonant"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Label returns the Devanagari name of the family, for display.
func (c Category) Label() string {
	switch c {
	case Vowel:
		return "स्वर सन्धि"
	case Visarga:
		return "विसर्ग सन्धि"
	case Consonant:
		return "व्यञ्जन सन्धि"
	}
	return ""
}

// Outcome is the result of a forward rule.
type Outcome struct {
	Output   string
	Category Category
	Citation string
}

var (
	// ErrEmptyInput is returned when either morpheme is empty.
	ErrEmptyInput = errors.New("sandhi: empty input")
	// ErrNoRule matches every *NoRuleError under errors.Is.
	ErrNoRule = errors.New("sandhi: no rule applies")
)

// NoRuleError reports that no rule family matched the pair. This is the
// common case for arbitrary morphemes and not a defect.
type NoRuleError struct {
	First  string
	Second string
}

func (e *NoRuleError) Error() string {
	return fmt.Sprintf("sandhi: no rule applies for %q + %q", e.First, e.Second)
}

// Is lets errors.Is(err, ErrNoRule) match.
func (e *NoRuleError) Is(target error) bool {
	return target == ErrNoRule
}

// Apply combines first and second into one surface form.
func Apply(first, second string) (Outcome, error) {
	if first == "" || second == "" {
		return Outcome{}, ErrEmptyInput
	}

	if out, ok := applyVisarga(first, second); ok {
		return out, nil
	}
	if out, ok := applyConsonant(first, second); ok {
		return out, nil
	}
	if out, ok := applyVowel(first, second); ok {
		return out, nil
	}

	return Outcome{}, &NoRuleError{First: first, Second: second}
}
