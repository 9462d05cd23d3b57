package akshar

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizerFunc defines a single normalization step.
type NormalizerFunc func(string) string

// Normalizer applies a configurable pipeline of normalization steps.
type Normalizer struct {
	steps []NormalizerFunc
}

// NewNormalizer creates a normalizer with the default pipeline.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		steps: []NormalizerFunc{
			RemoveControlChars,
			RemoveZeroWidthSpace,
			ComposeNFC,
		},
	}
}

// NewNormalizerWithSteps creates a normalizer with a custom pipeline.
func NewNormalizerWithSteps(steps ...NormalizerFunc) *Normalizer {
	return &Normalizer{steps: steps}
}

// Normalize applies all configured steps in order.
func (n *Normalizer) Normalize(s string) string {
	for _, step := range n.steps {
		s = step(s)
	}
	return s
}

// Normalize puts Devanagari text into canonical composed form (NFC).
// It is idempotent.
func Normalize(s string) string {
	return ComposeNFC(s)
}

// ComposeNFC applies Unicode NFC normalization.
// Note that the precomposed nukta letters (U+0958..U+095F) are composition
// exclusions and come out as base letter + nukta.
func ComposeNFC(s string) string {
	return norm.NFC.String(s)
}

// RemoveControlChars removes Unicode control characters.
func RemoveControlChars(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if !unicode.IsControl(r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// RemoveZeroWidthSpace drops U+200B. ZWJ and ZWNJ are kept: they select
// conjunct rendering and are part of the spelling.
func RemoveZeroWidthSpace(s string) string {
	return strings.ReplaceAll(s, "\u200B", "")
}
