package akshar

import "unicode/utf8"

// Akshara is one syllable unit. Start and End are byte offsets into the
// segmented string, End exclusive.
type Akshara struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// cursor walks a string one codepoint at a time while tracking the byte
// offset of the current codepoint.
type cursor struct {
	text string
	pos  int
}

func (c *cursor) done() bool { return c.pos >= len(c.text) }

func (c *cursor) current() rune {
	r, _ := utf8.DecodeRuneInString(c.text[c.pos:])
	return r
}

func (c *cursor) advance() {
	_, size := utf8.DecodeRuneInString(c.text[c.pos:])
	c.pos += size
}

// kindAt classifies the codepoint n positions ahead of the cursor.
func (c *cursor) kindAt(n int) Kind {
	p := c.pos
	for i := 0; i < n && p < len(c.text); i++ {
		_, size := utf8.DecodeRuneInString(c.text[p:])
		p += size
	}
	if p >= len(c.text) {
		return KindNone
	}
	r, _ := utf8.DecodeRuneInString(c.text[p:])
	return KindOf(r)
}

func (c *cursor) is(n int, k Kind) bool { return c.kindAt(n) == k }

func (c *cursor) skipNasalization() {
	for !c.done() {
		switch c.kindAt(0) {
		case Anusvara, Chandrabindu, Visarga:
			c.advance()
		default:
			return
		}
	}
}

// Segment splits text into aksharas. The concatenated texts of the result
// always equal text, for any input including invalid UTF-8.
func Segment(text string) []Akshara {
	var out []Akshara
	c := &cursor{text: text}

	emit := func(start int) {
		out = append(out, Akshara{Text: text[start:c.pos], Start: start, End: c.pos})
	}

	for !c.done() {
		start := c.pos

		switch c.kindAt(0) {
		case Consonant:
			c.advance()
			consumeOnset(c)
			if c.is(0, VowelSign) {
				c.advance()
			}
			if c.is(0, Nukta) {
				c.advance()
			}
			consumeCoda(c)
			c.skipNasalization()
			emit(start)

		case Vowel:
			c.advance()
			c.skipNasalization()
			emit(start)

		case Anusvara, Chandrabindu, Visarga:
			c.advance()
			if n := len(out); n > 0 {
				last := &out[n-1]
				last.End = c.pos
				last.Text = text[last.Start:last.End]
				continue
			}
			emit(start)

		default:
			c.advance()
			emit(start)
		}
	}
	return out
}

// consumeOnset takes virama+consonant pairs so a conjunct stays in one
// onset. A virama not followed by a consonant ends the chain.
func consumeOnset(c *cursor) {
	for c.is(0, Virama) {
		if !c.is(1, Consonant) {
			c.advance()
			return
		}
		c.advance()
		c.advance()
	}
}

// consumeCoda absorbs consonant+virama as a coda when the consonant after
// it carries its own vowel. A following chain (C+virama+C+virama) is left
// whole for the next onset.
func consumeCoda(c *cursor) {
	for c.is(0, Consonant) && c.is(1, Virama) && c.is(2, Consonant) {
		if c.is(3, Virama) {
			return
		}
		c.advance()
		c.advance()
	}
}

// Strings returns just the texts of Segment(text).
func Strings(text string) []string {
	aks := Segment(text)
	out := make([]string, len(aks))
	for i, a := range aks {
		out[i] = a.Text
	}
	return out
}

// Count returns the number of aksharas in text.
func Count(text string) int {
	return len(Segment(text))
}
