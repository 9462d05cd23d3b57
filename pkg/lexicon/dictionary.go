// Package lexicon stores a Nepali word list in an FST for fast membership
// lookups. A Dictionary satisfies sandhi.Lexicon.
package lexicon

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/blevesearch/vellum"

	"github.com/kerem-kaynak/nepali-sandhi/pkg/akshar"
)

// ErrEmptyWord is returned when adding an empty word.
var ErrEmptyWord = errors.New("lexicon: empty word")

// Dictionary holds words in an FST. Words are NFC-normalized on the way in
// and on lookup.
type Dictionary struct {
	fst     *vellum.FST
	words   map[string]struct{} // Source of truth for modifications
	fstPath string
	txtPath string
	mu      sync.RWMutex
}

// NewDictionary loads a one-word-per-line list into an FST. Blank lines and
// lines starting with # are skipped. If <name>.fst exists next to the list
// it is opened as is, otherwise it is built.
func NewDictionary(txtPath string) (*Dictionary, error) {
	fstPath := strings.TrimSuffix(txtPath, ".txt") + ".fst"

	d := &Dictionary{
		words:   make(map[string]struct{}, 1024),
		fstPath: fstPath,
		txtPath: txtPath,
	}

	if err := d.loadTextFile(); err != nil {
		return nil, err
	}

	if err := d.loadOrBuildFST(); err != nil {
		return nil, err
	}

	return d, nil
}

// FromWords builds an in-memory dictionary. Nothing is read from or written
// to disk, including on AddWord and RemoveWord.
func FromWords(words ...string) (*Dictionary, error) {
	d := &Dictionary{words: make(map[string]struct{}, len(words))}
	for _, word := range words {
		if key := akshar.Normalize(strings.TrimSpace(word)); key != "" {
			d.words[key] = struct{}{}
		}
	}

	if err := d.rebuildFST(); err != nil {
		return nil, err
	}
	return d, nil
}

// loadTextFile reads words from the source text file.
func (d *Dictionary) loadTextFile() error {
	file, err := os.Open(d.txtPath)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		d.words[akshar.Normalize(word)] = struct{}{}
	}
	return scanner.Err()
}

// loadOrBuildFST loads existing FST or builds a new one.
func (d *Dictionary) loadOrBuildFST() error {
	if fst, err := vellum.Open(d.fstPath); err == nil {
		d.fst = fst
		return nil
	}

	return d.rebuildFST()
}

// Contains checks if a word exists in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	key := akshar.Normalize(word)

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.fst == nil {
		return false
	}
	_, exists, _ := d.fst.Get([]byte(key))
	return exists
}

// AddWord adds a word to the dictionary and rebuilds the FST.
func (d *Dictionary) AddWord(word string) error {
	key := akshar.Normalize(strings.TrimSpace(word))
	if key == "" {
		return ErrEmptyWord
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.words[key] = struct{}{}
	return d.rebuildFST()
}

// RemoveWord removes a word from the dictionary and rebuilds the FST.
func (d *Dictionary) RemoveWord(word string) error {
	key := akshar.Normalize(strings.TrimSpace(word))

	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.words, key)
	return d.rebuildFST()
}

// RebuildFST rebuilds the FST from the current word set and saves to disk.
func (d *Dictionary) RebuildFST() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rebuildFST()
}

func (d *Dictionary) sortedWords() []string {
	sorted := make([]string, 0, len(d.words))
	for word := range d.words {
		sorted = append(sorted, word)
	}
	sort.Strings(sorted)
	return sorted
}

// rebuildFST rebuilds FST without locking (caller must hold lock).
func (d *Dictionary) rebuildFST() error {
	if d.fst != nil {
		d.fst.Close()
		d.fst = nil
	}

	if d.fstPath == "" {
		var buf bytes.Buffer
		if err := d.writeFST(&buf); err != nil {
			return err
		}
		fst, err := vellum.Load(buf.Bytes())
		if err != nil {
			return err
		}
		d.fst = fst
		return nil
	}

	fstFile, err := os.Create(d.fstPath)
	if err != nil {
		return err
	}
	if err := d.writeFST(fstFile); err != nil {
		fstFile.Close()
		return err
	}
	if err := fstFile.Close(); err != nil {
		return err
	}

	fst, err := vellum.Open(d.fstPath)
	if err != nil {
		return err
	}
	d.fst = fst

	return d.saveTextFile()
}

// writeFST encodes the sorted word set. vellum requires keys in
// lexicographic byte order.
func (d *Dictionary) writeFST(w io.Writer) error {
	builder, err := vellum.New(w, nil)
	if err != nil {
		return err
	}

	for _, word := range d.sortedWords() {
		if err := builder.Insert([]byte(word), 0); err != nil {
			builder.Close()
			return err
		}
	}

	return builder.Close()
}

// saveTextFile writes the current word set back to the text file.
func (d *Dictionary) saveTextFile() error {
	file, err := os.Create(d.txtPath)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, word := range d.sortedWords() {
		if _, err := w.WriteString(word + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Words returns every word in byte order.
func (d *Dictionary) Words() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.sortedWords()
}

// Close releases FST resources.
func (d *Dictionary) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.fst != nil {
		err := d.fst.Close()
		d.fst = nil
		return err
	}
	return nil
}

// WordCount returns the number of words in the dictionary.
func (d *Dictionary) WordCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.words)
}
