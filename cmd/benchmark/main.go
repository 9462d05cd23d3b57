package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/kerem-kaynak/nepali-sandhi/pkg/akshar"
	"github.com/kerem-kaynak/nepali-sandhi/pkg/analyzer"
	"github.com/kerem-kaynak/nepali-sandhi/pkg/sandhi"
)

const (
	iterations = 100000
	warmup     = 1000
	boxWidth   = 62
)

// ANSI color codes, cleared when stdout is not a terminal
var (
	colorReset  = "\033[0m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

var line = strings.Repeat("─", boxWidth)

func main() {
	dictPath := "dictionaries/nepali_words.txt"
	if len(os.Args) > 1 {
		dictPath = os.Args[1]
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		colorReset, colorCyan, colorGreen, colorYellow, colorDim = "", "", "", "", ""
	}

	fmt.Print("Loading Nepali dictionary... ")
	start := time.Now()
	a, err := analyzer.NewAnalyzer(dictPath, analyzer.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()
	fmt.Printf("done (%d words in %v)\n", a.DictionaryWordCount(), time.Since(start).Round(time.Millisecond))
	fmt.Printf("Iterations: %d (warmup: %d)\n", iterations, warmup)
	fmt.Println("Reference: 1 second = 1,000,000,000 ns")
	fmt.Println()

	// Test data
	singleWord := "अत्यधिक"
	longWord := "पुनरवलोकन"
	sentence := "हिमालय सूर्योदय देवेन्द्र विद्यालय पुनरागमन प्रातःकाल नमस्ते संसार अन्तरात्मा अत्यधिक"

	printHeader("FULL PIPELINE THROUGHPUT")
	bench("Single word", func() { a.Analyze(singleWord) })
	bench("Visarga compound", func() { a.Analyze(longWord) })
	bench("Sentence (10 words)", func() { a.Analyze(sentence) })
	printFooter()
	fmt.Println()

	printHeader("COMPONENT BREAKDOWN")
	bench("Classify", func() { akshar.Classify('क') })
	bench("Segment", func() { akshar.Segment(longWord) })
	bench("Words", func() { akshar.Words(sentence) })

	norm := akshar.NewNormalizer()
	bench("Normalizer (full)", func() { norm.Normalize(sentence) })

	bench("Apply (vowel)", func() { sandhi.Apply("अति", "अधिक") })
	bench("Apply (visarga)", func() { sandhi.Apply("पुनः", "अवलोकन") })
	bench("Apply (consonant)", func() { sandhi.Apply("उत्", "लिखित") })

	a.ClearCache()
	a.Split(singleWord)
	bench("Split (cache hit)", func() { a.Split(singleWord) })
	bench("Split (cache miss)", func() {
		a.ClearCache()
		a.Split(singleWord)
	})
	printFooter()
}

func bench(name string, fn func()) {
	for i := 0; i < warmup; i++ {
		fn()
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		fn()
	}
	elapsed := time.Since(start)

	opsPerSec := float64(iterations) / elapsed.Seconds()
	nsPerOp := float64(elapsed.Nanoseconds()) / float64(iterations)

	displayName := name
	if len(displayName) > 26 {
		displayName = displayName[:26]
	}

	// Build plain string for padding, colored for display
	plain := fmt.Sprintf("  %-26s %10.0f ops/sec %8.0f ns", displayName, opsPerSec, nsPerOp)
	padded := padLine(plain)

	colored := fmt.Sprintf("  %-26s %s%10.0f%s ops/sec %s%8.0f%s ns",
		displayName,
		colorGreen, opsPerSec, colorReset,
		colorYellow, nsPerOp, colorReset)

	if extraPad := len(padded) - len(plain); extraPad > 0 {
		colored += strings.Repeat(" ", extraPad)
	}

	fmt.Println(colorDim + "│" + colorReset + colored + colorDim + "│" + colorReset)
}

func padLine(content string) string {
	if len(content) >= boxWidth {
		return content[:boxWidth]
	}
	return content + strings.Repeat(" ", boxWidth-len(content))
}

func printHeader(title string) {
	fmt.Println(colorDim + "┌" + line + "┐" + colorReset)
	printTitleRow("  " + title)
	fmt.Println(colorDim + "├" + line + "┤" + colorReset)
}

func printFooter() {
	fmt.Println(colorDim + "└" + line + "┘" + colorReset)
}

func printTitleRow(content string) {
	fmt.Println(colorDim + "│" + colorReset + colorCyan + padLine(content) + colorReset + colorDim + "│" + colorReset)
}
