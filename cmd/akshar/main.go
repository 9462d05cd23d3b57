package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"

	"github.com/kerem-kaynak/nepali-sandhi/pkg/akshar"
	"github.com/kerem-kaynak/nepali-sandhi/pkg/analyzer"
)

type charResult struct {
	Char     string `json:"char"`
	Code     string `json:"code"`
	Kind     string `json:"kind"`
	Group    string `json:"group,omitempty"`
	Position int    `json:"position,omitempty"`
	Nasal    bool   `json:"nasal,omitempty"`
}

type applyResult struct {
	Output   string `json:"output"`
	Category string `json:"category"`
	Label    string `json:"label"`
	Citation string `json:"citation"`
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	dictPath := os.Args[1]

	a, err := analyzer.NewAnalyzer(dictPath, analyzer.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dictionary: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	// If a command is given, run it and exit
	if len(os.Args) > 2 {
		if err := run(a, os.Args[2], os.Args[3:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			a.Close()
			os.Exit(1)
		}
		return
	}

	interactive(a)
}

func run(a *analyzer.Analyzer, command string, args []string) error {
	switch command {
	case "analyze":
		if len(args) == 0 {
			return fmt.Errorf("analyze requires text")
		}
		return printJSON(a.Analyze(strings.Join(args, " ")))

	case "segment":
		if len(args) == 0 {
			return fmt.Errorf("segment requires text")
		}
		return printJSON(a.Segment(strings.Join(args, " ")))

	case "classify":
		if len(args) == 0 {
			return fmt.Errorf("classify requires text")
		}
		return printJSON(classify(akshar.Normalize(strings.Join(args, " "))))

	case "apply":
		if len(args) != 2 {
			return fmt.Errorf("apply requires exactly two morphemes")
		}
		out, err := a.Apply(args[0], args[1])
		if err != nil {
			return err
		}
		return printJSON(applyResult{
			Output:   out.Output,
			Category: out.Category.String(),
			Label:    out.Category.Label(),
			Citation: out.Citation,
		})

	case "split":
		if len(args) != 1 {
			return fmt.Errorf("split requires exactly one word")
		}
		words := a.Analyze(args[0])
		if len(words) == 0 {
			return printJSON([]analyzer.Split{})
		}
		return printJSON(words[0].Splits)

	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func classify(text string) []charResult {
	results := make([]charResult, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		cr := charResult{
			Char: string(r),
			Code: fmt.Sprintf("U+%04X", r),
			Kind: akshar.KindOf(r).String(),
		}
		if info, ok := akshar.Classify(r); ok && info.Kind == akshar.Consonant {
			cr.Group = info.Group.String()
			cr.Nasal = info.Nasal
			cr.Position, _ = akshar.GroupPosition(r)
		}
		results = append(results, cr)
	}
	return results
}

func printJSON(v any) error {
	output, err := json.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

// interactive reads one text per line and prints its analysis. Prompts are
// only shown when stdin is a terminal so piped input yields plain JSON lines.
func interactive(a *analyzer.Analyzer) {
	prompt := term.IsTerminal(int(os.Stdin.Fd()))

	if prompt {
		fmt.Println("Nepali sandhi analyzer (interactive mode)")
		fmt.Printf("Dictionary loaded: %d words\n", a.DictionaryWordCount())
		fmt.Println("Type a word or sentence, press Enter to analyze. Ctrl+C to exit.")
		fmt.Println()
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if prompt {
			fmt.Print("> ")
		}
		if !scanner.Scan() {
			break
		}
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		output, _ := json.Marshal(a.Analyze(text))
		if prompt {
			fmt.Printf("  %s\n\n", output)
		} else {
			fmt.Println(string(output))
		}
	}
}

func printUsage() {
	fmt.Println("Usage: akshar <dictionary.txt> [command] [args...]")
	fmt.Println("       akshar <dictionary.txt>                 (interactive mode)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  analyze <text>            Segment and split every word")
	fmt.Println("  segment <text>            Split text into aksharas with byte offsets")
	fmt.Println("  classify <text>           Classify each character")
	fmt.Println("  apply <first> <second>    Combine two morphemes by sandhi")
	fmt.Println("  split <word>              Find sandhi splits of a word")
}
