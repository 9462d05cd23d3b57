package main

import (
	"fmt"
	"os"

	"github.com/kerem-kaynak/nepali-sandhi/pkg/lexicon"
)

func main() {
	if len(os.Args) < 3 {
		printUsage()
		os.Exit(1)
	}

	dictPath := os.Args[1]
	command := os.Args[2]

	dict, err := lexicon.NewDictionary(dictPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dictionary: %v\n", err)
		os.Exit(1)
	}

	code := run(dict, dictPath, command, os.Args[3:])
	dict.Close()
	os.Exit(code)
}

func run(dict *lexicon.Dictionary, dictPath, command string, args []string) int {
	switch command {
	case "add":
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "Error: add requires at least one word")
			return 1
		}
		for _, word := range args {
			if err := dict.AddWord(word); err != nil {
				fmt.Fprintf(os.Stderr, "Error adding word '%s': %v\n", word, err)
				return 1
			}
			fmt.Printf("Added: %s\n", word)
		}
		fmt.Printf("Total words: %d\n", dict.WordCount())

	case "remove":
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "Error: remove requires at least one word")
			return 1
		}
		for _, word := range args {
			if err := dict.RemoveWord(word); err != nil {
				fmt.Fprintf(os.Stderr, "Error removing word '%s': %v\n", word, err)
				return 1
			}
			fmt.Printf("Removed: %s\n", word)
		}
		fmt.Printf("Total words: %d\n", dict.WordCount())

	case "contains":
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "Error: contains requires a word")
			return 1
		}
		word := args[0]
		if !dict.Contains(word) {
			fmt.Printf("'%s' NOT in dictionary\n", word)
			return 1
		}
		fmt.Printf("'%s' exists in dictionary\n", word)

	case "list":
		for _, word := range dict.Words() {
			fmt.Println(word)
		}

	case "rebuild":
		if err := dict.RebuildFST(); err != nil {
			fmt.Fprintf(os.Stderr, "Error rebuilding FST: %v\n", err)
			return 1
		}
		fmt.Printf("FST rebuilt. Total words: %d\n", dict.WordCount())

	case "stats":
		fmt.Printf("Dictionary: %s\n", dictPath)
		fmt.Printf("Word count: %d\n", dict.WordCount())

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		return 1
	}
	return 0
}

func printUsage() {
	fmt.Println("Usage: lexmgr <dictionary.txt> <command> [args...]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  add <word> [word...]    Add words to dictionary")
	fmt.Println("  remove <word> [word...] Remove words from dictionary")
	fmt.Println("  contains <word>         Check if word exists")
	fmt.Println("  list                    Print every word")
	fmt.Println("  rebuild                 Rebuild FST from text file")
	fmt.Println("  stats                   Show dictionary statistics")
}
