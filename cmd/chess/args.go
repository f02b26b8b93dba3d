package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// loadArgsFromFileIfSpecified expands "-A file" in os.Args into the
// arguments listed in the file, before flag.Parse sees them.
func loadArgsFromFileIfSpecified() {
	for i := 1; i < len(os.Args)-1; i++ {
		if os.Args[i] != "-A" && os.Args[i] != "--A" {
			continue
		}
		fileArgs, err := loadArgsFile(os.Args[i+1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading args file %s: %v\n", os.Args[i+1], err)
			os.Exit(1)
		}
		expanded := make([]string, 0, len(os.Args)+len(fileArgs))
		expanded = append(expanded, os.Args[:i]...)
		expanded = append(expanded, fileArgs...)
		expanded = append(expanded, os.Args[i+2:]...)
		os.Args = expanded
		return
	}
}

// loadArgsFile reads command-line arguments from a file. Blank lines and
// lines starting with # are skipped; each other line is split like a shell
// would split it, honouring single and double quotes.
func loadArgsFile(path string) ([]string, error) {
	file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var args []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args = append(args, splitArgsLine(line)...)
	}
	return args, scanner.Err()
}

// splitArgsLine splits a line on whitespace, keeping quoted runs together.
func splitArgsLine(line string) []string {
	var (
		args    []string
		current strings.Builder
		quote   rune
		inArg   bool
	)

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inArg = true
		case r == ' ' || r == '\t':
			if inArg {
				args = append(args, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(r)
			inArg = true
		}
	}
	if inArg {
		args = append(args, current.String())
	}
	return args
}
