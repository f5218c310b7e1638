package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/schemarex/schemarex/pkg/regex"
)

// compileSchemaFile reads a schema document and compiles it to a regex.
// Files ending in .yaml or .yml are converted from YAML first.
func compileSchemaFile(path string) (string, error) {
	data, rerr := os.ReadFile(path)
	if rerr != nil {
		return "", fmt.Errorf("failed to read schema file: %v", rerr)
	}
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return regex.FromSchemaYAML(data)
	}
	return regex.FromSchema(data)
}

// matchCandidate reports whether the candidate file's contents match the
// compiled pattern, anchored at both ends.
func matchCandidate(pattern, path string) (bool, error) {
	data, rerr := os.ReadFile(path)
	if rerr != nil {
		return false, fmt.Errorf("failed to read candidate file: %v", rerr)
	}
	re, cerr := regexp.Compile("^" + pattern + "$")
	if cerr != nil {
		return false, fmt.Errorf("compiled pattern is not a valid regexp: %v", cerr)
	}
	return re.Match(data), nil
}

func main() {
	schemaFile := flag.String("schema", "", "Path to the JSON Schema file (required; .yaml/.yml accepted)")
	candidateFile := flag.String("match", "", "Path to a candidate JSON text to test against the pattern (optional)")

	flag.Parse()

	if *schemaFile == "" {
		fmt.Println("Error: schema file is required")
		fmt.Println("Usage:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	pattern, err := compileSchemaFile(*schemaFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(pattern)

	if *candidateFile != "" {
		ok, err := matchCandidate(pattern, *candidateFile)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			fmt.Fprintf(os.Stderr, "candidate does not match the schema pattern\n")
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "candidate matches the schema pattern\n")
	}
}
