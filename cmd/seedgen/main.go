package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"date-shift/internal/seed"
)

func main() {
	var (
		phrase  string
		outFile string
	)

	flag.StringVar(&phrase, "phrase", "", "Derive the seed from this phrase instead of generating a random one")
	flag.StringVar(&outFile, "out", "", "Also write the seed to this file (single decimal line)")
	flag.Parse()

	if flag.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "error: unexpected arguments: %v\n", flag.Args())
		os.Exit(2)
	}

	var (
		value int64
		err   error
	)
	if phrase != "" {
		value, err = seed.FromPhrase(phrase)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(2)
		}
		fmt.Printf("🎲 Seed derived from phrase: %d\n", value)
	} else {
		value, err = seed.Random()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to generate seed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("🎲 Generated random seed: %d\n", value)
	}

	if outFile != "" {
		if dir := filepath.Dir(outFile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				fmt.Fprintf(os.Stderr, "failed to create output directory: %v\n", err)
				os.Exit(1)
			}
		}
		// Seeds reverse the anonymization, so keep the file private.
		if err := os.WriteFile(outFile, []byte(strconv.FormatInt(value, 10)+"\n"), 0o600); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", outFile, err)
			os.Exit(1)
		}
		fmt.Printf("✅ Seed written to %s (mode 600)\n", outFile)
	}

	fmt.Println()
	fmt.Println("Usage examples:")
	fmt.Println("  anonymize -seed <value> -dir ./export -out ./export-anon")
	fmt.Println("  anonymize -seed-phrase 'export handoff 2024' visits.csv visits_anon.csv")
	fmt.Println("  go build -ldflags \"-X 'date-shift/internal/seed.EmbeddedSeedPhrase=export handoff 2024'\" ./cmd/anonymize")
}
