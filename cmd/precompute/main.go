package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"knight-sequences/internal/keypad"
	"knight-sequences/internal/precompute"
	"knight-sequences/internal/sequence"
)

func main() {
	// Define command-line flags
	from := flag.Int("from", 1, "First sequence length")
	to := flag.Int("to", 32, "Last sequence length")
	outputFile := flag.String("output", "counts.txt", "Output file path")
	checkFile := flag.String("check", "", "Existing table to verify the computed counts against")
	workers := flag.Int("workers", 0, "Lengths computed at once (default: number of CPUs)")
	counterWorkers := flag.Int("counter-workers", 1, "Goroutines counting inside one length")
	vowels := flag.Int("vowels", sequence.DefaultVowelBudget, "Vowel keys allowed per sequence")
	flag.Parse()

	// Validate input
	if *from > *to {
		fmt.Fprintf(os.Stderr, "Error: -from (%d) must not exceed -to (%d)\n\n", *from, *to)
		flag.Usage()
		os.Exit(1)
	}

	var want []precompute.Entry
	if *checkFile != "" {
		var err error
		want, err = precompute.LoadTable(*checkFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Sequence Count Pre-compute Tool\n")
	fmt.Printf("===============================\n\n")
	fmt.Printf("Lengths: %d..%d\n", *from, *to)
	fmt.Printf("Vowel budget: %d\n", *vowels)
	fmt.Printf("Output file: %s\n", *outputFile)
	fmt.Println()

	// Track start time for elapsed time reporting
	programStart := time.Now()

	// Progress callback that shows elapsed time
	progressCallback := func(msg string) {
		elapsed := time.Since(programStart)
		fmt.Printf("[%s] %s\n", formatElapsed(elapsed), msg)
	}

	opts := sequence.DefaultOptions(*counterWorkers)
	opts.VowelBudget = *vowels
	counter, err := sequence.New(keypad.Standard(), opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	startTime := time.Now()
	entries, err := precompute.ComputeTable(context.Background(), counter, *from, *to, *workers, progressCallback)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		os.Exit(1)
	}

	processingTime := time.Since(startTime)

	// Write output
	progressCallback("Writing output file...")

	if err := precompute.WriteTable(entries, *outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "\nError writing output: %v\n", err)
		os.Exit(1)
	}

	if *checkFile != "" {
		mismatches := precompute.CompareTables(want, entries)
		for _, m := range mismatches {
			if m.Missing {
				fmt.Fprintf(os.Stderr, "  length %d: not computed (want %d)\n", m.Length, m.Want)
				continue
			}
			fmt.Fprintf(os.Stderr, "  length %d: got %d, want %d\n", m.Length, m.Got, m.Want)
		}
		if len(mismatches) > 0 {
			fmt.Fprintf(os.Stderr, "\nError: %d lengths disagree with %s\n", len(mismatches), *checkFile)
			os.Exit(1)
		}
		progressCallback(fmt.Sprintf("All %d lengths in %s match", len(want), *checkFile))
	}

	// Summary
	fmt.Printf("\n✓ Success!\n")
	fmt.Printf("  Lengths computed: %d\n", len(entries))
	fmt.Printf("  Processing time: %s\n", processingTime.Round(time.Millisecond))
	fmt.Printf("  Output file: %s\n", *outputFile)
	fmt.Println()
}

// formatElapsed formats a duration into a human-readable elapsed time string
func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60

	if minutes > 0 {
		return fmt.Sprintf("%dm%02ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
