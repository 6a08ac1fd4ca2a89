package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"knight-sequences/internal/api"
	"knight-sequences/internal/keypad"
	"knight-sequences/internal/sequence"
)

var (
	errMissingLength = errors.New("missing sequence length argument")
	errInvalidLength = errors.New("sequence length must be an integer")
)

func main() {
	workers := flag.Int("workers", 0, "Goroutines counting in parallel (default: number of CPUs)")
	vowels := flag.Int("vowels", sequence.DefaultVowelBudget, "Vowel keys allowed per sequence")
	cutoff := flag.Int("cutoff", sequence.DefaultSequentialCutoff, "Remaining length at or below which branches are counted inline")
	verbose := flag.Bool("v", false, "Report progress")
	save := flag.Bool("save", false, "Record the run in the SQLite database at $DB_PATH")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <length>\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	length, err := parseLength(flag.Args())
	if errors.Is(err, errMissingLength) {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := sequence.DefaultOptions(*workers)
	opts.VowelBudget = *vowels
	opts.SequentialCutoff = *cutoff
	if *verbose {
		opts.Progress = func(msg string) { log.Println(msg) }
	}

	counter, err := sequence.New(keypad.Standard(), opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	res, err := counter.Run(context.Background(), length)
	if err != nil {
		log.Fatalf("Failed to count sequences: %v", err)
	}

	fmt.Printf("#sequences = %d\n", res.Count)

	if *save {
		if err := saveRun(res); err != nil {
			log.Fatalf("Failed to save run: %v", err)
		}
	}
}

// parseLength reads the sequence length from the positional arguments.
func parseLength(args []string) (int, error) {
	if len(args) < 1 {
		return 0, errMissingLength
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidLength, args[0])
	}
	return n, nil
}

func saveRun(res sequence.Result) error {
	db, err := api.InitDB(getDBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := api.CreateSchema(db); err != nil {
		return err
	}

	run := api.RunFromResult(res)
	if err := api.SaveRun(db, &run); err != nil {
		return err
	}
	log.Printf("Saved run %s", run.RunId)
	return nil
}

func getDBPath() string {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./knight.db"
	}
	return dbPath
}
