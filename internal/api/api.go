package api

//go:generate go tool oapi-codegen -config cfg.yaml openapi.yaml

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"github.com/goccy/go-json"

	"knight-sequences/internal/keypad"
	"knight-sequences/internal/metrics"
	"knight-sequences/internal/sequence"
)

const (
	// maxLength caps requested lengths. Counts overflow uint64 well before it.
	maxLength = 64

	// maxWorkers caps the per-request worker override.
	maxWorkers = 256

	defaultListLimit = 20
	maxListLimit     = 500
)

// Server implements ServerInterface on top of a keypad layout and a SQLite
// run history.
type Server struct {
	db       *sql.DB
	layout   *keypad.Layout
	defaults sequence.Options
}

// NewServer returns the API handlers. defaults supplies the counter options
// used when a request does not override them.
func NewServer(db *sql.DB, layout *keypad.Layout, defaults sequence.Options) ServerInterface {
	return &Server{db: db, layout: layout, defaults: defaults}
}

// CountSequences counts sequences of the requested length and records the run.
func (s *Server) CountSequences(w http.ResponseWriter, r *http.Request, length int, params CountSequencesParams) {
	if length > maxLength {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Length must be at most %d", maxLength))
		return
	}

	opts := s.defaults
	if params.Workers != nil {
		if *params.Workers < 1 || *params.Workers > maxWorkers {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Workers must be between 1 and %d", maxWorkers))
			return
		}
		opts.Workers = *params.Workers
	}
	if params.Vowels != nil {
		if *params.Vowels < 0 || *params.Vowels > sequence.MaxVowelBudget {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Vowels must be between 0 and %d", sequence.MaxVowelBudget))
			return
		}
		opts.VowelBudget = *params.Vowels
	}
	opts.Progress = nil

	counter, err := sequence.New(s.layout, opts)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid options: %v", err))
		return
	}

	res, err := counter.Run(r.Context(), length)
	if err != nil {
		log.Printf("count of length %d failed: %v", length, err)
		writeError(w, http.StatusInternalServerError, "Failed to count sequences")
		return
	}
	metrics.RecordRun(res)

	run := RunFromResult(res)
	if err := SaveRun(s.db, &run); err != nil {
		log.Printf("failed to save run: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to save run")
		return
	}

	writeJSON(w, http.StatusOK, run)
}

// GetKeypad describes every key with its knight-move neighbors.
func (s *Server) GetKeypad(w http.ResponseWriter, r *http.Request) {
	keys := make([]Key, 0, s.layout.Size())
	for _, k := range s.layout.Keys() {
		c := s.layout.Cell(k)
		neighbors := make([]string, 0, len(s.layout.Neighbors(k)))
		for _, n := range s.layout.Neighbors(k) {
			neighbors = append(neighbors, s.layout.Name(n))
		}
		keys = append(keys, Key{
			Name:      c.Name,
			Row:       c.Row,
			Col:       c.Col,
			Vowel:     c.Vowel,
			Neighbors: neighbors,
		})
	}

	writeJSON(w, http.StatusOK, keys)
}

// ListRuns returns the most recent runs.
func (s *Server) ListRuns(w http.ResponseWriter, r *http.Request, params ListRunsParams) {
	limit := defaultListLimit
	if params.Limit != nil {
		if *params.Limit < 1 || *params.Limit > maxListLimit {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Limit must be between 1 and %d", maxListLimit))
			return
		}
		limit = *params.Limit
	}

	runs, err := ListRuns(s.db, limit)
	if err != nil {
		log.Printf("failed to list runs: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to list runs")
		return
	}

	writeJSON(w, http.StatusOK, runs)
}

// GetRun returns one stored run.
func (s *Server) GetRun(w http.ResponseWriter, r *http.Request, runId string) {
	run, err := GetRun(s.db, runId)
	if err != nil {
		log.Printf("failed to get run %s: %v", runId, err)
		writeError(w, http.StatusInternalServerError, "Failed to get run")
		return
	}
	if run == nil {
		writeError(w, http.StatusNotFound, "Run not found")
		return
	}

	writeJSON(w, http.StatusOK, run)
}

// RunFromResult converts a counter result into an unsaved run record.
func RunFromResult(res sequence.Result) Run {
	return Run{
		Length:       res.Length,
		Count:        res.Count,
		VowelBudget:  res.VowelBudget,
		Workers:      res.Workers,
		CacheEntries: res.CacheEntries,
		CacheHits:    res.CacheHits,
		CacheMisses:  res.CacheMisses,
		ElapsedMs:    res.Elapsed.Milliseconds(),
	}
}

// ErrorHandler answers parameter binding failures with a JSON 400.
func ErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, http.StatusBadRequest, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, Error{Error: msg})
}
