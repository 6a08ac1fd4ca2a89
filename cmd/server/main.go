package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"knight-sequences/internal/api"
	"knight-sequences/internal/keypad"
	"knight-sequences/internal/metrics"
	"knight-sequences/internal/sequence"
)

func main() {
	workers := flag.Int("workers", 0, "Default goroutines per count (default: number of CPUs)")
	vowels := flag.Int("vowels", sequence.DefaultVowelBudget, "Default vowel keys allowed per sequence")
	flag.Parse()

	// Initialize database
	dbPath := getDBPath()
	log.Printf("Connecting to database: %s", dbPath)
	db, err := api.InitDB(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := api.CreateSchema(db); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	defaults := sequence.DefaultOptions(*workers)
	defaults.VowelBudget = *vowels
	server := api.NewServer(db, keypad.Standard(), defaults)

	mux := chi.NewMux()
	mux.Use(metrics.Middleware)
	mux.Handle("/metrics", promhttp.Handler())
	h := api.HandlerWithOptions(server, api.ChiServerOptions{
		BaseRouter:       mux,
		ErrorHandlerFunc: api.ErrorHandler,
	})

	addr := getAddr()
	s := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("Starting server on %s", addr)
	if err := s.ListenAndServe(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func getDBPath() string {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./knight.db"
	}
	return dbPath
}

func getAddr() string {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return addr
}
