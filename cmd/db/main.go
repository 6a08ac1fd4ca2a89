package main

import (
	"flag"
	"log"
	"os"

	"knight-sequences/internal/api"
)

const dropTables = `DROP TABLE IF EXISTS runs;`

func main() {
	reset := flag.Bool("reset", false, "Drop the existing run history first")
	flag.Parse()

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./knight.db"
	}

	log.Printf("Setting up database at: %s\n", dbPath)

	db, err := api.InitDB(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if *reset {
		log.Println("Dropping existing tables...")
		if _, err := db.Exec(dropTables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
	}

	log.Println("Creating tables...")
	if err := api.CreateSchema(db); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	log.Println("Database setup completed successfully!")
}
