// Command ingest loads the provider's CSV drops (minute-level speed
// readings and TMC segment identification files) into the SQLite archive
// consumed by the prediction server.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/jengzang/traffic-backend-go/internal/config"
	"github.com/jengzang/traffic-backend-go/internal/database"
	"github.com/jengzang/traffic-backend-go/internal/ingest"
)

func main() {
	cfg := config.Load()

	dataDir := flag.String("data", cfg.DataDir, "directory containing Readings*.csv and TMC*Identification*.csv")
	dbPath := flag.String("db", cfg.DBPath, "path of the SQLite archive to fill")
	flag.Parse()

	db, err := database.Open(database.Config{Path: *dbPath})
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	if err := database.Bootstrap(db); err != nil {
		log.Fatal("Failed to bootstrap schema:", err)
	}

	summary, err := ingest.NewLoader(db, *dataDir).Run(context.Background())
	if err != nil {
		log.Fatal("Ingest failed:", err)
	}

	log.Printf("Ingest complete: %d readings, %d segments from %d+%d files (%d rows skipped)",
		summary.Readings, summary.Segments,
		summary.ReadingFiles, summary.CatalogFiles, summary.SkippedRows)
}
