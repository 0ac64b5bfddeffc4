package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"plantstore/internal/config"
	"plantstore/internal/db"
	"plantstore/internal/domain"
	"plantstore/internal/importer"
	plantrepo "plantstore/internal/repository/plant"
	profilerepo "plantstore/internal/repository/profile"
)

func main() {
	var (
		filePath     string
		nurseryEmail string
	)
	flag.StringVar(&filePath, "file", "", "Path to plant catalog CSV")
	flag.StringVar(&nurseryEmail, "nursery", "", "Email of the nursery account to import into")
	flag.Parse()

	if filePath == "" || nurseryEmail == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DBConnString, 1)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	profiles := profilerepo.NewPostgres(pool, logger)
	nursery, err := profiles.GetByEmail(ctx, nurseryEmail)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.Fatalf("nursery account %q not found, create it first", nurseryEmail)
		}
		logger.Fatalf("look up nursery %q: %v", nurseryEmail, err)
	}
	if nursery.Role != domain.RoleNursery {
		logger.Fatalf("account %q is not a nursery", nurseryEmail)
	}

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatalf("open file: %v", err)
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f, plantrepo.NewPostgres(pool, logger), nursery.ID)

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		logger.Fatalf("import failed: %v", err)
	}

	fmt.Printf("Imported %d plants for %s in %s\n", count, nurseryEmail, time.Since(start).Truncate(time.Millisecond))
}
