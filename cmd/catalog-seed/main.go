package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"joyjoy-locums-backend/internal/compliance"
	"joyjoy-locums-backend/internal/config"
	"joyjoy-locums-backend/internal/database"
	"joyjoy-locums-backend/internal/repository"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// catalog-seed copies a YAML requirement catalog into Postgres so the server
// can run with CATALOG_SOURCE=database. Re-seeding a version replaces it.
func main() {
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	path := flag.String("file", cfg.CatalogPath, "catalog YAML file")
	version := flag.String("version", "", "store under this version instead of the file's")
	list := flag.Bool("list", false, "list stored versions and exit")
	flag.Parse()

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	repo := repository.NewCatalogRepository(db, "")
	ctx := context.Background()

	if *list {
		if err := printVersions(ctx, repo); err != nil {
			log.Fatalf("Failed to list catalog versions: %v", err)
		}
		return
	}

	n, stored, err := seed(ctx, repo, *path, *version)
	if err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
	log.Printf("Catalog %s seeded from %s (%d requirements)", stored, *path, n)
}

// seed loads and validates the catalog file, then replaces the stored version
func seed(ctx context.Context, repo repository.CatalogRepositoryInterface, path, version string) (int, string, error) {
	c, err := compliance.LoadCatalogFile(path)
	if err != nil {
		return 0, "", err
	}
	if version != "" {
		c.Version = version
	}

	entries := repository.EntriesFromCatalog(c)
	if err := repo.ReplaceVersion(ctx, c.Version, entries); err != nil {
		return 0, "", fmt.Errorf("store catalog %s: %w", c.Version, err)
	}
	return len(entries), c.Version, nil
}

func printVersions(ctx context.Context, repo repository.CatalogRepositoryInterface) error {
	versions, err := repo.ListVersions(ctx)
	if err != nil {
		return err
	}
	if len(versions) == 0 {
		log.Println("No catalog versions stored")
		return nil
	}
	for _, v := range versions {
		fmt.Printf("%s\t%d\t%s\n", v.Version, v.Entries, v.CreatedAt.Format(time.RFC3339))
	}
	return nil
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}
