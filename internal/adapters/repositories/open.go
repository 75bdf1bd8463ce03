package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"traveler-service/internal/config"
	"traveler-service/internal/platform/db"
	"traveler-service/internal/ports"
)

// Store bundles a place repository with the database handle backing it, if any.
type Store struct {
	Places ports.PlaceRepository
	DB     *sql.DB
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

// OpenStore builds the place repository selected by cfg.DBDriver.
func OpenStore(cfg config.Config) (*Store, error) {
	switch cfg.DBDriver {
	case config.StoreMemory:
		return &Store{Places: NewMemoryPlaceRepository()}, nil
	case config.StoreSqlite:
		conn, err := db.Open(db.DriverSqlite, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		return &Store{Places: NewSqlitePlaceRepository(conn), DB: conn}, nil
	case config.StorePostgres:
		conn, err := db.Open(db.DriverPostgres, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		return &Store{Places: NewSQLPlaceRepository(conn), DB: conn}, nil
	default:
		return nil, fmt.Errorf("open store: unsupported driver %q", cfg.DBDriver)
	}
}

// InitAndSeed creates the schema (for SQL stores) and loads seedPath when the file exists.
// It returns the number of seeded places.
func InitAndSeed(ctx context.Context, s *Store, seedPath string) (int, error) {
	if s.DB != nil {
		if err := InitSchema(s.DB); err != nil {
			return 0, fmt.Errorf("init and seed: %w", err)
		}
	}

	if seedPath == "" {
		return 0, nil
	}
	if _, err := os.Stat(seedPath); errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}

	n, err := SeedFromJSON(ctx, s.Places, seedPath)
	if err != nil {
		return 0, fmt.Errorf("init and seed: %w", err)
	}
	return n, nil
}
