package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"traveler-service/internal/domain"
	"traveler-service/internal/platform/obs"
)

// SQLite-backed implementation of the PlaceRepository port.
type SqlitePlaceRepository struct{ DB *sql.DB }

func NewSqlitePlaceRepository(db *sql.DB) *SqlitePlaceRepository {
	return &SqlitePlaceRepository{DB: db}
}

// Return all places stored in the database.
func (s *SqlitePlaceRepository) ListPlaces(ctx context.Context) (_ []domain.Place, err error) {
	defer obs.Time(ctx, "sqlite.places.ListPlaces")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite place repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `SELECT `+placeColumns+` FROM places ORDER BY name_key;`)
	if err != nil {
		return nil, fmt.Errorf("list places: query places table: %w", err)
	}
	defer rows.Close()

	places, err := scanPlaces(rows)
	if err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}
	return places, nil
}

// Fetch places by name.
func (s *SqlitePlaceRepository) GetMany(ctx context.Context, names []string) (_ map[string]domain.Place, err error) {
	defer obs.Time(ctx, "sqlite.places.GetMany")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite place repository: DB is nil")
	}

	keys := uniqueKeys(names)
	if len(keys) == 0 {
		return map[string]domain.Place{}, nil
	}

	ph := make([]string, 0, len(keys))
	args := make([]any, 0, len(keys))
	for _, k := range keys {
		ph = append(ph, "?")
		args = append(args, k)
	}

	// SQLite does not support binding slices directly in an IN (...) clause.
	// Only the placeholder structure is interpolated; all values remain parameterized.
	q := fmt.Sprintf(`
	SELECT %s
	FROM places
	WHERE name_key IN (%s);
	`, placeColumns, strings.Join(ph, ","))

	rows, err := s.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("get places: query places table: %w", err)
	}
	defer rows.Close()

	places, err := scanPlaces(rows)
	if err != nil {
		return nil, fmt.Errorf("get places: %w", err)
	}

	out := make(map[string]domain.Place, len(places))
	for _, p := range places {
		out[p.Key()] = p
	}
	return out, nil
}

// Insert or update places keyed by name.
func (s *SqlitePlaceRepository) PutMany(ctx context.Context, places []domain.Place) (err error) {
	defer obs.Time(ctx, "sqlite.places.PutMany")(&err)

	if s.DB == nil {
		return errors.New("sqlite place repository: DB is nil")
	}

	if len(places) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert places: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO places (place_id, name_key, name, lat, lng, created_at)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT (name_key) DO UPDATE
	SET name = excluded.name,
		lat = excluded.lat,
		lng = excluded.lng;
	`)
	if err != nil {
		return fmt.Errorf("insert places: db prepare: %w", err)
	}
	defer stmt.Close()

	for _, p := range places {
		p, err := preparePlace(p)
		if err != nil {
			return fmt.Errorf("insert places: %w", err)
		}

		if _, err := stmt.ExecContext(ctx,
			p.PlaceID.String(), p.Key(), p.Name, p.Location.Lat, p.Location.Lng, formatCreatedAt(p.CreatedAt),
		); err != nil {
			return fmt.Errorf("insert places name=%q: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert places commit: %w", err)
	}

	return nil
}
