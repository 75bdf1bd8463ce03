package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"traveler-service/internal/domain"
	"traveler-service/internal/platform/obs"
)

// SQLPlaceRepository is the Postgres (pgx) implementation of the PlaceRepository port.
type SQLPlaceRepository struct {
	DB *sql.DB
}

func NewSQLPlaceRepository(db *sql.DB) *SQLPlaceRepository {
	return &SQLPlaceRepository{DB: db}
}

func (s *SQLPlaceRepository) ListPlaces(ctx context.Context) (_ []domain.Place, err error) {
	defer obs.Time(ctx, "places.ListPlaces")(&err)

	if s.DB == nil {
		return nil, errors.New("place repository: db is nil")
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

// Fetch places for the given names.
func (s *SQLPlaceRepository) GetMany(ctx context.Context, names []string) (_ map[string]domain.Place, err error) {
	defer obs.Time(ctx, "places.GetMany")(&err)

	if s.DB == nil {
		return nil, errors.New("place repository: db is nil")
	}

	keys := uniqueKeys(names)
	if len(keys) == 0 {
		return map[string]domain.Place{}, nil
	}

	q := `
	SELECT ` + placeColumns + `
	FROM places
	WHERE name_key = ANY($1::text[]);
	`

	rows, err := s.DB.QueryContext(ctx, q, keys)
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

// Store places, updating the name and location of existing rows.
func (s *SQLPlaceRepository) PutMany(ctx context.Context, places []domain.Place) (err error) {
	defer obs.Time(ctx, "places.PutMany")(&err)

	if s.DB == nil {
		return errors.New("place repository: db is nil")
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
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (name_key) DO UPDATE
	SET name = EXCLUDED.name,
		lat = EXCLUDED.lat,
		lng = EXCLUDED.lng;
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
