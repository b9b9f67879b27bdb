package repository

import (
	"context"
	"fmt"

	"relief-location-api/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements facility storage access for PostgreSQL/PostGIS.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// FetchActiveFacilities returns facilities of the given kind that can serve
// nearby search. is_active is maintained at write time: supply stations with
// the active flag, shelters with status active or full.
func (r *Repository) FetchActiveFacilities(ctx context.Context, kind string) ([]models.Facility, error) {
	sql := `
		SELECT
			id,
			kind,
			name,
			address,
			COALESCE(capacity, 0),
			COALESCE(current_occupancy, 0),
			COALESCE(status, ''),
			is_active,
			ST_Y(geom::geometry) AS latitude,
			ST_X(geom::geometry) AS longitude
		FROM facilities
		WHERE kind = $1 AND is_active = TRUE
	`

	rows, err := r.db.Query(ctx, sql, kind)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query facilities: %w", err)
	}
	defer rows.Close()

	var facilities []models.Facility
	for rows.Next() {
		var f models.Facility
		err := rows.Scan(
			&f.ID,
			&f.Kind,
			&f.Name,
			&f.Address,
			&f.Capacity,
			&f.CurrentOccupancy,
			&f.Status,
			&f.IsActive,
			&f.Coordinate.Lat,
			&f.Coordinate.Lng,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan facility: %w", err)
		}
		facilities = append(facilities, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return facilities, nil
}
