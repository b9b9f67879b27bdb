package main

import (
	"database/sql"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"relief-location-api/internal/config"
	"relief-location-api/internal/models"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// FacilityRecord is one CSV row of facility seed data.
// Expected columns: kind, name, address, capacity, current_occupancy, status, lat, lng
type FacilityRecord struct {
	Kind             string
	Name             string
	Address          string
	Capacity         int
	CurrentOccupancy int
	Status           string
	Lat              float64
	Lng              float64
}

func main() {
	file := flag.String("file", "", "Path to the CSV file to import")
	flag.Parse()

	if *file == "" {
		log.Fatal().Msg("--file flag is required")
	}

	log.Info().Str("file", *file).Msg("starting facility import")

	records, err := parseCSV(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot parse CSV")
	}
	log.Info().Int("count", len(records)).Msg("parsed records")

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	db, err := sql.Open("postgres", cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to database")
	}
	defer db.Close()

	if err := createTableIfNotExists(db); err != nil {
		log.Fatal().Err(err).Msg("cannot create facilities table")
	}

	if err := insertRecords(db, records); err != nil {
		log.Fatal().Err(err).Msg("cannot insert records")
	}

	if err := verifyImport(db, len(records)); err != nil {
		log.Fatal().Err(err).Msg("import verification failed")
	}

	log.Info().Int("count", len(records)).Msg("import complete")
}

func parseCSV(filePath string) ([]FacilityRecord, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var records []FacilityRecord
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) < 8 {
			return nil, fmt.Errorf("invalid record length: %d, expected 8 columns", len(record))
		}

		capacity, err := strconv.Atoi(record[3])
		if err != nil {
			return nil, fmt.Errorf("invalid capacity: %s", record[3])
		}

		occupancy, err := strconv.Atoi(record[4])
		if err != nil {
			return nil, fmt.Errorf("invalid current_occupancy: %s", record[4])
		}

		lat, err := strconv.ParseFloat(record[6], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude: %s", record[6])
		}

		lng, err := strconv.ParseFloat(record[7], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude: %s", record[7])
		}

		records = append(records, FacilityRecord{
			Kind:             record[0],
			Name:             record[1],
			Address:          record[2],
			Capacity:         capacity,
			CurrentOccupancy: occupancy,
			Status:           record[5],
			Lat:              lat,
			Lng:              lng,
		})
	}

	return records, nil
}

func createTableIfNotExists(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS facilities (
		id BIGSERIAL PRIMARY KEY,
		kind VARCHAR(50) NOT NULL,
		name VARCHAR(200) NOT NULL,
		address TEXT NOT NULL,
		capacity INTEGER,
		current_occupancy INTEGER DEFAULT 0,
		status VARCHAR(50) DEFAULT 'active',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		geom GEOGRAPHY(POINT, 4326)
	);
	CREATE INDEX IF NOT EXISTS facilities_geom_idx ON facilities USING GIST (geom);
	CREATE INDEX IF NOT EXISTS facilities_kind_active_idx ON facilities (kind, is_active);
	`
	_, err := db.Exec(query)
	return err
}

// activeFor derives the is_active flag: shelters marked full still serve
// nearby search, closed ones do not.
func activeFor(kind, status string) bool {
	if kind == models.KindShelter {
		return status == models.StatusActive || status == models.StatusFull
	}
	return status == models.StatusActive
}

func insertRecords(db *sql.DB, records []FacilityRecord) error {
	txn, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := txn.Prepare(pq.CopyIn(
		"facilities",
		"kind", "name", "address", "capacity", "current_occupancy", "status", "is_active", "geom",
	))
	if err != nil {
		txn.Rollback()
		return fmt.Errorf("failed to prepare copy: %w", err)
	}

	for _, r := range records {
		geom := fmt.Sprintf("SRID=4326;POINT(%f %f)", r.Lng, r.Lat) // PostGIS format: lng lat
		_, err := stmt.Exec(r.Kind, r.Name, r.Address, r.Capacity, r.CurrentOccupancy, r.Status, activeFor(r.Kind, r.Status), geom)
		if err != nil {
			txn.Rollback()
			return fmt.Errorf("failed to copy record: %w", err)
		}
	}

	if _, err := stmt.Exec(); err != nil {
		txn.Rollback()
		return fmt.Errorf("failed to flush copy: %w", err)
	}
	if err := stmt.Close(); err != nil {
		txn.Rollback()
		return fmt.Errorf("failed to close copy: %w", err)
	}

	return txn.Commit()
}

func verifyImport(db *sql.DB, expectedCount int) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM facilities").Scan(&count); err != nil {
		return fmt.Errorf("failed to count records: %w", err)
	}

	if count < expectedCount {
		return fmt.Errorf("record count mismatch: expected at least %d, got %d", expectedCount, count)
	}

	var geom string
	if err := db.QueryRow("SELECT ST_AsText(geom::geometry) FROM facilities LIMIT 1").Scan(&geom); err != nil {
		return fmt.Errorf("failed to check geom: %w", err)
	}

	log.Info().Str("sample_geom", geom).Msg("verified import")
	return nil
}
