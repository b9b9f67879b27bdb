//go:build integration

package repository

import (
	"context"
	"testing"

	"relief-location-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jackc/pgx/v5/pgxpool"
)

func setupTestDatabase(t *testing.T) *pgxpool.Pool {
	ctx := context.Background()

	// Start PostgreSQL container with PostGIS
	req := testcontainers.ContainerRequest{
		Image:        "postgis/postgis:16-3.4",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections"),
	}

	postgresC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		postgresC.Terminate(ctx)
	})

	host, err := postgresC.Host(ctx)
	require.NoError(t, err)

	port, err := postgresC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connString := "postgres://testuser:testpass@" + host + ":" + port.Port() + "/testdb?sslmode=disable"

	// Connect to database
	pool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Close()
	})

	// Create test schema
	_, err = pool.Exec(ctx, `
		CREATE EXTENSION IF NOT EXISTS postgis;

		CREATE TABLE facilities (
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

		CREATE INDEX facilities_geom_idx ON facilities USING GIST (geom);
		CREATE INDEX facilities_kind_active_idx ON facilities (kind, is_active);

		-- Insert test data (geom takes lng lat)
		INSERT INTO facilities (kind, name, address, capacity, current_occupancy, status, is_active, geom) VALUES
		('supply_station', '鄉公所站', '花蓮縣光復鄉中正路一段1號', NULL, 0, 'active', TRUE, ST_SetSRID(ST_MakePoint(121.4015, 23.6739), 4326)),
		('supply_station', '舊糖廠站', '花蓮縣光復鄉糖廠街19號', NULL, 0, 'inactive', FALSE, ST_SetSRID(ST_MakePoint(121.4220, 23.6430), 4326)),
		('shelter', '光復國小避難所', '花蓮縣光復鄉學士街11號', 200, 80, 'active', TRUE, ST_SetSRID(ST_MakePoint(121.4200, 23.6800), 4326)),
		('shelter', '大進國小避難所', '花蓮縣光復鄉大進街42號', 150, 150, 'full', TRUE, ST_SetSRID(ST_MakePoint(121.4100, 23.6600), 4326)),
		('shelter', '已關閉避難所', '花蓮縣光復鄉中山路三段75號', 100, 0, 'closed', FALSE, ST_SetSRID(ST_MakePoint(121.4300, 23.6700), 4326));
	`)
	require.NoError(t, err)

	return pool
}

func TestRepository_FetchActiveFacilities(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewRepository(pool)
	ctx := context.Background()

	t.Run("supply stations exclude inactive", func(t *testing.T) {
		facilities, err := repo.FetchActiveFacilities(ctx, models.KindSupplyStation)
		require.NoError(t, err)

		require.Len(t, facilities, 1)
		f := facilities[0]
		assert.Equal(t, "鄉公所站", f.Name)
		assert.Equal(t, models.KindSupplyStation, f.Kind)
		assert.True(t, f.IsActive)
		assert.InDelta(t, 23.6739, f.Coordinate.Lat, 1e-6)
		assert.InDelta(t, 121.4015, f.Coordinate.Lng, 1e-6)
	})

	t.Run("shelters include full but not closed", func(t *testing.T) {
		facilities, err := repo.FetchActiveFacilities(ctx, models.KindShelter)
		require.NoError(t, err)

		require.Len(t, facilities, 2)

		statuses := map[string]bool{}
		for _, f := range facilities {
			statuses[f.Status] = true
			assert.True(t, f.IsActive)
		}
		assert.True(t, statuses[models.StatusActive])
		assert.True(t, statuses[models.StatusFull])
		assert.False(t, statuses[models.StatusClosed])
	})

	t.Run("unknown kind returns no rows", func(t *testing.T) {
		facilities, err := repo.FetchActiveFacilities(ctx, "warehouse")
		require.NoError(t, err)
		assert.Empty(t, facilities)
	})
}
