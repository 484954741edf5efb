package repositories

import (
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"

	"esim4travel/internal/database"
)

// setupTestDB connects to the database named by DATABASE_URL and ensures the
// schema exists. Tests are skipped when no database is reachable, so the unit
// suite stays runnable without Postgres.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set; skipping database test")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Skipf("Failed to connect to test database: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Skipf("Failed to ping test database: %v", err)
	}
	if err := database.InitializeSchema(db); err != nil {
		t.Fatalf("Failed to initialize schema: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// uniqueSuffix keeps seeded slugs and codes from colliding across test runs
// against a shared database.
func uniqueSuffix() string {
	return fmt.Sprintf("%d", time.Now().UnixNano())
}

// seedDestination inserts a region, destination and one package, returning
// their ids.
func seedDestination(t *testing.T, db *sql.DB) (regionID, destinationID, packageID int) {
	t.Helper()

	suffix := uniqueSuffix()

	err := db.QueryRow(`
		INSERT INTO regions (name, slug, description, display_order)
		VALUES ($1, $2, 'test region', 99)
		RETURNING id`,
		"Test Region "+suffix, "test-region-"+suffix).Scan(&regionID)
	if err != nil {
		t.Fatalf("Failed to seed region: %v", err)
	}

	err = db.QueryRow(`
		INSERT INTO destinations (region_id, name, slug, country_code, flag_emoji, is_popular, coverage_quality)
		VALUES ($1, $2, $3, 'TS', '🏁', true, 4)
		RETURNING id`,
		regionID, "Testland "+suffix, "testland-"+suffix).Scan(&destinationID)
	if err != nil {
		t.Fatalf("Failed to seed destination: %v", err)
	}

	err = db.QueryRow(`
		INSERT INTO packages (destination_id, name, data_amount, data_unit, validity_days, price_usd, is_popular, network_type, tethering_allowed)
		VALUES ($1, '5GB / 30 days', '5', 'GB', 30, 14.97, true, '4G', true)
		RETURNING id`,
		destinationID).Scan(&packageID)
	if err != nil {
		t.Fatalf("Failed to seed package: %v", err)
	}

	return regionID, destinationID, packageID
}
