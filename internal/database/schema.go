package database

import (
	"database/sql"
	"fmt"
)

// schemaStatements creates the storefront tables. Kept as idempotent
// CREATE TABLE IF NOT EXISTS statements so the server can bootstrap an
// empty database on startup.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS regions (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		description TEXT,
		display_order INTEGER DEFAULT 0,
		is_active BOOLEAN DEFAULT TRUE,
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS destinations (
		id SERIAL PRIMARY KEY,
		region_id INTEGER NOT NULL REFERENCES regions(id),
		name TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		country_code TEXT,
		flag_emoji TEXT,
		hero_image_url TEXT,
		description TEXT,
		coverage_quality INTEGER DEFAULT 4,
		is_popular BOOLEAN DEFAULT FALSE,
		is_active BOOLEAN DEFAULT TRUE,
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS packages (
		id SERIAL PRIMARY KEY,
		destination_id INTEGER NOT NULL REFERENCES destinations(id),
		name TEXT NOT NULL,
		data_amount TEXT NOT NULL,
		data_unit TEXT DEFAULT 'GB',
		validity_days INTEGER NOT NULL,
		price_usd DOUBLE PRECISION NOT NULL,
		is_popular BOOLEAN DEFAULT FALSE,
		is_active BOOLEAN DEFAULT TRUE,
		network_type TEXT DEFAULT '4G',
		tethering_allowed BOOLEAN DEFAULT TRUE,
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS regional_packages (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		description TEXT,
		countries_included TEXT,
		data_amount TEXT NOT NULL,
		validity_days INTEGER NOT NULL,
		price_usd DOUBLE PRECISION NOT NULL,
		is_active BOOLEAN DEFAULT TRUE,
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id SERIAL PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		first_name TEXT,
		last_name TEXT,
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
		last_login TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id SERIAL PRIMARY KEY,
		customer_id INTEGER REFERENCES customers(id),
		email TEXT NOT NULL,
		status TEXT DEFAULT 'pending',
		subtotal DOUBLE PRECISION NOT NULL,
		discount DOUBLE PRECISION DEFAULT 0,
		total DOUBLE PRECISION NOT NULL,
		promo_code_used TEXT,
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id SERIAL PRIMARY KEY,
		order_id INTEGER NOT NULL REFERENCES orders(id),
		package_id INTEGER NOT NULL,
		destination_name TEXT NOT NULL,
		package_name TEXT NOT NULL,
		quantity INTEGER DEFAULT 1,
		unit_price DOUBLE PRECISION NOT NULL,
		total_price DOUBLE PRECISION NOT NULL,
		qr_code_data TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS promo_codes (
		id SERIAL PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		discount_type TEXT NOT NULL,
		discount_value DOUBLE PRECISION NOT NULL,
		min_order_amount DOUBLE PRECISION DEFAULT 0,
		usage_limit INTEGER,
		times_used INTEGER DEFAULT 0,
		valid_from TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
		valid_until TIMESTAMPTZ,
		is_active BOOLEAN DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS testimonials (
		id SERIAL PRIMARY KEY,
		customer_name TEXT NOT NULL,
		country TEXT,
		rating INTEGER DEFAULT 5,
		review_text TEXT,
		destination_visited TEXT,
		is_featured BOOLEAN DEFAULT FALSE,
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS faq_items (
		id SERIAL PRIMARY KEY,
		category TEXT NOT NULL,
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		display_order INTEGER DEFAULT 0,
		is_active BOOLEAN DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS support_tickets (
		id SERIAL PRIMARY KEY,
		customer_email TEXT NOT NULL,
		order_id INTEGER REFERENCES orders(id),
		category TEXT NOT NULL,
		subject TEXT NOT NULL,
		message TEXT NOT NULL,
		status TEXT DEFAULT 'pending',
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,
}

// dropStatements removes all tables, children first.
var dropStatements = []string{
	`DROP TABLE IF EXISTS support_tickets`,
	`DROP TABLE IF EXISTS faq_items`,
	`DROP TABLE IF EXISTS testimonials`,
	`DROP TABLE IF EXISTS promo_codes`,
	`DROP TABLE IF EXISTS order_items`,
	`DROP TABLE IF EXISTS orders`,
	`DROP TABLE IF EXISTS customers`,
	`DROP TABLE IF EXISTS regional_packages`,
	`DROP TABLE IF EXISTS packages`,
	`DROP TABLE IF EXISTS destinations`,
	`DROP TABLE IF EXISTS regions`,
}

// InitializeSchema creates all storefront tables if they do not exist.
func InitializeSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return nil
}

// DropSchema removes all storefront tables.
func DropSchema(db *sql.DB) error {
	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
	}
	return nil
}
