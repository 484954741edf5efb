package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"esim4travel/internal/models"
)

// CatalogRepository handles read access to regions, destinations and packages
type CatalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

const destinationListQuery = `
	SELECT
		d.id, d.region_id, d.name, d.slug,
		COALESCE(d.country_code, ''), COALESCE(d.flag_emoji, ''),
		COALESCE(d.hero_image_url, ''), COALESCE(d.description, ''),
		d.coverage_quality, d.is_popular, d.is_active, d.created_at, d.updated_at,
		COALESCE(r.slug, ''), COALESCE(r.name, ''),
		(SELECT MIN(price_usd) FROM packages WHERE destination_id = d.id AND is_active = TRUE),
		(SELECT COUNT(*) FROM packages WHERE destination_id = d.id AND is_active = TRUE)
	FROM destinations d
	LEFT JOIN regions r ON d.region_id = r.id`

// GetAllRegions returns active regions in display order.
func (r *CatalogRepository) GetAllRegions() ([]*models.Region, error) {
	rows, err := r.db.Query(`
		SELECT id, name, slug, COALESCE(description, ''), display_order, is_active, created_at
		FROM regions WHERE is_active = TRUE ORDER BY display_order`)
	if err != nil {
		return nil, fmt.Errorf("failed to query regions: %w", err)
	}
	defer rows.Close()

	var regions []*models.Region
	for rows.Next() {
		region := &models.Region{}
		if err := rows.Scan(&region.ID, &region.Name, &region.Slug, &region.Description,
			&region.DisplayOrder, &region.IsActive, &region.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan region: %w", err)
		}
		regions = append(regions, region)
	}
	return regions, rows.Err()
}

// GetRegionBySlug returns one active region.
func (r *CatalogRepository) GetRegionBySlug(slug string) (*models.Region, error) {
	region := &models.Region{}
	err := r.db.QueryRow(`
		SELECT id, name, slug, COALESCE(description, ''), display_order, is_active, created_at
		FROM regions WHERE slug = $1 AND is_active = TRUE`, slug).
		Scan(&region.ID, &region.Name, &region.Slug, &region.Description,
			&region.DisplayOrder, &region.IsActive, &region.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrRegionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get region: %w", err)
	}
	return region, nil
}

// GetAllDestinations returns active destinations with region and price summary.
func (r *CatalogRepository) GetAllDestinations() ([]*models.Destination, error) {
	return r.queryDestinations(destinationListQuery+` WHERE d.is_active = TRUE ORDER BY d.name`)
}

// GetPopularDestinations returns up to 8 destinations flagged popular.
func (r *CatalogRepository) GetPopularDestinations() ([]*models.Destination, error) {
	return r.queryDestinations(destinationListQuery +
		` WHERE d.is_popular = TRUE AND d.is_active = TRUE ORDER BY d.name LIMIT 8`)
}

// GetDestinationsByRegion returns active destinations in a region.
func (r *CatalogRepository) GetDestinationsByRegion(regionID int) ([]*models.Destination, error) {
	return r.queryDestinations(destinationListQuery+
		` WHERE d.region_id = $1 AND d.is_active = TRUE ORDER BY d.name`, regionID)
}

// SearchDestinations matches destination names case-insensitively.
func (r *CatalogRepository) SearchDestinations(query string) ([]*models.Destination, error) {
	return r.queryDestinations(destinationListQuery+
		` WHERE d.name ILIKE $1 AND d.is_active = TRUE ORDER BY d.name LIMIT 20`, "%"+query+"%")
}

func (r *CatalogRepository) queryDestinations(query string, args ...interface{}) ([]*models.Destination, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query destinations: %w", err)
	}
	defer rows.Close()

	var destinations []*models.Destination
	for rows.Next() {
		d := &models.Destination{}
		if err := rows.Scan(&d.ID, &d.RegionID, &d.Name, &d.Slug, &d.CountryCode, &d.FlagEmoji,
			&d.HeroImageURL, &d.Description, &d.CoverageQuality, &d.IsPopular, &d.IsActive,
			&d.CreatedAt, &d.UpdatedAt, &d.RegionSlug, &d.RegionName, &d.MinPrice, &d.PackageCount); err != nil {
			return nil, fmt.Errorf("failed to scan destination: %w", err)
		}
		destinations = append(destinations, d)
	}
	return destinations, rows.Err()
}

// GetDestinationBySlug returns one active destination with its region info.
func (r *CatalogRepository) GetDestinationBySlug(slug string) (*models.Destination, error) {
	d := &models.Destination{}
	err := r.db.QueryRow(`
		SELECT
			d.id, d.region_id, d.name, d.slug,
			COALESCE(d.country_code, ''), COALESCE(d.flag_emoji, ''),
			COALESCE(d.hero_image_url, ''), COALESCE(d.description, ''),
			d.coverage_quality, d.is_popular, d.is_active, d.created_at, d.updated_at,
			COALESCE(r.slug, ''), COALESCE(r.name, '')
		FROM destinations d
		LEFT JOIN regions r ON d.region_id = r.id
		WHERE d.slug = $1 AND d.is_active = TRUE`, slug).
		Scan(&d.ID, &d.RegionID, &d.Name, &d.Slug, &d.CountryCode, &d.FlagEmoji,
			&d.HeroImageURL, &d.Description, &d.CoverageQuality, &d.IsPopular, &d.IsActive,
			&d.CreatedAt, &d.UpdatedAt, &d.RegionSlug, &d.RegionName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrDestinationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get destination: %w", err)
	}
	return d, nil
}

// GetDestinationByID returns one destination regardless of popularity flags.
func (r *CatalogRepository) GetDestinationByID(id int) (*models.Destination, error) {
	d := &models.Destination{}
	err := r.db.QueryRow(`
		SELECT id, region_id, name, slug,
			COALESCE(country_code, ''), COALESCE(flag_emoji, ''),
			COALESCE(hero_image_url, ''), COALESCE(description, ''),
			coverage_quality, is_popular, is_active, created_at, updated_at
		FROM destinations WHERE id = $1`, id).
		Scan(&d.ID, &d.RegionID, &d.Name, &d.Slug, &d.CountryCode, &d.FlagEmoji,
			&d.HeroImageURL, &d.Description, &d.CoverageQuality, &d.IsPopular, &d.IsActive,
			&d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrDestinationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get destination: %w", err)
	}
	return d, nil
}

const packageColumns = `id, destination_id, name, data_amount, COALESCE(data_unit, 'GB'),
	validity_days, price_usd, is_popular, is_active, COALESCE(network_type, '4G'),
	tethering_allowed, created_at, updated_at`

// GetPackageByID returns one active per-destination package.
func (r *CatalogRepository) GetPackageByID(id int) (*models.Package, error) {
	p := &models.Package{}
	err := r.db.QueryRow(
		`SELECT `+packageColumns+` FROM packages WHERE id = $1 AND is_active = TRUE`, id).
		Scan(&p.ID, &p.DestinationID, &p.Name, &p.DataAmount, &p.DataUnit, &p.ValidityDays,
			&p.PriceUSD, &p.IsPopular, &p.IsActive, &p.NetworkType, &p.TetheringAllowed,
			&p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrPackageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get package: %w", err)
	}
	return p, nil
}

// GetPackagesByDestination returns active packages sorted by price.
func (r *CatalogRepository) GetPackagesByDestination(destinationID int) ([]*models.Package, error) {
	rows, err := r.db.Query(
		`SELECT `+packageColumns+` FROM packages
		WHERE destination_id = $1 AND is_active = TRUE ORDER BY price_usd`, destinationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query packages: %w", err)
	}
	defer rows.Close()

	var packages []*models.Package
	for rows.Next() {
		p := &models.Package{}
		if err := rows.Scan(&p.ID, &p.DestinationID, &p.Name, &p.DataAmount, &p.DataUnit,
			&p.ValidityDays, &p.PriceUSD, &p.IsPopular, &p.IsActive, &p.NetworkType,
			&p.TetheringAllowed, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan package: %w", err)
		}
		packages = append(packages, p)
	}
	return packages, rows.Err()
}

const regionalPackageColumns = `id, name, slug, COALESCE(description, ''),
	COALESCE(countries_included, '[]'), data_amount, validity_days, price_usd, is_active, created_at`

// GetAllRegionalPackages returns active regional packages with their country
// lists decoded from the stored JSON.
func (r *CatalogRepository) GetAllRegionalPackages() ([]*models.RegionalPackage, error) {
	rows, err := r.db.Query(
		`SELECT ` + regionalPackageColumns + ` FROM regional_packages WHERE is_active = TRUE`)
	if err != nil {
		return nil, fmt.Errorf("failed to query regional packages: %w", err)
	}
	defer rows.Close()

	var packages []*models.RegionalPackage
	for rows.Next() {
		p, err := scanRegionalPackage(rows)
		if err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}
	return packages, rows.Err()
}

// GetRegionalPackageBySlug returns one active regional package.
func (r *CatalogRepository) GetRegionalPackageBySlug(slug string) (*models.RegionalPackage, error) {
	row := r.db.QueryRow(
		`SELECT `+regionalPackageColumns+` FROM regional_packages
		WHERE slug = $1 AND is_active = TRUE`, slug)
	p, err := scanRegionalPackage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrRegionalPackageNotFound
	}
	return p, err
}

// GetRegionalPackageByID returns one active regional package.
func (r *CatalogRepository) GetRegionalPackageByID(id int) (*models.RegionalPackage, error) {
	row := r.db.QueryRow(
		`SELECT `+regionalPackageColumns+` FROM regional_packages
		WHERE id = $1 AND is_active = TRUE`, id)
	p, err := scanRegionalPackage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrRegionalPackageNotFound
	}
	return p, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRegionalPackage(row rowScanner) (*models.RegionalPackage, error) {
	p := &models.RegionalPackage{}
	var countriesJSON string
	err := row.Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &countriesJSON,
		&p.DataAmount, &p.ValidityDays, &p.PriceUSD, &p.IsActive, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan regional package: %w", err)
	}

	if err := json.Unmarshal([]byte(countriesJSON), &p.CountriesIncluded); err != nil {
		// A malformed country list should not take the whole listing down.
		p.CountriesIncluded = []string{}
	}
	return p, nil
}
