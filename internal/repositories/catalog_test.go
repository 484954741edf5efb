package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esim4travel/internal/models"
)

func TestCatalogRepository_New(t *testing.T) {
	repo := NewCatalogRepository(nil)
	assert.NotNil(t, repo)
}

func TestCatalogRepository_RegionLookups(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCatalogRepository(db)

	regionID, _, _ := seedDestination(t, db)

	regions, err := repo.GetAllRegions()
	require.NoError(t, err)
	assert.NotEmpty(t, regions)

	var seeded *models.Region
	for _, r := range regions {
		if r.ID == regionID {
			seeded = r
		}
	}
	require.NotNil(t, seeded, "seeded region missing from listing")

	bySlug, err := repo.GetRegionBySlug(seeded.Slug)
	require.NoError(t, err)
	assert.Equal(t, regionID, bySlug.ID)

	_, err = repo.GetRegionBySlug("no-such-region")
	assert.ErrorIs(t, err, models.ErrRegionNotFound)
}

func TestCatalogRepository_DestinationLookups(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCatalogRepository(db)

	regionID, destinationID, _ := seedDestination(t, db)

	destinations, err := repo.GetDestinationsByRegion(regionID)
	require.NoError(t, err)
	require.Len(t, destinations, 1)

	d := destinations[0]
	assert.Equal(t, destinationID, d.ID)
	assert.Equal(t, 1, d.PackageCount)
	require.NotNil(t, d.MinPrice)
	assert.Equal(t, 14.97, *d.MinPrice)

	byID, err := repo.GetDestinationByID(destinationID)
	require.NoError(t, err)

	bySlug, err := repo.GetDestinationBySlug(byID.Slug)
	require.NoError(t, err)
	assert.Equal(t, destinationID, bySlug.ID)
	assert.NotEmpty(t, bySlug.RegionSlug)

	_, err = repo.GetDestinationBySlug("no-such-destination")
	assert.ErrorIs(t, err, models.ErrDestinationNotFound)
}

func TestCatalogRepository_SearchDestinations(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCatalogRepository(db)

	_, destinationID, _ := seedDestination(t, db)
	seeded, err := repo.GetDestinationByID(destinationID)
	require.NoError(t, err)

	// ILIKE matching is case-insensitive.
	results, err := repo.SearchDestinations("TESTLAND")
	require.NoError(t, err)

	found := false
	for _, d := range results {
		if d.Name == seeded.Name {
			found = true
		}
	}
	assert.True(t, found, "seeded destination not returned by search")
}

func TestCatalogRepository_PackageLookups(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCatalogRepository(db)

	_, destinationID, packageID := seedDestination(t, db)

	pkg, err := repo.GetPackageByID(packageID)
	require.NoError(t, err)
	assert.Equal(t, "5GB / 30 days", pkg.Name)
	assert.Equal(t, 14.97, pkg.PriceUSD)

	packages, err := repo.GetPackagesByDestination(destinationID)
	require.NoError(t, err)
	require.Len(t, packages, 1)
	assert.Equal(t, packageID, packages[0].ID)

	_, err = repo.GetPackageByID(-1)
	assert.ErrorIs(t, err, models.ErrPackageNotFound)
}

func TestCatalogRepository_RegionalPackages(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCatalogRepository(db)

	slug := "test-regional-" + uniqueSuffix()
	var id int
	err := db.QueryRow(`
		INSERT INTO regional_packages (name, slug, description, countries_included, data_amount, validity_days, price_usd)
		VALUES ('Test Regional', $1, 'covers test countries', '["Testland","Otherland"]', '5GB', 30, 19.99)
		RETURNING id`, slug).Scan(&id)
	require.NoError(t, err)

	pkg, err := repo.GetRegionalPackageBySlug(slug)
	require.NoError(t, err)
	assert.Equal(t, id, pkg.ID)
	assert.Equal(t, []string{"Testland", "Otherland"}, pkg.CountriesIncluded)

	byID, err := repo.GetRegionalPackageByID(id)
	require.NoError(t, err)
	assert.Equal(t, slug, byID.Slug)

	_, err = repo.GetRegionalPackageBySlug("no-such-regional")
	assert.ErrorIs(t, err, models.ErrRegionalPackageNotFound)
}

func TestCatalogRepository_RegionalPackages_MalformedCountries(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCatalogRepository(db)

	slug := "broken-regional-" + uniqueSuffix()
	var id int
	err := db.QueryRow(`
		INSERT INTO regional_packages (name, slug, description, countries_included, data_amount, validity_days, price_usd)
		VALUES ('Broken Regional', $1, '', 'not json', '5GB', 30, 19.99)
		RETURNING id`, slug).Scan(&id)
	require.NoError(t, err)

	// A malformed country list degrades to empty, not an error.
	pkg, err := repo.GetRegionalPackageByID(id)
	require.NoError(t, err)
	assert.Empty(t, pkg.CountriesIncluded)
}
