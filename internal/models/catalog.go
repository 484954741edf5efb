package models

import "time"

// Region groups destinations for browsing
type Region struct {
	ID           int       `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Slug         string    `json:"slug" db:"slug"`
	Description  string    `json:"description" db:"description"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Destination is a country the store sells data packages for
type Destination struct {
	ID              int       `json:"id" db:"id"`
	RegionID        int       `json:"region_id" db:"region_id"`
	Name            string    `json:"name" db:"name"`
	Slug            string    `json:"slug" db:"slug"`
	CountryCode     string    `json:"country_code" db:"country_code"`
	FlagEmoji       string    `json:"flag_emoji" db:"flag_emoji"`
	HeroImageURL    string    `json:"hero_image_url" db:"hero_image_url"`
	Description     string    `json:"description" db:"description"`
	CoverageQuality int       `json:"coverage_quality" db:"coverage_quality"`
	IsPopular       bool      `json:"is_popular" db:"is_popular"`
	IsActive        bool      `json:"is_active" db:"is_active"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`

	// Joined fields for list views
	RegionSlug   string   `json:"region_slug,omitempty" db:"region_slug"`
	RegionName   string   `json:"region_name,omitempty" db:"region_name"`
	MinPrice     *float64 `json:"min_price,omitempty" db:"min_price"`
	PackageCount int      `json:"package_count,omitempty" db:"package_count"`
}

// Package is a data plan for a single destination
type Package struct {
	ID               int       `json:"id" db:"id"`
	DestinationID    int       `json:"destination_id" db:"destination_id"`
	Name             string    `json:"name" db:"name"`
	DataAmount       string    `json:"data_amount" db:"data_amount"`
	DataUnit         string    `json:"data_unit" db:"data_unit"`
	ValidityDays     int       `json:"validity_days" db:"validity_days"`
	PriceUSD         float64   `json:"price_usd" db:"price_usd"`
	IsPopular        bool      `json:"is_popular" db:"is_popular"`
	IsActive         bool      `json:"is_active" db:"is_active"`
	NetworkType      string    `json:"network_type" db:"network_type"`
	TetheringAllowed bool      `json:"tethering_allowed" db:"tethering_allowed"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// PackageWithDestination embeds the owning destination for detail views
type PackageWithDestination struct {
	Package
	Destination *Destination `json:"destination"`
}

// RegionalPackage is a multi-country data plan
type RegionalPackage struct {
	ID                int       `json:"id" db:"id"`
	Name              string    `json:"name" db:"name"`
	Slug              string    `json:"slug" db:"slug"`
	Description       string    `json:"description" db:"description"`
	CountriesIncluded []string  `json:"countries_included" db:"countries_included"`
	DataAmount        string    `json:"data_amount" db:"data_amount"`
	ValidityDays      int       `json:"validity_days" db:"validity_days"`
	PriceUSD          float64   `json:"price_usd" db:"price_usd"`
	IsActive          bool      `json:"is_active" db:"is_active"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}
