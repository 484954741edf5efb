package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"esim4travel/internal/models"
	"esim4travel/internal/services"
)

// CatalogHandler serves the read-only catalog: regions, destinations and
// packages.
type CatalogHandler struct {
	catalog services.CatalogRepository
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog services.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListRegions handles GET /api/regions
func (h *CatalogHandler) ListRegions(w http.ResponseWriter, r *http.Request) {
	regions, err := h.catalog.GetAllRegions()
	if err != nil {
		serveError(w, err, "Failed to fetch regions")
		return
	}
	if regions == nil {
		regions = []*models.Region{}
	}
	respondJSON(w, http.StatusOK, regions)
}

// RegionDestinations handles GET /api/regions/{slug}/destinations
func (h *CatalogHandler) RegionDestinations(w http.ResponseWriter, r *http.Request) {
	region, err := h.catalog.GetRegionBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		serveError(w, err, "Failed to fetch destinations")
		return
	}

	destinations, err := h.catalog.GetDestinationsByRegion(region.ID)
	if err != nil {
		serveError(w, err, "Failed to fetch destinations")
		return
	}
	if destinations == nil {
		destinations = []*models.Destination{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"region":       region,
		"destinations": destinations,
		"count":        len(destinations),
	})
}

// ListDestinations handles GET /api/destinations with an optional ?region=
// slug filter.
func (h *CatalogHandler) ListDestinations(w http.ResponseWriter, r *http.Request) {
	var destinations []*models.Destination

	if regionSlug := r.URL.Query().Get("region"); regionSlug != "" {
		region, err := h.catalog.GetRegionBySlug(regionSlug)
		if err != nil {
			serveError(w, err, "Failed to fetch destinations")
			return
		}
		destinations, err = h.catalog.GetDestinationsByRegion(region.ID)
		if err != nil {
			serveError(w, err, "Failed to fetch destinations")
			return
		}
	} else {
		var err error
		destinations, err = h.catalog.GetAllDestinations()
		if err != nil {
			serveError(w, err, "Failed to fetch destinations")
			return
		}
	}

	if destinations == nil {
		destinations = []*models.Destination{}
	}
	respondJSON(w, http.StatusOK, destinations)
}

// PopularDestinations handles GET /api/destinations/popular
func (h *CatalogHandler) PopularDestinations(w http.ResponseWriter, r *http.Request) {
	destinations, err := h.catalog.GetPopularDestinations()
	if err != nil {
		serveError(w, err, "Failed to fetch popular destinations")
		return
	}
	if destinations == nil {
		destinations = []*models.Destination{}
	}
	respondJSON(w, http.StatusOK, destinations)
}

// SearchDestinations handles GET /api/destinations/search?q=
func (h *CatalogHandler) SearchDestinations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		respondJSON(w, http.StatusOK, []*models.Destination{})
		return
	}

	destinations, err := h.catalog.SearchDestinations(query)
	if err != nil {
		serveError(w, err, "Search failed")
		return
	}
	if destinations == nil {
		destinations = []*models.Destination{}
	}
	respondJSON(w, http.StatusOK, destinations)
}

// GetDestination handles GET /api/destinations/{slug}
func (h *CatalogHandler) GetDestination(w http.ResponseWriter, r *http.Request) {
	destination, err := h.catalog.GetDestinationBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		serveError(w, err, "Failed to fetch destination")
		return
	}
	respondJSON(w, http.StatusOK, destination)
}

// DestinationPackages handles GET /api/destinations/{slug}/packages
func (h *CatalogHandler) DestinationPackages(w http.ResponseWriter, r *http.Request) {
	destination, err := h.catalog.GetDestinationBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		serveError(w, err, "Failed to fetch packages")
		return
	}

	packages, err := h.catalog.GetPackagesByDestination(destination.ID)
	if err != nil {
		serveError(w, err, "Failed to fetch packages")
		return
	}
	if packages == nil {
		packages = []*models.Package{}
	}
	respondJSON(w, http.StatusOK, packages)
}

// GetPackage handles GET /api/packages/{id}, embedding the destination.
func (h *CatalogHandler) GetPackage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid package ID")
		return
	}

	pkg, err := h.catalog.GetPackageByID(id)
	if err != nil {
		serveError(w, err, "Failed to fetch package")
		return
	}

	destination, err := h.catalog.GetDestinationByID(pkg.DestinationID)
	if err != nil {
		serveError(w, err, "Failed to fetch package")
		return
	}

	respondJSON(w, http.StatusOK, models.PackageWithDestination{
		Package:     *pkg,
		Destination: destination,
	})
}

// ListRegionalPackages handles GET /api/regional-packages
func (h *CatalogHandler) ListRegionalPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.catalog.GetAllRegionalPackages()
	if err != nil {
		serveError(w, err, "Failed to fetch regional packages")
		return
	}
	if packages == nil {
		packages = []*models.RegionalPackage{}
	}
	respondJSON(w, http.StatusOK, packages)
}

// GetRegionalPackage handles GET /api/regional-packages/{slug}
func (h *CatalogHandler) GetRegionalPackage(w http.ResponseWriter, r *http.Request) {
	pkg, err := h.catalog.GetRegionalPackageBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		serveError(w, err, "Failed to fetch regional package")
		return
	}
	respondJSON(w, http.StatusOK, pkg)
}
