package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zonelens/backend/internal/domain"
	"github.com/zonelens/backend/internal/usecase"
)

// Handler holds dependencies for the widget-facing HTTP API
type Handler struct {
	resolver    *usecase.ZoneResolver
	matcher     *usecase.PlantMatcher
	suggestions domain.SuggestionSource
	cache       domain.CacheRepository
	cacheTTL    time.Duration
}

// NewHandler creates a new HTTP handler
func NewHandler(
	resolver *usecase.ZoneResolver,
	matcher *usecase.PlantMatcher,
	suggestions domain.SuggestionSource,
	cache domain.CacheRepository,
	cacheTTL time.Duration,
) *Handler {
	return &Handler{
		resolver:    resolver,
		matcher:     matcher,
		suggestions: suggestions,
		cache:       cache,
		cacheTTL:    cacheTTL,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "zonelens-backend",
	})
}

// GetZone resolves a 5-digit ZIP code to its hardiness zone.
// An uncovered prefix is a 404, not a server error.
func (h *Handler) GetZone(c *gin.Context) {
	zip := c.Param("zip")
	if !usecase.IsValidZIP(zip) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "zip must be a 5-digit numeric string",
		})
		return
	}

	info := h.resolver.Resolve(zip)
	if info == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "no hardiness zone mapped for this ZIP",
			"zip":   zip,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"zip":  zip,
		"zone": info.Code,
		"minF": info.MinF,
		"maxF": info.MaxF,
	})
}

// matchRequest is the body for plant match lookups
type matchRequest struct {
	Title string `json:"title" binding:"required"`
}

// MatchPlant resolves a product title to hardiness zones
func (h *Handler) MatchPlant(c *gin.Context) {
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	result := h.matcher.Match(req.Title)
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "no plant match for title",
			"title": req.Title,
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Suggest proxies the storefront predictive-search endpoint, caching
// responses keyed by the normalized query.
func (h *Handler) Suggest(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	cacheKey := "suggest:" + strings.ToLower(query)
	if cached, err := h.cache.Get(c.Request.Context(), cacheKey); err == nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	result, err := h.suggestions.Suggest(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "suggestion lookup failed"})
		return
	}

	// A cache write failure is not fatal to the request
	_ = h.cache.Set(c.Request.Context(), cacheKey, result, h.cacheTTL)

	c.JSON(http.StatusOK, result)
}
