package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scope4/google-sheets/internal/domain"
	"github.com/scope4/google-sheets/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	search *usecase.SearchService
}

// NewHandler creates a new HTTP handler
func NewHandler(search *usecase.SearchService) *Handler {
	return &Handler{search: search}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "scope4-sheets-backend",
		"version": "1.0.0",
	})
}

// Search answers one custom-function call from the Sheets add-on. The
// response is always 200 with a one-row table: the sheet renders any raised
// error as #ERROR! across the calling cell, so failures must travel inside
// the payload as a message cell.
func (h *Handler) Search(c *gin.Context) {
	if h.search == nil {
		c.JSON(http.StatusOK, domain.SingleCell("Error: search service not configured."))
		return
	}

	raw := domain.RawParams{
		ItemName:   queryValue(c, "item_name"),
		Year:       queryValue(c, "year"),
		Geography:  queryValue(c, "geography"),
		Metric:     queryValue(c, "metric"),
		Domain:     queryValue(c, "domain"),
		NumMatches: queryValue(c, "num_matches"),
		Mode:       queryValue(c, "mode"),
		NotEnglish: queryValue(c, "not_english"),
		Unit:       queryValue(c, "unit"),
	}

	table := h.search.Search(c.Request.Context(), raw)
	c.JSON(http.StatusOK, table)
}

// queryValue keeps the absent/present distinction: a missing parameter is
// nil for the normalizer, not an empty string.
func queryValue(c *gin.Context, name string) any {
	if value, ok := c.GetQuery(name); ok {
		return value
	}
	return nil
}
