package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"io.mapleapps.campquest/internal/camp"
	searchmodels "io.mapleapps.campquest/internal/models/search_camps"
)

// SearchCamps filters and groups the camp collection. Search criteria ride
// in the URL query string (keyword, location, dateFrom, dateTo, lat, lng,
// locationType, categories); the sidebar filter state may come as an
// optional JSON body.
func (h *CampsHandler) SearchCamps(c *gin.Context) {
	criteria := camp.ParseSearchCriteria(c.Request.URL.Query())

	filters := camp.DefaultFilterState()
	var req searchmodels.SearchCampsRequest
	if err := c.ShouldBindJSON(&req); err == nil {
		if len(req.Categories) > 0 {
			filters.Categories = req.Categories
		}
		if req.PriceRange != nil {
			filters.PriceRange = *req.PriceRange
		}
		if len(req.AgeGroups) > 0 {
			filters.AgeGroups = req.AgeGroups
		}
		if len(req.Tags) > 0 {
			filters.Tags = req.Tags
		}
	}
	// A body-less GET still searches with the default filter state.

	records := h.store.Records()
	filtered := h.filterer.Filter(records, criteria, filters)
	grouped := camp.GroupCamps(filtered)

	response := searchmodels.SearchCampsResponse{
		Camps:        grouped,
		Title:        camp.ResultsTitle(criteria),
		TotalCamps:   len(grouped),
		TotalMatches: len(filtered),
	}

	c.JSON(http.StatusOK, response)
}
