package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// maxTagSuggestions caps the tag filter list shown in the sidebar.
const maxTagSuggestions = 10

// GetUniqueTags returns the distinct tags across the collection, in
// encounter order, capped for display.
func (h *CampsHandler) GetUniqueTags(c *gin.Context) {
	seen := make(map[string]struct{})
	tags := []string{}

	for _, record := range h.store.Records() {
		for _, tag := range record.Tags {
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
			if len(tags) == maxTagSuggestions {
				c.JSON(http.StatusOK, gin.H{"tags": tags})
				return
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"tags": tags})
}
