package models

// SearchCampsRequest is the optional JSON body carrying the sidebar filter
// state. Search criteria themselves ride in the URL query string.
type SearchCampsRequest struct {
	Categories []string    `json:"categories"`
	PriceRange *[2]float64 `json:"priceRange,omitempty"`
	AgeGroups  []string    `json:"ageGroups"`
	Tags       []string    `json:"tags"`
}
