package camp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResultsTitle(t *testing.T) {
	from, _ := time.Parse("2006-01-02", "2025-07-09")
	to, _ := time.Parse("2006-01-02", "2025-07-20")

	cases := []struct {
		name     string
		criteria SearchCriteria
		want     string
	}{
		{
			"default",
			SearchCriteria{Location: AllLocations, LocationType: LocationTypeAll},
			"All Camps",
		},
		{
			"keyword",
			SearchCriteria{Keyword: "coding", Location: AllLocations, LocationType: LocationTypeAll},
			`Results for "coding"`,
		},
		{
			"one category",
			SearchCriteria{SelectedCategories: []string{"Arts"}, Location: AllLocations, LocationType: LocationTypeAll},
			"Arts camps",
		},
		{
			"several categories nearby",
			SearchCriteria{SelectedCategories: []string{"Arts", "Sports"}, LocationType: LocationTypeNearby},
			"2 categories camps near your location",
		},
		{
			"category in city",
			SearchCriteria{SelectedCategories: []string{"Sports"}, Location: "Victoria, BC", LocationType: LocationTypeSpecific},
			"Sports camps in Victoria, BC",
		},
		{
			"nearby without keyword",
			SearchCriteria{Keyword: "Nearby", LocationType: LocationTypeNearby},
			"Camps near your location",
		},
		{
			"keyword in city",
			SearchCriteria{Keyword: "robotics", Location: "Vancouver", LocationType: LocationTypeSpecific},
			`"robotics" camps in Vancouver`,
		},
		{
			"city only",
			SearchCriteria{Keyword: "Vancouver", Location: "Vancouver", LocationType: LocationTypeSpecific},
			"Camps in Vancouver",
		},
		{
			"single date",
			SearchCriteria{Location: AllLocations, LocationType: LocationTypeAll, DateRange: &QueryDateRange{From: from}},
			"All Camps for July 9, 2025",
		},
		{
			"date range",
			SearchCriteria{Keyword: "coding", Location: AllLocations, LocationType: LocationTypeAll, DateRange: &QueryDateRange{From: from, To: &to}},
			`Results for "coding" from Jul 9 to Jul 20, 2025`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResultsTitle(tc.criteria))
		})
	}
}
