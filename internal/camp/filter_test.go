package camp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []CampRecord {
	coding := record("c1", "Code Crafters Academy", dates("2025-07-01", "2025-07-10"), 450, "Victoria")
	coding.Category = "Technology"
	coding.Tags = []string{"Coding", "STEM"}
	coding.AgeRange = "10-14"

	art := record("c2", "Art Camp", dates("2025-07-15", "2025-07-20"), 150, "Vancouver")
	art.Category = "Arts"
	art.Tags = []string{"Painting"}
	art.AgeRange = "5-8"
	art.Location.Province = "BC"

	hockey := record("c3", "Prairie Hockey School", dates("2025-08-01", "2025-08-14"), 800, "Winnipeg")
	hockey.Category = "Sports"
	hockey.Tags = []string{"Hockey"}
	hockey.AgeRange = "12+"
	hockey.Location.Province = "MB"

	return []CampRecord{coding, art, hockey}
}

func names(records []CampRecord) []string {
	var out []string
	for _, r := range records {
		out = append(out, r.Name)
	}
	return out
}

func TestKeywordPassMatchesNameDescriptionAndTags(t *testing.T) {
	f := &Filterer{}
	criteria := SearchCriteria{Keyword: "coding", Location: AllLocations, LocationType: LocationTypeAll}

	filtered := f.Filter(testRecords(), criteria, DefaultFilterState())
	assert.Equal(t, []string{"Code Crafters Academy"}, names(filtered))
}

func TestKeywordPassSuppressedBySpecificLocationSearch(t *testing.T) {
	f := &Filterer{}
	criteria := SearchCriteria{
		Keyword:      "coding",
		Location:     "Vancouver",
		LocationType: LocationTypeSpecific,
	}

	filtered := f.Filter(testRecords(), criteria, DefaultFilterState())
	// Specific-location search wins; the keyword is ignored entirely.
	assert.Equal(t, []string{"Art Camp"}, names(filtered))
}

func TestKeywordPassSuppressedByCategorySelection(t *testing.T) {
	f := &Filterer{}
	criteria := SearchCriteria{
		Keyword:            "coding",
		Location:           AllLocations,
		LocationType:       LocationTypeAll,
		SelectedCategories: []string{"Arts"},
	}

	filtered := f.Filter(testRecords(), criteria, DefaultFilterState())
	assert.Equal(t, []string{"Art Camp"}, names(filtered))
}

func TestKeywordPassIgnoresNearbySentinel(t *testing.T) {
	f := &Filterer{}
	criteria := SearchCriteria{Keyword: "Nearby", Location: AllLocations, LocationType: LocationTypeAll}

	filtered := f.Filter(testRecords(), criteria, DefaultFilterState())
	assert.Len(t, filtered, 3)
}

func TestProvincePassExactMatch(t *testing.T) {
	f := &Filterer{}
	criteria := SearchCriteria{Location: "MB", LocationType: LocationTypeAll}

	filtered := f.Filter(testRecords(), criteria, DefaultFilterState())
	assert.Equal(t, []string{"Prairie Hockey School"}, names(filtered))
}

func TestSpecificCityPassVictoriaAlias(t *testing.T) {
	f := &Filterer{}
	criteria := SearchCriteria{Location: "Victoria, BC", LocationType: LocationTypeSpecific}

	filtered := f.Filter(testRecords(), criteria, DefaultFilterState())
	assert.Equal(t, []string{"Code Crafters Academy"}, names(filtered))
}

func TestSpecificCityPassStripsProvinceSuffix(t *testing.T) {
	f := &Filterer{}
	criteria := SearchCriteria{Location: "Vancouver, BC", LocationType: LocationTypeSpecific}

	filtered := f.Filter(testRecords(), criteria, DefaultFilterState())
	assert.Equal(t, []string{"Art Camp"}, names(filtered))
}

func TestNearbyPassUsesHaversineRadius(t *testing.T) {
	coords := map[string]*LatLng{
		"c1": {Lat: 48.4284, Lng: -123.3656}, // Victoria
		"c2": {Lat: 49.2827, Lng: -123.1207}, // Vancouver, ~95km away
		"c3": nil,                            // geocode failed
	}
	f := &Filterer{
		NearbyRadiusKm: 50,
		ResolveCoords:  func(r CampRecord) *LatLng { return coords[r.CampID] },
	}
	criteria := SearchCriteria{
		LocationType:   LocationTypeNearby,
		Location:       AllLocations,
		LocationCoords: &LatLng{Lat: 48.4, Lng: -123.4},
	}

	filtered := f.Filter(testRecords(), criteria, DefaultFilterState())
	assert.Equal(t, []string{"Code Crafters Academy"}, names(filtered))
}

func TestNearbyPassWithoutResolverKeepsNothing(t *testing.T) {
	f := &Filterer{}
	criteria := SearchCriteria{
		LocationType:   LocationTypeNearby,
		Location:       AllLocations,
		LocationCoords: &LatLng{Lat: 48.4, Lng: -123.4},
	}

	assert.Empty(t, f.Filter(testRecords(), criteria, DefaultFilterState()))
}

func TestDateOverlapPass(t *testing.T) {
	f := &Filterer{}
	base := SearchCriteria{Location: AllLocations, LocationType: LocationTypeAll}

	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)
		return d
	}

	cases := []struct {
		name string
		from string
		to   string
		want []string
	}{
		{"partial overlap", "2025-07-09", "2025-07-20", []string{"Code Crafters Academy", "Art Camp"}},
		{"touching end", "2025-06-01", "2025-07-01", []string{"Code Crafters Academy"}},
		{"after session", "2025-07-11", "2025-07-14", nil},
		{"single day collapses to from", "2025-07-16", "", []string{"Art Camp"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			criteria := base
			criteria.DateRange = &QueryDateRange{From: day(tc.from)}
			if tc.to != "" {
				to := day(tc.to)
				criteria.DateRange.To = &to
			}
			filtered := f.Filter(testRecords(), criteria, DefaultFilterState())
			assert.Equal(t, tc.want, names(filtered))
		})
	}
}

func TestCategoryPassUnionsCriteriaAndFilters(t *testing.T) {
	f := &Filterer{}
	criteria := SearchCriteria{
		Location:           AllLocations,
		LocationType:       LocationTypeAll,
		SelectedCategories: []string{"Arts"},
	}
	filters := DefaultFilterState()
	filters.Categories = []string{"Sports", "Arts"}

	filtered := f.Filter(testRecords(), criteria, filters)
	assert.Equal(t, []string{"Art Camp", "Prairie Hockey School"}, names(filtered))
}

func TestPricePassInclusiveBoundaries(t *testing.T) {
	f := &Filterer{}
	criteria := SearchCriteria{Location: AllLocations, LocationType: LocationTypeAll}

	filters := DefaultFilterState()
	filters.PriceRange = [2]float64{150, 450}
	filtered := f.Filter(testRecords(), criteria, filters)
	assert.Equal(t, []string{"Code Crafters Academy", "Art Camp"}, names(filtered))

	filters.PriceRange = [2]float64{151, 449}
	assert.Empty(t, f.Filter(testRecords(), criteria, filters))
}

func TestPricePassExcludesExpensiveCamp(t *testing.T) {
	f := &Filterer{}
	criteria := SearchCriteria{Location: AllLocations, LocationType: LocationTypeAll}
	filters := DefaultFilterState()
	filters.PriceRange = [2]float64{0, 200}

	filtered := f.Filter(testRecords(), criteria, filters)
	assert.Equal(t, []string{"Art Camp"}, names(filtered))
}

func TestAgeGroupPassOverlap(t *testing.T) {
	f := &Filterer{}
	criteria := SearchCriteria{Location: AllLocations, LocationType: LocationTypeAll}
	filters := DefaultFilterState()
	filters.AgeGroups = []string{"14-17 years"}

	// "10-14" touches 14-17; "12+" overlaps; "5-8" does not.
	filtered := f.Filter(testRecords(), criteria, filters)
	assert.Equal(t, []string{"Code Crafters Academy", "Prairie Hockey School"}, names(filtered))
}

func TestAgeGroupPassExcludesUnparseableAgeRange(t *testing.T) {
	records := testRecords()
	records[0].AgeRange = "all welcome"

	f := &Filterer{}
	criteria := SearchCriteria{Location: AllLocations, LocationType: LocationTypeAll}
	filters := DefaultFilterState()
	filters.AgeGroups = []string{"10-13 years"}

	filtered := f.Filter(records, criteria, filters)
	assert.Equal(t, []string{"Prairie Hockey School"}, names(filtered))
}

func TestTagPassRequiresAtLeastOneSharedTag(t *testing.T) {
	f := &Filterer{}
	criteria := SearchCriteria{Location: AllLocations, LocationType: LocationTypeAll}
	filters := DefaultFilterState()
	filters.Tags = []string{"Hockey", "Painting"}

	filtered := f.Filter(testRecords(), criteria, filters)
	assert.Equal(t, []string{"Art Camp", "Prairie Hockey School"}, names(filtered))
}

func TestNoMatchesYieldsEmptyGroupedResult(t *testing.T) {
	f := &Filterer{}
	criteria := SearchCriteria{Keyword: "underwater basket weaving", Location: AllLocations, LocationType: LocationTypeAll}

	filtered := f.Filter(testRecords(), criteria, DefaultFilterState())
	assert.Empty(t, filtered)
	assert.Empty(t, GroupCamps(filtered))
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	records := testRecords()
	f := &Filterer{}
	criteria := SearchCriteria{Keyword: "coding", Location: AllLocations, LocationType: LocationTypeAll}

	_ = f.Filter(records, criteria, DefaultFilterState())
	assert.Len(t, records, 3)
	assert.Equal(t, "Code Crafters Academy", records[0].Name)
}
