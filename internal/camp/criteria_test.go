package camp

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSearchCriteriaDefaults(t *testing.T) {
	criteria := ParseSearchCriteria(url.Values{})

	assert.Empty(t, criteria.Keyword)
	assert.Equal(t, AllLocations, criteria.Location)
	assert.Equal(t, LocationTypeAll, criteria.LocationType)
	assert.Nil(t, criteria.LocationCoords)
	assert.Nil(t, criteria.DateRange)
	assert.Nil(t, criteria.SelectedCategories)
}

func TestParseSearchCriteriaFullQuery(t *testing.T) {
	query := url.Values{}
	query.Set("keyword", "kayaking")
	query.Set("location", "Victoria, BC")
	query.Set("locationType", "specific")
	query.Set("lat", "48.4284")
	query.Set("lng", "-123.3656")
	query.Set("dateFrom", "2025-07-01")
	query.Set("dateTo", "2025-07-15")
	query.Set("categories", "Adventure, Sports,")

	criteria := ParseSearchCriteria(query)

	assert.Equal(t, "kayaking", criteria.Keyword)
	assert.Equal(t, "Victoria, BC", criteria.Location)
	assert.Equal(t, LocationTypeSpecific, criteria.LocationType)
	require.NotNil(t, criteria.LocationCoords)
	assert.InDelta(t, 48.4284, criteria.LocationCoords.Lat, 1e-9)
	assert.InDelta(t, -123.3656, criteria.LocationCoords.Lng, 1e-9)
	require.NotNil(t, criteria.DateRange)
	assert.Equal(t, time.July, criteria.DateRange.From.Month())
	require.NotNil(t, criteria.DateRange.To)
	assert.Equal(t, 15, criteria.DateRange.To.Day())
	assert.Equal(t, []string{"Adventure", "Sports"}, criteria.SelectedCategories)
}

func TestParseSearchCriteriaIgnoresMalformedValues(t *testing.T) {
	query := url.Values{}
	query.Set("lat", "not-a-number")
	query.Set("lng", "-123.3656")
	query.Set("dateFrom", "someday")
	query.Set("dateTo", "2025-07-15")
	query.Set("locationType", "teleport")

	criteria := ParseSearchCriteria(query)

	assert.Nil(t, criteria.LocationCoords)
	assert.Nil(t, criteria.DateRange)
	assert.Equal(t, LocationTypeAll, criteria.LocationType)
}

func TestParseSearchCriteriaDateToRequiresValidFrom(t *testing.T) {
	query := url.Values{}
	query.Set("dateFrom", "2025-07-01T00:00:00Z")
	query.Set("dateTo", "nope")

	criteria := ParseSearchCriteria(query)

	require.NotNil(t, criteria.DateRange)
	assert.Nil(t, criteria.DateRange.To)
}
