package camp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dates(start, end string) DateRange {
	s, _ := time.Parse("2006-01-02", start)
	e, _ := time.Parse("2006-01-02", end)
	return DateRange{StartDate: s, EndDate: e}
}

func record(id, name string, dr DateRange, price float64, city string) CampRecord {
	return CampRecord{
		CampID:      id,
		Name:        name,
		Description: name + " description",
		Category:    "Adventure",
		Tags:        []string{"Outdoor"},
		AgeRange:    "8-12",
		Price:       price,
		Dates:       dr,
		Location:    Location{Address: "123 Main St", City: city, Province: "BC"},
	}
}

func TestGroupCampsEmptyInput(t *testing.T) {
	assert.Empty(t, GroupCamps(nil))
	assert.Empty(t, GroupCamps([]CampRecord{}))
}

func TestGroupCampsFoldsSessionsByName(t *testing.T) {
	records := []CampRecord{
		record("c1", "Wilderness Explorers", dates("2025-07-01", "2025-07-07"), 450, "Victoria"),
		record("c2", "Wilderness Explorers", dates("2025-08-01", "2025-08-07"), 500, "Nanaimo"),
	}

	grouped := GroupCamps(records)
	require.Len(t, grouped, 1)
	assert.Equal(t, "Wilderness Explorers", grouped[0].Name)
	require.Len(t, grouped[0].Sessions, 2)
	assert.Equal(t, "c1", grouped[0].Sessions[0].CampID)
	assert.Equal(t, "c2", grouped[0].Sessions[1].CampID)
	assert.Equal(t, "Victoria", grouped[0].Sessions[0].Location.City)
	assert.Equal(t, "Nanaimo", grouped[0].Sessions[1].Location.City)
}

func TestGroupCampsFirstSeenWinsForDescriptiveFields(t *testing.T) {
	first := record("c1", "Camp Maple", dates("2025-07-01", "2025-07-07"), 300, "Victoria")
	second := record("c2", "Camp Maple", dates("2025-08-01", "2025-08-07"), 350, "Victoria")
	second.Description = "rewritten description"
	second.Category = "Sports"
	second.Image = "https://example.com/late.png"

	grouped := GroupCamps([]CampRecord{first, second})
	require.Len(t, grouped, 1)
	assert.Equal(t, first.Description, grouped[0].Description)
	assert.Equal(t, "Adventure", grouped[0].Category)
	assert.Empty(t, grouped[0].Image)
	assert.Len(t, grouped[0].Sessions, 2)
}

func TestGroupCampsSkipsRecordsWithoutDates(t *testing.T) {
	valid := record("c1", "Camp Maple", dates("2025-07-01", "2025-07-07"), 300, "Victoria")
	missingEnd := record("c2", "Camp Birch", DateRange{StartDate: valid.Dates.StartDate}, 300, "Victoria")
	missingBoth := record("c3", "Camp Cedar", DateRange{}, 300, "Victoria")

	grouped := GroupCamps([]CampRecord{missingBoth, valid, missingEnd})
	require.Len(t, grouped, 1)
	assert.Equal(t, "Camp Maple", grouped[0].Name)
}

func TestGroupCampsSuppressesDuplicateSessions(t *testing.T) {
	r := record("c1", "Camp Maple", dates("2025-07-01", "2025-07-07"), 300, "Victoria")
	dupe := r
	dupe.CampID = "c2"
	dupe.Location.City = "Nanaimo" // location is not part of the dedup key

	grouped := GroupCamps([]CampRecord{r, dupe})
	require.Len(t, grouped, 1)
	assert.Len(t, grouped[0].Sessions, 1)
}

func TestGroupCampsPreservesEncounterOrder(t *testing.T) {
	records := []CampRecord{
		record("c1", "Zed Camp", dates("2025-07-01", "2025-07-07"), 300, "Victoria"),
		record("c2", "Alpha Camp", dates("2025-07-01", "2025-07-07"), 300, "Victoria"),
		record("c3", "Zed Camp", dates("2025-08-01", "2025-08-07"), 350, "Victoria"),
	}

	grouped := GroupCamps(records)
	require.Len(t, grouped, 2)
	assert.Equal(t, "Zed Camp", grouped[0].Name)
	assert.Equal(t, "Alpha Camp", grouped[1].Name)
}

func TestGroupCampsUniqueNamesPermutationInvariant(t *testing.T) {
	a := record("c1", "Camp A", dates("2025-07-01", "2025-07-07"), 300, "Victoria")
	b := record("c2", "Camp B", dates("2025-07-08", "2025-07-14"), 350, "Victoria")
	c := record("c3", "Camp C", dates("2025-07-15", "2025-07-21"), 400, "Victoria")

	forward := GroupCamps([]CampRecord{a, b, c})
	reversed := GroupCamps([]CampRecord{c, b, a})

	require.Len(t, forward, 3)
	require.Len(t, reversed, 3)
	for _, g := range forward {
		assert.Len(t, g.Sessions, 1)
	}

	names := func(groups []GroupedCamp) map[string]int {
		counts := make(map[string]int)
		for _, g := range groups {
			counts[g.Name] = len(g.Sessions)
		}
		return counts
	}
	assert.Equal(t, names(forward), names(reversed))
}
