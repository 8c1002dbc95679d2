package camp

import "fmt"

// ResultsTitle builds the results-header text for a search: category count
// or keyword, qualified by locality mode, with an optional date suffix.
func ResultsTitle(criteria SearchCriteria) string {
	var title string

	if len(criteria.SelectedCategories) > 0 {
		categoryText := criteria.SelectedCategories[0]
		if len(criteria.SelectedCategories) > 1 {
			categoryText = fmt.Sprintf("%d categories", len(criteria.SelectedCategories))
		}

		switch criteria.LocationType {
		case LocationTypeNearby:
			title = fmt.Sprintf("%s camps near your location", categoryText)
		case LocationTypeSpecific:
			title = fmt.Sprintf("%s camps in %s", categoryText, criteria.Location)
		default:
			title = fmt.Sprintf("%s camps", categoryText)
		}
	} else {
		switch criteria.LocationType {
		case LocationTypeNearby:
			if criteria.Keyword != "" && criteria.Keyword != "Nearby" {
				title = fmt.Sprintf("%q camps near you", criteria.Keyword)
			} else {
				title = "Camps near your location"
			}
		case LocationTypeSpecific:
			if criteria.Keyword != "" && criteria.Keyword != criteria.Location {
				title = fmt.Sprintf("%q camps in %s", criteria.Keyword, criteria.Location)
			} else {
				title = fmt.Sprintf("Camps in %s", criteria.Location)
			}
		default:
			if criteria.Keyword != "" {
				title = fmt.Sprintf("Results for %q", criteria.Keyword)
			} else {
				title = "All Camps"
			}
		}
	}

	if criteria.DateRange != nil {
		if criteria.DateRange.To != nil {
			fromStr := criteria.DateRange.From.Format("Jan 2")
			toStr := criteria.DateRange.To.Format("Jan 2, 2006")
			title += fmt.Sprintf(" from %s to %s", fromStr, toStr)
		} else {
			title += fmt.Sprintf(" for %s", criteria.DateRange.From.Format("January 2, 2006"))
		}
	}

	return title
}
