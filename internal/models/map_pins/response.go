package models

import "io.mapleapps.campquest/internal/camp"

// MapPin is one marker on the results map: a grouped camp pinned at its
// first session's geocoded address. Camps whose geocode failed are absent.
type MapPin struct {
	Camp        camp.GroupedCamp `json:"camp"`
	Coordinates camp.LatLng      `json:"coordinates"`
}

type MapPinsResponse struct {
	Pins    []MapPin `json:"pins"`
	Skipped int      `json:"skipped"`
}
