package camp

import "time"

// Location is where a single camp session runs. Sessions of the same camp
// can run at different sites, so location is attached per session.
type Location struct {
	Address  string `json:"address" firestore:"address"`
	City     string `json:"city" firestore:"city"`
	Province string `json:"province" firestore:"province"`
}

// DateRange is the start/end of one camp session.
type DateRange struct {
	StartDate time.Time `json:"startDate" firestore:"startDate"`
	EndDate   time.Time `json:"endDate" firestore:"endDate"`
}

// CampRecord is one row as sourced from Firestore: a single bookable
// session of a camp, carrying the camp's descriptive fields alongside.
type CampRecord struct {
	CampID      string    `json:"campId" firestore:"campId"`
	CreatedBy   string    `json:"createdBy" firestore:"createdBy"`
	Name        string    `json:"name" firestore:"name"`
	Description string    `json:"description" firestore:"description"`
	Category    string    `json:"category" firestore:"category"`
	Tags        []string  `json:"tags" firestore:"tags"`
	Location    Location  `json:"location" firestore:"location"`
	Dates       DateRange `json:"dates" firestore:"dates"`
	AgeRange    string    `json:"ageRange" firestore:"ageRange"`
	Price       float64   `json:"price" firestore:"price"`
	Rating      float64   `json:"rating" firestore:"rating"`
	CampLink    string    `json:"camplink" firestore:"camplink"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
	SavesCount  int       `json:"savesCount" firestore:"savesCount"`
	Image       string    `json:"image,omitempty" firestore:"image"`
}

// Session is one concrete offering of a grouped camp: a specific date
// range, price, and location.
type Session struct {
	CampID   string    `json:"campId"`
	Dates    DateRange `json:"dates"`
	Price    float64   `json:"price"`
	Location Location  `json:"location"`
}

// GroupedCamp is the display-facing fold of all sessions sharing a name.
type GroupedCamp struct {
	CreatedBy   string    `json:"createdBy"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	AgeRange    string    `json:"ageRange"`
	Rating      float64   `json:"rating"`
	CampLink    string    `json:"camplink"`
	CreatedAt   time.Time `json:"createdAt"`
	SavesCount  int       `json:"savesCount"`
	Image       string    `json:"image,omitempty"`
	Sessions    []Session `json:"sessions"`
}

// LatLng is a geographic coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
