package models

// MapPinsRequest names the camps to place on the map. Empty means every
// camp currently in the store.
type MapPinsRequest struct {
	CampNames []string `json:"campNames"`
	// MaxPins caps geocoding work per request; zero uses the server default.
	MaxPins int `json:"maxPins"`
}
