package camp

// Categories a camp can belong to. "All" is the UI's no-restriction entry
// and never appears on a record.
var Categories = []string{
	"All",
	"Adventure",
	"Sports",
	"Arts",
	"Technology",
	"Science",
	"Education",
}

// Province is a Canadian province selectable in the location picker.
type Province struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var Provinces = []Province{
	{Code: "ALL", Name: "All Provinces"},
	{Code: "AB", Name: "Alberta"},
	{Code: "BC", Name: "British Columbia"},
	{Code: "MB", Name: "Manitoba"},
	{Code: "NB", Name: "New Brunswick"},
	{Code: "NL", Name: "Newfoundland and Labrador"},
	{Code: "NS", Name: "Nova Scotia"},
	{Code: "ON", Name: "Ontario"},
	{Code: "PE", Name: "Prince Edward Island"},
	{Code: "QC", Name: "Quebec"},
	{Code: "SK", Name: "Saskatchewan"},
}

// AgeGroups are the selectable age-group filter labels.
var AgeGroups = []string{
	"4-6 years",
	"7-9 years",
	"10-13 years",
	"14-17 years",
	"18+ years",
}

// DefaultPriceRange is the untouched price filter, spanning every camp.
var DefaultPriceRange = [2]float64{0, 1000}

// PriceRange is one selectable price bracket.
type PriceRange struct {
	Label string     `json:"label"`
	Value string     `json:"value"`
	Range [2]float64 `json:"range"`
}

var PriceRanges = []PriceRange{
	{Label: "Any Price", Value: "0-1000", Range: [2]float64{0, 1000}},
	{Label: "Under $200", Value: "0-200", Range: [2]float64{0, 200}},
	{Label: "$200 - $400", Value: "200-400", Range: [2]float64{200, 400}},
	{Label: "$400 - $600", Value: "400-600", Range: [2]float64{400, 600}},
	{Label: "$600 - $800", Value: "600-800", Range: [2]float64{600, 800}},
	{Label: "$800+", Value: "800-1000", Range: [2]float64{800, 1000}},
}
