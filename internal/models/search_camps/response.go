package models

import "io.mapleapps.campquest/internal/camp"

type SearchCampsResponse struct {
	Camps        []camp.GroupedCamp `json:"camps"`
	Title        string             `json:"title"`
	TotalCamps   int                `json:"totalCamps"`
	TotalMatches int                `json:"totalMatches"`
}
