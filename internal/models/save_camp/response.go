package models

type SaveCampResponse struct {
	Success  bool   `json:"success"`
	CampName string `json:"campName"`
	Saved    bool   `json:"saved"`
}
