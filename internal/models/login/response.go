package models

type LoginResponse struct {
	UID           string `json:"uid"`
	DisplayName   string `json:"displayName"`
	Email         string `json:"email"`
	Token         string `json:"token"`
	PhotoURL      string `json:"photoURL"`
	Provider      string `json:"provider"`
	EmailVerified bool   `json:"emailVerified"`
}
