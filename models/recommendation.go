package models

import "dm-server/models/venue"

// RecommendRequest is the health/preference form sent to the
// recommendation provider.
type RecommendRequest struct {
	Name                 string `json:"name"`
	Age                  int    `json:"age"`
	Gender               string `json:"gender"`
	Allergy              string `json:"allergy"`
	Disease              string `json:"disease"`
	HardFood             bool   `json:"hardFood"`
	Spicy                bool   `json:"spicy"`
	SugarSaltRestriction bool   `json:"sugarSaltRestriction"`
}

// RecommendationResult is the provider's advice text plus the venues it
// picked.
type RecommendationResult struct {
	Advice string        `json:"gptResponse"`
	Venues []venue.Venue `json:"stores"`
}
