package recommend

import "dm-server/models"

// RecommendAPI defines the interface for the menu recommendation provider
type RecommendAPI interface {
	GetRecommendation(token string, request models.RecommendRequest) (*models.RecommendationResult, error)
}
