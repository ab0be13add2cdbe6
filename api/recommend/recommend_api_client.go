package recommend

import (
	"dm-server/api"
	"dm-server/models"
)

// RecommendApiClient embeds the common HTTPClient
type RecommendApiClient struct {
	*api.HTTPClient
}

// NewRecommendApiClient creates a new instance of RecommendApiClient
func NewRecommendApiClient(httpClient *api.HTTPClient) *RecommendApiClient {
	return &RecommendApiClient{
		HTTPClient: httpClient,
	}
}

// GetRecommendation posts the preference form with the caller's bearer token.
func (c *RecommendApiClient) GetRecommendation(token string, request models.RecommendRequest) (*models.RecommendationResult, error) {
	headers := map[string]string{}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}

	var response models.RecommendationResult
	err := c.Request("POST", "/recommendation", headers, request, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}
