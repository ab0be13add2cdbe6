package recommend

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"dm-server/config"
	"dm-server/models"
)

// RecommendApiClientMock embeds mocked logic for the recommendation client
type RecommendApiClientMock struct {
}

// NewRecommendApiClientMock creates a new instance of RecommendApiClientMock
func NewRecommendApiClientMock() *RecommendApiClientMock {
	return &RecommendApiClientMock{}
}

// GetRecommendation serves a canned recommendation payload from disk
func (c *RecommendApiClientMock) GetRecommendation(token string, request models.RecommendRequest) (*models.RecommendationResult, error) {
	data, err := ioutil.ReadFile(config.GetResourcePath(config.RECOMMEND_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read recommendation response from json")
		return nil, err
	}

	var response models.RecommendationResult
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
