package navi

import (
	"fmt"

	"dm-server/config"
	"dm-server/models"
	"dm-server/models/route"
	"dm-server/util"
)

// NaviApiClientMock embeds mocked logic for the navi api client
type NaviApiClientMock struct {
}

// NewNaviApiClientMock creates a new instance of NaviApiClientMock
func NewNaviApiClientMock() *NaviApiClientMock {
	return &NaviApiClientMock{}
}

// RequestRoute serves a canned directions payload from disk
func (c *NaviApiClientMock) RequestRoute(origin models.Point, destination models.Point) (*route.RouteResponse, error) {
	response, err := util.ReadRouteResponseFromJSON(config.GetResourcePath(config.ROUTE_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read route response from json")
		return nil, err
	}

	return response, nil
}

func (c *NaviApiClientMock) SetCredentials(apiKey string) {
}
