package navi

import (
	"fmt"
	"net/url"

	"dm-server/api"
	"dm-server/config"
	"dm-server/models"
	"dm-server/models/route"
	"dm-server/util"
)

// NaviApiClient embeds the common HTTPClient
type NaviApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties

	apiKey string
}

// NewNaviApiClient creates a new instance of NaviApiClient
func NewNaviApiClient(httpClient *api.HTTPClient) *NaviApiClient {
	return &NaviApiClient{
		HTTPClient: httpClient,
	}
}

func (c *NaviApiClient) SetCredentials(apiKey string) {
	c.apiKey = apiKey
}

// RequestRoute asks the provider for a driving route between two points.
// Coordinates go on the wire as "lng,lat" strings. No retry; any
// transport or provider failure surfaces as ErrRouteRequestFailed.
func (c *NaviApiClient) RequestRoute(origin models.Point, destination models.Point) (*route.RouteResponse, error) {
	query := url.Values{}
	query.Set("origin", origin.NaviParam())
	query.Set("destination", destination.NaviParam())

	headers := map[string]string{
		"Authorization": config.NAVI_AUTH_SCHEME + " " + c.apiKey,
	}

	var response route.RouteResponse
	if err := c.Get("/directions", query, headers, &response); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrRouteRequestFailed, err)
	}
	return &response, nil
}
