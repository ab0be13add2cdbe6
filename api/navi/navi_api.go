package navi

import (
	"dm-server/models"
	"dm-server/models/route"
)

// NaviAPI defines the interface for interacting with the directions provider
type NaviAPI interface {
	RequestRoute(origin models.Point, destination models.Point) (*route.RouteResponse, error)
	SetCredentials(apiKey string)
}
