package services

import (
	"math"
	"sync"

	"dm-server/api/navi"
	"dm-server/models"
	"dm-server/models/route"
	"dm-server/util"
)

// RouteResult pairs the renderable path with the summary shown in the
// route panel. At most one result is active at a time.
type RouteResult struct {
	Seq     uint64
	Summary *route.RouteSummary
	Path    []models.Point
}

// RouteService drives the directions gateway. Each request is tagged
// with a monotonically increasing sequence number; a response whose
// sequence is no longer the latest issued is discarded, so the active
// result always reflects the last request the caller started, not the
// last response that happened to arrive.
type RouteService struct {
	naviApi navi.NaviAPI

	mu     sync.Mutex
	seq    uint64
	latest *RouteResult
}

func NewRouteService(naviApi navi.NaviAPI) *RouteService {
	return &RouteService{
		naviApi: naviApi,
	}
}

// RequestRoute fetches, decodes and summarizes a route. Returns
// ErrStaleResponse when a newer request was issued while this one was in
// flight; the caller drops stale results silently.
func (rs *RouteService) RequestRoute(origin, destination models.Point) (*RouteResult, error) {
	if !finitePoint(origin) || !finitePoint(destination) {
		return nil, util.ErrValidationFailed
	}

	rs.mu.Lock()
	rs.seq++
	seq := rs.seq
	rs.mu.Unlock()

	response, err := rs.naviApi.RequestRoute(origin, destination)
	if err != nil {
		return nil, util.ErrRouteRequestFailed
	}

	section := response.Section()
	if section == nil {
		return nil, util.ErrRouteRequestFailed
	}

	result := &RouteResult{
		Seq:     seq,
		Summary: route.BuildRouteSummary(section),
		Path:    util.DecodeRoads(section.Roads),
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()
	if seq != rs.seq {
		// A newer request was issued while this one was in flight.
		return nil, util.ErrStaleResponse
	}
	rs.latest = result
	return result, nil
}

// Latest returns the active result, or nil when none is held.
func (rs *RouteService) Latest() *RouteResult {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.latest
}

// Clear drops the active result when the route panel closes.
func (rs *RouteService) Clear() {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.latest = nil
}

func finitePoint(p models.Point) bool {
	return !math.IsNaN(p.Lat) && !math.IsInf(p.Lat, 0) &&
		!math.IsNaN(p.Lng) && !math.IsInf(p.Lng, 0)
}
