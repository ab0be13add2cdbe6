package util

import (
	"dm-server/models"
	"dm-server/models/route"
)

// DecodeRoads flattens a section's road segments into the ordered point
// sequence the rendering surface draws. Each vertex array is walked two
// values at a time as [lng, lat, lng, lat, ...]. Segments are
// concatenated in input order; a repeated point at a segment junction
// is kept as-is.
//
// A pair is skipped when either coordinate equals zero. That mirrors the
// truthiness check of the consuming app, so a legitimate 0.0 coordinate
// is dropped too.
func DecodeRoads(roads []route.RoadSegment) []models.Point {
	path := []models.Point{}
	if len(roads) == 0 {
		return path
	}

	for _, road := range roads {
		for i := 0; i+1 < len(road.Vertexes); i += 2 {
			lng := road.Vertexes[i]
			lat := road.Vertexes[i+1]

			if lat == 0 || lng == 0 {
				continue
			}
			path = append(path, models.Point{Lat: lat, Lng: lng})
		}
	}

	return path
}
