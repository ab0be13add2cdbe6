package util

import (
	"testing"

	"dm-server/models"
	"dm-server/models/route"

	"github.com/stretchr/testify/assert"
)

func TestDecodeRoads_FlattensVertexPairs(t *testing.T) {
	roads := []route.RoadSegment{
		{
			Name:     "세종대로",
			Vertexes: []float64{126.9, 37.5, 127.0, 37.6},
		},
		{
			Name:     "새문안로",
			Vertexes: []float64{127.1, 37.7},
		},
	}

	path := DecodeRoads(roads)

	assert.Equal(t, []models.Point{
		{Lat: 37.5, Lng: 126.9},
		{Lat: 37.6, Lng: 127.0},
		{Lat: 37.7, Lng: 127.1},
	}, path)
}

func TestDecodeRoads_EmptyInput(t *testing.T) {
	assert.Equal(t, []models.Point{}, DecodeRoads(nil))
	assert.Equal(t, []models.Point{}, DecodeRoads([]route.RoadSegment{}))
	assert.Equal(t, []models.Point{}, DecodeRoads([]route.RoadSegment{{Name: "empty"}}))
}

func TestDecodeRoads_SkipsZeroCoordinates(t *testing.T) {
	roads := []route.RoadSegment{
		{
			Vertexes: []float64{126.9, 37.5, 0, 37.6, 127.0, 0, 127.1, 37.7},
		},
	}

	path := DecodeRoads(roads)

	assert.Equal(t, []models.Point{
		{Lat: 37.5, Lng: 126.9},
		{Lat: 37.7, Lng: 127.1},
	}, path)
}

func TestDecodeRoads_IgnoresTrailingOddVertex(t *testing.T) {
	roads := []route.RoadSegment{
		{Vertexes: []float64{126.9, 37.5, 127.0}},
	}

	path := DecodeRoads(roads)

	assert.Equal(t, []models.Point{{Lat: 37.5, Lng: 126.9}}, path)
}
