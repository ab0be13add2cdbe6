package models

import "fmt"

// Point is a plain geographic coordinate handed to the rendering surface.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NaviParam renders the point in the "lng,lat" order the navi provider expects.
func (p Point) NaviParam() string {
	return fmt.Sprintf("%f,%f", p.Lng, p.Lat)
}
