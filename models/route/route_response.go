package route

// RouteResponse mirrors the navi provider's directions payload. Only the
// first route's first section is consumed downstream.
type RouteResponse struct {
	TransID string  `json:"trans_id"`
	Routes  []Route `json:"routes"`
}

type Route struct {
	ResultCode int       `json:"result_code"`
	ResultMsg  string    `json:"result_msg"`
	Sections   []Section `json:"sections"`
}

// Section carries the drive data for one leg of the route.
type Section struct {
	Duration int           `json:"duration"` // seconds
	Distance int           `json:"distance"` // meters
	Roads    []RoadSegment `json:"roads"`
	Guides   []Guide       `json:"guides"`
}

// RoadSegment is one polyline fragment. Vertexes is a flat array of
// alternating longitude/latitude values.
type RoadSegment struct {
	Name     string    `json:"name"`
	Distance int       `json:"distance"`
	Vertexes []float64 `json:"vertexes"`
}

// Guide is one turn-by-turn instruction of the section.
type Guide struct {
	Name     string `json:"name"`
	Type     int    `json:"type"`
	Distance int    `json:"distance"` // meters to the next maneuver
	Guidance string `json:"guidance,omitempty"`
}

// Section returns the first section of the first route, or nil when the
// payload carries no usable route.
func (r *RouteResponse) Section() *Section {
	if len(r.Routes) == 0 || len(r.Routes[0].Sections) == 0 {
		return nil
	}
	return &r.Routes[0].Sections[0]
}
