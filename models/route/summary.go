package route

import "math"

// Maneuver is the fixed icon/label vocabulary for guide steps.
type Maneuver string

const (
	ManeuverStraight  Maneuver = "straight"
	ManeuverLeft      Maneuver = "left"
	ManeuverRight     Maneuver = "right"
	ManeuverUTurn     Maneuver = "u-turn"
	ManeuverForkLeft  Maneuver = "fork-left"
	ManeuverForkRight Maneuver = "fork-right"
	ManeuverDepart    Maneuver = "depart"
	ManeuverArrive    Maneuver = "arrive"
	ManeuverOther     Maneuver = "other"
)

// GuideStep is one renderable turn-by-turn entry.
type GuideStep struct {
	Maneuver Maneuver `json:"maneuver"`
	Name     string   `json:"name"`
	Distance int      `json:"distance"`
}

// RouteSummary is the normalized summary shown in the route panel.
type RouteSummary struct {
	DurationMinutes int         `json:"duration_minutes"`
	DistanceMeters  int         `json:"distance_meters"`
	Guides          []GuideStep `json:"guides"`
}

// maneuverForType maps the provider's numeric guide type onto the fixed
// vocabulary. Unknown codes land in the "other" bucket.
func maneuverForType(guideType int) Maneuver {
	switch guideType {
	case 10:
		return ManeuverStraight
	case 11:
		return ManeuverLeft
	case 12:
		return ManeuverRight
	case 13:
		return ManeuverUTurn
	case 14:
		return ManeuverForkLeft
	case 15:
		return ManeuverForkRight
	case 16:
		return ManeuverDepart
	case 17:
		return ManeuverArrive
	default:
		return ManeuverOther
	}
}

// BuildRouteSummary extracts duration, distance and the guide list from
// a section. The duration scaling (round to minutes, then times five)
// matches the behavior users currently see and is kept on purpose.
func BuildRouteSummary(section *Section) *RouteSummary {
	if section == nil {
		return nil
	}

	guides := make([]GuideStep, 0, len(section.Guides))
	for _, g := range section.Guides {
		guides = append(guides, GuideStep{
			Maneuver: maneuverForType(g.Type),
			Name:     g.Name,
			Distance: g.Distance,
		})
	}

	return &RouteSummary{
		DurationMinutes: int(math.Round(float64(section.Duration)/60.0)) * 5,
		DistanceMeters:  section.Distance,
		Guides:          guides,
	}
}
