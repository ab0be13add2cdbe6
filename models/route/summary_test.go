package route

import "testing"

func TestBuildRouteSummary_DurationAndDistance(t *testing.T) {
	section := &Section{
		Duration: 612,
		Distance: 2840,
	}

	summary := BuildRouteSummary(section)

	// 612s rounds to 10 minutes, then the fixed x5 scaling applies.
	if summary.DurationMinutes != 50 {
		t.Errorf("DurationMinutes = %d, want 50", summary.DurationMinutes)
	}
	if summary.DistanceMeters != 2840 {
		t.Errorf("DistanceMeters = %d, want 2840", summary.DistanceMeters)
	}
}

func TestBuildRouteSummary_RoundsBeforeScaling(t *testing.T) {
	// 89s -> 1 minute -> 5; scaling the raw seconds would give 7.
	summary := BuildRouteSummary(&Section{Duration: 89})
	if summary.DurationMinutes != 5 {
		t.Errorf("DurationMinutes = %d, want 5", summary.DurationMinutes)
	}

	// 90s rounds up to 2 minutes.
	summary = BuildRouteSummary(&Section{Duration: 90})
	if summary.DurationMinutes != 10 {
		t.Errorf("DurationMinutes = %d, want 10", summary.DurationMinutes)
	}
}

func TestBuildRouteSummary_GuideMapping(t *testing.T) {
	section := &Section{
		Guides: []Guide{
			{Name: "출발지", Type: 16, Distance: 0},
			{Name: "세종대로사거리", Type: 11, Distance: 830},
			{Name: "로터리", Type: 99, Distance: 120},
			{Name: "목적지", Type: 17, Distance: 890},
		},
	}

	summary := BuildRouteSummary(section)

	want := []Maneuver{ManeuverDepart, ManeuverLeft, ManeuverOther, ManeuverArrive}
	if len(summary.Guides) != len(want) {
		t.Fatalf("got %d guides, want %d", len(summary.Guides), len(want))
	}
	for i, m := range want {
		if summary.Guides[i].Maneuver != m {
			t.Errorf("guide %d maneuver = %q, want %q", i, summary.Guides[i].Maneuver, m)
		}
	}
	if summary.Guides[1].Name != "세종대로사거리" || summary.Guides[1].Distance != 830 {
		t.Errorf("guide fields not carried over: %+v", summary.Guides[1])
	}
}

func TestBuildRouteSummary_NilSection(t *testing.T) {
	if BuildRouteSummary(nil) != nil {
		t.Error("nil section must yield nil summary")
	}
}

func TestSection_FirstRouteFirstSection(t *testing.T) {
	empty := &RouteResponse{}
	if empty.Section() != nil {
		t.Error("empty response must have no section")
	}

	noSections := &RouteResponse{Routes: []Route{{ResultCode: 0}}}
	if noSections.Section() != nil {
		t.Error("route without sections must have no section")
	}

	resp := &RouteResponse{Routes: []Route{{
		Sections: []Section{{Distance: 100}, {Distance: 200}},
	}}}
	if got := resp.Section(); got == nil || got.Distance != 100 {
		t.Errorf("Section() = %+v, want first section", got)
	}
}
