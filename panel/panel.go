package panel

// Panel identifies which modal panel is visible. At most one panel is
// open at a time; RouteSummary takes over from VenueDetail when a route
// request completes.
type Panel int

const (
	PanelNone Panel = iota
	PanelVenueDetail
	PanelFavorites
	PanelRecommendation
	PanelRouteSummary
	PanelAccount
	PanelLogin
	PanelSignup
)

var panelNames = map[Panel]string{
	PanelNone:           "none",
	PanelVenueDetail:    "venue_detail",
	PanelFavorites:      "favorites",
	PanelRecommendation: "recommendation",
	PanelRouteSummary:   "route_summary",
	PanelAccount:        "account",
	PanelLogin:          "login",
	PanelSignup:         "signup",
}

func (p Panel) String() string {
	if name, ok := panelNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParsePanel resolves a panel name from the wire.
func ParsePanel(name string) (Panel, bool) {
	for p, n := range panelNames {
		if n == name {
			return p, true
		}
	}
	return PanelNone, false
}

// Screen is the top-level navigation state. The splash screen advances
// to the map after a fixed delay; no user input cancels it.
type Screen int

const (
	ScreenSplash Screen = iota
	ScreenMap
)

func (s Screen) String() string {
	if s == ScreenSplash {
		return "splash"
	}
	return "map"
}

// LoadState tracks a data-fetching panel's load. A load always
// terminates in populated, empty or error; never stuck loading.
type LoadState int

const (
	LoadIdle LoadState = iota
	LoadLoading
	LoadPopulated
	LoadEmpty
	LoadError
)

var loadStateNames = map[LoadState]string{
	LoadIdle:      "idle",
	LoadLoading:   "loading",
	LoadPopulated: "populated",
	LoadEmpty:     "empty",
	LoadError:     "error",
}

func (l LoadState) String() string {
	if name, ok := loadStateNames[l]; ok {
		return name
	}
	return "unknown"
}

// LoginForm is the login panel's local state. Preserved across a failed
// attempt, discarded when the panel closes.
type LoginForm struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// SignupForm is the signup panel's local state across its two steps.
type SignupForm struct {
	TermsService    bool   `json:"terms_service"`
	TermsPrivacy    bool   `json:"terms_privacy"`
	UserName        string `json:"user_name"`
	UserPhone       string `json:"user_phone"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

// TermsAccepted reports whether both required terms are checked.
func (f SignupForm) TermsAccepted() bool {
	return f.TermsService && f.TermsPrivacy
}
