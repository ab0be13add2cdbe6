package panel

import (
	"strings"

	"dm-server/models"
	"dm-server/models/route"
	"dm-server/models/venue"
	"dm-server/util"
)

// Coordinator is the single source of truth for which modal panel is
// visible and for the auxiliary payload each panel shows. All
// transitions run to completion; the caller serializes access.
type Coordinator struct {
	screen  Screen
	current Panel
	session models.Session

	selectedVenue *venue.Venue
	venueOpen     bool

	routeSummary *route.RouteSummary
	routePath    []models.Point

	favorites      []venue.Venue
	recommendation *models.RecommendationResult
	loadState      LoadState

	signupStep    int
	signupForm    SignupForm
	loginForm     LoginForm
	recommendForm models.RecommendRequest
}

// NewCoordinator starts a coordinator on the splash screen with the
// given (possibly restored) session.
func NewCoordinator(session models.Session) *Coordinator {
	return &Coordinator{
		screen:     ScreenSplash,
		current:    PanelNone,
		session:    session,
		signupStep: 1,
	}
}

func (c *Coordinator) Screen() Screen                               { return c.screen }
func (c *Coordinator) Current() Panel                               { return c.current }
func (c *Coordinator) Session() models.Session                      { return c.session }
func (c *Coordinator) SelectedVenue() *venue.Venue                  { return c.selectedVenue }
func (c *Coordinator) VenueOpen() bool                              { return c.venueOpen }
func (c *Coordinator) RouteSummary() *route.RouteSummary            { return c.routeSummary }
func (c *Coordinator) RoutePath() []models.Point                    { return c.routePath }
func (c *Coordinator) Favorites() []venue.Venue                     { return c.favorites }
func (c *Coordinator) Recommendation() *models.RecommendationResult { return c.recommendation }
func (c *Coordinator) LoadState() LoadState                         { return c.loadState }
func (c *Coordinator) SignupStep() int                              { return c.signupStep }
func (c *Coordinator) SignupForm() SignupForm                       { return c.signupForm }
func (c *Coordinator) LoginForm() LoginForm                         { return c.loginForm }
func (c *Coordinator) RecommendForm() models.RecommendRequest       { return c.recommendForm }

// FinishSplash moves from the splash screen to the map. Triggered by the
// startup timer only; a second call is a no-op.
func (c *Coordinator) FinishSplash() {
	c.screen = ScreenMap
}

// SelectVenue opens the venue detail panel for v, replacing whatever
// panel was open. The replaced panel's local state is discarded.
func (c *Coordinator) SelectVenue(v *venue.Venue, isOpen bool) {
	c.resetPanelState(c.current)
	c.selectedVenue = v
	c.venueOpen = isOpen
	c.current = PanelVenueDetail
	c.loadState = LoadPopulated
}

// DetailLoadFailed marks the venue detail fetch as failed. The panel
// shows an inline error instead of venue data.
func (c *Coordinator) DetailLoadFailed() {
	if c.current == PanelVenueDetail {
		c.selectedVenue = nil
		c.venueOpen = false
		c.loadState = LoadError
	}
}

// OpenFavorites shows the favorites panel, or redirects to login when the
// user is not authenticated. The original intent is abandoned either way.
func (c *Coordinator) OpenFavorites() Panel {
	return c.openAuthGated(PanelFavorites)
}

// OpenRecommendation shows the recommendation form, auth-gated.
func (c *Coordinator) OpenRecommendation() Panel {
	return c.openAuthGated(PanelRecommendation)
}

// OpenAccount shows the account panel, auth-gated.
func (c *Coordinator) OpenAccount() Panel {
	return c.openAuthGated(PanelAccount)
}

func (c *Coordinator) openAuthGated(requested Panel) Panel {
	c.resetPanelState(c.current)
	if !c.session.IsLoggedIn {
		c.current = PanelLogin
		c.loadState = LoadIdle
		return PanelLogin
	}
	c.current = requested
	if requested == PanelFavorites {
		c.loadState = LoadLoading
	} else {
		c.loadState = LoadIdle
	}
	return requested
}

// OpenLogin shows the login panel directly.
func (c *Coordinator) OpenLogin() {
	c.resetPanelState(c.current)
	c.current = PanelLogin
}

// OpenSignup shows the signup panel at step 1. Reached from the login
// panel; login's fields are discarded on the way out.
func (c *Coordinator) OpenSignup() {
	c.resetPanelState(c.current)
	c.current = PanelSignup
	c.signupStep = 1
}

// ClosePanel dismisses the current panel (outside click or the explicit
// close control). All panel-local form state is discarded, not retained
// for reopening; closing the route panel clears the rendered path.
func (c *Coordinator) ClosePanel() {
	c.resetPanelState(c.current)
	c.current = PanelNone
	c.loadState = LoadIdle
}

// resetPanelState discards the payload and form state of the panel being
// left.
func (c *Coordinator) resetPanelState(p Panel) {
	switch p {
	case PanelVenueDetail:
		c.selectedVenue = nil
		c.venueOpen = false
	case PanelRouteSummary:
		c.routeSummary = nil
		c.routePath = nil
	case PanelLogin:
		c.loginForm = LoginForm{}
	case PanelSignup:
		c.signupStep = 1
		c.signupForm = SignupForm{}
	case PanelRecommendation:
		c.recommendForm = models.RecommendRequest{}
		c.recommendation = nil
	case PanelFavorites:
		c.favorites = nil
	}
}

// UpdateLoginForm records the login panel's field values.
func (c *Coordinator) UpdateLoginForm(form LoginForm) {
	c.loginForm = form
}

// CompleteLogin closes the login panel and installs the new session. The
// panel the user originally wanted is not reopened; they re-trigger it.
func (c *Coordinator) CompleteLogin(session models.Session) {
	c.session = session
	if c.current == PanelLogin {
		c.resetPanelState(PanelLogin)
		c.current = PanelNone
	}
}

// AcceptSignupTerms records the step-1 checkboxes.
func (c *Coordinator) AcceptSignupTerms(service, privacy bool) {
	c.signupForm.TermsService = service
	c.signupForm.TermsPrivacy = privacy
}

// AdvanceSignupStep moves from terms acceptance to the form. Both
// required terms must be checked.
func (c *Coordinator) AdvanceSignupStep() error {
	if c.current != PanelSignup || c.signupStep != 1 {
		return util.ErrValidationFailed
	}
	if !c.signupForm.TermsAccepted() {
		return util.ErrValidationFailed
	}
	c.signupStep = 2
	return nil
}

// UpdateSignupForm records the step-2 field values.
func (c *Coordinator) UpdateSignupForm(form SignupForm) {
	service, privacy := c.signupForm.TermsService, c.signupForm.TermsPrivacy
	c.signupForm = form
	c.signupForm.TermsService = service
	c.signupForm.TermsPrivacy = privacy
}

// ValidateSignupForm applies the client-side constraints: no empty
// required field and a matching password confirmation. Failures never
// reach the network.
func (c *Coordinator) ValidateSignupForm() error {
	f := c.signupForm
	if strings.TrimSpace(f.UserName) == "" ||
		strings.TrimSpace(f.UserPhone) == "" ||
		strings.TrimSpace(f.Password) == "" ||
		strings.TrimSpace(f.PasswordConfirm) == "" {
		return util.ErrValidationFailed
	}
	if f.Password != f.PasswordConfirm {
		return util.ErrValidationFailed
	}
	return nil
}

// CompleteSignup closes the signup panel after a successful submission.
func (c *Coordinator) CompleteSignup() {
	if c.current == PanelSignup {
		c.ClosePanel()
	}
}

// UpdateRecommendForm records the recommendation panel's field values.
func (c *Coordinator) UpdateRecommendForm(form models.RecommendRequest) {
	c.recommendForm = form
}

// FavoritesLoaded terminates the favorites load in populated, empty or
// error display. A late result for a closed panel is dropped.
func (c *Coordinator) FavoritesLoaded(venues []venue.Venue, err error) {
	if c.current != PanelFavorites {
		return
	}
	if err != nil {
		c.favorites = nil
		c.loadState = LoadError
		return
	}
	c.favorites = venues
	if len(venues) == 0 {
		c.loadState = LoadEmpty
	} else {
		c.loadState = LoadPopulated
	}
}

// RecommendationLoaded terminates the recommendation fetch.
func (c *Coordinator) RecommendationLoaded(result *models.RecommendationResult, err error) {
	if c.current != PanelRecommendation {
		return
	}
	if err != nil {
		c.recommendation = nil
		c.loadState = LoadError
		return
	}
	c.recommendation = result
	c.loadState = LoadPopulated
}

// CompleteRoute finishes the venue detail panel's route action: detail
// closes and the route summary panel opens with the computed summary and
// path. Dropped when the detail panel is no longer showing.
func (c *Coordinator) CompleteRoute(summary *route.RouteSummary, path []models.Point) {
	if c.current != PanelVenueDetail {
		return
	}
	c.resetPanelState(PanelVenueDetail)
	c.routeSummary = summary
	c.routePath = path
	c.current = PanelRouteSummary
	c.loadState = LoadPopulated
}

// RouteFailed keeps the current panel; the route panel stays closed and
// the failure renders as an inline message.
func (c *Coordinator) RouteFailed() {
	if c.current == PanelVenueDetail {
		c.loadState = LoadError
	}
}

// Logout clears the session; every consumer observes the cleared
// snapshot from here on. Whatever panel was open closes.
func (c *Coordinator) Logout() {
	c.session.Clear()
	c.ClosePanel()
}
