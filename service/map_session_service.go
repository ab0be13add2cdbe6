package services

import (
	"log"
	"strings"
	"sync"
	"time"

	"dm-server/api/recommend"
	"dm-server/config"
	"dm-server/models"
	"dm-server/panel"
	"dm-server/util"

	"github.com/google/uuid"
)

// mapSession is one client's map screen: its panel coordinator, its
// resolved position and its route request state.
type mapSession struct {
	id          string
	coordinator *panel.Coordinator
	position    models.Point
	routes      *RouteService
}

// MapSessionService owns the per-session panel coordinators and runs
// every user intent through them. All coordinator access is serialized
// behind the service mutex; network calls happen outside it and their
// results are re-applied through the coordinator, which drops anything
// that arrives for a panel that is no longer showing.
type MapSessionService struct {
	mu       sync.Mutex
	sessions map[string]*mapSession

	venueService    *VenueService
	favoriteService *FavoriteService
	authService     *AuthService
	recommendApi    recommend.RecommendAPI
	routeFactory    func() *RouteService

	clock       func() time.Time
	splashDelay time.Duration
}

func NewMapSessionService(
	venueService *VenueService,
	favoriteService *FavoriteService,
	authService *AuthService,
	recommendApi recommend.RecommendAPI,
	routeFactory func() *RouteService) *MapSessionService {

	return &MapSessionService{
		sessions:        make(map[string]*mapSession),
		venueService:    venueService,
		favoriteService: favoriteService,
		authService:     authService,
		recommendApi:    recommendApi,
		routeFactory:    routeFactory,
		clock:           time.Now,
		splashDelay:     config.SPLASH_DELAY_SECONDS * time.Second,
	}
}

// SetClock injects a deterministic clock for tests.
func (ms *MapSessionService) SetClock(clock func() time.Time) {
	ms.clock = clock
}

// SetSplashDelay overrides the splash duration, mainly for tests.
func (ms *MapSessionService) SetSplashDelay(d time.Duration) {
	ms.splashDelay = d
}

// StartSession opens a new map session. A persisted auth-storage record
// for the phone is restored into the session; position is the one-shot
// geolocation result, with the fixed default coordinate standing in on
// denial or error. The splash screen advances to the map after the fixed
// delay; nothing cancels it.
func (ms *MapSessionService) StartSession(phone string, position *models.Point) (string, panel.State) {
	session := models.Session{}
	if restored, err := ms.authService.RestoreSession(phone); err != nil {
		log.Printf("[MapSessionService] Failed to restore session for %s: %v", phone, err)
	} else if restored != nil {
		session = *restored
	}

	pos := models.Point{Lat: config.DEFAULT_POSITION_LAT, Lng: config.DEFAULT_POSITION_LNG}
	if position != nil {
		pos = *position
	}

	s := &mapSession{
		id:          uuid.NewString(),
		coordinator: panel.NewCoordinator(session),
		position:    pos,
		routes:      ms.routeFactory(),
	}

	ms.mu.Lock()
	ms.sessions[s.id] = s
	ms.mu.Unlock()

	time.AfterFunc(ms.splashDelay, func() {
		ms.mu.Lock()
		defer ms.mu.Unlock()
		if held, ok := ms.sessions[s.id]; ok {
			held.coordinator.FinishSplash()
		}
	})

	ms.mu.Lock()
	defer ms.mu.Unlock()
	return s.id, s.coordinator.State()
}

// State returns the current snapshot for a session.
func (ms *MapSessionService) State(sessionID string) (panel.State, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	s, ok := ms.sessions[sessionID]
	if !ok {
		return panel.State{}, util.ErrSessionNotFound
	}
	return s.coordinator.State(), nil
}

// EndSession drops a session. Responses still in flight for it are
// discarded when they arrive.
func (ms *MapSessionService) EndSession(sessionID string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	delete(ms.sessions, sessionID)
}

func (ms *MapSessionService) get(sessionID string) (*mapSession, error) {
	s, ok := ms.sessions[sessionID]
	if !ok {
		return nil, util.ErrSessionNotFound
	}
	return s, nil
}

// SelectVenue fetches the venue detail and opens the detail panel,
// replacing whatever was open. A fetch failure renders as the panel's
// inline error state, never a crash.
func (ms *MapSessionService) SelectVenue(sessionID, venueID string) (panel.State, error) {
	v, fetchErr := ms.venueService.GetVenue(venueID)

	ms.mu.Lock()
	defer ms.mu.Unlock()
	s, err := ms.get(sessionID)
	if err != nil {
		return panel.State{}, err
	}

	if fetchErr != nil {
		s.coordinator.SelectVenue(nil, false)
		s.coordinator.DetailLoadFailed()
		return s.coordinator.State(), nil
	}

	s.coordinator.SelectVenue(v, ms.venueService.IsVenueOpen(v, ms.clock()))
	return s.coordinator.State(), nil
}

// RequestRoute runs the detail panel's route action: directions from the
// session's position to the selected venue. Stale responses are dropped;
// failures keep the route panel closed.
func (ms *MapSessionService) RequestRoute(sessionID string) (panel.State, error) {
	ms.mu.Lock()
	s, err := ms.get(sessionID)
	if err != nil {
		ms.mu.Unlock()
		return panel.State{}, err
	}
	v := s.coordinator.SelectedVenue()
	if v == nil {
		ms.mu.Unlock()
		return s.coordinator.State(), util.ErrValidationFailed
	}
	origin := s.position
	destination := models.Point{Lat: v.VenueLat, Lng: v.VenueLng}
	routes := s.routes
	ms.mu.Unlock()

	result, routeErr := routes.RequestRoute(origin, destination)

	ms.mu.Lock()
	defer ms.mu.Unlock()
	if routeErr == util.ErrStaleResponse {
		// Superseded by a newer request; drop silently.
		return s.coordinator.State(), nil
	}
	if routeErr != nil {
		s.coordinator.RouteFailed()
		return s.coordinator.State(), util.ErrRouteRequestFailed
	}
	s.coordinator.CompleteRoute(result.Summary, result.Path)
	return s.coordinator.State(), nil
}

// ClosePanel dismisses the current panel. Closing the route panel also
// clears the held route result.
func (ms *MapSessionService) ClosePanel(sessionID string) (panel.State, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	s, err := ms.get(sessionID)
	if err != nil {
		return panel.State{}, err
	}
	if s.coordinator.Current() == panel.PanelRouteSummary {
		s.routes.Clear()
	}
	s.coordinator.ClosePanel()
	return s.coordinator.State(), nil
}

// OpenFavorites opens the favorites panel (or login when logged out) and
// resolves its list. Load errors render inline; the panel never sticks
// in loading.
func (ms *MapSessionService) OpenFavorites(sessionID string) (panel.State, error) {
	ms.mu.Lock()
	s, err := ms.get(sessionID)
	if err != nil {
		ms.mu.Unlock()
		return panel.State{}, err
	}
	opened := s.coordinator.OpenFavorites()
	phone := s.coordinator.Session().UserPhone
	ms.mu.Unlock()

	if opened != panel.PanelFavorites {
		ms.mu.Lock()
		defer ms.mu.Unlock()
		return s.coordinator.State(), nil
	}

	venues, loadErr := ms.favoriteService.ListFavorites(phone)

	ms.mu.Lock()
	defer ms.mu.Unlock()
	s.coordinator.FavoritesLoaded(venues, loadErr)
	return s.coordinator.State(), nil
}

// OpenRecommendation opens the recommendation form, auth-gated.
func (ms *MapSessionService) OpenRecommendation(sessionID string) (panel.State, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	s, err := ms.get(sessionID)
	if err != nil {
		return panel.State{}, err
	}
	s.coordinator.OpenRecommendation()
	return s.coordinator.State(), nil
}

// SubmitRecommendation posts the form to the provider using the token
// captured at request start; a logout mid-flight does not swap the token
// under the request.
func (ms *MapSessionService) SubmitRecommendation(sessionID string, form models.RecommendRequest) (panel.State, error) {
	if strings.TrimSpace(form.Name) == "" || form.Age <= 0 || strings.TrimSpace(form.Gender) == "" {
		ms.mu.Lock()
		defer ms.mu.Unlock()
		s, err := ms.get(sessionID)
		if err != nil {
			return panel.State{}, err
		}
		return s.coordinator.State(), util.ErrValidationFailed
	}

	ms.mu.Lock()
	s, err := ms.get(sessionID)
	if err != nil {
		ms.mu.Unlock()
		return panel.State{}, err
	}
	if s.coordinator.Current() != panel.PanelRecommendation {
		ms.mu.Unlock()
		return s.coordinator.State(), nil
	}
	s.coordinator.UpdateRecommendForm(form)
	token := s.coordinator.Session().Token // snapshot for the in-flight call
	ms.mu.Unlock()

	result, loadErr := ms.recommendApi.GetRecommendation(token, form)

	ms.mu.Lock()
	defer ms.mu.Unlock()
	s.coordinator.RecommendationLoaded(result, loadErr)
	return s.coordinator.State(), nil
}

// OpenAccount opens the account panel, auth-gated.
func (ms *MapSessionService) OpenAccount(sessionID string) (panel.State, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	s, err := ms.get(sessionID)
	if err != nil {
		return panel.State{}, err
	}
	s.coordinator.OpenAccount()
	return s.coordinator.State(), nil
}

// OpenLogin opens the login panel directly.
func (ms *MapSessionService) OpenLogin(sessionID string) (panel.State, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	s, err := ms.get(sessionID)
	if err != nil {
		return panel.State{}, err
	}
	s.coordinator.OpenLogin()
	return s.coordinator.State(), nil
}

// OpenSignup moves from login to the signup panel at step 1.
func (ms *MapSessionService) OpenSignup(sessionID string) (panel.State, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	s, err := ms.get(sessionID)
	if err != nil {
		return panel.State{}, err
	}
	s.coordinator.OpenSignup()
	return s.coordinator.State(), nil
}

// AcceptSignupTerms records the step-1 checkboxes.
func (ms *MapSessionService) AcceptSignupTerms(sessionID string, service, privacy bool) (panel.State, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	s, err := ms.get(sessionID)
	if err != nil {
		return panel.State{}, err
	}
	s.coordinator.AcceptSignupTerms(service, privacy)
	return s.coordinator.State(), nil
}

// AdvanceSignup moves the signup panel to step 2.
func (ms *MapSessionService) AdvanceSignup(sessionID string) (panel.State, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	s, err := ms.get(sessionID)
	if err != nil {
		return panel.State{}, err
	}
	if err := s.coordinator.AdvanceSignupStep(); err != nil {
		return s.coordinator.State(), err
	}
	return s.coordinator.State(), nil
}

// SubmitSignup validates the form locally, registers the account and
// closes the panel. Validation failures never reach the user store.
func (ms *MapSessionService) SubmitSignup(sessionID string, form panel.SignupForm) (panel.State, error) {
	ms.mu.Lock()
	s, err := ms.get(sessionID)
	if err != nil {
		ms.mu.Unlock()
		return panel.State{}, err
	}
	s.coordinator.UpdateSignupForm(form)
	if err := s.coordinator.ValidateSignupForm(); err != nil {
		state := s.coordinator.State()
		ms.mu.Unlock()
		return state, err
	}
	ms.mu.Unlock()

	signupErr := ms.authService.Signup(form.UserName, form.UserPhone, form.Password)

	ms.mu.Lock()
	defer ms.mu.Unlock()
	if signupErr != nil {
		return s.coordinator.State(), signupErr
	}
	s.coordinator.CompleteSignup()
	return s.coordinator.State(), nil
}

// Login verifies credentials and installs the session. On bad
// credentials the panel stays open with its fields preserved.
func (ms *MapSessionService) Login(sessionID string, form panel.LoginForm) (panel.State, error) {
	ms.mu.Lock()
	s, err := ms.get(sessionID)
	if err != nil {
		ms.mu.Unlock()
		return panel.State{}, err
	}
	s.coordinator.UpdateLoginForm(form)
	ms.mu.Unlock()

	session, loginErr := ms.authService.Login(form.Phone, form.Password)

	ms.mu.Lock()
	defer ms.mu.Unlock()
	if loginErr != nil {
		return s.coordinator.State(), loginErr
	}
	s.coordinator.CompleteLogin(*session)
	return s.coordinator.State(), nil
}

// Logout clears both the persisted record and the in-memory session.
func (ms *MapSessionService) Logout(sessionID string) (panel.State, error) {
	ms.mu.Lock()
	s, err := ms.get(sessionID)
	if err != nil {
		ms.mu.Unlock()
		return panel.State{}, err
	}
	phone := s.coordinator.Session().UserPhone
	ms.mu.Unlock()

	if phone != "" {
		if err := ms.authService.Logout(phone); err != nil {
			log.Printf("[MapSessionService] Failed to clear persisted session for %s: %v", phone, err)
		}
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()
	s.coordinator.Logout()
	return s.coordinator.State(), nil
}

// DeleteAccount removes the account after password confirmation and logs
// the session out.
func (ms *MapSessionService) DeleteAccount(sessionID, currentPassword string) (panel.State, error) {
	ms.mu.Lock()
	s, err := ms.get(sessionID)
	if err != nil {
		ms.mu.Unlock()
		return panel.State{}, err
	}
	sess := s.coordinator.Session()
	ms.mu.Unlock()

	if !sess.IsLoggedIn {
		ms.mu.Lock()
		defer ms.mu.Unlock()
		return s.coordinator.State(), util.ErrUnauthorized
	}

	deleteErr := ms.authService.DeleteAccount(sess.UserPhone, currentPassword)

	ms.mu.Lock()
	defer ms.mu.Unlock()
	if deleteErr != nil {
		return s.coordinator.State(), deleteErr
	}
	s.coordinator.Logout()
	return s.coordinator.State(), nil
}
