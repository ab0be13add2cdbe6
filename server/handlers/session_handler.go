package handlers

import (
	"encoding/json"
	"net/http"

	"dm-server/models"
	"dm-server/panel"
	services "dm-server/service"
	"dm-server/util"

	"github.com/gorilla/mux"
)

// Intent names accepted by PostIntent.
const (
	INTENT_SELECT_VENUE        = "select_venue"
	INTENT_REQUEST_ROUTE       = "request_route"
	INTENT_CLOSE_PANEL         = "close_panel"
	INTENT_OPEN_FAVORITES      = "open_favorites"
	INTENT_OPEN_RECOMMENDATION = "open_recommendation"
	INTENT_SUBMIT_RECOMMEND    = "submit_recommendation"
	INTENT_OPEN_ACCOUNT        = "open_account"
	INTENT_OPEN_LOGIN          = "open_login"
	INTENT_OPEN_SIGNUP         = "open_signup"
	INTENT_ACCEPT_SIGNUP_TERMS = "accept_signup_terms"
	INTENT_ADVANCE_SIGNUP      = "advance_signup"
	INTENT_SUBMIT_SIGNUP       = "submit_signup"
	INTENT_LOGIN               = "login"
	INTENT_LOGOUT              = "logout"
	INTENT_DELETE_ACCOUNT      = "delete_account"
)

// SessionHandler exposes the map session over HTTP: one session per
// client, every user action posted as an intent, every response the
// full panel state snapshot.
type SessionHandler struct {
	sessionService *services.MapSessionService
}

func NewSessionHandler(sessionService *services.MapSessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

type startSessionRequest struct {
	Phone    string        `json:"phone"`
	Position *models.Point `json:"position"`
}

type startSessionResponse struct {
	SessionID string      `json:"session_id"`
	State     panel.State `json:"state"`
}

type intentRequest struct {
	Intent          string                   `json:"intent"`
	VenueID         string                   `json:"venue_id,omitempty"`
	TermsService    bool                     `json:"terms_service,omitempty"`
	TermsPrivacy    bool                     `json:"terms_privacy,omitempty"`
	CurrentPassword string                   `json:"current_password,omitempty"`
	Login           *panel.LoginForm         `json:"login,omitempty"`
	Signup          *panel.SignupForm        `json:"signup,omitempty"`
	Recommend       *models.RecommendRequest `json:"recommend,omitempty"`
}

// StartSession handles POST /v1/map/sessions.
func (h *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if r.Body != nil {
		// An empty body starts an anonymous session at the default position.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	id, state := h.sessionService.StartSession(req.Phone, req.Position)
	writeJSON(w, startSessionResponse{SessionID: id, State: state})
}

// GetState handles GET /v1/map/sessions/{session_id}.
func (h *SessionHandler) GetState(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]

	state, err := h.sessionService.State(sessionID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, state)
}

// EndSession handles DELETE /v1/map/sessions/{session_id}.
func (h *SessionHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	h.sessionService.EndSession(mux.Vars(r)["session_id"])
	writeJSON(w, map[string]string{"status": "ended"})
}

// PostIntent handles POST /v1/map/sessions/{session_id}/intents. It maps
// the intent name onto the session service and returns the resulting
// state; transition errors that leave the session usable still return
// the snapshot alongside the error status.
func (h *SessionHandler) PostIntent(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]

	var req intentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, util.ErrValidationFailed)
		return
	}

	state, err := h.dispatch(sessionID, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, state)
}

func (h *SessionHandler) dispatch(sessionID string, req intentRequest) (panel.State, error) {
	switch req.Intent {
	case INTENT_SELECT_VENUE:
		return h.sessionService.SelectVenue(sessionID, req.VenueID)
	case INTENT_REQUEST_ROUTE:
		return h.sessionService.RequestRoute(sessionID)
	case INTENT_CLOSE_PANEL:
		return h.sessionService.ClosePanel(sessionID)
	case INTENT_OPEN_FAVORITES:
		return h.sessionService.OpenFavorites(sessionID)
	case INTENT_OPEN_RECOMMENDATION:
		return h.sessionService.OpenRecommendation(sessionID)
	case INTENT_SUBMIT_RECOMMEND:
		if req.Recommend == nil {
			return panel.State{}, util.ErrValidationFailed
		}
		return h.sessionService.SubmitRecommendation(sessionID, *req.Recommend)
	case INTENT_OPEN_ACCOUNT:
		return h.sessionService.OpenAccount(sessionID)
	case INTENT_OPEN_LOGIN:
		return h.sessionService.OpenLogin(sessionID)
	case INTENT_OPEN_SIGNUP:
		return h.sessionService.OpenSignup(sessionID)
	case INTENT_ACCEPT_SIGNUP_TERMS:
		return h.sessionService.AcceptSignupTerms(sessionID, req.TermsService, req.TermsPrivacy)
	case INTENT_ADVANCE_SIGNUP:
		return h.sessionService.AdvanceSignup(sessionID)
	case INTENT_SUBMIT_SIGNUP:
		if req.Signup == nil {
			return panel.State{}, util.ErrValidationFailed
		}
		return h.sessionService.SubmitSignup(sessionID, *req.Signup)
	case INTENT_LOGIN:
		if req.Login == nil {
			return panel.State{}, util.ErrValidationFailed
		}
		return h.sessionService.Login(sessionID, *req.Login)
	case INTENT_LOGOUT:
		return h.sessionService.Logout(sessionID)
	case INTENT_DELETE_ACCOUNT:
		return h.sessionService.DeleteAccount(sessionID, req.CurrentPassword)
	default:
		return panel.State{}, util.ErrValidationFailed
	}
}
