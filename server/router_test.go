package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"dm-server/util"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// mock handlers echo a route marker so the table below can tell which
// handler a path landed on.

type MockVenueHandler struct{}

func (h *MockVenueHandler) GetVenuesNearby(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(`{"route": "venues_nearby"}`))
}
func (h *MockVenueHandler) GetAllVenues(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(`{"route": "venues_all"}`))
}
func (h *MockVenueHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(`{"route": "venue_detail"}`))
}
func (h *MockVenueHandler) SearchVenues(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(`{"route": "venues_search"}`))
}
func (h *MockVenueHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(`{"route": "ping"}`))
}

type MockAuthHandler struct{}

func (h *MockAuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(`{"route": "login"}`))
}
func (h *MockAuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(`{"route": "signup"}`))
}
func (h *MockAuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(`{"route": "logout"}`))
}
func (h *MockAuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(`{"route": "change_password"}`))
}
func (h *MockAuthHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(`{"route": "delete_account"}`))
}

type MockFavoriteHandler struct{}

func (h *MockFavoriteHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(`{"route": "favorites_list"}`))
}
func (h *MockFavoriteHandler) FavoriteStatus(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(`{"route": "favorite_status"}`))
}
func (h *MockFavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(`{"route": "favorite_add"}`))
}
func (h *MockFavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(`{"route": "favorite_remove"}`))
}

type MockSessionHandler struct{}

func (h *MockSessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(`{"route": "session_start"}`))
}
func (h *MockSessionHandler) GetState(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(`{"route": "session_state"}`))
}
func (h *MockSessionHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(`{"route": "session_end"}`))
}
func (h *MockSessionHandler) PostIntent(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(`{"route": "session_intent"}`))
}

func newTestRouter() *mux.Router {
	muxRouter := mux.NewRouter()
	appRouter := NewRouter(
		&MockVenueHandler{},
		&MockAuthHandler{},
		&MockFavoriteHandler{},
		&MockSessionHandler{},
		muxRouter,
	)
	appRouter.RegisterRoutes()
	return muxRouter
}

func bearerToken(t *testing.T) string {
	t.Helper()
	os.Setenv("JWT_SECRET", "router-test-secret")
	token, err := util.CreateToken(uuid.New(), "010-1234-5678")
	if err != nil {
		t.Fatalf("failed to mint test token: %v", err)
	}
	return "Bearer " + token
}

func TestRouter_RegisterRoutes(t *testing.T) {
	router := newTestRouter()
	auth := bearerToken(t)

	tests := []struct {
		name       string
		method     string
		path       string
		authHeader string
		statusCode int
		response   string
	}{
		{
			name:       "Get Venues Nearby",
			method:     "GET",
			path:       "/v1/venues/nearby?lat=37.56&lng=126.97&radius=1",
			statusCode: http.StatusOK,
			response:   `{"route": "venues_nearby"}`,
		},
		{
			name:       "Search Venues",
			method:     "GET",
			path:       "/v1/venues/search?q=설렁탕",
			statusCode: http.StatusOK,
			response:   `{"route": "venues_search"}`,
		},
		{
			name:       "All Venues",
			method:     "GET",
			path:       "/v1/venues",
			statusCode: http.StatusOK,
			response:   `{"route": "venues_all"}`,
		},
		{
			name:       "Venue Detail",
			method:     "GET",
			path:       "/v1/venues/store-1001",
			statusCode: http.StatusOK,
			response:   `{"route": "venue_detail"}`,
		},
		{
			name:       "Login",
			method:     "POST",
			path:       "/v1/auth/login",
			statusCode: http.StatusOK,
			response:   `{"route": "login"}`,
		},
		{
			name:       "Signup",
			method:     "POST",
			path:       "/v1/auth/signup",
			statusCode: http.StatusOK,
			response:   `{"route": "signup"}`,
		},
		{
			name:       "Favorites Without Token",
			method:     "GET",
			path:       "/v1/favorites",
			statusCode: http.StatusUnauthorized,
		},
		{
			name:       "Favorites With Token",
			method:     "GET",
			path:       "/v1/favorites",
			authHeader: auth,
			statusCode: http.StatusOK,
			response:   `{"route": "favorites_list"}`,
		},
		{
			name:       "Add Favorite With Token",
			method:     "PUT",
			path:       "/v1/favorites/store-1001",
			authHeader: auth,
			statusCode: http.StatusOK,
			response:   `{"route": "favorite_add"}`,
		},
		{
			name:       "Logout Without Token",
			method:     "POST",
			path:       "/v1/auth/logout",
			statusCode: http.StatusUnauthorized,
		},
		{
			name:       "Change Password With Token",
			method:     "PUT",
			path:       "/v1/auth/password",
			authHeader: auth,
			statusCode: http.StatusOK,
			response:   `{"route": "change_password"}`,
		},
		{
			name:       "Start Map Session",
			method:     "POST",
			path:       "/v1/map/sessions",
			statusCode: http.StatusOK,
			response:   `{"route": "session_start"}`,
		},
		{
			name:       "Map Session Intent",
			method:     "POST",
			path:       "/v1/map/sessions/abc/intents",
			statusCode: http.StatusOK,
			response:   `{"route": "session_intent"}`,
		},
		{
			name:       "Ping Route",
			method:     "GET",
			path:       "/ping",
			statusCode: http.StatusOK,
			response:   `{"route": "ping"}`,
		},
		{
			name:       "Invalid Route",
			method:     "GET",
			path:       "/invalid",
			statusCode: http.StatusNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			if test.authHeader != "" {
				req.Header.Set("Authorization", test.authHeader)
			}
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			if rr.Code != test.statusCode {
				t.Errorf("Expected status %d, got %d", test.statusCode, rr.Code)
			}
			if test.response != "" && rr.Body.String() != test.response {
				t.Errorf("Expected response %s, got %s", test.response, rr.Body.String())
			}
		})
	}
}

func TestAuthMiddleware_RejectsBadTokens(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("GET", "/v1/favorites", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}
