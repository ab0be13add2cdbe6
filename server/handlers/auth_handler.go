package handlers

import (
	"encoding/json"
	"net/http"

	services "dm-server/service"
	"dm-server/util"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type signupRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type deleteAccountRequest struct {
	CurrentPassword string `json:"current_password"`
}

// Login handles POST /v1/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, util.ErrValidationFailed)
		return
	}

	session, err := h.authService.Login(req.Phone, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, session)
}

// Signup handles POST /v1/auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, util.ErrValidationFailed)
		return
	}

	if err := h.authService.Signup(req.Name, req.Phone, req.Password); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, map[string]string{"status": "created"})
}

// Logout handles POST /v1/auth/logout. Requires a valid token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	phone := PhoneFromContext(r.Context())

	if err := h.authService.Logout(phone); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, map[string]string{"status": "logged_out"})
}

// ChangePassword handles PUT /v1/auth/password. Requires a valid token.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, util.ErrValidationFailed)
		return
	}

	phone := PhoneFromContext(r.Context())
	if err := h.authService.ChangePassword(phone, req.CurrentPassword, req.NewPassword); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, map[string]string{"status": "changed"})
}

// DeleteAccount handles DELETE /v1/auth/account. Requires a valid token
// plus password confirmation.
func (h *AuthHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	var req deleteAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, util.ErrValidationFailed)
		return
	}

	phone := PhoneFromContext(r.Context())
	if err := h.authService.DeleteAccount(phone, req.CurrentPassword); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, map[string]string{"status": "deleted"})
}
