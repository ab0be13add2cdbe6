package models

// Session is the persisted authentication identity of the current user.
// It outlives app restarts: restored from storage at startup, cleared on
// explicit logout or account deletion.
type Session struct {
	Token      string `json:"token"`
	UserName   string `json:"name"`
	UserPhone  string `json:"phone"`
	IsLoggedIn bool   `json:"isLoggedIn"`
}

// Clear resets the session to the logged-out state.
func (s *Session) Clear() {
	*s = Session{}
}
