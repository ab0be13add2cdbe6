package models

// User is a registered account, keyed by phone number.
type User struct {
	UserID       string `json:"user_id"`
	UserName     string `json:"user_name"`
	UserPhone    string `json:"user_phone"`
	PasswordHash string `json:"password_hash"`
}
