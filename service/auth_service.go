package services

import (
	"log"
	"strings"

	"dm-server/dao/redis"
	"dm-server/models"
	"dm-server/util"

	"github.com/google/uuid"
)

// AuthService implements login, signup and account management on top of
// the user and session stores.
type AuthService struct {
	userDao    *redis.RedisUserDAO
	sessionDao *redis.RedisSessionDAO
}

func NewAuthService(userDao *redis.RedisUserDAO, sessionDao *redis.RedisSessionDAO) *AuthService {
	return &AuthService{
		userDao:    userDao,
		sessionDao: sessionDao,
	}
}

// Login verifies phone/password and returns a fresh session, persisting
// it as the user's auth-storage record.
func (a *AuthService) Login(phone, password string) (*models.Session, error) {
	if strings.TrimSpace(phone) == "" || strings.TrimSpace(password) == "" {
		return nil, util.ErrValidationFailed
	}

	user, err := a.userDao.FindByPhone(phone)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, util.ErrAuthFailed
	}

	if err := util.ComparePasswords(user.PasswordHash, password); err != nil {
		return nil, util.ErrAuthFailed
	}

	userID, err := uuid.Parse(user.UserID)
	if err != nil {
		return nil, util.ErrAuthFailed
	}
	token, err := util.CreateToken(userID, user.UserPhone)
	if err != nil {
		return nil, util.ErrAuthFailed
	}

	session := &models.Session{
		Token:      token,
		UserName:   user.UserName,
		UserPhone:  user.UserPhone,
		IsLoggedIn: true,
	}
	if err := a.sessionDao.SaveSession(*session); err != nil {
		log.Printf("[AuthService] Failed to persist session for %s: %v", phone, err)
	}

	return session, nil
}

// Signup registers a new account. The phone number must be unused.
func (a *AuthService) Signup(name, phone, password string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(phone) == "" || strings.TrimSpace(password) == "" {
		return util.ErrValidationFailed
	}

	existing, err := a.userDao.FindByPhone(phone)
	if err != nil {
		return err
	}
	if existing != nil {
		return util.ErrPhoneTaken
	}

	hashed, err := util.HashPassword(password)
	if err != nil {
		return err
	}

	return a.userDao.UpsertUser(models.User{
		UserID:       uuid.NewString(),
		UserName:     name,
		UserPhone:    phone,
		PasswordHash: hashed,
	})
}

// ChangePassword swaps the password after verifying the current one.
func (a *AuthService) ChangePassword(phone, currentPassword, newPassword string) error {
	if strings.TrimSpace(newPassword) == "" {
		return util.ErrValidationFailed
	}

	user, err := a.userDao.FindByPhone(phone)
	if err != nil {
		return err
	}
	if user == nil {
		return util.ErrUserNotFound
	}
	if err := util.ComparePasswords(user.PasswordHash, currentPassword); err != nil {
		return util.ErrAuthFailed
	}

	hashed, err := util.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hashed
	return a.userDao.UpsertUser(*user)
}

// DeleteAccount removes the account and its persisted session. Requires
// the current password.
func (a *AuthService) DeleteAccount(phone, currentPassword string) error {
	user, err := a.userDao.FindByPhone(phone)
	if err != nil {
		return err
	}
	if user == nil {
		return util.ErrUserNotFound
	}
	if err := util.ComparePasswords(user.PasswordHash, currentPassword); err != nil {
		return util.ErrAuthFailed
	}

	if err := a.userDao.DeleteUser(phone); err != nil {
		return err
	}
	return a.sessionDao.DeleteSession(phone)
}

// Logout clears the persisted auth-storage record.
func (a *AuthService) Logout(phone string) error {
	return a.sessionDao.DeleteSession(phone)
}

// RestoreSession loads the persisted session for a phone, or nil.
func (a *AuthService) RestoreSession(phone string) (*models.Session, error) {
	if phone == "" {
		return nil, nil
	}
	return a.sessionDao.LoadSession(phone)
}
