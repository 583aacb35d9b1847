package auth

import (
	"errors"
	"log"
	"strings"
	"sync"

	"pokerclub/store"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountPending     = errors.New("your account is pending approval")
	ErrAccountRejected    = errors.New("your account has been rejected")
	ErrEmailTaken         = errors.New("email already registered")
	ErrMissingFields      = errors.New("please fill in all fields")
	ErrInvalidEmail       = errors.New("please enter a valid email address")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrNotAuthenticated   = errors.New("not logged in")
	ErrUserNotFound       = errors.New("user not found")
)

// Service owns the authenticated-user state for the process lifetime. The
// held user mirrors the persisted current-user pointer: set on login, synced
// on refresh, cleared on logout. All operations are read-filter-write passes
// over the store's users collection.
//
// Passwords are stored and compared in plaintext. That matches the data this
// system has always kept and is preserved deliberately; see DESIGN.md before
// deploying this anywhere untrusted.
type Service struct {
	store   store.Store
	session *SessionManager

	mu   sync.RWMutex
	user *store.User
}

func NewService(st store.Store, sessionManager *SessionManager) *Service {
	return &Service{
		store:   st,
		session: sessionManager,
	}
}

// RestoreSession loads the persisted current-user pointer, if any. Called
// once at startup.
func (s *Service) RestoreSession() {
	user := s.store.GetCurrentUser()
	if user == nil {
		return
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	log.Printf("Restored session for %s", user.Email)
}

// Login authenticates by case-insensitive email and plaintext password
// compare. Pending and rejected accounts are refused even with correct
// credentials. On success the user is held and the persisted pointer is
// updated; the returned session ID backs the HTTP cookie.
func (s *Service) Login(email, password string) (*store.User, string, error) {
	email = strings.TrimSpace(email)

	users := s.store.GetUsers()
	var found *store.User
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			found = &users[i]
			break
		}
	}

	if found == nil || found.Password != password {
		return nil, "", ErrInvalidCredentials
	}

	switch found.Status {
	case store.StatusPending:
		return nil, "", ErrAccountPending
	case store.StatusRejected:
		return nil, "", ErrAccountRejected
	}

	s.store.SetCurrentUser(found)
	s.mu.Lock()
	s.user = found
	s.mu.Unlock()

	sessionID := s.session.CreateSession(found.ID)
	log.Printf("Login successful for %s (%s)", found.Email, found.Status)
	return found, sessionID, nil
}

// Logout is best-effort: local state always ends up anonymous even if
// clearing the persisted pointer fails underneath.
func (s *Service) Logout(sessionID string) {
	if sessionID != "" {
		s.session.DeleteSession(sessionID)
	}

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	s.store.ClearCurrentUser()
}

type RegisterInput struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Nickname string `json:"nickname"`
	Password string `json:"password"`
}

// Register appends a new pending user. Duplicate emails are rejected
// case-insensitively.
func (s *Service) Register(in RegisterInput) (*store.User, error) {
	in.FullName = SanitizeString(in.FullName)
	in.Email = SanitizeString(in.Email)
	in.Phone = SanitizeString(in.Phone)
	in.Nickname = SanitizeString(in.Nickname)

	if in.FullName == "" || in.Email == "" || in.Phone == "" || in.Nickname == "" || in.Password == "" {
		return nil, ErrMissingFields
	}
	if !strings.Contains(in.Email, "@") {
		return nil, ErrInvalidEmail
	}

	users := s.store.GetUsers()
	for i := range users {
		if strings.EqualFold(users[i].Email, in.Email) {
			return nil, ErrEmailTaken
		}
	}

	newUser := store.User{
		ID:        store.NewID(),
		FullName:  in.FullName,
		Email:     in.Email,
		Phone:     in.Phone,
		Nickname:  in.Nickname,
		Password:  in.Password,
		Status:    store.StatusPending,
		CreatedAt: store.Now(),
	}

	users = append(users, newUser)
	s.store.SaveUsers(users)
	log.Printf("Registration submitted for %s", newUser.Email)
	return &newUser, nil
}

// RefreshUser re-reads the canonical user record and re-synchronizes the held
// user and persisted pointer. Used after self-service profile edits.
func (s *Service) RefreshUser(userID string) (*store.User, error) {
	users := s.store.GetUsers()
	for i := range users {
		if users[i].ID == userID {
			updated := users[i]

			s.mu.Lock()
			if s.user != nil && s.user.ID == userID {
				s.user = &updated
				s.store.SetCurrentUser(&updated)
			}
			s.mu.Unlock()
			return &updated, nil
		}
	}
	return nil, ErrUserNotFound
}

// ChangePassword rewrites the user's password in the full collection and
// forces logout so the next login uses the new credential.
func (s *Service) ChangePassword(userID, newPassword, confirm string) error {
	if userID == "" {
		return ErrNotAuthenticated
	}
	if newPassword != confirm {
		return ErrPasswordMismatch
	}
	if len(newPassword) < 6 {
		return ErrPasswordTooShort
	}

	users := s.store.GetUsers()
	found := false
	for i := range users {
		if users[i].ID == userID {
			users[i].Password = newPassword
			found = true
			break
		}
	}
	if !found {
		return ErrUserNotFound
	}

	s.store.SaveUsers(users)

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	s.store.ClearCurrentUser()
	s.session.DeleteUserSessions(userID)
	log.Printf("Password changed for user %s, forcing logout", userID)
	return nil
}

// UpdateNickname rewrites the user's nickname in the full collection.
func (s *Service) UpdateNickname(userID, nickname string) (*store.User, error) {
	nickname = SanitizeString(nickname)
	if nickname == "" {
		return nil, ErrMissingFields
	}

	users := s.store.GetUsers()
	found := false
	for i := range users {
		if users[i].ID == userID {
			users[i].Nickname = nickname
			found = true
			break
		}
	}
	if !found {
		return nil, ErrUserNotFound
	}

	s.store.SaveUsers(users)
	return s.RefreshUser(userID)
}

// UserByID resolves a stored user, for request middleware.
func (s *Service) UserByID(userID string) *store.User {
	users := s.store.GetUsers()
	for i := range users {
		if users[i].ID == userID {
			return &users[i]
		}
	}
	return nil
}

// CurrentUser returns the held user, or nil when anonymous.
func (s *Service) CurrentUser() *store.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Service) GetSessionManager() *SessionManager {
	return s.session
}
