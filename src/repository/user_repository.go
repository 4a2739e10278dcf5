package repository

import (
	"log/slog"
	"sync"

	"user-analytics-service/src/models"

	"github.com/google/uuid"
)

// UserRepository holds all registered users and their recorded sessions.
// It is the single authoritative in-memory store, shared by every request
// handler, so all access goes through one RWMutex.
type UserRepository struct {
	mu       sync.RWMutex
	users    map[string]models.User
	order    []string
	sessions map[string][]models.Session
}

// NewUserRepository creates an empty user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:    make(map[string]models.User),
		sessions: make(map[string][]models.Session),
	}
}

// CreateUser inserts a new user record
func (r *UserRepository) CreateUser(id, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; ok {
		return models.ErrUserAlreadyExists
	}

	r.users[id] = models.User{ID: id, Name: name}
	r.order = append(r.order, id)

	slog.Info("Registered user", "user_id", id)

	return nil
}

// GetUser returns the user with the given id
func (r *UserRepository) GetUser(id string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return models.User{}, models.ErrUserNotFound
	}
	return user, nil
}

// AddSession appends a session to the user's list, assigning it a session id.
// The caller guarantees the user exists.
func (r *UserRepository) AddSession(userID string, session models.Session) models.Session {
	session.SessionID = uuid.New().String()
	session.UserID = userID

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[userID] = append(r.sessions[userID], session)

	slog.Info("Recorded session",
		"user_id", userID,
		"session_id", session.SessionID)

	return session
}

// Sessions returns a copy of the user's sessions in the order they were
// recorded. Unknown users yield an empty list, not an error.
func (r *UserRepository) Sessions(userID string) []models.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]models.Session, len(r.sessions[userID]))
	copy(sessions, r.sessions[userID])
	return sessions
}

// UserIDs returns all registered user ids in registration order.
func (r *UserRepository) UserIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}
