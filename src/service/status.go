package service

import (
	"user-analytics-service/src/models"
)

// Activity tier names as rendered to clients.
const (
	StatusInactive     = "Inactive"
	StatusActive       = "Active"
	StatusHighlyActive = "Highly active"
)

// ActivityReader is the slice of the analytics service the status classifier
// depends on. Tests substitute it with canned data.
type ActivityReader interface {
	TotalActivityTime(userID string) (int64, error)
	UserSessions(userID string) []models.Session
}

// UserStatusService classifies users into activity tiers based on their
// total activity minutes.
type UserStatusService struct {
	analytics ActivityReader
}

// NewUserStatusService creates a new status classifier on top of the given
// analytics service.
func NewUserStatusService(analytics ActivityReader) *UserStatusService {
	return &UserStatusService{analytics: analytics}
}

// UserStatus maps the user's total activity minutes to a tier:
// under 60 Inactive, 60 to 119 Active, 120 and above Highly active.
func (s *UserStatusService) UserStatus(userID string) (string, error) {
	minutes, err := s.analytics.TotalActivityTime(userID)
	if err != nil {
		return "", err
	}

	switch {
	case minutes < 60:
		return StatusInactive, nil
	case minutes < 120:
		return StatusActive, nil
	default:
		return StatusHighlyActive, nil
	}
}

// LastSessionDate returns the date (2006-01-02) of the session with the
// latest logout time, independent of the order sessions were recorded in.
// The second return is false when the user has no sessions.
func (s *UserStatusService) LastSessionDate(userID string) (string, bool) {
	sessions := s.analytics.UserSessions(userID)
	if len(sessions) == 0 {
		return "", false
	}

	last := sessions[0]
	for _, session := range sessions[1:] {
		if session.LogoutTime.After(last.LogoutTime) {
			last = session
		}
	}
	return last.LogoutTime.Format(models.DateLayout), true
}
