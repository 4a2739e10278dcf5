package service

import (
	"strconv"
	"time"

	"user-analytics-service/src/models"
	"user-analytics-service/src/rabbitmq"
	"user-analytics-service/src/repository"
)

// AnalyticsService implements user registration, session recording and the
// activity analytics derived from them. All state lives in the repository;
// the service itself is stateless and safe for concurrent use.
type AnalyticsService struct {
	repo   *repository.UserRepository
	events *EventPublisher
}

// NewAnalyticsService creates a new analytics service. publisher may be nil,
// in which case event publishing is disabled.
func NewAnalyticsService(repo *repository.UserRepository, publisher rabbitmq.Publisher) *AnalyticsService {
	return &AnalyticsService{
		repo:   repo,
		events: NewEventPublisher(publisher),
	}
}

// RegisterUser registers a new user under the given id.
func (s *AnalyticsService) RegisterUser(userID, userName string) error {
	if userID == "" || userName == "" {
		return models.ErrMissingParameter
	}

	if err := s.repo.CreateUser(userID, userName); err != nil {
		return err
	}

	s.events.UserRegistered(userID, userName)
	return nil
}

// RecordSession validates and appends a login/logout interval to the user's
// session list. Timestamps are raw query values in the form
// 2006-01-02T15:04:05; equal login and logout times are allowed.
func (s *AnalyticsService) RecordSession(userID, loginTime, logoutTime string) error {
	if userID == "" || loginTime == "" || logoutTime == "" {
		return models.ErrMissingParameter
	}

	login, err := time.Parse(models.TimeLayout, loginTime)
	if err != nil {
		return models.NewParseError(err)
	}

	logout, err := time.Parse(models.TimeLayout, logoutTime)
	if err != nil {
		return models.NewParseError(err)
	}

	if login.After(logout) {
		return models.ErrLoginAfterLogout
	}

	if _, err := s.repo.GetUser(userID); err != nil {
		return err
	}

	session := s.repo.AddSession(userID, models.Session{
		LoginTime:  login,
		LogoutTime: logout,
	})

	s.events.SessionRecorded(session)
	return nil
}

// TotalActivityTime sums the user's session durations in whole minutes.
// A user without sessions (registered or not) yields ErrNoSessions.
func (s *AnalyticsService) TotalActivityTime(userID string) (int64, error) {
	if userID == "" {
		return 0, models.ErrMissingParameter
	}

	sessions := s.repo.Sessions(userID)
	if len(sessions) == 0 {
		return 0, models.ErrNoSessions
	}

	var total int64
	for _, session := range sessions {
		total += session.Minutes()
	}
	return total, nil
}

// UserSessions returns the user's sessions in recording order.
func (s *AnalyticsService) UserSessions(userID string) []models.Session {
	return s.repo.Sessions(userID)
}

// InactiveUsers returns the ids of users whose most recent logout time is
// strictly before now minus the given number of days, together with users
// that have no sessions at all. Ids come back in registration order and the
// result is never nil.
func (s *AnalyticsService) InactiveUsers(days string) ([]string, error) {
	if days == "" {
		return nil, models.ErrMissingParameter
	}

	n, err := strconv.Atoi(days)
	if err != nil {
		return nil, models.NewParseError(err)
	}
	if n < 0 {
		return nil, models.ErrNegativeDays
	}

	cutoff := wallClockNow().AddDate(0, 0, -n)

	inactive := make([]string, 0)
	for _, userID := range s.repo.UserIDs() {
		sessions := s.repo.Sessions(userID)
		if len(sessions) == 0 || lastLogout(sessions).Before(cutoff) {
			inactive = append(inactive, userID)
		}
	}
	return inactive, nil
}

// MonthlyActivity buckets the user's activity minutes per calendar day for
// the given YYYY-MM month. A session counts toward the month and day of its
// login time; the whole duration goes to the login day even when the session
// crosses midnight or a month boundary. The result is never nil; a month
// without sessions yields an empty map.
func (s *AnalyticsService) MonthlyActivity(userID, month string) (map[string]int64, error) {
	if userID == "" || month == "" {
		return nil, models.ErrMissingParameter
	}

	target, err := time.Parse(models.MonthLayout, month)
	if err != nil {
		return nil, models.NewParseError(err)
	}

	activity := make(map[string]int64)
	for _, session := range s.repo.Sessions(userID) {
		if session.LoginTime.Year() != target.Year() || session.LoginTime.Month() != target.Month() {
			continue
		}
		activity[session.LoginTime.Format(models.DateLayout)] += session.Minutes()
	}
	return activity, nil
}

// wallClockNow returns the current local wall-clock time with a UTC zone.
// Session timestamps carry no timezone and parse as UTC, so the inactivity
// cutoff has to live on the same zoneless clock.
func wallClockNow() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(),
		now.Hour(), now.Minute(), now.Second(), 0, time.UTC)
}

// lastLogout returns the chronologically latest logout time. Sessions are
// kept in recording order, which is not necessarily chronological.
func lastLogout(sessions []models.Session) time.Time {
	last := sessions[0].LogoutTime
	for _, session := range sessions[1:] {
		if session.LogoutTime.After(last) {
			last = session.LogoutTime
		}
	}
	return last
}
