package models

import "time"

// Timestamp layouts used across the service. Session timestamps are local
// date-times without a timezone, seconds precision.
const (
	TimeLayout  = "2006-01-02T15:04:05"
	MonthLayout = "2006-01"
	DateLayout  = "2006-01-02"
)

// User represents a registered user.
type User struct {
	ID   string `json:"user_id"`
	Name string `json:"user_name"`
}

// Session represents one login/logout interval belonging to a user.
// Sessions are immutable once recorded.
type Session struct {
	SessionID  string    `json:"session_id"`
	UserID     string    `json:"user_id"`
	LoginTime  time.Time `json:"login_time"`
	LogoutTime time.Time `json:"logout_time"`
}

// Minutes returns the session duration in whole minutes. LogoutTime is
// guaranteed to be >= LoginTime by validation, so the result is non-negative.
func (s Session) Minutes() int64 {
	return int64(s.LogoutTime.Sub(s.LoginTime) / time.Minute)
}
