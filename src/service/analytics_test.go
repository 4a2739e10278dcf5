package service

import (
	"testing"
	"time"

	"user-analytics-service/src/models"
	"user-analytics-service/src/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *AnalyticsService {
	t.Helper()
	return NewAnalyticsService(repository.NewUserRepository(), nil)
}

func TestRegisterUser(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		userName string
		wantErr  error
	}{
		{
			name:     "valid registration",
			userID:   "user123",
			userName: "John Doe",
		},
		{
			name:    "missing name",
			userID:  "user123",
			wantErr: models.ErrMissingParameter,
		},
		{
			name:     "missing id",
			userName: "John Doe",
			wantErr:  models.ErrMissingParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t)
			err := svc.RegisterUser(tt.userID, tt.userName)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegisterUserDuplicate(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.RegisterUser("user123", "John Doe"))

	err := svc.RegisterUser("user123", "Someone Else")
	assert.ErrorIs(t, err, models.ErrUserAlreadyExists)
}

func TestRecordSessionValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		login   string
		logout  string
		wantErr error
	}{
		{
			name:    "missing user id",
			login:   "2025-02-18T10:00:00",
			logout:  "2025-02-18T12:00:00",
			wantErr: models.ErrMissingParameter,
		},
		{
			name:    "missing login time",
			userID:  "user123",
			logout:  "2025-02-18T12:00:00",
			wantErr: models.ErrMissingParameter,
		},
		{
			name:    "missing logout time",
			userID:  "user123",
			login:   "2025-02-18T10:00:00",
			wantErr: models.ErrMissingParameter,
		},
		{
			name:   "malformed login time beats user lookup",
			userID: "user789",
			login:  "2025-01-18-10:00:00",
			logout: "2025-02-18T12:00:00",
		},
		{
			name:    "inverted range beats user lookup",
			userID:  "user789",
			login:   "2025-02-18T12:00:00",
			logout:  "2025-02-18T10:00:00",
			wantErr: models.ErrLoginAfterLogout,
		},
		{
			name:    "unknown user",
			userID:  "user789",
			login:   "2025-02-18T10:00:00",
			logout:  "2025-02-18T12:00:00",
			wantErr: models.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t)
			require.NoError(t, svc.RegisterUser("user123", "John Doe"))

			err := svc.RecordSession(tt.userID, tt.login, tt.logout)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				var parseErr *models.ParseError
				assert.ErrorAs(t, err, &parseErr)
			}
		})
	}
}

func TestRecordSessionParseErrorCarriesDiagnostic(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.RegisterUser("user123", "John Doe"))

	err := svc.RecordSession("user123", "2025-01-18-10:00:00", "2025-02-18T12:00:00")

	var parseErr *models.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Error(), "2025-01-18-10:00:00")
}

func TestTotalActivityTime(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.RegisterUser("user123", "John Doe"))

	require.NoError(t, svc.RecordSession("user123", "2025-02-18T10:00:00", "2025-02-18T12:00:00"))
	total, err := svc.TotalActivityTime("user123")
	require.NoError(t, err)
	assert.Equal(t, int64(120), total)

	// A second session increases the total by exactly its duration
	require.NoError(t, svc.RecordSession("user123", "2025-02-19T09:00:00", "2025-02-19T09:45:00"))
	total, err = svc.TotalActivityTime("user123")
	require.NoError(t, err)
	assert.Equal(t, int64(165), total)

	// Equal login and logout times add zero minutes and still succeed
	require.NoError(t, svc.RecordSession("user123", "2025-02-19T10:00:00", "2025-02-19T10:00:00"))
	total, err = svc.TotalActivityTime("user123")
	require.NoError(t, err)
	assert.Equal(t, int64(165), total)
}

func TestTotalActivityTimeNoSessions(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.RegisterUser("user456", "John Doe"))

	// A registered user without sessions and an unknown user are
	// indistinguishable at this level
	_, err := svc.TotalActivityTime("user456")
	assert.ErrorIs(t, err, models.ErrNoSessions)

	_, err = svc.TotalActivityTime("user789")
	assert.ErrorIs(t, err, models.ErrNoSessions)
}

func TestTotalActivityTimeMissingUserID(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.TotalActivityTime("")
	assert.ErrorIs(t, err, models.ErrMissingParameter)
}

func TestInactiveUsersValidation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.InactiveUsers("")
	assert.ErrorIs(t, err, models.ErrMissingParameter)

	var parseErr *models.ParseError
	_, err = svc.InactiveUsers("aaa")
	assert.ErrorAs(t, err, &parseErr)

	_, err = svc.InactiveUsers("-1")
	assert.ErrorIs(t, err, models.ErrNegativeDays)
}

func TestInactiveUsers(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.RegisterUser("user123", "John Doe"))
	require.NoError(t, svc.RegisterUser("user456", "Jane Doe"))
	require.NoError(t, svc.RegisterUser("user789", "Jim Doe"))

	// user123 logged out long ago, user456 is still logged in (future
	// logout), user789 never had a session
	old := time.Now().AddDate(0, 0, -10)
	require.NoError(t, svc.RecordSession("user123",
		old.Format(models.TimeLayout), old.Add(time.Hour).Format(models.TimeLayout)))
	recent := time.Now()
	require.NoError(t, svc.RecordSession("user456",
		recent.Format(models.TimeLayout), recent.Add(time.Hour).Format(models.TimeLayout)))

	inactive, err := svc.InactiveUsers("5")
	require.NoError(t, err)
	assert.Equal(t, []string{"user123", "user789"}, inactive)

	// A large enough window keeps everyone with sessions active
	inactive, err = svc.InactiveUsers("100")
	require.NoError(t, err)
	assert.Equal(t, []string{"user789"}, inactive)

	// days = 0 puts the cutoff at now, so only future logouts survive
	inactive, err = svc.InactiveUsers("0")
	require.NoError(t, err)
	assert.Equal(t, []string{"user123", "user789"}, inactive)
}

func TestInactiveUsersUsesChronologicalLastLogout(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.RegisterUser("user123", "John Doe"))

	// Recent session recorded before an old one; the newest logout decides
	recent := time.Now().AddDate(0, 0, -1)
	old := time.Now().AddDate(0, 0, -30)
	require.NoError(t, svc.RecordSession("user123",
		recent.Format(models.TimeLayout), recent.Add(time.Hour).Format(models.TimeLayout)))
	require.NoError(t, svc.RecordSession("user123",
		old.Format(models.TimeLayout), old.Add(time.Hour).Format(models.TimeLayout)))

	inactive, err := svc.InactiveUsers("7")
	require.NoError(t, err)
	assert.Empty(t, inactive)
}

func TestInactiveUsersEmptyResultIsNotNil(t *testing.T) {
	svc := newTestService(t)

	inactive, err := svc.InactiveUsers("10")
	require.NoError(t, err)
	assert.NotNil(t, inactive)
	assert.Empty(t, inactive)
}

func TestMonthlyActivityValidation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.MonthlyActivity("", "2025-02")
	assert.ErrorIs(t, err, models.ErrMissingParameter)

	_, err = svc.MonthlyActivity("user123", "")
	assert.ErrorIs(t, err, models.ErrMissingParameter)

	var parseErr *models.ParseError
	_, err = svc.MonthlyActivity("user123", "aaaa")
	assert.ErrorAs(t, err, &parseErr)

	_, err = svc.MonthlyActivity("user123", "2025-13")
	assert.ErrorAs(t, err, &parseErr)
}

func TestMonthlyActivity(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.RegisterUser("user123", "John Doe"))

	// Two sessions on the same day accumulate into one bucket
	require.NoError(t, svc.RecordSession("user123", "2025-02-18T10:00:00", "2025-02-18T12:00:00"))
	require.NoError(t, svc.RecordSession("user123", "2025-02-18T14:00:00", "2025-02-18T16:00:00"))
	require.NoError(t, svc.RecordSession("user123", "2025-02-19T09:00:00", "2025-02-19T09:30:00"))

	activity, err := svc.MonthlyActivity("user123", "2025-02")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{
		"2025-02-18": 240,
		"2025-02-19": 30,
	}, activity)
}

func TestMonthlyActivitySpanningMonthsCountsLoginDay(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.RegisterUser("user123", "John Doe"))

	// The whole duration lands on the January login day
	require.NoError(t, svc.RecordSession("user123", "2025-01-18T10:00:00", "2025-02-18T12:00:00"))

	activity, err := svc.MonthlyActivity("user123", "2025-01")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"2025-01-18": 44760}, activity)

	activity, err = svc.MonthlyActivity("user123", "2025-02")
	require.NoError(t, err)
	assert.Empty(t, activity)
}

func TestMonthlyActivityEmptyCases(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.RegisterUser("user123", "John Doe"))
	require.NoError(t, svc.RecordSession("user123", "2025-02-18T10:00:00", "2025-02-18T12:00:00"))

	tests := []struct {
		name   string
		userID string
		month  string
	}{
		{name: "month without sessions", userID: "user123", month: "2025-03"},
		{name: "same month different year", userID: "user123", month: "2024-02"},
		{name: "unknown user", userID: "user789", month: "2025-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			activity, err := svc.MonthlyActivity(tt.userID, tt.month)
			require.NoError(t, err)
			assert.NotNil(t, activity)
			assert.Empty(t, activity)
		})
	}
}
