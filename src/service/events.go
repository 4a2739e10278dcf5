package service

import (
	"encoding/json"
	"log/slog"
	"time"

	"user-analytics-service/src/models"
	"user-analytics-service/src/rabbitmq"
)

// UserRegisteredEvent is published when a new user is registered.
type UserRegisteredEvent struct {
	UserID   string    `json:"user_id"`
	UserName string    `json:"user_name"`
	At       time.Time `json:"at"`
}

// SessionRecordedEvent is published when a session is recorded.
type SessionRecordedEvent struct {
	SessionID  string    `json:"session_id"`
	UserID     string    `json:"user_id"`
	LoginTime  time.Time `json:"login_time"`
	LogoutTime time.Time `json:"logout_time"`
	Minutes    int64     `json:"minutes"`
}

// EventPublisher pushes analytics events to RabbitMQ. Publishing is best
// effort: failures are logged and never fail the originating request.
type EventPublisher struct {
	publisher rabbitmq.Publisher
}

// NewEventPublisher wraps a RabbitMQ publisher. publisher may be nil, which
// turns every emit into a no-op.
func NewEventPublisher(publisher rabbitmq.Publisher) *EventPublisher {
	return &EventPublisher{publisher: publisher}
}

// UserRegistered emits a user.registered event.
func (e *EventPublisher) UserRegistered(userID, userName string) {
	e.emit(rabbitmq.UserRegisteredExchange, UserRegisteredEvent{
		UserID:   userID,
		UserName: userName,
		At:       time.Now(),
	})
}

// SessionRecorded emits a session.recorded event.
func (e *EventPublisher) SessionRecorded(session models.Session) {
	e.emit(rabbitmq.SessionRecordedExchange, SessionRecordedEvent{
		SessionID:  session.SessionID,
		UserID:     session.UserID,
		LoginTime:  session.LoginTime,
		LogoutTime: session.LogoutTime,
		Minutes:    session.Minutes(),
	})
}

func (e *EventPublisher) emit(exchange string, event interface{}) {
	if e.publisher == nil {
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		slog.Error("Failed to marshal event", "exchange", exchange, "error", err)
		return
	}

	if err := e.publisher.Publish(exchange, body); err != nil {
		slog.Error("Failed to publish event", "exchange", exchange, "error", err)
	}
}
