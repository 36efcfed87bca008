package key_value

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lifeofnimah/host-with-nimah/internal/model"
	"github.com/redis/go-redis/v9"
)

type messageInternal struct {
	MessageID string              `json:"message_id"`
	Source    model.MessageSource `json:"source"`
	Body      string              `json:"body"`
	SentAt    time.Time           `json:"sent_at"`
}

type sessionInternal struct {
	SessionID string            `json:"session_id"`
	Messages  []messageInternal `json:"messages"`
}

type SessionStorage struct {
	rdb *redis.Client
}

func NewSessionStorage(rdb *redis.Client) *SessionStorage {
	return &SessionStorage{
		rdb: rdb,
	}
}

func (s *SessionStorage) CreateSession(ctx context.Context) (model.ChatSession, error) {
	sessionID := uuid.New()
	sessionInt := sessionInternal{
		SessionID: sessionID.String(),
		Messages:  make([]messageInternal, 0),
	}
	if err := s.setSessionInt(ctx, sessionID, sessionInt); err != nil {
		return model.ChatSession{}, fmt.Errorf("failed to set session internal %s: %w", sessionID.String(), err)
	}
	return model.ChatSession{
		SessionID: sessionID,
		Messages:  make([]model.Message, 0),
	}, nil
}

func (s *SessionStorage) GetSession(ctx context.Context, sessionID uuid.UUID) (model.ChatSession, error) {
	sessionInt, err := s.getSessionInt(ctx, sessionID)
	if err != nil {
		return model.ChatSession{}, err
	}

	messages := make([]model.Message, 0, len(sessionInt.Messages))
	for _, msg := range sessionInt.Messages {
		messageID, err := uuid.Parse(msg.MessageID)
		if err != nil {
			return model.ChatSession{}, fmt.Errorf("failed to parse message id %s: %w", msg.MessageID, err)
		}
		messages = append(
			messages, model.Message{
				MessageID: messageID,
				Source:    msg.Source,
				Body:      msg.Body,
				SentAt:    msg.SentAt,
			},
		)
	}

	return model.ChatSession{
		SessionID: sessionID,
		Messages:  messages,
	}, nil
}

func (s *SessionStorage) AddMessageToSession(
	ctx context.Context,
	sessionID uuid.UUID,
	body string,
	source model.MessageSource,
) (model.Message, error) {
	sessionInt, err := s.getSessionInt(ctx, sessionID)
	if err != nil {
		return model.Message{}, err
	}

	message := model.Message{
		MessageID: uuid.New(),
		Source:    source,
		Body:      body,
		SentAt:    time.Now(),
	}
	sessionInt.Messages = append(
		sessionInt.Messages, messageInternal{
			MessageID: message.MessageID.String(),
			Source:    message.Source,
			Body:      message.Body,
			SentAt:    message.SentAt,
		},
	)
	if err = s.setSessionInt(ctx, sessionID, sessionInt); err != nil {
		return model.Message{}, fmt.Errorf("failed to set internal session %s: %w", sessionID.String(), err)
	}
	return message, nil
}

func (s *SessionStorage) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *SessionStorage) getSessionInt(ctx context.Context, sessionID uuid.UUID) (sessionInternal, error) {
	sessionKey := getSessionKey(sessionID)
	sessionIntRaw, err := s.rdb.Get(ctx, sessionKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return sessionInternal{}, model.ErrSessionNotFound
		}
		return sessionInternal{}, fmt.Errorf("failed to get session %s: %w", sessionID, err)
	}
	var sessionInt sessionInternal
	if err = json.Unmarshal([]byte(sessionIntRaw), &sessionInt); err != nil {
		return sessionInternal{}, fmt.Errorf("failed to unmarshal session %s: %w", sessionID, err)
	}
	return sessionInt, nil
}

func (s *SessionStorage) setSessionInt(ctx context.Context, sessionID uuid.UUID, sessionInt sessionInternal) error {
	sessionIntJSON, err := json.Marshal(sessionInt)
	if err != nil {
		return fmt.Errorf("failed to marshal internal session: %w", err)
	}
	sessionKey := getSessionKey(sessionID)
	if err = s.rdb.Set(ctx, sessionKey, sessionIntJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save sessionInternal %s: %w", sessionKey, err)
	}
	return nil
}

func getSessionKey(sessionID uuid.UUID) string {
	return fmt.Sprintf("chat_session_%v", sessionID.String())
}
