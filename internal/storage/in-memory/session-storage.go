package in_memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lifeofnimah/host-with-nimah/internal/model"
)

type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*model.ChatSession
}

func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[uuid.UUID]*model.ChatSession),
	}
}

func (s *SessionStorage) CreateSession(ctx context.Context) (model.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessionID := uuid.New()
	session := model.ChatSession{
		SessionID: sessionID,
		Messages:  make([]model.Message, 0),
	}
	s.sessions[sessionID] = &session
	return session, nil
}

func (s *SessionStorage) GetSession(ctx context.Context, sessionID uuid.UUID) (model.ChatSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return model.ChatSession{}, model.ErrSessionNotFound
	}
	copied := *session
	copied.Messages = append([]model.Message(nil), session.Messages...)
	return copied, nil
}

func (s *SessionStorage) AddMessageToSession(
	ctx context.Context,
	sessionID uuid.UUID,
	body string,
	source model.MessageSource,
) (model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return model.Message{}, model.ErrSessionNotFound
	}
	message := model.Message{
		MessageID: uuid.New(),
		Source:    source,
		Body:      body,
		SentAt:    time.Now(),
	}
	session.Messages = append(session.Messages, message)
	return message, nil
}

func (s *SessionStorage) Ping(ctx context.Context) error {
	return nil
}
