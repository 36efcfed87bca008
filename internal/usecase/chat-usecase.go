package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/lifeofnimah/host-with-nimah/internal/model"
	"github.com/rs/zerolog"
)

const MessageGreeting = "Jambo, darling! I am Nimah's virtual culinary muse. Whether you crave the spices of Zanzibar or modern hosting tips, I'm here. Ask me for a recipe (like a classic Pilau) or advice for your next soirée."

var (
	ErrBlankMessage = errors.New("message is blank")
	ErrSessionBusy  = errors.New("session already has a request in flight")
)

type SessionStorage interface {
	CreateSession(ctx context.Context) (model.ChatSession, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (model.ChatSession, error)
	AddMessageToSession(
		ctx context.Context,
		sessionID uuid.UUID,
		body string,
		source model.MessageSource,
	) (model.Message, error)
	Ping(ctx context.Context) error
}

// Reply is the assistant backend's answer. Degraded replies still carry
// displayable text (an offline notice or apology) so the conversation
// never breaks; Reason says why the reply is not a real answer.
type Reply struct {
	Text     string
	Degraded bool
	Reason   string
}

type Assistant interface {
	Generate(ctx context.Context, text string, history []model.Message) (Reply, error)
}

type ChatUsecaseDeps struct {
	SessionStorage SessionStorage
	Assistant      Assistant
	Logger         zerolog.Logger
}

// ChatUsecase drives one chat thread per session: append the user turn,
// call the assistant with the prior transcript, append the assistant turn.
// At most one backend call may be in flight per session.
type ChatUsecase struct {
	ChatUsecaseDeps

	mu      sync.Mutex
	pending map[uuid.UUID]struct{}
	drafts  map[uuid.UUID]string
}

func NewChatUsecase(deps ChatUsecaseDeps) *ChatUsecase {
	return &ChatUsecase{
		ChatUsecaseDeps: deps,
		pending:         make(map[uuid.UUID]struct{}),
		drafts:          make(map[uuid.UUID]string),
	}
}

// StartSession creates a session seeded with the assistant greeting.
func (c *ChatUsecase) StartSession(ctx context.Context) (model.ChatSession, error) {
	session, err := c.SessionStorage.CreateSession(ctx)
	if err != nil {
		return model.ChatSession{}, fmt.Errorf("failed to create session: %w", err)
	}
	greeting, err := c.SessionStorage.AddMessageToSession(
		ctx, session.SessionID, MessageGreeting, model.MessageSourceAssistant,
	)
	if err != nil {
		return model.ChatSession{}, fmt.Errorf("failed to seed greeting: %w", err)
	}
	session.Messages = append(session.Messages, greeting)
	return session, nil
}

func (c *ChatUsecase) GetSession(ctx context.Context, sessionID uuid.UUID) (model.ChatSession, error) {
	return c.SessionStorage.GetSession(ctx, sessionID)
}

func (c *ChatUsecase) Ping(ctx context.Context) error {
	return c.SessionStorage.Ping(ctx)
}

// SubmitResult is the settled outcome of one chat turn: the appended
// assistant message plus whether the backend degraded to fallback text.
type SubmitResult struct {
	Message  model.Message
	Degraded bool
	Reason   string
}

// Submit sends a user message and returns the assistant's turn.
//
// Blank text is rejected without touching the transcript. A submit while a
// previous call for the same session is still in flight is rejected, not
// queued; overlapping calls would interleave transcript ordering since the
// backend sees the transcript as of call time. The assistant backend is
// expected to settle to displayable text even when degraded; a hard error
// from it appends nothing and is surfaced to the caller.
func (c *ChatUsecase) Submit(ctx context.Context, sessionID uuid.UUID, text string) (SubmitResult, error) {
	if strings.TrimSpace(text) == "" {
		return SubmitResult{}, ErrBlankMessage
	}

	if !c.acquire(sessionID) {
		return SubmitResult{}, ErrSessionBusy
	}
	defer c.release(sessionID)

	session, err := c.SessionStorage.GetSession(ctx, sessionID)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("failed to get session: %w", err)
	}
	history := session.Messages

	if _, err = c.SessionStorage.AddMessageToSession(
		ctx, sessionID, text, model.MessageSourceUser,
	); err != nil {
		return SubmitResult{}, fmt.Errorf("failed to add user message: %w", err)
	}
	c.clearDraft(sessionID)

	reply, err := c.Assistant.Generate(ctx, text, history)
	if err != nil {
		c.Logger.Error().Err(err).
			Str("session_id", sessionID.String()).
			Msg("assistant backend failed")
		return SubmitResult{}, fmt.Errorf("failed to generate reply: %w", err)
	}
	if reply.Degraded {
		c.Logger.Warn().
			Str("session_id", sessionID.String()).
			Str("reason", reply.Reason).
			Msg("assistant reply degraded")
	}

	answer, err := c.SessionStorage.AddMessageToSession(
		ctx, sessionID, reply.Text, model.MessageSourceAssistant,
	)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("failed to add assistant message: %w", err)
	}
	return SubmitResult{Message: answer, Degraded: reply.Degraded, Reason: reply.Reason}, nil
}

// UpdateDraft stores the session's unsent input. Always legal.
func (c *ChatUsecase) UpdateDraft(sessionID uuid.UUID, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.drafts[sessionID] = text
}

func (c *ChatUsecase) Draft(sessionID uuid.UUID) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.drafts[sessionID]
}

// Pending reports whether a backend call is in flight for the session.
func (c *ChatUsecase) Pending(sessionID uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.pending[sessionID]
	return ok
}

func (c *ChatUsecase) acquire(sessionID uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.pending[sessionID]; ok {
		return false
	}
	c.pending[sessionID] = struct{}{}
	return true
}

func (c *ChatUsecase) release(sessionID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, sessionID)
}

func (c *ChatUsecase) clearDraft(sessionID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.drafts, sessionID)
}
