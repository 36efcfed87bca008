package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lifeofnimah/host-with-nimah/internal/metrics"
	"github.com/lifeofnimah/host-with-nimah/internal/model"
	"github.com/lifeofnimah/host-with-nimah/internal/recipe"
	"github.com/lifeofnimah/host-with-nimah/internal/usecase"
)

// MessageResponse is one chat turn as the frontend renders it: the raw
// text plus, for assistant turns, the recipe extraction result.
type MessageResponse struct {
	ID         string             `json:"id"`
	Role       string             `json:"role"`
	Content    string             `json:"content"`
	Timestamp  time.Time          `json:"timestamp"`
	Extraction *recipe.Extraction `json:"extraction,omitempty"`
}

type SessionResponse struct {
	SessionID string            `json:"session_id"`
	Messages  []MessageResponse `json:"messages"`
	Pending   bool              `json:"pending"`
	Draft     string            `json:"draft,omitempty"`
}

type SubmitRequest struct {
	Message string `json:"message"`
}

type SubmitResponse struct {
	Message  MessageResponse `json:"message"`
	Degraded bool            `json:"degraded,omitempty"`
}

type DraftRequest struct {
	Draft string `json:"draft"`
}

// CreateSession starts a new chat session seeded with the greeting.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.chat.StartSession(r.Context())
	if err != nil {
		h.Error(w, http.StatusInternalServerError, "failed to create session")
		return
	}
	h.JSON(w, http.StatusCreated, h.sessionResponse(session))
}

// GetSession returns the transcript with per-message extraction results.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	session, err := h.chat.GetSession(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			h.Error(w, http.StatusNotFound, "session not found")
			return
		}
		h.Error(w, http.StatusInternalServerError, "failed to load session")
		return
	}
	h.JSON(w, http.StatusOK, h.sessionResponse(session))
}

// PostMessage submits a user message and returns the assistant's turn.
func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := h.chat.Submit(r.Context(), sessionID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBlankMessage):
			h.Error(w, http.StatusBadRequest, "message must not be blank")
		case errors.Is(err, usecase.ErrSessionBusy):
			h.Error(w, http.StatusConflict, "a reply for this session is still in flight")
		case errors.Is(err, model.ErrSessionNotFound):
			h.Error(w, http.StatusNotFound, "session not found")
		default:
			metrics.ChatTurns.WithLabelValues("failed").Inc()
			h.Error(w, http.StatusBadGateway, "assistant is unavailable")
		}
		return
	}

	if result.Degraded {
		metrics.ChatTurns.WithLabelValues("degraded").Inc()
	} else {
		metrics.ChatTurns.WithLabelValues("answered").Inc()
	}

	resp := SubmitResponse{
		Message:  h.messageResponse(result.Message),
		Degraded: result.Degraded,
	}
	if ex := resp.Message.Extraction; ex != nil && ex.IsRecipe {
		metrics.RecipesExtracted.Inc()
	}
	h.JSON(w, http.StatusOK, resp)
}

// UpdateDraft stores the unsent input for a session.
func (h *Handler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	var req DraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	h.chat.UpdateDraft(sessionID, req.Draft)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.Error(w, http.StatusBadRequest, "invalid session id")
		return uuid.UUID{}, false
	}
	return sessionID, true
}

func (h *Handler) sessionResponse(session model.ChatSession) SessionResponse {
	messages := make([]MessageResponse, 0, len(session.Messages))
	for _, msg := range session.Messages {
		messages = append(messages, h.messageResponse(msg))
	}
	return SessionResponse{
		SessionID: session.SessionID.String(),
		Messages:  messages,
		Pending:   h.chat.Pending(session.SessionID),
		Draft:     h.chat.Draft(session.SessionID),
	}
}

func (h *Handler) messageResponse(msg model.Message) MessageResponse {
	resp := MessageResponse{
		ID:        msg.MessageID.String(),
		Role:      string(msg.Source),
		Content:   msg.Body,
		Timestamp: msg.SentAt,
	}
	// Extraction is derived at render time, never stored.
	if msg.Source == model.MessageSourceAssistant {
		ex := recipe.Extract(msg.Body)
		resp.Extraction = &ex
	}
	return resp
}
