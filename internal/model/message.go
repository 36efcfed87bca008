package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session does not exist")

type MessageSource string

const (
	MessageSourceUser      = MessageSource("user")
	MessageSourceAssistant = MessageSource("assistant")
)

type Message struct {
	MessageID uuid.UUID
	Source    MessageSource
	Body      string
	SentAt    time.Time
}

type ChatSession struct {
	SessionID uuid.UUID
	Messages  []Message
}

// LastMessage returns the most recent turn, or false for an empty transcript.
func (s ChatSession) LastMessage() (Message, bool) {
	if len(s.Messages) == 0 {
		return Message{}, false
	}
	return s.Messages[len(s.Messages)-1], true
}
