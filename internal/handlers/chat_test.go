package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeofnimah/host-with-nimah/internal/api"
	"github.com/lifeofnimah/host-with-nimah/internal/handlers"
	"github.com/lifeofnimah/host-with-nimah/internal/model"
	in_memory "github.com/lifeofnimah/host-with-nimah/internal/storage/in-memory"
	"github.com/lifeofnimah/host-with-nimah/internal/usecase"
)

type scriptedAssistant struct {
	reply usecase.Reply
}

func (s *scriptedAssistant) Generate(ctx context.Context, text string, history []model.Message) (usecase.Reply, error) {
	return s.reply, nil
}

func newTestServer(assistant usecase.Assistant) *httptest.Server {
	chat := usecase.NewChatUsecase(
		usecase.ChatUsecaseDeps{
			SessionStorage: in_memory.NewSessionStorage(),
			Assistant:      assistant,
			Logger:         zerolog.Nop(),
		},
	)
	booking := usecase.NewBookingUsecase(
		usecase.BookingUsecaseDeps{
			BookingStorage: in_memory.NewBookingStorage(),
		},
	)
	return httptest.NewServer(api.NewRouter(zerolog.Nop(), chat, booking))
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, into interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(into))
}

func createSession(t *testing.T, baseURL string) handlers.SessionResponse {
	t.Helper()
	resp := postJSON(t, baseURL+"/api/chat/session/", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var session handlers.SessionResponse
	decode(t, resp, &session)
	return session
}

func TestCreateSessionReturnsGreeting(t *testing.T) {
	srv := newTestServer(&scriptedAssistant{})
	defer srv.Close()

	session := createSession(t, srv.URL)

	require.Len(t, session.Messages, 1)
	assert.Equal(t, "assistant", session.Messages[0].Role)
	assert.Equal(t, usecase.MessageGreeting, session.Messages[0].Content)
	require.NotNil(t, session.Messages[0].Extraction)
	assert.False(t, session.Messages[0].Extraction.IsRecipe)
	assert.False(t, session.Pending)
}

func TestPostMessageReturnsRecipeExtraction(t *testing.T) {
	recipeText := "Try this:\n# Recipe: Pilau\n## Ingredients\n* Rice\n## Instructions\n1. Cook rice"
	srv := newTestServer(&scriptedAssistant{reply: usecase.Reply{Text: recipeText}})
	defer srv.Close()

	session := createSession(t, srv.URL)

	resp := postJSON(
		t,
		fmt.Sprintf("%s/api/chat/session/%s", srv.URL, session.SessionID),
		handlers.SubmitRequest{Message: "A rice dish please"},
	)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var submit handlers.SubmitResponse
	decode(t, resp, &submit)
	assert.False(t, submit.Degraded)
	require.NotNil(t, submit.Message.Extraction)
	require.True(t, submit.Message.Extraction.IsRecipe)
	assert.Equal(t, "Try this:", submit.Message.Extraction.LeadingText)
	assert.Equal(t, "Pilau", submit.Message.Extraction.Recipe.Title)
	assert.Equal(t, []string{"Rice"}, submit.Message.Extraction.Recipe.Ingredients)
}

func TestPostMessageBlankIsRejected(t *testing.T) {
	srv := newTestServer(&scriptedAssistant{})
	defer srv.Close()

	session := createSession(t, srv.URL)

	resp := postJSON(
		t,
		fmt.Sprintf("%s/api/chat/session/%s", srv.URL, session.SessionID),
		handlers.SubmitRequest{Message: "   "},
	)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPostMessageUnknownSession(t *testing.T) {
	srv := newTestServer(&scriptedAssistant{})
	defer srv.Close()

	resp := postJSON(
		t,
		srv.URL+"/api/chat/session/00000000-0000-0000-0000-000000000000",
		handlers.SubmitRequest{Message: "hello"},
	)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDegradedReplyIsMarked(t *testing.T) {
	srv := newTestServer(
		&scriptedAssistant{
			reply: usecase.Reply{
				Text:     usecase.MessageApologetic,
				Degraded: true,
				Reason:   usecase.ReasonTransportError,
			},
		},
	)
	defer srv.Close()

	session := createSession(t, srv.URL)

	resp := postJSON(
		t,
		fmt.Sprintf("%s/api/chat/session/%s", srv.URL, session.SessionID),
		handlers.SubmitRequest{Message: "hello"},
	)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var submit handlers.SubmitResponse
	decode(t, resp, &submit)
	assert.True(t, submit.Degraded)
	assert.Equal(t, usecase.MessageApologetic, submit.Message.Content)
}

func TestDraftRoundTrip(t *testing.T) {
	srv := newTestServer(&scriptedAssistant{})
	defer srv.Close()

	session := createSession(t, srv.URL)

	payload, err := json.Marshal(handlers.DraftRequest{Draft: "wine pairing for"})
	require.NoError(t, err)
	req, err := http.NewRequest(
		http.MethodPut,
		fmt.Sprintf("%s/api/chat/session/%s/draft", srv.URL, session.SessionID),
		bytes.NewReader(payload),
	)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	getResp, err := http.Get(fmt.Sprintf("%s/api/chat/session/%s", srv.URL, session.SessionID))
	require.NoError(t, err)
	var got handlers.SessionResponse
	decode(t, getResp, &got)
	assert.Equal(t, "wine pairing for", got.Draft)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(&scriptedAssistant{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	var health handlers.HealthResponse
	decode(t, resp, &health)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "pass", health.Checks["sessions"].Status)
	assert.Equal(t, "pass", health.Checks["bookings"].Status)
}
