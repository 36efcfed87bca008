package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeofnimah/host-with-nimah/internal/handlers"
	"github.com/lifeofnimah/host-with-nimah/internal/model"
)

func TestCreateBooking(t *testing.T) {
	srv := newTestServer(&scriptedAssistant{})
	defer srv.Close()

	resp := postJSON(
		t, srv.URL+"/api/bookings", model.BookingRequest{
			Name:       "Asha",
			Email:      "asha@example.com",
			Date:       time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
			GuestCount: 4,
			Occasion:   "Brunch",
		},
	)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var booking handlers.BookingResponse
	decode(t, resp, &booking)
	assert.NotEmpty(t, booking.BookingID)
	assert.Equal(t, "received", booking.Status)
}

func TestCreateBookingValidationFailure(t *testing.T) {
	srv := newTestServer(&scriptedAssistant{})
	defer srv.Close()

	resp := postJSON(
		t, srv.URL+"/api/bookings", model.BookingRequest{
			Name:  "",
			Email: "not-an-email",
			Date:  "2001-01-01",
		},
	)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	decode(t, resp, &body)
	assert.Equal(t, "validation failed", body.Error)
	assert.Contains(t, body.Fields, "name")
	assert.Contains(t, body.Fields, "email")
	assert.Contains(t, body.Fields, "date")
	assert.Contains(t, body.Fields, "guest_count")
}

func TestListRecipes(t *testing.T) {
	srv := newTestServer(&scriptedAssistant{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/recipes")
	require.NoError(t, err)

	var body struct {
		Recipes []model.Recipe `json:"recipes"`
	}
	decode(t, resp, &body)
	require.Len(t, body.Recipes, 3)
	assert.Equal(t, "Zanzibar Pilau", body.Recipes[0].Title)
	assert.NotEmpty(t, body.Recipes[0].Image)
}
