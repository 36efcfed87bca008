package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeofnimah/host-with-nimah/internal/model"
)

func TestBookingStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	storage, err := NewBookingStorage(ctx, filepath.Join(t.TempDir(), "bookings.db"))
	require.NoError(t, err)
	defer storage.Close()

	require.NoError(t, storage.Ping(ctx))

	first := model.Booking{
		BookingID:  uuid.New(),
		Name:       "Asha",
		Email:      "asha@example.com",
		Date:       time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC),
		GuestCount: 6,
		Occasion:   "Dinner party",
		Allergies:  "Peanuts",
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
	}
	second := model.Booking{
		BookingID:  uuid.New(),
		Name:       "Juma",
		Email:      "juma@example.com",
		Date:       time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC),
		GuestCount: 2,
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, storage.SaveBooking(ctx, first))
	require.NoError(t, storage.SaveBooking(ctx, second))

	bookings, err := storage.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	// ordered by event date
	assert.Equal(t, second.BookingID, bookings[0].BookingID)
	assert.Equal(t, first.BookingID, bookings[1].BookingID)
	assert.Equal(t, "Peanuts", bookings[1].Allergies)
	assert.True(t, first.Date.Equal(bookings[1].Date))
}
