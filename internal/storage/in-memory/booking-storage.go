package in_memory

import (
	"context"
	"sync"

	"github.com/lifeofnimah/host-with-nimah/internal/model"
)

type BookingStorage struct {
	mu       sync.RWMutex
	bookings []model.Booking
}

func NewBookingStorage() *BookingStorage {
	return &BookingStorage{
		bookings: make([]model.Booking, 0),
	}
}

func (b *BookingStorage) SaveBooking(ctx context.Context, booking model.Booking) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bookings = append(b.bookings, booking)
	return nil
}

func (b *BookingStorage) ListBookings(ctx context.Context) ([]model.Booking, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]model.Booking(nil), b.bookings...), nil
}

func (b *BookingStorage) Ping(ctx context.Context) error {
	return nil
}
