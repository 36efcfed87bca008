package model

import (
	"time"

	"github.com/google/uuid"
)

type BookingRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Date       string `json:"date"`
	GuestCount int    `json:"guest_count"`
	Occasion   string `json:"occasion"`
	Allergies  string `json:"allergies"`
}

type Booking struct {
	BookingID  uuid.UUID
	Name       string
	Email      string
	Date       time.Time
	GuestCount int
	Occasion   string
	Allergies  string
	CreatedAt  time.Time
}
