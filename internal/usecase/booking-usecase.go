package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lifeofnimah/host-with-nimah/internal/model"
)

// emailPattern validates email addresses per RFC 5322 (simplified).
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidationErrors maps field names to human-readable problems.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	return fmt.Sprintf("invalid booking request: %s", strings.Join(fields, ", "))
}

type BookingStorage interface {
	SaveBooking(ctx context.Context, booking model.Booking) error
	ListBookings(ctx context.Context) ([]model.Booking, error)
	Ping(ctx context.Context) error
}

type BookingUsecaseDeps struct {
	BookingStorage BookingStorage
}

type BookingUsecase struct {
	BookingUsecaseDeps

	now func() time.Time
}

func NewBookingUsecase(deps BookingUsecaseDeps) *BookingUsecase {
	return &BookingUsecase{
		BookingUsecaseDeps: deps,
		now:                time.Now,
	}
}

// SubmitBooking validates and persists a booking request. Validation
// failures come back as ValidationErrors keyed by field name.
func (b *BookingUsecase) SubmitBooking(ctx context.Context, req model.BookingRequest) (model.Booking, error) {
	date, verrs := b.validate(req)
	if len(verrs) > 0 {
		return model.Booking{}, verrs
	}

	booking := model.Booking{
		BookingID:  uuid.New(),
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.TrimSpace(req.Email),
		Date:       date,
		GuestCount: req.GuestCount,
		Occasion:   strings.TrimSpace(req.Occasion),
		Allergies:  strings.TrimSpace(req.Allergies),
		CreatedAt:  b.now(),
	}
	if err := b.BookingStorage.SaveBooking(ctx, booking); err != nil {
		return model.Booking{}, fmt.Errorf("failed to save booking: %w", err)
	}
	return booking, nil
}

func (b *BookingUsecase) ListBookings(ctx context.Context) ([]model.Booking, error) {
	return b.BookingStorage.ListBookings(ctx)
}

func (b *BookingUsecase) Ping(ctx context.Context) error {
	return b.BookingStorage.Ping(ctx)
}

func (b *BookingUsecase) validate(req model.BookingRequest) (time.Time, ValidationErrors) {
	verrs := make(ValidationErrors)

	if strings.TrimSpace(req.Name) == "" {
		verrs["name"] = "Name is required."
	}
	if strings.TrimSpace(req.Email) == "" {
		verrs["email"] = "Email is required."
	} else if !emailPattern.MatchString(strings.TrimSpace(req.Email)) {
		verrs["email"] = "Email address is not valid."
	}
	if req.GuestCount < 1 {
		verrs["guest_count"] = "Guest count must be a positive whole number."
	}

	var date time.Time
	if req.Date == "" {
		verrs["date"] = "Please select a date."
	} else {
		parsed, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
		if err != nil {
			verrs["date"] = "Date must be in YYYY-MM-DD format."
		} else {
			today := b.now()
			today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local)
			if parsed.Before(today) {
				verrs["date"] = "Date cannot be in the past."
			}
			date = parsed
		}
	}

	return date, verrs
}
