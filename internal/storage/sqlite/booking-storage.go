package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/lifeofnimah/host-with-nimah/internal/model"
	_ "github.com/mattn/go-sqlite3"
)

// BookingStorage persists booking requests in a local SQLite database.
type BookingStorage struct {
	db *sql.DB
}

// NewBookingStorage opens (and initializes) the database at dbPath.
// If dbPath is empty, defaults to "./data/bookings.db".
func NewBookingStorage(ctx context.Context, dbPath string) (*BookingStorage, error) {
	if dbPath == "" {
		dbPath = "./data/bookings.db"
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	storage := &BookingStorage{db: db}
	if err := storage.initSchema(ctx); err != nil {
		return nil, err
	}
	return storage, nil
}

func (b *BookingStorage) initSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS bookings (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		date DATETIME NOT NULL,
		guest_count INTEGER NOT NULL,
		occasion TEXT DEFAULT '',
		allergies TEXT DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_bookings_date ON bookings(date);
	`
	_, err := b.db.ExecContext(ctx, schema)
	return err
}

func (b *BookingStorage) SaveBooking(ctx context.Context, booking model.Booking) error {
	_, err := b.db.ExecContext(
		ctx,
		`INSERT INTO bookings (id, name, email, date, guest_count, occasion, allergies, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		booking.BookingID.String(),
		booking.Name,
		booking.Email,
		booking.Date.Format(time.RFC3339),
		booking.GuestCount,
		booking.Occasion,
		booking.Allergies,
		booking.CreatedAt.Format(time.RFC3339),
	)
	return err
}

func (b *BookingStorage) ListBookings(ctx context.Context) ([]model.Booking, error) {
	rows, err := b.db.QueryContext(
		ctx,
		`SELECT id, name, email, date, guest_count, occasion, allergies, created_at
		 FROM bookings ORDER BY date ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []model.Booking
	for rows.Next() {
		var booking model.Booking
		var id, date, created string
		if err := rows.Scan(
			&id, &booking.Name, &booking.Email, &date,
			&booking.GuestCount, &booking.Occasion, &booking.Allergies, &created,
		); err != nil {
			return nil, err
		}
		if booking.BookingID, err = uuid.Parse(id); err != nil {
			return nil, err
		}
		if booking.Date, err = time.Parse(time.RFC3339, date); err != nil {
			return nil, err
		}
		if booking.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}

func (b *BookingStorage) Ping(ctx context.Context) error {
	return b.db.PingContext(ctx)
}

func (b *BookingStorage) Close() error {
	return b.db.Close()
}
