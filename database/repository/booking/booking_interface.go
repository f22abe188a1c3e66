package bookingRepo

import "tripplanner/models"

// BookingRepository archives committed bookings for audit across sessions.
type BookingRepository interface {
	Save(record *models.BookingRecord) error
	GetBySession(sessionID string) ([]models.BookingRecord, error)
	GetByUser(userID string) ([]models.BookingRecord, error)
	UpdateStatus(bookingID, status string) error
}
