// File: database/repository/booking/booking_mongo.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"tripplanner/config"
	"tripplanner/database"
	"tripplanner/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository backed by MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

func NewMongoBookingRepo() *MongoBookingRepo {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("bookings")
	return &MongoBookingRepo{coll: coll}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

// Save inserts a booking archive record.
func (r *MongoBookingRepo) Save(record *models.BookingRecord) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now
	if record.Status == "" {
		record.Status = models.BookingStatusConfirmed
	}

	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to save booking %s: %w", record.BookingID, err)
	}
	return nil
}

// GetBySession returns all archived bookings of a session, newest first.
func (r *MongoBookingRepo) GetBySession(sessionID string) ([]models.BookingRecord, error) {
	return r.find(bson.M{"session_id": sessionID})
}

// GetByUser returns all archived bookings of a user across sessions.
func (r *MongoBookingRepo) GetByUser(userID string) ([]models.BookingRecord, error) {
	return r.find(bson.M{"user_id": userID})
}

func (r *MongoBookingRepo) find(filter bson.M) ([]models.BookingRecord, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.BookingRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return records, nil
}

// UpdateStatus transitions an archived booking (e.g. to cancelled).
func (r *MongoBookingRepo) UpdateStatus(bookingID, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"booking_id": bookingID}, update)
	if err != nil {
		return fmt.Errorf("failed to update booking %s: %w", bookingID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking %s not found", bookingID)
	}
	return nil
}
