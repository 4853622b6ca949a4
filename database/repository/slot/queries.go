package slotRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookwise/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoSlotRepo) ListDays(ctx context.Context, providerID, fromDate string) ([]models.SlotDay, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"providerId": providerID}
	if fromDate != "" {
		// Dates are YYYY-MM-DD, so string order is calendar order.
		filter["date"] = bson.M{"$gte": fromDate}
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.days.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query slot days: %w", err)
	}
	defer cursor.Close(ctx)

	days := []models.SlotDay{}
	if err := cursor.All(ctx, &days); err != nil {
		return nil, fmt.Errorf("failed to decode slot days: %w", err)
	}
	return days, nil
}

func (r *MongoSlotRepo) GetDay(ctx context.Context, providerID, date string) (*models.SlotDay, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var day models.SlotDay
	err := r.days.FindOne(ctx, bson.M{"providerId": providerID, "date": date}).Decode(&day)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch slot day: %w", err)
	}
	return &day, nil
}

func (r *MongoSlotRepo) FindEntry(ctx context.Context, providerID, date, entryID string) (*models.ScheduleEntry, error) {
	day, err := r.GetDay(ctx, providerID, date)
	if err != nil || day == nil {
		return nil, err
	}
	for i := range day.Schedule {
		if day.Schedule[i].ID == entryID {
			entry := day.Schedule[i]
			return &entry, nil
		}
	}
	return nil, nil
}

func (r *MongoSlotRepo) ListBookingsByUser(ctx context.Context, userID string, skip, limit int64) ([]models.Booking, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"userId": userID}
	total, err := r.bookings.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)
	cursor, err := r.bookings.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, 0, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, total, nil
}
