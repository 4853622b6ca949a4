package slotRepo

import (
	"context"
	"fmt"
	"time"

	"bookwise/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConditionalBook is the only write that moves an entry to booked. The filter
// and the array filter both require status free, so two concurrent callers
// cannot both match the same entry.
func (r *MongoSlotRepo) ConditionalBook(ctx context.Context, providerID, date, entryID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"providerId": providerID,
		"date":       date,
		"schedule": bson.M{"$elemMatch": bson.M{
			"id":     entryID,
			"status": models.EntryFree,
		}},
	}
	update := bson.M{
		"$set": bson.M{
			"schedule.$[e].status": models.EntryBooked,
			"updatedAt":            time.Now().UTC(),
		},
	}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"e.id": entryID, "e.status": models.EntryFree}},
	})

	res, err := r.days.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return false, fmt.Errorf("failed to book entry %s on %s: %w", entryID, date, err)
	}
	return res.MatchedCount > 0, nil
}

// AppendEntries pushes entries onto the day's schedule, creating the day on first publish.
func (r *MongoSlotRepo) AppendEntries(ctx context.Context, providerID, date string, entries []models.ScheduleEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	filter := bson.M{"providerId": providerID, "date": date}
	update := bson.M{
		"$push":        bson.M{"schedule": bson.M{"$each": entries}},
		"$set":         bson.M{"updatedAt": now},
		"$setOnInsert": bson.M{"createdAt": now},
	}

	if _, err := r.days.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("failed to publish entries for %s: %w", date, err)
	}
	return nil
}

// CreateBookingRecord inserts the booking written after a successful transition.
func (r *MongoSlotRepo) CreateBookingRecord(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}
	if _, err := r.bookings.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to insert booking record: %w", err)
	}
	return nil
}
