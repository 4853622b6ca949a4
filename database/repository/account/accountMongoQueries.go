// File: database/repository/account/accountMongoQueries.go
package accountRepo

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

// FindByEmail retrieves an account by role and email.
func (r *MongoAccountRepo) FindByEmail(ctx context.Context, role models.Role, email string) (*models.Account, error) {
	filter := bson.M{"role": role, "email": models.NormalizeEmail(email)}
	return r.findOne(ctx, filter)
}

// FindByID retrieves an account by role and id.
func (r *MongoAccountRepo) FindByID(ctx context.Context, role models.Role, id string) (*models.Account, error) {
	return r.findOne(ctx, bson.M{"role": role, "id": id})
}

func (r *MongoAccountRepo) findOne(ctx context.Context, filter bson.M) (*models.Account, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var account models.Account
	if err := r.coll.FindOne(ctx, filter).Decode(&account); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	return &account, nil
}

// ListApprovedProviders retrieves providers visible to users, excluding credentials.
func (r *MongoAccountRepo) ListApprovedProviders(ctx context.Context) ([]models.Account, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"role": models.RoleProvider, "isApproved": true, "isBlocked": false}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetProjection(bson.M{"passwordHash": 0})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve providers: %w", err)
	}
	defer cursor.Close(ctx)

	providers := []models.Account{}
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, fmt.Errorf("failed to decode providers: %w", err)
	}
	return providers, nil
}
