// File: database/repository/account/accountMongoCrud.go
package accountRepo

import (
	"context"
	"fmt"
	"time"

	"bookwise/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new account document.
func (r *MongoAccountRepo) Create(ctx context.Context, account *models.Account) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	account.Email = models.NormalizeEmail(account.Email)
	account.CreatedAt = now
	account.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, account); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateAccount
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// SetApproval updates the isApproved flag of a provider.
func (r *MongoAccountRepo) SetApproval(ctx context.Context, providerID string, approved bool) (bool, error) {
	filter := bson.M{"id": providerID, "role": models.RoleProvider}
	return r.updateFlags(ctx, filter, bson.M{"isApproved": approved})
}

// SetBlocked updates the isBlocked flag of any account.
func (r *MongoAccountRepo) SetBlocked(ctx context.Context, role models.Role, id string, blocked bool) (bool, error) {
	filter := bson.M{"id": id, "role": role}
	return r.updateFlags(ctx, filter, bson.M{"isBlocked": blocked})
}

func (r *MongoAccountRepo) updateFlags(ctx context.Context, filter bson.M, set bson.M) (bool, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	set["updatedAt"] = time.Now().UTC()
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return false, fmt.Errorf("failed to update account %v: %w", filter["id"], err)
	}
	return result.MatchedCount > 0, nil
}
