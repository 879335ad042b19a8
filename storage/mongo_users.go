package storage

import (
	"context"
	"errors"
	"time"

	"github.com/alex-pricope/simple-survey-system/logging"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoUserStorage struct {
	Collection *mongo.Collection
}

// Create upserts on email with $setOnInsert, so an existing user is never
// modified. The unique email index turns a racing insert into a duplicate key
// error, which is treated the same as a match.
func (s *MongoUserStorage) Create(ctx context.Context, user *User) (*User, bool, error) {
	if user.ID == "" {
		id, err := NewID()
		if err != nil {
			return nil, false, err
		}
		user.ID = id
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	res, err := s.Collection.UpdateOne(ctx,
		bson.M{"email": user.Email},
		bson.M{"$setOnInsert": user},
		options.Update().SetUpsert(true),
	)
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		logMongoFailure("USER", "upsert", err)
		return nil, false, err
	}
	if err == nil && res.UpsertedCount == 1 {
		logging.Log.Infof("USER: created user %s", user.Email)
		return user, true, nil
	}

	existing, err := s.GetByEmail(ctx, user.Email)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (s *MongoUserStorage) GetByEmail(ctx context.Context, email string) (*User, error) {
	user, err := findOne[User](ctx, s.Collection, bson.M{"email": email})
	if err != nil && !errors.Is(err, ErrItemNotFound) {
		logMongoFailure("USER", "find by email", err)
	}
	return user, err
}

func (s *MongoUserStorage) GetAll(ctx context.Context, role Role) ([]*User, error) {
	users, err := findAll[User](ctx, s.Collection, optionalFilter("role", string(role)))
	if err != nil {
		logMongoFailure("USER", "find", err)
		return nil, err
	}
	return users, nil
}

func (s *MongoUserStorage) UpdateRole(ctx context.Context, id string, role Role) error {
	err := updateExisting(ctx, s.Collection, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": role}})
	if err != nil && !errors.Is(err, ErrItemNotFound) {
		logMongoFailure("USER", "update role", err)
	}
	return err
}

func (s *MongoUserStorage) UpdateRoleByEmail(ctx context.Context, email string, role Role) error {
	err := updateExisting(ctx, s.Collection, bson.M{"email": email}, bson.M{"$set": bson.M{"role": role}})
	if err != nil && !errors.Is(err, ErrItemNotFound) {
		logMongoFailure("USER", "update role by email", err)
	}
	return err
}

func (s *MongoUserStorage) Delete(ctx context.Context, id string) error {
	res, err := s.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logMongoFailure("USER", "delete", err)
		return err
	}
	if res.DeletedCount == 0 {
		return ErrItemNotFound
	}
	logging.Log.Infof("USER: deleted user %s", id)
	return nil
}
