package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jobsearch/internal/database"
)

func (s *Store) ListUsers(ctx context.Context) ([]database.User, error) {
	users, err := findAll[database.User](ctx, s.db.Collection(database.UserCollection), bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// CreateUser inserts user and sets user.ID. A taken email yields ErrDuplicateKey.
func (s *Store) CreateUser(ctx context.Context, user *database.User) error {
	user.ID = primitive.NilObjectID
	id, err := insert(ctx, s.db.Collection(database.UserCollection), user)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	user.ID = id
	return nil
}

func (s *Store) GetUser(ctx context.Context, id primitive.ObjectID) (*database.User, error) {
	user, err := findOne[database.User](ctx, s.db.Collection(database.UserCollection), bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*database.User, error) {
	user, err := findOne[database.User](ctx, s.db.Collection(database.UserCollection), bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return user, nil
}

// ReplaceUser overwrites every field of the stored user except _id.
func (s *Store) ReplaceUser(ctx context.Context, id primitive.ObjectID, user *database.User) error {
	user.ID = id
	res, err := s.db.Collection(database.UserCollection).ReplaceOne(ctx, bson.M{"_id": id}, user)
	if err != nil {
		return fmt.Errorf("replace user: %w", translate(err))
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("replace user: %w", ErrNotFound)
	}
	return nil
}

// PatchUser applies set as a merge patch and returns the updated document.
// An empty patch returns the stored document unchanged.
func (s *Store) PatchUser(ctx context.Context, id primitive.ObjectID, set bson.M) (*database.User, error) {
	if len(set) == 0 {
		return s.GetUser(ctx, id)
	}

	var user database.User
	err := s.db.Collection(database.UserCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		return nil, fmt.Errorf("patch user: %w", translate(err))
	}
	return &user, nil
}
