package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"jobsearch/internal/database"
)

// CreateApplication inserts app and sets app.ID. Reference checks are the caller's job.
func (s *Store) CreateApplication(ctx context.Context, app *database.Application) error {
	app.ID = primitive.NilObjectID
	id, err := insert(ctx, s.db.Collection(database.ApplicationCollection), app)
	if err != nil {
		return fmt.Errorf("insert application: %w", err)
	}
	app.ID = id
	return nil
}

func (s *Store) GetApplication(ctx context.Context, id primitive.ObjectID) (*database.Application, error) {
	app, err := findOne[database.Application](ctx, s.db.Collection(database.ApplicationCollection), bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}
	return app, nil
}

// ListApplications returns every application, or only those whose user_id
// equals userID when it is non-empty.
func (s *Store) ListApplications(ctx context.Context, userID string) ([]database.Application, error) {
	filter := bson.M{}
	if userID != "" {
		filter["user_id"] = userID
	}
	apps, err := findAll[database.Application](ctx, s.db.Collection(database.ApplicationCollection), filter)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}
