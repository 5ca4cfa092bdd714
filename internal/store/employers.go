package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jobsearch/internal/database"
)

var withoutID = bson.M{"_id": 0}

func (s *Store) ListEmployers(ctx context.Context) ([]database.Employer, error) {
	employers, err := findAll[database.Employer](ctx, s.db.Collection(database.EmployerCollection), bson.M{},
		options.Find().SetProjection(withoutID))
	if err != nil {
		return nil, fmt.Errorf("list employers: %w", err)
	}
	return employers, nil
}

// CreateEmployer inserts employer. A taken e_id yields ErrDuplicateKey via the unique index.
func (s *Store) CreateEmployer(ctx context.Context, employer *database.Employer) error {
	employer.ID = primitive.NilObjectID
	if _, err := insert(ctx, s.db.Collection(database.EmployerCollection), employer); err != nil {
		return fmt.Errorf("insert employer: %w", err)
	}
	// _id 不对外暴露
	employer.ID = primitive.NilObjectID
	return nil
}

// GetEmployerByEID looks an employer up by its caller-supplied e_id.
func (s *Store) GetEmployerByEID(ctx context.Context, eID string) (*database.Employer, error) {
	employer, err := findOne[database.Employer](ctx, s.db.Collection(database.EmployerCollection), bson.M{"e_id": eID},
		options.FindOne().SetProjection(withoutID))
	if err != nil {
		return nil, fmt.Errorf("get employer: %w", err)
	}
	return employer, nil
}
