package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"jobsearch/internal/database"
)

func (s *Store) ListJobs(ctx context.Context) ([]database.Job, error) {
	jobs, err := findAll[database.Job](ctx, s.db.Collection(database.JobCollection), bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

// CreateJob inserts job and sets job.ID to the assigned identifier.
func (s *Store) CreateJob(ctx context.Context, job *database.Job) error {
	job.ID = primitive.NilObjectID
	id, err := insert(ctx, s.db.Collection(database.JobCollection), job)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	job.ID = id
	return nil
}

func (s *Store) GetJob(ctx context.Context, id primitive.ObjectID) (*database.Job, error) {
	job, err := findOne[database.Job](ctx, s.db.Collection(database.JobCollection), bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	return job, nil
}
