package api

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"jobsearch/internal/database"
)

// 各 Handler 依赖的存储接口，*store.Store 实现全部接口。

type JobStore interface {
	ListJobs(ctx context.Context) ([]database.Job, error)
	CreateJob(ctx context.Context, job *database.Job) error
	GetJob(ctx context.Context, id primitive.ObjectID) (*database.Job, error)
}

type EmployerStore interface {
	ListEmployers(ctx context.Context) ([]database.Employer, error)
	CreateEmployer(ctx context.Context, employer *database.Employer) error
	GetEmployerByEID(ctx context.Context, eID string) (*database.Employer, error)
}

type UserStore interface {
	ListUsers(ctx context.Context) ([]database.User, error)
	CreateUser(ctx context.Context, user *database.User) error
	GetUser(ctx context.Context, id primitive.ObjectID) (*database.User, error)
	FindUserByEmail(ctx context.Context, email string) (*database.User, error)
	ReplaceUser(ctx context.Context, id primitive.ObjectID, user *database.User) error
	PatchUser(ctx context.Context, id primitive.ObjectID, set bson.M) (*database.User, error)
}

type ApplicationStore interface {
	Exists(ctx context.Context, collection string, id primitive.ObjectID) (bool, error)
	CreateApplication(ctx context.Context, app *database.Application) error
	GetApplication(ctx context.Context, id primitive.ObjectID) (*database.Application, error)
	ListApplications(ctx context.Context, userID string) ([]database.Application, error)
}

// ResumeLinker issues download links for resume objects; *storage.Client implements it.
type ResumeLinker interface {
	ObjectExists(ctx context.Context, objectKey string) (bool, error)
	GeneratePresignedURL(ctx context.Context, objectKey string, duration time.Duration) (string, error)
}
