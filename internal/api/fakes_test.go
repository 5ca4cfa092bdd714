package api

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"jobsearch/internal/database"
	"jobsearch/internal/store"
)

// memStore is an in-memory stand-in for *store.Store. It enforces the same
// unique keys as the MongoDB indexes.
type memStore struct {
	mu           sync.Mutex
	jobs         []database.Job
	employers    []database.Employer
	users        []database.User
	applications []database.Application
	failWith     error
}

func newMemStore() *memStore {
	return &memStore{}
}

func (m *memStore) fault(op string) error {
	if m.failWith != nil {
		return fmt.Errorf("%s: %w", op, m.failWith)
	}
	return nil
}

func (m *memStore) ListJobs(context.Context) ([]database.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fault("list jobs"); err != nil {
		return nil, err
	}
	return append([]database.Job(nil), m.jobs...), nil
}

func (m *memStore) CreateJob(_ context.Context, job *database.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fault("insert job"); err != nil {
		return err
	}
	job.ID = primitive.NewObjectID()
	m.jobs = append(m.jobs, *job)
	return nil
}

func (m *memStore) GetJob(_ context.Context, id primitive.ObjectID) (*database.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fault("get job"); err != nil {
		return nil, err
	}
	for _, j := range m.jobs {
		if j.ID == id {
			return &j, nil
		}
	}
	return nil, fmt.Errorf("get job: %w", store.ErrNotFound)
}

func (m *memStore) ListEmployers(context.Context) ([]database.Employer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]database.Employer(nil), m.employers...), nil
}

func (m *memStore) CreateEmployer(_ context.Context, employer *database.Employer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.employers {
		if e.EID == employer.EID {
			return fmt.Errorf("insert employer: %w", store.ErrDuplicateKey)
		}
	}
	employer.ID = primitive.NewObjectID()
	m.employers = append(m.employers, *employer)
	return nil
}

func (m *memStore) GetEmployerByEID(_ context.Context, eID string) (*database.Employer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.employers {
		if e.EID == eID {
			return &e, nil
		}
	}
	return nil, fmt.Errorf("get employer: %w", store.ErrNotFound)
}

func (m *memStore) ListUsers(context.Context) ([]database.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]database.User(nil), m.users...), nil
}

func (m *memStore) emailTaken(email string, except primitive.ObjectID) bool {
	for _, u := range m.users {
		if u.Email == email && u.ID != except {
			return true
		}
	}
	return false
}

func (m *memStore) CreateUser(_ context.Context, user *database.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.emailTaken(user.Email, primitive.NilObjectID) {
		return fmt.Errorf("insert user: %w", store.ErrDuplicateKey)
	}
	user.ID = primitive.NewObjectID()
	m.users = append(m.users, *user)
	return nil
}

func (m *memStore) GetUser(_ context.Context, id primitive.ObjectID) (*database.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fault("get user"); err != nil {
		return nil, err
	}
	for _, u := range m.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("get user: %w", store.ErrNotFound)
}

func (m *memStore) FindUserByEmail(_ context.Context, email string) (*database.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("find user by email: %w", store.ErrNotFound)
}

func (m *memStore) ReplaceUser(_ context.Context, id primitive.ObjectID, user *database.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.emailTaken(user.Email, id) {
		return fmt.Errorf("replace user: %w", store.ErrDuplicateKey)
	}
	for i := range m.users {
		if m.users[i].ID == id {
			user.ID = id
			m.users[i] = *user
			return nil
		}
	}
	return fmt.Errorf("replace user: %w", store.ErrNotFound)
}

func (m *memStore) PatchUser(_ context.Context, id primitive.ObjectID, set bson.M) (*database.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if email, ok := set["email"].(string); ok && m.emailTaken(email, id) {
		return nil, fmt.Errorf("patch user: %w", store.ErrDuplicateKey)
	}
	for i := range m.users {
		if m.users[i].ID != id {
			continue
		}
		u := &m.users[i]
		for key, value := range set {
			switch key {
			case "name":
				u.Name = value.(string)
			case "email":
				u.Email = value.(string)
			case "emailVarified":
				u.EmailVerified = value.(bool)
			case "profile_picture":
				u.ProfilePicture = value.(string)
			case "social_link":
				u.SocialLink = value.(string)
			case "password":
				u.PasswordHash = value.(string)
			case "phone":
				u.Phone = value.(string)
			case "education":
				u.Education = value.([]bson.M)
			case "skills":
				u.Skills = value.(string)
			case "experience":
				u.Experience = value.([]bson.M)
			case "languages":
				u.Languages = value.(string)
			}
		}
		out := *u
		return &out, nil
	}
	return nil, fmt.Errorf("patch user: %w", store.ErrNotFound)
}

func (m *memStore) Exists(_ context.Context, collection string, id primitive.ObjectID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fault("count " + collection); err != nil {
		return false, err
	}
	switch collection {
	case database.UserCollection:
		for _, u := range m.users {
			if u.ID == id {
				return true, nil
			}
		}
	case database.JobCollection:
		for _, j := range m.jobs {
			if j.ID == id {
				return true, nil
			}
		}
	}
	return false, nil
}

func (m *memStore) CreateApplication(_ context.Context, app *database.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	app.ID = primitive.NewObjectID()
	m.applications = append(m.applications, *app)
	return nil
}

func (m *memStore) GetApplication(_ context.Context, id primitive.ObjectID) (*database.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.applications {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, fmt.Errorf("get application: %w", store.ErrNotFound)
}

func (m *memStore) ListApplications(_ context.Context, userID string) ([]database.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]database.Application, 0, len(m.applications))
	for _, a := range m.applications {
		if userID == "" || a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

// raceyUserStore hides an existing email from the pre-insert lookup so the
// unique index path is exercised.
type raceyUserStore struct {
	*memStore
}

func (r raceyUserStore) FindUserByEmail(context.Context, string) (*database.User, error) {
	return nil, fmt.Errorf("find user by email: %w", store.ErrNotFound)
}

type fakeLinker struct {
	objects map[string]bool
	ttl     time.Duration
	err     error
}

func (f *fakeLinker) ObjectExists(_ context.Context, key string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.objects[key], nil
}

func (f *fakeLinker) GeneratePresignedURL(_ context.Context, key string, ttl time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.ttl = ttl
	return "http://minio.local/resumes/" + key + "?X-Amz-Signature=abc", nil
}

var errBackendDown = errors.New("server selection timeout")
