// Package schema defines the accepted request shapes for each record kind,
// the defaults applied to optional fields, and the User merge-patch rules.
//
// Required fields are pointers so that an omitted field is distinguished from
// an explicit empty value: omission fails binding, "" is accepted.
package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"jobsearch/internal/database"
	"jobsearch/internal/errcode"
)

// DefaultApplicationStatus is assigned when the caller does not send a status.
const DefaultApplicationStatus = "Pending"

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// CheckPassword rejects passwords bcrypt cannot hash. The binding tag counts
// characters, this counts bytes.
func CheckPassword(password string) error {
	if len(password) > MaxPasswordBytes {
		return errcode.Fields("Validation failed", []errcode.FieldError{
			{Field: "password", Error: "must not exceed 72 bytes"},
		})
	}
	return nil
}

// JobInput is the body of POST /job. A caller supplied _id is ignored.
type JobInput struct {
	Title        *string  `json:"title" binding:"required"`
	OrgName      *string  `json:"org_name" binding:"required"`
	EmployerName *string  `json:"employer_name" binding:"required"`
	Desc         *string  `json:"desc" binding:"required"`
	ReqSkills    []string `json:"req_skills" binding:"required"`
}

func (in JobInput) Build() database.Job {
	return database.Job{
		Title:        *in.Title,
		OrgName:      *in.OrgName,
		EmployerName: *in.EmployerName,
		Desc:         *in.Desc,
		ReqSkills:    in.ReqSkills,
	}
}

// EmployerInput is the body of POST /employer. Every field is required.
type EmployerInput struct {
	EID            *string `json:"e_id" binding:"required"`
	Name           *string `json:"name" binding:"required"`
	Email          *string `json:"email" binding:"required"`
	ProfilePicture *string `json:"profile_picture" binding:"required"`
	Designation    *string `json:"designation" binding:"required"`
	OrgName        *string `json:"orgname" binding:"required"`
	Password       *string `json:"password" binding:"required,max=72"`
}

// Build assembles the stored record; passwordHash replaces the plaintext password.
func (in EmployerInput) Build(passwordHash string) database.Employer {
	return database.Employer{
		EID:            *in.EID,
		Name:           *in.Name,
		Email:          *in.Email,
		ProfilePicture: *in.ProfilePicture,
		Designation:    *in.Designation,
		OrgName:        *in.OrgName,
		PasswordHash:   passwordHash,
	}
}

// UserDefaults holds the values given to optional User fields the caller omits.
type UserDefaults struct {
	EmailVerified  bool
	ProfilePicture string
	SocialLink     string
	Phone          string
	Skills         string
	Languages      string
}

// DefaultUser is applied by UserInput.Build.
var DefaultUser = UserDefaults{}

// UserInput is the body of POST /user and PUT /user/{id}.
type UserInput struct {
	Name           *string  `json:"name" binding:"required"`
	Email          *string  `json:"email" binding:"required"`
	EmailVerified  *bool    `json:"emailVarified"`
	ProfilePicture *string  `json:"profile_picture"`
	SocialLink     *string  `json:"social_link"`
	Password       *string  `json:"password" binding:"required,max=72"`
	Phone          *string  `json:"phone"`
	Education      []bson.M `json:"education"`
	Skills         *string  `json:"skills"`
	Experience     []bson.M `json:"experience"`
	Languages      *string  `json:"languages"`
}

// Build assembles the stored record with defaults filled in.
func (in UserInput) Build(passwordHash string) database.User {
	d := DefaultUser
	user := database.User{
		Name:           *in.Name,
		Email:          *in.Email,
		EmailVerified:  valueOr(in.EmailVerified, d.EmailVerified),
		ProfilePicture: valueOr(in.ProfilePicture, d.ProfilePicture),
		SocialLink:     valueOr(in.SocialLink, d.SocialLink),
		PasswordHash:   passwordHash,
		Phone:          valueOr(in.Phone, d.Phone),
		Education:      in.Education,
		Skills:         valueOr(in.Skills, d.Skills),
		Experience:     in.Experience,
		Languages:      valueOr(in.Languages, d.Languages),
	}
	if user.Education == nil {
		user.Education = []bson.M{}
	}
	if user.Experience == nil {
		user.Experience = []bson.M{}
	}
	return user
}

// ApplicationInput is the body of POST /application.
type ApplicationInput struct {
	UserID      *string `json:"user_id" binding:"required"`
	JobID       *string `json:"job_id" binding:"required"`
	CoverLetter *string `json:"cover_letter"`
	ResumeURL   *string `json:"resume_url"`
	Status      *string `json:"status"`
	AppliedAt   *string `json:"applied_at"`
}

// Build assembles the stored record. now supplies the applied_at default.
func (in ApplicationInput) Build(now time.Time) database.Application {
	return database.Application{
		UserID:      *in.UserID,
		JobID:       *in.JobID,
		CoverLetter: in.CoverLetter,
		ResumeURL:   in.ResumeURL,
		Status:      valueOr(in.Status, DefaultApplicationStatus),
		AppliedAt:   valueOr(in.AppliedAt, now.UTC().Format(time.RFC3339Nano)),
	}
}

func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
