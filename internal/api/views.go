package api

import (
	"go.mongodb.org/mongo-driver/bson"

	"jobsearch/internal/database"
	"jobsearch/internal/ident"
)

type jobResponse struct {
	ID           string   `json:"_id"`
	Title        string   `json:"title"`
	OrgName      string   `json:"org_name"`
	EmployerName string   `json:"employer_name"`
	Desc         string   `json:"desc"`
	ReqSkills    []string `json:"req_skills"`
}

func newJobResponse(job database.Job) jobResponse {
	skills := job.ReqSkills
	if skills == nil {
		skills = []string{}
	}
	return jobResponse{
		ID:           ident.Encode(job.ID),
		Title:        job.Title,
		OrgName:      job.OrgName,
		EmployerName: job.EmployerName,
		Desc:         job.Desc,
		ReqSkills:    skills,
	}
}

// employerResponse 不包含 _id 与密码。
type employerResponse struct {
	EID            string `json:"e_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profile_picture"`
	Designation    string `json:"designation"`
	OrgName        string `json:"orgname"`
}

func newEmployerResponse(e database.Employer) employerResponse {
	return employerResponse{
		EID:            e.EID,
		Name:           e.Name,
		Email:          e.Email,
		ProfilePicture: e.ProfilePicture,
		Designation:    e.Designation,
		OrgName:        e.OrgName,
	}
}

// userResponse omits the password hash.
type userResponse struct {
	ID             string   `json:"_id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	EmailVerified  bool     `json:"emailVarified"`
	ProfilePicture string   `json:"profile_picture"`
	SocialLink     string   `json:"social_link"`
	Phone          string   `json:"phone"`
	Education      []bson.M `json:"education"`
	Skills         string   `json:"skills"`
	Experience     []bson.M `json:"experience"`
	Languages      string   `json:"languages"`
}

func newUserResponse(u database.User) userResponse {
	resp := userResponse{
		ID:             ident.Encode(u.ID),
		Name:           u.Name,
		Email:          u.Email,
		EmailVerified:  u.EmailVerified,
		ProfilePicture: u.ProfilePicture,
		SocialLink:     u.SocialLink,
		Phone:          u.Phone,
		Education:      u.Education,
		Skills:         u.Skills,
		Experience:     u.Experience,
		Languages:      u.Languages,
	}
	if resp.Education == nil {
		resp.Education = []bson.M{}
	}
	if resp.Experience == nil {
		resp.Experience = []bson.M{}
	}
	return resp
}

type applicationResponse struct {
	ID          string  `json:"_id"`
	UserID      string  `json:"user_id"`
	JobID       string  `json:"job_id"`
	CoverLetter *string `json:"cover_letter"`
	ResumeURL   *string `json:"resume_url"`
	Status      string  `json:"status"`
	AppliedAt   string  `json:"applied_at"`
}

func newApplicationResponse(a database.Application) applicationResponse {
	return applicationResponse{
		ID:          ident.Encode(a.ID),
		UserID:      a.UserID,
		JobID:       a.JobID,
		CoverLetter: a.CoverLetter,
		ResumeURL:   a.ResumeURL,
		Status:      a.Status,
		AppliedAt:   a.AppliedAt,
	}
}

func mapSlice[T, R any](in []T, f func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}
