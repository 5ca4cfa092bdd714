package database

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Job 表示一条职位信息。
type Job struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	OrgName      string             `bson:"org_name"`
	EmployerName string             `bson:"employer_name"`
	Desc         string             `bson:"desc"`
	ReqSkills    []string           `bson:"req_skills"`
}

// Employer 以调用方提供的 e_id 作为对外标识，_id 从不对外暴露。
type Employer struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	EID            string             `bson:"e_id"`
	Name           string             `bson:"name"`
	Email          string             `bson:"email"`
	ProfilePicture string             `bson:"profile_picture"`
	Designation    string             `bson:"designation"`
	OrgName        string             `bson:"orgname"`
	PasswordHash   string             `bson:"password"`
}

// User 表示求职者资料。
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	Email          string             `bson:"email"`
	EmailVerified  bool               `bson:"emailVarified"`
	ProfilePicture string             `bson:"profile_picture"`
	SocialLink     string             `bson:"social_link"`
	PasswordHash   string             `bson:"password"`
	Phone          string             `bson:"phone"`
	Education      []bson.M           `bson:"education"`
	Skills         string             `bson:"skills"`
	Experience     []bson.M           `bson:"experience"`
	Languages      string             `bson:"languages"`
}

// Application 关联一个 User 与一个 Job。UserID / JobID 保存调用方提交的十六进制字符串。
type Application struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"user_id"`
	JobID       string             `bson:"job_id"`
	CoverLetter *string            `bson:"cover_letter"`
	ResumeURL   *string            `bson:"resume_url"`
	Status      string             `bson:"status"`
	AppliedAt   string             `bson:"applied_at"`
}
