package schema

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"

	"jobsearch/internal/errcode"
)

func TestUserInputBuild_AppliesDefaults(t *testing.T) {
	RegisterFieldNames()

	var in UserInput
	if err := binding.JSON.BindBody([]byte(`{"name":"A","email":"a@x.com","password":"p"}`), &in); err != nil {
		t.Fatalf("bind: %v", err)
	}

	user := in.Build("hashed")
	if user.EmailVerified {
		t.Fatal("expected emailVarified default false")
	}
	if user.Skills != "" || user.Phone != "" || user.Languages != "" || user.SocialLink != "" || user.ProfilePicture != "" {
		t.Fatalf("expected empty string defaults, got %+v", user)
	}
	if user.Education == nil || len(user.Education) != 0 {
		t.Fatalf("expected empty education list, got %#v", user.Education)
	}
	if user.Experience == nil || len(user.Experience) != 0 {
		t.Fatalf("expected empty experience list, got %#v", user.Experience)
	}
	if user.PasswordHash != "hashed" {
		t.Fatalf("expected hashed password to be stored, got %q", user.PasswordHash)
	}
}

func TestUserInputBuild_KeepsExplicitValues(t *testing.T) {
	body := `{"name":"A","email":"a@x.com","password":"p","emailVarified":true,"skills":"Go",
		"education":[{"school":"MIT","year":2020}]}`

	var in UserInput
	if err := binding.JSON.BindBody([]byte(body), &in); err != nil {
		t.Fatalf("bind: %v", err)
	}

	user := in.Build("h")
	if !user.EmailVerified || user.Skills != "Go" {
		t.Fatalf("explicit values lost: %+v", user)
	}
	if len(user.Education) != 1 || user.Education[0]["school"] != "MIT" {
		t.Fatalf("unexpected education %#v", user.Education)
	}
}

func TestJobInput_MissingFieldsReported(t *testing.T) {
	RegisterFieldNames()

	var in JobInput
	err := binding.JSON.BindBody([]byte(`{"title":"Backend Engineer","desc":""}`), &in)
	if err == nil {
		t.Fatal("expected validation error")
	}

	e := BindError(err)
	if e.Kind != errcode.MissingField {
		t.Fatalf("expected MISSING_FIELD got %s", e.Kind)
	}
	got := map[string]bool{}
	for _, f := range e.Fields {
		got[f.Field] = true
	}
	for _, want := range []string{"org_name", "employer_name", "req_skills"} {
		if !got[want] {
			t.Errorf("expected field error for %s, got %+v", want, e.Fields)
		}
	}
	if got["desc"] || got["title"] {
		t.Errorf("present fields must not be reported: %+v", e.Fields)
	}
}

func TestJobInput_EmptySkillListAccepted(t *testing.T) {
	var in JobInput
	body := `{"_id":"ignored","title":"t","org_name":"o","employer_name":"e","desc":"d","req_skills":[]}`
	if err := binding.JSON.BindBody([]byte(body), &in); err != nil {
		t.Fatalf("bind: %v", err)
	}
	job := in.Build()
	if !job.ID.IsZero() {
		t.Fatal("caller supplied id must be discarded")
	}
}

func TestBindError_MalformedJSON(t *testing.T) {
	var in EmployerInput
	err := binding.JSON.BindBody([]byte(`{"e_id":`), &in)
	if err == nil {
		t.Fatal("expected decode error")
	}
	if kind := BindError(err).Kind; kind != errcode.MissingField {
		t.Fatalf("expected MISSING_FIELD got %s", kind)
	}
}

func TestApplicationInputBuild_Defaults(t *testing.T) {
	userID, jobID := "64b7f0c2e4b0a1a2b3c4d5e6", "64b7f0c2e4b0a1a2b3c4d5e7"
	now := time.Date(2024, 3, 1, 9, 30, 0, 123000000, time.FixedZone("CET", 3600))

	app := ApplicationInput{UserID: &userID, JobID: &jobID}.Build(now)

	if app.Status != DefaultApplicationStatus {
		t.Fatalf("expected status Pending got %q", app.Status)
	}
	if app.AppliedAt != "2024-03-01T08:30:00.123Z" {
		t.Fatalf("unexpected applied_at %q", app.AppliedAt)
	}
	if app.CoverLetter != nil || app.ResumeURL != nil {
		t.Fatal("optional references must stay nil")
	}
}

func TestCheckPassword(t *testing.T) {
	if err := CheckPassword("short"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	long := make([]byte, MaxPasswordBytes+1)
	for i := range long {
		long[i] = 'a'
	}
	if err := CheckPassword(string(long)); errcode.KindOf(err) != errcode.MissingField {
		t.Fatalf("expected MISSING_FIELD got %v", err)
	}
}
