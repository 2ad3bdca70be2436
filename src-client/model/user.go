package model

import "fmt"

type Role string

const (
	RoleStudent   Role = "student"
	RoleFaculty   Role = "faculty"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
	RoleJudge     Role = "judge"
)

var Roles = []Role{
	RoleStudent,
	RoleFaculty,
	RoleRecruiter,
	RoleAdmin,
	RoleJudge,
}

func ParseRole(s string) (Role, error) {
	for _, role := range Roles {
		if string(role) == s {
			return role, nil
		}
	}
	return "", fmt.Errorf("ParseRole: unknown role %q", s)
}

type Skill struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	SkillName string `json:"skill_name"`
}

type Resume struct {
	ID               int64     `json:"id"`
	FilePath         string    `json:"file_path"`
	FileNameOriginal string    `json:"file_name_original"`
	UploadedAt       Timestamp `json:"uploaded_at"`
	IsActive         bool      `json:"is_active"`
}

// ResumeDetail is a resume listed with its owner, as admins see it.
type ResumeDetail struct {
	Resume
	UserID  int64 `json:"user_id,omitempty"`
	Student User  `json:"student"`
}

type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	IsActive bool   `json:"is_active"`

	Major          *string `json:"major,omitempty"`
	GraduationYear *int    `json:"graduation_year,omitempty"`
	Headline       *string `json:"headline,omitempty"`
	Interests      *string `json:"interests,omitempty"`
	LinkedinURL    *string `json:"linkedin_url,omitempty"`

	Skills  []Skill  `json:"skills,omitempty"`
	Resumes []Resume `json:"resumes,omitempty"`
}

// PUT /student/profile/ body, nil fields are left untouched
type ProfileUpdate struct {
	Name           *string `json:"name,omitempty"`
	Major          *string `json:"major,omitempty"`
	GraduationYear *int    `json:"graduation_year,omitempty"`
	Headline       *string `json:"headline,omitempty"`
	Interests      *string `json:"interests,omitempty"`
	LinkedinURL    *string `json:"linkedin_url,omitempty"`
}

// POST /auth/register body
type SignupInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}

// POST /auth/login response
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Role        Role   `json:"role"`
	Name        string `json:"name"`
}
