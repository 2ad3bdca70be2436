package form

import (
	"strings"

	"campusevents/src-client/model"
)

type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

func (f *LoginForm) Validate() error {
	f.Username = strings.TrimSpace(f.Username)
	f.Password = strings.TrimSpace(f.Password)
	return check(f).orNil()
}

type SignupForm struct {
	Name            string `form:"name" validate:"required"`
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required"`
	ConfirmPassword string `form:"confirm_password" validate:"eqfield=Password"`
	Role            string `form:"role" validate:"omitempty,oneof=student faculty recruiter judge"`
}

func (f *SignupForm) Validate() error {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	return check(f).orNil()
}

// Input defaults the role to student.
func (f *SignupForm) Input() model.SignupInput {
	role := model.Role(f.Role)
	if role == "" {
		role = model.RoleStudent
	}
	return model.SignupInput{
		Email:    f.Email,
		Password: f.Password,
		Name:     f.Name,
		Role:     role,
	}
}

type FeedbackForm struct {
	Rating   int    `form:"rating" validate:"gte=1,lte=5"`
	Comments string `form:"comments" validate:"max=2000"`
}

func (f *FeedbackForm) Validate() error {
	f.Comments = strings.TrimSpace(f.Comments)
	return check(f).orNil()
}

func (f *FeedbackForm) Input() model.FeedbackInput {
	return model.FeedbackInput{Rating: f.Rating, Comments: f.Comments}
}

type InviteForm struct {
	Emails []string `form:"emails" validate:"required,min=1,dive,email"`
}

// NewInviteForm splits a comma, semicolon or whitespace separated list.
func NewInviteForm(raw string) InviteForm {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\n' || r == '\t' || r == '\r'
	})
	return InviteForm{Emails: fields}
}

func (f *InviteForm) Validate() error {
	return check(f).orNil()
}
