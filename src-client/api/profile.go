package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"campusevents/src-client/model"

	"github.com/gabriel-vasile/mimetype"
)

const MaxResumeSize = 5 << 20

var (
	ErrResumeTooLarge = errors.New("resume is larger than 5 MiB")
	ErrResumeNotPDF   = errors.New("resume is not a PDF")
)

func (c *Client) Profile(ctx context.Context) (*model.User, error) {
	user := new(model.User)
	if err := c.get(ctx, "/student/profile/", user); err != nil {
		return nil, fmt.Errorf("(*Client).Profile: %w", err)
	}
	return user, nil
}

func (c *Client) UpdateProfile(ctx context.Context, update model.ProfileUpdate) (*model.User, error) {
	user := new(model.User)
	if err := c.put(ctx, "/student/profile/", update, user); err != nil {
		return nil, fmt.Errorf("(*Client).UpdateProfile: %w", err)
	}
	return user, nil
}

func (c *Client) AddSkill(ctx context.Context, name string) (*model.Skill, error) {
	skill := new(model.Skill)
	body := map[string]string{"skill_name": name}
	if err := c.post(ctx, "/student/profile/skills", body, skill); err != nil {
		return nil, fmt.Errorf("(*Client).AddSkill: %w", err)
	}
	return skill, nil
}

func (c *Client) RemoveSkill(ctx context.Context, skillID int64) error {
	if err := c.delete(ctx, fmt.Sprintf("/student/profile/skills/%d", skillID)); err != nil {
		return fmt.Errorf("(*Client).RemoveSkill: %w", err)
	}
	return nil
}

// CheckResume rejects anything the backend would refuse anyway: files over
// 5 MiB and files whose content is not a PDF.
func CheckResume(content []byte) error {
	if len(content) > MaxResumeSize {
		return ErrResumeTooLarge
	}
	if !mimetype.Detect(content).Is("application/pdf") {
		return ErrResumeNotPDF
	}
	return nil
}

func (c *Client) UploadResume(ctx context.Context, filename string, content []byte) (*model.Resume, error) {
	if err := CheckResume(content); err != nil {
		return nil, fmt.Errorf("(*Client).UploadResume: %w", err)
	}
	resp, err := c.gw.PostMultipart(ctx, "/student/profile/resume", "file", filename, bytes.NewReader(content))
	resume := new(model.Resume)
	if err := decode(resp, err, resume); err != nil {
		return nil, fmt.Errorf("(*Client).UploadResume: %w", err)
	}
	return resume, nil
}
