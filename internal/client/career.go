package client

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/fadilmartias/career-coach/internal/dto"
	"github.com/fadilmartias/career-coach/internal/model"
	"github.com/fadilmartias/career-coach/internal/service"
)

var ErrNotAuthenticated = errors.New("client: not authenticated")

// ImportResume uploads a .pdf, .docx or .txt file. An empty title lets the
// server derive one from the file name.
func (c *Client) ImportResume(ctx context.Context, filename string, data []byte, title string) (*model.Resume, error) {
	var out model.Resume
	req := c.http.R().
		SetContext(ctx).
		SetError(&errorBody{}).
		SetResult(&out).
		SetFileReader("file", filename, bytes.NewReader(data))
	if title != "" {
		req.SetFormData(map[string]string{"title": title})
	}
	if err := c.send(req, http.MethodPost, "/api/resumes/import"); err != nil {
		return nil, err
	}
	c.Resumes.Invalidate()
	return &out, nil
}

// SkillGapAnalysis compares the current user's skills with a target role.
func (c *Client) SkillGapAnalysis(ctx context.Context, req dto.SkillGapRequest) (*service.SkillGapResult, error) {
	user := c.Auth.CurrentUser()
	if user == nil {
		return nil, ErrNotAuthenticated
	}
	var out service.SkillGapResult
	path := "/api/users/" + user.ID.String() + "/skills/gap-analysis"
	if err := c.do(ctx, http.MethodPost, path, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile patches the current user and refreshes the auth state.
func (c *Client) UpdateProfile(ctx context.Context, req dto.UpdateUserRequest) (*model.User, error) {
	user := c.Auth.CurrentUser()
	if user == nil {
		return nil, ErrNotAuthenticated
	}
	var out model.User
	if err := c.do(ctx, http.MethodPatch, "/api/users/"+user.ID.String(), req, &out); err != nil {
		return nil, err
	}
	c.Auth.setUser(&out)
	return &out, nil
}
