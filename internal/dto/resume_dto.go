package dto

import "github.com/google/uuid"

type CreateResumeRequest struct {
	UserID  *uuid.UUID `json:"userId"`
	Title   string     `json:"title" validate:"required,max=200"`
	Content string     `json:"content" validate:"required"`
}

type UpdateResumeRequest struct {
	Title   *string `json:"title" validate:"omitempty,min=1,max=200"`
	Content *string `json:"content" validate:"omitempty,min=1"`
}

func (r *UpdateResumeRequest) Fields() map[string]any {
	f := fieldSet{}
	f.str("title", r.Title)
	f.str("content", r.Content)
	return f
}
