package dto

type UpdateUserRequest struct {
	Username            *string `json:"username" validate:"omitempty,min=3,max=50"`
	Email               *string `json:"email" validate:"omitempty,email,max=255"`
	Password            *string `json:"password" validate:"omitempty,min=6,max=128"`
	FirstName           *string `json:"firstName" validate:"omitempty,max=100"`
	LastName            *string `json:"lastName" validate:"omitempty,max=100"`
	Avatar              *string `json:"avatar" validate:"omitempty,url"`
	OnboardingCompleted *bool   `json:"onboardingCompleted"`
}

// Fields returns the profile columns to update. Username, email and password
// need checks first and are applied by the caller.
func (r *UpdateUserRequest) Fields() map[string]any {
	f := fieldSet{}
	f.str("first_name", r.FirstName)
	f.str("last_name", r.LastName)
	f.str("avatar", r.Avatar)
	f.boolean("onboarding_completed", r.OnboardingCompleted)
	return f
}
