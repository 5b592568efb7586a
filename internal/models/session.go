package models

// Session is the identity of the logged in dashboard user
type Session struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
}
