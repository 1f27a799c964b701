package handler

import "regform/internal/registration/models"

// RegisterRequest is the HTTP request body for POST /registration.
// Missing fields decode as empty strings and fail their rule.
type RegisterRequest struct {
	IsPJ     bool   `json:"isPJ"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Document string `json:"document"`
	Date     string `json:"date"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// ToRegistration converts the request into the domain form.
func (r *RegisterRequest) ToRegistration() models.Registration {
	return models.Registration{
		IsPJ:     r.IsPJ,
		Email:    r.Email,
		Name:     r.Name,
		Document: r.Document,
		Date:     r.Date,
		Phone:    r.Phone,
		Password: r.Password,
	}
}

// PasswordCheckRequest is the HTTP request body for POST /registration/password-check.
type PasswordCheckRequest struct {
	Password string `json:"password"`
}
