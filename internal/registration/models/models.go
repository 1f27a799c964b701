package models

import "regform/pkg/document"

// Form fields, in the order they are validated.
const (
	FieldEmail    = "email"
	FieldName     = "name"
	FieldDocument = "document"
	FieldDate     = "date"
	FieldPhone    = "phone"
	FieldPassword = "password"
)

// FieldOrder lists every validated field in validation order.
var FieldOrder = []string{FieldEmail, FieldName, FieldDocument, FieldDate, FieldPhone, FieldPassword}

// Registration is a submitted registration form. Field order matters: the
// first failing field in declaration order is the one reported.
type Registration struct {
	IsPJ     bool   `json:"isPJ"`
	Email    string `json:"email" validate:"regemail"`
	Name     string `json:"name" validate:"regname"`
	Document string `json:"document" validate:"regdocument"`
	Date     string `json:"date" validate:"regdate"`
	Phone    string `json:"phone" validate:"regphone"`
	Password string `json:"password" validate:"regpassword"`
}

// Kind returns the document kind selected by IsPJ.
func (r Registration) Kind() document.Kind {
	return document.KindFromFlag(r.IsPJ)
}
