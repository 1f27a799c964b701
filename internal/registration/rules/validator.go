package rules

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"regform/pkg/document"
	"regform/pkg/requestcontext"
)

// Struct tags understood by Validator.
const (
	TagEmail    = "regemail"
	TagName     = "regname"
	TagDocument = "regdocument"
	TagDate     = "regdate"
	TagPhone    = "regphone"
	TagPassword = "regpassword"
)

// kindField is the bool field a validated struct uses to select the
// document kind for the regdocument and regdate tags.
const kindField = "IsPJ"

// Validator runs the registration predicates over tagged structs.
// It is safe for concurrent use.
type Validator struct {
	v *validator.Validate
}

// NewValidator registers the registration tags on a fresh validator.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	mustRegister(v.RegisterValidation(TagEmail, stringRule(EmailValid)))
	mustRegister(v.RegisterValidation(TagName, stringRule(NameValid)))
	mustRegister(v.RegisterValidation(TagPhone, stringRule(PhoneValid)))
	mustRegister(v.RegisterValidation(TagPassword, stringRule(PasswordValid)))
	mustRegister(v.RegisterValidation(TagDocument, func(fl validator.FieldLevel) bool {
		return DocumentValid(fl.Field().String(), kindOf(fl))
	}))
	mustRegister(v.RegisterValidationCtx(TagDate, func(ctx context.Context, fl validator.FieldLevel) bool {
		return DateValid(fl.Field().String(), kindOf(fl), requestcontext.Now(ctx))
	}))

	return &Validator{v: v}
}

// FirstInvalid validates s and returns the JSON name of the first failing
// field in declaration order, or "" when every field passes. The request
// time in ctx is used for date rules. A non-nil error means s could not be
// validated at all.
func (v *Validator) FirstInvalid(ctx context.Context, s any) (string, error) {
	err := v.v.StructCtx(ctx, s)
	if err == nil {
		return "", nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field(), nil
	}
	return "", err
}

func stringRule(pred func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pred(fl.Field().String())
	}
}

func kindOf(fl validator.FieldLevel) document.Kind {
	parent := reflect.Indirect(fl.Parent())
	if parent.Kind() != reflect.Struct {
		return document.Individual
	}
	f := parent.FieldByName(kindField)
	if !f.IsValid() || f.Kind() != reflect.Bool {
		return document.Individual
	}
	return document.KindFromFlag(f.Bool())
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

func mustRegister(err error) {
	if err != nil {
		panic("rules: register validation: " + err.Error())
	}
}
