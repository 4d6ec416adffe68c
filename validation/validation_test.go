package validation

import (
	"testing"

	"github.com/skillsenselab/seahorse/errors"
)

func TestValidatorRequired(t *testing.T) {
	v := New()
	v.Required("email", "a@b.com")
	if v.HasErrors() {
		t.Error("expected no errors for valid input")
	}

	v2 := New()
	v2.Required("email", "")
	if !v2.HasErrors() {
		t.Error("expected error for empty required field")
	}

	v3 := New()
	v3.Required("email", "   ")
	if !v3.HasErrors() {
		t.Error("expected error for whitespace-only required field")
	}
}

func TestValidatorFirst(t *testing.T) {
	v := New().
		Required("email", "a@b.com").
		Required("password", "").
		Required("firstName", "")

	appErr := v.First()
	if appErr == nil {
		t.Fatal("expected an error")
	}
	if appErr.Code != errors.ErrCodeMissingField {
		t.Errorf("expected MISSING_FIELD, got %s", appErr.Code)
	}
	if appErr.Details["field"] != "password" {
		t.Errorf("expected first failed field 'password', got %v", appErr.Details["field"])
	}
}

func TestValidatorFirst_NoErrors(t *testing.T) {
	v := New().Required("email", "a@b.com")
	if v.First() != nil {
		t.Error("expected nil for valid input")
	}
}

func TestValidatorValidate_CollectsAll(t *testing.T) {
	v := New().
		Required("email", "").
		Required("password", "")

	appErr := v.Validate()
	if appErr == nil {
		t.Fatal("expected an error")
	}
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok || len(fields) != 2 {
		t.Errorf("expected 2 field errors, got %v", appErr.Details["fields"])
	}
}

func TestValidatorLengths(t *testing.T) {
	v := New().
		MinLength("name", "ab", 3).
		MaxLength("bio", "abcdef", 5)
	if len(v.Errors()) != 2 {
		t.Errorf("expected 2 errors, got %d", len(v.Errors()))
	}
}

func TestStructValidate(t *testing.T) {
	type payload struct {
		Email string `mapstructure:"email" validate:"required,email"`
		Cost  int    `mapstructure:"cost" validate:"min=4,max=31"`
	}

	if err := Validate(payload{Email: "a@b.com", Cost: 10}); err != nil {
		t.Errorf("expected valid struct, got %v", err)
	}

	err := Validate(payload{Email: "nope", Cost: 99})
	if err == nil {
		t.Fatal("expected validation error")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", appErr.Code)
	}
}
