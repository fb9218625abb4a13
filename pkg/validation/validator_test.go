package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type signupForm struct {
	Username string `json:"Username" binding:"required,min=5,alphanum"`
	Password string `json:"Password" binding:"required"`
	Email    string `json:"Email" binding:"required,email"`
}

func validate(t *testing.T, form signupForm) []FieldError {
	t.Helper()
	Init()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		t.Fatal("unexpected validator engine")
	}
	return ToDetails(v.Struct(form))
}

func TestToDetails_Valid(t *testing.T) {
	details := validate(t, signupForm{Username: "abcde", Password: "x", Email: "a@b.com"})
	if details != nil {
		t.Errorf("expected no details for valid form, got %v", details)
	}
}

func TestToDetails_ShortUsername(t *testing.T) {
	details := validate(t, signupForm{Username: "abc", Password: "x", Email: "a@b.com"})
	if len(details) != 1 {
		t.Fatalf("expected one field error, got %v", details)
	}
	if details[0].Field != "Username" {
		t.Errorf("expected field 'Username', got '%s'", details[0].Field)
	}
	if details[0].Message != "must be at least 5 characters long" {
		t.Errorf("unexpected message: %s", details[0].Message)
	}
}

func TestToDetails_NonAlphanumericUsername(t *testing.T) {
	details := validate(t, signupForm{Username: "abc-def", Password: "x", Email: "a@b.com"})
	if len(details) != 1 {
		t.Fatalf("expected one field error, got %v", details)
	}
	if details[0].Message != "must contain alphanumeric characters only" {
		t.Errorf("unexpected message: %s", details[0].Message)
	}
}

func TestToDetails_MultipleFields(t *testing.T) {
	details := validate(t, signupForm{Username: "abcde", Password: "", Email: "nope"})
	if len(details) != 2 {
		t.Fatalf("expected two field errors, got %v", details)
	}
	if details[0].Field != "Password" || details[0].Message != "is required" {
		t.Errorf("unexpected first error: %+v", details[0])
	}
	if details[1].Field != "Email" || details[1].Message != "must be a valid email" {
		t.Errorf("unexpected second error: %+v", details[1])
	}
}
