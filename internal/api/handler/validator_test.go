package handler

import (
	"strings"
	"testing"
)

func TestValidator_Messages(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&signupRequest{Name: "Ann", Email: "nope", Password: strings.Repeat("x", 73)})
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "email must be a valid email") {
		t.Errorf("missing email message in %q", msg)
	}
	if !strings.Contains(msg, "password must be at most 72 characters") {
		t.Errorf("missing password message in %q", msg)
	}
}

func TestValidator_EmptyCredentialsPass(t *testing.T) {
	if err := NewValidator().Validate(&loginRequest{}); err != nil {
		t.Fatalf("empty credentials are reported by the auth manager, got %v", err)
	}
}

func TestValidator_Goals(t *testing.T) {
	v := NewValidator()
	if err := v.Validate(&goalsRequest{}); err == nil {
		t.Error("missing goals must fail")
	}
	if err := v.Validate(&goalsRequest{Goals: []string{"sleep"}}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := v.Validate(&activityRequest{}); err == nil || !strings.Contains(err.Error(), "activitylevel is required") {
		t.Errorf("unexpected activity error: %v", err)
	}
}

func TestValidator_LoginEmailNotFormatChecked(t *testing.T) {
	if err := NewValidator().Validate(&loginRequest{Email: "jane", Password: "pw"}); err != nil {
		t.Fatalf("login email format is left to the auth manager, got %v", err)
	}
}

func TestValidator_MaxOnSlice(t *testing.T) {
	err := NewValidator().Validate(&goalsRequest{Goals: []string{"a", "b", "c", "d", "e", "f", "g"}})
	if err == nil || !strings.Contains(err.Error(), "goals must have at most 6 items") {
		t.Fatalf("unexpected error: %v", err)
	}
}
