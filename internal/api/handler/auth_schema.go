package handler

import (
	"github.com/wellpath/wellness/internal/core/domain"
	"github.com/wellpath/wellness/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// Empty fields are left to the auth manager so its messages reach the user.
// Login emails are not format-checked: an unknown address is reported as
// "user not found" by the manager.
type loginRequest struct {
	Email    string `json:"email"    validate:"max=254"`
	Password string `json:"password" validate:"max=72"`
}

type signupRequest struct {
	Name     string `json:"name"     validate:"max=120"`
	Email    string `json:"email"    validate:"omitempty,email,max=254"`
	Password string `json:"password" validate:"max=72"`
}

type authResponse struct {
	State        ports.AuthState     `json:"state"`
	SessionState domain.SessionState `json:"session_state"`
	Screen       domain.Screen       `json:"screen"`
	RedirectTo   string              `json:"redirect_to,omitempty"`
}
