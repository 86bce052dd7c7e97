package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/wellpath/wellness/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"echo error", echo.NewHTTPError(http.StatusTeapot, "short and stout"), http.StatusTeapot, "short and stout"},
		{"validation", domain.NewAuthError(domain.KindValidation, domain.MsgCredentialsRequired, nil), http.StatusBadRequest, domain.MsgCredentialsRequired},
		{"not found", domain.NewAuthError(domain.KindNotFound, domain.MsgUserNotFound, nil), http.StatusNotFound, domain.MsgUserNotFound},
		{"invalid credentials", domain.NewAuthError(domain.KindInvalidCredentials, domain.MsgInvalidCredentials, nil), http.StatusUnauthorized, domain.MsgInvalidCredentials},
		{"in flight", domain.NewAuthError(domain.KindInFlight, domain.MsgInFlight, nil), http.StatusConflict, domain.MsgInFlight},
		{"remote hides cause", domain.NewAuthError(domain.KindRemote, domain.MsgLoginFailed, errors.New("dial tcp: refused")), http.StatusBadGateway, domain.MsgLoginFailed},
		{"storage", domain.NewAuthError(domain.KindStorage, domain.MsgSessionSave, errors.New("redis down")), http.StatusInternalServerError, domain.MsgSessionSave},
		{"step incomplete", fmt.Errorf("%w: select at least one goal", domain.ErrStepIncomplete), http.StatusUnprocessableEntity, "onboarding step incomplete: select at least one goal"},
		{"wrong step", domain.ErrWrongStep, http.StatusConflict, domain.ErrWrongStep.Error()},
		{"task not found", domain.ErrTaskNotFound, http.StatusNotFound, "task not found"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	h := NewHTTPErrorHandler(zerolog.Nop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

			h(tt.err, c)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Error != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, body.Error)
			}
		})
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.String(http.StatusOK, "done")

	NewHTTPErrorHandler(zerolog.Nop())(errors.New("late"), c)

	if rec.Code != http.StatusOK || rec.Body.String() != "done" {
		t.Fatalf("committed response must be left alone, got %d %q", rec.Code, rec.Body.String())
	}
}
