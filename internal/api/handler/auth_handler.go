package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wellpath/wellness/internal/api/metrics"
	"github.com/wellpath/wellness/internal/core/domain"
	"github.com/wellpath/wellness/internal/core/service"
)

// AuthHandler exposes the auth/session manager of the calling client.
type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Login authenticates the session against a known email.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	cs, err := ctxClient(c)
	if err != nil {
		return err
	}

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	err = cs.Auth.Login(c.Request().Context(), req.Email, req.Password)
	metrics.AuthRequestsTotal.WithLabelValues("login", resultLabel(err)).Inc()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newAuthResponse(cs, true))
}

// Signup creates an account and opens a session that needs onboarding.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	cs, err := ctxClient(c)
	if err != nil {
		return err
	}

	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	err = cs.Auth.Signup(c.Request().Context(), req.Name, req.Email, req.Password)
	metrics.AuthRequestsTotal.WithLabelValues("signup", resultLabel(err)).Inc()
	if err != nil {
		return err
	}
	cs.Wizard.Reset()
	return c.JSON(http.StatusCreated, newAuthResponse(cs, true))
}

// Logout ends the session. It always succeeds.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	cs, err := ctxClient(c)
	if err != nil {
		return err
	}

	cs.Auth.Logout(c.Request().Context())
	cs.Wizard.Reset()
	cs.Tasks.Reset()
	metrics.AuthRequestsTotal.WithLabelValues("logout", "ok").Inc()
	return c.JSON(http.StatusOK, newAuthResponse(cs, true))
}

// State returns the current session without changing it.
//
// @Summary      Current session state
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Router       /api/auth/state [get]
func (h *AuthHandler) State(c echo.Context) error {
	cs, err := ctxClient(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newAuthResponse(cs, false))
}

func newAuthResponse(cs *service.ClientSession, withRedirect bool) authResponse {
	screen := screenOf(cs)
	resp := authResponse{
		State:        cs.Auth.CurrentState(),
		SessionState: cs.Auth.State(),
		Screen:       screen,
	}
	if withRedirect {
		resp.RedirectTo = screen.Path()
	}
	return resp
}

func resultLabel(err error) string {
	if err == nil {
		return "ok"
	}
	var ae *domain.AuthError
	if errors.As(err, &ae) {
		return string(ae.Kind)
	}
	return "error"
}
