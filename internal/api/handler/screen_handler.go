package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wellpath/wellness/internal/core/domain"
	"github.com/wellpath/wellness/internal/core/ports"
	"github.com/wellpath/wellness/internal/core/service"
)

// screenResponse is the view model of a top-level route. Only the fields of
// the rendered screen are set.
type screenResponse struct {
	Screen domain.Screen   `json:"screen"`
	State  ports.AuthState `json:"state"`

	Wizard    *domain.WizardState `json:"wizard,omitempty"`
	Options   *onboardingOptions  `json:"options,omitempty"`
	Dashboard *domain.Dashboard   `json:"dashboard,omitempty"`
}

type onboardingOptions struct {
	Goals          []domain.Option `json:"goals"`
	ActivityLevels []domain.Option `json:"activity_levels"`
}

// ScreenHandler serves the three top-level routes. Each either renders the
// screen as JSON or redirects to the screen the session belongs on.
type ScreenHandler struct {
	now func() time.Time
}

func NewScreenHandler() *ScreenHandler {
	return &ScreenHandler{now: time.Now}
}

// Home godoc
//
// @Summary      Home route
// @Tags         screens
// @Produce      json
// @Success      200  {object}  screenResponse
// @Success      302
// @Router       / [get]
func (h *ScreenHandler) Home(c echo.Context) error {
	return h.render(c, domain.PathHome)
}

// Login godoc
//
// @Summary      Login route, never redirected
// @Tags         screens
// @Produce      json
// @Success      200  {object}  screenResponse
// @Router       /login [get]
func (h *ScreenHandler) Login(c echo.Context) error {
	return h.render(c, domain.PathLogin)
}

// Onboarding godoc
//
// @Summary      Onboarding route
// @Tags         screens
// @Produce      json
// @Success      200  {object}  screenResponse
// @Success      302
// @Router       /onboarding [get]
func (h *ScreenHandler) Onboarding(c echo.Context) error {
	return h.render(c, domain.PathOnboarding)
}

func (h *ScreenHandler) render(c echo.Context, path string) error {
	cs, err := ctxClient(c)
	if err != nil {
		return err
	}

	st := cs.Auth.CurrentState()
	nav, ok := domain.Navigate(path, st.IsAuthenticated, st.User != nil && st.User.NeedsOnboarding)
	if !ok {
		return echo.ErrNotFound
	}
	if nav.RedirectTo != "" {
		return c.Redirect(http.StatusFound, nav.RedirectTo)
	}

	resp := screenResponse{Screen: nav.Screen, State: st}
	switch nav.Screen {
	case domain.OnboardingScreen:
		wiz := cs.Wizard.Current()
		resp.Wizard = &wiz
		resp.Options = &onboardingOptions{Goals: domain.HealthGoals, ActivityLevels: domain.ActivityLevels}
	case domain.HomeScreen:
		d := service.BuildDashboard(st.User, cs.Tasks, h.now())
		resp.Dashboard = &d
	}
	return c.JSON(http.StatusOK, resp)
}
