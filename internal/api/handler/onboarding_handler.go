package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/wellpath/wellness/internal/api/metrics"
	"github.com/wellpath/wellness/internal/core/domain"
	"github.com/wellpath/wellness/internal/core/service"
)

type goalsRequest struct {
	Goals []string `json:"goals" validate:"required,min=1,max=6,dive,required"`
}

type challengesRequest struct {
	Challenges string `json:"challenges" validate:"max=2000"`
}

type activityRequest struct {
	ActivityLevel string `json:"activity_level" validate:"required"`
}

// Measurements arrive as form strings; the wizard parses them.
type measurementsRequest struct {
	Age    string `json:"age"    validate:"max=16"`
	Height string `json:"height" validate:"max=16"`
	Weight string `json:"weight" validate:"max=16"`
}

type wizardResponse struct {
	Wizard     domain.WizardState `json:"wizard"`
	Completed  bool               `json:"completed"`
	RedirectTo string             `json:"redirect_to,omitempty"`
}

// OnboardingHandler drives the onboarding questionnaire of a session.
type OnboardingHandler struct {
	log zerolog.Logger
}

func NewOnboardingHandler(log zerolog.Logger) *OnboardingHandler {
	return &OnboardingHandler{log: log}
}

// Get returns the current wizard step and answers.
//
// @Summary      Onboarding wizard state
// @Tags         onboarding
// @Produce      json
// @Success      200  {object}  wizardResponse
// @Failure      401  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /api/onboarding [get]
func (h *OnboardingHandler) Get(c echo.Context) error {
	cs, err := ctxClient(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, wizardResponse{Wizard: cs.Wizard.Current()})
}

// Goals submits step 1.
//
// @Summary      Submit health goals
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        body  body      goalsRequest  true  "Selected goal ids"
// @Success      200   {object}  wizardResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/onboarding/goals [post]
func (h *OnboardingHandler) Goals(c echo.Context) error {
	var req goalsRequest
	return h.step(c, &req, func(cs *service.ClientSession) error {
		return cs.Wizard.SubmitGoals(req.Goals)
	})
}

// Challenges submits step 2.
//
// @Summary      Submit health challenges
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        body  body      challengesRequest  true  "Free-text challenges"
// @Success      200   {object}  wizardResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/onboarding/challenges [post]
func (h *OnboardingHandler) Challenges(c echo.Context) error {
	var req challengesRequest
	return h.step(c, &req, func(cs *service.ClientSession) error {
		return cs.Wizard.SubmitChallenges(req.Challenges)
	})
}

// Activity submits step 3.
//
// @Summary      Submit activity level
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        body  body      activityRequest  true  "Activity level id"
// @Success      200   {object}  wizardResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/onboarding/activity [post]
func (h *OnboardingHandler) Activity(c echo.Context) error {
	var req activityRequest
	return h.step(c, &req, func(cs *service.ClientSession) error {
		return cs.Wizard.SubmitActivity(req.ActivityLevel)
	})
}

// Measurements submits the last step and completes onboarding.
//
// @Summary      Submit measurements and finish onboarding
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        body  body      measurementsRequest  true  "Age, height and weight"
// @Success      200   {object}  wizardResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/onboarding/measurements [post]
func (h *OnboardingHandler) Measurements(c echo.Context) error {
	cs, err := ctxClient(c)
	if err != nil {
		return err
	}

	var req measurementsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	profile, err := cs.Wizard.SubmitMeasurements(domain.Measurements{
		Age:    req.Age,
		Height: req.Height,
		Weight: req.Weight,
	})
	if err != nil {
		return err
	}

	if err := cs.Auth.CompleteOnboardingWithProfile(c.Request().Context(), profile); err != nil {
		// Reopen the last step so the answers can be submitted again.
		cs.Wizard.Back()
		return err
	}

	resp := wizardResponse{Wizard: cs.Wizard.Current(), Completed: true}
	cs.Wizard.Reset()
	metrics.OnboardingCompletedTotal.Inc()

	resp.RedirectTo = screenOf(cs).Path()
	return c.JSON(http.StatusOK, resp)
}

// Back moves the wizard to the previous step.
//
// @Summary      Previous onboarding step
// @Tags         onboarding
// @Produce      json
// @Success      200  {object}  wizardResponse
// @Router       /api/onboarding/back [post]
func (h *OnboardingHandler) Back(c echo.Context) error {
	cs, err := ctxClient(c)
	if err != nil {
		return err
	}
	cs.Wizard.Back()
	return c.JSON(http.StatusOK, wizardResponse{Wizard: cs.Wizard.Current()})
}

func (h *OnboardingHandler) step(c echo.Context, req any, submit func(*service.ClientSession) error) error {
	cs, err := ctxClient(c)
	if err != nil {
		return err
	}

	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	if err := submit(cs); err != nil {
		return err
	}

	st := cs.Wizard.Current()
	h.log.Debug().Str("session_id", cs.ID).Str("step", st.StepName).Msg("onboarding step accepted")
	return c.JSON(http.StatusOK, wizardResponse{Wizard: st})
}
