package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wellpath/wellness/internal/core/domain"
	"github.com/wellpath/wellness/internal/core/service"
)

type toggleResponse struct {
	ID             string `json:"id"`
	Completed      bool   `json:"completed"`
	CompletionRate int    `json:"completion_rate"`
}

// DashboardHandler serves the home screen widgets.
type DashboardHandler struct {
	now func() time.Time
}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{now: time.Now}
}

// Dashboard godoc
//
// @Summary      Home dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  domain.Dashboard
// @Failure      401  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	cs, err := ctxClient(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, service.BuildDashboard(cs.Auth.CurrentState().User, cs.Tasks, h.now()))
}

// ToggleTask godoc
//
// @Summary      Toggle a daily task
// @Tags         dashboard
// @Produce      json
// @Param        id   path      string  true  "Task ID"
// @Success      200  {object}  toggleResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/dashboard/tasks/{id}/toggle [post]
func (h *DashboardHandler) ToggleTask(c echo.Context) error {
	cs, err := ctxClient(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	done, err := cs.Tasks.Toggle(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toggleResponse{ID: id, Completed: done, CompletionRate: cs.Tasks.CompletionRate()})
}

// Progress godoc
//
// @Summary      Progress figures and milestones
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  domain.Progress
// @Router       /api/progress [get]
func (h *DashboardHandler) Progress(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.SampleProgress())
}

// Recommendations godoc
//
// @Summary      Recommended content
// @Tags         dashboard
// @Produce      json
// @Param        category  query     string  false  "Filter by category"
// @Success      200       {array}   domain.ContentItem
// @Router       /api/recommendations [get]
func (h *DashboardHandler) Recommendations(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.RecommendationsFor(c.QueryParam("category")))
}
