package service

import (
	"time"

	"github.com/wellpath/wellness/internal/core/domain"
)

// BuildDashboard assembles the home screen widgets for a session.
func BuildDashboard(user *domain.SessionUser, tasks *domain.TaskList, now time.Time) domain.Dashboard {
	name := ""
	if user != nil {
		name = user.Name
	}
	return domain.Dashboard{
		Overview:        domain.NewOverview(name, tasks.CompletionRate(), now),
		Tasks:           tasks.Tasks(),
		Progress:        domain.SampleProgress(),
		Recommendations: domain.RecommendationsFor(""),
	}
}
