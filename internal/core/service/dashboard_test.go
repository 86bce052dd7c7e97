package service

import (
	"testing"
	"time"

	"github.com/wellpath/wellness/internal/core/domain"
)

func TestBuildDashboard(t *testing.T) {
	tasks := domain.NewTaskList()
	if _, err := tasks.Toggle("3"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	now := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	d := BuildDashboard(&domain.SessionUser{Name: "Ann", Email: "ann@x.io"}, tasks, now)

	if d.Overview.Greeting != "Good morning" {
		t.Errorf("unexpected greeting %q", d.Overview.Greeting)
	}
	if d.Overview.UserName != "Ann" {
		t.Errorf("unexpected user name %q", d.Overview.UserName)
	}
	if d.Overview.CompletionRate != 20 {
		t.Errorf("expected completion rate 20, got %d", d.Overview.CompletionRate)
	}
	if len(d.Tasks) != len(domain.DailyTasks) || !d.Tasks[2].Completed {
		t.Errorf("unexpected tasks: %+v", d.Tasks)
	}
	if len(d.Recommendations) != len(domain.Recommendations) {
		t.Errorf("expected full catalogue, got %d items", len(d.Recommendations))
	}
}

func TestBuildDashboard_NoUser(t *testing.T) {
	d := BuildDashboard(nil, domain.NewTaskList(), time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC))
	if d.Overview.UserName != "" || d.Overview.Greeting != "Good evening" {
		t.Errorf("unexpected overview: %+v", d.Overview)
	}
}
