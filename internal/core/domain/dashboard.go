package domain

import (
	"errors"
	"math"
	"strings"
	"sync"
	"time"
)

var ErrTaskNotFound = errors.New("task not found")

// Task is one item of the daily wellness checklist.
type Task struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	EstimatedTime string `json:"estimated_time"`
	Category      string `json:"category"`
	Completed     bool   `json:"completed"`
}

// DailyTasks is the default checklist every session starts with.
var DailyTasks = []Task{
	{ID: "1", Title: "Morning Meditation", Description: "Start your day with a 10-minute mindfulness session", EstimatedTime: "10 min", Category: "Mental Health"},
	{ID: "2", Title: "Hydration Reminder", Description: "Drink a full glass of water with lemon", EstimatedTime: "5 min", Category: "Nutrition"},
	{ID: "3", Title: "Quick Stretching", Description: "Do a series of full-body stretches to improve flexibility", EstimatedTime: "15 min", Category: "Fitness"},
	{ID: "4", Title: "Gratitude Journaling", Description: "Write down three things you are grateful for today", EstimatedTime: "10 min", Category: "Mental Health"},
	{ID: "5", Title: "Evening Walk", Description: "Take a relaxing walk after dinner to aid digestion", EstimatedTime: "20 min", Category: "Fitness"},
}

// TaskList tracks which of the daily tasks a session has completed.
type TaskList struct {
	mu    sync.Mutex
	tasks []Task
}

// NewTaskList returns a fresh copy of the daily checklist.
func NewTaskList() *TaskList {
	return &TaskList{tasks: append([]Task(nil), DailyTasks...)}
}

// Toggle flips the completion flag of a task and returns its new value.
func (l *TaskList) Toggle(id string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.tasks {
		if l.tasks[i].ID == id {
			l.tasks[i].Completed = !l.tasks[i].Completed
			return l.tasks[i].Completed, nil
		}
	}
	return false, ErrTaskNotFound
}

// Reset marks every task as not completed.
func (l *TaskList) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tasks = append([]Task(nil), DailyTasks...)
}

// Tasks returns a copy of the checklist.
func (l *TaskList) Tasks() []Task {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Task(nil), l.tasks...)
}

// CompletionRate is the rounded percentage of completed tasks.
func (l *TaskList) CompletionRate() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	done := 0
	for _, t := range l.tasks {
		if t.Completed {
			done++
		}
	}
	return Percent(done, len(l.tasks))
}

// Percent returns part/total as a rounded percentage; zero when total is zero.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// ContentType is the format of a recommended item.
type ContentType string

const (
	ContentVideo    ContentType = "video"
	ContentArticle  ContentType = "article"
	ContentExercise ContentType = "exercise"
)

// ContentItem is a recommended piece of wellness content.
type ContentItem struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Thumbnail    string      `json:"thumbnail"`
	Duration     string      `json:"duration"`
	Category     string      `json:"category"`
	Type         ContentType `json:"type"`
	IsBookmarked bool        `json:"is_bookmarked"`
}

// Recommendations is the content catalogue shown on the dashboard.
var Recommendations = []ContentItem{
	{ID: "1", Title: "Morning Yoga Routine", Description: "Start your day with this energizing 15-minute yoga sequence.", Thumbnail: "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=600&q=80", Duration: "15 min", Category: "Fitness", Type: ContentVideo},
	{ID: "2", Title: "Mindful Meditation Guide", Description: "Learn the basics of mindfulness meditation with this beginner-friendly guide.", Thumbnail: "https://images.unsplash.com/photo-1506126613408-eca07ce68773?w=600&q=80", Duration: "10 min", Category: "Mindfulness", Type: ContentArticle, IsBookmarked: true},
	{ID: "3", Title: "Healthy Meal Prep Ideas", Description: "Simple and nutritious meal prep ideas for a busy week.", Thumbnail: "https://images.unsplash.com/photo-1547592180-85f173990554?w=600&q=80", Duration: "20 min", Category: "Nutrition", Type: ContentArticle},
	{ID: "4", Title: "Quick HIIT Workout", Description: "High-intensity interval training to boost your metabolism.", Thumbnail: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=600&q=80", Duration: "25 min", Category: "Fitness", Type: ContentVideo},
	{ID: "5", Title: "Stress Relief Techniques", Description: "Practical techniques to manage stress in your daily life.", Thumbnail: "https://images.unsplash.com/photo-1506126279646-a697353d3166?w=600&q=80", Duration: "12 min", Category: "Mental Health", Type: ContentExercise},
	{ID: "6", Title: "Better Sleep Habits", Description: "Develop healthy sleep habits for improved rest and recovery.", Thumbnail: "https://images.unsplash.com/photo-1541781774459-bb2af2f05b55?w=600&q=80", Duration: "8 min", Category: "Sleep", Type: ContentArticle},
}

// RecommendationsFor returns the catalogue filtered by category
// (case-insensitive). An empty category returns everything.
func RecommendationsFor(category string) []ContentItem {
	out := make([]ContentItem, 0, len(Recommendations))
	for _, item := range Recommendations {
		if category == "" || strings.EqualFold(item.Category, category) {
			out = append(out, item)
		}
	}
	return out
}

// Milestone is an achievement shown in the progress view.
type Milestone struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Date        string `json:"date,omitempty"`
}

// Progress is the data behind the progress charts.
type Progress struct {
	WeeklyProgress       int         `json:"weekly_progress"`
	MonthlyProgress      int         `json:"monthly_progress"`
	StreakCount          int         `json:"streak_count"`
	CompletedTasks       int         `json:"completed_tasks"`
	TotalTasks           int         `json:"total_tasks"`
	CompletionPercentage int         `json:"completion_percentage"`
	Milestones           []Milestone `json:"milestones"`
}

// SampleProgress returns the progress figures displayed on the dashboard.
func SampleProgress() Progress {
	p := Progress{
		WeeklyProgress:  68,
		MonthlyProgress: 42,
		StreakCount:     7,
		CompletedTasks:  24,
		TotalTasks:      36,
		Milestones: []Milestone{
			{ID: "1", Title: "First Week Complete", Description: "Completed your first week of wellness activities", Completed: true, Date: "2023-06-15"},
			{ID: "2", Title: "10 Meditation Sessions", Description: "Completed 10 meditation sessions", Completed: true, Date: "2023-06-22"},
			{ID: "3", Title: "Healthy Eating Streak", Description: "Maintained healthy eating for 14 days"},
		},
	}
	p.CompletionPercentage = Percent(p.CompletedTasks, p.TotalTasks)
	return p
}

// Overview is the greeting card at the top of the dashboard.
type Overview struct {
	Greeting            string `json:"greeting"`
	UserName            string `json:"user_name"`
	StreakCount         int    `json:"streak_count"`
	CompletionRate      int    `json:"completion_rate"`
	MotivationalMessage string `json:"motivational_message"`
	TodaysMood          string `json:"todays_mood"`
}

const defaultMotivation = "You're making great progress on your mindfulness goals. Keep up the good work!"

// NewOverview builds the greeting card for a user at the given local time.
func NewOverview(userName string, completionRate int, now time.Time) Overview {
	return Overview{
		Greeting:            "Good " + TimeOfDay(now),
		UserName:            userName,
		StreakCount:         7,
		CompletionRate:      completionRate,
		MotivationalMessage: defaultMotivation,
		TodaysMood:          "Energetic",
	}
}

// TimeOfDay names the part of the day: morning before noon, afternoon before 18h.
func TimeOfDay(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "morning"
	case h < 18:
		return "afternoon"
	default:
		return "evening"
	}
}

// Dashboard aggregates every widget of the home screen.
type Dashboard struct {
	Overview        Overview      `json:"overview"`
	Tasks           []Task        `json:"tasks"`
	Progress        Progress      `json:"progress"`
	Recommendations []ContentItem `json:"recommendations"`
}
