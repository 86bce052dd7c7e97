package domain

import "time"

// User is a record in the remote user table.
type User struct {
	ID               string    `json:"id"`
	Name             string    `json:"name,omitempty"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"-"`
	NeedsOnboarding  bool      `json:"needs_onboarding"`
	HealthGoals      []string  `json:"health_goals,omitempty"`
	HealthChallenges string    `json:"health_challenges,omitempty"`
	ActivityLevel    string    `json:"activity_level,omitempty"`
	Age              int       `json:"age,omitempty"`
	Height           float64   `json:"height,omitempty"`
	Weight           float64   `json:"weight,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// UserUpdate is a partial update of a user record. Nil fields are left untouched.
type UserUpdate struct {
	NeedsOnboarding  *bool
	HealthGoals      []string
	HealthChallenges *string
	ActivityLevel    *string
	Age              *int
	Height           *float64
	Weight           *float64
}

// IsEmpty reports whether the update would change nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.NeedsOnboarding == nil &&
		u.HealthGoals == nil &&
		u.HealthChallenges == nil &&
		u.ActivityLevel == nil &&
		u.Age == nil &&
		u.Height == nil &&
		u.Weight == nil
}

// Apply copies the non-nil fields of the update onto user.
func (u UserUpdate) Apply(user *User) {
	if u.NeedsOnboarding != nil {
		user.NeedsOnboarding = *u.NeedsOnboarding
	}
	if u.HealthGoals != nil {
		user.HealthGoals = append([]string(nil), u.HealthGoals...)
	}
	if u.HealthChallenges != nil {
		user.HealthChallenges = *u.HealthChallenges
	}
	if u.ActivityLevel != nil {
		user.ActivityLevel = *u.ActivityLevel
	}
	if u.Age != nil {
		user.Age = *u.Age
	}
	if u.Height != nil {
		user.Height = *u.Height
	}
	if u.Weight != nil {
		user.Weight = *u.Weight
	}
}

// OnboardingComplete builds the update recorded when a user finishes
// onboarding. A nil profile only clears the onboarding flag.
func OnboardingComplete(profile *OnboardingProfile) UserUpdate {
	done := false
	upd := UserUpdate{NeedsOnboarding: &done}
	if profile == nil {
		return upd
	}

	challenges := profile.Challenges
	activity := profile.ActivityLevel
	age := profile.Age
	height := profile.Height
	weight := profile.Weight

	upd.HealthGoals = append([]string{}, profile.Goals...)
	upd.HealthChallenges = &challenges
	upd.ActivityLevel = &activity
	upd.Age = &age
	upd.Height = &height
	upd.Weight = &weight
	return upd
}
