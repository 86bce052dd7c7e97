package domain

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// OnboardingStep is a position in the onboarding wizard.
type OnboardingStep int

const (
	StepGoals OnboardingStep = iota + 1
	StepChallenges
	StepActivity
	StepMeasurements
	StepDone
)

// TotalOnboardingSteps is the number of questionnaire pages.
const TotalOnboardingSteps = 4

var stepNames = map[OnboardingStep]string{
	StepGoals:        "goals",
	StepChallenges:   "challenges",
	StepActivity:     "activity",
	StepMeasurements: "measurements",
	StepDone:         "done",
}

func (s OnboardingStep) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("step(%d)", int(s))
}

var (
	ErrStepIncomplete = errors.New("onboarding step incomplete")
	ErrWrongStep      = errors.New("onboarding step out of order")
)

// Option is a selectable answer in the questionnaire.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// HealthGoals are the goals offered on the first step.
var HealthGoals = []Option{
	{ID: "weight", Label: "Weight Management"},
	{ID: "stress", Label: "Stress Reduction"},
	{ID: "sleep", Label: "Better Sleep"},
	{ID: "fitness", Label: "Improved Fitness"},
	{ID: "nutrition", Label: "Healthier Eating"},
	{ID: "mental", Label: "Mental Wellbeing"},
}

// ActivityLevels are the choices offered on the third step.
var ActivityLevels = []Option{
	{ID: "sedentary", Label: "Sedentary (little to no exercise)"},
	{ID: "light", Label: "Light (exercise 1-3 days/week)"},
	{ID: "moderate", Label: "Moderate (exercise 3-5 days/week)"},
	{ID: "active", Label: "Active (exercise 6-7 days/week)"},
}

func hasOption(opts []Option, id string) bool {
	return slices.ContainsFunc(opts, func(o Option) bool { return o.ID == id })
}

// Measurements is the raw form input of the last step.
type Measurements struct {
	Age    string
	Height string
	Weight string
}

// OnboardingProfile holds everything the questionnaire collected.
type OnboardingProfile struct {
	Goals         []string `json:"goals"`
	Challenges    string   `json:"challenges,omitempty"`
	ActivityLevel string   `json:"activity_level"`
	Age           int      `json:"age"`
	Height        float64  `json:"height"`
	Weight        float64  `json:"weight"`
}

// Wizard is the four-step onboarding questionnaire. Steps advance strictly
// in order, each gated by its own validation; Back is always allowed.
type Wizard struct {
	mu      sync.Mutex
	step    OnboardingStep
	profile OnboardingProfile
}

// NewWizard returns a wizard positioned on the first step.
func NewWizard() *Wizard {
	return &Wizard{step: StepGoals}
}

// WizardState is a snapshot of the wizard for rendering.
type WizardState struct {
	Step       OnboardingStep    `json:"step"`
	StepName   string            `json:"step_name"`
	TotalSteps int               `json:"total_steps"`
	Answers    OnboardingProfile `json:"answers"`
}

// Current returns a snapshot of the wizard.
func (w *Wizard) Current() WizardState {
	w.mu.Lock()
	defer w.mu.Unlock()

	answers := w.profile
	answers.Goals = append([]string{}, w.profile.Goals...)
	return WizardState{
		Step:       w.step,
		StepName:   w.step.String(),
		TotalSteps: TotalOnboardingSteps,
		Answers:    answers,
	}
}

// SubmitGoals records the selected goals and moves to the challenges step.
func (w *Wizard) SubmitGoals(goals []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.expect(StepGoals); err != nil {
		return err
	}

	selected := make([]string, 0, len(goals))
	for _, g := range goals {
		if !hasOption(HealthGoals, g) {
			return fmt.Errorf("%w: unknown goal %q", ErrStepIncomplete, g)
		}
		if !slices.Contains(selected, g) {
			selected = append(selected, g)
		}
	}
	if len(selected) == 0 {
		return fmt.Errorf("%w: select at least one goal", ErrStepIncomplete)
	}

	w.profile.Goals = selected
	w.step = StepChallenges
	return nil
}

// SubmitChallenges records the free-text challenges. Empty text is allowed.
func (w *Wizard) SubmitChallenges(text string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.expect(StepChallenges); err != nil {
		return err
	}
	w.profile.Challenges = strings.TrimSpace(text)
	w.step = StepActivity
	return nil
}

// SubmitActivity records the activity level.
func (w *Wizard) SubmitActivity(level string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.expect(StepActivity); err != nil {
		return err
	}
	if level == "" {
		return fmt.Errorf("%w: select an activity level", ErrStepIncomplete)
	}
	if !hasOption(ActivityLevels, level) {
		return fmt.Errorf("%w: unknown activity level %q", ErrStepIncomplete, level)
	}
	w.profile.ActivityLevel = level
	w.step = StepMeasurements
	return nil
}

// SubmitMeasurements validates the final step and returns the collected
// profile. The wizard is then finished.
func (w *Wizard) SubmitMeasurements(m Measurements) (*OnboardingProfile, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.expect(StepMeasurements); err != nil {
		return nil, err
	}

	age, err := parseMeasurement("age", m.Age, strconv.Atoi)
	if err != nil {
		return nil, err
	}
	height, err := parseMeasurement("height", m.Height, parseFloat)
	if err != nil {
		return nil, err
	}
	weight, err := parseMeasurement("weight", m.Weight, parseFloat)
	if err != nil {
		return nil, err
	}

	w.profile.Age = age
	w.profile.Height = height
	w.profile.Weight = weight
	w.step = StepDone

	out := w.profile
	out.Goals = append([]string{}, w.profile.Goals...)
	return &out, nil
}

// Back returns to the previous step; it is a no-op on the first step. From
// the done state it reopens the last step.
func (w *Wizard) Back() OnboardingStep {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step > StepGoals {
		w.step--
	}
	return w.step
}

// Done reports whether the last step was accepted.
func (w *Wizard) Done() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step == StepDone
}

// Reset discards all answers and returns to the first step.
func (w *Wizard) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.step = StepGoals
	w.profile = OnboardingProfile{}
}

func (w *Wizard) expect(step OnboardingStep) error {
	if w.step != step {
		return fmt.Errorf("%w: on %s, got %s", ErrWrongStep, w.step, step)
	}
	return nil
}

func parseFloat(s string) (float64, error) { return strconv.ParseFloat(s, 64) }

func parseMeasurement[T int | float64](field, raw string, parse func(string) (T, error)) (T, error) {
	var zero T
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return zero, fmt.Errorf("%w: %s is required", ErrStepIncomplete, field)
	}
	v, err := parse(raw)
	if err != nil {
		return zero, fmt.Errorf("%w: %s must be a number", ErrStepIncomplete, field)
	}
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return zero, fmt.Errorf("%w: %s must be a positive number", ErrStepIncomplete, field)
	}
	return v, nil
}
