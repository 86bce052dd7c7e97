package domain

import "strconv"

// Keys of the durable session mirror.
const (
	KeyIsAuthenticated = "isAuthenticated"
	KeyUserID          = "userId"
	KeyUserName        = "userName"
	KeyUserEmail       = "userEmail"
	KeyNeedsOnboarding = "needsOnboarding"
)

// SessionKeys lists every key the durable mirror may hold.
var SessionKeys = []string{
	KeyIsAuthenticated,
	KeyUserID,
	KeyUserName,
	KeyUserEmail,
	KeyNeedsOnboarding,
}

// SessionUser is the subset of a user kept in the local session.
type SessionUser struct {
	ID              string `json:"id,omitempty"`
	Name            string `json:"name,omitempty"`
	Email           string `json:"email"`
	NeedsOnboarding bool   `json:"needs_onboarding"`
}

// SessionRecord is the durable mirror of the in-memory session.
type SessionRecord struct {
	IsAuthenticated bool
	UserID          string
	UserName        string
	UserEmail       string
	NeedsOnboarding bool
}

// RecordFor builds the durable record of an authenticated user.
func RecordFor(u SessionUser) SessionRecord {
	return SessionRecord{
		IsAuthenticated: true,
		UserID:          u.ID,
		UserName:        u.Name,
		UserEmail:       u.Email,
		NeedsOnboarding: u.NeedsOnboarding,
	}
}

// Values renders the record as the string key/value pairs stored durably.
func (r SessionRecord) Values() map[string]string {
	return map[string]string{
		KeyIsAuthenticated: strconv.FormatBool(r.IsAuthenticated),
		KeyUserID:          r.UserID,
		KeyUserName:        r.UserName,
		KeyUserEmail:       r.UserEmail,
		KeyNeedsOnboarding: strconv.FormatBool(r.NeedsOnboarding),
	}
}

// SessionRecordFromValues parses stored key/value pairs. Only the literal
// "true" counts as a set flag.
func SessionRecordFromValues(v map[string]string) SessionRecord {
	return SessionRecord{
		IsAuthenticated: v[KeyIsAuthenticated] == "true",
		UserID:          v[KeyUserID],
		UserName:        v[KeyUserName],
		UserEmail:       v[KeyUserEmail],
		NeedsOnboarding: v[KeyNeedsOnboarding] == "true",
	}
}

// User returns the session user described by the record, or nil when the
// record is not authenticated.
func (r SessionRecord) User() *SessionUser {
	if !r.IsAuthenticated {
		return nil
	}
	return &SessionUser{
		ID:              r.UserID,
		Name:            r.UserName,
		Email:           r.UserEmail,
		NeedsOnboarding: r.NeedsOnboarding,
	}
}

// SessionState is the session-level lifecycle state.
type SessionState string

const (
	StateLoggedOut               SessionState = "logged_out"
	StateLoggedInNeedsOnboarding SessionState = "needs_onboarding"
	StateLoggedInComplete        SessionState = "complete"
)

// StateOf derives the lifecycle state from the authentication flag and user.
func StateOf(isAuthenticated bool, u *SessionUser) SessionState {
	switch {
	case !isAuthenticated || u == nil:
		return StateLoggedOut
	case u.NeedsOnboarding:
		return StateLoggedInNeedsOnboarding
	default:
		return StateLoggedInComplete
	}
}
