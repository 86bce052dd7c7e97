package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionRecord_Values(t *testing.T) {
	rec := RecordFor(SessionUser{ID: "user_1", Name: "Ann", Email: "ann@x.io", NeedsOnboarding: true})

	require.Equal(t, map[string]string{
		KeyIsAuthenticated: "true",
		KeyUserID:          "user_1",
		KeyUserName:        "Ann",
		KeyUserEmail:       "ann@x.io",
		KeyNeedsOnboarding: "true",
	}, rec.Values())
	require.Len(t, rec.Values(), len(SessionKeys))
}

func TestSessionRecordFromValues_OnlyLiteralTrue(t *testing.T) {
	rec := SessionRecordFromValues(map[string]string{
		KeyIsAuthenticated: "TRUE",
		KeyNeedsOnboarding: "1",
	})
	require.False(t, rec.IsAuthenticated)
	require.False(t, rec.NeedsOnboarding)
	require.Nil(t, rec.User())
}

func TestSessionRecord_User(t *testing.T) {
	in := SessionUser{ID: "user_1", Name: "Ann", Email: "ann@x.io"}
	out := SessionRecordFromValues(RecordFor(in).Values()).User()

	require.NotNil(t, out)
	require.Equal(t, in, *out)
}

func TestStateOf(t *testing.T) {
	require.Equal(t, StateLoggedOut, StateOf(false, nil))
	require.Equal(t, StateLoggedOut, StateOf(true, nil))
	require.Equal(t, StateLoggedOut, StateOf(false, &SessionUser{Email: "a@x.io"}))
	require.Equal(t, StateLoggedInNeedsOnboarding, StateOf(true, &SessionUser{Email: "a@x.io", NeedsOnboarding: true}))
	require.Equal(t, StateLoggedInComplete, StateOf(true, &SessionUser{Email: "a@x.io"}))
}
