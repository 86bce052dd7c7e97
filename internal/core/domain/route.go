package domain

// Screen is one of the three top-level views of the application.
type Screen string

const (
	LoginScreen      Screen = "login"
	OnboardingScreen Screen = "onboarding"
	HomeScreen       Screen = "home"
)

// Route paths.
const (
	PathHome       = "/"
	PathLogin      = "/login"
	PathOnboarding = "/onboarding"
)

// Path returns the route that renders the screen.
func (s Screen) Path() string {
	switch s {
	case HomeScreen:
		return PathHome
	case OnboardingScreen:
		return PathOnboarding
	default:
		return PathLogin
	}
}

// ResolveScreen selects the screen a session may see.
func ResolveScreen(isAuthenticated, needsOnboarding bool) Screen {
	switch {
	case !isAuthenticated:
		return LoginScreen
	case needsOnboarding:
		return OnboardingScreen
	default:
		return HomeScreen
	}
}

// Navigation is the outcome of requesting a route.
type Navigation struct {
	Screen Screen
	// RedirectTo is set when the requested path must not be rendered.
	RedirectTo string
}

// Navigate applies the route guard to a requested path. The login route is
// never guarded; the home and onboarding routes redirect to wherever
// ResolveScreen points. ok is false for unknown paths.
func Navigate(path string, isAuthenticated, needsOnboarding bool) (nav Navigation, ok bool) {
	switch path {
	case PathLogin:
		return Navigation{Screen: LoginScreen}, true
	case PathHome, PathOnboarding:
	default:
		return Navigation{}, false
	}

	screen := ResolveScreen(isAuthenticated, needsOnboarding)
	nav = Navigation{Screen: screen}
	if screen.Path() != path {
		nav.RedirectTo = screen.Path()
	}
	return nav, true
}
