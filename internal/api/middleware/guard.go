package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wellpath/wellness/internal/core/domain"
)

type guardResponse struct {
	Error      string        `json:"error"`
	Screen     domain.Screen `json:"screen"`
	RedirectTo string        `json:"redirect_to"`
}

// RequireScreen lets a request through only when the route guard currently
// resolves the session to one of the given screens. Anonymous sessions get
// 401, sessions at another stage get 409; both carry the redirect target.
func RequireScreen(screens ...domain.Screen) echo.MiddlewareFunc {
	allowed := make(map[domain.Screen]struct{}, len(screens))
	for _, s := range screens {
		allowed[s] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cs := ClientFrom(c)
			if cs == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session")
			}

			st := cs.Auth.CurrentState()
			needs := st.User != nil && st.User.NeedsOnboarding
			screen := domain.ResolveScreen(st.IsAuthenticated, needs)
			if _, ok := allowed[screen]; ok {
				return next(c)
			}

			code, msg := http.StatusConflict, "not available at this stage"
			if screen == domain.LoginScreen {
				code, msg = http.StatusUnauthorized, "login required"
			}
			return c.JSON(code, guardResponse{Error: msg, Screen: screen, RedirectTo: screen.Path()})
		}
	}
}
