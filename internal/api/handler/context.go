package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wellpath/wellness/internal/api/middleware"
	"github.com/wellpath/wellness/internal/core/domain"
	"github.com/wellpath/wellness/internal/core/service"
)

// ctxClient returns the client session injected by the Session middleware.
// Its absence means the route was registered without the middleware.
func ctxClient(c echo.Context) (*service.ClientSession, error) {
	cs := middleware.ClientFrom(c)
	if cs == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return cs, nil
}

// screenOf applies the route guard to the current session state.
func screenOf(cs *service.ClientSession) domain.Screen {
	st := cs.Auth.CurrentState()
	return domain.ResolveScreen(st.IsAuthenticated, st.User != nil && st.User.NeedsOnboarding)
}
