package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// requesterEmail extracts the subject email injected by the Auth middleware.
// A missing email means the middleware did not run on this route; fail closed.
func requesterEmail(c echo.Context) (string, error) {
	email, _ := c.Get("email").(string)
	if email == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return email, nil
}
