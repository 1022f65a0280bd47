package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Identity is the claim set the auth middleware injects per request.
type Identity struct {
	UserID     string
	Department string
	Role       string
}

// MustIdentity extracts the acting identity from the echo context. Returns
// false after writing a 401 when the auth middleware did not run.
func MustIdentity(c echo.Context) (Identity, bool) {
	userID, _ := c.Get("user_id").(string)
	department, _ := c.Get("department").(string)
	role, _ := c.Get("role").(string)
	if userID == "" {
		_ = c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
		return Identity{}, false
	}
	return Identity{UserID: userID, Department: department, Role: role}, true
}
