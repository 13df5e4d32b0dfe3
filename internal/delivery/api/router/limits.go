package router

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// IsUpload reports whether the request is a multipart image upload. Those
// skip the global body limit and get their own on the route.
func IsUpload(c echo.Context) bool {
	return c.Request().Method == http.MethodPost &&
		c.Path() == "/api/v1/listings/:id/image"
}

// formatBytes renders n in the unit syntax BodyLimit parses.
func formatBytes(n int64) string {
	const kb = 1 << 10
	if n%kb == 0 {
		return strconv.FormatInt(n/kb, 10) + "K"
	}

	return strconv.FormatInt(n, 10) + "B"
}
