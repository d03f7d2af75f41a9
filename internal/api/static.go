package api

import (
	_ "embed"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed web/index.html
var landingHTML []byte

// serveLanding handles GET / with the embedded landing page.
func serveLanding(c echo.Context) error {
	return c.HTMLBlob(http.StatusOK, landingHTML)
}
