package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Invalidator drops cached read models
type Invalidator interface {
	Invalidate()
}

// InvalidateOnWrite flushes the given caches after every successful request
// that is not a read. Failed writes leave the caches untouched.
func InvalidateOnWrite(invalidators ...Invalidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			switch c.Request().Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				return err
			}
			if err != nil || c.Response().Status >= http.StatusBadRequest {
				return err
			}

			for _, inv := range invalidators {
				inv.Invalidate()
			}
			return nil
		}
	}
}
