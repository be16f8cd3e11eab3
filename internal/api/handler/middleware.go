package handler

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"beeclaimer/internal/models"
	"beeclaimer/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type ctxKey string

var ctxKeyAuthUser ctxKey = "AUTH_USER"

const headerAdminPin = "X-Admin-Pin"

func Authn(verifier interface {
	ValidateInitData(dataStr string) (*models.UserFromAuth, error)
},
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return next(c)
			}

			parts := strings.Split(header, "Bearer")
			if len(parts) != 2 {
				return next(c)
			}

			token := strings.TrimSpace(parts[1])
			if len(token) == 0 {
				return next(c)
			}

			user, err := verifier.ValidateInitData(token)
			if err != nil {
				// although it's a client error, we don't want to leak details
				//nolint:errcheck
				httpx.Abort(c, errorx.Wrap(errors.New("invalid access token"), errorx.Authn), -1)
				return nil
			}

			ctx := c.Request().Context()
			ctx = context.WithValue(ctx, ctxKeyAuthUser, user)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// AuthnAdmin compares the request PIN with the one in the current config
// snapshot. This is a UI access code for a mock control panel, not a security
// boundary.
func AuthnAdmin(container *do.Injector) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			serviceConfig, err := do.Invoke[*services.ServiceConfig](container)
			if err != nil {
				return err
			}

			pin := c.Request().Header.Get(headerAdminPin)
			expected := serviceConfig.Current().AdminPin
			if pin == "" || subtle.ConstantTimeCompare([]byte(pin), []byte(expected)) != 1 {
				//nolint:errcheck
				httpx.Abort(c, errorx.Wrap(errors.New("denied"), errorx.Authn), -1)
				return nil
			}

			return next(c)
		}
	}
}
