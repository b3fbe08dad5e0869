package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/njprem/GuideMe_Site/internal/logging"
	"github.com/njprem/GuideMe_Site/internal/util"
)

const (
	visitorCookieName = "guideme_visitor"
	contextVisitorKey = "visitor_id"
)

// VisitorSession makes sure every request carries a visitor id. A missing or invalid
// cookie is replaced by a freshly signed one for a new visitor.
func VisitorSession(tokens *util.VisitorTokenManager, secureCookie bool, log *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cookie, err := c.Cookie(visitorCookieName); err == nil && cookie.Value != "" {
				if claims, err := tokens.Parse(cookie.Value); err == nil {
					c.Set(contextVisitorKey, claims.VisitorID)
					return next(c)
				}
			}

			visitorID := uuid.New()
			token, expiresAt, err := tokens.Issue(visitorID)
			if err != nil {
				logging.For(c.Request().Context(), log).WithError(err).Error("issue visitor token")
				return c.JSON(http.StatusInternalServerError, util.Error("unable to start session"))
			}
			c.SetCookie(&http.Cookie{
				Name:     visitorCookieName,
				Value:    token,
				Path:     "/",
				Expires:  expiresAt,
				MaxAge:   int(time.Until(expiresAt).Seconds()),
				HttpOnly: true,
				Secure:   secureCookie,
				SameSite: http.SameSiteLaxMode,
			})
			c.Set(contextVisitorKey, visitorID)
			return next(c)
		}
	}
}

func CurrentVisitor(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(contextVisitorKey).(uuid.UUID)
	return id, ok && id != uuid.Nil
}
