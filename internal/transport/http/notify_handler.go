package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/njprem/GuideMe_Site/internal/service"
	"github.com/njprem/GuideMe_Site/internal/view"
)

const (
	notifyInvalidEmail = "Введите корректный email"
	notifyTooMany      = "Слишком много попыток, попробуйте позже"
	notifyFailed       = "Не удалось оформить подписку, попробуйте позже"
)

type NotifyHandler struct {
	pages         *PageHandler
	subscriptions *service.LaunchSubscriptionService
}

// RegisterLaunchNotify wires the "notify me when ready" form of the listing page.
// Each visitor may submit it perMinute times per minute.
func RegisterLaunchNotify(e *echo.Echo, pages *PageHandler, subscriptions *service.LaunchSubscriptionService, perMinute int) {
	handler := &NotifyHandler{pages: pages, subscriptions: subscriptions}
	e.POST(pages.searches.ListingPath()+"/notify", handler.subscribe, notifyRateLimit(pages, perMinute))
}

func notifyRateLimit(pages *PageHandler, perMinute int) echo.MiddlewareFunc {
	if perMinute <= 0 {
		perMinute = 6
	}
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(perMinute) / 60),
		Burst:     perMinute,
		ExpiresIn: 3 * time.Minute,
	})
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		// Visitor cookies are minted per request when missing, so the client address is the key.
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return pages.renderGuides(c, http.StatusTooManyRequests, view.GuidesInput{NotifyError: notifyTooMany})
		},
		ErrorHandler: func(c echo.Context, _ error) error {
			return pages.renderGuides(c, http.StatusForbidden, view.GuidesInput{NotifyError: notifyFailed})
		},
	})
}

func (h *NotifyHandler) subscribe(c echo.Context) error {
	email := cleanInput(c.FormValue("email"))
	visitorID, _ := CurrentVisitor(c)

	_, err := h.subscriptions.Subscribe(c.Request().Context(), visitorID, email)
	switch {
	case err == nil, errors.Is(err, service.ErrAlreadySubscribed):
		return c.Redirect(http.StatusSeeOther, h.pages.searches.ListingPath()+"?subscribed=1")
	case errors.Is(err, service.ErrInvalidEmail):
		return h.pages.renderGuides(c, http.StatusUnprocessableEntity, view.GuidesInput{
			NotifyError: notifyInvalidEmail,
			NotifyEmail: email,
		})
	default:
		return h.pages.renderGuides(c, http.StatusInternalServerError, view.GuidesInput{
			NotifyError: notifyFailed,
			NotifyEmail: email,
		})
	}
}
