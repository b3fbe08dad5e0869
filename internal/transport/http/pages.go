package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/njprem/GuideMe_Site/internal/catalog"
	"github.com/njprem/GuideMe_Site/internal/domain"
	"github.com/njprem/GuideMe_Site/internal/logging"
	"github.com/njprem/GuideMe_Site/internal/service"
	"github.com/njprem/GuideMe_Site/internal/view"
)

const (
	noticeSearchInProgress = "Поиск уже выполняется, подождите немного"
	noticeSearchFailed     = "Не удалось выполнить поиск, попробуйте ещё раз"
)

type PageHandler struct {
	catalog  *catalog.Catalog
	searches *service.SearchService
	likes    *service.LikeService
	log      *logrus.Logger
}

func RegisterPages(e *echo.Echo, c *catalog.Catalog, searches *service.SearchService, likes *service.LikeService, log *logrus.Logger) *PageHandler {
	handler := &PageHandler{
		catalog:  c,
		searches: searches,
		likes:    likes,
		log:      log,
	}

	e.GET("/", handler.landing)
	e.GET(searches.ListingPath(), handler.guides)
	e.POST("/search", handler.search)
	return handler
}

func (h *PageHandler) landing(c echo.Context) error {
	return h.renderLanding(c, http.StatusOK, h.searches.NewForm(), "")
}

// guides renders the listing placeholder. Search parameters in the URL are not read.
func (h *PageHandler) guides(c echo.Context) error {
	return h.renderGuides(c, http.StatusOK, view.GuidesInput{
		Subscribed: formFlag(c.QueryParam("subscribed")),
	})
}

func (h *PageHandler) search(c echo.Context) error {
	form := h.searches.NewForm()
	form.SetAdvanced(formFlag(c.FormValue("advanced")))
	for _, field := range []domain.SearchField{
		domain.SearchFieldDestination,
		domain.SearchFieldCountry,
		domain.SearchFieldDate,
		domain.SearchFieldGuests,
	} {
		form.UpdateField(field, cleanInput(c.FormValue(string(field))))
	}
	form.RestoreErrors(shownErrorFields(c.FormValue("errors")))

	if suggestion := cleanInput(c.FormValue("suggestion")); suggestion != "" {
		form.ApplySuggestion(suggestion)
		return h.renderLanding(c, http.StatusOK, form, "")
	}

	switch c.FormValue("action") {
	case "toggle-advanced":
		form.ToggleAdvanced()
		return h.renderLanding(c, http.StatusOK, form, "")
	case "suggest":
		return h.renderLanding(c, http.StatusOK, form, "")
	}

	visitorID, _ := CurrentVisitor(c)
	result, err := h.searches.Submit(c.Request().Context(), visitorID, form)
	switch {
	case err == nil:
		return c.Redirect(http.StatusSeeOther, result.Redirect)
	case errors.Is(err, service.ErrSearchInvalid):
		return h.renderLanding(c, http.StatusUnprocessableEntity, form, "")
	case errors.Is(err, service.ErrSearchInProgress):
		return h.renderLanding(c, http.StatusConflict, form, noticeSearchInProgress)
	default:
		return h.renderLanding(c, http.StatusServiceUnavailable, form, noticeSearchFailed)
	}
}

func (h *PageHandler) renderLanding(c echo.Context, status int, form *service.SearchForm, notice string) error {
	ctx := c.Request().Context()
	liked := domain.LikedSet{}
	if visitorID, ok := CurrentVisitor(c); ok {
		set, err := h.likes.Liked(ctx, visitorID)
		if err != nil {
			logging.For(ctx, h.log).WithError(err).Warn("load liked guides")
		} else {
			liked = set
		}
	}

	search := view.NewSearchFormView(form, h.catalog.Suggestions)
	search.Notice = notice
	page := view.NewLandingPage(view.LandingInput{
		State:       view.ParsePageState(c.QueryParams()),
		Catalog:     h.catalog,
		Liked:       liked,
		Search:      search,
		ListingPath: h.searches.ListingPath(),
	})
	return c.Render(status, view.PageLanding, page)
}

func (h *PageHandler) renderGuides(c echo.Context, status int, in view.GuidesInput) error {
	in.Path = h.searches.ListingPath()
	in.State = view.ParsePageState(c.QueryParams())
	in.Catalog = h.catalog
	return c.Render(status, view.PageGuides, view.NewGuidesPage(in))
}

// shownErrorFields parses the comma separated list of fields that were showing an
// error when the form was rendered. Unknown names are dropped.
func shownErrorFields(raw string) []domain.SearchField {
	var fields []domain.SearchField
	for _, name := range strings.Split(raw, ",") {
		if field, ok := domain.ParseSearchField(name); ok {
			fields = append(fields, field)
		}
	}
	return fields
}
