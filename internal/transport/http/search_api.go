package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/xeipuuv/gojsonschema"

	"github.com/njprem/GuideMe_Site/internal/domain"
	"github.com/njprem/GuideMe_Site/internal/service"
	"github.com/njprem/GuideMe_Site/internal/util"
)

const maxSearchBody = 4 << 10

var searchRequestSchema = gojsonschema.NewStringLoader(`{
  "type": "object",
  "properties": {
    "destination": {"type": "string", "maxLength": 200},
    "country": {"type": "string", "maxLength": 32},
    "date": {"type": "string", "maxLength": 10},
    "guests": {"type": "integer", "minimum": 0}
  },
  "additionalProperties": false
}`)

type searchRequest struct {
	Destination string `json:"destination"`
	Country     string `json:"country"`
	Date        string `json:"date"`
	Guests      int    `json:"guests"`
}

type SearchAPIHandler struct {
	searches *service.SearchService
	schema   *gojsonschema.Schema
}

func RegisterSearchAPI(e *echo.Echo, searches *service.SearchService) error {
	schema, err := gojsonschema.NewSchema(searchRequestSchema)
	if err != nil {
		return err
	}
	handler := &SearchAPIHandler{searches: searches, schema: schema}
	e.POST("/api/v1/search", handler.search)
	return nil
}

// search runs the same form rules as the landing page, but hands the query back
// through OnSearch instead of redirecting.
func (h *SearchAPIHandler) search(c echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxSearchBody))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if details, err := h.validateBody(body); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	} else if len(details) > 0 {
		return c.JSON(http.StatusBadRequest, util.Envelope{"error": "invalid request body", "details": details})
	}

	var req searchRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	var delivered domain.SearchQuery
	form := h.searches.NewForm(service.WithOnSearch(func(q domain.SearchQuery) {
		delivered = q
	}))
	form.UpdateField(domain.SearchFieldDestination, cleanInput(req.Destination))
	form.UpdateField(domain.SearchFieldCountry, req.Country)
	form.UpdateField(domain.SearchFieldDate, req.Date)
	if req.Guests > 0 {
		form.UpdateField(domain.SearchFieldGuests, strconv.Itoa(req.Guests))
	}

	visitorID, _ := CurrentVisitor(c)
	_, err = h.searches.Submit(c.Request().Context(), visitorID, form)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, util.Envelope{
			"query":       delivered,
			"listing_url": delivered.ListingURL(h.searches.ListingPath()),
		})
	case errors.Is(err, service.ErrSearchInvalid):
		fields := make(map[string]string)
		for field, fe := range form.Errors() {
			fields[string(field)] = fe.Message
		}
		return c.JSON(http.StatusUnprocessableEntity, util.FieldErrors(fields))
	case errors.Is(err, service.ErrSearchInProgress):
		return c.JSON(http.StatusConflict, util.Error("search already in progress"))
	default:
		return c.JSON(http.StatusServiceUnavailable, util.Error("search is temporarily unavailable"))
	}
}

func (h *SearchAPIHandler) validateBody(body []byte) ([]string, error) {
	result, err := h.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, err
	}
	if result.Valid() {
		return nil, nil
	}
	details := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return details, nil
}
