package domain

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

type SearchField string

const (
	SearchFieldDestination SearchField = "destination"
	SearchFieldCountry     SearchField = "country"
	SearchFieldDate        SearchField = "date"
	SearchFieldGuests      SearchField = "guests"
)

func ParseSearchField(raw string) (SearchField, bool) {
	switch SearchField(strings.ToLower(strings.TrimSpace(raw))) {
	case SearchFieldDestination:
		return SearchFieldDestination, true
	case SearchFieldCountry:
		return SearchFieldCountry, true
	case SearchFieldDate:
		return SearchFieldDate, true
	case SearchFieldGuests:
		return SearchFieldGuests, true
	default:
		return "", false
	}
}

type Country string

const (
	CountryRussia   Country = "russia"
	CountryFrance   Country = "france"
	CountryItaly    Country = "italy"
	CountryJapan    Country = "japan"
	CountrySpain    Country = "spain"
	CountryGreece   Country = "greece"
	CountryTurkey   Country = "turkey"
	CountryGermany  Country = "germany"
	CountryUSA      Country = "usa"
	CountryThailand Country = "thailand"
)

type CountryOption struct {
	Code  Country
	Label string
}

// KnownCountries is the fixed set offered by the search form, in display order.
var KnownCountries = []CountryOption{
	{Code: CountryRussia, Label: "Россия"},
	{Code: CountryFrance, Label: "Франция"},
	{Code: CountryItaly, Label: "Италия"},
	{Code: CountryJapan, Label: "Япония"},
	{Code: CountrySpain, Label: "Испания"},
	{Code: CountryGreece, Label: "Греция"},
	{Code: CountryTurkey, Label: "Турция"},
	{Code: CountryGermany, Label: "Германия"},
	{Code: CountryUSA, Label: "США"},
	{Code: CountryThailand, Label: "Таиланд"},
}

const CountryPlaceholder = "Выберите страну"

// ParseCountry returns the empty country for anything outside KnownCountries.
func ParseCountry(raw string) Country {
	code := Country(strings.ToLower(strings.TrimSpace(raw)))
	for _, c := range KnownCountries {
		if c.Code == code {
			return code
		}
	}
	return ""
}

func (c Country) Label() string {
	for _, option := range KnownCountries {
		if option.Code == c {
			return option.Label
		}
	}
	return ""
}

// CountryByLabel maps a display label ("Италия") back to its code.
func CountryByLabel(label string) Country {
	trimmed := strings.TrimSpace(label)
	for _, option := range KnownCountries {
		if strings.EqualFold(option.Label, trimmed) {
			return option.Code
		}
	}
	return ""
}

const (
	MinGuests = 1
	MaxGuests = 5
)

type GuestOption struct {
	Value int
	Label string
}

var GuestOptions = []GuestOption{
	{Value: 1, Label: "1 гость"},
	{Value: 2, Label: "2 гостя"},
	{Value: 3, Label: "3 гостя"},
	{Value: 4, Label: "4 гостя"},
	{Value: 5, Label: "5+ гостей"},
}

const DateLayout = "2006-01-02"

// SearchQuery is the transient search intent collected by the search form.
type SearchQuery struct {
	Destination string  `json:"destination"`
	Country     Country `json:"country"`
	Date        string  `json:"date,omitempty"`
	Guests      int     `json:"guests,omitempty"`
}

func (q SearchQuery) HasDate() bool {
	return q.Date != ""
}

func (q SearchQuery) HasGuests() bool {
	return q.Guests > 0
}

// ParseDate accepts an ISO calendar date; anything else yields "".
func ParseDate(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if _, err := time.Parse(DateLayout, trimmed); err != nil {
		return ""
	}
	return trimmed
}

// ParseGuests mirrors the form's select: non-numeric or non-positive input means "no guests".
func ParseGuests(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < MinGuests {
		return 0
	}
	if n > MaxGuests {
		return MaxGuests
	}
	return n
}

// Encode returns the listing query string. date and guests are only present when set.
func (q SearchQuery) Encode() string {
	var b strings.Builder
	b.WriteString("destination=")
	b.WriteString(url.QueryEscape(q.Destination))
	b.WriteString("&country=")
	b.WriteString(url.QueryEscape(string(q.Country)))
	if q.HasDate() {
		b.WriteString("&date=")
		b.WriteString(url.QueryEscape(q.Date))
	}
	if q.HasGuests() {
		b.WriteString("&guests=")
		b.WriteString(strconv.Itoa(q.Guests))
	}
	return b.String()
}

func (q SearchQuery) ListingURL(base string) string {
	return base + "?" + q.Encode()
}
