package domain

import (
	"errors"
	"sort"
	"strings"
)

type FieldErrorCode string

const (
	MissingDestination FieldErrorCode = "MissingDestination"
	MissingCountry     FieldErrorCode = "MissingCountry"
)

var (
	ErrMissingDestination = errors.New("destination is required")
	ErrMissingCountry     = errors.New("country is required")
)

type FieldError struct {
	Code    FieldErrorCode `json:"code"`
	Message string         `json:"message"`
}

func (e FieldError) Err() error {
	switch e.Code {
	case MissingDestination:
		return ErrMissingDestination
	case MissingCountry:
		return ErrMissingCountry
	default:
		return errors.New(e.Message)
	}
}

var (
	missingDestinationError = FieldError{Code: MissingDestination, Message: "Укажите направление"}
	missingCountryError     = FieldError{Code: MissingCountry, Message: "Выберите страну"}
)

// ValidationErrors maps a search field to the message shown beneath it.
type ValidationErrors map[SearchField]FieldError

func (v ValidationErrors) Has(field SearchField) bool {
	_, ok := v[field]
	return ok
}

func (v ValidationErrors) Message(field SearchField) string {
	return v[field].Message
}

// Fields lists the failing fields in name order.
func (v ValidationErrors) Fields() []SearchField {
	fields := make([]SearchField, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i] < fields[j] })
	return fields
}

func (v ValidationErrors) Clear(field SearchField) {
	delete(v, field)
}

// Err joins the sentinel errors of every failing field, or returns nil.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	errs := make([]error, 0, len(v))
	for _, field := range v.Fields() {
		errs = append(errs, v[field].Err())
	}
	return errors.Join(errs...)
}

// FieldErrorFor reports the error field currently carries in q, if any.
func FieldErrorFor(q SearchQuery, field SearchField) (FieldError, bool) {
	switch field {
	case SearchFieldDestination:
		if strings.TrimSpace(q.Destination) == "" {
			return missingDestinationError, true
		}
	case SearchFieldCountry:
		if q.Country == "" {
			return missingCountryError, true
		}
	}
	return FieldError{}, false
}

// ValidateSearchQuery only checks destination and country; the advanced fields are optional.
func ValidateSearchQuery(q SearchQuery) ValidationErrors {
	errs := ValidationErrors{}
	for _, field := range []SearchField{SearchFieldDestination, SearchFieldCountry} {
		if fe, failed := FieldErrorFor(q, field); failed {
			errs[field] = fe
		}
	}
	return errs
}
