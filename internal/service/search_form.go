package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/njprem/GuideMe_Site/internal/domain"
	"github.com/njprem/GuideMe_Site/internal/repository/ports"
)

// SubmitResult describes what a successful submission did: either it handed the
// query to the OnSearch callback, or it produced a redirect to the listing route.
type SubmitResult struct {
	Query     domain.SearchQuery
	Redirect  string
	Delivered bool
}

type SearchFormOption func(*SearchForm)

// WithOnSearch replaces navigation with a callback invoked once per successful submit.
func WithOnSearch(fn func(domain.SearchQuery)) SearchFormOption {
	return func(f *SearchForm) {
		f.onSearch = fn
	}
}

// SearchForm is the state behind the destination search form: field values,
// per-field errors, the loading flag and the advanced options toggle.
type SearchForm struct {
	backend     ports.SearchBackend
	listingPath string
	onSearch    func(domain.SearchQuery)

	mu       sync.Mutex
	query    domain.SearchQuery
	errors   domain.ValidationErrors
	loading  bool
	advanced bool
}

func NewSearchForm(backend ports.SearchBackend, listingPath string, opts ...SearchFormOption) *SearchForm {
	f := &SearchForm{
		backend:     backend,
		listingPath: listingPath,
		errors:      domain.ValidationErrors{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *SearchForm) Query() domain.SearchQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.query
}

// Errors returns a copy of the current field errors.
func (f *SearchForm) Errors() domain.ValidationErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(domain.ValidationErrors, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

func (f *SearchForm) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

func (f *SearchForm) Advanced() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.advanced
}

// UpdateField sets one field and clears that field's error, leaving the others in place.
func (f *SearchForm) UpdateField(field domain.SearchField, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case domain.SearchFieldDestination:
		f.query.Destination = value
	case domain.SearchFieldCountry:
		f.query.Country = domain.ParseCountry(value)
	case domain.SearchFieldDate:
		f.query.Date = domain.ParseDate(value)
	case domain.SearchFieldGuests:
		f.query.Guests = domain.ParseGuests(value)
	default:
		return
	}
	f.errors.Clear(field)
}

// RestoreErrors carries the errors shown by a previous render into this form. A field
// is restored only while its value still fails, so a field edited since then stays clean.
func (f *SearchForm) RestoreErrors(fields []domain.SearchField) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, field := range fields {
		if fe, failed := domain.FieldErrorFor(f.query, field); failed {
			f.errors[field] = fe
		}
	}
}

// ApplySuggestion is the quick-suggestion shortcut: the city replaces the destination as is.
func (f *SearchForm) ApplySuggestion(city string) {
	f.UpdateField(domain.SearchFieldDestination, city)
}

func (f *SearchForm) ToggleAdvanced() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.advanced = !f.advanced
}

func (f *SearchForm) SetAdvanced(open bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.advanced = open
}

// Validate recomputes the error map from scratch.
func (f *SearchForm) Validate() (bool, domain.ValidationErrors) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validateLocked()
}

func (f *SearchForm) validateLocked() (bool, domain.ValidationErrors) {
	f.errors = domain.ValidateSearchQuery(f.query)
	out := make(domain.ValidationErrors, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return len(out) == 0, out
}

// Submit validates and, when valid, awaits the search backend before either
// calling OnSearch or returning the listing redirect. A second Submit while the
// first is still waiting fails with ErrSearchInProgress.
func (f *SearchForm) Submit(ctx context.Context) (SubmitResult, error) {
	f.mu.Lock()
	if f.loading {
		f.mu.Unlock()
		return SubmitResult{}, ErrSearchInProgress
	}
	ok, errs := f.validateLocked()
	if !ok {
		f.mu.Unlock()
		return SubmitResult{}, fmt.Errorf("%w: %w", ErrSearchInvalid, errs.Err())
	}
	f.loading = true
	query := f.query
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.loading = false
		f.mu.Unlock()
	}()

	if f.backend != nil {
		if err := f.backend.Search(ctx, query); err != nil {
			return SubmitResult{}, fmt.Errorf("search backend: %w", err)
		}
	}

	if f.onSearch != nil {
		f.onSearch(query)
		return SubmitResult{Query: query, Delivered: true}, nil
	}
	return SubmitResult{Query: query, Redirect: query.ListingURL(f.listingPath)}, nil
}
