package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/njprem/GuideMe_Site/internal/domain"
)

type recordingBackend struct {
	calls   int
	last    domain.SearchQuery
	err     error
	release chan struct{}
	started chan struct{}
}

func (b *recordingBackend) Search(ctx context.Context, query domain.SearchQuery) error {
	b.calls++
	b.last = query
	if b.started != nil {
		close(b.started)
	}
	if b.release != nil {
		select {
		case <-b.release:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return b.err
}

func TestSearchForm_SubmitEmptyDestination(t *testing.T) {
	backend := &recordingBackend{}
	called := false
	form := NewSearchForm(backend, "/guides", WithOnSearch(func(domain.SearchQuery) { called = true }))
	form.UpdateField(domain.SearchFieldCountry, "italy")

	result, err := form.Submit(context.Background())
	if !errors.Is(err, ErrSearchInvalid) || !errors.Is(err, domain.ErrMissingDestination) {
		t.Fatalf("expected missing destination error, got %v", err)
	}
	if result.Redirect != "" || called || backend.calls != 0 {
		t.Fatalf("expected no navigation, callback or backend call")
	}
	if form.Errors()[domain.SearchFieldDestination].Code != domain.MissingDestination {
		t.Fatalf("expected MissingDestination to be displayed, got %v", form.Errors())
	}
}

func TestSearchForm_SubmitWhitespaceDestination(t *testing.T) {
	form := NewSearchForm(&recordingBackend{}, "/guides")
	form.UpdateField(domain.SearchFieldDestination, "   ")
	form.UpdateField(domain.SearchFieldCountry, "italy")

	if _, err := form.Submit(context.Background()); !errors.Is(err, domain.ErrMissingDestination) {
		t.Fatalf("expected missing destination error, got %v", err)
	}
}

func TestSearchForm_SubmitMissingCountry(t *testing.T) {
	backend := &recordingBackend{}
	called := false
	form := NewSearchForm(backend, "/guides", WithOnSearch(func(domain.SearchQuery) { called = true }))
	form.UpdateField(domain.SearchFieldDestination, "Rome")

	result, err := form.Submit(context.Background())
	if !errors.Is(err, domain.ErrMissingCountry) {
		t.Fatalf("expected missing country error, got %v", err)
	}
	if errors.Is(err, domain.ErrMissingDestination) {
		t.Fatalf("did not expect a destination error")
	}
	if result.Redirect != "" || called || backend.calls != 0 {
		t.Fatalf("expected no navigation, callback or backend call")
	}
	if form.Loading() {
		t.Fatalf("expected loading to stay false")
	}
}

func TestSearchForm_UpdateFieldClearsOnlyThatError(t *testing.T) {
	form := NewSearchForm(&recordingBackend{}, "/guides")
	if ok, errs := form.Validate(); ok || len(errs) != 2 {
		t.Fatalf("expected two errors, got %v", errs)
	}

	form.UpdateField(domain.SearchFieldDestination, "R")

	errs := form.Errors()
	if errs.Has(domain.SearchFieldDestination) {
		t.Fatalf("expected destination error to be cleared")
	}
	if !errs.Has(domain.SearchFieldCountry) {
		t.Fatalf("expected country error to remain")
	}
}

func TestSearchForm_RedirectWithoutOptionalFields(t *testing.T) {
	backend := &recordingBackend{}
	form := NewSearchForm(backend, "/guides")
	form.UpdateField(domain.SearchFieldDestination, "Rome")
	form.UpdateField(domain.SearchFieldCountry, "italy")

	result, err := form.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if result.Redirect != "/guides?destination=Rome&country=italy" {
		t.Fatalf("unexpected redirect %q", result.Redirect)
	}
	if result.Delivered {
		t.Fatalf("expected navigation, not callback delivery")
	}
	if backend.calls != 1 {
		t.Fatalf("expected backend to be awaited once, got %d", backend.calls)
	}
	if form.Loading() {
		t.Fatalf("expected loading flag cleared after submit")
	}
}

func TestSearchForm_RedirectWithOptionalFields(t *testing.T) {
	form := NewSearchForm(&recordingBackend{}, "/guides")
	form.UpdateField(domain.SearchFieldDestination, "Rome")
	form.UpdateField(domain.SearchFieldCountry, "italy")
	form.UpdateField(domain.SearchFieldDate, "2024-12-01")
	form.UpdateField(domain.SearchFieldGuests, "3")

	result, err := form.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	want := "/guides?destination=Rome&country=italy&date=2024-12-01&guests=3"
	if result.Redirect != want {
		t.Fatalf("expected %q, got %q", want, result.Redirect)
	}
}

func TestSearchForm_OnSearchInvokedOnce(t *testing.T) {
	var received []domain.SearchQuery
	form := NewSearchForm(&recordingBackend{}, "/guides", WithOnSearch(func(q domain.SearchQuery) {
		received = append(received, q)
	}))
	form.UpdateField(domain.SearchFieldDestination, "Rome")
	form.UpdateField(domain.SearchFieldCountry, "italy")

	result, err := form.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if len(received) != 1 {
		t.Fatalf("expected callback once, got %d", len(received))
	}
	if received[0].Destination != "Rome" || received[0].Country != domain.CountryItaly {
		t.Fatalf("unexpected query %+v", received[0])
	}
	if result.Redirect != "" || !result.Delivered {
		t.Fatalf("expected delivery without navigation, got %+v", result)
	}
}

func TestSearchForm_ToggleAdvancedTwice(t *testing.T) {
	form := NewSearchForm(&recordingBackend{}, "/guides")
	form.UpdateField(domain.SearchFieldDestination, "Rome")
	form.UpdateField(domain.SearchFieldGuests, "2")
	before := form.Query()

	form.ToggleAdvanced()
	if !form.Advanced() {
		t.Fatalf("expected advanced options visible after first toggle")
	}
	form.ToggleAdvanced()

	if form.Advanced() {
		t.Fatalf("expected advanced options hidden after second toggle")
	}
	if form.Query() != before {
		t.Fatalf("expected fields untouched, got %+v", form.Query())
	}
}

func TestSearchForm_ApplySuggestionOverwritesDestination(t *testing.T) {
	form := NewSearchForm(&recordingBackend{}, "/guides")
	form.UpdateField(domain.SearchFieldDestination, "Moscow")
	form.Validate()

	form.ApplySuggestion("Париж")

	if form.Query().Destination != "Париж" {
		t.Fatalf("expected suggestion to replace destination, got %q", form.Query().Destination)
	}
}

func TestSearchForm_RestoreErrorsThenSuggestion(t *testing.T) {
	form := NewSearchForm(&recordingBackend{}, "/guides")
	form.RestoreErrors([]domain.SearchField{domain.SearchFieldDestination, domain.SearchFieldCountry, domain.SearchFieldDate})

	errs := form.Errors()
	if !errs.Has(domain.SearchFieldDestination) || !errs.Has(domain.SearchFieldCountry) || len(errs) != 2 {
		t.Fatalf("expected destination and country errors restored, got %v", errs)
	}

	form.ApplySuggestion("Рим")
	errs = form.Errors()
	if errs.Has(domain.SearchFieldDestination) {
		t.Fatalf("expected suggestion to clear the destination error")
	}
	if !errs.Has(domain.SearchFieldCountry) {
		t.Fatalf("expected country error kept")
	}

	form.ToggleAdvanced()
	if !form.Errors().Has(domain.SearchFieldCountry) {
		t.Fatalf("toggling advanced options must not touch errors")
	}
}

func TestSearchForm_RestoreErrorsSkipsEditedFields(t *testing.T) {
	form := NewSearchForm(&recordingBackend{}, "/guides")
	form.UpdateField(domain.SearchFieldCountry, "japan")
	form.RestoreErrors([]domain.SearchField{domain.SearchFieldDestination, domain.SearchFieldCountry})

	errs := form.Errors()
	if errs.Has(domain.SearchFieldCountry) {
		t.Fatalf("country was filled in since the last render, error must not come back")
	}
	if !errs.Has(domain.SearchFieldDestination) {
		t.Fatalf("expected destination error restored")
	}
}

func TestSearchForm_InvalidGuestsClearsField(t *testing.T) {
	form := NewSearchForm(&recordingBackend{}, "/guides")
	form.UpdateField(domain.SearchFieldGuests, "4")
	form.UpdateField(domain.SearchFieldGuests, "")
	if form.Query().Guests != 0 {
		t.Fatalf("expected guests cleared, got %d", form.Query().Guests)
	}
}

func TestSearchForm_RejectsOverlappingSubmit(t *testing.T) {
	backend := &recordingBackend{release: make(chan struct{}), started: make(chan struct{})}
	form := NewSearchForm(backend, "/guides")
	form.UpdateField(domain.SearchFieldDestination, "Rome")
	form.UpdateField(domain.SearchFieldCountry, "italy")

	done := make(chan error, 1)
	go func() {
		_, err := form.Submit(context.Background())
		done <- err
	}()

	select {
	case <-backend.started:
	case <-time.After(2 * time.Second):
		t.Fatalf("first submit never reached the backend")
	}
	if !form.Loading() {
		t.Fatalf("expected loading while the backend is pending")
	}
	if _, err := form.Submit(context.Background()); !errors.Is(err, ErrSearchInProgress) {
		t.Fatalf("expected ErrSearchInProgress, got %v", err)
	}

	close(backend.release)
	if err := <-done; err != nil {
		t.Fatalf("first submit returned error: %v", err)
	}
	if form.Loading() {
		t.Fatalf("expected loading cleared")
	}
}

func TestSearchForm_BackendFailureClearsLoading(t *testing.T) {
	backend := &recordingBackend{err: errors.New("upstream down")}
	form := NewSearchForm(backend, "/guides")
	form.UpdateField(domain.SearchFieldDestination, "Rome")
	form.UpdateField(domain.SearchFieldCountry, "italy")

	result, err := form.Submit(context.Background())
	if err == nil {
		t.Fatalf("expected backend error")
	}
	if result.Redirect != "" {
		t.Fatalf("expected no redirect on failure")
	}
	if form.Loading() {
		t.Fatalf("expected loading cleared after failure")
	}
}

func TestDelayedBackend(t *testing.T) {
	backend := NewDelayedBackend(10 * time.Millisecond)
	start := time.Now()
	if err := backend.Search(context.Background(), domain.SearchQuery{}); err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if time.Since(start) < 10*time.Millisecond {
		t.Fatalf("expected the backend to wait for its delay")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := NewDelayedBackend(time.Hour).Search(ctx, domain.SearchQuery{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
