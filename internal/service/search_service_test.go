package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/njprem/GuideMe_Site/internal/domain"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestSearchService_SubmitRedirects(t *testing.T) {
	svc := NewSearchService(NewDelayedBackend(0), "", quietLogger())
	form := svc.NewForm()
	form.UpdateField(domain.SearchFieldDestination, "Rome")
	form.UpdateField(domain.SearchFieldCountry, "italy")

	result, err := svc.Submit(context.Background(), uuid.New(), form)
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if result.Redirect != "/guides?destination=Rome&country=italy" {
		t.Fatalf("unexpected redirect %q", result.Redirect)
	}
	if svc.ListingPath() != "/guides" {
		t.Fatalf("expected default listing path, got %q", svc.ListingPath())
	}
}

func TestSearchService_RejectsOverlappingVisitorSubmissions(t *testing.T) {
	backend := &recordingBackend{release: make(chan struct{}), started: make(chan struct{})}
	svc := NewSearchService(backend, "/guides", quietLogger())
	visitor := uuid.New()

	first := svc.NewForm()
	first.UpdateField(domain.SearchFieldDestination, "Rome")
	first.UpdateField(domain.SearchFieldCountry, "italy")

	done := make(chan error, 1)
	go func() {
		_, err := svc.Submit(context.Background(), visitor, first)
		done <- err
	}()
	select {
	case <-backend.started:
	case <-time.After(2 * time.Second):
		t.Fatalf("first submission never reached the backend")
	}

	second := svc.NewForm()
	second.UpdateField(domain.SearchFieldDestination, "Paris")
	second.UpdateField(domain.SearchFieldCountry, "france")
	if _, err := svc.Submit(context.Background(), visitor, second); !errors.Is(err, ErrSearchInProgress) {
		t.Fatalf("expected ErrSearchInProgress, got %v", err)
	}

	close(backend.release)
	if err := <-done; err != nil {
		t.Fatalf("first submission returned error: %v", err)
	}

	third := svc.NewForm()
	third.UpdateField(domain.SearchFieldDestination, "Paris")
	third.UpdateField(domain.SearchFieldCountry, "france")
	if _, err := svc.Submit(context.Background(), visitor, third); err != nil {
		t.Fatalf("expected submission after release to succeed, got %v", err)
	}
}

func TestSearchService_InvalidFormReleasesVisitor(t *testing.T) {
	svc := NewSearchService(NewDelayedBackend(0), "/guides", quietLogger())
	visitor := uuid.New()

	if _, err := svc.Submit(context.Background(), visitor, svc.NewForm()); !errors.Is(err, ErrSearchInvalid) {
		t.Fatalf("expected ErrSearchInvalid, got %v", err)
	}

	form := svc.NewForm()
	form.UpdateField(domain.SearchFieldDestination, "Rome")
	form.UpdateField(domain.SearchFieldCountry, "italy")
	if _, err := svc.Submit(context.Background(), visitor, form); err != nil {
		t.Fatalf("expected valid submission to pass, got %v", err)
	}
}
