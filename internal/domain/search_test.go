package domain

import (
	"errors"
	"testing"
)

func TestSearchQueryEncodeRequiredOnly(t *testing.T) {
	q := SearchQuery{Destination: "Rome", Country: CountryItaly}
	if got := q.Encode(); got != "destination=Rome&country=italy" {
		t.Fatalf("unexpected query string %q", got)
	}
}

func TestSearchQueryEncodeWithAdvancedFields(t *testing.T) {
	q := SearchQuery{Destination: "Rome", Country: CountryItaly, Date: "2024-12-01", Guests: 3}
	want := "destination=Rome&country=italy&date=2024-12-01&guests=3"
	if got := q.Encode(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if got := q.ListingURL("/guides"); got != "/guides?"+want {
		t.Fatalf("unexpected listing url %q", got)
	}
}

func TestSearchQueryEncodeEscapesDestination(t *testing.T) {
	q := SearchQuery{Destination: "Санкт Петербург", Country: CountryRussia}
	want := "destination=%D0%A1%D0%B0%D0%BD%D0%BA%D1%82+%D0%9F%D0%B5%D1%82%D0%B5%D1%80%D0%B1%D1%83%D1%80%D0%B3&country=russia"
	if got := q.Encode(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestParseCountry(t *testing.T) {
	if ParseCountry(" Italy ") != CountryItaly {
		t.Fatalf("expected italy to be recognised")
	}
	if ParseCountry("atlantis") != "" {
		t.Fatalf("expected unknown country to be empty")
	}
	if CountryJapan.Label() != "Япония" {
		t.Fatalf("unexpected label %q", CountryJapan.Label())
	}
	if CountryByLabel("Испания") != CountrySpain {
		t.Fatalf("expected label lookup to return spain")
	}
}

func TestParseGuestsAndDate(t *testing.T) {
	cases := map[string]int{"": 0, "abc": 0, "0": 0, "-2": 0, "3": 3, "9": MaxGuests}
	for raw, want := range cases {
		if got := ParseGuests(raw); got != want {
			t.Fatalf("ParseGuests(%q) = %d, want %d", raw, got, want)
		}
	}
	if ParseDate("2024-12-01") != "2024-12-01" {
		t.Fatalf("expected ISO date to be kept")
	}
	if ParseDate("01.12.2024") != "" {
		t.Fatalf("expected non ISO date to be dropped")
	}
}

func TestValidateSearchQuery(t *testing.T) {
	errs := ValidateSearchQuery(SearchQuery{Destination: "   "})
	if !errs.Has(SearchFieldDestination) || errs[SearchFieldDestination].Code != MissingDestination {
		t.Fatalf("expected MissingDestination, got %v", errs)
	}
	if !errs.Has(SearchFieldCountry) || errs[SearchFieldCountry].Code != MissingCountry {
		t.Fatalf("expected MissingCountry, got %v", errs)
	}
	err := errs.Err()
	if !errors.Is(err, ErrMissingDestination) || !errors.Is(err, ErrMissingCountry) {
		t.Fatalf("expected joined sentinel errors, got %v", err)
	}

	ok := ValidateSearchQuery(SearchQuery{Destination: "Rome", Country: CountryItaly})
	if len(ok) != 0 || ok.Err() != nil {
		t.Fatalf("expected no errors, got %v", ok)
	}
}

func TestGuideSpecialties(t *testing.T) {
	g := Guide{Specialties: []string{"a", "b", "c", "d"}}
	if len(g.VisibleSpecialties()) != 2 || len(g.HiddenSpecialties()) != 2 {
		t.Fatalf("unexpected split %v / %v", g.VisibleSpecialties(), g.HiddenSpecialties())
	}
	short := Guide{Specialties: []string{"a"}}
	if short.HiddenSpecialties() != nil {
		t.Fatalf("expected no hidden specialties")
	}
}

func TestDestinationSearchURL(t *testing.T) {
	d := Destination{Name: "Рим", Country: "Италия"}
	want := "/guides?country=italy&destination=%D0%A0%D0%B8%D0%BC"
	if got := d.SearchURL("/guides"); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestLikedSet(t *testing.T) {
	set := NewLikedSet(1, 3)
	if !set.Contains(1) || set.Contains(2) || set.Len() != 2 {
		t.Fatalf("unexpected set %v", set)
	}
	var empty LikedSet
	if empty.Contains(1) || empty.Len() != 0 || len(empty.IDs()) != 0 {
		t.Fatalf("expected zero set to be empty")
	}
	if empty.Remove(1) {
		t.Fatalf("expected remove on zero set to report absent")
	}

	var grown LikedSet
	grown.Add(4)
	grown.Add(2)
	grown.Add(4)
	if ids := grown.IDs(); len(ids) != 2 || ids[0] != 2 || ids[1] != 4 {
		t.Fatalf("unexpected ids after add %v", ids)
	}
	if !grown.Remove(4) || grown.Contains(4) || grown.Len() != 1 {
		t.Fatalf("unexpected set after remove %v", grown)
	}
}
