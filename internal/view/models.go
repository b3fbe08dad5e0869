package view

import (
	"html/template"
	"strconv"
	"strings"

	"github.com/njprem/GuideMe_Site/internal/catalog"
	"github.com/njprem/GuideMe_Site/internal/domain"
	"github.com/njprem/GuideMe_Site/internal/service"
)

const SiteName = "GuideMe"

type SearchFormView struct {
	Action      string
	Query       domain.SearchQuery
	Errors      domain.ValidationErrors
	Advanced    bool
	Loading     bool
	Notice      string
	Countries   []domain.CountryOption
	Placeholder string
	Guests      []domain.GuestOption
	Suggestions []string
}

func NewSearchFormView(form *service.SearchForm, suggestions []string) SearchFormView {
	return SearchFormView{
		Action:      "/search",
		Query:       form.Query(),
		Errors:      form.Errors(),
		Advanced:    form.Advanced(),
		Loading:     form.Loading(),
		Countries:   domain.KnownCountries,
		Placeholder: domain.CountryPlaceholder,
		Guests:      domain.GuestOptions,
		Suggestions: suggestions,
	}
}

func (v SearchFormView) Error(field string) string {
	return v.Errors.Message(domain.SearchField(field))
}

func (v SearchFormView) HasError(field string) bool {
	return v.Errors.Has(domain.SearchField(field))
}

// ErrorFields lists the fields currently showing an error, comma separated.
func (v SearchFormView) ErrorFields() string {
	fields := v.Errors.Fields()
	names := make([]string, 0, len(fields))
	for _, field := range fields {
		names = append(names, string(field))
	}
	return strings.Join(names, ",")
}

func (v SearchFormView) GuestsValue() string {
	if v.Query.Guests == 0 {
		return ""
	}
	return strconv.Itoa(v.Query.Guests)
}

type GuideCard struct {
	domain.Guide
	Liked       bool
	LikeAction  string
	TooltipOpen bool
	TooltipURL  string
	Hidden      []string
}

type DestinationCard struct {
	domain.Destination
	URL string
}

type LandingPage struct {
	Title        string
	Nav          NavDrawer
	HeaderLinks  []NavLink
	Search       SearchFormView
	Stats        []catalog.Stat
	Guides       []GuideCard
	Destinations []DestinationCard
	Steps        []catalog.Step
	ListingPath  string
	Hero         template.HTML
	FeaturedText template.HTML
	DestText     template.HTML
	CTAText      template.HTML
	FooterText   template.HTML
}

type LandingInput struct {
	State       PageState
	Catalog     *catalog.Catalog
	Liked       domain.LikedSet
	Search      SearchFormView
	ListingPath string
}

func NewLandingPage(in LandingInput) LandingPage {
	c := in.Catalog
	guides := make([]GuideCard, 0, len(c.Guides))
	for _, g := range c.Guides {
		guides = append(guides, GuideCard{
			Guide:       g,
			Liked:       in.Liked.Contains(g.ID),
			LikeAction:  "/guides/" + strconv.Itoa(g.ID) + "/like",
			TooltipOpen: in.State.Tooltip == g.ID,
			TooltipURL:  in.State.WithTooltip(g.ID).URL("/") + "#guide-" + strconv.Itoa(g.ID),
			Hidden:      g.HiddenSpecialties(),
		})
	}
	destinations := make([]DestinationCard, 0, len(c.Destinations))
	for _, d := range c.Destinations {
		destinations = append(destinations, DestinationCard{Destination: d, URL: d.SearchURL(in.ListingPath)})
	}
	return LandingPage{
		Title:        SiteName + ": местные гиды по всему миру",
		Nav:          NewNavDrawer(in.State, "/"),
		HeaderLinks:  landingHeaderLinks(),
		Search:       in.Search,
		Stats:        c.Stats,
		Guides:       guides,
		Destinations: destinations,
		Steps:        c.Steps,
		ListingPath:  in.ListingPath,
		Hero:         c.Block("hero"),
		FeaturedText: c.Block("featured"),
		DestText:     c.Block("destinations"),
		CTAText:      c.Block("cta"),
		FooterText:   c.Block("footer"),
	}
}

// GuidesPage is the listing placeholder. It deliberately ignores any search query
// in the URL: the catalog is not connected yet.
type GuidesPage struct {
	Title       string
	Nav         NavDrawer
	HeaderLinks []NavLink
	Intro       template.HTML
	Body        template.HTML
	FooterText  template.HTML
	Subscribed  bool
	NotifyError string
	NotifyEmail string
}

type GuidesInput struct {
	Path        string
	State       PageState
	Catalog     *catalog.Catalog
	Subscribed  bool
	NotifyError string
	NotifyEmail string
}

func NewGuidesPage(in GuidesInput) GuidesPage {
	path := in.Path
	if path == "" {
		path = "/guides"
	}
	return GuidesPage{
		Title:       "Все гиды | " + SiteName,
		Nav:         NewNavDrawer(in.State, path),
		HeaderLinks: guidesHeaderLinks(),
		Intro:       in.Catalog.Block("guides_intro"),
		Body:        in.Catalog.Block("under_construction"),
		FooterText:  in.Catalog.Block("footer"),
		Subscribed:  in.Subscribed,
		NotifyError: in.NotifyError,
		NotifyEmail: in.NotifyEmail,
	}
}
