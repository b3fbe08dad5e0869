package view

type NavLink struct {
	Label string
	Href  string
	Icon  string
}

// NavDrawer is the mobile navigation panel. It holds no state of its own: Open and
// the URLs come from the parent page, and every link, the backdrop and the close
// button lead to CloseURL.
type NavDrawer struct {
	Open      bool
	ToggleURL string
	CloseURL  string
	Links     []NavLink
	Actions   []string
}

var drawerActions = []string{"Стать гидом", "Войти"}

// Drawer links are absolute so that following one always reloads without menu=open.
var drawerLinks = []NavLink{
	{Label: "Гиды", Href: "/guides", Icon: "user"},
	{Label: "Направления", Href: "/#destinations", Icon: "map-pin"},
	{Label: "Как это работает", Href: "/#how-it-works", Icon: "help-circle"},
	{Label: "Поддержка", Href: "/#support", Icon: "heart"},
}

func NewNavDrawer(state PageState, path string) NavDrawer {
	closed := state.WithMenu(false)
	return NavDrawer{
		Open:      state.MenuOpen,
		ToggleURL: state.WithMenu(!state.MenuOpen).URL(path),
		CloseURL:  closed.URL(path),
		Links:     drawerLinks,
		Actions:   drawerActions,
	}
}

func landingHeaderLinks() []NavLink {
	return []NavLink{
		{Label: "Гиды", Href: "/guides"},
		{Label: "Направления", Href: "#destinations"},
		{Label: "Как это работает", Href: "#how-it-works"},
		{Label: "Поддержка", Href: "#support"},
	}
}

func guidesHeaderLinks() []NavLink {
	return []NavLink{
		{Label: "Главная", Href: "/"},
		{Label: "Гиды", Href: "/guides"},
		{Label: "Направления", Href: "/#destinations"},
		{Label: "Как это работает", Href: "/#how-it-works"},
		{Label: "Поддержка", Href: "/#support"},
	}
}
