package view

import (
	"net/url"
	"strconv"
	"strings"
)

// PageState is the UI state owned by a page shell. It travels in the query string,
// so the page that renders it is its only source of truth.
type PageState struct {
	MenuOpen bool
	Tooltip  int
}

func ParsePageState(values url.Values) PageState {
	state := PageState{MenuOpen: values.Get("menu") == "open"}
	if id, err := strconv.Atoi(strings.TrimSpace(values.Get("tip"))); err == nil && id > 0 {
		state.Tooltip = id
	}
	return state
}

func (s PageState) WithMenu(open bool) PageState {
	s.MenuOpen = open
	return s
}

// WithTooltip shows the tooltip for id, or hides it when it is already shown.
func (s PageState) WithTooltip(id int) PageState {
	if s.Tooltip == id {
		s.Tooltip = 0
	} else {
		s.Tooltip = id
	}
	return s
}

func (s PageState) URL(path string) string {
	params := url.Values{}
	if s.MenuOpen {
		params.Set("menu", "open")
	}
	if s.Tooltip > 0 {
		params.Set("tip", strconv.Itoa(s.Tooltip))
	}
	if len(params) == 0 {
		return path
	}
	return path + "?" + params.Encode()
}
