package domain

import "net/url"

// Destination is a display fixture for the popular destinations grid.
type Destination struct {
	Name        string  `yaml:"name" json:"name"`
	Country     string  `yaml:"country" json:"country"`
	CountryCode Country `yaml:"country_code" json:"country_code"`
	Guides      int     `yaml:"guides" json:"guides"`
	Image       string  `yaml:"image" json:"image"`
	ImageObject string  `yaml:"image_object" json:"-"`
	Color       string  `yaml:"color" json:"color"`
}

// SearchURL links the card to the listing route with destination and country set.
func (d Destination) SearchURL(base string) string {
	code := d.CountryCode
	if code == "" {
		code = CountryByLabel(d.Country)
	}
	params := url.Values{}
	params.Set("destination", d.Name)
	params.Set("country", string(code))
	return base + "?" + params.Encode()
}
