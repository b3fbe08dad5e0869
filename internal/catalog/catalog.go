// Package catalog holds the hard-coded marketing fixtures rendered by the page shells.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"

	"github.com/njprem/GuideMe_Site/internal/domain"
	"github.com/njprem/GuideMe_Site/internal/repository/ports"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

type Stat struct {
	Value int    `yaml:"value"`
	Label string `yaml:"label"`
}

type Step struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

type fixtures struct {
	Suggestions  []string             `yaml:"suggestions"`
	Stats        []Stat               `yaml:"stats"`
	Guides       []domain.Guide       `yaml:"guides"`
	Destinations []domain.Destination `yaml:"destinations"`
	Steps        []Step               `yaml:"steps"`
	Blocks       map[string]string    `yaml:"blocks"`
}

type Catalog struct {
	Suggestions  []string
	Stats        []Stat
	Guides       []domain.Guide
	Destinations []domain.Destination
	Steps        []Step

	blocks map[string]template.HTML
}

// Default parses the embedded fixtures.
func Default() (*Catalog, error) {
	return Parse(defaultFixtures)
}

func Parse(data []byte) (*Catalog, error) {
	var raw fixtures
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("catalog: parse fixtures: %w", err)
	}

	seen := make(map[int]struct{}, len(raw.Guides))
	for _, g := range raw.Guides {
		if _, dup := seen[g.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate guide id %d", g.ID)
		}
		seen[g.ID] = struct{}{}
	}
	for i, d := range raw.Destinations {
		if d.CountryCode == "" {
			raw.Destinations[i].CountryCode = domain.CountryByLabel(d.Country)
		}
	}

	md := goldmark.New()
	blocks := make(map[string]template.HTML, len(raw.Blocks))
	for name, source := range raw.Blocks {
		var buf bytes.Buffer
		if err := md.Convert([]byte(source), &buf); err != nil {
			return nil, fmt.Errorf("catalog: render block %q: %w", name, err)
		}
		blocks[name] = template.HTML(buf.String())
	}

	return &Catalog{
		Suggestions:  raw.Suggestions,
		Stats:        raw.Stats,
		Guides:       raw.Guides,
		Destinations: raw.Destinations,
		Steps:        raw.Steps,
		blocks:       blocks,
	}, nil
}

// Block returns a rendered markdown copy block, or "" when it is not defined.
func (c *Catalog) Block(name string) template.HTML {
	return c.blocks[name]
}

func (c *Catalog) FindGuide(id int) (domain.Guide, bool) {
	for _, g := range c.Guides {
		if g.ID == id {
			return g, true
		}
	}
	return domain.Guide{}, false
}

// ResolveImages points fixtures with an image_object at the asset store. Fixtures keep
// their external URL when the store is nil or cannot resolve the object.
func (c *Catalog) ResolveImages(ctx context.Context, store ports.ObjectStorage) error {
	if store == nil {
		return nil
	}
	var firstErr error
	for i, g := range c.Guides {
		if g.ImageObject == "" {
			continue
		}
		u, err := store.ObjectURL(ctx, g.ImageObject)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("catalog: resolve %s: %w", g.ImageObject, err)
			}
			continue
		}
		c.Guides[i].Image = u
	}
	for i, d := range c.Destinations {
		if d.ImageObject == "" {
			continue
		}
		u, err := store.ObjectURL(ctx, d.ImageObject)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("catalog: resolve %s: %w", d.ImageObject, err)
			}
			continue
		}
		c.Destinations[i].Image = u
	}
	return firstErr
}
