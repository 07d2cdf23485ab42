package config

import (
	_ "embed"
	"fmt"

	"ngoconnect-web/models"

	"github.com/goccy/go-yaml"
	"github.com/gosimple/slug"
)

//go:embed categories.yaml
var categoriesYAML []byte

// Categories is the static category catalogue shown in the browser and used to
// validate report and NGO forms.
type Categories struct {
	list    []models.Category
	bySlug  map[string]models.Category
	byValue map[string]models.Category
}

// LoadCategories parses the embedded catalogue.
func LoadCategories() (*Categories, error) {
	return ParseCategories(categoriesYAML)
}

// ParseCategories parses a YAML catalogue and derives URL slugs from the names.
func ParseCategories(data []byte) (*Categories, error) {
	var list []models.Category
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse categories: %w", err)
	}

	c := &Categories{
		list:    make([]models.Category, 0, len(list)),
		bySlug:  make(map[string]models.Category, len(list)),
		byValue: make(map[string]models.Category, len(list)),
	}
	for _, cat := range list {
		if cat.Value == "" || cat.Name == "" {
			return nil, fmt.Errorf("category %q: value and name are required", cat.Name)
		}
		cat.Slug = slug.Make(cat.Name)
		if _, dup := c.byValue[cat.Value]; dup {
			return nil, fmt.Errorf("duplicate category value %q", cat.Value)
		}
		c.list = append(c.list, cat)
		c.bySlug[cat.Slug] = cat
		c.byValue[cat.Value] = cat
	}
	return c, nil
}

func (c *Categories) All() []models.Category {
	out := make([]models.Category, len(c.list))
	copy(out, c.list)
	return out
}

func (c *Categories) BySlug(s string) (models.Category, bool) {
	cat, ok := c.bySlug[s]
	return cat, ok
}

func (c *Categories) ByValue(v string) (models.Category, bool) {
	cat, ok := c.byValue[v]
	return cat, ok
}

// Valid reports whether v is a known category value.
func (c *Categories) Valid(v string) bool {
	_, ok := c.byValue[v]
	return ok
}
