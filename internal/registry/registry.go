// Package registry loads the app catalog: the ordered list of mini-apps shown
// in the carousel.
package registry

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"holomat/internal/carousel"
)

var (
	ErrEmptyID     = errors.New("missing id")
	ErrDuplicateID = errors.New("duplicate id")
)

// App is one catalog entry.
type App struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name,omitempty"`
	Icon     string `yaml:"icon,omitempty"`
	Command  string `yaml:"command,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty"`
}

// Catalog is the parsed app list, in carousel order.
type Catalog struct {
	Apps []App `yaml:"apps"`
}

// Load reads and validates a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("registry: read %s: %w", path, err)
	}
	cat, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("registry: %s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes and validates a catalog. Names default to a title-cased
// form of the id.
func Parse(r io.Reader) (*Catalog, error) {
	var cat Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cat); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: %w", err)
	}

	seen := make(map[string]int, len(cat.Apps))
	for i := range cat.Apps {
		app := &cat.Apps[i]
		app.ID = strings.TrimSpace(app.ID)
		if app.ID == "" {
			return nil, fmt.Errorf("app %d: %w", i, ErrEmptyID)
		}
		if first, ok := seen[app.ID]; ok {
			return nil, fmt.Errorf("app %d: %w %q (first at app %d)", i, ErrDuplicateID, app.ID, first)
		}
		seen[app.ID] = i
		if app.Name == "" {
			app.Name = DisplayName(app.ID)
		}
	}
	return &cat, nil
}

// Enabled returns the apps that are not disabled.
func (c *Catalog) Enabled() []App {
	out := make([]App, 0, len(c.Apps))
	for _, app := range c.Apps {
		if !app.Disabled {
			out = append(out, app)
		}
	}
	return out
}

// Items converts the enabled apps to carousel items. launch, when non-nil,
// is bound as each item's activation callback.
func (c *Catalog) Items(launch func(App)) []carousel.Item {
	apps := c.Enabled()
	items := make([]carousel.Item, len(apps))
	for i, app := range apps {
		items[i] = carousel.Item{
			ID:          app.ID,
			DisplayName: app.Name,
			IconRef:     app.Icon,
		}
		if launch != nil {
			items[i].OnActivate = func() { launch(app) }
		}
	}
	return items
}

// DisplayName turns an id such as "spotify-player" into "Spotify Player".
func DisplayName(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || r == ' '
	})
	return cases.Title(language.English).String(strings.Join(words, " "))
}
