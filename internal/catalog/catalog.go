package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"selectkit/internal/domain"
	"selectkit/internal/selection"
)

// Format of a catalog file
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

var (
	ErrUnknownFormat = errors.New("unknown catalog format")
	ErrDuplicateID   = errors.New("duplicate item id")
	ErrEmptyID       = errors.New("empty item id")
	ErrBadCount      = errors.New("invalid item count")
)

type itemEntry struct {
	ID          string `toml:"id" yaml:"id"`
	Label       string `toml:"label,omitempty" yaml:"label,omitempty"`
	Description string `toml:"description,omitempty" yaml:"description,omitempty"`
	Disabled    bool   `toml:"disabled,omitempty" yaml:"disabled,omitempty"`
}

type file struct {
	Title string      `toml:"title,omitempty" yaml:"title,omitempty"`
	Count int         `toml:"count,omitempty" yaml:"count,omitempty"`
	Items []itemEntry `toml:"items,omitempty" yaml:"items,omitempty"`
}

// Catalog is the universe of items a picker chooses from.
//
// A catalog either lists its items explicitly or only declares a count, in
// which case ids are the integers [0, count) and no enumeration is handed
// to the selection engine.
type Catalog struct {
	Title    string
	items    []domain.Item
	count    int
	explicit bool
	disabled selection.Set
}

// New creates a catalog from explicit items
func New(items []domain.Item) (*Catalog, error) {
	c := &Catalog{explicit: true, count: len(items), disabled: selection.Set{}}
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if strings.TrimSpace(it.ID) == "" {
			return nil, ErrEmptyID
		}
		if seen[it.ID] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, it.ID)
		}
		seen[it.ID] = true
		if it.Disabled {
			c.disabled[it.ID] = struct{}{}
		}
		c.items = append(c.items, it)
	}
	return c, nil
}

// NewRange creates a catalog of count items identified by their index
func NewRange(count int) (*Catalog, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, count)
	}
	return &Catalog{count: count, disabled: selection.Set{}}, nil
}

// Load reads a catalog file, choosing the decoder by extension
func Load(path string) (*Catalog, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	c, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// FormatFor maps a file extension to a catalog format
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Parse decodes catalog data in the given format
func Parse(data []byte, format Format) (*Catalog, error) {
	var f file
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse toml: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if f.Count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, f.Count)
	}

	var (
		c   *Catalog
		err error
	)
	if len(f.Items) == 0 {
		c, err = NewRange(f.Count)
	} else {
		items := make([]domain.Item, 0, len(f.Items))
		for _, e := range f.Items {
			items = append(items, domain.Item{
				ID:          e.ID,
				Label:       e.Label,
				Description: e.Description,
				Disabled:    e.Disabled,
			})
		}
		if f.Count != 0 {
			return nil, fmt.Errorf("%w: count %d set alongside %d items", ErrBadCount, f.Count, len(items))
		}
		c, err = New(items)
	}
	if err != nil {
		return nil, err
	}
	c.Title = f.Title
	return c, nil
}

// Disable marks additional ids as not selectable
func (c *Catalog) Disable(ids ...string) {
	for _, id := range ids {
		c.disabled[id] = struct{}{}
	}
}

// Explicit reports whether items are enumerated rather than implied by a count
func (c *Catalog) Explicit() bool {
	return c.explicit
}

// Len returns the size of the item universe
func (c *Catalog) Len() int {
	return c.count
}

// Items returns the items in display order. Range catalogs synthesize
// labels of the form "Item N".
func (c *Catalog) Items() []domain.Item {
	if c.explicit {
		out := make([]domain.Item, len(c.items))
		for i, it := range c.items {
			it.Disabled = c.disabled.Has(it.ID)
			out[i] = it
		}
		return out
	}

	out := make([]domain.Item, c.count)
	for i := range out {
		id := strconv.Itoa(i)
		out[i] = domain.Item{
			ID:       id,
			Label:    fmt.Sprintf("Item %d", i+1),
			Disabled: c.disabled.Has(id),
		}
	}
	return out
}

// IDs returns item ids in display order
func (c *Catalog) IDs() []string {
	items := c.Items()
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

// Constraints builds the selection constraints for this catalog.
// Only explicit catalogs enumerate Available.
func (c *Catalog) Constraints() selection.Constraints {
	cons := selection.Constraints{
		Disabled:   c.disabled.Clone(),
		TotalCount: c.count,
	}
	if c.explicit {
		cons.Available = make([]string, len(c.items))
		for i, it := range c.items {
			cons.Available[i] = it.ID
		}
	}
	return cons
}
