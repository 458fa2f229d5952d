package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/imdario/mergo"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

// Default returns the built-in demo catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// LoadFile reads and parses a catalog file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML catalog and fills item fields from the tab defaults.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(c.Tabs) == 0 {
		return nil, fmt.Errorf("catalog has no tabs")
	}

	for ti := range c.Tabs {
		tab := &c.Tabs[ti]
		if tab.Title == "" {
			return nil, fmt.Errorf("tab %d has no title", ti)
		}

		defaults := tab.Defaults
		if defaults.AccentColor == "" {
			defaults.AccentColor = tab.AccentColor
		}
		for ii := range tab.Items {
			if err := mergo.Merge(&tab.Items[ii], defaults); err != nil {
				return nil, fmt.Errorf("tab %q item %d: %w", tab.Title, ii, err)
			}
		}
	}

	return &c, nil
}

// ItemCount returns the number of items in tab.
func (c *Catalog) ItemCount(tab int) (int, error) {
	t, err := c.tab("item count", tab)
	if err != nil {
		return 0, err
	}
	return len(t.Items), nil
}

// ItemContent returns item of tab.
func (c *Catalog) ItemContent(tab, item int) (ItemContent, error) {
	t, err := c.tab("item content", tab)
	if err != nil {
		return ItemContent{}, err
	}
	if item < 0 || item >= len(t.Items) {
		return ItemContent{}, &SourceError{Op: "item content", Tab: tab, Item: item, Err: ErrItemNotFound}
	}
	return t.Items[item], nil
}

func (c *Catalog) tab(op string, tab int) (*Tab, error) {
	if tab < 0 || tab >= len(c.Tabs) {
		return nil, &SourceError{Op: op, Tab: tab, Item: -1, Err: ErrTabNotFound}
	}
	return &c.Tabs[tab], nil
}
