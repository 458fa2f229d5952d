// Package catalog is a file-backed item data source for the tabbed grid.
package catalog

// TabDescriptor is what the tab strip renders for one tab.
type TabDescriptor struct {
	Title       string `yaml:"title"`
	Icon        string `yaml:"icon"`
	AccentColor string `yaml:"accent_color,omitempty"`
}

// ItemContent is what a grid cell renders for one item.
type ItemContent struct {
	Title           string `yaml:"title"`
	Icon            string `yaml:"icon,omitempty"`
	AccentColor     string `yaml:"accent_color,omitempty"`
	TitleColor      string `yaml:"title_color,omitempty"`
	BackgroundColor string `yaml:"background_color,omitempty"`
}

// Tab is one named partition of items.
type Tab struct {
	TabDescriptor `yaml:",inline"`

	// Defaults fill the empty fields of every item in the tab.
	Defaults ItemContent   `yaml:"defaults,omitempty"`
	Items    []ItemContent `yaml:"items"`
}

// Catalog is the parsed catalog file.
type Catalog struct {
	Tabs []Tab `yaml:"tabs"`
}

// Descriptors returns the tab descriptors in order.
func (c *Catalog) Descriptors() []TabDescriptor {
	out := make([]TabDescriptor, len(c.Tabs))
	for i, t := range c.Tabs {
		out[i] = t.TabDescriptor
	}
	return out
}
