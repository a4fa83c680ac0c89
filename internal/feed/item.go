// Package feed defines the heterogeneous item shapes a tessera feed can
// contain and loads them from YAML feed files.
package feed

// Item is the base shape shared by everything in a feed.
type Item interface {
	// ID uniquely identifies the item within its feed.
	ID() string
	// Title is the item's display title.
	Title() string
}

// Colorized marks items that carry their own accent color. Render bindings
// use it as a capability check, so any future item shape that exposes a
// color is picked up without touching the dispatch table.
type Colorized interface {
	Item
	ColorHex() string
}

// Note is the plain feed entry: a title, an optional headline flag, and an
// optional icon glyph rendered in front of the title.
type Note struct {
	UID      string
	Name     string
	Headline bool
	Icon     string
}

func (n *Note) ID() string    { return n.UID }
func (n *Note) Title() string { return n.Name }

// ColorNote is a note with its own accent color.
type ColorNote struct {
	UID   string
	Name  string
	Color string // hex color, e.g. "#10B981"
}

func (c *ColorNote) ID() string       { return c.UID }
func (c *ColorNote) Title() string    { return c.Name }
func (c *ColorNote) ColorHex() string { return c.Color }

// Post is a long-form entry with a markdown body.
type Post struct {
	UID  string
	Name string
	Body string // markdown
}

func (p *Post) ID() string    { return p.UID }
func (p *Post) Title() string { return p.Name }
