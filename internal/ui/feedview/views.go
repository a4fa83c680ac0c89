package feedview

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/tmtek/tessera/internal/binder"
	"github.com/tmtek/tessera/internal/feed"
	"github.com/tmtek/tessera/internal/ui/markdown"
	"github.com/tmtek/tessera/internal/ui/styles"
)

// RenderContext is the construction context handed to every binding
// constructor. The dispatch machinery passes it through untouched.
type RenderContext struct {
	Theme    styles.Theme
	Markdown *markdown.Renderer
}

// ItemView is the base view shape the feed surface works with. Concrete
// views hold whatever state their populator copied out of the item.
type ItemView interface {
	// Render draws the view as one or more terminal lines at the given
	// width. selected marks the focused row.
	Render(width int, selected bool) string
}

// NoteView renders single-line notes: plain, headline, and colored.
type NoteView struct {
	theme    styles.Theme
	title    string
	headline bool
	accent   lipgloss.TerminalColor
}

// NewNoteView creates an empty note view bound to the surface's theme.
func NewNoteView(ctx RenderContext) *NoteView {
	return &NoteView{theme: ctx.Theme}
}

func (v *NoteView) Render(width int, selected bool) string {
	style := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor)
	if v.headline {
		style = style.Bold(true).Foreground(v.theme.Highlight)
	}
	if v.accent != nil {
		style = style.Foreground(v.accent)
	}
	return rowLine(style.Render(v.title), width, selected)
}

// IconView renders notes that carry an icon glyph in front of the title.
type IconView struct {
	theme styles.Theme
	title string
	icon  string
}

// NewIconView creates an empty icon view bound to the surface's theme.
func NewIconView(ctx RenderContext) *IconView {
	return &IconView{theme: ctx.Theme}
}

func (v *IconView) Render(width int, selected bool) string {
	icon := lipgloss.NewStyle().Foreground(v.theme.Success).Render(v.icon)
	title := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Render(v.title)
	return rowLine(icon+" "+title, width, selected)
}

// MarkdownView renders long-form posts through glamour.
type MarkdownView struct {
	theme styles.Theme
	md    *markdown.Renderer
	title string
	body  string
}

// NewMarkdownView creates an empty post view holding the surface's
// markdown renderer.
func NewMarkdownView(ctx RenderContext) *MarkdownView {
	return &MarkdownView{theme: ctx.Theme, md: ctx.Markdown}
}

func (v *MarkdownView) Render(width int, selected bool) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(v.theme.Highlight).Render(v.title)
	head := rowLine(title, width, selected)

	if v.md == nil {
		return head
	}
	body, err := v.md.Render(v.body)
	if err != nil {
		// Degrade to the raw body rather than dropping the row.
		body = v.body
	}
	return head + "\n" + body
}

// rowLine applies the selection gutter and truncates to the row width.
func rowLine(content string, width int, selected bool) string {
	prefix := "  "
	if selected {
		prefix = styles.SelectionIndicatorStyle.Render(">") + " "
	}
	line := prefix + content
	if width > 0 {
		line = truncate.StringWithTail(line, uint(width), "…") //nolint:gosec // G115: width is a terminal dimension
	}
	return line
}

// DefaultRegistry wires the standard dispatch table for feed items. Order
// is precedence: the icon rule outranks the headline rule for the same
// note type, the Colorized capability catches colored shapes, and the base
// rule is the catch-all that keeps every feed item renderable. The second
// return value names each binding, index-aligned, for diagnostics.
func DefaultRegistry() (*binder.Registry[feed.Item, ItemView, RenderContext], []string) {
	reg := binder.NewRegistry[feed.Item, ItemView, RenderContext]()

	binder.Add(reg, binder.New[*feed.Note, *IconView, RenderContext]().
		Match(func(n *feed.Note) bool { return n.Icon != "" }).
		Create(NewIconView).
		Populate(func(n *feed.Note, v *IconView) {
			v.title = n.Name
			v.icon = n.Icon
		}))

	binder.Add(reg, binder.New[feed.Colorized, *NoteView, RenderContext]().
		Create(NewNoteView).
		Populate(func(item feed.Colorized, v *NoteView) {
			v.title = item.Title()
			v.accent = lipgloss.Color(item.ColorHex())
		}))

	binder.Add(reg, binder.New[*feed.Note, *NoteView, RenderContext]().
		Match(func(n *feed.Note) bool { return n.Headline }).
		Create(NewNoteView).
		Populate(func(n *feed.Note, v *NoteView) {
			v.title = n.Name
			v.headline = true
		}))

	binder.Add(reg, binder.New[*feed.Post, *MarkdownView, RenderContext]().
		Create(NewMarkdownView).
		Populate(func(p *feed.Post, v *MarkdownView) {
			v.title = p.Name
			v.body = p.Body
		}))

	binder.Add(reg, binder.New[feed.Item, *NoteView, RenderContext]().
		Create(NewNoteView).
		Populate(func(item feed.Item, v *NoteView) {
			v.title = item.Title()
		}))

	return reg, []string{"icon", "color", "headline", "post", "note"}
}
