// Package feedview is the list-rendering surface of tessera: a Bubble Tea
// model that owns the feed's item collection and dispatches every item
// through the binder registry to build and populate its row view.
//
// The surface follows the classify/create/populate cadence the registry is
// designed around: each item is classified once per rebuild, a view is
// created only when the item has none yet (or its binding changed), and
// populate runs on every rebuild so views track item data.
package feedview

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmtek/tessera/internal/binder"
	"github.com/tmtek/tessera/internal/cachemanager"
	"github.com/tmtek/tessera/internal/feed"
	"github.com/tmtek/tessera/internal/log"
	"github.com/tmtek/tessera/internal/pubsub"
	"github.com/tmtek/tessera/internal/ui/markdown"
	"github.com/tmtek/tessera/internal/ui/styles"
)

// row pairs an item with the view its binding produced.
type row struct {
	item  feed.Item
	index int // binding index from Classify
	view  ItemView
}

// Model is the feed surface.
type Model struct {
	items     []feed.Item
	registry  *binder.Registry[feed.Item, ItemView, RenderContext]
	names     []string
	views     map[string]ItemView
	indices   map[string]int
	rows      []row
	unmatched int

	viewport   viewport.Model
	keys       KeyMap
	theme      styles.Theme
	mdStyle    string
	showStatus bool
	feedLabel  string

	width    int
	height   int
	selected int
	ready    bool

	rowStarts []int
	rowCache  *cachemanager.InMemoryCacheManager[string, string]
	reload    *pubsub.ContinuousListener[[]feed.Item]
	logTail   *log.LogListener
	lastLog   string
}

// New creates a feed surface over items using the default dispatch table.
func New(items []feed.Item, theme styles.Theme, mdStyle string) Model {
	registry, names := DefaultRegistry()
	return Model{
		items:      items,
		registry:   registry,
		names:      names,
		views:      make(map[string]ItemView),
		indices:    make(map[string]int),
		keys:       DefaultKeyMap(),
		theme:      theme,
		mdStyle:    mdStyle,
		showStatus: true,
		feedLabel:  "sample feed",
		rowCache: cachemanager.NewInMemoryCacheManager[string, string](
			"feed-rows", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval),
	}
}

// WithRegistry swaps in a custom dispatch table. names must be
// index-aligned binding names for diagnostics.
func (m Model) WithRegistry(registry *binder.Registry[feed.Item, ItemView, RenderContext], names []string) Model {
	m.registry = registry
	m.names = names
	return m
}

// WithReload attaches a listener delivering replacement item sets, wired to
// the feed file watcher by the caller.
func (m Model) WithReload(listener *pubsub.ContinuousListener[[]feed.Item]) Model {
	m.reload = listener
	return m
}

// WithLogTail attaches a listener for debug log entries; the most recent
// entry is shown at the end of the status bar.
func (m Model) WithLogTail(listener *log.LogListener) Model {
	m.logTail = listener
	return m
}

// WithStatusBar toggles the bottom status line.
func (m Model) WithStatusBar(show bool) Model {
	m.showStatus = show
	return m
}

// WithFeedLabel names the feed source in the status bar.
func (m Model) WithFeedLabel(label string) Model {
	m.feedLabel = label
	return m
}

// SetSize resizes the surface and rebuilds every view, since construction
// context (markdown wrap width) depends on the width.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height

	contentHeight := height
	if m.showStatus {
		contentHeight--
	}
	if contentHeight < 1 {
		contentHeight = 1
	}
	m.viewport = viewport.New(width, contentHeight)
	m.ready = true

	m.views = make(map[string]ItemView)
	m.indices = make(map[string]int)
	m = m.rebuild()
	return m
}

// SetItems replaces the item collection and reruns dispatch.
func (m Model) SetItems(items []feed.Item) Model {
	m.items = items
	if m.selected >= len(items) {
		m.selected = max(len(items)-1, 0)
	}
	return m.rebuild()
}

// Items returns the current item collection.
func (m Model) Items() []feed.Item {
	return m.items
}

// Unmatched returns how many items no binding accepted during the last
// rebuild.
func (m Model) Unmatched() int {
	return m.unmatched
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.reload != nil {
		cmds = append(cmds, m.reload.Listen())
	}
	if m.logTail != nil {
		cmds = append(cmds, m.logTail.Listen())
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.SetSize(msg.Width, msg.Height)
		return m, nil

	case pubsub.Event[[]feed.Item]:
		log.Info(log.CatUI, "feed reloaded", "items", len(msg.Payload))
		m = m.SetItems(msg.Payload)
		if m.reload != nil {
			return m, m.reload.Listen()
		}
		return m, nil

	case log.LogEvent:
		m.lastLog = strings.TrimSpace(msg.Payload)
		if m.logTail != nil {
			return m, m.logTail.Listen()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.selected > 0 {
				m.selected--
			}
			m = m.refreshContent()
		case key.Matches(msg, m.keys.Down):
			if m.selected < len(m.rows)-1 {
				m.selected++
			}
			m = m.refreshContent()
		case key.Matches(msg, m.keys.Top):
			m.selected = 0
			m = m.refreshContent()
		case key.Matches(msg, m.keys.Bottom):
			m.selected = max(len(m.rows)-1, 0)
			m = m.refreshContent()
		case key.Matches(msg, m.keys.Refresh):
			m = m.rebuild()
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading feed…"
	}

	if !m.showStatus {
		return m.viewport.View()
	}
	return m.viewport.View() + "\n" + m.statusBar()
}

// rebuild runs the dispatch protocol over the item collection: classify
// each item, create a view when the item has none for its binding, then
// populate. Unmatched items are logged and skipped; the registry makes that
// the surface's call, not its own.
func (m Model) rebuild() Model {
	ctx := m.renderContext()
	m.rows = m.rows[:0]
	m.unmatched = 0

	for _, item := range m.items {
		idx := m.registry.Classify(item)
		if idx == binder.NoMatch {
			m.unmatched++
			log.Warn(log.CatBinder, "no binding matched item", "id", item.ID(), "title", item.Title())
			continue
		}

		view, ok := m.views[item.ID()]
		if !ok || m.indices[item.ID()] != idx {
			created, err := m.registry.CreateAt(idx, ctx)
			if err != nil {
				log.ErrorErr(log.CatBinder, "creating view failed", err, "id", item.ID(), "binding", m.bindingName(idx))
				continue
			}
			view = created
			m.views[item.ID()] = view
			m.indices[item.ID()] = idx
		}

		if err := m.registry.PopulateAt(idx, item, view); err != nil {
			log.ErrorErr(log.CatBinder, "populating view failed", err, "id", item.ID())
			continue
		}

		m.rows = append(m.rows, row{item: item, index: idx, view: view})
	}

	if m.selected >= len(m.rows) {
		m.selected = max(len(m.rows)-1, 0)
	}

	_ = m.rowCache.Flush(context.Background())
	return m.refreshContent()
}

// refreshContent re-renders all rows into the viewport and keeps the
// selected row visible.
func (m Model) refreshContent() Model {
	if !m.ready {
		return m
	}

	var b strings.Builder
	m.rowStarts = m.rowStarts[:0]
	line := 0
	for i, r := range m.rows {
		rendered := m.renderRow(r, i == m.selected)
		if i > 0 {
			b.WriteString("\n")
		}
		m.rowStarts = append(m.rowStarts, line)
		b.WriteString(rendered)
		line += strings.Count(rendered, "\n") + 1
	}

	m.viewport.SetContent(b.String())
	m = m.ensureVisible()
	return m
}

// renderRow renders one row, memoized by (item, width, selection).
func (m Model) renderRow(r row, selected bool) string {
	key := fmt.Sprintf("%s:%d:%t", r.item.ID(), m.width, selected)
	if cached, ok := m.rowCache.Get(context.Background(), key); ok {
		return cached
	}

	rendered := r.view.Render(m.width, selected)
	m.rowCache.Set(context.Background(), key, rendered, 0)
	return rendered
}

// ensureVisible scrolls the viewport so the selected row is on screen.
func (m Model) ensureVisible() Model {
	if m.selected < 0 || m.selected >= len(m.rowStarts) {
		return m
	}
	start := m.rowStarts[m.selected]
	switch {
	case start < m.viewport.YOffset:
		m.viewport.SetYOffset(start)
	case start >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(start - m.viewport.Height + 1)
	}
	return m
}

func (m Model) statusBar() string {
	parts := []string{fmt.Sprintf("%d items", len(m.rows))}
	if m.unmatched > 0 {
		parts = append(parts, fmt.Sprintf("%d unmatched", m.unmatched))
	}
	if m.feedLabel != "" {
		parts = append(parts, m.feedLabel)
	}
	parts = append(parts, "j/k move • r refresh • q quit")
	if m.lastLog != "" {
		parts = append(parts, m.lastLog)
	}
	return styles.StatusBarStyle.Render(strings.Join(parts, " • "))
}

// renderContext builds the construction context for the current width.
func (m Model) renderContext() RenderContext {
	mdWidth := m.width - 4
	if mdWidth < 10 {
		mdWidth = 10
	}
	md, err := markdown.New(mdWidth, m.mdStyle)
	if err != nil {
		log.ErrorErr(log.CatUI, "markdown renderer unavailable", err)
		md = nil
	}
	return RenderContext{Theme: m.theme, Markdown: md}
}

// bindingName resolves a binding index to its diagnostic name.
func (m Model) bindingName(idx int) string {
	if idx >= 0 && idx < len(m.names) {
		return m.names[idx]
	}
	return fmt.Sprintf("#%d", idx)
}
