// Package ui renders the news list as an interactive terminal program.
package ui

import (
	"context"
	"strings"
	"time"

	"startyparty-news/internal/feed"
	"startyparty-news/internal/icon"
	"startyparty-news/internal/notify"
	"startyparty-news/internal/presenter"

	tea "github.com/charmbracelet/bubbletea"
)

const toastTTL = 5 * time.Second

type loadedMsg struct{ result feed.Result }

type toastMsg struct{ n notify.Notification }

type toastExpiredMsg struct{ seq int }

type iconMsg struct {
	key      string
	fallback bool
}

// IconLoader resolves an icon source, falling back when it cannot be loaded.
type IconLoader interface {
	Load(ctx context.Context, source string) icon.Icon
}

// Model is the bubbletea model driving a Presenter.
type Model struct {
	ctx    context.Context
	p      *presenter.Presenter
	toasts <-chan notify.Notification

	cursor   int
	offset   int
	width    int
	height   int
	toast    *notify.Notification
	toastSeq int

	icons          IconLoader
	iconKey        string
	iconIsFallback bool
}

// New creates the model. toasts is the channel the presenter's notifier
// feeds; it may be nil.
func New(ctx context.Context, p *presenter.Presenter, toasts <-chan notify.Notification) Model {
	return Model{ctx: ctx, p: p, toasts: toasts, width: defaultWidth, height: 24}
}

// WithIconLoader makes the model resolve the icon of the selected entry.
func (m Model) WithIconLoader(l IconLoader) Model {
	m.icons = l
	return m
}

// Init dispatches the single fetch and starts listening for toasts.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetch(), m.waitToast())
}

func (m Model) fetch() tea.Cmd {
	ctx, p := m.ctx, m.p
	return func() tea.Msg {
		return loadedMsg{result: p.Fetch(ctx)}
	}
}

func (m Model) waitToast() tea.Cmd {
	if m.toasts == nil {
		return nil
	}
	ch := m.toasts
	return func() tea.Msg {
		n, ok := <-ch
		if !ok {
			return nil
		}
		return toastMsg{n: n}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.p.Resolve(msg.result)
		m.cursor, m.offset = 0, 0
		return m, m.loadIcon()
	case iconMsg:
		m.iconKey, m.iconIsFallback = msg.key, msg.fallback
		return m, nil
	case toastMsg:
		n := msg.n
		m.toast = &n
		m.toastSeq++
		seq := m.toastSeq
		expire := tea.Tick(toastTTL, func(time.Time) tea.Msg { return toastExpiredMsg{seq: seq} })
		return m, tea.Batch(m.waitToast(), expire)
	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = nil
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.scroll()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	}
	if m.p.State() == presenter.Loading {
		return m, nil
	}
	n := len(m.p.Entries())
	prev := m.cursor
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < n-1 {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = n - 1
	case "enter", "o":
		return m, m.open(m.cursor)
	}
	m.scroll()
	if m.cursor != prev {
		return m, m.loadIcon()
	}
	return m, nil
}

// loadIcon resolves the selected entry's icon off the render loop.
func (m Model) loadIcon() tea.Cmd {
	if m.icons == nil || m.p.State() != presenter.Populated {
		return nil
	}
	entries := m.p.Entries()
	if m.cursor >= len(entries) || entries[m.cursor].Icon == nil {
		return nil
	}
	ctx, loader := m.ctx, m.icons
	key, source := entries[m.cursor].Key, entries[m.cursor].Icon.Source
	return func() tea.Msg {
		ic := loader.Load(ctx, source)
		return iconMsg{key: key, fallback: ic.Fallback}
	}
}

// open hands the link off without waiting on the result.
func (m Model) open(i int) tea.Cmd {
	p := m.p
	return func() tea.Msg {
		p.Open(i)
		return nil
	}
}

func (m *Model) visibleRows() int {
	// header (3), blank and detail (3), toast, help
	rows := m.height - 8
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) scroll() {
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

func (m Model) selectedIconStatus(e presenter.Entry) iconStatus {
	switch {
	case m.icons == nil || m.iconKey != e.Key:
		return iconPending
	case m.iconIsFallback:
		return iconFallback
	default:
		return iconLoaded
	}
}

// Cursor returns the selected row.
func (m Model) Cursor() int { return m.cursor }

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("startyparty.dev news"))
	b.WriteByte('\n')

	entries := m.p.Entries()
	end := m.offset + m.visibleRows()
	if end > len(entries) {
		end = len(entries)
	}
	for i := m.offset; i < end; i++ {
		b.WriteString(Row(entries[i], i == m.cursor && m.p.State() == presenter.Populated, m.width))
		b.WriteByte('\n')
	}

	if m.p.State() == presenter.Populated && m.cursor < len(entries) {
		b.WriteByte('\n')
		b.WriteString(detail(entries[m.cursor], m.selectedIconStatus(entries[m.cursor])))
		b.WriteByte('\n')
	}

	if m.toast != nil {
		b.WriteString(Toast(*m.toast))
		b.WriteByte('\n')
	}
	b.WriteString(DimStyle.Render("↑/↓ move • enter read article • q quit"))
	return b.String()
}
