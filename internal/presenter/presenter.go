// Package presenter holds the display state of the news list: loading, empty
// or populated, the entries shown for each state, and the open action.
package presenter

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"startyparty-news/internal/browser"
	"startyparty-news/internal/feed"
	"startyparty-news/internal/model"
	"startyparty-news/internal/notify"
	"startyparty-news/internal/slug"
)

// State is the display state of the list.
type State int

const (
	Loading State = iota
	Populated
	Empty
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Populated:
		return "populated"
	case Empty:
		return "empty"
	default:
		return "unknown"
	}
}

const (
	LoadingTitle      = "🏠 Loading News from startyparty.dev..."
	EmptyTitle        = "No results found. Check startyparty.dev for more."
	NoDataTitle       = "No data found."
	ReadArticleTitle  = "Read Article"
	OpenFailedTitle   = "Failed to open article"
	DefaultIconsBase  = "https://startyparty.nyc3.cdn.digitaloceanspaces.com/publishers"
	DefaultIconAsset  = "icon.png"
	placeholderPrefix = "placeholder:"
)

// Loader performs one feed load.
type Loader interface {
	Load(ctx context.Context) feed.Result
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context) feed.Result

func (f LoaderFunc) Load(ctx context.Context) feed.Result { return f(ctx) }

// Icon describes the image shown next to an entry.
type Icon struct {
	Source   string `yaml:"source"`
	Fallback string `yaml:"fallback"`
	Tooltip  string `yaml:"tooltip"`
}

// Action is something the user can do with an entry.
type Action struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

// Entry is one rendered list row.
type Entry struct {
	Key       string   `yaml:"key"`
	Title     string   `yaml:"title"`
	Accessory string   `yaml:"accessory,omitempty"`
	Icon      *Icon    `yaml:"icon,omitempty"`
	Actions   []Action `yaml:"actions,omitempty"`
}

// Placeholder reports whether the entry stands in for missing content.
func (e Entry) Placeholder() bool {
	return strings.HasPrefix(e.Key, placeholderPrefix)
}

// Presenter owns the display state for a single load cycle.
type Presenter struct {
	loader   Loader
	notifier notify.Notifier
	opener   browser.Opener
	log      *slog.Logger

	iconsBase string
	fallback  string

	mu      sync.Mutex
	state   State
	entries []Entry
}

// Option customizes a Presenter.
type Option func(*Presenter)

// WithIconsBase sets the base URL icon files are resolved against.
func WithIconsBase(base string) Option {
	return func(p *Presenter) {
		if strings.TrimSpace(base) != "" {
			p.iconsBase = strings.TrimRight(base, "/")
		}
	}
}

// WithFallbackIcon sets the icon used when a publisher icon fails to load.
func WithFallbackIcon(name string) Option {
	return func(p *Presenter) {
		if strings.TrimSpace(name) != "" {
			p.fallback = name
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(p *Presenter) {
		if log != nil {
			p.log = log
		}
	}
}

// New creates a Presenter in the Loading state.
func New(loader Loader, n notify.Notifier, o browser.Opener, opts ...Option) *Presenter {
	if n == nil {
		n = notify.Discard
	}
	p := &Presenter{
		loader:    loader,
		notifier:  n,
		opener:    o,
		log:       slog.Default(),
		iconsBase: DefaultIconsBase,
		fallback:  DefaultIconAsset,
		state:     Loading,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Load runs the single fetch of this presenter and applies its result.
func (p *Presenter) Load(ctx context.Context) {
	p.Resolve(p.Fetch(ctx))
}

// Fetch runs the loader without touching display state. Callers that fetch
// off the render loop pass the result to Resolve afterwards.
func (p *Presenter) Fetch(ctx context.Context) feed.Result {
	if p.loader == nil {
		return feed.Result{}
	}
	return p.loader.Load(ctx)
}

// Resolve moves out of Loading using res. It reports whether the transition
// happened; once resolved, further results are ignored.
func (p *Presenter) Resolve(res feed.Result) bool {
	p.mu.Lock()
	if p.state != Loading {
		p.mu.Unlock()
		p.log.Warn("presenter: result ignored, already resolved", "state", p.state.String())
		return false
	}
	posts := res.Posts()
	if len(posts) == 0 {
		p.state = Empty
		p.entries = nil
		p.mu.Unlock()
		p.log.Info("presenter: no posts")
		p.notifier.Notify(notify.Error(NoDataTitle, ""))
		return true
	}
	entries := make([]Entry, 0, len(posts))
	for _, post := range posts {
		entries = append(entries, p.entryFor(post))
	}
	p.state = Populated
	p.entries = entries
	p.mu.Unlock()
	p.log.Info("presenter: populated", "count", len(entries))
	return true
}

// State returns the current display state.
func (p *Presenter) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Entries returns the rows to render for the current state.
func (p *Presenter) Entries() []Entry {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch p.state {
	case Loading:
		return []Entry{{Key: placeholderPrefix + "loading", Title: LoadingTitle}}
	case Empty:
		return []Entry{{Key: placeholderPrefix + "empty", Title: EmptyTitle}}
	}
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

// Open runs the primary action of entry i. Placeholders and out of range
// indexes do nothing. Opener failures are reported but never change state.
func (p *Presenter) Open(i int) {
	entries := p.Entries()
	if i < 0 || i >= len(entries) || len(entries[i].Actions) == 0 || p.opener == nil {
		return
	}
	action := entries[i].Actions[0]
	p.log.Info("presenter: opening", "title", entries[i].Title, "url", action.URL)
	if err := p.opener.Open(action.URL); err != nil {
		p.log.Error("presenter: open failed", "url", action.URL, "error", err)
		p.notifier.Notify(notify.Error(OpenFailedTitle, feed.Message(err)))
	}
}

// IconURL returns the icon location for a publisher.
func (p *Presenter) IconURL(publisher string) string {
	return IconURL(p.iconsBase, publisher)
}

func (p *Presenter) entryFor(post model.Post) Entry {
	return Entry{
		Key:       post.Key(),
		Title:     post.Title,
		Accessory: post.Feed,
		Icon: &Icon{
			Source:   p.IconURL(post.Feed),
			Fallback: p.fallback,
			Tooltip:  post.Feed,
		},
		Actions: []Action{{Title: ReadArticleTitle, URL: post.Link}},
	}
}

// IconURL joins base and the slug of publisher into a PNG location.
func IconURL(base, publisher string) string {
	if strings.TrimSpace(base) == "" {
		base = DefaultIconsBase
	}
	return strings.TrimRight(base, "/") + "/" + slug.Make(publisher) + ".png"
}
