// Package feed loads the news feed from the remote API.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"startyparty-news/internal/model"
	"startyparty-news/internal/notify"
)

// DefaultURL is the news feed endpoint.
const DefaultURL = "https://marko.tech/api/news"

const (
	// UnknownErrorMessage is shown when a failure carries no message of its own.
	UnknownErrorMessage = "An unknown error occurred"
	// FetchErrorTitle titles the notification raised for a failed fetch.
	FetchErrorTitle = "Error fetching data"
)

// Failure describes why a load produced no data.
type Failure struct {
	Message string
}

func (f *Failure) Error() string { return f.Message }

// Result is the outcome of one load: either a response or a failure.
type Result struct {
	Response *model.FeedResponse
	Failure  *Failure
}

// Posts returns the loaded posts, or nil when the load failed.
func (r Result) Posts() []model.Post {
	if r.Response == nil {
		return nil
	}
	return r.Response.Results
}

// Fetcher issues the single GET against the feed endpoint.
type Fetcher struct {
	url      string
	client   *http.Client
	notifier notify.Notifier
	log      *slog.Logger
}

// Option customizes a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		if c != nil {
			f.client = c
		}
	}
}

// NewFetcher creates a Fetcher for endpoint. An empty endpoint uses DefaultURL. The
// client has no timeout; a stalled request only ends when ctx does.
func NewFetcher(endpoint string, n notify.Notifier, log *slog.Logger, opts ...Option) *Fetcher {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultURL
	}
	if n == nil {
		n = notify.Discard
	}
	if log == nil {
		log = slog.Default()
	}
	f := &Fetcher{
		url:      endpoint,
		client:   &http.Client{},
		notifier: n,
		log:      log,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch performs the request and decodes the body. Fields missing from the
// payload, or of an unexpected type, are left at their zero values.
func (f *Fetcher) Fetch(ctx context.Context) (*model.FeedResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		// Report the transport cause without the "Get <url>:" prefix.
		var uerr *url.Error
		if errors.As(err, &uerr) && uerr.Err != nil {
			return nil, uerr.Err
		}
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("Request failed with status code %d", resp.StatusCode)
	}
	var out model.FeedResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		// A field of the wrong type leaves that field empty; the decoder
		// still fills the rest of the document.
		var terr *json.UnmarshalTypeError
		if !errors.As(err, &terr) {
			return nil, fmt.Errorf("decode feed: %w", err)
		}
		f.log.Warn("feed: unexpected field type", "url", f.url, "field", terr.Field, "value", terr.Value)
	}
	return &out, nil
}

// Load fetches once and never returns an error: failures are reported through
// the notifier and come back as a Result without a response.
func (f *Fetcher) Load(ctx context.Context) Result {
	log := f.log.With("url", f.url)
	log.Info("feed: fetching")
	resp, err := f.Fetch(ctx)
	if err != nil {
		failure := &Failure{Message: Message(err)}
		log.Error("feed: fetch failed", "error", failure.Message)
		f.notifier.Notify(notify.Error(FetchErrorTitle, failure.Message))
		return Result{Failure: failure}
	}
	log.Info("feed: fetched", "page", resp.Page, "pages", resp.PageCount, "count", len(resp.Results))
	return Result{Response: resp}
}

// Message returns the human-readable text of err, or UnknownErrorMessage when
// there is none.
func Message(err error) string {
	if err == nil {
		return UnknownErrorMessage
	}
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		return UnknownErrorMessage
	}
	return msg
}
