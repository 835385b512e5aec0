package feed

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"startyparty-news/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePayload = `{
  "page": 1, "paged": 20, "pages": 7,
  "results": [
    {"_id": {"$oid": "a1"}, "description": "d1", "feed": "Tech & Startup News", "link": "https://example.com/1", "title": "First"},
    {"_id": {"$oid": "b2"}, "description": "d2", "feed": "Hacker News", "link": "https://example.com/2", "title": "Second"}
  ]
}`

type recorder struct {
	mu  sync.Mutex
	got []notify.Notification
}

func (r *recorder) Notify(n notify.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, n)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFetcher_Load_Success(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Empty(t, r.URL.RawQuery)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, samplePayload)
	}))
	defer srv.Close()

	rec := &recorder{}
	f := NewFetcher(srv.URL, rec, discardLogger())
	res := f.Load(context.Background())

	require.Nil(t, res.Failure)
	require.NotNil(t, res.Response)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, res.Response.Page)
	assert.Equal(t, 20, res.Response.PageSize)
	assert.Equal(t, 7, res.Response.PageCount)
	posts := res.Posts()
	require.Len(t, posts, 2)
	assert.Equal(t, "a1", posts[0].Key())
	assert.Equal(t, "First", posts[0].Title)
	assert.Equal(t, "Tech & Startup News", posts[0].Feed)
	assert.Equal(t, "https://example.com/1", posts[0].Link)
	assert.Equal(t, "d1", posts[0].Description)
	assert.Equal(t, "b2", posts[1].Key())
	assert.Empty(t, rec.got)
}

func TestFetcher_Load_MissingFieldsStayEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"results":[{"title":"Only a title"}]}`)
	}))
	defer srv.Close()

	res := NewFetcher(srv.URL, nil, discardLogger()).Load(context.Background())

	require.Nil(t, res.Failure)
	posts := res.Posts()
	require.Len(t, posts, 1)
	assert.Equal(t, "Only a title", posts[0].Title)
	assert.Empty(t, posts[0].Key())
	assert.Empty(t, posts[0].Feed)
	assert.Zero(t, res.Response.Page)
}

func TestFetcher_Load_NoResultsKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"page":1}`)
	}))
	defer srv.Close()

	rec := &recorder{}
	res := NewFetcher(srv.URL, rec, discardLogger()).Load(context.Background())

	require.Nil(t, res.Failure)
	assert.Empty(t, res.Posts())
	assert.Empty(t, rec.got)
}

func TestFetcher_Load_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	rec := &recorder{}
	res := NewFetcher(srv.URL, rec, discardLogger()).Load(context.Background())

	require.NotNil(t, res.Failure)
	assert.Nil(t, res.Response)
	assert.Nil(t, res.Posts())
	assert.Equal(t, "Request failed with status code 404", res.Failure.Message)
	require.Len(t, rec.got, 1)
	assert.Equal(t, notify.Error("Error fetching data", "Request failed with status code 404"), rec.got[0])
}

func TestFetcher_Load_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html>not json</html>")
	}))
	defer srv.Close()

	rec := &recorder{}
	res := NewFetcher(srv.URL, rec, discardLogger()).Load(context.Background())

	require.NotNil(t, res.Failure)
	assert.Contains(t, res.Failure.Message, "decode feed")
	require.Len(t, rec.got, 1)
	assert.Equal(t, notify.SeverityError, rec.got[0].Severity)
	assert.Equal(t, FetchErrorTitle, rec.got[0].Title)
}

func TestFetcher_Load_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, samplePayload)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &recorder{}
	res := NewFetcher(srv.URL, rec, discardLogger()).Load(ctx)

	require.NotNil(t, res.Failure)
	assert.Equal(t, "context canceled", res.Failure.Message)
	assert.Len(t, rec.got, 1)
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestFetcher_Load_TransportErrorMessage(t *testing.T) {
	client := &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("timeout")
	})}

	rec := &recorder{}
	res := NewFetcher("http://feed.invalid/api/news", rec, discardLogger(), WithHTTPClient(client)).Load(context.Background())

	require.NotNil(t, res.Failure)
	assert.Equal(t, "timeout", res.Failure.Message)
	require.Len(t, rec.got, 1)
	assert.Equal(t, notify.Error("Error fetching data", "timeout"), rec.got[0])
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "timeout", Message(errors.New("timeout")))
	assert.Equal(t, "An unknown error occurred", Message(errors.New("")))
	assert.Equal(t, "An unknown error occurred", Message(nil))
	assert.Equal(t, "An unknown error occurred", Message(&Failure{}))
}

func TestNewFetcherDefaultsURL(t *testing.T) {
	f := NewFetcher("  ", nil, nil)
	assert.Equal(t, DefaultURL, f.url)
	assert.Zero(t, f.client.Timeout)
}

func TestFetcher_Load_ErrorWithoutMessage(t *testing.T) {
	client := &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("")
	})}

	rec := &recorder{}
	res := NewFetcher("http://feed.invalid/api/news", rec, discardLogger(), WithHTTPClient(client)).Load(context.Background())

	require.NotNil(t, res.Failure)
	assert.Equal(t, "An unknown error occurred", res.Failure.Message)
	require.Len(t, rec.got, 1)
	assert.Equal(t, "An unknown error occurred", rec.got[0].Body)
}

func TestFetcher_Load_WrongFieldTypesKeepPosts(t *testing.T) {
	bodies := map[string]string{
		"string page":     `{"page":"1","paged":20,"pages":1,"results":[{"_id":{"$oid":"a"},"feed":"Hacker News","link":"https://e.com/a","title":"Alpha"}]}`,
		"fractional page": `{"page":1.5,"paged":20,"pages":1,"results":[{"_id":{"$oid":"a"},"feed":"Hacker News","link":"https://e.com/a","title":"Alpha"}]}`,
		"plain string id": `{"page":1,"results":[{"_id":"a","feed":"Hacker News","link":"https://e.com/a","title":"Alpha"}]}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, body)
			}))
			defer srv.Close()

			rec := &recorder{}
			res := NewFetcher(srv.URL, rec, discardLogger()).Load(context.Background())

			require.Nil(t, res.Failure)
			posts := res.Posts()
			require.Len(t, posts, 1)
			assert.Equal(t, "Alpha", posts[0].Title)
			assert.Equal(t, "https://e.com/a", posts[0].Link)
			assert.Empty(t, rec.got)
		})
	}
}
