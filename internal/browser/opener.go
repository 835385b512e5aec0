// Package browser hands article links to the system's default URL handler.
package browser

import (
	"io"

	"github.com/pkg/browser"
)

func init() {
	// The spawned handler would otherwise write over the terminal UI.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// Opener opens a URL outside this process.
type Opener interface {
	Open(url string) error
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(url string) error

func (f OpenerFunc) Open(url string) error { return f(url) }

// System opens URLs with the platform handler (xdg-open, open, start).
type System struct{}

func (System) Open(url string) error {
	return browser.OpenURL(url)
}
