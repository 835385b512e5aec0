// Package icon loads publisher icons, falling back to a bundled asset when
// the remote image cannot be fetched or decoded.
package icon

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/chai2010/webp"
)

// DefaultFallback names the bundled fallback asset.
const DefaultFallback = "icon.png"

//go:embed icon.png
var fallbackPNG []byte

// Icon is a resolved image and where it came from.
type Icon struct {
	Image    image.Image
	Source   string
	Fallback bool
}

// Loader fetches icons over HTTP.
type Loader struct {
	client   *http.Client
	fallback image.Image
	log      *slog.Logger
}

// NewLoader builds a Loader. fallbackPath may name a local image file; an
// empty path, DefaultFallback, or an unreadable file selects the bundled asset.
func NewLoader(fallbackPath string, log *slog.Logger) *Loader {
	if log == nil {
		log = slog.Default()
	}
	return &Loader{
		client:   &http.Client{Timeout: 10 * time.Second},
		fallback: loadFallback(fallbackPath, log),
		log:      log,
	}
}

func loadFallback(path string, log *slog.Logger) image.Image {
	if path != "" && path != DefaultFallback {
		img, err := decodeFile(path)
		if err == nil {
			return img
		}
		log.Warn("icon: unusable fallback file, using bundled asset", "path", path, "error", err)
	}
	img, _, err := image.Decode(bytes.NewReader(fallbackPNG))
	if err != nil {
		panic(fmt.Sprintf("icon: bundled fallback is corrupt: %v", err))
	}
	return img
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

// Load fetches source and decodes it. Any failure yields the fallback icon;
// Load itself never fails.
func (l *Loader) Load(ctx context.Context, source string) Icon {
	img, err := l.fetch(ctx, source)
	if err != nil {
		l.log.Warn("icon: using fallback", "source", source, "error", err)
		return Icon{Image: l.fallback, Source: source, Fallback: true}
	}
	return Icon{Image: img, Source: source}
}

func (l *Loader) fetch(ctx context.Context, source string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("icon: status %d", resp.StatusCode)
	}
	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode icon: %w", err)
	}
	return img, nil
}

// EncodeWebP writes img as WebP. quality outside (0, 100] means 85.
func EncodeWebP(w io.Writer, img image.Image, quality int) error {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	if err := webp.Encode(w, img, &webp.Options{Quality: float32(quality)}); err != nil {
		return fmt.Errorf("encode webp: %w", err)
	}
	return nil
}
