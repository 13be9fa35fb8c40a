// Package assets fetches the company logo for document rendering, either
// over HTTP or from the local filesystem.
package assets

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"os"
	"strings"

	_ "image/jpeg"
	_ "image/png"
)

// Logo is a fetched image ready for placement: raw bytes plus the
// intrinsic pixel dimensions needed to scale it by aspect ratio.
type Logo struct {
	Data   []byte
	Format string
	Width  int
	Height int
}

type Fetcher struct {
	Client *http.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{Client: http.DefaultClient}
}

// Fetch loads and decode-checks the image at url. URLs without an http(s)
// scheme are read as local file paths.
func (f *Fetcher) Fetch(ctx context.Context, url string) (Logo, error) {
	var data []byte
	var err error
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		data, err = f.fetchHTTP(ctx, url)
	} else {
		data, err = os.ReadFile(url)
	}
	if err != nil {
		return Logo{}, err
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Logo{}, fmt.Errorf("decode logo: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Logo{}, fmt.Errorf("logo has invalid dimensions %dx%d", cfg.Width, cfg.Height)
	}
	return Logo{Data: data, Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}

func (f *Fetcher) fetchHTTP(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build logo request: %w", err)
	}
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch logo: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch logo: unexpected status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read logo body: %w", err)
	}
	return data, nil
}
