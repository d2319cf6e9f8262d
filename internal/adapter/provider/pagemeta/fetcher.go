// Package pagemeta fetches the title and meta description of a web page.
// Used by competitor-mode searches to ground the prompt in what the target
// page actually says.
package pagemeta

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// maxBodyBytes caps how much of the page is read. Title and description
// live in <head>, so a small prefix is enough.
const maxBodyBytes = 256 << 10

// Meta is the extracted page metadata.
type Meta struct {
	URL         string
	Title       string
	Description string
}

// Fetcher retrieves page metadata over HTTP.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// NewFetcher creates a fetcher with the given per-request timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
	}
}

// Fetch downloads the page and extracts its title and meta description.
// The caller is expected to treat any error as non-fatal and continue with
// the bare URL.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (*Meta, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "ranklens-bot/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %s: status %d", pageURL, resp.StatusCode)
	}

	meta := parseMeta(http.MaxBytesReader(nil, resp.Body, maxBodyBytes))
	meta.URL = pageURL
	if meta.Title == "" && meta.Description == "" {
		return nil, fmt.Errorf("fetch %s: no title or description found", pageURL)
	}
	return meta, nil
}

// parseMeta tokenizes HTML and pulls out <title> and
// <meta name="description" content="...">. Stops at </head>.
func parseMeta(r interface{ Read([]byte) (int, error) }) *Meta {
	meta := &Meta{}
	z := html.NewTokenizer(r)
	inTitle := false

	for {
		switch z.Next() {
		case html.ErrorToken:
			return meta
		case html.StartTagToken, html.SelfClosingTagToken:
			t := z.Token()
			switch t.Data {
			case "title":
				inTitle = true
			case "meta":
				var name, content string
				for _, a := range t.Attr {
					switch strings.ToLower(a.Key) {
					case "name", "property":
						name = strings.ToLower(a.Val)
					case "content":
						content = a.Val
					}
				}
				if (name == "description" || name == "og:description") && meta.Description == "" {
					meta.Description = strings.TrimSpace(content)
				}
			}
		case html.TextToken:
			if inTitle {
				meta.Title = strings.TrimSpace(string(z.Text()))
				inTitle = false
			}
		case html.EndTagToken:
			t := z.Token()
			if t.Data == "title" {
				inTitle = false
			}
			if t.Data == "head" {
				return meta
			}
		}
	}
}
