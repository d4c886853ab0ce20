// Package fetch retrieves the remote content the latest version is extracted from.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// FetchError is a connectivity level failure.
//
// HTTP error statuses are not FetchErrors: their body is returned like any other.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("cannot fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// GitPrefix marks a source whose content is the tag list of a git remote
const GitPrefix = "git+"

type Fetcher struct {
	Client *http.Client
}

func New(client *http.Client) *Fetcher {
	return &Fetcher{Client: client}
}

// Fetch returns the body of url as text.
//
// Sources prefixed with GitPrefix are answered with the remote's tags, see ListTags.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if remote, ok := strings.CutPrefix(url, GitPrefix); ok {
		tags, err := ListTags(ctx, remote)
		if err != nil {
			return "", &FetchError{URL: url, Err: err}
		}
		return strings.Join(tags, "\n"), nil
	}

	return f.get(ctx, url)
}

func (f *Fetcher) client() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return http.DefaultClient
}

func (f *Fetcher) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}

	resp, err := f.client().Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	slog.Debug("Fetched", "url", url, "status", resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}

	return string(body), nil
}
