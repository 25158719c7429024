package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

// ErrorPath is where the page navigates when the profile document cannot
// be fetched. The failure is fatal for the page: no retry, no partial
// render.
const ErrorPath = "/error.html"

// StatusError reports a non-success HTTP status from the profile source.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("profile fetch returned status %d", e.Code)
}

// Fetch GETs the profile JSON from url. Any transport failure or
// non-2xx status is an error; callers translate it into a redirect to
// ErrorPath.
func Fetch(ctx context.Context, client *http.Client, url string) (*Document, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building profile request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	return decode(resp.Body)
}

// Load reads the profile JSON from a local file, for build-time
// rendering.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening profile %s: %w", path, err)
	}
	defer f.Close()
	return decode(f)
}

func decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}
	return &doc, nil
}
