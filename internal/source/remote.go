package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/idilsaglam/littlelemon/internal/model"
)

// DefaultURL serves the Little Lemon capstone menu.
const DefaultURL = "https://raw.githubusercontent.com/Meta-Mobile-Developer-PC/Working-With-Data-API/main/capstone.json"

// Fetcher retrieves the menu from somewhere remote.
type Fetcher interface {
	Fetch(ctx context.Context) ([]model.MenuItem, error)
}

// Remote fetches the menu with a single GET. There is no retry.
type Remote struct {
	url        string
	httpClient *http.Client
}

// NewRemote returns a Remote for url. A zero timeout means the request
// waits as long as ctx allows.
func NewRemote(url string, timeout time.Duration) *Remote {
	return &Remote{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (r *Remote) Fetch(ctx context.Context) ([]model.MenuItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, &RemoteError{URL: r.url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, &RemoteError{URL: r.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &RemoteError{
			URL:        r.url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status: %s", string(body)),
		}
	}

	items, err := DecodePayload(resp.Body)
	if err != nil {
		return nil, &RemoteError{URL: r.url, StatusCode: resp.StatusCode, Err: err}
	}
	return items, nil
}
