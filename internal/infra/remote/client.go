package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"library-platform/internal/pkg/config"
	"library-platform/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	// ErrNotFound means the remote service answered and the resource does
	// not exist there.
	ErrNotFound = errs.New("remote resource not found")
	// ErrUnreachable covers every other failed lookup: transport errors,
	// timeouts, non-2xx statuses and malformed bodies. The underlying
	// cause stays attached to the returned error chain.
	ErrUnreachable = errs.New("remote service unreachable")
)

// Snapshot is the ephemeral copy of a remote resource's display field,
// captured at validation time to fill denormalized columns. It is never
// persisted on its own and never refreshed.
type Snapshot struct {
	ID      uuid.UUID
	Display string
}

// Client resolves soft references against the user and book services.
// Policy lives in RemoteConfig: one outbound call per lookup, a bounded
// timeout, no retry and no caching.
type Client struct {
	http    *http.Client
	userURL string
	bookURL string
}

func NewClient(cfg config.RemoteConfig) *Client {
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		userURL: strings.TrimSuffix(cfg.UserServiceURL, "/"),
		bookURL: strings.TrimSuffix(cfg.BookServiceURL, "/"),
	}
}

func (c *Client) FetchUser(ctx context.Context, id uuid.UUID) (*Snapshot, error) {
	return c.fetch(ctx, c.userURL+"/users/"+id.String(), "name", id)
}

func (c *Client) FetchBook(ctx context.Context, id uuid.UUID) (*Snapshot, error) {
	return c.fetch(ctx, c.bookURL+"/books/"+id.String(), "title", id)
}

func (c *Client) fetch(ctx context.Context, url, field string, id uuid.UUID) (*Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.Mark(err, ErrUnreachable)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Mark(err, ErrUnreachable)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, errs.Mark(fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url), ErrUnreachable)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Mark(err, ErrUnreachable)
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "malformed response body"), ErrUnreachable)
	}
	display, ok := payload[field].(string)
	if !ok || display == "" {
		return nil, errs.Mark(fmt.Errorf("response from %s is missing field %q", url, field), ErrUnreachable)
	}

	return &Snapshot{ID: id, Display: display}, nil
}
