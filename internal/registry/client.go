// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

const (
	// DefaultBaseURL is the production crates.io endpoint.
	DefaultBaseURL = "https://crates.io"

	// DefaultUserAgent identifies this tool to the registry, with a contact
	// address as the crates.io crawler policy requests.
	DefaultUserAgent = "crateaudit/dev (bot@antigravity.com)"

	// DefaultTimeout bounds a single crate lookup. The registry normally
	// answers in well under a second; anything beyond this is treated as a
	// transport fault rather than stalling the whole run.
	DefaultTimeout = 30 * time.Second

	// maxJSONResponseBytes is the upper bound on JSON API response size (10 MB).
	// Prevents unbounded memory consumption from malicious or malformed responses.
	maxJSONResponseBytes = 10 << 20
)

// ErrEmptyCrateName is returned when a lookup is attempted with an empty name.
var ErrEmptyCrateName = errors.New("empty crate name")

type (
	// StatusError is returned when the registry answers with a non-200 status.
	// For 429 responses RetryAfter carries the parsed Retry-After header when
	// the registry provided one.
	StatusError struct {
		Code       int
		RetryAfter time.Duration
	}

	// Crate holds the registry metadata for a single crate.
	Crate struct {
		Name             string
		Description      string
		MaxVersion       string // Highest published version, yanked or not
		MaxStableVersion string // Highest non-prerelease version
		NewestVersion    string // Most recently published version
		Downloads        int64
		Repository       string
		RecentVersions   []Version // Sorted by semver, newest first
	}

	// Version is a single published version of a crate.
	Version struct {
		Num       string
		Yanked    bool
		CreatedAt string
	}

	// crateResponse is the JSON wire format of /api/v1/crates/{name}.
	crateResponse struct {
		Crate    crateJSON     `json:"crate"`
		Versions []versionJSON `json:"versions"`
	}

	crateJSON struct {
		Name             string `json:"name"`
		Description      string `json:"description"`
		MaxVersion       string `json:"max_version"`
		MaxStableVersion string `json:"max_stable_version"`
		NewestVersion    string `json:"newest_version"`
		Downloads        int64  `json:"downloads"`
		Repository       string `json:"repository"`
	}

	versionJSON struct {
		Num       string `json:"num"`
		Yanked    bool   `json:"yanked"`
		CreatedAt string `json:"created_at"`
	}

	// Client queries the crates.io API for crate version metadata.
	Client struct {
		httpClient *http.Client
		baseURL    string // API base URL (default: "https://crates.io", overridable for tests)
		userAgent  string // User-Agent header value
	}

	// ClientOption configures a Client during construction.
	ClientOption func(*Client)
)

// Error formats the status failure as a human-readable message.
func (e *StatusError) Error() string {
	if e.Code == http.StatusTooManyRequests && e.RetryAfter > 0 {
		return fmt.Sprintf("registry returned status %d (retry after %s)", e.Code, e.RetryAfter)
	}
	return fmt.Sprintf("registry returned status %d", e.Code)
}

// WithHTTPClient sets a custom HTTP client, useful for tests or proxy configurations.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithBaseURL overrides the registry base URL, primarily for test servers.
func WithBaseURL(base string) ClientOption {
	return func(cl *Client) {
		cl.baseURL = strings.TrimRight(base, "/")
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) ClientOption {
	return func(cl *Client) {
		cl.userAgent = ua
	}
}

// WithTimeout sets the per-request timeout on the underlying HTTP client.
// It replaces the client's existing timeout, including one configured via
// WithHTTPClient.
func WithTimeout(d time.Duration) ClientOption {
	return func(cl *Client) {
		// Copy so a shared http.DefaultClient is never mutated.
		c := *cl.httpClient
		c.Timeout = d
		cl.httpClient = &c
	}
}

// NewClient creates a Client with sensible defaults.
// Defaults: baseURL=DefaultBaseURL, userAgent=DefaultUserAgent, and an HTTP
// client with DefaultTimeout.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    DefaultBaseURL,
		userAgent:  DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetCrate fetches the registry metadata for a single crate by name.
// A non-200 response is returned as a *StatusError; transport and decoding
// faults are returned as-is so callers can tell the two classes apart.
func (c *Client) GetCrate(ctx context.Context, name string) (*Crate, error) {
	if name == "" {
		return nil, ErrEmptyCrateName
	}

	crateURL := fmt.Sprintf("%s/api/v1/crates/%s", c.baseURL, url.PathEscape(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, crateURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }() // read-only response body

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	var cr crateResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxJSONResponseBytes)).Decode(&cr); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if cr.Crate.MaxVersion == "" {
		return nil, fmt.Errorf("crate %s: response missing max_version", name)
	}

	return toCrate(cr), nil
}

// statusError builds a *StatusError from a non-200 response, parsing the
// Retry-After header on 429 answers for a richer error message.
func statusError(resp *http.Response) *StatusError {
	se := &StatusError{Code: resp.StatusCode}

	if resp.StatusCode == http.StatusTooManyRequests {
		// Retry-After may be a delay in seconds or an HTTP date; only the
		// seconds form is parsed, anything else is ignored.
		if secs, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil && secs > 0 {
			se.RetryAfter = time.Duration(secs) * time.Second
		}
	}

	return se
}

// toCrate converts the JSON wire type to the exported Crate type, sorting
// the version history newest-first.
func toCrate(cr crateResponse) *Crate {
	versions := make([]Version, 0, len(cr.Versions))
	for _, v := range cr.Versions {
		versions = append(versions, Version(v))
	}
	sortVersionsDesc(versions)

	return &Crate{
		Name:             cr.Crate.Name,
		Description:      cr.Crate.Description,
		MaxVersion:       cr.Crate.MaxVersion,
		MaxStableVersion: cr.Crate.MaxStableVersion,
		NewestVersion:    cr.Crate.NewestVersion,
		Downloads:        cr.Crate.Downloads,
		Repository:       cr.Crate.Repository,
		RecentVersions:   versions,
	}
}

// sortVersionsDesc sorts versions by semantic version in descending order.
// Crate version numbers carry no "v" prefix, so one is added for comparison.
// Versions with invalid semver are placed at the end. Uses a stable sort so
// equal versions preserve their original ordering.
func sortVersionsDesc(versions []Version) {
	slices.SortStableFunc(versions, func(a, b Version) int {
		return semver.Compare("v"+b.Num, "v"+a.Num)
	})
}
