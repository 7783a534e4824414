// Package garmin talks to Garmin Connect and normalizes what comes back.
// The raw API surface is deliberately small: recent activities, today's max
// metrics and a batched sleep-summary query. Everything returned by the raw
// calls is open-ended JSON; the normalizers in this package turn it into the
// typed records the rest of the app consumes.
package garmin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/FelixWeichselgartner/HealthAgent/internal/logger"
)

const (
	defaultBaseURL = "https://connectapi.garmin.com"
	tokenFileName  = "oauth2_token.json"

	activitiesPath = "/activitylist-service/activities/search/activities"
	maxMetricsPath = "/metrics-service/metrics/maxmet/daily"
	graphqlPath    = "/graphql-gateway/graphql"
)

var (
	// ErrAuthentication indicates missing or rejected credentials/tokens.
	// It is never retried automatically.
	ErrAuthentication = errors.New("garmin authentication failed")
	// ErrRateLimited indicates upstream throttling (HTTP 429). Callers should
	// back off and retry later; the client does not retry internally.
	ErrRateLimited = errors.New("rate limited by Garmin (429), try again later")
)

// API is the read contract the telemetry facets consume. It returns raw
// nested JSON; schema reconciliation happens in the normalizers so that the
// client stays a dumb transport.
type API interface {
	// Activities fetches the activity list window [start, start+limit).
	Activities(ctx context.Context, start, limit int) ([]map[string]any, error)
	// MaxMetrics fetches the max-metrics snapshot for one calendar date.
	MaxMetrics(ctx context.Context, date string) ([]map[string]any, error)
	// GraphQL runs one GraphQL query and returns the raw response document.
	GraphQL(ctx context.Context, query string) (map[string]any, error)
}

// Options configures NewClient. Email/Password are only used when no token
// file exists in TokenDir; a successful credential login persists fresh
// tokens there for next time.
type Options struct {
	TokenDir string
	Email    string
	Password string
	BaseURL  string
}

// Client is an authenticated Garmin Connect handle. It is acquired once by
// the caller and passed into every fetch operation.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ API = (*Client)(nil)

// NewClient obtains an authenticated client. Tokens in TokenDir are
// preferred; it falls back to a credential login and dumps the obtained
// token for reuse.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	conf := &oauth2.Config{
		ClientID: "garmin-connect-mobile",
		Endpoint: oauth2.Endpoint{
			TokenURL:  baseURL + "/oauth-service/oauth/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	tokenPath := filepath.Join(opts.TokenDir, tokenFileName)
	token, tokenErr := loadToken(tokenPath)
	if tokenErr != nil {
		if opts.Email == "" || opts.Password == "" {
			return nil, fmt.Errorf("%w: no token in %s (%v) and no credentials provided",
				ErrAuthentication, opts.TokenDir, tokenErr)
		}
		logger.Debug("Token login failed, trying credential login", "error", tokenErr)
		token, tokenErr = conf.PasswordCredentialsToken(ctx, opts.Email, opts.Password)
		if tokenErr != nil {
			return nil, fmt.Errorf("%w: credential login: %v", ErrAuthentication, tokenErr)
		}
		if err := saveToken(tokenPath, token); err != nil {
			logger.Warn("Failed to persist Garmin token", "path", tokenPath, "error", err)
		}
	}

	src := &persistingTokenSource{
		src:  conf.TokenSource(ctx, token),
		path: tokenPath,
		last: token,
	}

	return &Client{
		baseURL: baseURL,
		http:    oauth2.NewClient(ctx, src),
	}, nil
}

// Activities implements API.
func (c *Client) Activities(ctx context.Context, start, limit int) ([]map[string]any, error) {
	q := url.Values{}
	q.Set("start", strconv.Itoa(start))
	q.Set("limit", strconv.Itoa(limit))

	body, err := c.get(ctx, activitiesPath+"?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var out []map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decoding activity list: %w", err)
	}
	return out, nil
}

// MaxMetrics implements API.
func (c *Client) MaxMetrics(ctx context.Context, date string) ([]map[string]any, error) {
	body, err := c.get(ctx, maxMetricsPath+"/"+url.PathEscape(date)+"/"+url.PathEscape(date))
	if err != nil {
		return nil, err
	}

	var out []map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decoding max metrics: %w", err)
	}
	return out, nil
}

// GraphQL implements API.
func (c *Client) GraphQL(ctx context.Context, query string) (map[string]any, error) {
	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+graphqlPath, strings.NewReader(string(payload)))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var out map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decoding graphql response: %w", err)
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: %s returned %d", ErrAuthentication, req.URL.Path, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%s returned unexpected status %d", req.URL.Path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", req.URL.Path, err)
	}
	return body, nil
}

// persistingTokenSource dumps refreshed tokens back to disk so the next run
// can skip the credential login.
type persistingTokenSource struct {
	src  oauth2.TokenSource
	path string
	last *oauth2.Token
}

func (s *persistingTokenSource) Token() (*oauth2.Token, error) {
	token, err := s.src.Token()
	if err != nil {
		return nil, err
	}
	if token.AccessToken != s.last.AccessToken {
		s.last = token
		if err := saveToken(s.path, token); err != nil {
			logger.Warn("Failed to persist refreshed Garmin token", "path", s.path, "error", err)
		}
	}
	return token, nil
}

func loadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("failed to parse token file: %w", err)
	}
	if token.AccessToken == "" {
		return nil, errors.New("token file contains no access token")
	}
	return &token, nil
}

func saveToken(path string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := json.Marshal(token)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// Today formats a time as the calendar-date string the Garmin endpoints use.
func Today(now time.Time) string {
	return now.Format("2006-01-02")
}
