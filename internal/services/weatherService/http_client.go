package weatherservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	providersPath = "/v1/providers"
	locationsPath = "/v1/locations"
	weatherPath   = "/v1/weather"
)

// ClientOptions tune the HTTP client. The zero value is usable.
type ClientOptions struct {
	// Timeout bounds each request. Zero means no timeout.
	Timeout   time.Duration
	UserAgent string
	Logger    *zap.SugaredLogger
}

// HTTPClient talks to the weather service's JSON API.
type HTTPClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	log        *zap.SugaredLogger
}

type providersResponse struct {
	Providers []string `json:"providers"`
}

type locationsResponse struct {
	Locations []Location `json:"locations"`
}

type weatherRequest struct {
	Provider string   `json:"provider"`
	Location Location `json:"location"`
	Date     string   `json:"date"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewHTTPClient creates a client for the service at baseURL, e.g. "http://[::1]:50051".
func NewHTTPClient(baseURL string, opts ClientOptions) *HTTPClient {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = "weather-cli"
	}

	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: opts.Timeout},
		log:        log,
	}
}

// ListProviders returns the names of the providers the service can forecast with.
func (c *HTTPClient) ListProviders(ctx context.Context) ([]string, error) {
	var resp providersResponse
	if err := c.do(ctx, "list providers", http.MethodGet, providersPath, nil, nil, &resp); err != nil {
		return nil, err
	}

	return resp.Providers, nil
}

// SearchLocations returns the locations matching query, in the service's order.
func (c *HTTPClient) SearchLocations(ctx context.Context, query string) ([]Location, error) {
	var resp locationsResponse
	params := url.Values{"query": []string{query}}
	if err := c.do(ctx, "search locations", http.MethodGet, locationsPath, params, nil, &resp); err != nil {
		return nil, err
	}

	return resp.Locations, nil
}

// GetWeather fetches the forecast for location on date from the named provider.
func (c *HTTPClient) GetWeather(ctx context.Context, provider string, location Location, date string) (Forecast, error) {
	var forecast Forecast
	body := weatherRequest{Provider: provider, Location: location, Date: date}
	if err := c.do(ctx, "get weather", http.MethodPost, weatherPath, nil, body, &forecast); err != nil {
		return Forecast{}, err
	}

	return forecast, nil
}

// do sends one request and decodes a JSON reply into out. Every failure comes
// back as a *RemoteCallError naming op.
func (c *HTTPClient) do(ctx context.Context, op, method, path string, params url.Values, body, out any) error {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return &RemoteCallError{Op: op, Err: fmt.Errorf("invalid server address %q: %w", c.baseURL, err)}
	}
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &RemoteCallError{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return &RemoteCallError{Op: op, Err: err}
	}

	requestID := uuid.NewString()
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debugw("remote call failed", "op", op, "url", endpoint, "request_id", requestID, "error", err)
		return &RemoteCallError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RemoteCallError{Op: op, Err: fmt.Errorf("read response: %w", err)}
	}

	c.log.Debugw("remote call",
		"op", op,
		"method", method,
		"url", endpoint,
		"status", resp.StatusCode,
		"request_id", requestID,
		"elapsed", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RemoteCallError{Op: op, Err: statusError(resp.StatusCode, data)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &RemoteCallError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}

	return nil
}

// statusError prefers the server's own error text over the raw body.
func statusError(status int, body []byte) error {
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Error != "" {
			return errors.New(errResp.Error)
		}
		if errResp.Message != "" {
			return errors.New(errResp.Message)
		}
	}

	return fmt.Errorf("server error (%d): %s", status, strings.TrimSpace(string(body)))
}
