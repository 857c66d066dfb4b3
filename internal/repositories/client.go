package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront/internal/errx"
	"storefront/internal/logx"
)

const maxResponseBytes = 8 << 20

// UpstreamClient talks JSON to the remote product/auth API.
type UpstreamClient struct {
	baseURL string
	http    *http.Client
}

func NewUpstreamClient(baseURL string, timeout time.Duration) *UpstreamClient {
	return &UpstreamClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Request describes one upstream call. Token, when set, is sent as a bearer credential.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Token  string
	Body   any
}

// Do sends req and returns the body of a 2xx response. Failures are
// *errx.Error values: transport for network errors, status for non-2xx.
func (c *UpstreamClient) Do(ctx context.Context, req Request) ([]byte, error) {
	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		logx.Error().Err(err).Str("method", req.Method).Str("path", req.Path).Msg("upstream request failed")
		return nil, errx.Transport(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errx.Transport(fmt.Errorf("failed to read upstream response: %w", err))
	}

	logx.Debug().
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("upstream request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errx.Status(resp.StatusCode, errorMessage(data))
	}
	return data, nil
}

// errorMessage pulls {"message": ...} or {"error": ...} out of an error body.
func errorMessage(body []byte) string {
	var e struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}
