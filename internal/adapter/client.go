// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-admin-dashboard/internal/config"
	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/internal/metrics"
	"github.com/MKhiriev/go-admin-dashboard/internal/store"
	"github.com/MKhiriev/go-admin-dashboard/internal/utils"
	"github.com/MKhiriev/go-admin-dashboard/models"
)

// Response keys accepted for the tokens of a refresh or login response, in
// order of preference.
var (
	accessTokenKeys  = []string{"accessToken", "access_token", "token"}
	refreshTokenKeys = []string{"refreshToken", "refresh_token"}
)

var errRefreshFailed = errors.New("token refresh failed")

// Options describe one request issued through [Client.Send].
type Options struct {
	// Method defaults to GET.
	Method string

	// Headers are sent as given, except Authorization which is replaced
	// whenever an access token is stored.
	Headers map[string]string

	// Body is sent as is for []byte and string, read fully for io.Reader and
	// JSON-encoded otherwise. It is replayed unchanged on the retry.
	Body any
}

// Response is the status, headers and raw body of a completed request.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// IsSuccess reports a 2xx status.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// Decode runs [DecodeBody] on the body.
func (r *Response) Decode() Body {
	return DecodeBody(r.Body)
}

// Client issues requests against the backend with the stored bearer token and
// recovers once from an expired access token by exchanging the stored
// refresh token.
//
// Concurrent refreshes for the same refresh token are collapsed into a single
// call to the refresh endpoint. Client is safe for concurrent use as long as
// its [store.SessionStore] is.
type Client struct {
	client      *utils.HTTPClient
	session     store.SessionStore
	refreshPath string
	refreshes   singleflight.Group
	logger      *logger.Logger
}

// NewClient returns a Client for the backend at cfg.BaseURL that keeps its
// tokens in session.
func NewClient(cfg config.ClientAdapter, session store.SessionStore, log *logger.Logger) *Client {
	httpClient := utils.NewHTTPClient(log)
	httpClient.SetBaseURL(strings.TrimRight(cfg.BaseURL, "/"))
	if cfg.RequestTimeout > 0 {
		httpClient.SetTimeout(cfg.RequestTimeout)
	}

	refreshPath := cfg.RefreshPath
	if refreshPath == "" {
		refreshPath = config.DefaultRefreshPath
	}

	return &Client{
		client:      httpClient,
		session:     session,
		refreshPath: refreshPath,
		logger:      log,
	}
}

// Session returns the store the client reads its tokens from.
func (c *Client) Session() store.SessionStore {
	return c.session
}

// Send issues opts against baseURL+path with the stored access token.
//
// Any status other than 401 is returned unchanged. On a 401 the stored
// refresh token is exchanged once and the request is re-issued exactly once
// with the new access token; the retry's response is returned whatever its
// status. When no refresh token is stored or the refresh fails, the session
// is cleared and the original 401 is returned. Only transport faults of the
// request or of its retry are reported as errors.
func (c *Client) Send(ctx context.Context, path string, opts Options) (*Response, error) {
	method, body, err := prepareOptions(&opts)
	if err != nil {
		return nil, err
	}

	token, err := c.session.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading access token: %w", err)
	}

	resp, err := c.do(ctx, method, path, opts.Headers, body, token)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	log := c.logger.With().Str("method", method).Str("path", path).Logger()
	log.Debug().Msg("request unauthorized, trying to refresh the session")

	newToken, ok, err := c.renewAccessToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if !ok {
		return resp, nil
	}

	retry, err := c.do(ctx, method, path, opts.Headers, body, newToken)
	if err != nil {
		return nil, fmt.Errorf("retry after refresh: %w", err)
	}
	metrics.RecordRetry(retry.StatusCode)
	log.Debug().Int("status", retry.StatusCode).Msg("request retried with refreshed token")

	return retry, nil
}

// renewAccessToken returns the access token to retry with after a 401 for a
// request sent with usedToken. ok is false when no retry should happen; the
// session is cleared in that case. The error is non-nil only when ctx ends
// while waiting for the refresh.
func (c *Client) renewAccessToken(ctx context.Context, usedToken string) (string, bool, error) {
	// another caller may have refreshed while this request was in flight
	if current, err := c.session.Get(ctx); err == nil && current != "" && current != usedToken {
		metrics.RecordRefresh(metrics.RefreshShared)
		return current, true, nil
	}

	refreshToken, err := c.session.GetRefresh(ctx)
	if err != nil {
		c.logger.Err(err).Msg("error reading refresh token")
	}
	if refreshToken == "" {
		metrics.RecordRefresh(metrics.RefreshNoRefreshToken)
		c.clearSession(ctx)
		return "", false, nil
	}

	ch := c.refreshes.DoChan(refreshToken, func() (any, error) {
		// the flight outlives a single caller's cancellation; the transport
		// timeout still bounds it
		flightCtx := context.WithoutCancel(ctx)

		// a flight for this refresh token may have finished between the
		// check above and this one
		if current, err := c.session.Get(flightCtx); err == nil && current != "" && current != usedToken {
			return current, nil
		}
		return c.refresh(flightCtx, refreshToken)
	})

	select {
	case <-ctx.Done():
		return "", false, fmt.Errorf("waiting for token refresh: %w", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return "", false, nil
		}
		if res.Shared {
			c.logger.Debug().Msg("joined an in-flight token refresh")
		}
		return res.Val.(string), true, nil
	}
}

// refresh exchanges refreshToken for a new access token and stores the new
// pair. Every failure clears the session.
func (c *Client) refresh(ctx context.Context, refreshToken string) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RefreshRequest{RefreshToken: refreshToken}).
		Post(c.refreshPath)
	if err != nil {
		c.logger.Err(err).Msg("refresh request failed")
		metrics.RecordRefresh(metrics.RefreshTransportError)
		c.clearSession(ctx)
		return "", fmt.Errorf("%w: %w", errRefreshFailed, err)
	}

	if !resp.IsSuccess() {
		c.logger.Warn().Int("status", resp.StatusCode()).Msg("refresh rejected by server")
		metrics.RecordRefresh(metrics.RefreshRejected)
		c.clearSession(ctx)
		return "", fmt.Errorf("%w: status %d", errRefreshFailed, resp.StatusCode())
	}

	pair, ok := parseTokenPair(resp.Body())
	if !ok {
		c.logger.Warn().Msg("refresh response carries no access token")
		metrics.RecordRefresh(metrics.RefreshNoAccessToken)
		c.clearSession(ctx)
		return "", fmt.Errorf("%w: no access token in response", errRefreshFailed)
	}

	if err = c.session.Save(ctx, pair.AccessToken, pair.RefreshToken); err != nil {
		// the retry can still use the token held in memory
		c.logger.Err(err).Msg("error saving refreshed session")
	}
	metrics.RecordRefresh(metrics.RefreshSuccess)
	c.logger.Debug().Bool("rotated", pair.RefreshToken != "").Msg("session refreshed")

	return pair.AccessToken, nil
}

func (c *Client) clearSession(ctx context.Context) {
	if err := c.session.Clear(ctx); err != nil {
		c.logger.Err(err).Msg("error clearing session")
	}
}

// do performs one request. token, when non-empty, replaces any Authorization
// header. A nil body sends no payload.
func (c *Client) do(ctx context.Context, method, path string, headers map[string]string, body []byte, token string) (*Response, error) {
	req := c.client.R().
		SetContext(ctx).
		SetHeaders(headers)
	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	return newResponse(resp), nil
}

func newResponse(resp *resty.Response) *Response {
	return &Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}
}

// prepareOptions resolves the method and turns the body into bytes that can
// be sent twice. A JSON-encoded body gets a JSON content type unless the
// caller set one.
func prepareOptions(opts *Options) (string, []byte, error) {
	method := strings.ToUpper(strings.TrimSpace(opts.Method))
	if method == "" {
		method = http.MethodGet
	}

	var body []byte
	switch b := opts.Body.(type) {
	case nil:
	case []byte:
		body = b
	case string:
		body = []byte(b)
	case io.Reader:
		data, err := io.ReadAll(b)
		if err != nil {
			return "", nil, fmt.Errorf("error reading request body: %w", err)
		}
		body = data
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return "", nil, fmt.Errorf("error encoding request body: %w", err)
		}
		body = data
		if !hasHeader(opts.Headers, "Content-Type") {
			headers := make(map[string]string, len(opts.Headers)+1)
			for k, v := range opts.Headers {
				headers[k] = v
			}
			headers["Content-Type"] = "application/json"
			opts.Headers = headers
		}
	}

	return method, body, nil
}

func hasHeader(headers map[string]string, name string) bool {
	for k := range headers {
		if strings.EqualFold(k, name) {
			return true
		}
	}
	return false
}

// parseTokenPair reads the tokens from a JSON object body. ok is false when
// no non-empty access token is present.
func parseTokenPair(raw []byte) (models.TokenPair, bool) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return models.TokenPair{}, false
	}

	pair := models.TokenPair{
		AccessToken:  firstString(fields, accessTokenKeys),
		RefreshToken: firstString(fields, refreshTokenKeys),
	}
	return pair, pair.AccessToken != ""
}

func firstString(fields map[string]any, keys []string) string {
	for _, key := range keys {
		if v, ok := fields[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
