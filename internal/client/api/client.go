// Package api is the HTTP core shared by every data service: it builds
// requests against the backend, attaches the bearer token to calls that
// require an authenticated principal, and normalizes failure payloads.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mbs-dev/blogctl/internal/client/authbus"
	"github.com/mbs-dev/blogctl/internal/logging"
)

// TokenSource resolves the current access token, or "" when none is stored.
// It is expected to read from the persisted credential store on every call so
// a token written by another process is picked up immediately.
type TokenSource func(ctx context.Context) (string, error)

// FormFile is a binary blob attached to a multipart request.
type FormFile struct {
	Field    string
	FileName string
	Reader   io.Reader
}

// Form describes a multipart/form-data body.
type Form struct {
	Fields map[string]string
	Files  []FormFile
}

// Request describes one backend call. Body (JSON) and Form (multipart) are
// mutually exclusive; Form wins when both are set.
type Request struct {
	Method       string
	Path         string
	Query        url.Values
	Body         any
	Form         *Form
	RequiresAuth bool
}

type Client struct {
	baseURL *url.URL
	http    *http.Client
	tokens  TokenSource
	bus     *authbus.Bus
	log     logging.Logger
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, bus *authbus.Bus, log logging.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	return &Client{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		bus:     bus,
		log:     log,
	}, nil
}

func (c *Client) buildURL(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func encodeForm(form *Form) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, value := range form.Fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}
	for _, f := range form.Files {
		part, err := w.CreateFormFile(f.Field, f.FileName)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, f.Reader); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

// Do executes the request and decodes a JSON response body into out (when out
// is non-nil and the response has a body).
//
// Failure contract:
//   - transport-level failures return a plain wrapped error (no response);
//   - 4xx/5xx return *Error with the original status, the decoded body, and
//     a normalized message;
//   - a 401 on a RequiresAuth call additionally fires the logout bus with
//     reason "token_expired" before the error is returned. There is no retry
//     and no token refresh; expiry is handled purely by forced logout.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	var (
		body        io.Reader
		contentType string
	)

	switch {
	case req.Form != nil:
		encoded, ct, err := encodeForm(req.Form)
		if err != nil {
			return fmt.Errorf("failed to encode form: %w", err)
		}
		body, contentType = encoded, ct
	case req.Body != nil:
		raw, err := json.Marshal(req.Body)
		if err != nil {
			return fmt.Errorf("failed to encode body: %w", err)
		}
		body, contentType = bytes.NewReader(raw), "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.buildURL(req.Path, req.Query), body)
	if err != nil {
		return err
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-Id", uuid.NewString())
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	if req.RequiresAuth {
		// Decrypted fresh from the store on every call; no in-memory copy.
		// A missing token is not an error here: the backend rejects the call
		// and the response path handles it uniformly.
		token, err := c.tokens(ctx)
		if err != nil {
			c.log.Warn(ctx, "token lookup failed", "error", err)
		} else if token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return c.fail(ctx, req, resp.StatusCode, raw)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) fail(ctx context.Context, req Request, status int, raw []byte) error {
	var body ErrorBody
	_ = json.Unmarshal(raw, &body) // a non-JSON error body falls through to the transport text

	apiErr := &Error{
		Status:  status,
		Message: normalizeMessage(body, http.StatusText(status)),
		Body:    body,
	}

	if req.RequiresAuth && status == http.StatusUnauthorized {
		c.log.Info(ctx, "authenticated call rejected, forcing logout", "path", req.Path)
		c.bus.Trigger(authbus.ReasonTokenExpired)
	}

	c.log.Debug(ctx, "request failed", "method", req.Method, "path", req.Path, "status", status)
	return apiErr
}
