// Package backend is the client of the NGO Connect REST API. Every call is a
// single request: no retries, failures are returned to the caller as errors.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxErrorBody = 64 << 10

type Client struct {
	baseURL          string
	http             *http.Client
	userRegisterPath string
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithUserRegisterPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.userRegisterPath = path
		}
	}
}

func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		userRegisterPath: "/api/users/register",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Attachment is an uploaded file forwarded as a multipart part.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

type request struct {
	method string
	route  string // label for metrics, e.g. /api/report/:id/resolve
	path   string
	token  string
	body   io.Reader
	ctype  string
}

type messageResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (m messageResponse) text() string {
	if m.Message != "" {
		return m.Message
	}
	return m.Error
}

func (c *Client) do(ctx context.Context, r request, out any) error {
	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, r.body)
	if err != nil {
		return fmt.Errorf("%s %s: %w", r.method, r.route, err)
	}
	req.Header.Set("Accept", "application/json")
	if r.ctype != "" {
		req.Header.Set("Content-Type", r.ctype)
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	requestDuration.WithLabelValues(r.route).Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(r.route, "error").Inc()
		return fmt.Errorf("%s %s: %w", r.method, r.route, err)
	}
	defer resp.Body.Close()

	requestsTotal.WithLabelValues(r.route, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var msg messageResponse
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		_ = json.Unmarshal(body, &msg)
		return &APIError{Status: resp.StatusCode, Message: msg.text()}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w", r.method, r.route, err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s %s: %w: %v", r.method, r.route, ErrBadResponse, err)
	}
	return nil
}

func jsonRequest(method, route, path, token string, payload any) (request, error) {
	byt, err := json.Marshal(payload)
	if err != nil {
		return request{}, fmt.Errorf("%s %s: encode: %w", method, route, err)
	}
	return request{
		method: method,
		route:  route,
		path:   path,
		token:  token,
		body:   bytes.NewReader(byt),
		ctype:  "application/json",
	}, nil
}

// multipartBody encodes fields in order followed by an optional file part.
func multipartBody(fields [][2]string, fileField string, file *Attachment) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", err
		}
	}

	if file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			escapeQuotes(fileField), escapeQuotes(file.Filename)))
		ctype := file.ContentType
		if ctype == "" {
			ctype = "application/octet-stream"
		}
		h.Set("Content-Type", ctype)

		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(file.Data); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
