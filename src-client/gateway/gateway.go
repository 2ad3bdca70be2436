// Package gateway is the one place that talks HTTP to the backend.
//
// It attaches the bearer credential from the session store to every request
// and hands back the raw response. It never retries, never follows up on a
// 401 and never clears the session: recovery is the caller's decision.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"campusevents/src-client/session"

	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// Observation is reported once per request, after the response headers
// arrived or the transport failed.
type Observation struct {
	Method   string
	Path     string
	Status   int // 0 on transport failure
	Duration time.Duration
	Err      error
}

type Gateway struct {
	baseURL  string
	client   *http.Client
	sessions session.Store
	observe  func(Observation)
}

type Option func(*Gateway)

func WithHTTPClient(client *http.Client) Option {
	return func(g *Gateway) {
		g.client = client
	}
}

func WithObserver(observe func(Observation)) Option {
	return func(g *Gateway) {
		g.observe = observe
	}
}

func New(baseURL string, sessions session.Store, opts ...Option) *Gateway {
	g := &Gateway{
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   http.DefaultClient,
		sessions: sessions,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gateway) BaseURL() string {
	return g.baseURL
}

func (g *Gateway) Get(ctx context.Context, path string) (*http.Response, error) {
	return g.do(ctx, http.MethodGet, path, nil, "")
}

// Post sends body as JSON; a nil body sends no payload.
func (g *Gateway) Post(ctx context.Context, path string, body any) (*http.Response, error) {
	reader, contentType, err := jsonBody(body)
	if err != nil {
		return nil, fmt.Errorf("(*Gateway).Post: %w", err)
	}
	return g.do(ctx, http.MethodPost, path, reader, contentType)
}

func (g *Gateway) Put(ctx context.Context, path string, body any) (*http.Response, error) {
	reader, contentType, err := jsonBody(body)
	if err != nil {
		return nil, fmt.Errorf("(*Gateway).Put: %w", err)
	}
	return g.do(ctx, http.MethodPut, path, reader, contentType)
}

func (g *Gateway) Delete(ctx context.Context, path string) (*http.Response, error) {
	return g.do(ctx, http.MethodDelete, path, nil, "")
}

// PostForm sends an application/x-www-form-urlencoded body.
func (g *Gateway) PostForm(ctx context.Context, path string, form url.Values) (*http.Response, error) {
	return g.do(ctx, http.MethodPost, path,
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
}

// PostMultipart uploads one file under the given form field.
func (g *Gateway) PostMultipart(ctx context.Context, path, field, filename string, file io.Reader) (*http.Response, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return nil, fmt.Errorf("(*Gateway).PostMultipart: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("(*Gateway).PostMultipart: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("(*Gateway).PostMultipart: %w", err)
	}
	return g.do(ctx, http.MethodPost, path, &buf, writer.FormDataContentType())
}

func (g *Gateway) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("(*Gateway).do: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())

	if g.sessions != nil {
		current, err := g.sessions.Load(ctx)
		switch {
		case errors.Is(err, session.ErrNoSession):
		case err != nil:
			return nil, fmt.Errorf("(*Gateway).do: can't read session: %w", err)
		case !current.IsZero():
			req.Header.Set("Authorization", "Bearer "+current.Token)
		}
	}

	startTimer := time.Now()
	resp, err := g.client.Do(req)
	if g.observe != nil {
		obs := Observation{
			Method:   method,
			Path:     path,
			Duration: time.Since(startTimer),
			Err:      err,
		}
		if resp != nil {
			obs.Status = resp.StatusCode
		}
		g.observe(obs)
	}
	if err != nil {
		return nil, fmt.Errorf("(*Gateway).do: %s %s: %w", method, path, err)
	}
	return resp, nil
}

func jsonBody(body any) (io.Reader, string, error) {
	if body == nil {
		return nil, "", nil
	}
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, "", err
	}
	return bytes.NewReader(encoded), "application/json", nil
}
