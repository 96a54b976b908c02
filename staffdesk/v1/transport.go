package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

// TokenSource supplies the bearer credential attached to outgoing requests.
// An empty token is not an error at this layer; the server answers
// unauthenticated calls with 401/403 and callers deal with that.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed-credential TokenSource.
type StaticToken string

func (s StaticToken) Token() string { return string(s) }

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Transport handles low-level HTTP and authentication
type Transport struct {
	BaseURL    string
	Tokens     TokenSource
	HTTPClient *http.Client
}

// NewTransport creates a transport with base URL and a token source
func NewTransport(baseURL string, tokens TokenSource) *Transport {
	return &Transport{
		BaseURL:    baseURL,
		Tokens:     tokens,
		HTTPClient: &http.Client{},
	}
}

// helper: build full URL with query params
func (t *Transport) buildURL(path string, query map[string]string) string {
	u, _ := url.Parse(t.BaseURL + path)
	q := u.Query()
	for k, v := range query {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func (t *Transport) newRequest(ctx context.Context, method, path string, body any, query map[string]string) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, t.buildURL(path, query), reader)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.Tokens != nil {
		if token := t.Tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	return req, nil
}

// single best-effort attempt: no retry, no caching
func (t *Transport) do(ctx context.Context, method, path string, body any, query map[string]string) ([]byte, error) {
	req, err := t.newRequest(ctx, method, path, body, query)
	if err != nil {
		return nil, err
	}

	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, data)
	}

	return data, nil
}

// Get sends a GET request
func (t *Transport) Get(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	return t.do(ctx, http.MethodGet, path, nil, query)
}

// Post sends a POST request with JSON body
func (t *Transport) Post(ctx context.Context, path string, body any, query map[string]string) ([]byte, error) {
	return t.do(ctx, http.MethodPost, path, body, query)
}

// Put sends a PUT request with JSON body
func (t *Transport) Put(ctx context.Context, path string, body any, query map[string]string) ([]byte, error) {
	return t.do(ctx, http.MethodPut, path, body, query)
}

// Delete sends a DELETE request
func (t *Transport) Delete(ctx context.Context, path string) error {
	_, err := t.do(ctx, http.MethodDelete, path, nil, nil)
	return err
}

// GetBlob streams a binary response body into w.
func (t *Transport) GetBlob(ctx context.Context, path string, w io.Writer) error {
	req, err := t.newRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return err
	}

	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		return newAPIError(resp.StatusCode, data)
	}

	_, err = io.Copy(w, resp.Body)
	return err
}

func newAPIError(status int, body []byte) *APIError {
	var er struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &er); err == nil && er.Message != "" {
		return &APIError{StatusCode: status, Message: er.Message}
	}
	return &APIError{StatusCode: status, Message: string(body)}
}
