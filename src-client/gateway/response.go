package gateway

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// APIError is a non-2xx response. Detail carries the backend's optional
// JSON "detail" field, or the raw body when there is none.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend responded %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("backend responded %d: %s", e.Status, e.Detail)
}

func (e *APIError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

func IsSuccess(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// ErrorFromResponse reads and closes the body of a failed response.
func ErrorFromResponse(resp *http.Response) error {
	defer resp.Body.Close()
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return &APIError{Status: resp.StatusCode}
	}

	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Detail) == 0 {
		return &APIError{Status: resp.StatusCode, Detail: strings.TrimSpace(string(raw))}
	}
	// validation errors come back as a list of objects
	var detail string
	if err := json.Unmarshal(body.Detail, &detail); err != nil {
		detail = string(body.Detail)
	}
	return &APIError{Status: resp.StatusCode, Detail: detail}
}

// DecodeJSON decodes a 2xx body into v and closes it; anything else becomes
// an *APIError. A nil v only checks the status.
func DecodeJSON(resp *http.Response, v any) error {
	if !IsSuccess(resp) {
		return ErrorFromResponse(resp)
	}
	defer resp.Body.Close()
	if v == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("DecodeJSON: %w", err)
	}
	return nil
}
