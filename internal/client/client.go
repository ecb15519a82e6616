package client

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

	"memo/internal/config"
	"memo/internal/logging"
)

// Client talks to the remote notes service. The service's note shapes are
// untrusted; everything it returns is handed back as raw records for the
// normalizer to sort out.
type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

func New(cfg config.Config, log logging.Logger) *Client {
	return NewWithBaseURL(cfg.BaseURL(), cfg.RequestTimeout(), log)
}

func NewWithBaseURL(baseURL string, timeout time.Duration, log logging.Logger) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
		},
		log: log.With(logging.F("component", "client")),
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListNotes fetches all notes. The service may answer with a bare array or a
// {"notes": [...]} wrapper; a body that is neither parses to an empty list
// rather than an error.
func (c *Client) ListNotes(ctx context.Context) ([]map[string]any, error) {
	data, err := c.doJSON(ctx, http.MethodGet, "/notes", nil)
	if err != nil {
		return nil, err
	}
	return decodeNoteList(data), nil
}

// CreateNote asks the service for a new note. The returned record is nil when
// the response body is empty or unparseable; callers decide how to recover.
func (c *Client) CreateNote(ctx context.Context, title, content string) (map[string]any, error) {
	data, err := c.doJSON(ctx, http.MethodPost, "/notes", notePayload{Title: title, Content: content})
	if err != nil {
		return nil, err
	}
	return decodeNoteObject(data), nil
}

func (c *Client) UpdateNote(ctx context.Context, id, title, content string) (map[string]any, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("note id is required")
	}
	path := "/notes/" + url.PathEscape(id)
	data, err := c.doJSON(ctx, http.MethodPut, path, notePayload{Title: title, Content: content})
	if err != nil {
		return nil, err
	}
	return decodeNoteObject(data), nil
}

func (c *Client) DeleteNote(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.New("note id is required")
	}
	_, err := c.doJSON(ctx, http.MethodDelete, "/notes/"+url.PathEscape(id), nil)
	return err
}

type notePayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("request failed",
			logging.F("method", method),
			logging.F("path", path),
			logging.F("request_id", requestID),
			logging.F("err", err))
		return nil, err
	}
	defer resp.Body.Close()

	data, readErr := io.ReadAll(resp.Body)
	c.log.Debug("request",
		logging.F("method", method),
		logging.F("path", path),
		logging.F("status", resp.StatusCode),
		logging.F("duration", time.Since(started)),
		logging.F("request_id", requestID))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeAPIError(resp.StatusCode, data)
	}
	if readErr != nil {
		return nil, readErr
	}
	return data, nil
}

func decodeNoteList(data []byte) []map[string]any {
	var list []map[string]any
	if err := json.Unmarshal(data, &list); err == nil {
		return list
	}
	var wrapped struct {
		Notes []map[string]any `json:"notes"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil {
		return wrapped.Notes
	}
	return nil
}

func decodeNoteObject(data []byte) map[string]any {
	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		return nil
	}
	return record
}

func decodeAPIError(status int, body []byte) error {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &payload)
	message := payload.Error
	if message == "" {
		message = payload.Message
	}
	if message == "" {
		message = strings.TrimSpace(string(body))
	}
	if message == "" {
		message = http.StatusText(status)
	}
	return &APIError{StatusCode: status, Message: message}
}

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// AsAPIError unwraps err into an *APIError, or nil when the failure was not
// an HTTP-level one.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}
