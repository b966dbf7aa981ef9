package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TokenSource supplies the bearer token for authenticated calls. An empty
// token sends the request unauthenticated (some endpoints are public).
type TokenSource interface {
	BearerToken() string
}

// Client is the one HTTP wrapper every entity service shares. It owns the
// bearer header, the status-code branching, and the error-body parsing;
// callers only see typed errors. There is no retry and no cache: each call
// is a single shot against the backend.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     zerolog.Logger

	// onUnauthorized runs once per 401 so the session can be destroyed in
	// a single place instead of in every caller.
	onUnauthorized func()
}

type Option func(*Client)

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

func WithUnauthorizedHandler(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.tokens != nil {
		if token := c.tokens.BearerToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read body: %w", method, path, err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("api call")

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return data, nil
	}

	apiErr := parseErrorBody(resp.StatusCode, data)
	if apiErr.Kind == KindUnauthorized && c.onUnauthorized != nil {
		c.onUnauthorized()
	}
	return nil, apiErr
}

// errorBody is the backend's failure envelope: {message} or {error}, with
// an optional validation list shaped {field|param, msg|message}.
type errorBody struct {
	Message string `json:"message"`
	Err     string `json:"error"`
	Errors  []struct {
		Field   string `json:"field"`
		Param   string `json:"param"`
		Msg     string `json:"msg"`
		Message string `json:"message"`
	} `json:"errors"`
}

func parseErrorBody(status int, data []byte) *Error {
	out := &Error{Status: status}

	switch status {
	case http.StatusUnauthorized:
		out.Kind = KindUnauthorized
	case http.StatusForbidden:
		out.Kind = KindForbidden
	case http.StatusNotFound:
		out.Kind = KindNotFound
	case http.StatusConflict:
		out.Kind = KindConflict
	default:
		out.Kind = KindUnknown
	}

	var parsed errorBody
	if err := json.Unmarshal(data, &parsed); err != nil {
		out.Message = strings.TrimSpace(string(data))
		return out
	}

	out.Message = parsed.Message
	if out.Message == "" {
		out.Message = parsed.Err
	}
	for _, fe := range parsed.Errors {
		field := fe.Field
		if field == "" {
			field = fe.Param
		}
		msg := fe.Msg
		if msg == "" {
			msg = fe.Message
		}
		out.Fields = append(out.Fields, FieldError{Field: field, Message: msg})
	}
	if len(out.Fields) > 0 && out.Kind == KindUnknown {
		out.Kind = KindValidation
	}
	return out
}

// GetList fetches a collection. A 404 on a collection endpoint means "no
// results", never an error.
func GetList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	data, err := c.do(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		if IsNotFound(err) {
			return []T{}, nil
		}
		return nil, err
	}
	return DecodeList[T](data)
}

// GetOne fetches a single resource; a 404 here is a real not-found.
func GetOne[T any](ctx context.Context, c *Client, path string) (T, error) {
	var zero T
	data, err := c.do(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return zero, err
	}
	return DecodeOne[T](data)
}

func PostJSON[T any](ctx context.Context, c *Client, path string, in any) (T, error) {
	return sendJSON[T](ctx, c, http.MethodPost, path, in)
}

func PutJSON[T any](ctx context.Context, c *Client, path string, in any) (T, error) {
	return sendJSON[T](ctx, c, http.MethodPut, path, in)
}

func PatchJSON[T any](ctx context.Context, c *Client, path string, in any) (T, error) {
	return sendJSON[T](ctx, c, http.MethodPatch, path, in)
}

func sendJSON[T any](ctx context.Context, c *Client, method, path string, in any) (T, error) {
	var zero T
	payload, err := json.Marshal(in)
	if err != nil {
		return zero, err
	}
	data, err := c.do(ctx, method, path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return zero, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return zero, nil
	}
	return DecodeOne[T](data)
}

func Delete(ctx context.Context, c *Client, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, "", nil)
	return err
}

// Upload is an optional file attached to a multipart request.
type Upload struct {
	Field    string
	Filename string
	Reader   io.Reader
}

// SendMultipart posts form fields plus an optional file, as the pitch
// create/update endpoints require.
func SendMultipart[T any](ctx context.Context, c *Client, method, path string, fields map[string]string, file *Upload) (T, error) {
	var zero T

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return zero, err
		}
	}
	if file != nil && file.Reader != nil {
		part, err := w.CreateFormFile(file.Field, file.Filename)
		if err != nil {
			return zero, err
		}
		if _, err := io.Copy(part, file.Reader); err != nil {
			return zero, err
		}
	}
	if err := w.Close(); err != nil {
		return zero, err
	}

	data, err := c.do(ctx, method, path, w.FormDataContentType(), buf)
	if err != nil {
		return zero, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return zero, nil
	}
	return DecodeOne[T](data)
}
