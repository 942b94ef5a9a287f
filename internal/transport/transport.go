// Package transport issues authenticated HTTP requests against the receipt
// API. It does not retry and does not interpret bodies.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/gm3197/CSE437s-group-4/internal/apierr"
	"github.com/gm3197/CSE437s-group-4/internal/logging"
)

const (
	maxResponseBytes = 32 << 20
	maxErrorBody     = 256
)

// TokenSource supplies the session token, if there is one.
type TokenSource interface {
	Token() (string, bool)
}

type Config struct {
	BaseURL string
	Timeout time.Duration
	// MaxResponseBytes caps a response body. Zero means 32 MiB.
	MaxResponseBytes int64
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     *logrus.Logger
	maxBody    int64
}

func NewClient(cfg Config, tokens TokenSource, logger *logrus.Logger) *Client {
	maxBody := cfg.MaxResponseBytes
	if maxBody <= 0 {
		maxBody = maxResponseBytes
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		tokens:     tokens,
		logger:     logger,
		maxBody:    maxBody,
	}
}

type Request struct {
	Method      string
	Path        string
	Body        []byte
	ContentType string
}

// JSONRequest encodes body as the JSON payload of a request.
func JSONRequest(method, path string, body interface{}) (*Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s %s: %w", method, path, err)
	}
	return &Request{
		Method:      method,
		Path:        path,
		Body:        payload,
		ContentType: "application/json",
	}, nil
}

func (r *Request) op() string {
	return r.Method + " " + r.Path
}

type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// MediaType is the response Content-Type without parameters, lower cased.
func (r *Response) MediaType() string {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return ""
	}
	return mediaType
}

// CheckStatus turns any non-2xx response into an apierr.StatusError.
func (r *Response) CheckStatus(op string) error {
	if r.StatusCode >= 200 && r.StatusCode < 300 {
		return nil
	}
	body := r.Body
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return &apierr.StatusError{
		Op:         op,
		StatusCode: r.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}
}

func (c *Client) target(path string) (string, error) {
	target := c.baseURL + path
	parsed, err := url.Parse(target)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", apierr.ErrInvalidURL, target, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("%w: %s", apierr.ErrInvalidURL, target)
	}
	return parsed.String(), nil
}

// Send performs one request. The session token, when present, is attached
// as the Authorization header value. Content-Type is set only when the
// request has a body.
func (c *Client) Send(ctx context.Context, req *Request) (*Response, error) {
	logData := logging.NewLogData(c.logger)
	logData.AddData("method", req.Method)
	logData.AddData("path", req.Path)

	target, err := c.target(req.Path)
	if err != nil {
		logData.Log().WithError(err).Warn("Transport.Send.InvalidURL")
		return nil, err
	}

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apierr.ErrInvalidURL, target, err)
	}

	requestID := uuid.Must(uuid.NewV4()).String()
	httpReq.Header.Set("X-Request-ID", requestID)
	logData.AddData("request_id", requestID)

	if token, ok := c.tokens.Token(); ok {
		httpReq.Header.Set("Authorization", token)
	}
	if body != nil {
		contentType := req.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		httpReq.Header.Set("Content-Type", contentType)
	}

	endTimer := logData.AddTiming("elapsed_ms")
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		endTimer()
		logData.Log().WithError(err).Error("Transport.Send.Error")
		return nil, &apierr.TransportError{Op: req.op(), Err: err}
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(httpResp.Body, c.maxBody+1))
	endTimer()
	if err != nil {
		logData.Log().WithError(err).Error("Transport.Send.ReadError")
		return nil, &apierr.TransportError{Op: req.op(), Err: err}
	}
	if int64(len(respBody)) > c.maxBody {
		err := fmt.Errorf("response body exceeds %d bytes", c.maxBody)
		logData.Log().WithError(err).Error("Transport.Send.ReadError")
		return nil, &apierr.TransportError{Op: req.op(), Err: err}
	}

	logData.AddData("status", httpResp.StatusCode)
	logData.AddData("bytes", len(respBody))
	logData.Log().Debug("Transport.Send.Complete")

	return &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       respBody,
	}, nil
}
