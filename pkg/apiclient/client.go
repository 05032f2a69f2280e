package apiclient

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

	"charity-care-portal/config"
	"charity-care-portal/internal/domain/entity"
	"charity-care-portal/internal/metrics"

	"github.com/sirupsen/logrus"
)

const maxResponseBytes = 10 << 20

// SessionTerminator destroys the visitor's session after the backend
// rejected its credential.
type SessionTerminator interface {
	Terminate(ctx context.Context, visitorID string) error
}

// Credentials identify the caller of a backend request.
type Credentials struct {
	VisitorID string
	Token     string
}

type credentialsKey struct{}

func WithCredentials(ctx context.Context, creds Credentials) context.Context {
	return context.WithValue(ctx, credentialsKey{}, creds)
}

func CredentialsFromContext(ctx context.Context) (Credentials, bool) {
	creds, ok := ctx.Value(credentialsKey{}).(Credentials)
	return creds, ok
}

type errorEnvelope struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// Client is the only way the portal talks to the backend API. It never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	terminator SessionTerminator
	log        *logrus.Logger
}

func NewClient(cfg config.APIConfig, terminator SessionTerminator, log *logrus.Logger) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = config.DefaultAPIBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		terminator: terminator,
		log:        log,
	}
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.Request(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.Request(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.Request(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out interface{}) error {
	return c.Request(ctx, http.MethodPatch, path, nil, body, out)
}

// Request performs one backend call and decodes a 2xx JSON body into out
// when out is non-nil. Failures are always *Error.
func (c *Client) Request(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	start := time.Now()
	err := c.do(ctx, method, path, query, body, out)
	metrics.BackendRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	metrics.BackendRequests.WithLabelValues(method, outcome(err)).Inc()
	return err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindClient, Message: entity.NoticeGenericError, Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return &Error{Kind: KindClient, Message: entity.NoticeGenericError, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	creds, _ := CredentialsFromContext(ctx)
	if creds.Token != "" {
		req.Header.Set("Authorization", "Bearer "+creds.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warnf("Failed to call backend %s %s: %+v", method, path, err)
		return &Error{Kind: KindTransport, Message: entity.NoticeGenericError, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &Error{Kind: KindTransport, Status: resp.StatusCode, Message: entity.NoticeGenericError, Err: err}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || len(bytes.TrimSpace(raw)) == 0 {
			return nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			c.log.Warnf("Failed to decode backend response %s %s: %+v", method, path, err)
			return &Error{Kind: KindServer, Status: resp.StatusCode, Message: entity.NoticeServerError, Err: err}
		}
		return nil
	}

	var envelope errorEnvelope
	_ = json.Unmarshal(raw, &envelope)
	apiErr := classify(resp.StatusCode, envelope.Message)

	if apiErr.Kind == KindUnauthenticated {
		// without a credential there is no session to end, e.g. a failed login
		if creds.Token == "" {
			rejected := classify(http.StatusBadRequest, envelope.Message)
			rejected.Status = resp.StatusCode
			return rejected
		}
		c.terminate(ctx, creds.VisitorID)
	}

	return apiErr
}

// terminate is detached from ctx cancellation.
func (c *Client) terminate(ctx context.Context, visitorID string) {
	if c.terminator == nil || visitorID == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := c.terminator.Terminate(ctx, visitorID); err != nil {
		c.log.Warnf("Failed to terminate session: %+v", err)
		return
	}
	metrics.ForcedLogouts.Inc()
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return string(apiErr.Kind)
	}
	return "error"
}

// Path joins escaped segments onto a resource path, e.g. Path("patients", id, "verify").
func Path(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return fmt.Sprintf("/%s", strings.Join(escaped, "/"))
}
