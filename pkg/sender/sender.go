package sender

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/bft-labs/chatpost/pkg/log"
)

// DefaultTimeout bounds a single exchange when no client is supplied.
const DefaultTimeout = 15 * time.Second

// Sender issues single JSON POST requests. It holds no per-call state and
// is safe for concurrent use.
type Sender struct {
	client HTTPClient
	logger log.Logger
}

// Option configures a Sender.
type Option func(*Sender)

// WithHTTPClient sets the transport used for requests.
func WithHTTPClient(client HTTPClient) Option {
	return func(s *Sender) {
		s.client = client
	}
}

// WithTimeout replaces the transport with an *http.Client using timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Sender) {
		s.client = &http.Client{Timeout: timeout}
	}
}

// WithLogger sets the logger for request tracing.
func WithLogger(logger log.Logger) Option {
	return func(s *Sender) {
		s.logger = logger
	}
}

// New creates a Sender. Without options it uses an *http.Client with
// DefaultTimeout and discards logs.
func New(opts ...Option) *Sender {
	s := &Sender{
		client: &http.Client{Timeout: DefaultTimeout},
		logger: log.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send serializes payload as JSON, POSTs it to endpoint and returns the
// parsed reply. Any failure, including a non-2xx status or a body that is
// not JSON, is returned as a *SendError.
func (s *Sender) Send(ctx context.Context, endpoint string, payload any) (*Response, error) {
	if err := checkURL(endpoint); err != nil {
		return nil, &SendError{Op: OpRequest, URL: endpoint, Err: err}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &SendError{Op: OpEncode, URL: endpoint, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &SendError{Op: OpRequest, URL: endpoint, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	id := uuid.NewString()
	s.logger.Debug("sending request",
		log.String("send_id", id),
		log.String("url", endpoint),
		log.Int("request_size", len(body)))

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &SendError{Op: OpTransport, URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &SendError{Op: OpRead, URL: endpoint, StatusCode: resp.StatusCode, Err: err}
	}

	s.logger.Debug("received response",
		log.String("send_id", id),
		log.Int("status_code", resp.StatusCode),
		log.Int("response_size", len(respBody)),
		log.Duration("elapsed", time.Since(start)))

	if resp.StatusCode/100 != 2 {
		return nil, &SendError{
			Op:         OpStatus,
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			Body:       respBody,
			Err:        fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode),
		}
	}

	if len(bytes.TrimSpace(respBody)) == 0 {
		return &Response{StatusCode: resp.StatusCode}, nil
	}
	if !json.Valid(respBody) {
		return nil, &SendError{
			Op:         OpDecode,
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			Body:       respBody,
			Err:        errors.New("response is not valid JSON"),
		}
	}

	return &Response{StatusCode: resp.StatusCode, Body: json.RawMessage(respBody)}, nil
}

// Send posts payload to endpoint with a default Sender.
func Send(ctx context.Context, endpoint string, payload any) (*Response, error) {
	return New().Send(ctx, endpoint, payload)
}

func checkURL(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}
