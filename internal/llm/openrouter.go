package llm

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
)

// Identification headers sent with every upstream call, as required by
// OpenRouter-compatible aggregators for request attribution.
const (
	refererHeader = "https://github.com/modelarena/backend"
	titleHeader   = "Model Arena"
)

// Transport-level sentinel errors. They let callers distinguish a call that
// timed out from one that never reached the upstream at all.
var (
	// ErrTimeout is returned when the upstream did not respond within the
	// configured per-call timeout.
	ErrTimeout = errors.New("upstream request timed out")

	// ErrUnreachable is returned when the request could not be delivered and
	// no response was received.
	ErrUnreachable = errors.New("upstream unreachable")

	// ErrUnexpectedFormat is returned when the upstream answered 200 but the
	// payload lacks the expected reply structure.
	ErrUnexpectedFormat = errors.New("unexpected upstream response format")
)

// StatusError carries an upstream-reported failure: the numeric HTTP status
// and the raw error payload, for the caller to classify.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
}

// Message is the wire shape of a single conversation turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest carries the normalized parameters for exactly one
// upstream chat-completion call.
type CompletionRequest struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// CompletionResponse is the normalized successful result of one call.
// Usage is the upstream's token-accounting record, passed through untouched.
type CompletionResponse struct {
	Message      string
	Usage        json.RawMessage
	FinishReason string
}

// Provider defines the interface for performing a single chat-completion
// call against the upstream service. Implementations make exactly one
// attempt per invocation; retries are the caller's responsibility.
type Provider interface {
	CreateCompletion(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)
}

type openRouterProvider struct {
	client  *http.Client
	url     string
	apiKey  string
	timeout time.Duration
}

// NewOpenRouterProvider returns a Provider speaking the OpenRouter-compatible
// chat-completions protocol. The timeout bounds every individual call.
func NewOpenRouterProvider(url, apiKey string, timeout time.Duration) Provider {
	return &openRouterProvider{
		client:  &http.Client{},
		url:     url,
		apiKey:  apiKey,
		timeout: timeout,
	}
}

type wireRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	Stream      bool      `json:"stream"`
}

type wireResponse struct {
	Choices []struct {
		Message      Message `json:"message"`
		FinishReason string  `json:"finish_reason"`
	} `json:"choices"`
	Usage json.RawMessage `json:"usage"`
}

type wireError struct {
	Error struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

func (p *openRouterProvider) CreateCompletion(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	body, err := json.Marshal(&wireRequest{
		Model:       req.Model,
		Messages:    req.Messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("could not create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	httpReq.Header.Set("HTTP-Referer", refererHeader)
	httpReq.Header.Set("X-Title", titleHeader)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Body:       upstreamErrorMessage(bodyBytes),
		}
	}

	var wire wireResponse
	if err := json.Unmarshal(bodyBytes, &wire); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedFormat, err)
	}
	if len(wire.Choices) == 0 || wire.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("%w: response has no message content", ErrUnexpectedFormat)
	}

	return &CompletionResponse{
		Message:      wire.Choices[0].Message.Content,
		Usage:        wire.Usage,
		FinishReason: wire.Choices[0].FinishReason,
	}, nil
}

// classifyTransportError splits client errors into the timeout and
// unreachable sentinels so the error classifier can map them to 504 and 503.
func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", ErrTimeout, err)
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return fmt.Errorf("%w: %s", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %s", ErrUnreachable, err)
}

// upstreamErrorMessage extracts the message from an upstream error envelope,
// falling back to the raw body when the envelope cannot be parsed.
func upstreamErrorMessage(body []byte) string {
	var envelope wireError
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	return string(body)
}
