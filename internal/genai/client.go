package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/quizsmith/backend/internal/models"
)

const (
	healthProbeTimeout   = 10 * time.Second
	livenessProbeTimeout = 5 * time.Second
	generateTimeout      = 60 * time.Second // model inference is slow

	excerptLimit = 100
)

// Client issues HTTP calls to the model service. The base URL is resolved
// once at construction and read-only afterwards.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		// Per-call deadlines come from the request context, not a
		// client-wide timeout.
		http: &http.Client{},
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

type generatePayload struct {
	Data models.GenerationRequest `json:"data"`
}

// Execute POSTs the generation request and returns the raw response items
// untouched; validating individual items is the normalizer's job. Failures
// come back as a classified *Error. No retries.
func (c *Client) Execute(ctx context.Context, req models.GenerationRequest) ([]json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	body, err := json.Marshal(generatePayload{Data: req})
	if err != nil {
		return nil, fmt.Errorf("encode generation request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate-and-refine", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build generation request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, classifyTransport(ctx, err)
	}
	defer resp.Body.Close()

	respBody, readErr := io.ReadAll(resp.Body)

	// Non-2xx first: the excerpt is best effort, so a partially read error
	// body still yields a usable ServiceError.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, serviceError(resp.StatusCode, respBody)
	}
	if readErr != nil {
		return nil, classifyTransport(ctx, readErr)
	}

	ct := resp.Header.Get("Content-Type")
	if ct == "" || !strings.Contains(ct, "application/json") {
		return nil, &Error{Kind: KindMalformedResponse, Message: "non-JSON response from service"}
	}

	if !gjson.ValidBytes(respBody) {
		return nil, &Error{Kind: KindMalformedResponse, Message: "non-JSON response from service"}
	}
	if !gjson.ParseBytes(respBody).IsArray() {
		return nil, &Error{Kind: KindMalformedResponse, Message: "expected array, got other shape"}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(respBody, &items); err != nil {
		return nil, &Error{Kind: KindMalformedResponse, Message: "expected array, got other shape"}
	}

	return items, nil
}

// classifyTransport maps a low-level transport failure to the user-facing
// taxonomy. The raw error string is deliberately not surfaced.
func classifyTransport(ctx context.Context, err error) *Error {
	if ctx.Err() != nil {
		return &Error{
			Kind:    KindTimeout,
			Message: "request timed out; the model may be slow or overloaded",
		}
	}
	return &Error{
		Kind: KindNetworkUnreachable,
		Message: "could not reach the model service; check your internet connection, " +
			"make sure the server is running, and confirm no firewall is blocking it",
	}
}

func serviceError(status int, body []byte) *Error {
	var msg string
	switch status {
	case http.StatusNotFound:
		msg = "generation endpoint not found on the model service (HTTP 404)"
	case http.StatusInternalServerError:
		msg = "the model service reported a server-side misconfiguration (HTTP 500)"
	default:
		msg = fmt.Sprintf("the model service returned HTTP %d", status)
	}
	return &Error{
		Kind:        KindServiceError,
		Message:     msg,
		Status:      status,
		BodyExcerpt: truncate(string(body), excerptLimit),
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
