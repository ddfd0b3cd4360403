package genai

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/quizsmith/backend/internal/models"
)

// ProbeHealth is a boolean oracle for "is the service process up". Any HTTP
// response, including 4xx/5xx, counts as reachable; only transport-level
// failure (timeout, refused connection, DNS) counts as not. Never errors.
func (c *Client) ProbeHealth(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return true
}

// ProbeBase is the coarse online/offline read against the bare base URL,
// separate from the generation-readiness check and bound by a tighter
// deadline. Used only for status display.
func (c *Client) ProbeBase(ctx context.Context) models.ServiceHealth {
	ctx, cancel := context.WithTimeout(ctx, livenessProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return models.ServiceHealth{Detail: "invalid model service URL"}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return models.ServiceHealth{Detail: "model service is not responding"}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return models.ServiceHealth{
		Reachable: true,
		Detail:    fmt.Sprintf("model service responded with HTTP %d", resp.StatusCode),
	}
}
