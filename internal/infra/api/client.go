// Package api implements the CRM REST API client, the server-of-record
// boundary for the pipeline board.
package api

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
	"github.com/pipeboard/pipeboard/internal/domain"
)

// correlationHeader carries a request-scoped ID the server echoes back
// in its error envelope.
const correlationHeader = "X-Correlation-Id"

// Ensure Client implements domain.OpportunityService.
var _ domain.OpportunityService = (*Client)(nil)

// Client talks to the CRM API over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates a new API client.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// apiError is the server's error envelope.
type apiError struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	Category      string `json:"category"`
	CorrelationID string `json:"correlationId"`
}

// Error implements the error interface.
func (e *apiError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "request failed"
}

// ListStages returns the board's stages in display order.
func (c *Client) ListStages(ctx context.Context) ([]domain.Stage, error) {
	var stages []domain.Stage
	if err := c.get(ctx, "/api/v1/stages", &stages); err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}
	if err := domain.ValidateStages(stages); err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}
	return stages, nil
}

// ListOpportunities returns the authoritative opportunity list.
func (c *Client) ListOpportunities(ctx context.Context) ([]domain.Opportunity, error) {
	var opps []domain.Opportunity
	if err := c.get(ctx, "/api/v1/opportunities", &opps); err != nil {
		return nil, fmt.Errorf("list opportunities: %w", err)
	}
	return opps, nil
}

// moveRequest is the body of a move call. Only stage membership is
// persisted server-side; intra-stage order is display-only.
type moveRequest struct {
	StageID string `json:"stageId"`
}

// MoveOpportunity reassigns an opportunity to the given stage and
// returns the server's normalized view of it.
func (c *Client) MoveOpportunity(ctx context.Context, id, stageID string) (*domain.Opportunity, error) {
	body, err := json.Marshal(moveRequest{StageID: stageID})
	if err != nil {
		return nil, fmt.Errorf("move opportunity: %w", err)
	}

	path := "/api/v1/opportunities/" + url.PathEscape(id) + "/move"
	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("move opportunity: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var moved domain.Opportunity
	if err := c.do(req, &moved); err != nil {
		return nil, fmt.Errorf("move %s to %s: %w", id, stageID, err)
	}
	return &moved, nil
}

// get issues a GET request and decodes the response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// newRequest builds a request with auth and correlation headers.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(correlationHeader, uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

// do executes the request, mapping error envelopes to domain errors.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError maps an error envelope to a typed domain error where the
// category allows it, keeping the server's message for display.
func decodeError(resp *http.Response) error {
	var envelope apiError
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("server returned %s", resp.Status)
	}

	switch envelope.Category {
	case "STAGE_NOT_FOUND":
		return fmt.Errorf("%s: %w", envelope.Message, domain.ErrStageNotFound)
	case "OBJECT_NOT_FOUND":
		return fmt.Errorf("%s: %w", envelope.Message, domain.ErrOpportunityNotFound)
	case "VALIDATION_ERROR":
		return fmt.Errorf("%s: %w", envelope.Message, domain.ErrMoveRejected)
	}
	return &envelope
}

// IsNotFound reports whether the error is a stage or opportunity
// not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrStageNotFound) || errors.Is(err, domain.ErrOpportunityNotFound)
}
