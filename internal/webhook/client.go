package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/wgomg/ordertrigger/internal/config"
	"github.com/wgomg/ordertrigger/internal/utils"
	"github.com/wgomg/ordertrigger/internal/utils/httputils"
)

const DefaultUserAgent = "ordertrigger/1.0"

var errNullBody = errors.New("response body is null")

type Client struct {
	url        string
	httpClient *http.Client
	logger     *utils.Logger
}

func NewClient(cfg *config.Config, logger *utils.Logger) (*Client, error) {
	if cfg.Webhook.URL == "" {
		return nil, fmt.Errorf("WEBHOOK_URL is required")
	}

	return &Client{
		url: cfg.Webhook.URL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.App.HttpTimeoutSeconds) * time.Second,
		},
		logger: logger,
	}, nil
}

// Post sends payload to the webhook. It fails only when the request cannot be
// built, sent, or its body read; every HTTP status comes back as a Response.
func (c *Client) Post(ctx context.Context, payload Payload, reqID string) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", DefaultUserAgent)
	if reqID != "" {
		req.Header.Set("X-Request-ID", reqID)
	}

	c.logger.Debug(&reqID, "Posting %s to %s", string(body), c.url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call webhook: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	httputils.LogResponseBody(respBody, resp.StatusCode, c.logger, reqID)

	return &Response{
		Status:     resp.Status,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}

// DecodeResult parses the response body regardless of its status code. No
// schema is enforced: string fields are taken as-is, other values keep their
// JSON text, and a body that is valid JSON but not an object has no fields.
func DecodeResult(resp *Response) (*Result, error) {
	body := bytes.TrimSpace(resp.Body)
	if bytes.Equal(body, []byte("null")) {
		return nil, &DecodeError{StatusCode: resp.StatusCode, Err: errNullBody}
	}

	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &DecodeError{StatusCode: resp.StatusCode, Err: err}
	}

	if raw[0] != '{' {
		return &Result{}, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, &DecodeError{StatusCode: resp.StatusCode, Err: err}
	}

	return &Result{
		Status:  fieldText(fields["status"]),
		Message: fieldText(fields["message"]),
	}, nil
}

// fieldText renders one result field. Absent and null fields are nil.
func fieldText(raw json.RawMessage) *string {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return &s
		}
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		text := string(raw)
		return &text
	}
	text := buf.String()
	return &text
}
