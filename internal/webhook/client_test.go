package webhook

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/require"

	"github.com/wgomg/ordertrigger/internal/config"
	"github.com/wgomg/ordertrigger/internal/utils"
)

const testURL = "https://hooks.example.com/start-orders"

func newTestClient(t *testing.T) *Client {
	t.Helper()

	cfg := &config.Config{
		App:     config.AppConfig{HttpTimeoutSeconds: 5},
		Webhook: config.WebhookConfig{URL: testURL},
	}
	c, err := NewClient(cfg, utils.NewDiscardLogger())
	require.NoError(t, err)

	httpmock.ActivateNonDefault(c.httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)

	return c
}

func TestNewClient_RequiresURL(t *testing.T) {
	_, err := NewClient(&config.Config{}, utils.NewDiscardLogger())
	require.Error(t, err)
}

func TestClient_Post(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "should_return_ok_response",
			status:     http.StatusOK,
			body:       `{"status":"ok","message":"Processed 5 orders"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ok","message":"Processed 5 orders"}`,
		},
		{
			name:       "should_return_server_error_as_response",
			status:     http.StatusInternalServerError,
			body:       `{"status":"error","message":"bad input"}`,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"status":"error","message":"bad input"}`,
		},
		{
			name:       "should_return_not_found_as_response",
			status:     http.StatusNotFound,
			body:       `not found`,
			wantStatus: http.StatusNotFound,
			wantBody:   `not found`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t)

			var gotBody, gotContentType, gotReqID string
			httpmock.RegisterResponder(http.MethodPost, testURL,
				func(req *http.Request) (*http.Response, error) {
					b, err := io.ReadAll(req.Body)
					if err != nil {
						return nil, err
					}
					gotBody = string(b)
					gotContentType = req.Header.Get("Content-Type")
					gotReqID = req.Header.Get("X-Request-ID")
					return httpmock.NewStringResponse(tt.status, tt.body), nil
				})

			resp, err := c.Post(context.Background(), Payload{Sheet: "sheet-42"}, "req-1")
			require.NoError(t, err)

			require.Equal(t, tt.wantStatus, resp.StatusCode)
			require.Equal(t, tt.wantBody, string(resp.Body))
			require.Equal(t, tt.status >= 200 && tt.status < 300, resp.IsSuccess())

			require.JSONEq(t, `{"sheet":"sheet-42"}`, gotBody)
			require.Equal(t, "application/json", gotContentType)
			require.Equal(t, "req-1", gotReqID)
			require.Equal(t, 1, httpmock.GetTotalCallCount())
		})
	}
}

func TestClient_Post_TransportError(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder(http.MethodPost, testURL,
		httpmock.NewErrorResponder(errors.New("dial tcp: lookup hooks.example.com: no such host")))

	resp, err := c.Post(context.Background(), Payload{Sheet: "sheet-42"}, "")
	require.Error(t, err)
	require.Nil(t, resp)
	require.Contains(t, err.Error(), "no such host")
}

func TestDecodeResult(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	tests := []struct {
		name        string
		body        string
		want        *Result
		wantMissing []string
		wantErr     bool
	}{
		{
			name: "complete",
			body: `{"status":"ok","message":"Processed 5 orders"}`,
			want: &Result{Status: strPtr("ok"), Message: strPtr("Processed 5 orders")},
		},
		{
			name:        "missing_message",
			body:        `{"status":"ok"}`,
			want:        &Result{Status: strPtr("ok")},
			wantMissing: []string{"message"},
		},
		{
			name:        "empty_object",
			body:        `{}`,
			want:        &Result{},
			wantMissing: []string{"status", "message"},
		},
		{
			name: "number_status",
			body: `{"status":200,"message":"Processed 5 orders"}`,
			want: &Result{Status: strPtr("200"), Message: strPtr("Processed 5 orders")},
		},
		{
			name: "object_message",
			body: `{"status":"ok","message":{ "count": 5 }}`,
			want: &Result{Status: strPtr("ok"), Message: strPtr(`{"count":5}`)},
		},
		{
			name: "bool_and_array_fields",
			body: `{"status":true,"message":["a", "b"]}`,
			want: &Result{Status: strPtr("true"), Message: strPtr(`["a","b"]`)},
		},
		{
			name:        "null_status",
			body:        `{"status":null,"message":"done"}`,
			want:        &Result{Message: strPtr("done")},
			wantMissing: []string{"status"},
		},
		{
			name:        "array_body",
			body:        `[1,2]`,
			want:        &Result{},
			wantMissing: []string{"status", "message"},
		},
		{
			name:        "string_body",
			body:        `"accepted"`,
			want:        &Result{},
			wantMissing: []string{"status", "message"},
		},
		{
			name:        "number_body",
			body:        ` 42 `,
			want:        &Result{},
			wantMissing: []string{"status", "message"},
		},
		{name: "html", body: `<html>502 Bad Gateway</html>`, wantErr: true},
		{name: "empty_body", body: ``, wantErr: true},
		{name: "null", body: `null`, wantErr: true},
		{name: "truncated", body: `{"status":"ok"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeResult(&Response{StatusCode: http.StatusOK, Body: []byte(tt.body)})
			if tt.wantErr {
				var decodeErr *DecodeError
				require.ErrorAs(t, err, &decodeErr)
				require.Equal(t, http.StatusOK, decodeErr.StatusCode)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantMissing, got.MissingFields())
		})
	}
}
