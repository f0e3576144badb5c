package automation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wgomg/ordertrigger/internal/ui"
	"github.com/wgomg/ordertrigger/internal/utils"
	"github.com/wgomg/ordertrigger/internal/webhook"
)

const (
	resultPrefix = "Automation Result: "
	errorPrefix  = "Error calling automation: "

	// missingPlaceholder stands in for a field the webhook did not send.
	missingPlaceholder = "undefined"
)

// Poster sends the trigger payload to the order automation webhook.
type Poster interface {
	Post(ctx context.Context, payload webhook.Payload, reqID string) (*webhook.Response, error)
}

// Outcome records what one invocation showed the user.
type Outcome struct {
	RequestID     string
	Text          string
	StatusCode    int
	MissingFields []string
	Err           error
	AlertErr      error
}

func (o Outcome) Failed() bool {
	return o.Err != nil
}

type Invoker struct {
	client   Poster
	sheets   SheetSource
	notifier ui.Notifier
	logger   *utils.Logger
}

func NewInvoker(client Poster, sheets SheetSource, notifier ui.Notifier, logger *utils.Logger) *Invoker {
	return &Invoker{
		client:   client,
		sheets:   sheets,
		notifier: notifier,
		logger:   logger,
	}
}

// Trigger posts the active sheet id to the webhook and shows the result, or
// the error, in a single alert.
func (i *Invoker) Trigger(ctx context.Context) Outcome {
	reqID := uuid.NewString()
	outcome := Outcome{RequestID: reqID}

	result, statusCode, err := i.call(ctx, reqID)
	outcome.StatusCode = statusCode
	if err != nil {
		i.logger.Error(&reqID, "Automation call failed: %v", err)
		outcome.Err = err
		outcome.Text = FormatError(err)
	} else {
		outcome.MissingFields = result.MissingFields()
		if len(outcome.MissingFields) > 0 {
			i.logger.Warn(&reqID, "Webhook response is missing fields: %v", outcome.MissingFields)
		}
		outcome.Text = FormatResult(result)
	}

	if err := i.notifier.Alert(ctx, outcome.Text); err != nil {
		i.logger.Error(&reqID, "Failed to show alert: %v", err)
		outcome.AlertErr = err
	}
	return outcome
}

// Run adapts Trigger to a menu action.
func (i *Invoker) Run(ctx context.Context) error {
	return i.Trigger(ctx).AlertErr
}

func (i *Invoker) call(ctx context.Context, reqID string) (*webhook.Result, int, error) {
	sheetID, err := i.sheets.ActiveSheetID(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to resolve active sheet: %w", err)
	}

	i.logger.Info(&reqID, "Triggering order automation for sheet %s", sheetID)
	resp, err := i.client.Post(ctx, webhook.Payload{Sheet: sheetID}, reqID)
	if err != nil {
		return nil, 0, err
	}

	if !resp.IsSuccess() {
		i.logger.Warn(&reqID, "Webhook answered %s, reading body as a result", resp.Status)
	}

	result, err := webhook.DecodeResult(resp)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	i.logger.Debug(&reqID, "Webhook result decoded, status code %d, content type %q",
		resp.StatusCode, resp.Header.Get("Content-Type"))
	return result, resp.StatusCode, nil
}

func FormatResult(r *webhook.Result) string {
	return resultPrefix + orPlaceholder(r.Status) + "\n" + orPlaceholder(r.Message)
}

func FormatError(err error) string {
	return errorPrefix + err.Error()
}

func orPlaceholder(s *string) string {
	if s == nil {
		return missingPlaceholder
	}
	return *s
}
