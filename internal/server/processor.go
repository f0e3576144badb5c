package server

import (
	"context"

	"github.com/wgomg/ordertrigger/internal/utils"
)

// Processor handles a start-orders request for one spreadsheet.
type Processor interface {
	StartOrders(ctx context.Context, sheetID string, reqID string) error
}

// AckProcessor accepts every request without touching order data.
type AckProcessor struct {
	logger *utils.Logger
}

func NewAckProcessor(logger *utils.Logger) *AckProcessor {
	return &AckProcessor{logger: logger}
}

func (p *AckProcessor) StartOrders(_ context.Context, sheetID string, reqID string) error {
	p.logger.Info(&reqID, "Accepted start-orders for sheet %s", sheetID)
	return nil
}
