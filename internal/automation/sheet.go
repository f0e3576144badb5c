package automation

import (
	"context"
	"errors"
)

var ErrNoActiveSheet = errors.New("no active spreadsheet")

// SheetSource resolves the spreadsheet the trigger acts on.
type SheetSource interface {
	ActiveSheetID(ctx context.Context) (string, error)
}

// StaticSheet is a SheetSource bound to a fixed id.
type StaticSheet string

func (s StaticSheet) ActiveSheetID(context.Context) (string, error) {
	if s == "" {
		return "", ErrNoActiveSheet
	}
	return string(s), nil
}
