package domain

import (
	"fmt"
	"strconv"
	"time"
)

type CellKind string

const (
	CellEmpty  CellKind = "empty"
	CellText   CellKind = "text"
	CellNumber CellKind = "number"
	CellBool   CellKind = "bool"
)

// SheetCell is a typed spreadsheet cell; only the field matching Kind is meaningful.
type SheetCell struct {
	Kind   CellKind
	Text   string
	Number float64
	Bool   bool
}

func TextCell(v string) SheetCell    { return SheetCell{Kind: CellText, Text: v} }
func NumberCell(v float64) SheetCell { return SheetCell{Kind: CellNumber, Number: v} }
func BoolCell(v bool) SheetCell      { return SheetCell{Kind: CellBool, Bool: v} }

func (c SheetCell) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellBool:
		return strconv.FormatBool(c.Bool)
	default:
		return ""
	}
}

// SheetRow is one spreadsheet row; Index is 1-based and doubles as the row identity.
type SheetRow struct {
	Index int64
	Cells []SheetCell
}

func (r SheetRow) EntityID() int64 { return r.Index }

func (r SheetRow) Validate() error {
	if err := requirePositiveID("sheet row", "index", r.Index); err != nil {
		return err
	}
	for i, cell := range r.Cells {
		switch cell.Kind {
		case CellEmpty, CellText, CellNumber, CellBool:
		default:
			return invalid("sheet row", "cell %d has unknown kind %q", i, cell.Kind)
		}
	}

	return nil
}

type SyncState string

const (
	SyncIdle    SyncState = "IDLE"
	SyncRunning SyncState = "RUNNING"
	SyncFailed  SyncState = "FAILED"
	SyncDone    SyncState = "COMPLETED"
)

type SyncResult struct {
	Resource    string     `json:"resource"`
	State       SyncState  `json:"state"`
	RowsWritten int        `json:"rowsWritten"`
	Message     string     `json:"message,omitempty"`
	SyncedAt    *time.Time `json:"syncedAt,omitempty"`
}

func (r SyncResult) Validate() error {
	switch r.State {
	case SyncIdle, SyncRunning, SyncFailed, SyncDone:
	default:
		return fmt.Errorf("%w: sync result: unknown state %q", ErrInvalidPayload, r.State)
	}
	if r.RowsWritten < 0 {
		return fmt.Errorf("%w: sync result: negative rows written", ErrInvalidPayload)
	}

	return nil
}
