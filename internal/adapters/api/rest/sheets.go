package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/bnema/portal-cli/internal/domain"
	"github.com/bnema/portal-cli/internal/ports"
	"github.com/tidwall/gjson"
)

type SheetAPI struct {
	requester Requester
}

var _ ports.SheetAPI = (*SheetAPI)(nil)

func NewSheetAPI(requester Requester) *SheetAPI {
	return &SheetAPI{requester: requester}
}

func (a *SheetAPI) Rows(ctx context.Context, sheet string) ([]domain.SheetRow, error) {
	sheet = strings.TrimSpace(sheet)
	if sheet == "" {
		return nil, fmt.Errorf("sheet name is required")
	}

	path := "/sheets/" + segment(sheet) + "/rows"
	var raw json.RawMessage
	if err := a.requester.Do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}

	rows, err := parseSheetRows(raw)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	return rows, nil
}

func (a *SheetAPI) Sync(ctx context.Context, resource string) (domain.SyncResult, error) {
	resource = strings.TrimSpace(resource)
	if resource == "" {
		return domain.SyncResult{}, fmt.Errorf("sync resource is required")
	}

	var result domain.SyncResult
	if err := a.requester.Do(ctx, http.MethodPost, "/sheets/sync/"+segment(resource), nil, &result); err != nil {
		return domain.SyncResult{}, err
	}
	if result.Resource == "" {
		result.Resource = resource
	}
	return result, nil
}

func (a *SheetAPI) Status(ctx context.Context) (domain.SyncResult, error) {
	var result domain.SyncResult
	if err := a.requester.Do(ctx, http.MethodGet, "/sheets/sync/status", nil, &result); err != nil {
		return domain.SyncResult{}, err
	}
	return result, nil
}

// parseSheetRows reads {"rows": [[cell, ...], ...]} (or a bare array of rows) into typed cells.
func parseSheetRows(raw []byte) ([]domain.SheetRow, error) {
	parsed := gjson.ParseBytes(raw)
	if parsed.IsObject() {
		parsed = parsed.Get("rows")
	}
	if !parsed.IsArray() {
		return nil, fmt.Errorf("%w: sheet rows must be an array", domain.ErrInvalidPayload)
	}

	var rows []domain.SheetRow
	var parseErr error
	parsed.ForEach(func(_, row gjson.Result) bool {
		index := int64(len(rows) + 1)
		if !row.IsArray() {
			parseErr = fmt.Errorf("%w: sheet row %d is not an array", domain.ErrInvalidPayload, index)
			return false
		}

		cells := make([]domain.SheetCell, 0)
		row.ForEach(func(_, value gjson.Result) bool {
			cell, err := parseSheetCell(value)
			if err != nil {
				parseErr = fmt.Errorf("sheet row %d: %w", index, err)
				return false
			}
			cells = append(cells, cell)
			return true
		})
		if parseErr != nil {
			return false
		}

		rows = append(rows, domain.SheetRow{Index: index, Cells: cells})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return rows, nil
}

func parseSheetCell(value gjson.Result) (domain.SheetCell, error) {
	switch value.Type {
	case gjson.Null:
		return domain.SheetCell{Kind: domain.CellEmpty}, nil
	case gjson.String:
		if value.Str == "" {
			return domain.SheetCell{Kind: domain.CellEmpty}, nil
		}
		return domain.TextCell(value.Str), nil
	case gjson.Number:
		return domain.NumberCell(value.Num), nil
	case gjson.True, gjson.False:
		return domain.BoolCell(value.Bool()), nil
	default:
		return domain.SheetCell{}, fmt.Errorf("%w: nested values are not valid cells", domain.ErrInvalidPayload)
	}
}
