package application

import (
	"context"
	"sync"

	"github.com/bnema/portal-cli/internal/domain"
	"github.com/bnema/portal-cli/internal/ports"
)

type SheetSyncStore struct {
	rows *Store[domain.SheetRow]
	api  ports.SheetAPI

	mu   sync.RWMutex
	last *domain.SyncResult
}

func NewSheetSyncStore(api ports.SheetAPI) *SheetSyncStore {
	return &SheetSyncStore{rows: NewStore[domain.SheetRow](), api: api}
}

func (s *SheetSyncStore) Snapshot() Collection[domain.SheetRow] {
	return s.rows.Snapshot()
}

func (s *SheetSyncStore) FetchRows(ctx context.Context, sheet string) ([]domain.SheetRow, error) {
	return s.rows.Fetch(ctx, func(ctx context.Context) ([]domain.SheetRow, error) {
		return s.api.Rows(ctx, sheet)
	})
}

func (s *SheetSyncStore) Sync(ctx context.Context, resource string) (domain.SyncResult, error) {
	result, err := s.api.Sync(ctx, resource)
	if err != nil {
		return domain.SyncResult{}, err
	}

	s.record(result)
	return result, nil
}

func (s *SheetSyncStore) Status(ctx context.Context) (domain.SyncResult, error) {
	result, err := s.api.Status(ctx)
	if err != nil {
		return domain.SyncResult{}, err
	}

	s.record(result)
	return result, nil
}

func (s *SheetSyncStore) LastResult() (domain.SyncResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.last == nil {
		return domain.SyncResult{}, false
	}
	return *s.last, true
}

func (s *SheetSyncStore) record(result domain.SyncResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last = &result
}
