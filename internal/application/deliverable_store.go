package application

import (
	"context"
	"io"

	"github.com/bnema/portal-cli/internal/domain"
	"github.com/bnema/portal-cli/internal/ports"
)

type DeliverableStore struct {
	store *Store[domain.Deliverable]
	api   ports.DeliverableAPI
}

func NewDeliverableStore(api ports.DeliverableAPI) *DeliverableStore {
	return &DeliverableStore{store: NewStore[domain.Deliverable](), api: api}
}

func (s *DeliverableStore) Snapshot() Collection[domain.Deliverable] {
	return s.store.Snapshot()
}

func (s *DeliverableStore) FetchAll(ctx context.Context) ([]domain.Deliverable, error) {
	return s.store.Fetch(ctx, s.api.List)
}

func (s *DeliverableStore) FetchByProject(ctx context.Context, projectID int64) ([]domain.Deliverable, error) {
	return s.store.Fetch(ctx, func(ctx context.Context) ([]domain.Deliverable, error) {
		return s.api.ListByProject(ctx, projectID)
	})
}

func (s *DeliverableStore) Upload(ctx context.Context, upload domain.DeliverableUpload, file io.Reader) (domain.Deliverable, error) {
	return s.store.Create(ctx, func(ctx context.Context) (domain.Deliverable, error) {
		return s.api.Upload(ctx, upload, file)
	})
}

func (s *DeliverableStore) Approve(ctx context.Context, id int64) (domain.Deliverable, error) {
	return s.store.Update(ctx, id, func(ctx context.Context) (domain.Deliverable, error) {
		return s.api.Approve(ctx, id)
	})
}

func (s *DeliverableStore) Delete(ctx context.Context, id int64) error {
	return s.store.Remove(ctx, id, func(ctx context.Context) error {
		return s.api.Delete(ctx, id)
	})
}
