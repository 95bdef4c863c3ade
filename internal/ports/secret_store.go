package ports

import "context"

// SecretStore keeps opaque credentials, keyed by "provider://path" references.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
