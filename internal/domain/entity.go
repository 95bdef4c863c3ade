package domain

import "fmt"

// Entity is implemented by every record mirrored from a backend collection.
type Entity interface {
	EntityID() int64
	Validate() error
}

func invalid(kind string, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidPayload, kind, fmt.Sprintf(format, args...))
}

func requirePositiveID(kind string, field string, id int64) error {
	if id <= 0 {
		return invalid(kind, "%s must be positive, got %d", field, id)
	}

	return nil
}
