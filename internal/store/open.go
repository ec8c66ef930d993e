package store

import (
	"context"
	"fmt"

	"github.com/i474232898/weather-suggestions/internal/weather"
)

// Backend names accepted by Open.
const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Open builds the snapshot store for the configured backend.
// The returned close func is always safe to call.
func Open(ctx context.Context, backend, dir, dsn string) (weather.SnapshotStore, func(), error) {
	switch backend {
	case BackendFile, "":
		return NewFileStore(dir), func() {}, nil
	case BackendMemory:
		return NewMemoryStore(), func() {}, nil
	case BackendPostgres:
		pg, err := NewPostgresStore(ctx, dsn)
		if err != nil {
			return nil, func() {}, err
		}
		return pg, pg.Close, nil
	default:
		return nil, func() {}, fmt.Errorf("unknown snapshot store backend %q", backend)
	}
}
