package health

import "context"

// IndexChecker checks document index availability.
type IndexChecker interface {
	HealthCheck(ctx context.Context) error
}

// MemoryChecker checks memory pad availability.
type MemoryChecker interface {
	HealthCheck(ctx context.Context) error
}
