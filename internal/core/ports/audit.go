package ports

import (
	"context"

	"github.com/marketgrid/marketplace-api/internal/core/domain"
)

// AuditTrail accepts auth events for asynchronous recording. Record must not
// block the request path; implementations drop events under backpressure.
type AuditTrail interface {
	Record(event domain.AuthEvent)
}

// AuditService persists a single auth event.
type AuditService interface {
	Process(ctx context.Context, event domain.AuthEvent) error
}

// AuditRepository is the storage backend for the audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuthEvent) error
}
