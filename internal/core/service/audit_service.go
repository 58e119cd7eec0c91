package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/marketgrid/marketplace-api/internal/core/domain"
	"github.com/marketgrid/marketplace-api/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns the AuditService that persists auth events.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Process persists a single auth event to the audit trail.
func (s *auditService) Process(ctx context.Context, event domain.AuthEvent) error {
	if err := s.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("record auth event: %w", err)
	}
	s.log.Debug().Str("kind", event.Kind).Str("user_id", event.UserID).Msg("auth event recorded")
	return nil
}
