package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"thestream/internal/domain"
)

type callService struct {
	registry domain.CallRegistry
	logger   *slog.Logger
}

// NewCallService creates a CallService on top of the given registry.
func NewCallService(registry domain.CallRegistry, logger *slog.Logger) domain.CallService {
	return &callService{registry: registry, logger: logger}
}

// StartCall records an invitation from the authenticated caller to the target
// user. id and to are stored as given; blank values are rejected before the
// registry is touched.
func (s *callService) StartCall(ctx context.Context, id, from, to string) (*domain.CallInvitation, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: id is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(to) == "" {
		return nil, fmt.Errorf("%w: to is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(from) == "" {
		return nil, fmt.Errorf("%w: caller identity is required", domain.ErrInvalidInput)
	}

	inv := domain.NewCallInvitation(id, from, to)
	if err := s.registry.Start(ctx, inv); err != nil {
		return nil, fmt.Errorf("start call: %w", err)
	}
	s.logger.DebugContext(ctx, "call started", "call_id", id, "from", from, "to", to)
	return inv, nil
}

func (s *callService) IncomingCalls(ctx context.Context, user string) ([]*domain.CallInvitation, error) {
	invs, err := s.registry.ListFor(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("list calls: %w", err)
	}
	if invs == nil {
		invs = []*domain.CallInvitation{}
	}
	return invs, nil
}

func (s *callService) EndCall(ctx context.Context, id string) error {
	if err := s.registry.End(ctx, id); err != nil {
		return fmt.Errorf("end call: %w", err)
	}
	s.logger.DebugContext(ctx, "call ended", "call_id", id)
	return nil
}
