package children

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Store is the durable home of registered children.
type Store interface {
	Create(ctx context.Context, child *Child) error
	CountByUser(ctx context.Context, userID string) (int, error)
	ListByUser(ctx context.Context, userID string) ([]Child, error)
}

// OnboardingFlags caches the has-child answer so the login branch does not hit
// the database every time.
type OnboardingFlags interface {
	MarkRegistered(ctx context.Context, userID string) error
	HasRegistered(ctx context.Context, userID string) (bool, error)
}

// Service coordinates registration and the onboarding-status check.
type Service struct {
	store Store
	flags OnboardingFlags
	log   *zap.SugaredLogger
}

// NewService wires the registration service.
func NewService(store Store, flags OnboardingFlags, log *zap.Logger) *Service {
	return &Service{store: store, flags: flags, log: log.Sugar()}
}

// Register validates the form, stores the child, and marks onboarding
// complete. A cache failure after a successful insert is logged but not
// surfaced; the database stays the source of truth.
func (s *Service) Register(ctx context.Context, userID, name, birthDate, gender string) (Child, error) {
	child, err := ValidateRegistration(name, birthDate, gender)
	if err != nil {
		return Child{}, err
	}
	child.UserID = userID

	if err := s.store.Create(ctx, &child); err != nil {
		return Child{}, fmt.Errorf("register child: %w", err)
	}

	if err := s.flags.MarkRegistered(ctx, userID); err != nil {
		s.log.Warnw("onboarding flag not cached", "user", userID, "err", err)
	}
	return child, nil
}

// HasChildRegistered answers the login-time onboarding branch. Cache first,
// database as fallback; on any error the answer is false so the user is
// re-onboarded rather than silently let through.
func (s *Service) HasChildRegistered(ctx context.Context, userID string) bool {
	if has, err := s.flags.HasRegistered(ctx, userID); err == nil && has {
		return true
	}

	count, err := s.store.CountByUser(ctx, userID)
	if err != nil {
		s.log.Warnw("onboarding check failed, assuming not onboarded", "user", userID, "err", err)
		return false
	}
	if count > 0 {
		if err := s.flags.MarkRegistered(ctx, userID); err != nil {
			s.log.Warnw("onboarding flag not cached", "user", userID, "err", err)
		}
		return true
	}
	return false
}

// List returns the user's children.
func (s *Service) List(ctx context.Context, userID string) ([]Child, error) {
	kids, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}
	return kids, nil
}
