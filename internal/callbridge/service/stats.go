package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/callbridgehq/callbridge/internal/callbridge/domain"
	"github.com/callbridgehq/callbridge/internal/callbridge/store"
)

// StatsService produces read-only rollups. It composes the invitation and
// call services rather than re-deriving their aggregates.
type StatsService struct {
	Store       store.Store
	Invitations *InvitationService
	Calls       *CallService
}

// UserStats returns the account's combined rollup. Invitation stats are
// present only for requesters, since responders never issue invitations.
func (s *StatsService) UserStats(ctx context.Context, accountID string) (domain.UserStats, error) {
	account, err := s.Store.Accounts().GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.UserStats{}, fmt.Errorf("account: %w", ErrNotFound)
		}
		return domain.UserStats{}, err
	}

	stats := domain.UserStats{
		AccountID: account.ID,
		Role:      account.Role,
	}

	if account.Role == domain.RoleRequester {
		inv, err := s.Invitations.Stats(ctx, accountID)
		if err != nil {
			return domain.UserStats{}, err
		}
		stats.Invitations = &inv
	}

	calls, err := s.Calls.Stats(ctx, accountID)
	if err != nil {
		return domain.UserStats{}, err
	}
	stats.Calls = calls

	return stats, nil
}

// PlatformStats returns platform-wide totals across accounts, invitations
// and calls.
func (s *StatsService) PlatformStats(ctx context.Context) (domain.PlatformStats, error) {
	accounts, err := s.Store.Accounts().CountAccountsByRole(ctx)
	if err != nil {
		return domain.PlatformStats{}, err
	}

	invitations, err := s.Store.Invitations().CountByStatus(ctx, "")
	if err != nil {
		return domain.PlatformStats{}, err
	}

	calls, err := s.Store.Calls().CountByStatus(ctx)
	if err != nil {
		return domain.PlatformStats{}, err
	}

	ratings, err := s.Store.Calls().CountRatings(ctx)
	if err != nil {
		return domain.PlatformStats{}, err
	}

	return domain.PlatformStats{
		AccountsByRole:      accounts,
		InvitationsByStatus: invitations,
		CallsByStatus:       calls,
		RatingsSubmitted:    ratings,
	}, nil
}
