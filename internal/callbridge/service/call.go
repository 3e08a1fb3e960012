package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/callbridgehq/callbridge/internal/callbridge/domain"
	"github.com/callbridgehq/callbridge/internal/callbridge/store"
	"github.com/callbridgehq/callbridge/pkg/idx"
	"github.com/callbridgehq/callbridge/pkg/slogx"
)

// CallService schedules calls, drives their status state machine and handles
// cancellation refunds. Scheduling consumes one requester credit; the debit
// and the insert happen in one transaction so a failure on either side leaves
// both untouched.
type CallService struct {
	Store store.Store
}

// ScheduleParams is the caller-supplied part of a new call.
type ScheduleParams struct {
	ResponderID string
	ScheduledAt time.Time
	Duration    int // minutes, 0 = default
	Notes       string
}

// Schedule books a call between the requester and the responder at the given
// instant and debits one credit from the requester. Conflicts are
// exact-timestamp: a party is busy only if they already have a scheduled call
// at precisely that time.
func (s *CallService) Schedule(ctx context.Context, requesterID string, p ScheduleParams) (domain.Call, error) {
	log := slogx.FromContext(ctx)
	now := time.Now().UTC()

	// 1. Validate input.
	if p.ResponderID == "" {
		return domain.Call{}, fmt.Errorf("responder id is required: %w", ErrValidation)
	}
	if !p.ScheduledAt.After(now) {
		return domain.Call{}, fmt.Errorf("scheduled time must be in the future: %w", ErrValidation)
	}
	if p.Duration < 0 {
		return domain.Call{}, fmt.Errorf("duration must be positive: %w", ErrValidation)
	}
	duration := p.Duration
	if duration == 0 {
		duration = domain.DefaultCallDuration
	}

	// 2. Validate the parties: a requester schedules, a responder attends.
	requester, err := s.Store.Accounts().GetAccountByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Call{}, fmt.Errorf("requester %s: %w", requesterID, ErrValidation)
		}
		return domain.Call{}, err
	}
	if requester.Role != domain.RoleRequester {
		return domain.Call{}, fmt.Errorf("only requesters schedule calls: %w", ErrValidation)
	}

	responder, err := s.Store.Accounts().GetAccountByID(ctx, p.ResponderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Call{}, fmt.Errorf("responder %s: %w", p.ResponderID, ErrValidation)
		}
		return domain.Call{}, err
	}
	if responder.Role != domain.RoleResponder {
		return domain.Call{}, fmt.Errorf("account %s is not a responder: %w", p.ResponderID, ErrValidation)
	}

	// 3. Cheap pre-check on credits so the common failure skips the tx. The
	// authoritative check is the conditional debit inside the transaction.
	if requester.CallCredits <= 0 {
		return domain.Call{}, fmt.Errorf("no call credits remaining: %w", ErrQuotaExceeded)
	}

	call := domain.Call{
		ID:          idx.New().String(),
		RequesterID: requesterID,
		ResponderID: p.ResponderID,
		ScheduledAt: p.ScheduledAt.UTC(),
		Duration:    duration,
		Status:      domain.CallScheduled,
		Notes:       p.Notes,
	}

	// 4. Conflict check, insert and debit are one atomic unit. Either the
	// call exists and a credit is gone, or neither happened.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		busy, err := tx.Calls().HasScheduledConflict(ctx, requesterID, p.ResponderID, call.ScheduledAt)
		if err != nil {
			return err
		}
		if busy {
			return fmt.Errorf("slot %s already booked: %w", call.ScheduledAt.Format(time.RFC3339), ErrConflict)
		}
		if err := tx.Calls().CreateCall(ctx, call); err != nil {
			return err
		}
		return tx.Accounts().DebitCredit(ctx, requesterID)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrConflict):
			return domain.Call{}, err
		case errors.Is(err, store.ErrAlreadyExists):
			// Concurrent insert beat us past the conflict check; the partial
			// unique index caught it.
			return domain.Call{}, fmt.Errorf("slot %s already booked: %w", call.ScheduledAt.Format(time.RFC3339), ErrConflict)
		case errors.Is(err, store.ErrInsufficientCredits):
			return domain.Call{}, fmt.Errorf("no call credits remaining: %w", ErrQuotaExceeded)
		}
		log.Error("failed to schedule call", slog.Any("error", err))
		return domain.Call{}, err
	}

	log.Info("call scheduled",
		slog.String("call_id", call.ID),
		slog.String("requester_id", requesterID),
		slog.String("responder_id", p.ResponderID),
		slog.Time("scheduled_at", call.ScheduledAt),
	)

	return call, nil
}

// Get returns a call if the account participates in it. Non-participants
// get not-found, indistinguishable from a missing call.
func (s *CallService) Get(ctx context.Context, callID, accountID string) (domain.Call, error) {
	call, err := s.Store.Calls().GetCallByID(ctx, callID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Call{}, fmt.Errorf("call: %w", ErrNotFound)
		}
		return domain.Call{}, err
	}
	if !call.Participant(accountID) {
		return domain.Call{}, fmt.Errorf("call: %w", ErrNotFound)
	}
	return call, nil
}

// List returns the account's calls, newest first, with the total count for
// pagination.
func (s *CallService) List(ctx context.Context, accountID string, f store.CallListFilter) ([]domain.Call, int, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, 0, fmt.Errorf("unknown status %q: %w", f.Status, ErrValidation)
	}
	if f.Now.IsZero() {
		f.Now = time.Now().UTC()
	}
	return s.Store.Calls().ListCallsForUser(ctx, accountID, f)
}

// ProgressParams carries live-call fields recorded alongside a transition.
type ProgressParams struct {
	ActualStartTime   *time.Time
	ActualEndTime     *time.Time
	ConnectionQuality *domain.ConnectionQuality
}

// UpdateStatus moves a call through its state machine. Only participants may
// transition; anything outside the transition table is a conflict naming
// both states.
func (s *CallService) UpdateStatus(
	ctx context.Context,
	callID, accountID string,
	to domain.CallStatus,
	p ProgressParams,
) (domain.Call, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate the target status and optional progress fields.
	if !to.Valid() {
		return domain.Call{}, fmt.Errorf("unknown status %q: %w", to, ErrValidation)
	}
	if p.ConnectionQuality != nil && !p.ConnectionQuality.Valid() {
		return domain.Call{}, fmt.Errorf("unknown connection quality %q: %w", *p.ConnectionQuality, ErrValidation)
	}

	// 2. Load and gate on participation.
	call, err := s.Store.Calls().GetCallByID(ctx, callID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Call{}, fmt.Errorf("call: %w", ErrNotFound)
		}
		return domain.Call{}, err
	}
	if !call.Participant(accountID) {
		return domain.Call{}, fmt.Errorf("call: %w", ErrNotFound)
	}

	// 3. Check the transition table.
	if !domain.CanTransition(call.Status, to) {
		return domain.Call{}, fmt.Errorf("cannot transition call from %s to %s: %w", call.Status, to, ErrConflict)
	}

	// 4. Apply, guarded by the from-status so a lost race changes nothing.
	upd := store.CallProgressUpdate{
		ActualStartTime:   p.ActualStartTime,
		ActualEndTime:     p.ActualEndTime,
		ConnectionQuality: p.ConnectionQuality,
	}
	if err := s.Store.Calls().TransitionStatus(ctx, callID, call.Status, to, upd); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Call{}, fmt.Errorf("cannot transition call from %s to %s: %w", call.Status, to, ErrConflict)
		}
		log.Error("failed to transition call", slog.Any("error", err))
		return domain.Call{}, err
	}

	log.Info("call status updated",
		slog.String("call_id", callID),
		slog.String("from", string(call.Status)),
		slog.String("to", string(to)),
	)

	return s.Store.Calls().GetCallByID(ctx, callID)
}

// Cancel cancels a scheduled call. The requester's credit comes back only
// when the cancellation lands at least the notice window before the slot;
// the cancel and the refund commit together.
func (s *CallService) Cancel(ctx context.Context, callID, accountID string) (refunded bool, err error) {
	log := slogx.FromContext(ctx)
	now := time.Now().UTC()

	call, err := s.Store.Calls().GetCallByID(ctx, callID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, fmt.Errorf("call: %w", ErrNotFound)
		}
		return false, err
	}
	if !call.Participant(accountID) {
		return false, fmt.Errorf("call: %w", ErrNotFound)
	}
	if call.Status != domain.CallScheduled {
		return false, fmt.Errorf("cannot cancel call in status %s: %w", call.Status, ErrConflict)
	}

	refunded = call.ScheduledAt.Sub(now) >= domain.RefundNoticeWindow

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Calls().TransitionStatus(ctx, callID, domain.CallScheduled, domain.CallCancelled, store.CallProgressUpdate{}); err != nil {
			return err
		}
		if refunded {
			return tx.Accounts().CreditCredit(ctx, call.RequesterID)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, fmt.Errorf("cannot cancel call in status %s: %w", call.Status, ErrConflict)
		}
		log.Error("failed to cancel call", slog.Any("error", err))
		return false, err
	}

	log.Info("call cancelled",
		slog.String("call_id", callID),
		slog.String("account_id", accountID),
		slog.Bool("refunded", refunded),
	)

	return refunded, nil
}

// Stats returns the account's call rollup: tallies, counterparty rating
// average and completion rate.
func (s *CallService) Stats(ctx context.Context, accountID string) (domain.CallStats, error) {
	account, err := s.Store.Accounts().GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.CallStats{}, fmt.Errorf("account: %w", ErrNotFound)
		}
		return domain.CallStats{}, err
	}

	counts, err := s.Store.Calls().CountCallsForUser(ctx, accountID, time.Now().UTC())
	if err != nil {
		return domain.CallStats{}, err
	}

	avg, n, err := s.Store.Calls().AverageCounterpartyRating(ctx, accountID, account.Role)
	if err != nil {
		return domain.CallStats{}, err
	}
	if n == 0 {
		avg = 0
	}

	return domain.CallStats{
		Total:          counts.Total,
		Completed:      counts.Completed,
		Cancelled:      counts.Cancelled,
		NoShow:         counts.NoShow,
		Upcoming:       counts.Upcoming,
		ThisMonth:      counts.ThisMonth,
		AverageRating:  domain.Round1(avg),
		CompletionRate: domain.CompletionRate(counts.Completed, counts.Total),
	}, nil
}
