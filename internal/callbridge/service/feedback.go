package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/callbridgehq/callbridge/internal/callbridge/domain"
	"github.com/callbridgehq/callbridge/internal/callbridge/store"
	"github.com/callbridgehq/callbridge/pkg/slogx"
)

// MaxFeedbackLength caps the free-text feedback fields.
const MaxFeedbackLength = 500

// FeedbackService records post-call feedback. Writes are role-gated: the
// requester owns rating, feedback, outcome, follow-up date and deal value;
// the responder owns only their rating and feedback. Submissions are partial
// updates, so the two sides never clobber each other.
type FeedbackService struct {
	Store store.Store
}

// FeedbackParams carries a feedback submission. Nil fields are not written.
type FeedbackParams struct {
	Rating   *int
	Feedback *string

	// Requester-only fields. A responder supplying any of these fails
	// validation rather than having them silently dropped.
	Outcome      *domain.CallOutcome
	FollowUpDate *time.Time
	DealValue    *float64
}

// Submit records feedback on a completed call. Only participants may write,
// and only to the fields their role owns; feedback on a call in any other
// status is rejected.
func (s *FeedbackService) Submit(ctx context.Context, callID, accountID string, p FeedbackParams) (domain.Call, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate the shared fields.
	if p.Rating != nil && (*p.Rating < 1 || *p.Rating > 5) {
		return domain.Call{}, fmt.Errorf("rating must be between 1 and 5: %w", ErrValidation)
	}
	if p.Feedback != nil && len(*p.Feedback) > MaxFeedbackLength {
		return domain.Call{}, fmt.Errorf("feedback exceeds %d characters: %w", MaxFeedbackLength, ErrValidation)
	}
	if p.Outcome != nil && !p.Outcome.Valid() {
		return domain.Call{}, fmt.Errorf("unknown outcome %q: %w", *p.Outcome, ErrValidation)
	}
	if p.DealValue != nil && *p.DealValue < 0 {
		return domain.Call{}, fmt.Errorf("deal value must not be negative: %w", ErrValidation)
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

	// 3. Feedback only lands on completed calls.
	if call.Status != domain.CallCompleted {
		return domain.Call{}, fmt.Errorf("feedback requires a completed call, got %s: %w", call.Status, ErrNotFound)
	}

	// 4. Write the fields the caller's side owns.
	switch accountID {
	case call.RequesterID:
		err = s.Store.Calls().UpdateRequesterFeedback(ctx, callID, store.RequesterFeedbackUpdate{
			Rating:       p.Rating,
			Feedback:     p.Feedback,
			Outcome:      p.Outcome,
			FollowUpDate: p.FollowUpDate,
			DealValue:    p.DealValue,
		})
	case call.ResponderID:
		if p.Outcome != nil || p.FollowUpDate != nil || p.DealValue != nil {
			return domain.Call{}, fmt.Errorf("outcome fields are requester-only: %w", ErrValidation)
		}
		err = s.Store.Calls().UpdateResponderFeedback(ctx, callID, store.ResponderFeedbackUpdate{
			Rating:   p.Rating,
			Feedback: p.Feedback,
		})
	}
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Call{}, fmt.Errorf("call: %w", ErrNotFound)
		}
		log.Error("failed to record feedback", slog.Any("error", err))
		return domain.Call{}, err
	}

	log.Info("feedback recorded",
		slog.String("call_id", callID),
		slog.String("account_id", accountID),
	)

	return s.Store.Calls().GetCallByID(ctx, callID)
}
