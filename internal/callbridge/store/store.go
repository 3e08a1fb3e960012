package store

import (
	"context"
	"errors"
	"time"

	"github.com/callbridgehq/callbridge/internal/callbridge/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrInsufficientCredits is returned by Accounts().DebitCredit when the
	// conditional decrement matched no row, i.e. the balance was already 0.
	ErrInsufficientCredits = errors.New("store: insufficient credits")
)

// Store is the root data access interface. Concrete drivers implement this.
// Sub-repositories keep concerns tidy and testable, and make it obvious when
// a call site is (or is not) inside a transaction.
type Store interface {
	Accounts() Accounts
	Invitations() Invitations
	Calls() Calls

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Prefer this
	// over Tx for multi-step operations that must be atomic (scheduling a
	// call debits a credit and inserts the call in one unit).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Accounts interface {
	// GetAccountByID returns an account by id.
	GetAccountByID(ctx context.Context, id string) (domain.Account, error)

	// GetAccountByEmail returns an account by email (unique across roles).
	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)

	// CreateAccount inserts a new account (id is provided by app via ULID).
	CreateAccount(ctx context.Context, a domain.Account) error

	// DebitCredit atomically decrements call_credits by 1, guarded by
	// call_credits > 0. Returns ErrInsufficientCredits when no row changed
	// so the balance can never go negative, even under concurrent schedules.
	DebitCredit(ctx context.Context, accountID string) error

	// CreditCredit increments call_credits by 1 (refund path only).
	CreditCredit(ctx context.Context, accountID string) error

	// CountAccountsByRole returns account totals per role.
	CountAccountsByRole(ctx context.Context) (map[domain.AccountRole]int, error)
}

type Invitations interface {
	// CreateInvitation writes a new invitation (token_fingerprint is the
	// SHA-256 of the opaque token; the raw token is never stored).
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	// GetInvitationByID returns an invitation by id.
	GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error)

	// GetInvitationByFingerprint returns an invitation regardless of status
	// or expiry. Expiry is enforced by the caller at the point of use.
	GetInvitationByFingerprint(ctx context.Context, fp string) (domain.Invitation, error)

	// FindActiveInvitation returns a pending, unexpired invitation by
	// fingerprint. Active-only filtering is explicit here rather than
	// hidden inside the generic getters.
	FindActiveInvitation(ctx context.Context, fp string, now time.Time) (domain.Invitation, error)

	// HasPendingInvitation reports whether the requester already has a
	// pending invitation out for this email.
	HasPendingInvitation(ctx context.Context, requesterID, email string) (bool, error)

	// CountIssuedBetween counts non-rejected invitations a requester issued
	// in [from, to). Used for the monthly quota.
	CountIssuedBetween(ctx context.Context, requesterID string, from, to time.Time) (int, error)

	// ListInvitationsByRequester returns the requester's invitations,
	// newest first, optionally filtered by status (empty = all).
	ListInvitationsByRequester(ctx context.Context, requesterID string, status domain.InvitationStatus) ([]domain.Invitation, error)

	// MarkAccepted/MarkRejected/MarkExpired/MarkCancelled flip a pending
	// invitation into a terminal status. Each is guarded by status='pending'
	// and returns ErrNotFound when the invitation is missing or no longer
	// pending, so a token can never be consumed twice.
	MarkAccepted(ctx context.Context, id string, at time.Time) error
	MarkRejected(ctx context.Context, id string, at time.Time) error
	MarkExpired(ctx context.Context, id string) error
	MarkCancelled(ctx context.Context, id string) error

	// ExpireOverdue flips every pending invitation whose expires_at has
	// passed to expired. Housekeeping; returns the number flipped.
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)

	// CountByStatus returns per-status totals for one requester, or for the
	// whole platform when requesterID is empty.
	CountByStatus(ctx context.Context, requesterID string) (map[domain.InvitationStatus]int, error)
}

// CallListFilter narrows and pages ListCallsForUser.
type CallListFilter struct {
	Status   domain.CallStatus // empty = all
	Upcoming bool              // scheduled_at > Now AND status = scheduled
	Now      time.Time
	Page     int // 1-based
	Limit    int
}

// CallCounts is the raw per-user tally used to build domain.CallStats.
type CallCounts struct {
	Total     int
	Completed int
	Cancelled int
	NoShow    int
	Upcoming  int
	ThisMonth int
}

// RequesterFeedbackUpdate carries the requester-writable feedback fields.
// Nil fields are left unchanged.
type RequesterFeedbackUpdate struct {
	Rating       *int
	Feedback     *string
	Outcome      *domain.CallOutcome
	FollowUpDate *time.Time
	DealValue    *float64
}

// ResponderFeedbackUpdate carries the responder-writable feedback fields.
type ResponderFeedbackUpdate struct {
	Rating   *int
	Feedback *string
}

// CallProgressUpdate carries the live-call fields set alongside a status
// transition. Nil fields are left unchanged.
type CallProgressUpdate struct {
	ActualStartTime   *time.Time
	ActualEndTime     *time.Time
	ConnectionQuality *domain.ConnectionQuality
}

type Calls interface {
	// CreateCall inserts a new call. A duplicate scheduled slot for the same
	// requester/responder pair surfaces as ErrAlreadyExists (unique index).
	CreateCall(ctx context.Context, c domain.Call) error

	// GetCallByID returns a call by id.
	GetCallByID(ctx context.Context, id string) (domain.Call, error)

	// HasScheduledConflict reports whether either party already has a call
	// in status scheduled at exactly the given instant. Exact-timestamp
	// check, not interval overlap.
	HasScheduledConflict(ctx context.Context, requesterID, responderID string, at time.Time) (bool, error)

	// ListCallsForUser returns the account's calls sorted by scheduled_at
	// descending, plus the total matching count for pagination.
	ListCallsForUser(ctx context.Context, accountID string, f CallListFilter) ([]domain.Call, int, error)

	// TransitionStatus moves a call from one status to another, guarded by
	// status=from. Returns ErrNotFound when no row changed, leaving the
	// record untouched on a lost race.
	TransitionStatus(ctx context.Context, id string, from, to domain.CallStatus, upd CallProgressUpdate) error

	// UpdateRequesterFeedback / UpdateResponderFeedback apply partial
	// feedback writes; nil fields keep their stored values.
	UpdateRequesterFeedback(ctx context.Context, id string, upd RequesterFeedbackUpdate) error
	UpdateResponderFeedback(ctx context.Context, id string, upd ResponderFeedbackUpdate) error

	// CountCallsForUser tallies the account's calls for stats. Upcoming and
	// ThisMonth are measured against now (UTC calendar month).
	CountCallsForUser(ctx context.Context, accountID string, now time.Time) (CallCounts, error)

	// AverageCounterpartyRating returns the mean rating left by the other
	// side on the account's completed calls and how many ratings exist.
	AverageCounterpartyRating(ctx context.Context, accountID string, role domain.AccountRole) (float64, int, error)

	// CountByStatus returns platform-wide per-status call totals.
	CountByStatus(ctx context.Context) (map[domain.CallStatus]int, error)

	// CountRatings returns the total number of ratings submitted across all
	// calls (requester and responder sides counted separately).
	CountRatings(ctx context.Context) (int, error)
}
