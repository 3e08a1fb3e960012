package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/callbridgehq/callbridge/internal/callbridge/domain"
	"github.com/callbridgehq/callbridge/internal/callbridge/store"
	"github.com/callbridgehq/callbridge/pkg/cryptox"
	"github.com/callbridgehq/callbridge/pkg/idx"
	"github.com/callbridgehq/callbridge/pkg/jwtx"
	"github.com/callbridgehq/callbridge/pkg/slogx"
)

// InvitationService issues, reads and terminates invitation tokens. Tokens
// are single-use: once accepted, rejected, expired or cancelled they never
// return to pending.
type InvitationService struct {
	Store  store.Store
	Signer *jwtx.Signer

	// TTL is the invitation validity window. Defaults to domain.InvitationTTL.
	TTL time.Duration

	// SessionTTL is the lifetime of the session token minted on acceptance.
	SessionTTL time.Duration
}

func (s *InvitationService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return domain.InvitationTTL
}

func (s *InvitationService) sessionTTL() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return jwtx.DefaultSessionTTL
}

// CreateInvitationParams is the caller-supplied part of a new invitation.
type CreateInvitationParams struct {
	ResponderEmail string
	ResponderName  string
	Message        string
}

// Create issues a new invitation from the requester to the responder email.
// Returns the stored invitation plus the raw token; the token is only ever
// available here, subsequent reads expose the fingerprint alone.
func (s *InvitationService) Create(
	ctx context.Context,
	requesterID string,
	p CreateInvitationParams,
) (domain.Invitation, string, error) {
	log := slogx.FromContext(ctx)
	now := time.Now().UTC()

	// 1. Validate input.
	email := strings.ToLower(strings.TrimSpace(p.ResponderEmail))
	if email == "" || !strings.Contains(email, "@") {
		return domain.Invitation{}, "", fmt.Errorf("responder email is required: %w", ErrValidation)
	}
	if strings.TrimSpace(p.ResponderName) == "" {
		return domain.Invitation{}, "", fmt.Errorf("responder name is required: %w", ErrValidation)
	}

	// 2. Validate the issuer is a requester.
	requester, err := s.Store.Accounts().GetAccountByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, "", fmt.Errorf("requester %s: %w", requesterID, ErrValidation)
		}
		log.Error("failed to fetch requester", slog.Any("error", err))
		return domain.Invitation{}, "", err
	}
	if requester.Role != domain.RoleRequester {
		log.Warn("non-requester attempted to issue invitation",
			slog.String("account_id", requesterID),
			slog.String("role", string(requester.Role)),
		)
		return domain.Invitation{}, "", fmt.Errorf("only requesters issue invitations: %w", ErrValidation)
	}

	// 3. The email must not already belong to a responder account.
	existing, err := s.Store.Accounts().GetAccountByEmail(ctx, email)
	if err == nil && existing.Role == domain.RoleResponder {
		return domain.Invitation{}, "", fmt.Errorf("email already registered as responder: %w", ErrConflict)
	}
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check responder email", slog.Any("error", err))
		return domain.Invitation{}, "", err
	}

	// 4. Only one pending invitation per requester/email pair.
	pending, err := s.Store.Invitations().HasPendingInvitation(ctx, requesterID, email)
	if err != nil {
		log.Error("failed to check pending invitations", slog.Any("error", err))
		return domain.Invitation{}, "", err
	}
	if pending {
		return domain.Invitation{}, "", fmt.Errorf("pending invitation already exists for %s: %w", email, ErrConflict)
	}

	// 5. Enforce the monthly quota (non-rejected, current UTC calendar month).
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	issued, err := s.Store.Invitations().CountIssuedBetween(ctx, requesterID, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		log.Error("failed to count monthly invitations", slog.Any("error", err))
		return domain.Invitation{}, "", err
	}
	if issued >= requester.MonthlyInvitationLimit {
		log.Warn("monthly invitation limit reached",
			slog.String("requester_id", requesterID),
			slog.Int("issued", issued),
			slog.Int("limit", requester.MonthlyInvitationLimit),
		)
		return domain.Invitation{}, "", fmt.Errorf("monthly invitation limit reached: %w", ErrQuotaExceeded)
	}

	// 6. Generate the random token and fingerprint it for storage.
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invitation token", slog.Any("error", err))
		return domain.Invitation{}, "", err
	}

	inv := domain.Invitation{
		ID:               idx.New().String(),
		RequesterID:      requesterID,
		ResponderEmail:   email,
		ResponderName:    strings.TrimSpace(p.ResponderName),
		Message:          p.Message,
		TokenFingerprint: cryptox.FingerprintToken(token),
		Status:           domain.InvitationPending,
		IssuedAt:         now,
		ExpiresAt:        now.Add(s.ttl()),
	}

	// 7. Persist.
	if err := s.Store.Invitations().CreateInvitation(ctx, inv); err != nil {
		log.Error("failed to create invitation",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return domain.Invitation{}, "", err
	}

	log.Debug("invitation created",
		slog.String("invitation_id", inv.ID),
		slog.String("requester_id", requesterID),
		slog.Time("expires_at", inv.ExpiresAt),
	)

	// 8. Return the raw token (not the fingerprint) to the creator only.
	return inv, token, nil
}

// GetByToken resolves a raw token to its invitation. Read-only: an expired
// invitation comes back as stored, expiry is only persisted at the point of
// use (accept/reject).
func (s *InvitationService) GetByToken(ctx context.Context, token string) (domain.Invitation, error) {
	inv, err := s.Store.Invitations().GetInvitationByFingerprint(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, fmt.Errorf("invitation: %w", ErrNotFound)
		}
		return domain.Invitation{}, err
	}
	return inv, nil
}

// Registration is the account data supplied by the responder on acceptance.
type Registration struct {
	Name     string
	Password string
}

// Accept consumes a pending invitation: it creates the responder account and
// flips the invitation to accepted, atomically. If the token has lapsed the
// invitation is marked expired — a permanent side effect — and the call
// fails with the expired kind. Returns the new account and a session token
// for the identity layer to convert into a session.
func (s *InvitationService) Accept(
	ctx context.Context,
	token string,
	reg Registration,
) (domain.Account, string, error) {
	log := slogx.FromContext(ctx)
	now := time.Now().UTC()

	// 1. Validate registration input.
	if reg.Password == "" {
		return domain.Account{}, "", fmt.Errorf("password is required: %w", ErrValidation)
	}

	// 2. Fingerprint the token and look the invitation up.
	inv, err := s.Store.Invitations().GetInvitationByFingerprint(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("acceptance attempted with unknown token")
			return domain.Account{}, "", fmt.Errorf("invitation: %w", ErrNotFound)
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return domain.Account{}, "", err
	}

	// 3. Only pending invitations can be consumed.
	if inv.Status != domain.InvitationPending {
		log.Warn("acceptance attempted on non-pending invitation",
			slog.String("invitation_id", inv.ID),
			slog.String("status", string(inv.Status)),
		)
		return domain.Account{}, "", fmt.Errorf("invitation: %w", ErrNotFound)
	}

	// 4. Enforce expiry at the point of use. The expired status sticks even
	// though the call fails.
	if inv.ExpiredAt(now) {
		if err := s.Store.Invitations().MarkExpired(ctx, inv.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
			log.Error("failed to mark invitation expired", slog.Any("error", err))
			return domain.Account{}, "", err
		}
		log.Info("invitation expired on acceptance attempt", slog.String("invitation_id", inv.ID))
		return domain.Account{}, "", fmt.Errorf("invitation token: %w", ErrExpired)
	}

	// 5. The email must still be unregistered.
	if _, err := s.Store.Accounts().GetAccountByEmail(ctx, inv.ResponderEmail); err == nil {
		return domain.Account{}, "", fmt.Errorf("email already registered: %w", ErrConflict)
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check email availability", slog.Any("error", err))
		return domain.Account{}, "", err
	}

	// 6. Hash the password.
	passwordHash, err := cryptox.HashPassword(reg.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.Account{}, "", err
	}

	name := strings.TrimSpace(reg.Name)
	if name == "" {
		name = inv.ResponderName
	}

	// 7. Create the account and consume the invitation atomically.
	account := domain.Account{
		ID:           idx.New().String(),
		Role:         domain.RoleResponder,
		Email:        inv.ResponderEmail,
		Name:         name,
		PasswordHash: passwordHash,
	}
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Accounts().CreateAccount(ctx, account); err != nil {
			return err
		}
		return tx.Invitations().MarkAccepted(ctx, inv.ID, now)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Lost the race: someone consumed the token first.
			return domain.Account{}, "", fmt.Errorf("invitation: %w", ErrNotFound)
		}
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Account{}, "", fmt.Errorf("email already registered: %w", ErrConflict)
		}
		log.Error("failed to accept invitation",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return domain.Account{}, "", err
	}

	// 8. Mint the session artifact. Delivery is the notification layer's job.
	session, err := s.Signer.Sign(jwtx.NewSessionClaims(
		account.ID, string(account.Role), account.Name, account.Email,
		s.Signer.Issuer(), s.sessionTTL(), now,
	))
	if err != nil {
		log.Error("failed to sign session token", slog.Any("error", err))
		return domain.Account{}, "", err
	}

	log.Info("invitation accepted",
		slog.String("invitation_id", inv.ID),
		slog.String("account_id", account.ID),
	)

	return account, session, nil
}

// Reject consumes a pending invitation without creating an account. Expiry
// is enforced here too: rejecting a lapsed token marks it expired instead.
func (s *InvitationService) Reject(ctx context.Context, token string) error {
	log := slogx.FromContext(ctx)
	now := time.Now().UTC()

	inv, err := s.Store.Invitations().GetInvitationByFingerprint(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("invitation: %w", ErrNotFound)
		}
		return err
	}

	if inv.Status != domain.InvitationPending {
		return fmt.Errorf("invitation: %w", ErrNotFound)
	}

	if inv.ExpiredAt(now) {
		if err := s.Store.Invitations().MarkExpired(ctx, inv.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
		return fmt.Errorf("invitation token: %w", ErrExpired)
	}

	if err := s.Store.Invitations().MarkRejected(ctx, inv.ID, now); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("invitation: %w", ErrNotFound)
		}
		return err
	}

	log.Info("invitation rejected", slog.String("invitation_id", inv.ID))
	return nil
}

// Cancel withdraws a pending invitation. Only the issuing requester may
// cancel; anyone else sees not-found, same as a missing record.
func (s *InvitationService) Cancel(ctx context.Context, invitationID, requesterID string) error {
	log := slogx.FromContext(ctx)

	inv, err := s.Store.Invitations().GetInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("invitation: %w", ErrNotFound)
		}
		return err
	}

	if inv.RequesterID != requesterID || inv.Status != domain.InvitationPending {
		return fmt.Errorf("invitation: %w", ErrNotFound)
	}

	if err := s.Store.Invitations().MarkCancelled(ctx, invitationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("invitation: %w", ErrNotFound)
		}
		return err
	}

	log.Info("invitation cancelled",
		slog.String("invitation_id", invitationID),
		slog.String("requester_id", requesterID),
	)
	return nil
}

// List returns the requester's invitations, newest first, optionally
// filtered by status.
func (s *InvitationService) List(ctx context.Context, requesterID string, status domain.InvitationStatus) ([]domain.Invitation, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("unknown status %q: %w", status, ErrValidation)
	}
	return s.Store.Invitations().ListInvitationsByRequester(ctx, requesterID, status)
}

// Stats returns the requester's invitation rollup.
func (s *InvitationService) Stats(ctx context.Context, requesterID string) (domain.InvitationStats, error) {
	now := time.Now().UTC()

	byStatus, err := s.Store.Invitations().CountByStatus(ctx, requesterID)
	if err != nil {
		return domain.InvitationStats{}, err
	}

	total := 0
	for _, n := range byStatus {
		total += n
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthly, err := s.Store.Invitations().CountIssuedBetween(ctx, requesterID, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return domain.InvitationStats{}, err
	}

	return domain.InvitationStats{
		Total:           total,
		ByStatus:        byStatus,
		IssuedThisMonth: monthly,
		AcceptanceRate:  domain.AcceptanceRate(byStatus[domain.InvitationAccepted], total),
	}, nil
}
