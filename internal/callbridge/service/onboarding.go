package service

import (
	"context"
	"crypto/subtle"
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

// OnboardingService creates requester accounts. Responders never come
// through here; they only enter the platform by accepting an invitation.
// The endpoint is guarded by a deploy-time bootstrap token so it can't be
// used for open signup.
type OnboardingService struct {
	Store  store.Store
	Signer *jwtx.Signer

	// BootstrapToken guards requester creation. Empty disables onboarding.
	BootstrapToken string

	// DefaultCallCredits and DefaultMonthlyInvitationLimit seed new
	// requester accounts.
	DefaultCallCredits            int
	DefaultMonthlyInvitationLimit int

	// SessionTTL is the lifetime of the session token minted on creation.
	SessionTTL time.Duration
}

func (s *OnboardingService) sessionTTL() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return jwtx.DefaultSessionTTL
}

// OnboardParams is the caller-supplied part of a new requester account.
type OnboardParams struct {
	BootstrapToken string
	Email          string
	Name           string
	Password       string
}

// CreateRequester provisions a requester account with the default credit
// balance and invitation quota, and mints a session token for it.
func (s *OnboardingService) CreateRequester(ctx context.Context, p OnboardParams) (domain.Account, string, error) {
	log := slogx.FromContext(ctx)
	now := time.Now().UTC()

	// 1. Check the bootstrap token in constant time.
	if s.BootstrapToken == "" ||
		subtle.ConstantTimeCompare([]byte(p.BootstrapToken), []byte(s.BootstrapToken)) != 1 {
		log.Warn("onboarding attempted with bad bootstrap token")
		return domain.Account{}, "", fmt.Errorf("onboarding: %w", ErrNotFound)
	}

	// 2. Validate input.
	email := strings.ToLower(strings.TrimSpace(p.Email))
	if email == "" || !strings.Contains(email, "@") {
		return domain.Account{}, "", fmt.Errorf("email is required: %w", ErrValidation)
	}
	if strings.TrimSpace(p.Name) == "" {
		return domain.Account{}, "", fmt.Errorf("name is required: %w", ErrValidation)
	}
	if p.Password == "" {
		return domain.Account{}, "", fmt.Errorf("password is required: %w", ErrValidation)
	}

	// 3. Hash the password.
	passwordHash, err := cryptox.HashPassword(p.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.Account{}, "", err
	}

	account := domain.Account{
		ID:                     idx.New().String(),
		Role:                   domain.RoleRequester,
		Email:                  email,
		Name:                   strings.TrimSpace(p.Name),
		PasswordHash:           passwordHash,
		CallCredits:            s.DefaultCallCredits,
		MonthlyInvitationLimit: s.DefaultMonthlyInvitationLimit,
	}

	// 4. Persist; the unique email index catches duplicates.
	if err := s.Store.Accounts().CreateAccount(ctx, account); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Account{}, "", fmt.Errorf("email already registered: %w", ErrConflict)
		}
		log.Error("failed to create requester", slog.Any("error", err))
		return domain.Account{}, "", err
	}

	// 5. Mint the session token.
	session, err := s.Signer.Sign(jwtx.NewSessionClaims(
		account.ID, string(account.Role), account.Name, account.Email,
		s.Signer.Issuer(), s.sessionTTL(), now,
	))
	if err != nil {
		log.Error("failed to sign session token", slog.Any("error", err))
		return domain.Account{}, "", err
	}

	log.Info("requester onboarded", slog.String("account_id", account.ID))

	return account, session, nil
}
