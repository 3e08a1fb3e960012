package service

import (
	"context"
	"testing"

	"github.com/callbridgehq/callbridge/internal/callbridge/domain"
	"github.com/stretchr/testify/require"
)

func newOnboardingService(t *testing.T) *OnboardingService {
	t.Helper()

	return &OnboardingService{
		Store:                         newTestStore(t),
		Signer:                        newTestSigner(t),
		BootstrapToken:                "bootstrap-secret",
		DefaultCallCredits:            5,
		DefaultMonthlyInvitationLimit: 10,
	}
}

func TestCreateRequester(t *testing.T) {
	ctx := context.Background()

	t.Run("provisions a requester with defaults and a session", func(t *testing.T) {
		svc := newOnboardingService(t)

		account, session, err := svc.CreateRequester(ctx, OnboardParams{
			BootstrapToken: "bootstrap-secret",
			Email:          "Buyer@Example.com",
			Name:           "Bob Buyer",
			Password:       "hunter2hunter2",
		})
		require.NoError(t, err)
		require.Equal(t, domain.RoleRequester, account.Role)
		require.Equal(t, "buyer@example.com", account.Email) // normalized
		require.Equal(t, 5, account.CallCredits)
		require.Equal(t, 10, account.MonthlyInvitationLimit)
		require.NotEmpty(t, session)

		claims, err := svc.Signer.Verify(session)
		require.NoError(t, err)
		require.Equal(t, account.ID, claims.Subject)
		require.Equal(t, "requester", claims.Role)
	})

	t.Run("rejects a bad bootstrap token", func(t *testing.T) {
		svc := newOnboardingService(t)

		_, _, err := svc.CreateRequester(ctx, OnboardParams{
			BootstrapToken: "wrong",
			Email:          "buyer@example.com",
			Name:           "Bob",
			Password:       "hunter2hunter2",
		})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty configured token disables onboarding entirely", func(t *testing.T) {
		svc := newOnboardingService(t)
		svc.BootstrapToken = ""

		_, _, err := svc.CreateRequester(ctx, OnboardParams{
			BootstrapToken: "",
			Email:          "buyer@example.com",
			Name:           "Bob",
			Password:       "hunter2hunter2",
		})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		svc := newOnboardingService(t)

		p := OnboardParams{
			BootstrapToken: "bootstrap-secret",
			Email:          "buyer@example.com",
			Name:           "Bob",
			Password:       "hunter2hunter2",
		}
		_, _, err := svc.CreateRequester(ctx, p)
		require.NoError(t, err)

		_, _, err = svc.CreateRequester(ctx, p)
		require.ErrorIs(t, err, ErrConflict)
	})

	t.Run("validates input", func(t *testing.T) {
		svc := newOnboardingService(t)

		_, _, err := svc.CreateRequester(ctx, OnboardParams{
			BootstrapToken: "bootstrap-secret",
			Email:          "nope",
			Name:           "Bob",
			Password:       "hunter2hunter2",
		})
		require.ErrorIs(t, err, ErrValidation)

		_, _, err = svc.CreateRequester(ctx, OnboardParams{
			BootstrapToken: "bootstrap-secret",
			Email:          "buyer@example.com",
			Name:           "Bob",
		})
		require.ErrorIs(t, err, ErrValidation)
	})
}
