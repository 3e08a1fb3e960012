package service

import (
	"context"
	"testing"
	"time"

	"github.com/callbridgehq/callbridge/internal/callbridge/domain"
	"github.com/callbridgehq/callbridge/internal/callbridge/store"
	"github.com/callbridgehq/callbridge/internal/callbridge/store/drivers/sqlite"
	"github.com/callbridgehq/callbridge/pkg/idx"
	"github.com/callbridgehq/callbridge/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

// Shared fixtures for the service tests.

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newTestSigner(t *testing.T) *jwtx.Signer {
	t.Helper()

	signer, err := jwtx.NewEphemeralSigner("test-issuer")
	require.NoError(t, err)
	return signer
}

func seedRequester(t *testing.T, st store.Store, email string, credits, invitationLimit int) domain.Account {
	t.Helper()

	a := domain.Account{
		ID:                     idx.New().String(),
		Role:                   domain.RoleRequester,
		Email:                  email,
		Name:                   "Test Requester",
		PasswordHash:           "hash",
		CallCredits:            credits,
		MonthlyInvitationLimit: invitationLimit,
	}
	require.NoError(t, st.Accounts().CreateAccount(context.Background(), a))
	return a
}

func seedResponder(t *testing.T, st store.Store, email string) domain.Account {
	t.Helper()

	a := domain.Account{
		ID:           idx.New().String(),
		Role:         domain.RoleResponder,
		Email:        email,
		Name:         "Test Responder",
		PasswordHash: "hash",
	}
	require.NoError(t, st.Accounts().CreateAccount(context.Background(), a))
	return a
}

func seedScheduledCall(t *testing.T, st store.Store, requesterID, responderID string, at time.Time) domain.Call {
	t.Helper()

	c := domain.Call{
		ID:          idx.New().String(),
		RequesterID: requesterID,
		ResponderID: responderID,
		ScheduledAt: at.UTC(),
		Duration:    domain.DefaultCallDuration,
		Status:      domain.CallScheduled,
	}
	require.NoError(t, st.Calls().CreateCall(context.Background(), c))
	return c
}
