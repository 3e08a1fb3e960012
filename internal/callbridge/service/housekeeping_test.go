package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/callbridgehq/callbridge/internal/callbridge/domain"
	"github.com/stretchr/testify/require"
)

func TestHousekeepingSweep(t *testing.T) {
	ctx := context.Background()

	st := newTestStore(t)
	req := seedRequester(t, st, "req@example.com", 5, 10)

	inv := &InvitationService{Store: st, Signer: newTestSigner(t), TTL: time.Nanosecond}
	_, _, err := inv.Create(ctx, req.ID, CreateInvitationParams{
		ResponderEmail: "a@x.com",
		ResponderName:  "A",
	})
	require.NoError(t, err)

	inv.TTL = time.Hour
	fresh, _, err := inv.Create(ctx, req.ID, CreateInvitationParams{
		ResponderEmail: "b@x.com",
		ResponderName:  "B",
	})
	require.NoError(t, err)

	hk := &HousekeepingService{
		Store:  st,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	n, err := hk.Sweep(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	// The fresh invitation is untouched.
	got, err := st.Invitations().GetInvitationByID(ctx, fresh.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationPending, got.Status)

	// Second sweep finds nothing.
	n, err = hk.Sweep(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestHousekeepingStartStop(t *testing.T) {
	st := newTestStore(t)

	hk := &HousekeepingService{
		Store:    st,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Interval: 10 * time.Millisecond,
	}

	hk.Start()
	time.Sleep(30 * time.Millisecond)
	hk.Stop()
}
