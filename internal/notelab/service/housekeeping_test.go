package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHousekeepingService_SweepsExpiredStates(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	link := &LinkService{Store: st, StateTTL: time.Millisecond}
	token, err := link.Begin(ctx, "github", "")
	require.NoError(t, err)

	live := &LinkService{Store: st}
	liveToken, err := live.Begin(ctx, "github", "keep-me")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	hk := NewHousekeepingService(st, slog.New(slog.DiscardHandler), time.Hour)
	hk.Start()
	hk.Stop()

	_, err = link.Resume(ctx, "github", token)
	require.ErrorIs(t, err, ErrInvalidState)

	claim, err := live.Resume(ctx, "github", liveToken)
	require.NoError(t, err)
	require.Equal(t, "keep-me", claim)
}
