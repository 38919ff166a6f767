package sqlite

import (
	"context"
	"time"

	"github.com/nclabhq/notelab/internal/notelab/domain"
	"github.com/nclabhq/notelab/internal/notelab/store"
	"github.com/nclabhq/notelab/internal/notelab/store/drivers/sqlite/gen"
)

type authStatesRepo struct {
	q *gen.Queries
}

func (r *authStatesRepo) CreateAuthState(ctx context.Context, s domain.AuthState) error {
	return mapConflict(r.q.CreateAuthState(ctx, gen.CreateAuthStateParams{
		ID:          s.ID,
		TokenHash:   s.TokenHash,
		Provider:    s.Provider,
		RegkeyClaim: s.RegKeyClaim,
		ExpiresAt:   s.ExpiresAt,
	}))
}

func (r *authStatesRepo) ConsumeAuthStateByHash(ctx context.Context, tokenHash string) (domain.AuthState, error) {
	// DELETE .. RETURNING makes the consume single-use even without a
	// surrounding transaction.
	row, err := r.q.ConsumeAuthState(ctx, tokenHash)
	if err != nil {
		return domain.AuthState{}, mapNotFound(err)
	}

	state := mapAuthState(row)
	if state.Expired(time.Now().UTC()) {
		return domain.AuthState{}, store.ErrNotFound
	}
	return state, nil
}

func (r *authStatesRepo) DeleteExpiredAuthStates(ctx context.Context) error {
	return r.q.DeleteExpiredAuthStates(ctx, time.Now().UTC())
}
