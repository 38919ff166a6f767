package sqlite

import (
	"context"
	"database/sql"

	"github.com/nclabhq/notelab/internal/notelab/domain"
	"github.com/nclabhq/notelab/internal/notelab/store/drivers/sqlite/gen"
)

type usersRepo struct {
	q *gen.Queries
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row, err := r.q.GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row, err := r.q.GetUserByEmail(ctx, sql.NullString{String: email, Valid: true})
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByExternalID(ctx context.Context, externalID string) (domain.User, error) {
	row, err := r.q.GetUserByExternalID(ctx, sql.NullString{String: externalID, Valid: true})
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	return mapConflict(r.q.CreateUser(ctx, gen.CreateUserParams{
		ID:           u.ID,
		Email:        mapOptionalString(u.Email),
		PasswordHash: mapOptionalString(u.PasswordHash),
		ExternalID:   mapOptionalString(u.ExternalID),
		DisplayName:  u.Profile.DisplayName,
		PhotoUrl:     u.Profile.PhotoURL,
		AccessToken:  mapOptionalString(u.AccessToken),
		RefreshToken: mapOptionalString(u.RefreshToken),
		DeleteToken:  u.DeleteToken,
	}))
}

func (r *usersRepo) UpdateProfile(ctx context.Context, userID string, p domain.Profile) error {
	return r.q.UpdateUserProfile(ctx, gen.UpdateUserProfileParams{
		DisplayName: p.DisplayName,
		PhotoUrl:    p.PhotoURL,
		ID:          userID,
	})
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID string, newHash string) error {
	return r.q.UpdateUserPasswordHash(ctx, gen.UpdateUserPasswordHashParams{
		PasswordHash: sql.NullString{String: newHash, Valid: true},
		ID:           userID,
	})
}

func (r *usersRepo) UpdateExternalTokens(
	ctx context.Context,
	userID string,
	p domain.Profile,
	accessToken, refreshToken *string,
) error {
	return r.q.UpdateUserExternalTokens(ctx, gen.UpdateUserExternalTokensParams{
		DisplayName:  p.DisplayName,
		PhotoUrl:     p.PhotoURL,
		AccessToken:  mapOptionalString(accessToken),
		RefreshToken: mapOptionalString(refreshToken),
		ID:           userID,
	})
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID string) error {
	return r.q.DeleteUser(ctx, userID)
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	count, err := r.q.CountUsers(ctx)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
