package service

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nclabhq/notelab/internal/notelab/domain"
	"github.com/nclabhq/notelab/internal/notelab/store"
	"github.com/nclabhq/notelab/internal/notelab/store/drivers/sqlite"
	"github.com/nclabhq/notelab/pkg/cryptox"
	"github.com/nclabhq/notelab/pkg/idx"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "notelab-service-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper.key"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	return st
}

func strPtr(s string) *string { return &s }

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates account with hashed password", func(t *testing.T) {
		svc := &AuthService{Store: newTestStore(t), AllowEmailRegister: true}

		user, created, err := svc.Register(ctx, RegisterParams{
			Email:       "Alice@Example.COM",
			Password:    "hunter2-hunter2",
			DisplayName: "Alice",
		})
		require.NoError(t, err)
		require.True(t, created)
		require.Equal(t, "alice@example.com", *user.Email)
		require.Equal(t, "Alice", user.Profile.DisplayName)
		require.NotEmpty(t, user.DeleteToken)

		require.NotEqual(t, "hunter2-hunter2", *user.PasswordHash)
		require.NoError(t, cryptox.VerifyPassword("hunter2-hunter2", *user.PasswordHash))
	})

	t.Run("existing email returns existing account unchanged", func(t *testing.T) {
		svc := &AuthService{Store: newTestStore(t), AllowEmailRegister: true}

		first, created, err := svc.Register(ctx, RegisterParams{Email: "bob@example.com", Password: "first-password"})
		require.NoError(t, err)
		require.True(t, created)

		second, created, err := svc.Register(ctx, RegisterParams{Email: "bob@example.com", Password: "other-password"})
		require.NoError(t, err)
		require.False(t, created)
		require.Equal(t, first.ID, second.ID)

		// The original password still works; the second attempt wrote nothing.
		_, err = svc.Authenticate(ctx, "bob@example.com", "first-password")
		require.NoError(t, err)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := &AuthService{Store: newTestStore(t), AllowEmailRegister: true}

		_, _, err := svc.Register(ctx, RegisterParams{Email: "", Password: "pw"})
		require.ErrorIs(t, err, ErrMissingFields)

		_, _, err = svc.Register(ctx, RegisterParams{Email: "x@example.com", Password: ""})
		require.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("invalid email", func(t *testing.T) {
		svc := &AuthService{Store: newTestStore(t), AllowEmailRegister: true}

		_, _, err := svc.Register(ctx, RegisterParams{Email: "not-an-email", Password: "pw"})
		require.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("registration disabled", func(t *testing.T) {
		svc := &AuthService{Store: newTestStore(t), AllowEmailRegister: false}

		_, _, err := svc.Register(ctx, RegisterParams{Email: "x@example.com", Password: "pw"})
		require.ErrorIs(t, err, ErrRegistrationDisabled)
	})
}

func TestAuthService_RegisterKeyGate(t *testing.T) {
	ctx := context.Background()

	svc := &AuthService{
		Store:              newTestStore(t),
		AllowEmailRegister: true,
		RegistrationKey:    "letmein",
	}

	params := RegisterParams{Email: "gated@example.com", Password: "pw-pw-pw"}

	t.Run("absent key", func(t *testing.T) {
		_, _, err := svc.Register(ctx, params)
		require.ErrorIs(t, err, ErrRegisterKeyMissing)
	})

	t.Run("wrong key", func(t *testing.T) {
		p := params
		p.RegKey = "wrong"
		_, _, err := svc.Register(ctx, p)
		require.ErrorIs(t, err, ErrRegisterKeyMismatch)
	})

	t.Run("correct key", func(t *testing.T) {
		p := params
		p.RegKey = "letmein"
		_, created, err := svc.Register(ctx, p)
		require.NoError(t, err)
		require.True(t, created)
	})

	t.Run("no key configured means open registration", func(t *testing.T) {
		open := &AuthService{Store: newTestStore(t), AllowEmailRegister: true}
		_, created, err := open.Register(ctx, RegisterParams{Email: "open@example.com", Password: "pw-pw-pw"})
		require.NoError(t, err)
		require.True(t, created)
	})
}

func TestAuthService_RegisterConcurrent(t *testing.T) {
	ctx := context.Background()
	svc := &AuthService{Store: newTestStore(t), AllowEmailRegister: true}

	const attempts = 8

	var wg sync.WaitGroup
	ids := make([]string, attempts)
	createdFlags := make([]bool, attempts)
	errs := make([]error, attempts)

	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			user, created, err := svc.Register(ctx, RegisterParams{
				Email:    "race@example.com",
				Password: "same-password",
			})
			ids[i], createdFlags[i], errs[i] = user.ID, created, err
		}()
	}
	wg.Wait()

	// Exactly one row exists; every caller resolved to the same account.
	wins := 0
	for i := range attempts {
		require.NoError(t, errs[i])
		require.Equal(t, ids[0], ids[i])
		if createdFlags[i] {
			wins++
		}
	}
	require.Equal(t, 1, wins)
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()
	svc := &AuthService{Store: newTestStore(t), AllowEmailRegister: true}

	_, _, err := svc.Register(ctx, RegisterParams{Email: "carol@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, "carol@example.com", "correct-horse")
		require.NoError(t, err)
		require.Equal(t, "carol@example.com", *user.Email)
	})

	t.Run("email lookup is exact after normalization", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, "  CAROL@example.com ", "correct-horse")
		require.NoError(t, err)
		require.Equal(t, "carol@example.com", *user.Email)
	})

	t.Run("invalid email shape is an input error", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "not-an-email", "whatever")
		require.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "ghost@example.com", "whatever")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "carol@example.com", "wrong-battery")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("single character mutation rejected", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "carol@example.com", "correct-horsf")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("external-only account has no usable password", func(t *testing.T) {
		err := svc.Store.Users().CreateUser(ctx, domain.User{
			ID:          idx.New().String(),
			Email:       strPtr("external@example.com"),
			ExternalID:  strPtr("github:77"),
			DeleteToken: cryptox.MustGenerateToken(cryptox.TokenSize128),
		})
		require.NoError(t, err)

		_, err = svc.Authenticate(ctx, "external@example.com", "anything")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestCheckRegisterKey(t *testing.T) {
	require.NoError(t, checkRegisterKey("", ""))
	require.NoError(t, checkRegisterKey("", "anything"))
	require.NoError(t, checkRegisterKey("key", "key"))
	require.ErrorIs(t, checkRegisterKey("key", ""), ErrRegisterKeyMissing)
	require.ErrorIs(t, checkRegisterKey("key", "nope"), ErrRegisterKeyMismatch)
}
