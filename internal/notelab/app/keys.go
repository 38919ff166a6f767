package app

import (
	"fmt"
	"log/slog"

	"github.com/nclabhq/notelab/pkg/cryptox"
	"github.com/nclabhq/notelab/pkg/idx"
	"github.com/nclabhq/notelab/pkg/jwtx"
)

// initSessionKeys generates an ephemeral Ed25519 session signing key.
// Keys exist only in memory; a restart invalidates outstanding sessions,
// which is acceptable for session tokens that clients can re-mint by
// logging in again.
func initSessionKeys(logger *slog.Logger) (jwtx.Signer, *jwtx.KeySet, error) {
	pemKey, err := cryptox.GenerateEd25519Key()
	if err != nil {
		return nil, nil, fmt.Errorf("generate session key: %w", err)
	}

	kid := idx.New().String()
	signer, err := jwtx.NewSignerEdDSA(kid, pemKey)
	if err != nil {
		return nil, nil, fmt.Errorf("create session signer: %w", err)
	}

	keys := jwtx.NewKeySet()
	if err := keys.AddSigner(signer); err != nil {
		return nil, nil, fmt.Errorf("register session key: %w", err)
	}

	logger.Info("session signing key generated", "kid", kid, "alg", signer.Alg())
	return signer, keys, nil
}
