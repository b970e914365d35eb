package auth

import (
	"fmt"

	"github.com/slugmart/slugmart/internal/common"
)

// VerificationKind tells apart why a token was rejected. It is exposed to
// logs and metrics only; clients see a single generic message.
type VerificationKind string

const (
	KindMalformed        VerificationKind = "malformed"
	KindSignatureInvalid VerificationKind = "signature-invalid"
	KindExpired          VerificationKind = "expired"
)

// VerificationError is returned by TokenCodec.Verify. It matches
// common.ErrInvalidToken for every kind and common.ErrTokenExpired for
// expired tokens.
type VerificationError struct {
	Kind VerificationKind
	Err  error
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("%s: %s", common.ErrInvalidToken, e.Kind)
}

func (e *VerificationError) Unwrap() error {
	return e.Err
}

func (e *VerificationError) Is(target error) bool {
	switch target {
	case common.ErrInvalidToken:
		return true
	case common.ErrTokenExpired:
		return e.Kind == KindExpired
	}
	return false
}
