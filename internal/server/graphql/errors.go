package graphql

import (
	"errors"

	"github.com/slugmart/slugmart/internal/common"
)

// clientErrors keep their message when returned to the client. Token
// failures are folded into ErrTokenMissing's text below.
var clientErrors = []error{
	common.ErrInvalidCredentials,
	common.ErrAccountNotFound,
	common.ErrDuplicateEmail,
	common.ErrListingNotFound,
	common.ErrMessageNotFound,
	common.ErrOrderNotFound,
	common.ErrInvalidFolder,
	common.ErrUnsupportedContent,
	common.ErrInvalidInput,
	common.ErrInvalidStatus,
}

// presentError maps err to what a client may see: a known sentinel, the
// generic "not authenticated" for any token problem, or "internal error".
func presentError(err error) error {
	if errors.Is(err, common.ErrTokenMissing) || errors.Is(err, common.ErrInvalidToken) {
		return common.ErrTokenMissing
	}
	for _, known := range clientErrors {
		if errors.Is(err, known) {
			return known
		}
	}
	return common.ErrorInternal
}
