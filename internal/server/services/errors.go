package services

import (
	"context"
	"errors"

	"github.com/slugmart/slugmart/internal/common"
	"github.com/slugmart/slugmart/internal/logging"
)

// mapRepoError translates a repository error for the caller. NotFound becomes
// notFound; sentinels clients may see pass through; anything else is logged
// and replaced with common.ErrorInternal.
func mapRepoError(ctx context.Context, logger logging.Logger, op string, err error, notFound error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return notFound
	case errors.Is(err, common.ErrDuplicateEmail), errors.Is(err, common.ErrInvalidInput):
		return err
	default:
		logger.Error(ctx, op+" failed", "error", err)
		return common.ErrorInternal
	}
}
