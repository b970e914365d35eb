// Package accounts stores marketplace accounts and answers credential checks.
package accounts

import (
	"context"

	"github.com/slugmart/slugmart/internal/server/models"
)

// Repository is implemented by the PostgreSQL and in-memory stores.
//
// Lookups that match nothing return common.ErrorNotFound. Mutations by id or
// email report whether a row was affected.
type Repository interface {
	// VerifyCredentials returns the summary of the single unrestricted account
	// whose email and password match. Zero or several matches are NotFound.
	VerifyCredentials(ctx context.Context, email, password string) (*models.AccountSummary, error)

	Create(ctx context.Context, info models.NewAccount) (*models.Account, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	List(ctx context.Context) ([]models.Account, error)
	ListRestrictedVendors(ctx context.Context) ([]models.Account, error)

	DeleteByID(ctx context.Context, id string) (bool, error)
	DeleteByEmail(ctx context.Context, email string) (bool, error)
	SetRestrictedByID(ctx context.Context, id string, restricted bool) (bool, error)
	SetRestrictedByEmail(ctx context.Context, email string, restricted bool) (bool, error)

	// UpdateProfile merges the supplied fields into the stored profile and
	// returns the result.
	UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) (*models.Profile, error)
}
