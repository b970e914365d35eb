package services

import (
	"context"
	"strings"

	"github.com/slugmart/slugmart/internal/common"
	"github.com/slugmart/slugmart/internal/logging"
	"github.com/slugmart/slugmart/internal/server/auth"
	"github.com/slugmart/slugmart/internal/server/models"
	"github.com/slugmart/slugmart/internal/server/repositories/accounts"
)

type AccountService struct {
	repo   accounts.Repository
	logger logging.Logger
}

func NewAccountService(repo accounts.Repository, logger logging.Logger) *AccountService {
	return &AccountService{repo: repo, logger: logger.With("module", "accounts")}
}

// MakeAccount registers a new account. Vendors start restricted until resumed.
func (s *AccountService) MakeAccount(ctx context.Context, info models.NewAccount) (*models.Account, error) {
	info.Email = strings.ToLower(strings.TrimSpace(info.Email))
	if info.Email == "" || info.Password == "" || info.FirstName == "" || info.LastName == "" || info.Username == "" {
		return nil, common.ErrInvalidInput
	}

	acc, err := s.repo.Create(ctx, info)
	if err != nil {
		return nil, mapRepoError(ctx, s.logger, "make account", err, common.ErrorInternal)
	}
	s.logger.Info(ctx, "account created", "account_id", acc.ID, "restricted", acc.Restricted)
	return acc, nil
}

func (s *AccountService) Account(ctx context.Context, id string) (*models.Account, error) {
	acc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(ctx, s.logger, "get account", err, common.ErrAccountNotFound)
	}
	return acc, nil
}

func (s *AccountService) AccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	acc, err := s.repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, mapRepoError(ctx, s.logger, "get account by email", err, common.ErrAccountNotFound)
	}
	return acc, nil
}

func (s *AccountService) AllAccounts(ctx context.Context) ([]models.Account, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, mapRepoError(ctx, s.logger, "list accounts", err, common.ErrorInternal)
	}
	return list, nil
}

// RestrictedVendors lists vendor accounts waiting to be resumed.
func (s *AccountService) RestrictedVendors(ctx context.Context) ([]models.Account, error) {
	list, err := s.repo.ListRestrictedVendors(ctx)
	if err != nil {
		return nil, mapRepoError(ctx, s.logger, "list restricted vendors", err, common.ErrorInternal)
	}
	return list, nil
}

func (s *AccountService) DeleteAccount(ctx context.Context, id string) (bool, error) {
	return s.mutate(ctx, "delete account", func() (bool, error) { return s.repo.DeleteByID(ctx, id) })
}

func (s *AccountService) DeleteAccountByEmail(ctx context.Context, email string) (bool, error) {
	email = strings.ToLower(email)
	return s.mutate(ctx, "delete account by email", func() (bool, error) { return s.repo.DeleteByEmail(ctx, email) })
}

func (s *AccountService) SuspendAccount(ctx context.Context, id string) (bool, error) {
	return s.mutate(ctx, "suspend account", func() (bool, error) { return s.repo.SetRestrictedByID(ctx, id, true) })
}

func (s *AccountService) SuspendAccountByEmail(ctx context.Context, email string) (bool, error) {
	email = strings.ToLower(email)
	return s.mutate(ctx, "suspend account by email", func() (bool, error) { return s.repo.SetRestrictedByEmail(ctx, email, true) })
}

func (s *AccountService) ResumeAccount(ctx context.Context, id string) (bool, error) {
	return s.mutate(ctx, "resume account", func() (bool, error) { return s.repo.SetRestrictedByID(ctx, id, false) })
}

func (s *AccountService) ResumeAccountByEmail(ctx context.Context, email string) (bool, error) {
	email = strings.ToLower(email)
	return s.mutate(ctx, "resume account by email", func() (bool, error) { return s.repo.SetRestrictedByEmail(ctx, email, false) })
}

// UpdateProfile merges update into the profile of the authenticated caller.
func (s *AccountService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.Profile, error) {
	id, ok := auth.AccountIDFromContext(ctx)
	if !ok {
		return nil, common.ErrTokenMissing
	}
	if update.Username != nil && *update.Username == "" {
		return nil, common.ErrInvalidInput
	}

	p, err := s.repo.UpdateProfile(ctx, id, update)
	if err != nil {
		return nil, mapRepoError(ctx, s.logger, "update profile", err, common.ErrAccountNotFound)
	}
	return p, nil
}

func (s *AccountService) mutate(ctx context.Context, op string, fn func() (bool, error)) (bool, error) {
	ok, err := fn()
	if err != nil {
		return false, mapRepoError(ctx, s.logger, op, err, common.ErrAccountNotFound)
	}
	return ok, nil
}
