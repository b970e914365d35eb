package services

import (
	"context"
	"errors"
	"sync"

	"github.com/slugmart/slugmart/internal/server/models"
	"github.com/slugmart/slugmart/internal/server/repositories/accounts"
)

const testCryptSecret = "$2a$06$slugmartslugmartslugma"

type fakeLoginRecorder struct {
	mu       sync.Mutex
	outcomes []string
}

func (f *fakeLoginRecorder) RecordLogin(outcome string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outcomes = append(f.outcomes, outcome)
}

func (f *fakeLoginRecorder) last() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.outcomes) == 0 {
		return ""
	}
	return f.outcomes[len(f.outcomes)-1]
}

// failingAccounts embeds the interface and fails every call it overrides.
type failingAccounts struct {
	accounts.Repository
	err error
}

func (f *failingAccounts) VerifyCredentials(context.Context, string, string) (*models.AccountSummary, error) {
	return nil, f.err
}

func (f *failingAccounts) GetByID(context.Context, string) (*models.Account, error) {
	return nil, f.err
}

func (f *failingAccounts) DeleteByID(context.Context, string) (bool, error) {
	return false, f.err
}

var errBoom = errors.New("boom")

func seedAccount(ctx context.Context, repo accounts.Repository, email, password string, roles ...string) *models.Account {
	acc, err := repo.Create(ctx, models.NewAccount{
		Email:     email,
		Password:  password,
		FirstName: "Molly",
		LastName:  "Member",
		Roles:     roles,
		Username:  "molly",
	})
	if err != nil {
		panic(err)
	}
	return acc
}
