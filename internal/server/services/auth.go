package services

import (
	"context"
	"errors"
	"strings"

	"github.com/slugmart/slugmart/internal/common"
	"github.com/slugmart/slugmart/internal/logging"
	"github.com/slugmart/slugmart/internal/server/auth"
	"github.com/slugmart/slugmart/internal/server/models"
	"github.com/slugmart/slugmart/internal/server/repositories/accounts"
)

const (
	LoginSuccess            = "success"
	LoginInvalidCredentials = "invalid_credentials"
	LoginError              = "error"
)

// Tokens issues and verifies session tokens; *auth.TokenCodec implements it.
type Tokens interface {
	Issue(accountID string) (string, error)
	Verify(token string) (string, error)
}

// LoginRecorder observes login outcomes.
type LoginRecorder interface {
	RecordLogin(outcome string)
}

// AuthService implements login and check. Neither persists anything: tokens
// are stateless and check never reads the account store.
type AuthService struct {
	accounts accounts.Repository
	tokens   Tokens
	logger   logging.Logger
	recorder LoginRecorder
}

func NewAuthService(accounts accounts.Repository, tokens Tokens, logger logging.Logger, recorder LoginRecorder) *AuthService {
	return &AuthService{accounts: accounts, tokens: tokens, logger: logger.With("module", "auth"), recorder: recorder}
}

// Login lowercases email, verifies the credentials and mints a token. A wrong
// email and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Authenticated, error) {
	email = strings.ToLower(email)

	summary, err := s.accounts.VerifyCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Info(ctx, "login failed", "email", email, "outcome", LoginInvalidCredentials)
			s.record(LoginInvalidCredentials)
			return nil, common.ErrInvalidCredentials
		}
		s.logger.Error(ctx, "login failed", "email", email, "outcome", LoginError, "error", err)
		s.record(LoginError)
		return nil, common.ErrorInternal
	}

	token, err := s.tokens.Issue(summary.ID)
	if err != nil {
		s.logger.Error(ctx, "token issue failed", "email", email, "error", err)
		s.record(LoginError)
		return nil, common.ErrorInternal
	}

	s.logger.Info(ctx, "login succeeded", "email", email, "account_id", summary.ID)
	s.record(LoginSuccess)
	return &models.Authenticated{ID: summary.ID, Name: summary.Name, AccessToken: token}, nil
}

// Check verifies token and returns the account it was issued for.
func (s *AuthService) Check(ctx context.Context, token string) (*models.SessionAccount, error) {
	if token == "" {
		return nil, common.ErrTokenMissing
	}

	id, err := s.tokens.Verify(token)
	if err != nil {
		kind := string(auth.KindMalformed)
		var verr *auth.VerificationError
		if errors.As(err, &verr) {
			kind = string(verr.Kind)
		}
		s.logger.Info(ctx, "token check failed", "kind", kind)
		if !errors.Is(err, common.ErrInvalidToken) {
			return nil, common.ErrInvalidToken
		}
		return nil, err
	}

	return &models.SessionAccount{ID: id}, nil
}

func (s *AuthService) record(outcome string) {
	if s.recorder != nil {
		s.recorder.RecordLogin(outcome)
	}
}
