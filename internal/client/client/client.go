package client

import (
	"context"

	"github.com/slugmart/slugmart/internal/client/models"
)

type Client interface {
	Login(ctx context.Context, email, password string) (*models.Authenticated, error)
	Check(ctx context.Context, token string) (*models.SessionAccount, error)
	Accounts(ctx context.Context, token string) ([]models.Account, error)
	GenerateUploadURL(ctx context.Context, token, fileName, contentType, folder string) (*models.UploadURL, error)
}
