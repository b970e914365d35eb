// Package repomanager vends the repositories for one storage backend and
// owns its lifecycle (migrations, readiness, close).
package repomanager

import (
	"context"

	"github.com/slugmart/slugmart/internal/server/repositories/accounts"
	"github.com/slugmart/slugmart/internal/server/repositories/listings"
	"github.com/slugmart/slugmart/internal/server/repositories/messages"
	"github.com/slugmart/slugmart/internal/server/repositories/orders"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Ping(ctx context.Context) error
	Accounts() accounts.Repository
	Listings() listings.Repository
	Messages() messages.Repository
	Orders() orders.Repository
	Close() error
}
