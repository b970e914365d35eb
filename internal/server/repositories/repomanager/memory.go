package repomanager

import (
	"context"

	"github.com/slugmart/slugmart/internal/server/repositories/accounts"
	"github.com/slugmart/slugmart/internal/server/repositories/listings"
	"github.com/slugmart/slugmart/internal/server/repositories/messages"
	"github.com/slugmart/slugmart/internal/server/repositories/orders"
)

// InMemoryRepositoryManager backs development mode and tests. Data lives
// for the lifetime of the process.
type InMemoryRepositoryManager struct {
	accounts *accounts.MemoryRepository
	listings *listings.MemoryRepository
	messages *messages.MemoryRepository
	orders   *orders.MemoryRepository
}

func NewInMemoryRepositoryManager(cryptSecret string) *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		accounts: accounts.NewMemoryRepository(cryptSecret),
		listings: listings.NewMemoryRepository(),
		messages: messages.NewMemoryRepository(),
		orders:   orders.NewMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error { return nil }
func (m *InMemoryRepositoryManager) Ping(ctx context.Context) error { return nil }
func (m *InMemoryRepositoryManager) Accounts() accounts.Repository { return m.accounts }
func (m *InMemoryRepositoryManager) Listings() listings.Repository { return m.listings }
func (m *InMemoryRepositoryManager) Messages() messages.Repository { return m.messages }
func (m *InMemoryRepositoryManager) Orders() orders.Repository { return m.orders }
func (m *InMemoryRepositoryManager) Close() error { return nil }
