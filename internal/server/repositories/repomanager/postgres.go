package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/slugmart/slugmart/internal/server/migrations"
	"github.com/slugmart/slugmart/internal/server/repositories/accounts"
	"github.com/slugmart/slugmart/internal/server/repositories/listings"
	"github.com/slugmart/slugmart/internal/server/repositories/messages"
	"github.com/slugmart/slugmart/internal/server/repositories/orders"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories sharing one pool.
type PostgresRepositoryManager struct {
	db       *sql.DB
	accounts *accounts.PostgresRepository
	listings *listings.PostgresRepository
	messages *messages.PostgresRepository
	orders   *orders.PostgresRepository
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// NewPostgresRepositoryManager opens a pgx-backed pool for dsn. The pool is
// lazy; call Ping or RunMigrations to surface connection errors.
func NewPostgresRepositoryManager(dsn, cryptSecret string) (*PostgresRepositoryManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return newPostgresRepositoryManager(db, cryptSecret), nil
}

func newPostgresRepositoryManager(db *sql.DB, cryptSecret string) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{
		db:       db,
		accounts: accounts.NewPostgresRepository(db, cryptSecret),
		listings: listings.NewPostgresRepository(db),
		messages: messages.NewPostgresRepository(db),
		orders:   orders.NewPostgresRepository(db),
	}
}

// RunMigrations sets up goose with the embedded migrations and applies them.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, m.db, ".")
}

func (m *PostgresRepositoryManager) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}

func (m *PostgresRepositoryManager) Accounts() accounts.Repository { return m.accounts }
func (m *PostgresRepositoryManager) Listings() listings.Repository { return m.listings }
func (m *PostgresRepositoryManager) Messages() messages.Repository { return m.messages }
func (m *PostgresRepositoryManager) Orders() orders.Repository { return m.orders }

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}
