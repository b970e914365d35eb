package accounts

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/slugmart/slugmart/internal/common"
	"github.com/slugmart/slugmart/internal/dbx"
	"github.com/slugmart/slugmart/internal/server/models"
)

const selectAccount = `SELECT id, email, restricted, data->'name', data->'roles', data->'profile' FROM account`

type PostgresRepository struct {
	db          *sql.DB
	cryptSecret string
}

// NewPostgresRepository binds the repository to db. cryptSecret is passed to
// crypt() as the salt, always as a bind parameter.
func NewPostgresRepository(db *sql.DB, cryptSecret string) *PostgresRepository {
	return &PostgresRepository{db: db, cryptSecret: cryptSecret}
}

func (r *PostgresRepository) VerifyCredentials(ctx context.Context, email, password string) (*models.AccountSummary, error) {
	query :=
		`SELECT id, data->'name', data->'roles' FROM account
		 WHERE email = $1 AND data->>'password' = crypt($2, $3) AND restricted = FALSE
		 `

	rows, err := r.db.QueryContext(ctx, query, email, password, r.cryptSecret)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var found []models.AccountSummary
	for rows.Next() {
		var (
			s           models.AccountSummary
			name, roles []byte
		)
		if err := rows.Scan(&s.ID, &name, &roles); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if err := decodeJSON(name, &s.Name); err != nil {
			return nil, err
		}
		if err := decodeJSON(roles, &s.Roles); err != nil {
			return nil, err
		}
		found = append(found, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	if len(found) != 1 {
		return nil, common.ErrorNotFound
	}
	if found[0].Roles == nil {
		found[0].Roles = []string{}
	}
	return &found[0], nil
}

func (r *PostgresRepository) Create(ctx context.Context, info models.NewAccount) (*models.Account, error) {
	query :=
		`INSERT INTO account (email, restricted, data)
		 VALUES ($1, $2, jsonb_build_object(
		     'name', jsonb_build_object('first', $3::text, 'last', $4::text),
		     'password', crypt($5::text, $6::text),
		     'roles', $7::jsonb,
		     'profile', jsonb_build_object('username', $8::text, 'bio', $9::text)
		 ))
		 RETURNING id
		 `

	roles := info.Roles
	if roles == nil {
		roles = []string{}
	}
	rolesJSON, err := json.Marshal(roles)
	if err != nil {
		return nil, err
	}

	acc := &models.Account{
		Email:      info.Email,
		Name:       models.Name{First: info.FirstName, Last: info.LastName},
		Roles:      roles,
		Restricted: info.Restricted(),
		Profile:    models.Profile{Username: info.Username, Bio: info.Bio},
	}

	err = r.db.QueryRowContext(ctx, query,
		acc.Email, acc.Restricted, info.FirstName, info.LastName,
		info.Password, r.cryptSecret, string(rolesJSON), info.Username, info.Bio).Scan(&acc.ID)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return acc, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	return r.getOne(ctx, selectAccount+` WHERE id = $1`, id)
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	return r.getOne(ctx, selectAccount+` WHERE email = $1`, email)
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Account, error) {
	return r.list(ctx, selectAccount+` ORDER BY email`)
}

func (r *PostgresRepository) ListRestrictedVendors(ctx context.Context) ([]models.Account, error) {
	return r.list(ctx, selectAccount+` WHERE restricted = TRUE AND data->'roles' @> '["Vendor"]'::jsonb ORDER BY email`)
}

func (r *PostgresRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	return r.exec(ctx, `DELETE FROM account WHERE id = $1`, id)
}

func (r *PostgresRepository) DeleteByEmail(ctx context.Context, email string) (bool, error) {
	return r.exec(ctx, `DELETE FROM account WHERE email = $1`, email)
}

func (r *PostgresRepository) SetRestrictedByID(ctx context.Context, id string, restricted bool) (bool, error) {
	return r.exec(ctx, `UPDATE account SET restricted = $2 WHERE id = $1`, id, restricted)
}

func (r *PostgresRepository) SetRestrictedByEmail(ctx context.Context, email string, restricted bool) (bool, error) {
	return r.exec(ctx, `UPDATE account SET restricted = $2 WHERE email = $1`, email, restricted)
}

// UpdateProfile locks the row, merges and writes back inside one transaction
// so concurrent partial updates do not lose each other's fields.
func (r *PostgresRepository) UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) (*models.Profile, error) {
	var merged models.Profile

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var raw []byte
		err := tx.QueryRowContext(ctx, `SELECT data->'profile' FROM account WHERE id = $1 FOR UPDATE`, id).Scan(&raw)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) || dbx.IsInvalidInput(err) {
				return common.ErrorNotFound
			}
			return fmt.Errorf("db error: %w", err)
		}

		var current models.Profile
		if err := decodeJSON(raw, &current); err != nil {
			return err
		}
		merged = current.Merge(update)

		b, err := json.Marshal(merged)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `UPDATE account SET data = jsonb_set(data, '{profile}', $2::jsonb, true) WHERE id = $1`, id, string(b))
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &merged, nil
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg string) (*models.Account, error) {
	acc, err := scanAccount(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || dbx.IsInvalidInput(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return acc, nil
}

func (r *PostgresRepository) list(ctx context.Context, query string) ([]models.Account, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Account{}
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) exec(ctx context.Context, query string, args ...any) (bool, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if dbx.IsInvalidInput(err) {
			return false, nil
		}
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(s scanner) (*models.Account, error) {
	var (
		acc                  models.Account
		name, roles, profile []byte
	)
	if err := s.Scan(&acc.ID, &acc.Email, &acc.Restricted, &name, &roles, &profile); err != nil {
		return nil, err
	}
	if err := decodeJSON(name, &acc.Name); err != nil {
		return nil, err
	}
	if err := decodeJSON(roles, &acc.Roles); err != nil {
		return nil, err
	}
	if err := decodeJSON(profile, &acc.Profile); err != nil {
		return nil, err
	}
	if acc.Roles == nil {
		acc.Roles = []string{}
	}
	return &acc, nil
}

// decodeJSON leaves v untouched for SQL NULL.
func decodeJSON(raw []byte, v any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode jsonb: %w", err)
	}
	return nil
}
