package messages

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/slugmart/slugmart/internal/common"
	"github.com/slugmart/slugmart/internal/dbx"
	"github.com/slugmart/slugmart/internal/server/models"
)

const selectMessage = `SELECT id, item_owner_id, sender_id, data->>'content' FROM message`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Message, error) {
	m := &models.Message{}
	err := r.db.QueryRowContext(ctx, selectMessage+` WHERE id = $1`, id).
		Scan(&m.ID, &m.ItemOwnerID, &m.SenderID, &m.Content)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || dbx.IsInvalidInput(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) ListByItemOwner(ctx context.Context, itemOwnerID string) ([]models.Message, error) {
	return r.list(ctx, selectMessage+` WHERE item_owner_id = $1`, itemOwnerID)
}

func (r *PostgresRepository) ListBySender(ctx context.Context, senderID string) ([]models.Message, error) {
	return r.list(ctx, selectMessage+` WHERE sender_id = $1`, senderID)
}

func (r *PostgresRepository) Create(ctx context.Context, info models.NewMessage) (*models.Message, error) {
	query :=
		`INSERT INTO message (item_owner_id, sender_id, data)
		 VALUES ($1::uuid, $2::uuid, jsonb_build_object('content', $3::text))
		 RETURNING id
		 `

	m := &models.Message{ItemOwnerID: info.ItemOwnerID, SenderID: info.SenderID, Content: info.Content}
	err := r.db.QueryRowContext(ctx, query, info.ItemOwnerID, info.SenderID, info.Content).Scan(&m.ID)
	if err != nil {
		if dbx.IsInvalidInput(err) {
			return nil, common.ErrInvalidInput
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM message WHERE id = $1`, id)
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

func (r *PostgresRepository) list(ctx context.Context, query string, arg string) ([]models.Message, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		if dbx.IsInvalidInput(err) {
			return []models.Message{}, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Message{}
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.ItemOwnerID, &m.SenderID, &m.Content); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
