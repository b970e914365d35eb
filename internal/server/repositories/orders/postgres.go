package orders

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

// data is a jsonb column holding a JSON string; #>> '{}' unwraps it to text.
const selectOrder = `SELECT id, buyer_id, seller_id, item_id, shipping_status, data #>> '{}' FROM orders`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx, selectOrder+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || dbx.IsInvalidInput(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return o, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Order, error) {
	rows, err := r.db.QueryContext(ctx, selectOrder)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, info models.NewOrder) (*models.Order, error) {
	query :=
		`INSERT INTO orders (buyer_id, seller_id, shipping_status, item_id, data)
		 VALUES ($1::uuid, $2::uuid, $3::text, $4::uuid, $5::jsonb)
		 RETURNING id
		 `

	var data any
	if info.Data != nil {
		b, err := json.Marshal(*info.Data)
		if err != nil {
			return nil, err
		}
		data = string(b)
	}

	o := &models.Order{
		BuyerID:        info.BuyerID,
		SellerID:       info.SellerID,
		ItemID:         info.ItemID,
		ShippingStatus: info.ShippingStatus,
		Data:           info.Data,
	}
	err := r.db.QueryRowContext(ctx, query, info.BuyerID, info.SellerID, string(info.ShippingStatus), info.ItemID, data).Scan(&o.ID)
	if err != nil {
		if dbx.IsInvalidInput(err) {
			return nil, common.ErrInvalidInput
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return o, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status models.ShippingStatus) (bool, error) {
	return r.exec(ctx, `UPDATE orders SET shipping_status = $2 WHERE id = $1`, id, string(status))
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
	return n == 1, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(s scanner) (*models.Order, error) {
	var (
		o      models.Order
		status string
		data   sql.NullString
	)
	if err := s.Scan(&o.ID, &o.BuyerID, &o.SellerID, &o.ItemID, &status, &data); err != nil {
		return nil, err
	}
	o.ShippingStatus = models.ShippingStatus(status)
	if data.Valid {
		o.Data = &data.String
	}
	return &o, nil
}
