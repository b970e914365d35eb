package listings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/slugmart/slugmart/internal/common"
	"github.com/slugmart/slugmart/internal/dbx"
	"github.com/slugmart/slugmart/internal/server/models"
)

const (
	selectListing = `SELECT id, owner_id, data->>'brand', data->>'name', data->>'description', data->'imageUrls' FROM listing`
	searchFilter  = ` WHERE (data->>'brand') ILIKE $1 OR (data->>'name') ILIKE $1 OR (data->>'description') ILIKE $1`
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	l, err := scanListing(r.db.QueryRowContext(ctx, selectListing+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || dbx.IsInvalidInput(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return l, nil
}

func (r *PostgresRepository) List(ctx context.Context, page models.Page) (*models.PaginatedListings, error) {
	page = page.Normalize()

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM listing`).Scan(&total); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	items, err := r.query(ctx, selectListing+` ORDER BY id LIMIT $1 OFFSET $2`, page.Size, page.Offset())
	if err != nil {
		return nil, err
	}
	return &models.PaginatedListings{Listings: items, TotalCount: total}, nil
}

func (r *PostgresRepository) Search(ctx context.Context, term string, page models.Page) (*models.PaginatedListings, error) {
	page = page.Normalize()
	pattern := "%" + escapeLike(term) + "%"

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM listing`+searchFilter, pattern).Scan(&total); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	items, err := r.query(ctx, selectListing+searchFilter+` ORDER BY id LIMIT $2 OFFSET $3`, pattern, page.Size, page.Offset())
	if err != nil {
		return nil, err
	}
	return &models.PaginatedListings{Listings: items, TotalCount: total}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, info models.NewListing) (*models.Listing, error) {
	query :=
		`INSERT INTO listing (owner_id, data)
		 VALUES ($1::uuid, jsonb_build_object(
		     'brand', $2::text,
		     'name', $3::text,
		     'description', $4::text,
		     'imageUrls', $5::jsonb
		 ))
		 RETURNING id
		 `

	urls := info.ImageURLs
	if urls == nil {
		urls = []string{}
	}
	urlsJSON, err := json.Marshal(urls)
	if err != nil {
		return nil, err
	}

	l := &models.Listing{
		OwnerID:     info.OwnerID,
		Brand:       info.Brand,
		Name:        info.Name,
		Description: info.Description,
		ImageURLs:   urls,
	}
	err = r.db.QueryRowContext(ctx, query, info.OwnerID, info.Brand, info.Name, info.Description, string(urlsJSON)).Scan(&l.ID)
	if err != nil {
		if dbx.IsInvalidInput(err) {
			return nil, common.ErrInvalidInput
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return l, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.exec(ctx, `DELETE FROM listing WHERE id = $1`, id)
}

func (r *PostgresRepository) UpdateImages(ctx context.Context, id string, imageURLs []string) (bool, error) {
	if imageURLs == nil {
		imageURLs = []string{}
	}
	b, err := json.Marshal(imageURLs)
	if err != nil {
		return false, err
	}
	return r.exec(ctx, `UPDATE listing SET data = jsonb_set(data, '{imageUrls}', $2::jsonb, true) WHERE id = $1`, id, string(b))
}

func (r *PostgresRepository) query(ctx context.Context, query string, args ...any) ([]models.Listing, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Listing{}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *l)
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

func scanListing(s scanner) (*models.Listing, error) {
	var (
		l                        models.Listing
		brand, name, description sql.NullString
		urls                     []byte
	)
	if err := s.Scan(&l.ID, &l.OwnerID, &brand, &name, &description, &urls); err != nil {
		return nil, err
	}
	l.Brand, l.Name, l.Description = brand.String, name.String, description.String
	if len(urls) > 0 {
		if err := json.Unmarshal(urls, &l.ImageURLs); err != nil {
			return nil, fmt.Errorf("decode imageUrls: %w", err)
		}
	}
	if l.ImageURLs == nil {
		l.ImageURLs = []string{}
	}
	return &l, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes term match literally inside an ILIKE pattern.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
