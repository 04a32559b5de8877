package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/collections-service/internal/domain"
)

// CollectionRepository encapsulates collection persistence.
type CollectionRepository interface {
	Create(ctx context.Context, collection *domain.Collection) error
	Update(ctx context.Context, collection *domain.Collection) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Collection, error)
	ListAll(ctx context.Context, limit, offset int) ([]domain.Collection, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Collection, error)
}

type collectionRepository struct {
	pool *pgxpool.Pool
}

// NewCollectionRepository instantiates repository.
func NewCollectionRepository(pool *pgxpool.Pool) CollectionRepository {
	return &collectionRepository{pool: pool}
}

func (r *collectionRepository) Create(ctx context.Context, collection *domain.Collection) error {
	const query = `
        INSERT INTO collections (user_id, title, description, theme, image_url)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		collection.UserID,
		collection.Title,
		collection.Description,
		collection.Theme,
		collection.ImageURL,
	).Scan(&collection.ID, &collection.CreatedAt, &collection.UpdatedAt)
}

func (r *collectionRepository) Update(ctx context.Context, collection *domain.Collection) error {
	const query = `
        UPDATE collections SET title=$1, description=$2, theme=$3, image_url=$4, updated_at=NOW()
        WHERE id=$5`
	cmd, err := r.pool.Exec(ctx, query,
		collection.Title,
		collection.Description,
		collection.Theme,
		collection.ImageURL,
		collection.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *collectionRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM collections WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *collectionRepository) GetByID(ctx context.Context, id string) (*domain.Collection, error) {
	const query = `
        SELECT id, user_id, title, description, theme, image_url, created_at, updated_at
        FROM collections WHERE id=$1`

	var collection domain.Collection
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&collection.ID,
		&collection.UserID,
		&collection.Title,
		&collection.Description,
		&collection.Theme,
		&collection.ImageURL,
		&collection.CreatedAt,
		&collection.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &collection, nil
}

func (r *collectionRepository) ListAll(ctx context.Context, limit, offset int) ([]domain.Collection, error) {
	const query = `
        SELECT id, user_id, title, description, theme, image_url, created_at, updated_at
        FROM collections ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCollections(rows)
}

func (r *collectionRepository) ListByUser(ctx context.Context, userID string) ([]domain.Collection, error) {
	const query = `
        SELECT id, user_id, title, description, theme, image_url, created_at, updated_at
        FROM collections WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCollections(rows)
}

func scanCollections(rows pgx.Rows) ([]domain.Collection, error) {
	var collections []domain.Collection
	for rows.Next() {
		var collection domain.Collection
		if err := rows.Scan(
			&collection.ID,
			&collection.UserID,
			&collection.Title,
			&collection.Description,
			&collection.Theme,
			&collection.ImageURL,
			&collection.CreatedAt,
			&collection.UpdatedAt,
		); err != nil {
			return nil, err
		}
		collections = append(collections, collection)
	}
	return collections, rows.Err()
}
