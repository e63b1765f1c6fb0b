package itemrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/mrzero/lootstock/internal/domain"
	"github.com/mrzero/lootstock/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) List(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error) {
	query := `
        SELECT id, name, category, sub_type, tradeable, note, created_at
        FROM items
        WHERE 1=1
    `
	args := []any{}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND name ILIKE $%d", len(args))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	query += " ORDER BY name ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var it domain.Item
		err := rows.Scan(&it.ID, &it.Name, &it.Category, &it.SubType, &it.Tradeable, &it.Note, &it.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan item row", zap.Error(err))
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func (r *Repository) Get(ctx context.Context, id int) (*domain.Item, error) {
	query := `
        SELECT id, name, category, sub_type, tradeable, note, created_at
        FROM items
        WHERE id = $1
    `
	var it domain.Item
	err := r.db.QueryRow(ctx, query, id).Scan(&it.ID, &it.Name, &it.Category, &it.SubType, &it.Tradeable, &it.Note, &it.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get item", zap.Error(err))
		return nil, err
	}
	return &it, nil
}

func (r *Repository) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	query := `
        INSERT INTO items (name, category, sub_type, tradeable, note)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, item.Name, item.Category, item.SubType, item.Tradeable, item.Note).
		Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		zap.L().Error("can't save item", zap.Error(err))
		return nil, err
	}
	return item, nil
}

func (r *Repository) Update(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	query := `
        UPDATE items
        SET name = $1, category = $2, sub_type = $3, tradeable = $4, note = $5
        WHERE id = $6
    `
	_, err := r.db.Exec(ctx, query, item.Name, item.Category, item.SubType, item.Tradeable, item.Note, item.ID)
	if err != nil {
		zap.L().Error("can't update item", zap.Error(err))
		return nil, err
	}
	return item, nil
}

func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete item", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
