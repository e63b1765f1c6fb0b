package bossrepo

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

func (r *Repository) List(ctx context.Context, filter domain.BossFilter) ([]domain.Boss, error) {
	query := `
        SELECT id, name, location, created_at
        FROM bosses
        WHERE 1=1
    `
	args := []any{}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND name ILIKE $%d", len(args))
	}
	query += " ORDER BY name ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list bosses", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bosses []domain.Boss
	for rows.Next() {
		var b domain.Boss
		err := rows.Scan(&b.ID, &b.Name, &b.Location, &b.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan boss row", zap.Error(err))
			return nil, err
		}
		bosses = append(bosses, b)
	}
	return bosses, nil
}

func (r *Repository) Get(ctx context.Context, id int) (*domain.Boss, error) {
	query := `
        SELECT id, name, location, created_at
        FROM bosses
        WHERE id = $1
    `
	var b domain.Boss
	err := r.db.QueryRow(ctx, query, id).Scan(&b.ID, &b.Name, &b.Location, &b.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get boss", zap.Error(err))
		return nil, err
	}
	return &b, nil
}

func (r *Repository) Create(ctx context.Context, boss *domain.Boss) (*domain.Boss, error) {
	query := `
        INSERT INTO bosses (name, location)
        VALUES ($1, $2)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, boss.Name, boss.Location).Scan(&boss.ID, &boss.CreatedAt)
	if err != nil {
		zap.L().Error("can't save boss", zap.Error(err))
		return nil, err
	}
	return boss, nil
}

func (r *Repository) Update(ctx context.Context, boss *domain.Boss) (*domain.Boss, error) {
	query := `
        UPDATE bosses
        SET name = $1, location = $2
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, boss.Name, boss.Location, boss.ID)
	if err != nil {
		zap.L().Error("can't update boss", zap.Error(err))
		return nil, err
	}
	return boss, nil
}

func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM bosses WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete boss", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
