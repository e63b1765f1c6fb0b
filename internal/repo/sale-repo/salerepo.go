package salerepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/mrzero/lootstock/internal/domain"
	"github.com/mrzero/lootstock/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const saleColumns = "id, drop_id, sale_price, fee_percent, fee_amount, net_amount, sale_date, platform, created_at"

func scanSale(row pgx.Row) (*domain.Sale, error) {
	var s domain.Sale
	err := row.Scan(&s.ID, &s.DropID, &s.SalePrice, &s.FeePercent, &s.FeeAmount, &s.NetAmount,
		&s.SaleDate, &s.Platform, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Get(ctx context.Context, id int) (*domain.Sale, error) {
	query := `
        SELECT ` + saleColumns + `
        FROM sales
        WHERE id = $1
    `
	sale, err := scanSale(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get sale", zap.Error(err))
		return nil, err
	}
	return sale, nil
}

func (r *Repository) GetByDropID(ctx context.Context, dropID int) (*domain.Sale, error) {
	query := `
        SELECT ` + saleColumns + `
        FROM sales
        WHERE drop_id = $1
    `
	sale, err := scanSale(r.db.QueryRow(ctx, query, dropID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get sale by drop id", zap.Error(err))
		return nil, err
	}
	return sale, nil
}

func (r *Repository) Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	query := `
        INSERT INTO sales (drop_id, sale_price, fee_percent, fee_amount, net_amount, sale_date, platform)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		sale.DropID, sale.SalePrice, sale.FeePercent, sale.FeeAmount, sale.NetAmount, sale.SaleDate, sale.Platform,
	).Scan(&sale.ID, &sale.CreatedAt)
	if err != nil {
		zap.L().Error("can't save sale", zap.Error(err))
		return nil, err
	}
	return sale, nil
}

func (r *Repository) Update(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	query := `
        UPDATE sales
        SET sale_price = $1, fee_percent = $2, fee_amount = $3, net_amount = $4, sale_date = $5, platform = $6
        WHERE id = $7
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			sale.SalePrice, sale.FeePercent, sale.FeeAmount, sale.NetAmount, sale.SaleDate, sale.Platform, sale.ID,
		)
		if err != nil {
			zap.L().Error("can't update sale", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete sale", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) DeleteByDropID(ctx context.Context, dropID int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM sales WHERE drop_id = $1`, dropID)
	if err != nil {
		zap.L().Error("can't delete sale by drop id", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// GetStats aggregates over the current sales and drops rows on every call.
func (r *Repository) GetStats(ctx context.Context) (*domain.SaleStats, error) {
	query := `
        SELECT COALESCE(SUM(net_amount), 0),
               (SELECT COUNT(*) FROM drops)
        FROM sales
    `
	var stats domain.SaleStats
	err := r.db.QueryRow(ctx, query).Scan(&stats.TotalNet, &stats.TotalDrops)
	if err != nil {
		zap.L().Error("can't get sale stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}
