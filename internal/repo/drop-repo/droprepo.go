package droprepo

import (
	"context"
	"fmt"
	"time"

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

func buildFilter(filter domain.DropFilter) (string, []any) {
	clause := ""
	args := []any{}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		clause += fmt.Sprintf(" AND i.name ILIKE $%d", len(args))
	}
	if filter.DropStatus != "" {
		args = append(args, filter.DropStatus)
		clause += fmt.Sprintf(" AND d.drop_status = $%d", len(args))
	}
	if filter.FinanceStatus != "" {
		args = append(args, filter.FinanceStatus)
		clause += fmt.Sprintf(" AND d.finance_status = $%d", len(args))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		clause += fmt.Sprintf(" AND d.drop_date >= $%d", len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		clause += fmt.Sprintf(" AND d.drop_date <= $%d", len(args))
	}
	clause += " ORDER BY d.created_at DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		clause += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		clause += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	return clause, args
}

func (r *Repository) List(ctx context.Context, filter domain.DropFilter) ([]domain.Drop, error) {
	query := `
        SELECT d.id, d.drop_date, d.item_id, d.boss_id, d.quantity, d.participant_count,
               d.drop_status, d.finance_status, d.note, d.created_at
        FROM drops d
        JOIN items i ON i.id = d.item_id
        WHERE 1=1
    `
	clause, args := buildFilter(filter)
	rows, err := r.db.Query(ctx, query+clause, args...)
	if err != nil {
		zap.L().Error("can't list drops", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var drops []domain.Drop
	for rows.Next() {
		var d domain.Drop
		err := rows.Scan(&d.ID, &d.DropDate, &d.ItemID, &d.BossID, &d.Quantity, &d.ParticipantCount,
			&d.DropStatus, &d.FinanceStatus, &d.Note, &d.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan drop row", zap.Error(err))
			return nil, err
		}
		drops = append(drops, d)
	}
	return drops, nil
}

// ListWithDetails returns drops joined with their item, boss and sale in one
// query. Shares are not fetched here; per-drop share listings go through the
// shares repository.
func (r *Repository) ListWithDetails(ctx context.Context, filter domain.DropFilter) ([]domain.DropDetails, error) {
	query := `
        SELECT d.id, d.drop_date, d.item_id, d.boss_id, d.quantity, d.participant_count,
               d.drop_status, d.finance_status, d.note, d.created_at,
               i.id, i.name, i.category, i.sub_type, i.tradeable, i.note, i.created_at,
               b.id, b.name, b.location, b.created_at,
               s.id, s.drop_id, s.sale_price, s.fee_percent, s.fee_amount, s.net_amount, s.sale_date, s.platform, s.created_at
        FROM drops d
        JOIN items i ON i.id = d.item_id
        LEFT JOIN bosses b ON b.id = d.boss_id
        LEFT JOIN sales s ON s.drop_id = d.id
        WHERE 1=1
    `
	clause, args := buildFilter(filter)
	rows, err := r.db.Query(ctx, query+clause, args...)
	if err != nil {
		zap.L().Error("can't list drops with details", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var details []domain.DropDetails
	for rows.Next() {
		var d domain.DropDetails
		var item domain.Item
		var bossID *int
		var bossName, bossLocation *string
		var bossCreatedAt *time.Time
		var saleID, saleDropID *int
		var salePrice, feePercent, feeAmount, netAmount *float64
		var saleDate, saleCreatedAt *time.Time
		var platform *string

		err := rows.Scan(
			&d.ID, &d.DropDate, &d.ItemID, &d.BossID, &d.Quantity, &d.ParticipantCount,
			&d.DropStatus, &d.FinanceStatus, &d.Note, &d.CreatedAt,
			&item.ID, &item.Name, &item.Category, &item.SubType, &item.Tradeable, &item.Note, &item.CreatedAt,
			&bossID, &bossName, &bossLocation, &bossCreatedAt,
			&saleID, &saleDropID, &salePrice, &feePercent, &feeAmount, &netAmount, &saleDate, &platform, &saleCreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan drop details row", zap.Error(err))
			return nil, err
		}

		d.Item = &item
		if bossID != nil {
			d.Boss = &domain.Boss{ID: *bossID, Name: *bossName, Location: bossLocation, CreatedAt: *bossCreatedAt}
		}
		if saleID != nil {
			d.Sale = &domain.Sale{
				ID:         *saleID,
				DropID:     *saleDropID,
				SalePrice:  *salePrice,
				FeePercent: *feePercent,
				FeeAmount:  *feeAmount,
				NetAmount:  *netAmount,
				SaleDate:   saleDate,
				Platform:   platform,
				CreatedAt:  *saleCreatedAt,
			}
		}
		details = append(details, d)
	}
	return details, nil
}

func (r *Repository) Get(ctx context.Context, id int) (*domain.Drop, error) {
	query := `
        SELECT id, drop_date, item_id, boss_id, quantity, participant_count,
               drop_status, finance_status, note, created_at
        FROM drops
        WHERE id = $1
    `
	var d domain.Drop
	err := r.db.QueryRow(ctx, query, id).Scan(&d.ID, &d.DropDate, &d.ItemID, &d.BossID, &d.Quantity,
		&d.ParticipantCount, &d.DropStatus, &d.FinanceStatus, &d.Note, &d.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get drop", zap.Error(err))
		return nil, err
	}
	return &d, nil
}

func (r *Repository) Create(ctx context.Context, drop *domain.Drop) (*domain.Drop, error) {
	query := `
        INSERT INTO drops (drop_date, item_id, boss_id, quantity, participant_count, drop_status, finance_status, note)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		drop.DropDate, drop.ItemID, drop.BossID, drop.Quantity, drop.ParticipantCount,
		drop.DropStatus, drop.FinanceStatus, drop.Note,
	).Scan(&drop.ID, &drop.CreatedAt)
	if err != nil {
		zap.L().Error("can't save drop", zap.Error(err))
		return nil, err
	}
	return drop, nil
}

func (r *Repository) Update(ctx context.Context, drop *domain.Drop) (*domain.Drop, error) {
	query := `
        UPDATE drops
        SET drop_date = $1, item_id = $2, boss_id = $3, quantity = $4, participant_count = $5,
            drop_status = $6, finance_status = $7, note = $8
        WHERE id = $9
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			drop.DropDate, drop.ItemID, drop.BossID, drop.Quantity, drop.ParticipantCount,
			drop.DropStatus, drop.FinanceStatus, drop.Note, drop.ID,
		)
		if err != nil {
			zap.L().Error("can't update drop", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return drop, nil
}

// CountByFinanceStatus returns how many drops sit in each finance status.
func (r *Repository) CountByFinanceStatus(ctx context.Context) (map[string]int, error) {
	query := `
        SELECT finance_status, COUNT(*)
        FROM drops
        GROUP BY finance_status
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't count drops by finance status", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			zap.L().Error("can't scan finance status count", zap.Error(err))
			return nil, err
		}
		counts[status] = n
	}
	return counts, nil
}

// DeleteCascade removes the drop's shares and sale before the drop row
// itself, all in one transaction. There is no FK cascade in the schema, so
// the ordering here is the only thing preventing orphans.
func (r *Repository) DeleteCascade(ctx context.Context, id int) (bool, error) {
	var deleted bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, `DELETE FROM shares WHERE drop_id = $1`, id); err != nil {
			zap.L().Error("can't delete drop shares", zap.Error(err))
			return err
		}
		if _, err := r.db.Exec(ctx, `DELETE FROM sales WHERE drop_id = $1`, id); err != nil {
			zap.L().Error("can't delete drop sale", zap.Error(err))
			return err
		}
		tag, err := r.db.Exec(ctx, `DELETE FROM drops WHERE id = $1`, id)
		if err != nil {
			zap.L().Error("can't delete drop", zap.Error(err))
			return err
		}
		deleted = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
