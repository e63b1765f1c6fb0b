package sharerepo

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

const shareColumns = "id, drop_id, player_id, share_type, percent, amount, paid_status, remark, created_at"

func (r *Repository) Get(ctx context.Context, id int) (*domain.Share, error) {
	query := `
        SELECT ` + shareColumns + `
        FROM shares
        WHERE id = $1
    `
	var s domain.Share
	err := r.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.DropID, &s.PlayerID, &s.ShareType,
		&s.Percent, &s.Amount, &s.PaidStatus, &s.Remark, &s.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get share", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

func (r *Repository) ListByDropID(ctx context.Context, dropID int) ([]domain.ShareWithPlayer, error) {
	query := `
        SELECT s.id, s.drop_id, s.player_id, s.share_type, s.percent, s.amount, s.paid_status, s.remark, s.created_at,
               p.name
        FROM shares s
        JOIN players p ON p.id = s.player_id
        WHERE s.drop_id = $1
        ORDER BY s.created_at ASC
    `
	rows, err := r.db.Query(ctx, query, dropID)
	if err != nil {
		zap.L().Error("can't list shares by drop id", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var shares []domain.ShareWithPlayer
	for rows.Next() {
		var s domain.ShareWithPlayer
		err := rows.Scan(&s.ID, &s.DropID, &s.PlayerID, &s.ShareType, &s.Percent, &s.Amount,
			&s.PaidStatus, &s.Remark, &s.CreatedAt, &s.PlayerName)
		if err != nil {
			zap.L().Error("can't scan share row", zap.Error(err))
			return nil, err
		}
		shares = append(shares, s)
	}
	return shares, nil
}

func (r *Repository) Create(ctx context.Context, share *domain.Share) (*domain.Share, error) {
	query := `
        INSERT INTO shares (drop_id, player_id, share_type, percent, amount, paid_status, remark)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		share.DropID, share.PlayerID, share.ShareType, share.Percent, share.Amount, share.PaidStatus, share.Remark,
	).Scan(&share.ID, &share.CreatedAt)
	if err != nil {
		zap.L().Error("can't save share", zap.Error(err))
		return nil, err
	}
	return share, nil
}

func (r *Repository) Update(ctx context.Context, share *domain.Share) (*domain.Share, error) {
	query := `
        UPDATE shares
        SET player_id = $1, share_type = $2, percent = $3, amount = $4, paid_status = $5, remark = $6
        WHERE id = $7
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			share.PlayerID, share.ShareType, share.Percent, share.Amount, share.PaidStatus, share.Remark, share.ID,
		)
		if err != nil {
			zap.L().Error("can't update share", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return share, nil
}

func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM shares WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete share", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) DeleteByDropID(ctx context.Context, dropID int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM shares WHERE drop_id = $1`, dropID)
	if err != nil {
		zap.L().Error("can't delete shares by drop id", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ReplaceForDrop deletes every share of the drop and inserts the given set,
// as one transaction. Equal split relies on the full-replace semantics: a
// racing single-share create must not interleave with the delete+insert.
func (r *Repository) ReplaceForDrop(ctx context.Context, dropID int, shares []domain.Share) ([]domain.Share, error) {
	insert := `
        INSERT INTO shares (drop_id, player_id, share_type, percent, amount, paid_status, remark)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, `DELETE FROM shares WHERE drop_id = $1`, dropID); err != nil {
			zap.L().Error("can't delete shares for replace", zap.Error(err))
			return err
		}
		for i := range shares {
			s := &shares[i]
			err := r.db.QueryRow(ctx, insert,
				s.DropID, s.PlayerID, s.ShareType, s.Percent, s.Amount, s.PaidStatus, s.Remark,
			).Scan(&s.ID, &s.CreatedAt)
			if err != nil {
				zap.L().Error("can't insert replacement share", zap.Error(err))
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return shares, nil
}

// SumAmountByDropID is recomputed from the current rows on every call; the
// reconciliation figure is never cached.
func (r *Repository) SumAmountByDropID(ctx context.Context, dropID int) (float64, error) {
	var sum float64
	err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM shares WHERE drop_id = $1`, dropID).Scan(&sum)
	if err != nil {
		zap.L().Error("can't sum share amounts", zap.Error(err))
		return 0, err
	}
	return sum, nil
}

// GetStats aggregates the shares ledger, scoped to one player when playerID
// is non-nil, global otherwise.
func (r *Repository) GetStats(ctx context.Context, playerID *int) (*domain.ShareStats, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0),
               COALESCE(SUM(amount) FILTER (WHERE paid_status = 'WAIT'), 0),
               COALESCE(SUM(amount) FILTER (WHERE paid_status = 'PAID'), 0)
        FROM shares
    `
	args := []any{}
	if playerID != nil {
		query += " WHERE player_id = $1"
		args = append(args, *playerID)
	}

	var stats domain.ShareStats
	err := r.db.QueryRow(ctx, query, args...).Scan(&stats.TotalAmount, &stats.UnpaidAmount, &stats.PaidAmount)
	if err != nil {
		zap.L().Error("can't get share stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}
