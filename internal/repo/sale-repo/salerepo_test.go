package salerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mrzero/lootstock/internal/domain"
	"github.com/mrzero/lootstock/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

var saleCols = []string{"id", "drop_id", "sale_price", "fee_percent", "fee_amount", "net_amount", "sale_date", "platform", "created_at"}

func TestRepository_GetByDropID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		dropID    int
		mockSetup func()
		expectErr bool
		result    *domain.Sale
	}{
		{
			name:   "Sale exists",
			dropID: 4,
			mockSetup: func() {
				rows := pgxmock.NewRows(saleCols).
					AddRow(11, 4, 150000.0, 5.0, 7500.0, 142500.0, nil, nil, timeNow)
				mock.ExpectQuery("FROM sales").
					WithArgs(4).
					WillReturnRows(rows)
			},
			result: &domain.Sale{
				ID: 11, DropID: 4,
				SalePrice: 150000, FeePercent: 5, FeeAmount: 7500, NetAmount: 142500,
				CreatedAt: timeNow,
			},
		},
		{
			name:   "No sale for drop",
			dropID: 9,
			mockSetup: func() {
				mock.ExpectQuery("FROM sales").
					WithArgs(9).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:   "Database error",
			dropID: 4,
			mockSetup: func() {
				mock.ExpectQuery("FROM sales").
					WithArgs(4).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByDropID(context.Background(), tt.dropID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	t.Run("Save sale successfully", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(11, timeNow)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO sales")).
			WithArgs(4, 150000.0, 5.0, 7500.0, 142500.0, (*time.Time)(nil), (*string)(nil)).
			WillReturnRows(rows)

		sale := &domain.Sale{DropID: 4, SalePrice: 150000, FeePercent: 5, FeeAmount: 7500, NetAmount: 142500}
		result, err := repo.Create(context.Background(), sale)
		assert.NoError(t, err)
		assert.Equal(t, 11, result.ID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO sales")).
			WithArgs(4, 100.0, 5.0, 5.0, 95.0, (*time.Time)(nil), (*string)(nil)).
			WillReturnError(errors.New("database error"))

		_, err := repo.Create(context.Background(), &domain.Sale{DropID: 4, SalePrice: 100, FeePercent: 5, FeeAmount: 5, NetAmount: 95})
		assert.Error(t, err)
	})
}

func TestRepository_Update(t *testing.T) {
	repo, mock, tx := NewMock(t)

	t.Run("Update sale successfully", func(t *testing.T) {
		tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			mock.ExpectExec(regexp.QuoteMeta("UPDATE sales")).
				WithArgs(2000.0, 5.0, 100.0, 1900.0, (*time.Time)(nil), (*string)(nil), 11).
				WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			return fn(ctx)
		})

		sale := &domain.Sale{ID: 11, SalePrice: 2000, FeePercent: 5, FeeAmount: 100, NetAmount: 1900}
		_, err := repo.Update(context.Background(), sale)
		assert.NoError(t, err)
	})

	t.Run("Database error", func(t *testing.T) {
		tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			mock.ExpectExec(regexp.QuoteMeta("UPDATE sales")).
				WithArgs(2000.0, 5.0, 100.0, 1900.0, (*time.Time)(nil), (*string)(nil), 11).
				WillReturnError(errors.New("database error"))
			return fn(ctx)
		})

		_, err := repo.Update(context.Background(), &domain.Sale{ID: 11, SalePrice: 2000, FeePercent: 5, FeeAmount: 100, NetAmount: 1900})
		assert.Error(t, err)
	})
}

func TestRepository_DeleteByDropID(t *testing.T) {
	repo, mock, _ := NewMock(t)

	t.Run("Deleted", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sales WHERE drop_id = $1")).
			WithArgs(4).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		deleted, err := repo.DeleteByDropID(context.Background(), 4)
		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("No sale", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sales WHERE drop_id = $1")).
			WithArgs(9).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		deleted, err := repo.DeleteByDropID(context.Background(), 9)
		assert.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestRepository_GetStats(t *testing.T) {
	repo, mock, _ := NewMock(t)

	t.Run("Totals over every sale", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(net_amount), 0)")).
			WillReturnRows(pgxmock.NewRows([]string{"total_net", "total_drops"}).AddRow(143450.0, 3))

		stats, err := repo.GetStats(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 143450.0, stats.TotalNet)
		assert.Equal(t, 3, stats.TotalDrops)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(net_amount), 0)")).
			WillReturnError(errors.New("database error"))

		_, err := repo.GetStats(context.Background())
		assert.Error(t, err)
	})
}
