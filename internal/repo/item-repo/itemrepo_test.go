package itemrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/mrzero/lootstock/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var itemCols = []string{"id", "name", "category", "sub_type", "tradeable", "note", "created_at"}

func TestRepository_Get(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.Item
	}{
		{
			name: "Item exists",
			id:   7,
			mockSetup: func() {
				rows := pgxmock.NewRows(itemCols).
					AddRow(7, "Dragon Slayer", "Weapon", nil, true, nil, timeNow)
				mock.ExpectQuery("FROM items").
					WithArgs(7).
					WillReturnRows(rows)
			},
			result: &domain.Item{ID: 7, Name: "Dragon Slayer", Category: "Weapon", Tradeable: true, CreatedAt: timeNow},
		},
		{
			name: "Item does not exist",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery("FROM items").
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			id:   7,
			mockSetup: func() {
				mock.ExpectQuery("FROM items").
					WithArgs(7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Get(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	t.Run("Filter by search and category", func(t *testing.T) {
		rows := pgxmock.NewRows(itemCols).
			AddRow(7, "Dragon Slayer", "Weapon", nil, true, nil, timeNow)
		mock.ExpectQuery("FROM items").
			WithArgs("%dragon%", "Weapon").
			WillReturnRows(rows)

		result, err := repo.List(context.Background(), domain.ItemFilter{Search: "dragon", Category: "Weapon"})
		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, "Dragon Slayer", result[0].Name)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery("FROM items").
			WillReturnError(errors.New("database error"))

		_, err := repo.List(context.Background(), domain.ItemFilter{})
		assert.Error(t, err)
	})
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	t.Run("Save item successfully", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(7, timeNow)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO items")).
			WithArgs("Dragon Slayer", "Weapon", (*string)(nil), true, (*string)(nil)).
			WillReturnRows(rows)

		item := &domain.Item{Name: "Dragon Slayer", Category: "Weapon", Tradeable: true}
		result, err := repo.Create(context.Background(), item)
		assert.NoError(t, err)
		assert.Equal(t, 7, result.ID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO items")).
			WithArgs("Dragon Slayer", "Weapon", (*string)(nil), true, (*string)(nil)).
			WillReturnError(errors.New("database error"))

		_, err := repo.Create(context.Background(), &domain.Item{Name: "Dragon Slayer", Category: "Weapon", Tradeable: true})
		assert.Error(t, err)
	})
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Deleted", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM items WHERE id = $1")).
			WithArgs(7).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		deleted, err := repo.Delete(context.Background(), 7)
		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("Referenced by drops", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM items WHERE id = $1")).
			WithArgs(7).
			WillReturnError(&pgconn.PgError{Code: "23503"})

		_, err := repo.Delete(context.Background(), 7)
		var pgErr *pgconn.PgError
		assert.ErrorAs(t, err, &pgErr)
		assert.Equal(t, "23503", pgErr.Code)
	})
}
