package playerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
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

var playerCols = []string{"id", "name", "discord_id", "username", "password_hash", "role", "active", "created_at"}

func TestRepository_FindByName(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name       string
		playerName string
		mockSetup  func()
		expectErr  bool
		result     *domain.Player
	}{
		{
			name:       "Match is case-insensitive",
			playerName: "RAGNAR",
			mockSetup: func() {
				rows := pgxmock.NewRows(playerCols).
					AddRow(7, "Ragnar", nil, nil, nil, "MEMBER", true, timeNow)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(name) = LOWER($1)")).
					WithArgs("RAGNAR").
					WillReturnRows(rows)
			},
			result: &domain.Player{ID: 7, Name: "Ragnar", Role: "MEMBER", Active: true, CreatedAt: timeNow},
		},
		{
			name:       "No such player",
			playerName: "nobody",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(name) = LOWER($1)")).
					WithArgs("nobody").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:       "Database error",
			playerName: "Ragnar",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(name) = LOWER($1)")).
					WithArgs("Ragnar").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByName(context.Background(), tt.playerName)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByUsername(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	t.Run("Player with credentials", func(t *testing.T) {
		username := "ragnar"
		hash := "$2a$10$hash"
		rows := pgxmock.NewRows(playerCols).
			AddRow(7, "Ragnar", nil, &username, &hash, "MEMBER", true, timeNow)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(username) = LOWER($1)")).
			WithArgs("ragnar").
			WillReturnRows(rows)

		result, err := repo.FindByUsername(context.Background(), "ragnar")
		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, "Ragnar", result.Name)
		assert.Equal(t, hash, *result.PasswordHash)
	})

	t.Run("Unknown username", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(username) = LOWER($1)")).
			WithArgs("nobody").
			WillReturnError(pgx.ErrNoRows)

		result, err := repo.FindByUsername(context.Background(), "nobody")
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	t.Run("Filter by role and active", func(t *testing.T) {
		rows := pgxmock.NewRows(playerCols).
			AddRow(7, "Ragnar", nil, nil, nil, "MEMBER", true, timeNow).
			AddRow(8, "Bjorn", nil, nil, nil, "MEMBER", true, timeNow)
		mock.ExpectQuery("FROM players").
			WithArgs("MEMBER", true).
			WillReturnRows(rows)

		active := true
		result, err := repo.List(context.Background(), domain.PlayerFilter{Role: "MEMBER", Active: &active})
		assert.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("Search pattern", func(t *testing.T) {
		mock.ExpectQuery("FROM players").
			WithArgs("%rag%").
			WillReturnRows(pgxmock.NewRows(playerCols))

		result, err := repo.List(context.Background(), domain.PlayerFilter{Search: "rag"})
		assert.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery("FROM players").
			WillReturnError(errors.New("database error"))

		_, err := repo.List(context.Background(), domain.PlayerFilter{})
		assert.Error(t, err)
	})
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	t.Run("Save player successfully", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(7, timeNow)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO players")).
			WithArgs("Ragnar", (*string)(nil), (*string)(nil), (*string)(nil), "MEMBER", true).
			WillReturnRows(rows)

		player := &domain.Player{Name: "Ragnar", Role: "MEMBER", Active: true}
		result, err := repo.Create(context.Background(), player)
		assert.NoError(t, err)
		assert.Equal(t, 7, result.ID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO players")).
			WithArgs("Ragnar", (*string)(nil), (*string)(nil), (*string)(nil), "MEMBER", true).
			WillReturnError(errors.New("database error"))

		_, err := repo.Create(context.Background(), &domain.Player{Name: "Ragnar", Role: "MEMBER", Active: true})
		assert.Error(t, err)
	})
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Deactivate keeps the row", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE players")).
			WithArgs("Ragnar", (*string)(nil), (*string)(nil), (*string)(nil), "MEMBER", false, 7).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		player := &domain.Player{ID: 7, Name: "Ragnar", Role: "MEMBER", Active: false}
		_, err := repo.Update(context.Background(), player)
		assert.NoError(t, err)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE players")).
			WithArgs("Ragnar", (*string)(nil), (*string)(nil), (*string)(nil), "MEMBER", false, 7).
			WillReturnError(errors.New("database error"))

		_, err := repo.Update(context.Background(), &domain.Player{ID: 7, Name: "Ragnar", Role: "MEMBER", Active: false})
		assert.Error(t, err)
	})
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Deleted", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM players WHERE id = $1")).
			WithArgs(7).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		deleted, err := repo.Delete(context.Background(), 7)
		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("Row missing", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM players WHERE id = $1")).
			WithArgs(99).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		deleted, err := repo.Delete(context.Background(), 99)
		assert.NoError(t, err)
		assert.False(t, deleted)
	})
}
