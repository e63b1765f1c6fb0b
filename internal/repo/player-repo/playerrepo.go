package playerrepo

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

const playerColumns = "id, name, discord_id, username, password_hash, role, active, created_at"

func scanPlayer(row pgx.Row) (*domain.Player, error) {
	var p domain.Player
	err := row.Scan(&p.ID, &p.Name, &p.DiscordID, &p.Username, &p.PasswordHash, &p.Role, &p.Active, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) List(ctx context.Context, filter domain.PlayerFilter) ([]domain.Player, error) {
	query := `
        SELECT ` + playerColumns + `
        FROM players
        WHERE 1=1
    `
	args := []any{}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND name ILIKE $%d", len(args))
	}
	if filter.Role != "" {
		args = append(args, filter.Role)
		query += fmt.Sprintf(" AND role = $%d", len(args))
	}
	if filter.Active != nil {
		args = append(args, *filter.Active)
		query += fmt.Sprintf(" AND active = $%d", len(args))
	}
	query += " ORDER BY name ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list players", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var players []domain.Player
	for rows.Next() {
		var p domain.Player
		err := rows.Scan(&p.ID, &p.Name, &p.DiscordID, &p.Username, &p.PasswordHash, &p.Role, &p.Active, &p.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan player row", zap.Error(err))
			return nil, err
		}
		players = append(players, p)
	}
	return players, nil
}

func (r *Repository) Get(ctx context.Context, id int) (*domain.Player, error) {
	query := `
        SELECT ` + playerColumns + `
        FROM players
        WHERE id = $1
    `
	player, err := scanPlayer(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get player", zap.Error(err))
		return nil, err
	}
	return player, nil
}

func (r *Repository) FindByName(ctx context.Context, name string) (*domain.Player, error) {
	query := `
        SELECT ` + playerColumns + `
        FROM players
        WHERE LOWER(name) = LOWER($1)
    `
	player, err := scanPlayer(r.db.QueryRow(ctx, query, name))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find player by name", zap.Error(err))
		return nil, err
	}
	return player, nil
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (*domain.Player, error) {
	query := `
        SELECT ` + playerColumns + `
        FROM players
        WHERE LOWER(username) = LOWER($1)
    `
	player, err := scanPlayer(r.db.QueryRow(ctx, query, username))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find player by username", zap.Error(err))
		return nil, err
	}
	return player, nil
}

func (r *Repository) Create(ctx context.Context, player *domain.Player) (*domain.Player, error) {
	query := `
        INSERT INTO players (name, discord_id, username, password_hash, role, active)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		player.Name, player.DiscordID, player.Username, player.PasswordHash, player.Role, player.Active,
	).Scan(&player.ID, &player.CreatedAt)
	if err != nil {
		zap.L().Error("can't save player", zap.Error(err))
		return nil, err
	}
	return player, nil
}

func (r *Repository) Update(ctx context.Context, player *domain.Player) (*domain.Player, error) {
	query := `
        UPDATE players
        SET name = $1, discord_id = $2, username = $3, password_hash = $4, role = $5, active = $6
        WHERE id = $7
    `
	_, err := r.db.Exec(ctx, query,
		player.Name, player.DiscordID, player.Username, player.PasswordHash, player.Role, player.Active, player.ID,
	)
	if err != nil {
		zap.L().Error("can't update player", zap.Error(err))
		return nil, err
	}
	return player, nil
}

func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete player", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
