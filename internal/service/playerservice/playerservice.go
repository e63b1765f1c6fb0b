package playerservice

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mrzero/lootstock/internal/domain"
	"github.com/mrzero/lootstock/pkg/auth"
)

//go:generate mockgen -source=playerservice.go -destination=playerservice_mock.go -package=playerservice

type PlayerRepo interface {
	List(ctx context.Context, filter domain.PlayerFilter) ([]domain.Player, error)
	Get(ctx context.Context, id int) (*domain.Player, error)
	FindByName(ctx context.Context, name string) (*domain.Player, error)
	FindByUsername(ctx context.Context, username string) (*domain.Player, error)
	Create(ctx context.Context, player *domain.Player) (*domain.Player, error)
	Update(ctx context.Context, player *domain.Player) (*domain.Player, error)
	Delete(ctx context.Context, id int) (bool, error)
}

var (
	ErrPlayerNotFound = fmt.Errorf("player not found: %w", domain.ErrNotFound)
	ErrNameTaken      = fmt.Errorf("player name already taken: %w", domain.ErrConflict)
	ErrUsernameTaken  = fmt.Errorf("username already taken: %w", domain.ErrConflict)
	ErrEmptyName      = fmt.Errorf("player name is required: %w", domain.ErrValidation)
	ErrBadRole        = fmt.Errorf("unknown role: %w", domain.ErrValidation)
	ErrEmptyPassword  = fmt.Errorf("password is required: %w", domain.ErrValidation)
)

type CreateInput struct {
	Name      string
	DiscordID *string
	Username  *string
	Password  *string
	Role      string
	Active    *bool
}

type UpdateInput struct {
	Name      *string
	DiscordID *string
	Username  *string
	Role      *string
	Active    *bool
}

type Service struct {
	playerRepo  PlayerRepo
	hashService auth.HashServiceInterface
}

func New(playerRepo PlayerRepo, hashService auth.HashServiceInterface) *Service {
	return &Service{playerRepo: playerRepo, hashService: hashService}
}

func (s *Service) List(ctx context.Context, filter domain.PlayerFilter) ([]domain.Player, error) {
	return s.playerRepo.List(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Player, error) {
	player, err := s.playerRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, ErrPlayerNotFound
	}
	return player, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Player, error) {
	if in.Name == "" {
		return nil, ErrEmptyName
	}
	role := in.Role
	if role == "" {
		role = domain.RoleMember
	}
	if err := validateRole(role); err != nil {
		return nil, err
	}

	// name and username are unique case-insensitively across all players,
	// deleted ones included.
	if err := s.checkNameFree(ctx, in.Name, 0); err != nil {
		return nil, err
	}
	if in.Username != nil {
		if err := s.checkUsernameFree(ctx, *in.Username, 0); err != nil {
			return nil, err
		}
	}

	player := &domain.Player{
		Name:      in.Name,
		DiscordID: in.DiscordID,
		Username:  in.Username,
		Role:      role,
		Active:    true,
	}
	if in.Active != nil {
		player.Active = *in.Active
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := s.hashService.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		player.PasswordHash = &hash
	}

	created, err := s.playerRepo.Create(ctx, player)
	if err != nil {
		zap.L().Error("can't create player", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int, in UpdateInput) (*domain.Player, error) {
	player, err := s.playerRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, ErrEmptyName
		}
		if err := s.checkNameFree(ctx, *in.Name, id); err != nil {
			return nil, err
		}
		player.Name = *in.Name
	}
	if in.Username != nil {
		if err := s.checkUsernameFree(ctx, *in.Username, id); err != nil {
			return nil, err
		}
		player.Username = in.Username
	}
	if in.DiscordID != nil {
		player.DiscordID = in.DiscordID
	}
	if in.Role != nil {
		if err := validateRole(*in.Role); err != nil {
			return nil, err
		}
		player.Role = *in.Role
	}
	if in.Active != nil {
		player.Active = *in.Active
	}

	updated, err := s.playerRepo.Update(ctx, player)
	if err != nil {
		zap.L().Error("can't update player", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// ChangePassword replaces the player's credential hash.
func (s *Service) ChangePassword(ctx context.Context, id int, password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	player, err := s.playerRepo.Get(ctx, id)
	if err != nil {
		return err
	}
	if player == nil {
		return ErrPlayerNotFound
	}

	hash, err := s.hashService.HashPassword(password)
	if err != nil {
		return err
	}
	player.PasswordHash = &hash
	if _, err := s.playerRepo.Update(ctx, player); err != nil {
		zap.L().Error("can't change password", zap.Error(err))
		return err
	}
	return nil
}

// Delete deactivates the player by default so the shares ledger keeps its
// history. With hard=true the row is removed for good.
func (s *Service) Delete(ctx context.Context, id int, hard bool) error {
	player, err := s.playerRepo.Get(ctx, id)
	if err != nil {
		return err
	}
	if player == nil {
		return ErrPlayerNotFound
	}

	if !hard {
		player.Active = false
		if _, err := s.playerRepo.Update(ctx, player); err != nil {
			zap.L().Error("can't deactivate player", zap.Error(err))
			return err
		}
		return nil
	}

	deleted, err := s.playerRepo.Delete(ctx, id)
	if err != nil {
		zap.L().Error("can't delete player", zap.Error(err))
		return err
	}
	if !deleted {
		return ErrPlayerNotFound
	}
	return nil
}

func (s *Service) checkNameFree(ctx context.Context, name string, selfID int) error {
	existing, err := s.playerRepo.FindByName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return ErrNameTaken
	}
	return nil
}

func (s *Service) checkUsernameFree(ctx context.Context, username string, selfID int) error {
	if username == "" {
		return nil
	}
	existing, err := s.playerRepo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return ErrUsernameTaken
	}
	return nil
}

func validateRole(role string) error {
	switch role {
	case domain.RoleAdmin, domain.RoleMember:
		return nil
	default:
		return ErrBadRole
	}
}
