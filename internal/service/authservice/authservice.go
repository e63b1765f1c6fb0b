package authservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mrzero/lootstock/internal/domain"
	"github.com/mrzero/lootstock/pkg/auth"
)

//go:generate mockgen -source=authservice.go -destination=authservice_mock.go -package=authservice

type PlayerRepo interface {
	FindByUsername(ctx context.Context, username string) (*domain.Player, error)
	Update(ctx context.Context, player *domain.Player) (*domain.Player, error)
}

var (
	ErrBadCredentials = fmt.Errorf("invalid username or password: %w", domain.ErrUnauthorized)
	ErrEmptyLogin     = fmt.Errorf("username and password are required: %w", domain.ErrValidation)
	ErrNoAccount      = fmt.Errorf("no player account for this login: %w", domain.ErrValidation)
	ErrEmptyPassword  = fmt.Errorf("password is required: %w", domain.ErrValidation)
)

const tokenTTL = 24 * time.Hour

// Session is the result of a successful login.
type Session struct {
	Token    string
	Username string
	Role     string
	PlayerID *int
}

type Service struct {
	playerRepo  PlayerRepo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface

	adminUsername string
	adminPassword string
}

func New(playerRepo PlayerRepo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, adminUsername, adminPassword string) *Service {
	return &Service{
		playerRepo:    playerRepo,
		hashService:   hashService,
		jwtService:    jwtService,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
	}
}

// Login checks the configured admin credentials before the players table, so
// the environment admin works even on an empty database.
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	if username == "" || password == "" {
		return nil, ErrEmptyLogin
	}

	if s.adminUsername != "" && username == s.adminUsername {
		if password != s.adminPassword {
			return nil, ErrBadCredentials
		}
		return s.issue(username, domain.RoleAdmin, nil)
	}

	player, err := s.playerRepo.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Error("can't look up player for login", zap.Error(err))
		return nil, err
	}
	if player == nil || !player.Active || player.PasswordHash == nil {
		return nil, ErrBadCredentials
	}
	if !s.hashService.ComparePassword(*player.PasswordHash, password) {
		return nil, ErrBadCredentials
	}
	return s.issue(username, player.Role, &player.ID)
}

// ChangePassword lets the authenticated player replace their own password.
// The environment admin has no player row and cannot change its credentials
// here.
func (s *Service) ChangePassword(ctx context.Context, username, password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	player, err := s.playerRepo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if player == nil {
		return ErrNoAccount
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

func (s *Service) issue(username, role string, playerID *int) (*Session, error) {
	token, err := s.jwtService.GenerateJWT(username, role, time.Now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("can't sign token", zap.Error(err))
		return nil, err
	}
	return &Session{Token: token, Username: username, Role: role, PlayerID: playerID}, nil
}
