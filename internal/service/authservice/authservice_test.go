package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/mrzero/lootstock/internal/domain"
	"github.com/mrzero/lootstock/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockPlayerRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockPlayerRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)
	service := New(repo, hashService, jwtService, "guildmaster", "masterkey")
	defer ctrl.Finish()
	return service, repo, hashService, jwtService
}

func ptrStr(v string) *string { return &v }

func TestLogin(t *testing.T) {
	service, repo, hashService, jwtService := NewMock(t)

	activePlayer := func() *domain.Player {
		return &domain.Player{
			ID:           1,
			Name:         "Ragnar",
			Username:     ptrStr("ragnar"),
			PasswordHash: ptrStr("hashed"),
			Role:         domain.RoleMember,
			Active:       true,
		}
	}

	tests := []struct {
		name            string
		username        string
		password        string
		prepareMock     func()
		expectedSession *Session
		expectedError   error
	}{
		{
			name:          "Empty credentials are rejected",
			username:      "",
			password:      "",
			expectedError: ErrEmptyLogin,
		},
		{
			name:     "Environment admin logs in without a player row",
			username: "guildmaster",
			password: "masterkey",
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT("guildmaster", domain.RoleAdmin, gomock.Any()).Return("token", nil)
			},
			expectedSession: &Session{Token: "token", Username: "guildmaster", Role: domain.RoleAdmin},
		},
		{
			name:          "Environment admin with a wrong password never falls through to players",
			username:      "guildmaster",
			password:      "wrong",
			expectedError: ErrBadCredentials,
		},
		{
			name:     "Player logs in with the right password",
			username: "ragnar",
			password: "secret",
			prepareMock: func() {
				repo.EXPECT().FindByUsername(gomock.Any(), "ragnar").Return(activePlayer(), nil)
				hashService.EXPECT().ComparePassword("hashed", "secret").Return(true)
				jwtService.EXPECT().GenerateJWT("ragnar", domain.RoleMember, gomock.Any()).Return("token", nil)
			},
			expectedSession: &Session{Token: "token", Username: "ragnar", Role: domain.RoleMember},
		},
		{
			name:     "Wrong player password",
			username: "ragnar",
			password: "wrong",
			prepareMock: func() {
				repo.EXPECT().FindByUsername(gomock.Any(), "ragnar").Return(activePlayer(), nil)
				hashService.EXPECT().ComparePassword("hashed", "wrong").Return(false)
			},
			expectedError: ErrBadCredentials,
		},
		{
			name:     "Unknown username",
			username: "nobody",
			password: "secret",
			prepareMock: func() {
				repo.EXPECT().FindByUsername(gomock.Any(), "nobody").Return(nil, nil)
			},
			expectedError: ErrBadCredentials,
		},
		{
			name:     "Deactivated player cannot log in",
			username: "ragnar",
			password: "secret",
			prepareMock: func() {
				player := activePlayer()
				player.Active = false
				repo.EXPECT().FindByUsername(gomock.Any(), "ragnar").Return(player, nil)
			},
			expectedError: ErrBadCredentials,
		},
		{
			name:     "Player without credentials cannot log in",
			username: "ragnar",
			password: "secret",
			prepareMock: func() {
				player := activePlayer()
				player.PasswordHash = nil
				repo.EXPECT().FindByUsername(gomock.Any(), "ragnar").Return(player, nil)
			},
			expectedError: ErrBadCredentials,
		},
		{
			name:     "Repo failure on lookup",
			username: "ragnar",
			password: "secret",
			prepareMock: func() {
				repo.EXPECT().FindByUsername(gomock.Any(), "ragnar").Return(nil, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			session, err := service.Login(context.Background(), tt.username, tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedSession.Token, session.Token)
				assert.Equal(t, tt.expectedSession.Username, session.Username)
				assert.Equal(t, tt.expectedSession.Role, session.Role)
			}
		})
	}
}

func TestLogin_PlayerIDInSession(t *testing.T) {
	service, repo, hashService, jwtService := NewMock(t)

	repo.EXPECT().FindByUsername(gomock.Any(), "ragnar").Return(&domain.Player{
		ID:           42,
		Username:     ptrStr("ragnar"),
		PasswordHash: ptrStr("hashed"),
		Role:         domain.RoleMember,
		Active:       true,
	}, nil)
	hashService.EXPECT().ComparePassword("hashed", "secret").Return(true)
	jwtService.EXPECT().GenerateJWT("ragnar", domain.RoleMember, gomock.Any()).Return("token", nil)

	session, err := service.Login(context.Background(), "ragnar", "secret")
	assert.NoError(t, err)
	assert.NotNil(t, session.PlayerID)
	assert.Equal(t, 42, *session.PlayerID)

	jwtService.EXPECT().GenerateJWT("guildmaster", domain.RoleAdmin, gomock.Any()).Return("token", nil)
	session, err = service.Login(context.Background(), "guildmaster", "masterkey")
	assert.NoError(t, err)
	assert.Nil(t, session.PlayerID)
}

func TestChangePassword(t *testing.T) {
	service, repo, hashService, _ := NewMock(t)

	t.Run("Empty password", func(t *testing.T) {
		err := service.ChangePassword(context.Background(), "ragnar", "")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("No player account", func(t *testing.T) {
		repo.EXPECT().FindByUsername(gomock.Any(), "guildmaster").Return(nil, nil)
		err := service.ChangePassword(context.Background(), "guildmaster", "secret")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Hash is stored", func(t *testing.T) {
		repo.EXPECT().FindByUsername(gomock.Any(), "ragnar").Return(&domain.Player{ID: 1, Username: ptrStr("ragnar")}, nil)
		hashService.EXPECT().HashPassword("newsecret").Return("newhash", nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, player *domain.Player) (*domain.Player, error) {
				assert.Equal(t, "newhash", *player.PasswordHash)
				return player, nil
			})

		assert.NoError(t, service.ChangePassword(context.Background(), "ragnar", "newsecret"))
	})
}
