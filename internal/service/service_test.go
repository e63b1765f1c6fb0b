package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/mrzero/lootstock/internal/config"
	"github.com/mrzero/lootstock/internal/notify"
	"github.com/mrzero/lootstock/internal/pg"
	"github.com/mrzero/lootstock/internal/repo"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()
	mockTxManager := pg.NewMockTXManager(ctrl)

	repos := repo.New(mockDB, mockTxManager)
	notifier := notify.NewDiscord("", nil)
	cfg := &config.Config{AdminUsername: "guildmaster", AdminPassword: "masterkey"}

	services := New(repos, mockTxManager, notifier, cfg)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.PlayerService)
	assert.NotNil(t, services.CatalogService)
	assert.NotNil(t, services.DropService)
	assert.NotNil(t, services.SaleService)
	assert.NotNil(t, services.ShareService)
	assert.NotNil(t, services.StatsService)
}
