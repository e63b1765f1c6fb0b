package service

import (
	"github.com/mrzero/lootstock/internal/config"
	authhandlers "github.com/mrzero/lootstock/internal/handlers/auth"
	cataloghandlers "github.com/mrzero/lootstock/internal/handlers/catalog"
	dashboardhandlers "github.com/mrzero/lootstock/internal/handlers/dashboard"
	dropshandlers "github.com/mrzero/lootstock/internal/handlers/drops"
	playershandlers "github.com/mrzero/lootstock/internal/handlers/players"
	saleshandlers "github.com/mrzero/lootstock/internal/handlers/sales"
	shareshandlers "github.com/mrzero/lootstock/internal/handlers/shares"
	"github.com/mrzero/lootstock/internal/notify"
	"github.com/mrzero/lootstock/internal/pg"
	"github.com/mrzero/lootstock/internal/repo"
	authservice "github.com/mrzero/lootstock/internal/service/authservice"
	catalogservice "github.com/mrzero/lootstock/internal/service/catalogservice"
	dropservice "github.com/mrzero/lootstock/internal/service/dropservice"
	playerservice "github.com/mrzero/lootstock/internal/service/playerservice"
	saleservice "github.com/mrzero/lootstock/internal/service/saleservice"
	shareservice "github.com/mrzero/lootstock/internal/service/shareservice"
	statsservice "github.com/mrzero/lootstock/internal/service/statsservice"
	pkgauth "github.com/mrzero/lootstock/pkg/auth"
)

type Services struct {
	AuthService    authhandlers.Service
	PlayerService  playershandlers.Service
	CatalogService cataloghandlers.Service
	DropService    dropshandlers.Service
	SaleService    saleshandlers.Service
	ShareService   shareshandlers.Service
	StatsService   dashboardhandlers.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, notifier *notify.Discord, cfg *config.Config) *Services {
	hashService := &pkgauth.HashService{}
	jwtService := &pkgauth.JWTService{}

	authService := authservice.New(repo.PlayerRepo, hashService, jwtService, cfg.AdminUsername, cfg.AdminPassword)
	playerService := playerservice.New(repo.PlayerRepo, hashService)
	catalogService := catalogservice.New(repo.ItemRepo, repo.BossRepo)
	dropService := dropservice.New(repo.DropRepo, repo.ItemRepo, repo.BossRepo, repo.SaleRepo, repo.ShareRepo, notifier)
	saleService := saleservice.New(repo.DropRepo, repo.SaleRepo, repo.ItemRepo, txManager, notifier)
	shareService := shareservice.New(repo.DropRepo, repo.SaleRepo, repo.PlayerRepo, repo.ItemRepo, repo.ShareRepo, notifier)
	statsService := statsservice.New(repo.ShareRepo, repo.SaleRepo, repo.DropRepo, repo.PlayerRepo)

	return &Services{
		AuthService:    authService,
		PlayerService:  playerService,
		CatalogService: catalogService,
		DropService:    dropService,
		SaleService:    saleService,
		ShareService:   shareService,
		StatsService:   statsService,
	}
}
