package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/mrzero/lootstock/docs"
	authhandlers "github.com/mrzero/lootstock/internal/handlers/auth"
	cataloghandlers "github.com/mrzero/lootstock/internal/handlers/catalog"
	dashboardhandlers "github.com/mrzero/lootstock/internal/handlers/dashboard"
	dropshandlers "github.com/mrzero/lootstock/internal/handlers/drops"
	playershandlers "github.com/mrzero/lootstock/internal/handlers/players"
	saleshandlers "github.com/mrzero/lootstock/internal/handlers/sales"
	shareshandlers "github.com/mrzero/lootstock/internal/handlers/shares"
	"github.com/mrzero/lootstock/internal/service"
	"github.com/mrzero/lootstock/pkg/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
}

type PlayerHandler interface {
	GetPlayers(w http.ResponseWriter, r *http.Request)
	GetPlayer(w http.ResponseWriter, r *http.Request)
	CreatePlayer(w http.ResponseWriter, r *http.Request)
	UpdatePlayer(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
	DeletePlayer(w http.ResponseWriter, r *http.Request)
}

type CatalogHandler interface {
	GetItems(w http.ResponseWriter, r *http.Request)
	GetItem(w http.ResponseWriter, r *http.Request)
	CreateItem(w http.ResponseWriter, r *http.Request)
	UpdateItem(w http.ResponseWriter, r *http.Request)
	DeleteItem(w http.ResponseWriter, r *http.Request)
	GetBosses(w http.ResponseWriter, r *http.Request)
	GetBoss(w http.ResponseWriter, r *http.Request)
	CreateBoss(w http.ResponseWriter, r *http.Request)
	UpdateBoss(w http.ResponseWriter, r *http.Request)
	DeleteBoss(w http.ResponseWriter, r *http.Request)
}

type DropHandler interface {
	GetDrops(w http.ResponseWriter, r *http.Request)
	GetDrop(w http.ResponseWriter, r *http.Request)
	CreateDrop(w http.ResponseWriter, r *http.Request)
	UpdateDrop(w http.ResponseWriter, r *http.Request)
	DeleteDrop(w http.ResponseWriter, r *http.Request)
	SetFinanceStatus(w http.ResponseWriter, r *http.Request)
}

type SaleHandler interface {
	GetSale(w http.ResponseWriter, r *http.Request)
	CreateSale(w http.ResponseWriter, r *http.Request)
	UpdateSale(w http.ResponseWriter, r *http.Request)
	DeleteSale(w http.ResponseWriter, r *http.Request)
}

type ShareHandler interface {
	GetShares(w http.ResponseWriter, r *http.Request)
	CreateShares(w http.ResponseWriter, r *http.Request)
	GetReconciliation(w http.ResponseWriter, r *http.Request)
	GetShare(w http.ResponseWriter, r *http.Request)
	UpdateShare(w http.ResponseWriter, r *http.Request)
	DeleteShare(w http.ResponseWriter, r *http.Request)
}

type DashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
	GetOverview(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler      AuthHandler
	PlayerHandler    PlayerHandler
	CatalogHandler   CatalogHandler
	DropHandler      DropHandler
	SaleHandler      SaleHandler
	ShareHandler     ShareHandler
	DashboardHandler DashboardHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService),
		PlayerHandler:    playershandlers.New(s.PlayerService),
		CatalogHandler:   cataloghandlers.New(s.CatalogService),
		DropHandler:      dropshandlers.New(s.DropService),
		SaleHandler:      saleshandlers.New(s.SaleService),
		ShareHandler:     shareshandlers.New(s.ShareService),
		DashboardHandler: dashboardhandlers.New(s.StatsService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Post("/auth/change-password", h.AuthHandler.ChangePassword)

			r.Get("/players", h.PlayerHandler.GetPlayers)
			r.Get("/players/{id}", h.PlayerHandler.GetPlayer)

			r.Get("/items", h.CatalogHandler.GetItems)
			r.Get("/items/{id}", h.CatalogHandler.GetItem)
			r.Get("/bosses", h.CatalogHandler.GetBosses)
			r.Get("/bosses/{id}", h.CatalogHandler.GetBoss)

			r.Get("/drops", h.DropHandler.GetDrops)
			r.Get("/drops/{id}", h.DropHandler.GetDrop)
			r.Get("/drops/{id}/sale", h.SaleHandler.GetSale)
			r.Get("/drops/{id}/shares", h.ShareHandler.GetShares)
			r.Get("/drops/{id}/reconciliation", h.ShareHandler.GetReconciliation)
			r.Get("/shares/{id}", h.ShareHandler.GetShare)

			r.Get("/dashboard", h.DashboardHandler.GetDashboard)

			r.Group(func(r chi.Router) {
				r.Use(auth.AdminMiddleware)

				r.Post("/players", h.PlayerHandler.CreatePlayer)
				r.Put("/players/{id}", h.PlayerHandler.UpdatePlayer)
				r.Put("/players/{id}/password", h.PlayerHandler.ChangePassword)
				r.Delete("/players/{id}", h.PlayerHandler.DeletePlayer)

				r.Post("/items", h.CatalogHandler.CreateItem)
				r.Put("/items/{id}", h.CatalogHandler.UpdateItem)
				r.Delete("/items/{id}", h.CatalogHandler.DeleteItem)
				r.Post("/bosses", h.CatalogHandler.CreateBoss)
				r.Put("/bosses/{id}", h.CatalogHandler.UpdateBoss)
				r.Delete("/bosses/{id}", h.CatalogHandler.DeleteBoss)

				r.Post("/drops", h.DropHandler.CreateDrop)
				r.Put("/drops/{id}", h.DropHandler.UpdateDrop)
				r.Delete("/drops/{id}", h.DropHandler.DeleteDrop)
				r.Put("/drops/{id}/finance-status", h.DropHandler.SetFinanceStatus)

				r.Post("/drops/{id}/sale", h.SaleHandler.CreateSale)
				r.Put("/drops/{id}/sale", h.SaleHandler.UpdateSale)
				r.Delete("/drops/{id}/sale", h.SaleHandler.DeleteSale)

				r.Post("/drops/{id}/shares", h.ShareHandler.CreateShares)
				r.Put("/shares/{id}", h.ShareHandler.UpdateShare)
				r.Delete("/shares/{id}", h.ShareHandler.DeleteShare)

				r.Get("/dashboard/overview", h.DashboardHandler.GetOverview)
			})
		})
	})

	return r
}
