package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

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

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:    authhandlers.NewMockService(ctrl),
		PlayerService:  playershandlers.NewMockService(ctrl),
		CatalogService: cataloghandlers.NewMockService(ctrl),
		DropService:    dropshandlers.NewMockService(ctrl),
		SaleService:    saleshandlers.NewMockService(ctrl),
		ShareService:   shareshandlers.NewMockService(ctrl),
		StatsService:   dashboardhandlers.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func newMockHandlers(ctrl *gomock.Controller) *Handlers {
	authHandler := NewMockAuthHandler(ctrl)
	playerHandler := NewMockPlayerHandler(ctrl)
	catalogHandler := NewMockCatalogHandler(ctrl)
	dropHandler := NewMockDropHandler(ctrl)
	saleHandler := NewMockSaleHandler(ctrl)
	shareHandler := NewMockShareHandler(ctrl)
	dashboardHandler := NewMockDashboardHandler(ctrl)

	authHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	authHandler.EXPECT().ChangePassword(gomock.Any(), gomock.Any()).AnyTimes()
	playerHandler.EXPECT().GetPlayers(gomock.Any(), gomock.Any()).AnyTimes()
	playerHandler.EXPECT().GetPlayer(gomock.Any(), gomock.Any()).AnyTimes()
	playerHandler.EXPECT().CreatePlayer(gomock.Any(), gomock.Any()).AnyTimes()
	playerHandler.EXPECT().UpdatePlayer(gomock.Any(), gomock.Any()).AnyTimes()
	playerHandler.EXPECT().ChangePassword(gomock.Any(), gomock.Any()).AnyTimes()
	playerHandler.EXPECT().DeletePlayer(gomock.Any(), gomock.Any()).AnyTimes()
	catalogHandler.EXPECT().GetItems(gomock.Any(), gomock.Any()).AnyTimes()
	catalogHandler.EXPECT().GetItem(gomock.Any(), gomock.Any()).AnyTimes()
	catalogHandler.EXPECT().CreateItem(gomock.Any(), gomock.Any()).AnyTimes()
	catalogHandler.EXPECT().UpdateItem(gomock.Any(), gomock.Any()).AnyTimes()
	catalogHandler.EXPECT().DeleteItem(gomock.Any(), gomock.Any()).AnyTimes()
	catalogHandler.EXPECT().GetBosses(gomock.Any(), gomock.Any()).AnyTimes()
	catalogHandler.EXPECT().GetBoss(gomock.Any(), gomock.Any()).AnyTimes()
	catalogHandler.EXPECT().CreateBoss(gomock.Any(), gomock.Any()).AnyTimes()
	catalogHandler.EXPECT().UpdateBoss(gomock.Any(), gomock.Any()).AnyTimes()
	catalogHandler.EXPECT().DeleteBoss(gomock.Any(), gomock.Any()).AnyTimes()
	dropHandler.EXPECT().GetDrops(gomock.Any(), gomock.Any()).AnyTimes()
	dropHandler.EXPECT().GetDrop(gomock.Any(), gomock.Any()).AnyTimes()
	dropHandler.EXPECT().CreateDrop(gomock.Any(), gomock.Any()).AnyTimes()
	dropHandler.EXPECT().UpdateDrop(gomock.Any(), gomock.Any()).AnyTimes()
	dropHandler.EXPECT().DeleteDrop(gomock.Any(), gomock.Any()).AnyTimes()
	dropHandler.EXPECT().SetFinanceStatus(gomock.Any(), gomock.Any()).AnyTimes()
	saleHandler.EXPECT().GetSale(gomock.Any(), gomock.Any()).AnyTimes()
	saleHandler.EXPECT().CreateSale(gomock.Any(), gomock.Any()).AnyTimes()
	saleHandler.EXPECT().UpdateSale(gomock.Any(), gomock.Any()).AnyTimes()
	saleHandler.EXPECT().DeleteSale(gomock.Any(), gomock.Any()).AnyTimes()
	shareHandler.EXPECT().GetShares(gomock.Any(), gomock.Any()).AnyTimes()
	shareHandler.EXPECT().CreateShares(gomock.Any(), gomock.Any()).AnyTimes()
	shareHandler.EXPECT().GetReconciliation(gomock.Any(), gomock.Any()).AnyTimes()
	shareHandler.EXPECT().GetShare(gomock.Any(), gomock.Any()).AnyTimes()
	shareHandler.EXPECT().UpdateShare(gomock.Any(), gomock.Any()).AnyTimes()
	shareHandler.EXPECT().DeleteShare(gomock.Any(), gomock.Any()).AnyTimes()
	dashboardHandler.EXPECT().GetDashboard(gomock.Any(), gomock.Any()).AnyTimes()
	dashboardHandler.EXPECT().GetOverview(gomock.Any(), gomock.Any()).AnyTimes()

	return &Handlers{
		AuthHandler:      authHandler,
		PlayerHandler:    playerHandler,
		CatalogHandler:   catalogHandler,
		DropHandler:      dropHandler,
		SaleHandler:      saleHandler,
		ShareHandler:     shareHandler,
		DashboardHandler: dashboardHandler,
	}
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newMockHandlers(ctrl)
	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/auth/login", http.StatusOK},
		{"POST", "/api/auth/change-password", http.StatusUnauthorized},
		{"GET", "/api/players", http.StatusUnauthorized},
		{"GET", "/api/players/1", http.StatusUnauthorized},
		{"GET", "/api/items", http.StatusUnauthorized},
		{"GET", "/api/bosses", http.StatusUnauthorized},
		{"GET", "/api/drops", http.StatusUnauthorized},
		{"GET", "/api/drops/1", http.StatusUnauthorized},
		{"GET", "/api/drops/1/sale", http.StatusUnauthorized},
		{"GET", "/api/drops/1/shares", http.StatusUnauthorized},
		{"GET", "/api/drops/1/reconciliation", http.StatusUnauthorized},
		{"GET", "/api/shares/1", http.StatusUnauthorized},
		{"GET", "/api/dashboard", http.StatusUnauthorized},
		{"POST", "/api/players", http.StatusUnauthorized},
		{"POST", "/api/drops", http.StatusUnauthorized},
		{"PUT", "/api/drops/1/finance-status", http.StatusUnauthorized},
		{"GET", "/api/dashboard/overview", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestInitRoutes_RoleGates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newMockHandlers(ctrl)
	router := chi.NewRouter()
	h.InitRoutes(router)

	jwtService := &auth.JWTService{}
	memberToken, err := jwtService.GenerateJWT("ragnar", "MEMBER", time.Now().Add(time.Hour))
	assert.NoError(t, err)
	adminToken, err := jwtService.GenerateJWT("guildmaster", "ADMIN", time.Now().Add(time.Hour))
	assert.NoError(t, err)

	tests := []struct {
		name   string
		method string
		url    string
		token  string
		status int
	}{
		{"Member reads drops", "GET", "/api/drops", memberToken, http.StatusOK},
		{"Member cannot create drops", "POST", "/api/drops", memberToken, http.StatusForbidden},
		{"Member cannot see the overview", "GET", "/api/dashboard/overview", memberToken, http.StatusForbidden},
		{"Admin creates drops", "POST", "/api/drops", adminToken, http.StatusOK},
		{"Admin sees the overview", "GET", "/api/dashboard/overview", adminToken, http.StatusOK},
		{"Garbage token", "GET", "/api/drops", "garbage", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
