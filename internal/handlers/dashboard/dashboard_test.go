package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/mrzero/lootstock/internal/domain"
	"github.com/mrzero/lootstock/internal/dto"
	statsservice "github.com/mrzero/lootstock/internal/service/statsservice"
	pkgauth "github.com/mrzero/lootstock/pkg/auth"
)

func NewMock(t *testing.T) (*DashboardHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)

	defer ctrl.Finish()
	return handler, service
}

func authContext(r *http.Request, username, role string) *http.Request {
	ctx := context.WithValue(r.Context(), pkgauth.UsernameKey, username)
	ctx = context.WithValue(ctx, pkgauth.RoleKey, role)
	return r.WithContext(ctx)
}

func TestGetDashboardHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Member stats", func(t *testing.T) {
		service.EXPECT().GetDashboard(gomock.Any(), "ragnar", "MEMBER").
			Return(&statsservice.Dashboard{
				MyStats: &domain.ShareStats{TotalAmount: 44333.33, UnpaidAmount: 44333.33},
				RecentDrops: []domain.DropDetails{
					{Drop: domain.Drop{ID: 4}, Item: &domain.Item{ID: 7, Name: "Dragon Slayer"}},
				},
			}, nil)

		r := authContext(httptest.NewRequest(http.MethodGet, "/api/dashboard", nil), "ragnar", "MEMBER")
		w := httptest.NewRecorder()
		handler.GetDashboard(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.DashboardResponseDTO
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, 44333.33, body.MyStats.TotalAmount)
		assert.Len(t, body.RecentDrops, 1)
		assert.Nil(t, body.Admin)
	})

	t.Run("Admin gets guild aggregates", func(t *testing.T) {
		service.EXPECT().GetDashboard(gomock.Any(), "guildmaster", "ADMIN").
			Return(&statsservice.Dashboard{
				MyStats: &domain.ShareStats{},
				Admin: &statsservice.AdminStats{
					Sales:  domain.SaleStats{TotalNet: 142500, TotalDrops: 1},
					Shares: domain.ShareStats{TotalAmount: 132999.99, UnpaidAmount: 132999.99},
				},
			}, nil)

		r := authContext(httptest.NewRequest(http.MethodGet, "/api/dashboard", nil), "guildmaster", "ADMIN")
		w := httptest.NewRecorder()
		handler.GetDashboard(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.DashboardResponseDTO
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.NotNil(t, body.Admin)
		assert.Equal(t, 142500.0, body.Admin.Sales.TotalNet)
	})

	t.Run("Service failure", func(t *testing.T) {
		service.EXPECT().GetDashboard(gomock.Any(), "ragnar", "MEMBER").
			Return(nil, errors.New("db down"))

		r := authContext(httptest.NewRequest(http.MethodGet, "/api/dashboard", nil), "ragnar", "MEMBER")
		w := httptest.NewRecorder()
		handler.GetDashboard(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGetOverviewHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Totals and status counts", func(t *testing.T) {
		service.EXPECT().GetOverview(gomock.Any()).
			Return(&statsservice.Overview{
				TotalSalePrice: 151000,
				TotalFee:       7550,
				TotalNet:       143450,
				DropCount:      3,
				StatusCounts:   map[string]int{"WAIT": 1, "PAID": 1, "PERSONAL": 1},
			}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/dashboard/overview", nil)
		w := httptest.NewRecorder()
		handler.GetOverview(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.OverviewResponseDTO
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, 143450.0, body.TotalNet)
		assert.Equal(t, 1, body.StatusCounts["PERSONAL"])
	})

	t.Run("Service failure", func(t *testing.T) {
		service.EXPECT().GetOverview(gomock.Any()).Return(nil, errors.New("db down"))

		r := httptest.NewRequest(http.MethodGet, "/api/dashboard/overview", nil)
		w := httptest.NewRecorder()
		handler.GetOverview(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
