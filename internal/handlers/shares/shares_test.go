package shares

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/mrzero/lootstock/internal/domain"
	"github.com/mrzero/lootstock/internal/dto"
	shareservice "github.com/mrzero/lootstock/internal/service/shareservice"
)

func NewMock(t *testing.T) (chi.Router, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)

	r := chi.NewRouter()
	r.Get("/api/drops/{id}/shares", handler.GetShares)
	r.Post("/api/drops/{id}/shares", handler.CreateShares)
	r.Get("/api/drops/{id}/reconciliation", handler.GetReconciliation)
	r.Get("/api/shares/{id}", handler.GetShare)
	r.Put("/api/shares/{id}", handler.UpdateShare)
	r.Delete("/api/shares/{id}", handler.DeleteShare)

	defer ctrl.Finish()
	return r, service
}

func TestCreateSharesHandler(t *testing.T) {
	router, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedCount int
	}{
		{
			name: "Equal split",
			body: `{"split_equally":true,"player_ids":[1,2,3]}`,
			prepareMock: func() {
				service.EXPECT().SplitEqually(gomock.Any(), 4, []int{1, 2, 3}, nil).
					Return([]domain.Share{
						{ID: 1, DropID: 4, Amount: 44333.33},
						{ID: 2, DropID: 4, Amount: 44333.33},
						{ID: 3, DropID: 4, Amount: 44333.33},
					}, nil)
			},
			expectedCode:  http.StatusCreated,
			expectedCount: 3,
		},
		{
			name: "Split with net override",
			body: `{"split_equally":true,"player_ids":[1,2],"net_override":100000}`,
			prepareMock: func() {
				service.EXPECT().SplitEqually(gomock.Any(), 4, []int{1, 2}, gomock.Any()).
					DoAndReturn(func(_ interface{}, _ int, _ []int, netOverride *float64) ([]domain.Share, error) {
						assert.NotNil(t, netOverride)
						assert.Equal(t, 100000.0, *netOverride)
						return []domain.Share{{ID: 1}, {ID: 2}}, nil
					})
			},
			expectedCode:  http.StatusCreated,
			expectedCount: 2,
		},
		{
			name: "Manual buy-out share with defaults filled",
			body: `{"player_id":1,"share_type":"BUY","amount":30000}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 4, shareservice.CreateInput{
					PlayerID:   1,
					ShareType:  "BUY",
					Amount:     30000,
					PaidStatus: domain.PaidStatusWait,
				}).Return(&domain.Share{ID: 5, DropID: 4, Amount: 30000}, nil)
			},
			expectedCode:  http.StatusCreated,
			expectedCount: 1,
		},
		{
			name: "Split without a sale is rejected",
			body: `{"split_equally":true,"player_ids":[1]}`,
			prepareMock: func() {
				service.EXPECT().SplitEqually(gomock.Any(), 4, []int{1}, nil).
					Return(nil, shareservice.ErrNoSale)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Malformed body",
			body:         `{"split_equally":`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			r := httptest.NewRequest(http.MethodPost, "/api/drops/4/shares", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var body []dto.ShareResponseDTO
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Len(t, body, tt.expectedCount)
			}
		})
	}
}

func TestGetReconciliationHandler(t *testing.T) {
	router, service := NewMock(t)

	service.EXPECT().Reconcile(gomock.Any(), 4).
		Return(&domain.Reconciliation{NetAmount: 142500, Allocated: 132999.99, Remaining: 9500.01}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/drops/4/reconciliation", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.ReconciliationResponseDTO
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 9500.01, body.Remaining)
}

func TestGetSharesHandler(t *testing.T) {
	router, service := NewMock(t)

	service.EXPECT().ListByDrop(gomock.Any(), 4).Return([]domain.ShareWithPlayer{
		{Share: domain.Share{ID: 5, DropID: 4}, PlayerName: "Ragnar"},
	}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/drops/4/shares", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ragnar")

	service.EXPECT().ListByDrop(gomock.Any(), 99).Return(nil, shareservice.ErrDropNotFound)

	r = httptest.NewRequest(http.MethodGet, "/api/drops/99/shares", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateShareHandler(t *testing.T) {
	router, service := NewMock(t)

	t.Run("Paid status flip", func(t *testing.T) {
		service.EXPECT().Update(gomock.Any(), 5, gomock.Any()).DoAndReturn(
			func(_ interface{}, _ int, in shareservice.UpdateInput) (*domain.Share, error) {
				assert.NotNil(t, in.PaidStatus)
				assert.Equal(t, "PAID", *in.PaidStatus)
				return &domain.Share{ID: 5, PaidStatus: "PAID"}, nil
			})

		r := httptest.NewRequest(http.MethodPut, "/api/shares/5", bytes.NewBufferString(`{"paid_status":"PAID"}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Unknown share", func(t *testing.T) {
		service.EXPECT().Update(gomock.Any(), 99, gomock.Any()).
			Return(nil, shareservice.ErrShareNotFound)

		r := httptest.NewRequest(http.MethodPut, "/api/shares/99", bytes.NewBufferString(`{"amount":10}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteShareHandler(t *testing.T) {
	router, service := NewMock(t)

	service.EXPECT().Delete(gomock.Any(), 5).Return(nil)

	r := httptest.NewRequest(http.MethodDelete, "/api/shares/5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}
