package saleservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/mrzero/lootstock/internal/domain"
	"github.com/mrzero/lootstock/internal/pg"
)

type mocks struct {
	dropRepo  *MockDropRepo
	saleRepo  *MockSaleRepo
	itemRepo  *MockItemRepo
	txManager *pg.MockTXManager
	notifier  *MockNotifier
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		dropRepo:  NewMockDropRepo(ctrl),
		saleRepo:  NewMockSaleRepo(ctrl),
		itemRepo:  NewMockItemRepo(ctrl),
		txManager: pg.NewMockTXManager(ctrl),
		notifier:  NewMockNotifier(ctrl),
	}
	service := New(m.dropRepo, m.saleRepo, m.itemRepo, m.txManager, m.notifier)
	defer ctrl.Finish()
	return service, m
}

func (m *mocks) expectTx() {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

func ptrF(v float64) *float64 { return &v }

func TestCreate(t *testing.T) {
	service, m := NewMock(t)

	droppedDrop := func() *domain.Drop {
		return &domain.Drop{ID: 1, ItemID: 7, DropStatus: domain.DropStatusDropped, FinanceStatus: domain.FinanceStatusPersonal}
	}

	tests := []struct {
		name          string
		dropID        int
		in            CreateInput
		prepareMock   func()
		expectedSale  *domain.Sale
		expectedError error
	}{
		{
			name:          "Negative price is rejected",
			dropID:        1,
			in:            CreateInput{SalePrice: -1},
			expectedError: ErrNegativePrice,
		},
		{
			name:          "Fee percent above 100 is rejected",
			dropID:        1,
			in:            CreateInput{SalePrice: 100, FeePercent: ptrF(101)},
			expectedError: ErrFeeOutOfRange,
		},
		{
			name:   "Drop does not exist",
			dropID: 1,
			in:     CreateInput{SalePrice: 100},
			prepareMock: func() {
				m.dropRepo.EXPECT().Get(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrDropNotFound,
		},
		{
			name:   "Drop is not dropped",
			dropID: 1,
			in:     CreateInput{SalePrice: 100},
			prepareMock: func() {
				m.dropRepo.EXPECT().Get(gomock.Any(), 1).Return(&domain.Drop{ID: 1, DropStatus: domain.DropStatusNotDropped}, nil)
			},
			expectedError: ErrDropNotDropped,
		},
		{
			name:   "Sale already exists",
			dropID: 1,
			in:     CreateInput{SalePrice: 100},
			prepareMock: func() {
				m.dropRepo.EXPECT().Get(gomock.Any(), 1).Return(droppedDrop(), nil)
				m.saleRepo.EXPECT().GetByDropID(gomock.Any(), 1).Return(&domain.Sale{ID: 3, DropID: 1}, nil)
			},
			expectedError: ErrSaleExists,
		},
		{
			name:   "Sale is created with default fee and the finance status resets",
			dropID: 1,
			in:     CreateInput{SalePrice: 150000},
			prepareMock: func() {
				m.dropRepo.EXPECT().Get(gomock.Any(), 1).Return(droppedDrop(), nil)
				m.saleRepo.EXPECT().GetByDropID(gomock.Any(), 1).Return(nil, nil)
				m.expectTx()
				m.saleRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, sale *domain.Sale) (*domain.Sale, error) {
						sale.ID = 10
						return sale, nil
					})
				m.dropRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, drop *domain.Drop) (*domain.Drop, error) {
						assert.Equal(t, domain.FinanceStatusWait, drop.FinanceStatus)
						return drop, nil
					})
				m.itemRepo.EXPECT().Get(gomock.Any(), 7).Return(&domain.Item{ID: 7, Name: "Dragon Slayer"}, nil)
				m.notifier.EXPECT().NotifySale("Dragon Slayer", 150000.0, 142500.0)
			},
			expectedSale: &domain.Sale{
				ID:         10,
				DropID:     1,
				SalePrice:  150000,
				FeePercent: 5,
				FeeAmount:  7500,
				NetAmount:  142500,
			},
		},
		{
			name:   "Explicit fee percent overrides the default",
			dropID: 1,
			in:     CreateInput{SalePrice: 1000, FeePercent: ptrF(10)},
			prepareMock: func() {
				m.dropRepo.EXPECT().Get(gomock.Any(), 1).Return(droppedDrop(), nil)
				m.saleRepo.EXPECT().GetByDropID(gomock.Any(), 1).Return(nil, nil)
				m.expectTx()
				m.saleRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, sale *domain.Sale) (*domain.Sale, error) {
						return sale, nil
					})
				m.dropRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, drop *domain.Drop) (*domain.Drop, error) {
						return drop, nil
					})
				m.itemRepo.EXPECT().Get(gomock.Any(), 7).Return(&domain.Item{ID: 7, Name: "Dragon Slayer"}, nil)
				m.notifier.EXPECT().NotifySale("Dragon Slayer", 1000.0, 900.0)
			},
			expectedSale: &domain.Sale{
				DropID:     1,
				SalePrice:  1000,
				FeePercent: 10,
				FeeAmount:  100,
				NetAmount:  900,
			},
		},
		{
			name:   "Repo failure on create",
			dropID: 1,
			in:     CreateInput{SalePrice: 100},
			prepareMock: func() {
				m.dropRepo.EXPECT().Get(gomock.Any(), 1).Return(droppedDrop(), nil)
				m.saleRepo.EXPECT().GetByDropID(gomock.Any(), 1).Return(nil, nil)
				m.expectTx()
				m.saleRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			sale, err := service.Create(context.Background(), tt.dropID, tt.in)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, sale)
				assert.Equal(t, tt.expectedSale.SalePrice, sale.SalePrice)
				assert.Equal(t, tt.expectedSale.FeePercent, sale.FeePercent)
				assert.Equal(t, tt.expectedSale.FeeAmount, sale.FeeAmount)
				assert.Equal(t, tt.expectedSale.NetAmount, sale.NetAmount)
			}
		})
	}
}

func TestCreate_RoundsFeeToCents(t *testing.T) {
	service, m := NewMock(t)

	m.dropRepo.EXPECT().Get(gomock.Any(), 1).Return(&domain.Drop{ID: 1, ItemID: 7, DropStatus: domain.DropStatusDropped}, nil)
	m.saleRepo.EXPECT().GetByDropID(gomock.Any(), 1).Return(nil, nil)
	m.expectTx()
	m.saleRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, sale *domain.Sale) (*domain.Sale, error) {
			return sale, nil
		})
	m.dropRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, drop *domain.Drop) (*domain.Drop, error) {
			return drop, nil
		})
	m.itemRepo.EXPECT().Get(gomock.Any(), 7).Return(&domain.Item{ID: 7, Name: "Topaz"}, nil)
	m.notifier.EXPECT().NotifySale("Topaz", 333.33, 316.66)

	sale, err := service.Create(context.Background(), 1, CreateInput{SalePrice: 333.33})
	assert.NoError(t, err)
	assert.Equal(t, 16.67, sale.FeeAmount)
	assert.Equal(t, 316.66, sale.NetAmount)
}

func TestCreate_FinanceResetFailureRollsBack(t *testing.T) {
	service, m := NewMock(t)

	m.dropRepo.EXPECT().Get(gomock.Any(), 1).Return(&domain.Drop{ID: 1, ItemID: 7, DropStatus: domain.DropStatusDropped}, nil)
	m.saleRepo.EXPECT().GetByDropID(gomock.Any(), 1).Return(nil, nil)

	// Both writes run inside one transaction section; when the status update
	// fails, the error surfaces through Begin so the sale insert rolls back
	// with it instead of staying committed on its own.
	var txErr error
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			txErr = fn(ctx)
			return txErr
		})
	m.saleRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, sale *domain.Sale) (*domain.Sale, error) {
			sale.ID = 10
			return sale, nil
		})
	m.dropRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, errors.New("some error"))

	sale, err := service.Create(context.Background(), 1, CreateInput{SalePrice: 100})
	assert.Nil(t, sale)
	assert.EqualError(t, err, "some error")
	assert.EqualError(t, txErr, "some error")
}

func TestUpdate(t *testing.T) {
	service, m := NewMock(t)

	storedSale := func() *domain.Sale {
		return &domain.Sale{
			ID:         10,
			DropID:     1,
			SalePrice:  1000,
			FeePercent: 5,
			FeeAmount:  50,
			NetAmount:  950,
		}
	}

	tests := []struct {
		name          string
		in            UpdateInput
		prepareMock   func()
		check         func(t *testing.T, sale *domain.Sale)
		expectedError error
	}{
		{
			name: "Drop does not exist",
			in:   UpdateInput{},
			prepareMock: func() {
				m.dropRepo.EXPECT().Get(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrDropNotFound,
		},
		{
			name: "Sale does not exist",
			in:   UpdateInput{},
			prepareMock: func() {
				m.dropRepo.EXPECT().Get(gomock.Any(), 1).Return(&domain.Drop{ID: 1}, nil)
				m.saleRepo.EXPECT().GetByDropID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrSaleNotFound,
		},
		{
			name: "New price recomputes fee and net",
			in:   UpdateInput{SalePrice: ptrF(2000)},
			prepareMock: func() {
				m.dropRepo.EXPECT().Get(gomock.Any(), 1).Return(&domain.Drop{ID: 1}, nil)
				m.saleRepo.EXPECT().GetByDropID(gomock.Any(), 1).Return(storedSale(), nil)
				m.saleRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, sale *domain.Sale) (*domain.Sale, error) {
						return sale, nil
					})
			},
			check: func(t *testing.T, sale *domain.Sale) {
				assert.Equal(t, 2000.0, sale.SalePrice)
				assert.Equal(t, 100.0, sale.FeeAmount)
				assert.Equal(t, 1900.0, sale.NetAmount)
			},
		},
		{
			name: "Platform only update keeps the amounts",
			in:   UpdateInput{Platform: ptrStr("auction house")},
			prepareMock: func() {
				m.dropRepo.EXPECT().Get(gomock.Any(), 1).Return(&domain.Drop{ID: 1}, nil)
				m.saleRepo.EXPECT().GetByDropID(gomock.Any(), 1).Return(storedSale(), nil)
				m.saleRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, sale *domain.Sale) (*domain.Sale, error) {
						return sale, nil
					})
			},
			check: func(t *testing.T, sale *domain.Sale) {
				assert.Equal(t, 50.0, sale.FeeAmount)
				assert.Equal(t, 950.0, sale.NetAmount)
				assert.Equal(t, "auction house", *sale.Platform)
			},
		},
		{
			name: "Negative price is rejected",
			in:   UpdateInput{SalePrice: ptrF(-5)},
			prepareMock: func() {
				m.dropRepo.EXPECT().Get(gomock.Any(), 1).Return(&domain.Drop{ID: 1}, nil)
				m.saleRepo.EXPECT().GetByDropID(gomock.Any(), 1).Return(storedSale(), nil)
			},
			expectedError: ErrNegativePrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			sale, err := service.Update(context.Background(), 1, tt.in)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				tt.check(t, sale)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Sale does not exist",
			prepareMock: func() {
				m.saleRepo.EXPECT().GetByDropID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrSaleNotFound,
		},
		{
			name: "Sale is deleted, shares untouched",
			prepareMock: func() {
				m.saleRepo.EXPECT().GetByDropID(gomock.Any(), 1).Return(&domain.Sale{ID: 10, DropID: 1}, nil)
				m.saleRepo.EXPECT().Delete(gomock.Any(), 10).Return(true, nil)
			},
		},
		{
			name: "Repo failure on delete",
			prepareMock: func() {
				m.saleRepo.EXPECT().GetByDropID(gomock.Any(), 1).Return(&domain.Sale{ID: 10, DropID: 1}, nil)
				m.saleRepo.EXPECT().Delete(gomock.Any(), 10).Return(false, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Delete(context.Background(), 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetByDrop(t *testing.T) {
	service, m := NewMock(t)

	m.dropRepo.EXPECT().Get(gomock.Any(), 1).Return(&domain.Drop{ID: 1}, nil)
	m.saleRepo.EXPECT().GetByDropID(gomock.Any(), 1).Return(&domain.Sale{ID: 10, DropID: 1}, nil)

	sale, err := service.GetByDrop(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 10, sale.ID)

	m.dropRepo.EXPECT().Get(gomock.Any(), 2).Return(nil, nil)
	_, err = service.GetByDrop(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func ptrStr(v string) *string { return &v }
