package dropservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/mrzero/lootstock/internal/domain"
)

type mocks struct {
	dropRepo  *MockDropRepo
	itemRepo  *MockItemRepo
	bossRepo  *MockBossRepo
	saleRepo  *MockSaleRepo
	shareRepo *MockShareRepo
	notifier  *MockNotifier
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		dropRepo:  NewMockDropRepo(ctrl),
		itemRepo:  NewMockItemRepo(ctrl),
		bossRepo:  NewMockBossRepo(ctrl),
		saleRepo:  NewMockSaleRepo(ctrl),
		shareRepo: NewMockShareRepo(ctrl),
		notifier:  NewMockNotifier(ctrl),
	}
	service := New(m.dropRepo, m.itemRepo, m.bossRepo, m.saleRepo, m.shareRepo, m.notifier)
	defer ctrl.Finish()
	return service, m
}

func ptrInt(v int) *int { return &v }

func TestCreate(t *testing.T) {
	service, m := NewMock(t)

	valid := CreateInput{
		ItemID:           7,
		Quantity:         1,
		ParticipantCount: 3,
		DropStatus:       domain.DropStatusDropped,
		FinanceStatus:    domain.FinanceStatusWait,
	}

	tests := []struct {
		name          string
		in            func() CreateInput
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Quantity below one",
			in: func() CreateInput {
				in := valid
				in.Quantity = 0
				return in
			},
			expectedError: ErrBadQuantity,
		},
		{
			name: "Participant count below one",
			in: func() CreateInput {
				in := valid
				in.ParticipantCount = 0
				return in
			},
			expectedError: ErrBadParticipants,
		},
		{
			name: "Unknown drop status",
			in: func() CreateInput {
				in := valid
				in.DropStatus = "LOST"
				return in
			},
			expectedError: ErrBadDropStatus,
		},
		{
			name: "Unknown finance status",
			in: func() CreateInput {
				in := valid
				in.FinanceStatus = "SOON"
				return in
			},
			expectedError: ErrBadFinanceStatus,
		},
		{
			name: "Item does not exist",
			in:   func() CreateInput { return valid },
			prepareMock: func() {
				m.itemRepo.EXPECT().Get(gomock.Any(), 7).Return(nil, nil)
			},
			expectedError: ErrItemNotFound,
		},
		{
			name: "Boss does not exist",
			in: func() CreateInput {
				in := valid
				in.BossID = ptrInt(99)
				return in
			},
			prepareMock: func() {
				m.itemRepo.EXPECT().Get(gomock.Any(), 7).Return(&domain.Item{ID: 7, Name: "Dragon Slayer"}, nil)
				m.bossRepo.EXPECT().Get(gomock.Any(), 99).Return(nil, nil)
			},
			expectedError: ErrBossNotFound,
		},
		{
			name: "Drop without boss is created and notified",
			in:   func() CreateInput { return valid },
			prepareMock: func() {
				m.itemRepo.EXPECT().Get(gomock.Any(), 7).Return(&domain.Item{ID: 7, Name: "Dragon Slayer"}, nil)
				m.dropRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, drop *domain.Drop) (*domain.Drop, error) {
						drop.ID = 1
						return drop, nil
					})
				m.notifier.EXPECT().NotifyNewDrop("Dragon Slayer", nil)
			},
		},
		{
			name: "Drop with boss carries the boss name to the notifier",
			in: func() CreateInput {
				in := valid
				in.BossID = ptrInt(3)
				return in
			},
			prepareMock: func() {
				m.itemRepo.EXPECT().Get(gomock.Any(), 7).Return(&domain.Item{ID: 7, Name: "Dragon Slayer"}, nil)
				m.bossRepo.EXPECT().Get(gomock.Any(), 3).Return(&domain.Boss{ID: 3, Name: "Zaken"}, nil)
				m.dropRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, drop *domain.Drop) (*domain.Drop, error) {
						return drop, nil
					})
				m.notifier.EXPECT().NotifyNewDrop("Dragon Slayer", gomock.Any()).Do(
					func(_ string, bossName *string) {
						assert.NotNil(t, bossName)
						assert.Equal(t, "Zaken", *bossName)
					})
			},
		},
		{
			name: "Repo failure on create",
			in:   func() CreateInput { return valid },
			prepareMock: func() {
				m.itemRepo.EXPECT().Get(gomock.Any(), 7).Return(&domain.Item{ID: 7, Name: "Dragon Slayer"}, nil)
				m.dropRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			drop, err := service.Create(context.Background(), tt.in())
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, drop)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	service, m := NewMock(t)

	stored := func() *domain.Drop {
		return &domain.Drop{
			ID:               1,
			ItemID:           7,
			Quantity:         1,
			ParticipantCount: 3,
			DropStatus:       domain.DropStatusDropped,
			FinanceStatus:    domain.FinanceStatusWait,
		}
	}

	t.Run("Drop does not exist", func(t *testing.T) {
		m.dropRepo.EXPECT().Get(gomock.Any(), 1).Return(nil, nil)
		_, err := service.Update(context.Background(), 1, UpdateInput{})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Finance status merges over the stored drop", func(t *testing.T) {
		m.dropRepo.EXPECT().Get(gomock.Any(), 1).Return(stored(), nil)
		m.dropRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, drop *domain.Drop) (*domain.Drop, error) {
				return drop, nil
			})

		status := domain.FinanceStatusPaid
		drop, err := service.Update(context.Background(), 1, UpdateInput{FinanceStatus: &status})
		assert.NoError(t, err)
		assert.Equal(t, domain.FinanceStatusPaid, drop.FinanceStatus)
		assert.Equal(t, domain.DropStatusDropped, drop.DropStatus)
	})

	t.Run("Reassigning to an unknown item fails", func(t *testing.T) {
		m.dropRepo.EXPECT().Get(gomock.Any(), 1).Return(stored(), nil)
		m.itemRepo.EXPECT().Get(gomock.Any(), 99).Return(nil, nil)

		_, err := service.Update(context.Background(), 1, UpdateInput{ItemID: ptrInt(99)})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Merged state is revalidated", func(t *testing.T) {
		m.dropRepo.EXPECT().Get(gomock.Any(), 1).Return(stored(), nil)
		bad := "LOST"
		_, err := service.Update(context.Background(), 1, UpdateInput{DropStatus: &bad})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestGetDetails(t *testing.T) {
	service, m := NewMock(t)

	bossID := 3
	drop := &domain.Drop{ID: 1, ItemID: 7, BossID: &bossID}

	m.dropRepo.EXPECT().Get(gomock.Any(), 1).Return(drop, nil)
	m.itemRepo.EXPECT().Get(gomock.Any(), 7).Return(&domain.Item{ID: 7, Name: "Dragon Slayer"}, nil)
	m.bossRepo.EXPECT().Get(gomock.Any(), 3).Return(&domain.Boss{ID: 3, Name: "Zaken"}, nil)
	m.saleRepo.EXPECT().GetByDropID(gomock.Any(), 1).Return(&domain.Sale{ID: 10, NetAmount: 142500}, nil)
	m.shareRepo.EXPECT().ListByDropID(gomock.Any(), 1).Return([]domain.ShareWithPlayer{
		{Share: domain.Share{ID: 5}, PlayerName: "Ragnar"},
	}, nil)

	details, err := service.GetDetails(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "Dragon Slayer", details.Item.Name)
	assert.Equal(t, "Zaken", details.Boss.Name)
	assert.Equal(t, 142500.0, details.Sale.NetAmount)
	assert.Len(t, details.Shares, 1)
}

func TestGetDetails_WithoutBossAndSale(t *testing.T) {
	service, m := NewMock(t)

	m.dropRepo.EXPECT().Get(gomock.Any(), 1).Return(&domain.Drop{ID: 1, ItemID: 7}, nil)
	m.itemRepo.EXPECT().Get(gomock.Any(), 7).Return(&domain.Item{ID: 7, Name: "Topaz"}, nil)
	m.saleRepo.EXPECT().GetByDropID(gomock.Any(), 1).Return(nil, nil)
	m.shareRepo.EXPECT().ListByDropID(gomock.Any(), 1).Return(nil, nil)

	details, err := service.GetDetails(context.Background(), 1)
	assert.NoError(t, err)
	assert.Nil(t, details.Boss)
	assert.Nil(t, details.Sale)
	assert.Empty(t, details.Shares)
}

func TestDelete(t *testing.T) {
	service, m := NewMock(t)

	m.dropRepo.EXPECT().DeleteCascade(gomock.Any(), 1).Return(true, nil)
	assert.NoError(t, service.Delete(context.Background(), 1))

	m.dropRepo.EXPECT().DeleteCascade(gomock.Any(), 2).Return(false, nil)
	assert.ErrorIs(t, service.Delete(context.Background(), 2), domain.ErrNotFound)
}

func TestSetFinanceStatus(t *testing.T) {
	service, m := NewMock(t)

	t.Run("Unknown status", func(t *testing.T) {
		_, err := service.SetFinanceStatus(context.Background(), 1, "SOON")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Drop does not exist", func(t *testing.T) {
		m.dropRepo.EXPECT().Get(gomock.Any(), 1).Return(nil, nil)
		_, err := service.SetFinanceStatus(context.Background(), 1, domain.FinanceStatusPaid)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Status is forced", func(t *testing.T) {
		m.dropRepo.EXPECT().Get(gomock.Any(), 1).Return(&domain.Drop{ID: 1, FinanceStatus: domain.FinanceStatusWait}, nil)
		m.dropRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, drop *domain.Drop) (*domain.Drop, error) {
				return drop, nil
			})

		drop, err := service.SetFinanceStatus(context.Background(), 1, domain.FinanceStatusPersonal)
		assert.NoError(t, err)
		assert.Equal(t, domain.FinanceStatusPersonal, drop.FinanceStatus)
	})
}
