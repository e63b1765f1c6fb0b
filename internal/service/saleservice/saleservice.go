package saleservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mrzero/lootstock/internal/domain"
	"github.com/mrzero/lootstock/internal/pg"
	"github.com/mrzero/lootstock/pkg/money"
)

//go:generate mockgen -source=saleservice.go -destination=saleservice_mock.go -package=saleservice

type DropRepo interface {
	Get(ctx context.Context, id int) (*domain.Drop, error)
	Update(ctx context.Context, drop *domain.Drop) (*domain.Drop, error)
}

type SaleRepo interface {
	Get(ctx context.Context, id int) (*domain.Sale, error)
	GetByDropID(ctx context.Context, dropID int) (*domain.Sale, error)
	Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	Update(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	Delete(ctx context.Context, id int) (bool, error)
	GetStats(ctx context.Context) (*domain.SaleStats, error)
}

type ItemRepo interface {
	Get(ctx context.Context, id int) (*domain.Item, error)
}

type Notifier interface {
	NotifySale(itemName string, price, netAmount float64)
}

var (
	ErrDropNotFound   = fmt.Errorf("drop not found: %w", domain.ErrNotFound)
	ErrSaleNotFound   = fmt.Errorf("sale not found: %w", domain.ErrNotFound)
	ErrDropNotDropped = fmt.Errorf("drop is not dropped: %w", domain.ErrInvalidState)
	ErrSaleExists     = fmt.Errorf("sale already exists for drop: %w", domain.ErrConflict)
	ErrNegativePrice  = fmt.Errorf("sale price must not be negative: %w", domain.ErrValidation)
	ErrFeeOutOfRange  = fmt.Errorf("fee percent must be between 0 and 100: %w", domain.ErrValidation)
)

const DefaultFeePercent = 5.0

type CreateInput struct {
	SalePrice  float64
	FeePercent *float64
	SaleDate   *time.Time
	Platform   *string
}

type UpdateInput struct {
	SalePrice  *float64
	FeePercent *float64
	SaleDate   *time.Time
	Platform   *string
}

type Service struct {
	dropRepo  DropRepo
	saleRepo  SaleRepo
	itemRepo  ItemRepo
	txManager pg.TXManager
	notifier  Notifier
}

func New(dropRepo DropRepo, saleRepo SaleRepo, itemRepo ItemRepo, txManager pg.TXManager, notifier Notifier) *Service {
	return &Service{
		dropRepo:  dropRepo,
		saleRepo:  saleRepo,
		itemRepo:  itemRepo,
		txManager: txManager,
		notifier:  notifier,
	}
}

func (s *Service) GetByDrop(ctx context.Context, dropID int) (*domain.Sale, error) {
	drop, err := s.dropRepo.Get(ctx, dropID)
	if err != nil {
		return nil, err
	}
	if drop == nil {
		return nil, ErrDropNotFound
	}
	sale, err := s.saleRepo.GetByDropID(ctx, dropID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, ErrSaleNotFound
	}
	return sale, nil
}

// Create records the sale of a drop. A sale is allowed only for a DROPPED
// drop without an existing sale; fee and net are always derived here, never
// taken from the caller. Recording a sale resets the drop's finance status
// to WAIT even if it was forced to PERSONAL before.
func (s *Service) Create(ctx context.Context, dropID int, in CreateInput) (*domain.Sale, error) {
	if in.SalePrice < 0 {
		return nil, ErrNegativePrice
	}
	feePercent := DefaultFeePercent
	if in.FeePercent != nil {
		feePercent = *in.FeePercent
	}
	if feePercent < 0 || feePercent > 100 {
		return nil, ErrFeeOutOfRange
	}

	drop, err := s.dropRepo.Get(ctx, dropID)
	if err != nil {
		return nil, err
	}
	if drop == nil {
		return nil, ErrDropNotFound
	}
	if drop.DropStatus != domain.DropStatusDropped {
		zap.L().Info("rejected sale for undropped drop", zap.Int("drop_id", dropID))
		return nil, ErrDropNotDropped
	}

	existing, err := s.saleRepo.GetByDropID(ctx, dropID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zap.L().Info("sale already exists", zap.Int("drop_id", dropID))
		return nil, ErrSaleExists
	}

	feeAmount := money.Fee(in.SalePrice, feePercent)
	sale := &domain.Sale{
		DropID:     dropID,
		SalePrice:  in.SalePrice,
		FeePercent: feePercent,
		FeeAmount:  feeAmount,
		NetAmount:  money.Net(in.SalePrice, feeAmount),
		SaleDate:   in.SaleDate,
		Platform:   in.Platform,
	}
	// The sale row and the finance transition land together or not at all.
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		created, err := s.saleRepo.Create(ctx, sale)
		if err != nil {
			zap.L().Error("can't create sale", zap.Error(err))
			return err
		}
		sale = created

		drop.FinanceStatus = domain.FinanceStatusWait
		if _, err := s.dropRepo.Update(ctx, drop); err != nil {
			zap.L().Error("can't reset drop finance status", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifySale(ctx, drop.ItemID, sale)
	return sale, nil
}

// Update merges the given fields over the stored sale and recomputes fee and
// net whenever price or fee percent is present. Missing fields keep their
// previous values.
func (s *Service) Update(ctx context.Context, dropID int, in UpdateInput) (*domain.Sale, error) {
	drop, err := s.dropRepo.Get(ctx, dropID)
	if err != nil {
		return nil, err
	}
	if drop == nil {
		return nil, ErrDropNotFound
	}

	sale, err := s.saleRepo.GetByDropID(ctx, dropID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, ErrSaleNotFound
	}

	recompute := false
	if in.SalePrice != nil {
		if *in.SalePrice < 0 {
			return nil, ErrNegativePrice
		}
		sale.SalePrice = *in.SalePrice
		recompute = true
	}
	if in.FeePercent != nil {
		if *in.FeePercent < 0 || *in.FeePercent > 100 {
			return nil, ErrFeeOutOfRange
		}
		sale.FeePercent = *in.FeePercent
		recompute = true
	}
	if in.SaleDate != nil {
		sale.SaleDate = in.SaleDate
	}
	if in.Platform != nil {
		sale.Platform = in.Platform
	}

	if recompute {
		sale.FeeAmount = money.Fee(sale.SalePrice, sale.FeePercent)
		sale.NetAmount = money.Net(sale.SalePrice, sale.FeeAmount)
	}

	updated, err := s.saleRepo.Update(ctx, sale)
	if err != nil {
		zap.L().Error("can't update sale", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// Delete removes the sale only. Shares of the drop are left in place; the
// reconciliation figure surfaces the resulting inconsistency.
func (s *Service) Delete(ctx context.Context, dropID int) error {
	sale, err := s.saleRepo.GetByDropID(ctx, dropID)
	if err != nil {
		return err
	}
	if sale == nil {
		return ErrSaleNotFound
	}
	if _, err := s.saleRepo.Delete(ctx, sale.ID); err != nil {
		zap.L().Error("can't delete sale", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) notifySale(ctx context.Context, itemID int, sale *domain.Sale) {
	item, err := s.itemRepo.Get(ctx, itemID)
	if err != nil || item == nil {
		zap.L().Warn("can't resolve item for sale notification", zap.Int("item_id", itemID), zap.Error(err))
		return
	}
	s.notifier.NotifySale(item.Name, sale.SalePrice, sale.NetAmount)
}
