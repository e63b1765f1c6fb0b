package dropservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mrzero/lootstock/internal/domain"
)

//go:generate mockgen -source=dropservice.go -destination=dropservice_mock.go -package=dropservice

type DropRepo interface {
	List(ctx context.Context, filter domain.DropFilter) ([]domain.Drop, error)
	ListWithDetails(ctx context.Context, filter domain.DropFilter) ([]domain.DropDetails, error)
	Get(ctx context.Context, id int) (*domain.Drop, error)
	Create(ctx context.Context, drop *domain.Drop) (*domain.Drop, error)
	Update(ctx context.Context, drop *domain.Drop) (*domain.Drop, error)
	DeleteCascade(ctx context.Context, id int) (bool, error)
}

type ItemRepo interface {
	Get(ctx context.Context, id int) (*domain.Item, error)
}

type BossRepo interface {
	Get(ctx context.Context, id int) (*domain.Boss, error)
}

type SaleRepo interface {
	GetByDropID(ctx context.Context, dropID int) (*domain.Sale, error)
}

type ShareRepo interface {
	ListByDropID(ctx context.Context, dropID int) ([]domain.ShareWithPlayer, error)
}

type Notifier interface {
	NotifyNewDrop(itemName string, bossName *string)
}

var (
	ErrDropNotFound     = fmt.Errorf("drop not found: %w", domain.ErrNotFound)
	ErrItemNotFound     = fmt.Errorf("item not found: %w", domain.ErrValidation)
	ErrBossNotFound     = fmt.Errorf("boss not found: %w", domain.ErrValidation)
	ErrBadDropStatus    = fmt.Errorf("unknown drop status: %w", domain.ErrValidation)
	ErrBadFinanceStatus = fmt.Errorf("unknown finance status: %w", domain.ErrValidation)
	ErrBadQuantity      = fmt.Errorf("quantity must be at least 1: %w", domain.ErrValidation)
	ErrBadParticipants  = fmt.Errorf("participant count must be at least 1: %w", domain.ErrValidation)
)

type CreateInput struct {
	DropDate         *time.Time
	ItemID           int
	BossID           *int
	Quantity         int
	ParticipantCount int
	DropStatus       string
	FinanceStatus    string
	Note             *string
}

type UpdateInput struct {
	DropDate         *time.Time
	ItemID           *int
	BossID           *int
	Quantity         *int
	ParticipantCount *int
	DropStatus       *string
	FinanceStatus    *string
	Note             *string
}

type Service struct {
	dropRepo  DropRepo
	itemRepo  ItemRepo
	bossRepo  BossRepo
	saleRepo  SaleRepo
	shareRepo ShareRepo
	notifier  Notifier
}

func New(dropRepo DropRepo, itemRepo ItemRepo, bossRepo BossRepo, saleRepo SaleRepo, shareRepo ShareRepo, notifier Notifier) *Service {
	return &Service{
		dropRepo:  dropRepo,
		itemRepo:  itemRepo,
		bossRepo:  bossRepo,
		saleRepo:  saleRepo,
		shareRepo: shareRepo,
		notifier:  notifier,
	}
}

func (s *Service) List(ctx context.Context, filter domain.DropFilter) ([]domain.Drop, error) {
	return s.dropRepo.List(ctx, filter)
}

func (s *Service) ListWithDetails(ctx context.Context, filter domain.DropFilter) ([]domain.DropDetails, error) {
	return s.dropRepo.ListWithDetails(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Drop, error) {
	drop, err := s.dropRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if drop == nil {
		return nil, ErrDropNotFound
	}
	return drop, nil
}

// GetDetails resolves the drop together with its item, boss, sale and
// shares.
func (s *Service) GetDetails(ctx context.Context, id int) (*domain.DropDetails, error) {
	drop, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &domain.DropDetails{Drop: *drop}

	details.Item, err = s.itemRepo.Get(ctx, drop.ItemID)
	if err != nil {
		return nil, err
	}
	if drop.BossID != nil {
		details.Boss, err = s.bossRepo.Get(ctx, *drop.BossID)
		if err != nil {
			return nil, err
		}
	}
	details.Sale, err = s.saleRepo.GetByDropID(ctx, id)
	if err != nil {
		return nil, err
	}
	details.Shares, err = s.shareRepo.ListByDropID(ctx, id)
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Drop, error) {
	if in.Quantity < 1 {
		return nil, ErrBadQuantity
	}
	if in.ParticipantCount < 1 {
		return nil, ErrBadParticipants
	}
	if err := validateStatuses(in.DropStatus, in.FinanceStatus); err != nil {
		return nil, err
	}

	item, err := s.itemRepo.Get(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	var bossName *string
	if in.BossID != nil {
		boss, err := s.bossRepo.Get(ctx, *in.BossID)
		if err != nil {
			return nil, err
		}
		if boss == nil {
			return nil, ErrBossNotFound
		}
		bossName = &boss.Name
	}

	drop := &domain.Drop{
		DropDate:         in.DropDate,
		ItemID:           in.ItemID,
		BossID:           in.BossID,
		Quantity:         in.Quantity,
		ParticipantCount: in.ParticipantCount,
		DropStatus:       in.DropStatus,
		FinanceStatus:    in.FinanceStatus,
		Note:             in.Note,
	}
	created, err := s.dropRepo.Create(ctx, drop)
	if err != nil {
		zap.L().Error("can't create drop", zap.Error(err))
		return nil, err
	}

	s.notifier.NotifyNewDrop(item.Name, bossName)
	return created, nil
}

// Update merges the given fields over the stored drop, re-validating any
// changed reference before writing.
func (s *Service) Update(ctx context.Context, id int, in UpdateInput) (*domain.Drop, error) {
	drop, err := s.dropRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if drop == nil {
		return nil, ErrDropNotFound
	}

	if in.ItemID != nil {
		item, err := s.itemRepo.Get(ctx, *in.ItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, ErrItemNotFound
		}
		drop.ItemID = *in.ItemID
	}
	if in.BossID != nil {
		boss, err := s.bossRepo.Get(ctx, *in.BossID)
		if err != nil {
			return nil, err
		}
		if boss == nil {
			return nil, ErrBossNotFound
		}
		drop.BossID = in.BossID
	}
	if in.DropDate != nil {
		drop.DropDate = in.DropDate
	}
	if in.Quantity != nil {
		if *in.Quantity < 1 {
			return nil, ErrBadQuantity
		}
		drop.Quantity = *in.Quantity
	}
	if in.ParticipantCount != nil {
		if *in.ParticipantCount < 1 {
			return nil, ErrBadParticipants
		}
		drop.ParticipantCount = *in.ParticipantCount
	}
	if in.DropStatus != nil {
		drop.DropStatus = *in.DropStatus
	}
	if in.FinanceStatus != nil {
		drop.FinanceStatus = *in.FinanceStatus
	}
	if in.Note != nil {
		drop.Note = in.Note
	}

	if err := validateStatuses(drop.DropStatus, drop.FinanceStatus); err != nil {
		return nil, err
	}

	updated, err := s.dropRepo.Update(ctx, drop)
	if err != nil {
		zap.L().Error("can't update drop", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// Delete removes the drop with its sale and shares. The repository performs
// the cascade in one transaction.
func (s *Service) Delete(ctx context.Context, id int) error {
	deleted, err := s.dropRepo.DeleteCascade(ctx, id)
	if err != nil {
		zap.L().Error("can't delete drop", zap.Error(err))
		return err
	}
	if !deleted {
		return ErrDropNotFound
	}
	return nil
}

// SetFinanceStatus forces the drop-level finance status. Any of the three
// values is reachable at any time; per-share paid statuses are not touched.
func (s *Service) SetFinanceStatus(ctx context.Context, id int, status string) (*domain.Drop, error) {
	switch status {
	case domain.FinanceStatusWait, domain.FinanceStatusPaid, domain.FinanceStatusPersonal:
	default:
		return nil, ErrBadFinanceStatus
	}

	drop, err := s.dropRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if drop == nil {
		return nil, ErrDropNotFound
	}

	drop.FinanceStatus = status
	updated, err := s.dropRepo.Update(ctx, drop)
	if err != nil {
		zap.L().Error("can't set finance status", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func validateStatuses(dropStatus, financeStatus string) error {
	switch dropStatus {
	case domain.DropStatusDropped, domain.DropStatusNotDropped:
	default:
		return ErrBadDropStatus
	}
	switch financeStatus {
	case domain.FinanceStatusWait, domain.FinanceStatusPaid, domain.FinanceStatusPersonal:
	default:
		return ErrBadFinanceStatus
	}
	return nil
}
