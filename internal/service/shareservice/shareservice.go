package shareservice

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mrzero/lootstock/internal/domain"
	"github.com/mrzero/lootstock/pkg/money"
)

//go:generate mockgen -source=shareservice.go -destination=shareservice_mock.go -package=shareservice

type DropRepo interface {
	Get(ctx context.Context, id int) (*domain.Drop, error)
}

type SaleRepo interface {
	GetByDropID(ctx context.Context, dropID int) (*domain.Sale, error)
}

type PlayerRepo interface {
	Get(ctx context.Context, id int) (*domain.Player, error)
}

type ItemRepo interface {
	Get(ctx context.Context, id int) (*domain.Item, error)
}

type ShareRepo interface {
	Get(ctx context.Context, id int) (*domain.Share, error)
	ListByDropID(ctx context.Context, dropID int) ([]domain.ShareWithPlayer, error)
	Create(ctx context.Context, share *domain.Share) (*domain.Share, error)
	Update(ctx context.Context, share *domain.Share) (*domain.Share, error)
	Delete(ctx context.Context, id int) (bool, error)
	ReplaceForDrop(ctx context.Context, dropID int, shares []domain.Share) ([]domain.Share, error)
	SumAmountByDropID(ctx context.Context, dropID int) (float64, error)
}

type Notifier interface {
	NotifyDividend(itemName string, amountPerPerson float64, recipients int)
}

var (
	ErrDropNotFound    = fmt.Errorf("drop not found: %w", domain.ErrNotFound)
	ErrShareNotFound   = fmt.Errorf("share not found: %w", domain.ErrNotFound)
	ErrPlayerNotFound  = fmt.Errorf("player not found: %w", domain.ErrValidation)
	ErrNoSale          = fmt.Errorf("drop has no sale yet: %w", domain.ErrInvalidState)
	ErrNoPlayers       = fmt.Errorf("player list is empty: %w", domain.ErrValidation)
	ErrNegativeAmount  = fmt.Errorf("share amount must not be negative: %w", domain.ErrValidation)
	ErrBadShareType    = fmt.Errorf("unknown share type: %w", domain.ErrValidation)
	ErrBadPaidStatus   = fmt.Errorf("unknown paid status: %w", domain.ErrValidation)
	ErrPercentOutRange = fmt.Errorf("percent must be between 0 and 100: %w", domain.ErrValidation)
)

type CreateInput struct {
	PlayerID   int
	ShareType  string
	Percent    *float64
	Amount     float64
	PaidStatus string
	Remark     *string
}

type UpdateInput struct {
	PlayerID   *int
	ShareType  *string
	Percent    *float64
	Amount     *float64
	PaidStatus *string
	Remark     *string
}

type Service struct {
	dropRepo   DropRepo
	saleRepo   SaleRepo
	playerRepo PlayerRepo
	itemRepo   ItemRepo
	shareRepo  ShareRepo
	notifier   Notifier
}

func New(dropRepo DropRepo, saleRepo SaleRepo, playerRepo PlayerRepo, itemRepo ItemRepo, shareRepo ShareRepo, notifier Notifier) *Service {
	return &Service{
		dropRepo:   dropRepo,
		saleRepo:   saleRepo,
		playerRepo: playerRepo,
		itemRepo:   itemRepo,
		shareRepo:  shareRepo,
		notifier:   notifier,
	}
}

func (s *Service) ListByDrop(ctx context.Context, dropID int) ([]domain.ShareWithPlayer, error) {
	drop, err := s.dropRepo.Get(ctx, dropID)
	if err != nil {
		return nil, err
	}
	if drop == nil {
		return nil, ErrDropNotFound
	}
	return s.shareRepo.ListByDropID(ctx, dropID)
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Share, error) {
	share, err := s.shareRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if share == nil {
		return nil, ErrShareNotFound
	}
	return share, nil
}

// Create records a single manual share. The caller supplies the
// authoritative amount directly; percent is informational and is never
// reconciled against amount, which is what lets BUY and PERSONAL shares
// coexist with AUTO ones.
func (s *Service) Create(ctx context.Context, dropID int, in CreateInput) (*domain.Share, error) {
	if err := validateShareFields(in.Amount, in.Percent, in.ShareType, in.PaidStatus); err != nil {
		return nil, err
	}

	drop, err := s.dropRepo.Get(ctx, dropID)
	if err != nil {
		return nil, err
	}
	if drop == nil {
		return nil, ErrDropNotFound
	}

	player, err := s.playerRepo.Get(ctx, in.PlayerID)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	share := &domain.Share{
		DropID:     dropID,
		PlayerID:   in.PlayerID,
		ShareType:  in.ShareType,
		Percent:    in.Percent,
		Amount:     in.Amount,
		PaidStatus: in.PaidStatus,
		Remark:     in.Remark,
	}
	created, err := s.shareRepo.Create(ctx, share)
	if err != nil {
		zap.L().Error("can't create share", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// Update merges the given fields over the stored share. Paid status toggles
// independently of everything else and never feeds back into the drop's
// finance status.
func (s *Service) Update(ctx context.Context, id int, in UpdateInput) (*domain.Share, error) {
	share, err := s.shareRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if share == nil {
		return nil, ErrShareNotFound
	}

	if in.PlayerID != nil {
		player, err := s.playerRepo.Get(ctx, *in.PlayerID)
		if err != nil {
			return nil, err
		}
		if player == nil {
			return nil, ErrPlayerNotFound
		}
		share.PlayerID = *in.PlayerID
	}
	if in.ShareType != nil {
		share.ShareType = *in.ShareType
	}
	if in.Percent != nil {
		share.Percent = in.Percent
	}
	if in.Amount != nil {
		share.Amount = *in.Amount
	}
	if in.PaidStatus != nil {
		share.PaidStatus = *in.PaidStatus
	}
	if in.Remark != nil {
		share.Remark = in.Remark
	}

	if err := validateShareFields(share.Amount, share.Percent, share.ShareType, share.PaidStatus); err != nil {
		return nil, err
	}

	updated, err := s.shareRepo.Update(ctx, share)
	if err != nil {
		zap.L().Error("can't update share", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	deleted, err := s.shareRepo.Delete(ctx, id)
	if err != nil {
		zap.L().Error("can't delete share", zap.Error(err))
		return err
	}
	if !deleted {
		return ErrShareNotFound
	}
	return nil
}

// SplitEqually replaces every share of the drop with one AUTO share per
// player, each worth round2(net/N). netOverride lets the caller split a
// residual instead of the full sale net, which is how a buy-out is composed:
// record the BUY share manually, then split the remainder here. Per-head
// rounding may leave a cent drift against the net; it is reported by
// Reconcile, not corrected.
func (s *Service) SplitEqually(ctx context.Context, dropID int, playerIDs []int, netOverride *float64) ([]domain.Share, error) {
	if len(playerIDs) == 0 {
		return nil, ErrNoPlayers
	}

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
		zap.L().Info("rejected split without sale", zap.Int("drop_id", dropID))
		return nil, ErrNoSale
	}

	for _, playerID := range playerIDs {
		player, err := s.playerRepo.Get(ctx, playerID)
		if err != nil {
			return nil, err
		}
		if player == nil {
			return nil, ErrPlayerNotFound
		}
	}

	net := sale.NetAmount
	if netOverride != nil {
		if *netOverride < 0 {
			return nil, ErrNegativeAmount
		}
		net = *netOverride
	}

	percent, amount := money.EqualShare(net, len(playerIDs))
	shares := make([]domain.Share, 0, len(playerIDs))
	for _, playerID := range playerIDs {
		p := percent
		shares = append(shares, domain.Share{
			DropID:     dropID,
			PlayerID:   playerID,
			ShareType:  domain.ShareTypeAuto,
			Percent:    &p,
			Amount:     amount,
			PaidStatus: domain.PaidStatusWait,
		})
	}

	created, err := s.shareRepo.ReplaceForDrop(ctx, dropID, shares)
	if err != nil {
		zap.L().Error("can't replace shares for split", zap.Error(err))
		return nil, err
	}

	s.notifyDividend(ctx, drop.ItemID, amount, len(playerIDs))
	return created, nil
}

// Reconcile reports how much of the sale net is still unallocated across the
// drop's shares. Always computed from the current rows; over- and
// under-allocation are both legal states.
func (s *Service) Reconcile(ctx context.Context, dropID int) (*domain.Reconciliation, error) {
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
		return nil, ErrNoSale
	}

	allocated, err := s.shareRepo.SumAmountByDropID(ctx, dropID)
	if err != nil {
		return nil, err
	}

	return &domain.Reconciliation{
		NetAmount: sale.NetAmount,
		Allocated: money.Round2(allocated),
		Remaining: money.Round2(sale.NetAmount - allocated),
	}, nil
}

func validateShareFields(amount float64, percent *float64, shareType, paidStatus string) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	if percent != nil && (*percent < 0 || *percent > 100) {
		return ErrPercentOutRange
	}
	switch shareType {
	case domain.ShareTypeAuto, domain.ShareTypeBuy, domain.ShareTypePersonal:
	default:
		return ErrBadShareType
	}
	switch paidStatus {
	case domain.PaidStatusWait, domain.PaidStatusPaid:
	default:
		return ErrBadPaidStatus
	}
	return nil
}

func (s *Service) notifyDividend(ctx context.Context, itemID int, amount float64, recipients int) {
	item, err := s.itemRepo.Get(ctx, itemID)
	if err != nil || item == nil {
		zap.L().Warn("can't resolve item for dividend notification", zap.Int("item_id", itemID), zap.Error(err))
		return
	}
	s.notifier.NotifyDividend(item.Name, amount, recipients)
}
