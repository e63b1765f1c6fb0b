package catalogservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/mrzero/lootstock/internal/domain"
	"github.com/mrzero/lootstock/pkg/validate"
)

//go:generate mockgen -source=catalogservice.go -destination=catalogservice_mock.go -package=catalogservice

type ItemRepo interface {
	List(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error)
	Get(ctx context.Context, id int) (*domain.Item, error)
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) (*domain.Item, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type BossRepo interface {
	List(ctx context.Context, filter domain.BossFilter) ([]domain.Boss, error)
	Get(ctx context.Context, id int) (*domain.Boss, error)
	Create(ctx context.Context, boss *domain.Boss) (*domain.Boss, error)
	Update(ctx context.Context, boss *domain.Boss) (*domain.Boss, error)
	Delete(ctx context.Context, id int) (bool, error)
}

var (
	ErrItemNotFound = fmt.Errorf("item not found: %w", domain.ErrNotFound)
	ErrBossNotFound = fmt.Errorf("boss not found: %w", domain.ErrNotFound)
	ErrItemInUse    = fmt.Errorf("item is referenced by drops: %w", domain.ErrConflict)
	ErrBossInUse    = fmt.Errorf("boss is referenced by drops: %w", domain.ErrConflict)
	ErrEmptyName    = fmt.Errorf("name is required: %w", domain.ErrValidation)
	ErrBadCategory  = fmt.Errorf("unknown item category: %w", domain.ErrValidation)
)

var itemCategories = []string{"Skill", "Weapon", "Armor", "Accessory", "Material", "Mount", "Special"}

type ItemInput struct {
	Name      string
	Category  string
	SubType   *string
	Tradeable *bool
	Note      *string
}

type BossInput struct {
	Name     string
	Location *string
}

type Service struct {
	itemRepo ItemRepo
	bossRepo BossRepo
}

func New(itemRepo ItemRepo, bossRepo BossRepo) *Service {
	return &Service{itemRepo: itemRepo, bossRepo: bossRepo}
}

func (s *Service) ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error) {
	return s.itemRepo.List(ctx, filter)
}

func (s *Service) GetItem(ctx context.Context, id int) (*domain.Item, error) {
	item, err := s.itemRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

func (s *Service) CreateItem(ctx context.Context, in ItemInput) (*domain.Item, error) {
	if err := validateItem(in); err != nil {
		return nil, err
	}
	item := &domain.Item{
		Name:      in.Name,
		Category:  in.Category,
		SubType:   in.SubType,
		Tradeable: true,
		Note:      in.Note,
	}
	if in.Tradeable != nil {
		item.Tradeable = *in.Tradeable
	}
	created, err := s.itemRepo.Create(ctx, item)
	if err != nil {
		zap.L().Error("can't create item", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) UpdateItem(ctx context.Context, id int, in ItemInput) (*domain.Item, error) {
	item, err := s.itemRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	if err := validateItem(in); err != nil {
		return nil, err
	}

	item.Name = in.Name
	item.Category = in.Category
	item.SubType = in.SubType
	item.Note = in.Note
	if in.Tradeable != nil {
		item.Tradeable = *in.Tradeable
	}
	updated, err := s.itemRepo.Update(ctx, item)
	if err != nil {
		zap.L().Error("can't update item", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// DeleteItem refuses to remove an item that drops still reference; the
// foreign key reports that as a conflict rather than cascading.
func (s *Service) DeleteItem(ctx context.Context, id int) error {
	deleted, err := s.itemRepo.Delete(ctx, id)
	if err != nil {
		if isFKViolation(err) {
			return ErrItemInUse
		}
		zap.L().Error("can't delete item", zap.Error(err))
		return err
	}
	if !deleted {
		return ErrItemNotFound
	}
	return nil
}

func (s *Service) ListBosses(ctx context.Context, filter domain.BossFilter) ([]domain.Boss, error) {
	return s.bossRepo.List(ctx, filter)
}

func (s *Service) GetBoss(ctx context.Context, id int) (*domain.Boss, error) {
	boss, err := s.bossRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if boss == nil {
		return nil, ErrBossNotFound
	}
	return boss, nil
}

func (s *Service) CreateBoss(ctx context.Context, in BossInput) (*domain.Boss, error) {
	if in.Name == "" {
		return nil, ErrEmptyName
	}
	created, err := s.bossRepo.Create(ctx, &domain.Boss{Name: in.Name, Location: in.Location})
	if err != nil {
		zap.L().Error("can't create boss", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) UpdateBoss(ctx context.Context, id int, in BossInput) (*domain.Boss, error) {
	boss, err := s.bossRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if boss == nil {
		return nil, ErrBossNotFound
	}
	if in.Name == "" {
		return nil, ErrEmptyName
	}
	boss.Name = in.Name
	boss.Location = in.Location
	updated, err := s.bossRepo.Update(ctx, boss)
	if err != nil {
		zap.L().Error("can't update boss", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeleteBoss(ctx context.Context, id int) error {
	deleted, err := s.bossRepo.Delete(ctx, id)
	if err != nil {
		if isFKViolation(err) {
			return ErrBossInUse
		}
		zap.L().Error("can't delete boss", zap.Error(err))
		return err
	}
	if !deleted {
		return ErrBossNotFound
	}
	return nil
}

func validateItem(in ItemInput) error {
	if in.Name == "" {
		return ErrEmptyName
	}
	if !validate.OneOf(in.Category, itemCategories...) {
		return ErrBadCategory
	}
	return nil
}

func isFKViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
