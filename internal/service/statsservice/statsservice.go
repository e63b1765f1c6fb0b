package statsservice

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mrzero/lootstock/internal/domain"
	"github.com/mrzero/lootstock/pkg/money"
)

//go:generate mockgen -source=statsservice.go -destination=statsservice_mock.go -package=statsservice

type ShareRepo interface {
	GetStats(ctx context.Context, playerID *int) (*domain.ShareStats, error)
}

type SaleRepo interface {
	GetStats(ctx context.Context) (*domain.SaleStats, error)
}

type DropRepo interface {
	ListWithDetails(ctx context.Context, filter domain.DropFilter) ([]domain.DropDetails, error)
	CountByFinanceStatus(ctx context.Context) (map[string]int, error)
}

type PlayerRepo interface {
	FindByUsername(ctx context.Context, username string) (*domain.Player, error)
}

var ErrPlayerNotFound = fmt.Errorf("player not found: %w", domain.ErrNotFound)

const recentDropsLimit = 10

// Dashboard is the member landing-page payload. Admin is nil for regular
// members.
type Dashboard struct {
	MyStats     *domain.ShareStats
	RecentDrops []domain.DropDetails
	Admin       *AdminStats
}

// AdminStats extends the dashboard with guild-wide aggregates.
type AdminStats struct {
	Sales  domain.SaleStats
	Shares domain.ShareStats
}

// Overview sums the whole ledger for the admin reporting page.
type Overview struct {
	TotalSalePrice float64
	TotalFee       float64
	TotalNet       float64
	DropCount      int
	StatusCounts   map[string]int
}

type Service struct {
	shareRepo  ShareRepo
	saleRepo   SaleRepo
	dropRepo   DropRepo
	playerRepo PlayerRepo
}

func New(shareRepo ShareRepo, saleRepo SaleRepo, dropRepo DropRepo, playerRepo PlayerRepo) *Service {
	return &Service{
		shareRepo:  shareRepo,
		saleRepo:   saleRepo,
		dropRepo:   dropRepo,
		playerRepo: playerRepo,
	}
}

// GetDashboard assembles the per-player view. The username comes from the
// token; the environment admin has no player row, so its personal block is
// global stats instead. All fetches run concurrently.
func (s *Service) GetDashboard(ctx context.Context, username, role string) (*Dashboard, error) {
	var playerID *int
	player, err := s.playerRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if player != nil {
		playerID = &player.ID
	}

	dash := &Dashboard{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := s.shareRepo.GetStats(ctx, playerID)
		if err != nil {
			return err
		}
		dash.MyStats = stats
		return nil
	})
	g.Go(func() error {
		drops, err := s.dropRepo.ListWithDetails(ctx, domain.DropFilter{Limit: recentDropsLimit})
		if err != nil {
			return err
		}
		dash.RecentDrops = drops
		return nil
	})
	if role == domain.RoleAdmin {
		admin := &AdminStats{}
		dash.Admin = admin
		g.Go(func() error {
			stats, err := s.saleRepo.GetStats(ctx)
			if err != nil {
				return err
			}
			admin.Sales = *stats
			return nil
		})
		g.Go(func() error {
			stats, err := s.shareRepo.GetStats(ctx, nil)
			if err != nil {
				return err
			}
			admin.Shares = *stats
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dash, nil
}

// GetOverview walks every drop with its sale attached and totals the money
// columns. The totals are recomputed on each call.
func (s *Service) GetOverview(ctx context.Context) (*Overview, error) {
	drops, err := s.dropRepo.ListWithDetails(ctx, domain.DropFilter{})
	if err != nil {
		return nil, err
	}
	counts, err := s.dropRepo.CountByFinanceStatus(ctx)
	if err != nil {
		return nil, err
	}

	ov := &Overview{
		DropCount:    len(drops),
		StatusCounts: counts,
	}
	for _, d := range drops {
		if d.Sale == nil {
			continue
		}
		ov.TotalSalePrice += d.Sale.SalePrice
		ov.TotalFee += d.Sale.FeeAmount
		ov.TotalNet += d.Sale.NetAmount
	}
	ov.TotalSalePrice = money.Round2(ov.TotalSalePrice)
	ov.TotalFee = money.Round2(ov.TotalFee)
	ov.TotalNet = money.Round2(ov.TotalNet)
	return ov, nil
}
