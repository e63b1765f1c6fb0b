package dashboard

import (
	"context"
	"errors"
	"net/http"

	"github.com/mrzero/lootstock/internal/domain"
	"github.com/mrzero/lootstock/internal/dto"
	statsservice "github.com/mrzero/lootstock/internal/service/statsservice"
	pkgauth "github.com/mrzero/lootstock/pkg/auth"
	"github.com/mrzero/lootstock/pkg/utils"
)

type Service interface {
	GetDashboard(ctx context.Context, username, role string) (*statsservice.Dashboard, error)
	GetOverview(ctx context.Context) (*statsservice.Overview, error)
}

type DashboardHandler struct {
	statsService Service
}

func New(statsService Service) *DashboardHandler {
	return &DashboardHandler{
		statsService: statsService,
	}
}

// GetDashboard godoc
//
//	@Summary		Dashboard
//	@Description	The caller's share totals plus the latest drops. Admins additionally get guild-wide sale and share aggregates.
//	@Tags			Dashboard
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DashboardResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/dashboard [get]
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	username, _ := r.Context().Value(pkgauth.UsernameKey).(string)
	role, _ := r.Context().Value(pkgauth.RoleKey).(string)

	dash, err := h.statsService.GetDashboard(r.Context(), username, role)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	out := dto.DashboardResponseDTO{
		MyStats: dto.ShareStatsDTO{
			TotalAmount:  dash.MyStats.TotalAmount,
			UnpaidAmount: dash.MyStats.UnpaidAmount,
			PaidAmount:   dash.MyStats.PaidAmount,
		},
		RecentDrops: make([]dto.DropDetailsResponseDTO, 0, len(dash.RecentDrops)),
	}
	for _, d := range dash.RecentDrops {
		out.RecentDrops = append(out.RecentDrops, dto.NewDropDetailsDTO(d))
	}
	if dash.Admin != nil {
		out.Admin = &dto.AdminStatsDTO{
			Sales: dto.SaleStatsDTO{
				TotalNet:   dash.Admin.Sales.TotalNet,
				TotalDrops: dash.Admin.Sales.TotalDrops,
			},
			Shares: dto.ShareStatsDTO{
				TotalAmount:  dash.Admin.Shares.TotalAmount,
				UnpaidAmount: dash.Admin.Shares.UnpaidAmount,
				PaidAmount:   dash.Admin.Shares.PaidAmount,
			},
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// GetOverview godoc
//
//	@Summary		Ledger overview
//	@Description	Totals over every sale plus drop counts per finance status, recomputed on each call.
//	@Tags			Dashboard
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OverviewResponseDTO
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/dashboard/overview [get]
func (h *DashboardHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ov, err := h.statsService.GetOverview(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.OverviewResponseDTO{
		TotalSalePrice: ov.TotalSalePrice,
		TotalFee:       ov.TotalFee,
		TotalNet:       ov.TotalNet,
		DropCount:      ov.DropCount,
		StatusCounts:   ov.StatusCounts,
	})
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
