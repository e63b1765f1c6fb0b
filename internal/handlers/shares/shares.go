package shares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mrzero/lootstock/internal/domain"
	"github.com/mrzero/lootstock/internal/dto"
	shareservice "github.com/mrzero/lootstock/internal/service/shareservice"
	"github.com/mrzero/lootstock/pkg/utils"
)

type Service interface {
	ListByDrop(ctx context.Context, dropID int) ([]domain.ShareWithPlayer, error)
	Get(ctx context.Context, id int) (*domain.Share, error)
	Create(ctx context.Context, dropID int, in shareservice.CreateInput) (*domain.Share, error)
	Update(ctx context.Context, id int, in shareservice.UpdateInput) (*domain.Share, error)
	Delete(ctx context.Context, id int) error
	SplitEqually(ctx context.Context, dropID int, playerIDs []int, netOverride *float64) ([]domain.Share, error)
	Reconcile(ctx context.Context, dropID int) (*domain.Reconciliation, error)
}

type ShareHandler struct {
	shareService Service
}

func New(shareService Service) *ShareHandler {
	return &ShareHandler{
		shareService: shareService,
	}
}

// GetShares godoc
//
//	@Summary	List the shares of a drop
//	@Tags		Shares
//	@Produce	json
//	@Param		id	path	int	true	"Drop ID"
//	@Security	BearerAuth
//	@Success	200	{array}		dto.ShareResponseDTO
//	@Failure	404	{object}	utils.Response	"Drop not found"
//	@Router		/api/drops/{id}/shares [get]
func (h *ShareHandler) GetShares(w http.ResponseWriter, r *http.Request) {
	dropID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	shares, err := h.shareService.ListByDrop(r.Context(), dropID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	out := make([]dto.ShareResponseDTO, 0, len(shares))
	for _, s := range shares {
		out = append(out, dto.NewShareWithPlayerDTO(s))
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// CreateShares godoc
//
//	@Summary		Create shares on a drop
//	@Description	With split_equally the drop's existing shares are replaced by an equal split of the sale's net amount over player_ids; net_override substitutes another amount, e.g. the residual left after a buy-out. Otherwise one manual share is created. Percent is informational and never checked against the amount.
//	@Tags			Shares
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int							true	"Drop ID"
//	@Param			body	body	dto.CreateShareRequestDTO	true	"Single share or split request"
//	@Security		BearerAuth
//	@Success		201	{array}		dto.ShareResponseDTO
//	@Failure		400	{object}	utils.Response	"Validation failed, or no sale to split"
//	@Failure		404	{object}	utils.Response	"Drop not found"
//	@Router			/api/drops/{id}/shares [post]
func (h *ShareHandler) CreateShares(w http.ResponseWriter, r *http.Request) {
	dropID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req dto.CreateShareRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.SplitEqually {
		shares, err := h.shareService.SplitEqually(r.Context(), dropID, req.PlayerIDs, req.NetOverride)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		out := make([]dto.ShareResponseDTO, 0, len(shares))
		for _, s := range shares {
			out = append(out, dto.NewShareDTO(s))
		}
		utils.RespondWithJSON(w, http.StatusCreated, out)
		return
	}

	if req.ShareType == "" {
		req.ShareType = domain.ShareTypeAuto
	}
	if req.PaidStatus == "" {
		req.PaidStatus = domain.PaidStatusWait
	}
	share, err := h.shareService.Create(r.Context(), dropID, shareservice.CreateInput{
		PlayerID:   req.PlayerID,
		ShareType:  req.ShareType,
		Percent:    req.Percent,
		Amount:     req.Amount,
		PaidStatus: req.PaidStatus,
		Remark:     req.Remark,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, []dto.ShareResponseDTO{dto.NewShareDTO(*share)})
}

// GetReconciliation godoc
//
//	@Summary		Reconcile a drop's shares against its sale
//	@Description	Remaining is the net amount minus everything allocated; negative means over-allocated, e.g. shares left behind by a deleted sale. Neither direction is an error.
//	@Tags			Shares
//	@Produce		json
//	@Param			id	path	int	true	"Drop ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ReconciliationResponseDTO
//	@Failure		404	{object}	utils.Response	"Drop not found"
//	@Router			/api/drops/{id}/reconciliation [get]
func (h *ShareHandler) GetReconciliation(w http.ResponseWriter, r *http.Request) {
	dropID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	rec, err := h.shareService.Reconcile(r.Context(), dropID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ReconciliationResponseDTO{
		NetAmount: rec.NetAmount,
		Allocated: rec.Allocated,
		Remaining: rec.Remaining,
	})
}

// GetShare godoc
//
//	@Summary	Get one share
//	@Tags		Shares
//	@Produce	json
//	@Param		id	path	int	true	"Share ID"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.ShareResponseDTO
//	@Failure	404	{object}	utils.Response	"Share not found"
//	@Router		/api/shares/{id} [get]
func (h *ShareHandler) GetShare(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	share, err := h.shareService.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewShareDTO(*share))
}

// UpdateShare godoc
//
//	@Summary		Update a share
//	@Description	Only the provided fields change; flipping paid_status between WAIT and PAID is the usual case.
//	@Tags			Shares
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int							true	"Share ID"
//	@Param			body	body	dto.UpdateShareRequestDTO	true	"Fields to change"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ShareResponseDTO
//	@Failure		404	{object}	utils.Response	"Share not found"
//	@Router			/api/shares/{id} [put]
func (h *ShareHandler) UpdateShare(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req dto.UpdateShareRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	share, err := h.shareService.Update(r.Context(), id, shareservice.UpdateInput{
		PlayerID:   req.PlayerID,
		ShareType:  req.ShareType,
		Percent:    req.Percent,
		Amount:     req.Amount,
		PaidStatus: req.PaidStatus,
		Remark:     req.Remark,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewShareDTO(*share))
}

// DeleteShare godoc
//
//	@Summary	Delete a share
//	@Tags		Shares
//	@Produce	json
//	@Param		id	path	int	true	"Share ID"
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response
//	@Failure	404	{object}	utils.Response	"Share not found"
//	@Router		/api/shares/{id} [delete]
func (h *ShareHandler) DeleteShare(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.shareService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Share deleted"})
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id < 1 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidState):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
