package sales

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mrzero/lootstock/internal/domain"
	"github.com/mrzero/lootstock/internal/dto"
	saleservice "github.com/mrzero/lootstock/internal/service/saleservice"
	"github.com/mrzero/lootstock/pkg/utils"
)

type Service interface {
	GetByDrop(ctx context.Context, dropID int) (*domain.Sale, error)
	Create(ctx context.Context, dropID int, in saleservice.CreateInput) (*domain.Sale, error)
	Update(ctx context.Context, dropID int, in saleservice.UpdateInput) (*domain.Sale, error)
	Delete(ctx context.Context, dropID int) error
}

type SaleHandler struct {
	saleService Service
}

func New(saleService Service) *SaleHandler {
	return &SaleHandler{
		saleService: saleService,
	}
}

// GetSale godoc
//
//	@Summary	Get the sale of a drop
//	@Tags		Sales
//	@Produce	json
//	@Param		id	path	int	true	"Drop ID"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.SaleResponseDTO
//	@Failure	404	{object}	utils.Response	"No sale for this drop"
//	@Router		/api/drops/{id}/sale [get]
func (h *SaleHandler) GetSale(w http.ResponseWriter, r *http.Request) {
	dropID, ok := pathID(w, r)
	if !ok {
		return
	}
	sale, err := h.saleService.GetByDrop(r.Context(), dropID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSaleDTO(*sale))
}

// CreateSale godoc
//
//	@Summary		Record a sale
//	@Description	Computes the fee and net amount from the price and fee percent (default 5) and moves the drop back to WAIT.
//	@Tags			Sales
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int						true	"Drop ID"
//	@Param			body	body	dto.CreateSaleRequestDTO	true	"Sale"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.SaleResponseDTO
//	@Failure		400	{object}	utils.Response	"Negative price, fee out of range, or drop not DROPPED"
//	@Failure		404	{object}	utils.Response	"Drop not found"
//	@Failure		409	{object}	utils.Response	"Sale already exists"
//	@Router			/api/drops/{id}/sale [post]
func (h *SaleHandler) CreateSale(w http.ResponseWriter, r *http.Request) {
	dropID, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.CreateSaleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sale, err := h.saleService.Create(r.Context(), dropID, saleservice.CreateInput{
		SalePrice:  req.SalePrice,
		FeePercent: req.FeePercent,
		SaleDate:   req.SaleDate,
		Platform:   req.Platform,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewSaleDTO(*sale))
}

// UpdateSale godoc
//
//	@Summary		Update a sale
//	@Description	Only the provided fields change. Fee and net are recomputed when the price or fee percent moves; shares stay as they are.
//	@Tags			Sales
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int						true	"Drop ID"
//	@Param			body	body	dto.UpdateSaleRequestDTO	true	"Fields to change"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SaleResponseDTO
//	@Failure		404	{object}	utils.Response	"No sale for this drop"
//	@Router			/api/drops/{id}/sale [put]
func (h *SaleHandler) UpdateSale(w http.ResponseWriter, r *http.Request) {
	dropID, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.UpdateSaleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sale, err := h.saleService.Update(r.Context(), dropID, saleservice.UpdateInput{
		SalePrice:  req.SalePrice,
		FeePercent: req.FeePercent,
		SaleDate:   req.SaleDate,
		Platform:   req.Platform,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSaleDTO(*sale))
}

// DeleteSale godoc
//
//	@Summary		Delete a sale
//	@Description	Removes the sale only. Existing shares stay and show up as over-allocation in reconciliation.
//	@Tags			Sales
//	@Produce		json
//	@Param			id	path	int	true	"Drop ID"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		404	{object}	utils.Response	"No sale for this drop"
//	@Router			/api/drops/{id}/sale [delete]
func (h *SaleHandler) DeleteSale(w http.ResponseWriter, r *http.Request) {
	dropID, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.saleService.Delete(r.Context(), dropID); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Sale deleted"})
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid drop id")
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
