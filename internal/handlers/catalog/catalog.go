package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mrzero/lootstock/internal/domain"
	"github.com/mrzero/lootstock/internal/dto"
	catalogservice "github.com/mrzero/lootstock/internal/service/catalogservice"
	"github.com/mrzero/lootstock/pkg/utils"
	"github.com/mrzero/lootstock/pkg/validate"
)

type Service interface {
	ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error)
	GetItem(ctx context.Context, id int) (*domain.Item, error)
	CreateItem(ctx context.Context, in catalogservice.ItemInput) (*domain.Item, error)
	UpdateItem(ctx context.Context, id int, in catalogservice.ItemInput) (*domain.Item, error)
	DeleteItem(ctx context.Context, id int) error
	ListBosses(ctx context.Context, filter domain.BossFilter) ([]domain.Boss, error)
	GetBoss(ctx context.Context, id int) (*domain.Boss, error)
	CreateBoss(ctx context.Context, in catalogservice.BossInput) (*domain.Boss, error)
	UpdateBoss(ctx context.Context, id int, in catalogservice.BossInput) (*domain.Boss, error)
	DeleteBoss(ctx context.Context, id int) error
}

type CatalogHandler struct {
	catalogService Service
}

func New(catalogService Service) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// GetItems godoc
//
//	@Summary	List catalog items
//	@Tags		Catalog
//	@Produce	json
//	@Param		search		query	string	false	"Match against item name"
//	@Param		category	query	string	false	"Item category"
//	@Security	BearerAuth
//	@Success	200	{array}		dto.ItemResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/items [get]
func (h *CatalogHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogService.ListItems(r.Context(), domain.ItemFilter{
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	out := make([]dto.ItemResponseDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.NewItemDTO(it))
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// GetItem godoc
//
//	@Summary	Get one item
//	@Tags		Catalog
//	@Produce	json
//	@Param		id	path	int	true	"Item ID"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.ItemResponseDTO
//	@Failure	404	{object}	utils.Response	"Item not found"
//	@Router		/api/items/{id} [get]
func (h *CatalogHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	item, err := h.catalogService.GetItem(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewItemDTO(*item))
}

// CreateItem godoc
//
//	@Summary	Create an item
//	@Tags		Catalog
//	@Accept		json
//	@Produce	json
//	@Param		body	body	dto.ItemRequestDTO	true	"Item"
//	@Security	BearerAuth
//	@Success	201	{object}	dto.ItemResponseDTO
//	@Failure	400	{object}	utils.Response	"Validation failed"
//	@Router		/api/items [post]
func (h *CatalogHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeItem(w, r)
	if !ok {
		return
	}
	item, err := h.catalogService.CreateItem(r.Context(), catalogservice.ItemInput{
		Name:      req.Name,
		Category:  req.Category,
		SubType:   req.SubType,
		Tradeable: req.Tradeable,
		Note:      req.Note,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewItemDTO(*item))
}

// UpdateItem godoc
//
//	@Summary	Update an item
//	@Tags		Catalog
//	@Accept		json
//	@Produce	json
//	@Param		id		path	int					true	"Item ID"
//	@Param		body	body	dto.ItemRequestDTO	true	"Item"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.ItemResponseDTO
//	@Failure	404	{object}	utils.Response	"Item not found"
//	@Router		/api/items/{id} [put]
func (h *CatalogHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	req, ok := decodeItem(w, r)
	if !ok {
		return
	}
	item, err := h.catalogService.UpdateItem(r.Context(), id, catalogservice.ItemInput{
		Name:      req.Name,
		Category:  req.Category,
		SubType:   req.SubType,
		Tradeable: req.Tradeable,
		Note:      req.Note,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewItemDTO(*item))
}

// DeleteItem godoc
//
//	@Summary		Delete an item
//	@Description	Fails with a conflict when drops still reference the item.
//	@Tags			Catalog
//	@Produce		json
//	@Param			id	path	int	true	"Item ID"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		404	{object}	utils.Response	"Item not found"
//	@Failure		409	{object}	utils.Response	"Item is referenced by drops"
//	@Router			/api/items/{id} [delete]
func (h *CatalogHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.catalogService.DeleteItem(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Item deleted"})
}

// GetBosses godoc
//
//	@Summary	List bosses
//	@Tags		Catalog
//	@Produce	json
//	@Param		search	query	string	false	"Match against boss name"
//	@Security	BearerAuth
//	@Success	200	{array}		dto.BossResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/bosses [get]
func (h *CatalogHandler) GetBosses(w http.ResponseWriter, r *http.Request) {
	bosses, err := h.catalogService.ListBosses(r.Context(), domain.BossFilter{
		Search: r.URL.Query().Get("search"),
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	out := make([]dto.BossResponseDTO, 0, len(bosses))
	for _, b := range bosses {
		out = append(out, dto.NewBossDTO(b))
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// GetBoss godoc
//
//	@Summary	Get one boss
//	@Tags		Catalog
//	@Produce	json
//	@Param		id	path	int	true	"Boss ID"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.BossResponseDTO
//	@Failure	404	{object}	utils.Response	"Boss not found"
//	@Router		/api/bosses/{id} [get]
func (h *CatalogHandler) GetBoss(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	boss, err := h.catalogService.GetBoss(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBossDTO(*boss))
}

// CreateBoss godoc
//
//	@Summary	Create a boss
//	@Tags		Catalog
//	@Accept		json
//	@Produce	json
//	@Param		body	body	dto.BossRequestDTO	true	"Boss"
//	@Security	BearerAuth
//	@Success	201	{object}	dto.BossResponseDTO
//	@Failure	400	{object}	utils.Response	"Validation failed"
//	@Router		/api/bosses [post]
func (h *CatalogHandler) CreateBoss(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeBoss(w, r)
	if !ok {
		return
	}
	boss, err := h.catalogService.CreateBoss(r.Context(), catalogservice.BossInput{
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewBossDTO(*boss))
}

// UpdateBoss godoc
//
//	@Summary	Update a boss
//	@Tags		Catalog
//	@Accept		json
//	@Produce	json
//	@Param		id		path	int					true	"Boss ID"
//	@Param		body	body	dto.BossRequestDTO	true	"Boss"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.BossResponseDTO
//	@Failure	404	{object}	utils.Response	"Boss not found"
//	@Router		/api/bosses/{id} [put]
func (h *CatalogHandler) UpdateBoss(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	req, ok := decodeBoss(w, r)
	if !ok {
		return
	}
	boss, err := h.catalogService.UpdateBoss(r.Context(), id, catalogservice.BossInput{
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBossDTO(*boss))
}

// DeleteBoss godoc
//
//	@Summary		Delete a boss
//	@Description	Fails with a conflict when drops still reference the boss.
//	@Tags			Catalog
//	@Produce		json
//	@Param			id	path	int	true	"Boss ID"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		404	{object}	utils.Response	"Boss not found"
//	@Failure		409	{object}	utils.Response	"Boss is referenced by drops"
//	@Router			/api/bosses/{id} [delete]
func (h *CatalogHandler) DeleteBoss(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.catalogService.DeleteBoss(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Boss deleted"})
}

func decodeItem(w http.ResponseWriter, r *http.Request) (dto.ItemRequestDTO, bool) {
	var req dto.ItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return req, false
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return req, false
	}
	return req, true
}

func decodeBoss(w http.ResponseWriter, r *http.Request) (dto.BossRequestDTO, bool) {
	var req dto.BossRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return req, false
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return req, false
	}
	return req, true
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
