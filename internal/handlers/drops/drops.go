package drops

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mrzero/lootstock/internal/domain"
	"github.com/mrzero/lootstock/internal/dto"
	dropservice "github.com/mrzero/lootstock/internal/service/dropservice"
	"github.com/mrzero/lootstock/pkg/utils"
	"github.com/mrzero/lootstock/pkg/validate"
)

type Service interface {
	List(ctx context.Context, filter domain.DropFilter) ([]domain.Drop, error)
	ListWithDetails(ctx context.Context, filter domain.DropFilter) ([]domain.DropDetails, error)
	Get(ctx context.Context, id int) (*domain.Drop, error)
	GetDetails(ctx context.Context, id int) (*domain.DropDetails, error)
	Create(ctx context.Context, in dropservice.CreateInput) (*domain.Drop, error)
	Update(ctx context.Context, id int, in dropservice.UpdateInput) (*domain.Drop, error)
	Delete(ctx context.Context, id int) error
	SetFinanceStatus(ctx context.Context, id int, status string) (*domain.Drop, error)
}

type DropHandler struct {
	dropService Service
}

func New(dropService Service) *DropHandler {
	return &DropHandler{
		dropService: dropService,
	}
}

// GetDrops godoc
//
//	@Summary		List drops
//	@Description	Newest first. With with_details=true each drop carries its item, boss, sale and shares.
//	@Tags			Drops
//	@Produce		json
//	@Param			search			query	string	false	"Match against item name"
//	@Param			drop_status		query	string	false	"DROPPED or NOT_DROPPED"
//	@Param			finance_status	query	string	false	"WAIT, PAID or PERSONAL"
//	@Param			start_date		query	string	false	"RFC 3339 lower bound on drop date"
//	@Param			end_date		query	string	false	"RFC 3339 upper bound on drop date"
//	@Param			limit			query	int		false	"Page size"
//	@Param			offset			query	int		false	"Page offset"
//	@Param			with_details	query	bool	false	"Resolve related entities"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.DropDetailsResponseDTO
//	@Failure		400	{object}	utils.Response	"Bad filter values"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/drops [get]
func (h *DropHandler) GetDrops(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseFilter(w, r)
	if !ok {
		return
	}

	if r.URL.Query().Get("with_details") == "true" {
		drops, err := h.dropService.ListWithDetails(r.Context(), filter)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		out := make([]dto.DropDetailsResponseDTO, 0, len(drops))
		for _, d := range drops {
			out = append(out, dto.NewDropDetailsDTO(d))
		}
		utils.RespondWithJSON(w, http.StatusOK, out)
		return
	}

	drops, err := h.dropService.List(r.Context(), filter)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	out := make([]dto.DropResponseDTO, 0, len(drops))
	for _, d := range drops {
		out = append(out, dto.NewDropDTO(d))
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// GetDrop godoc
//
//	@Summary	Get one drop
//	@Tags		Drops
//	@Produce	json
//	@Param		id				path	int		true	"Drop ID"
//	@Param		with_details	query	bool	false	"Resolve related entities"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.DropDetailsResponseDTO
//	@Failure	404	{object}	utils.Response	"Drop not found"
//	@Router		/api/drops/{id} [get]
func (h *DropHandler) GetDrop(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if r.URL.Query().Get("with_details") == "true" {
		details, err := h.dropService.GetDetails(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, dto.NewDropDetailsDTO(*details))
		return
	}

	drop, err := h.dropService.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDropDTO(*drop))
}

// CreateDrop godoc
//
//	@Summary		Record a drop
//	@Description	Quantity defaults to 1, drop_status to DROPPED and finance_status to WAIT.
//	@Tags			Drops
//	@Accept			json
//	@Produce		json
//	@Param			body	body	dto.CreateDropRequestDTO	true	"Drop"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.DropResponseDTO
//	@Failure		400	{object}	utils.Response	"Validation failed or unknown item/boss"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/drops [post]
func (h *DropHandler) CreateDrop(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDropRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.DropStatus == "" {
		req.DropStatus = domain.DropStatusDropped
	}
	if req.FinanceStatus == "" {
		req.FinanceStatus = domain.FinanceStatusWait
	}

	drop, err := h.dropService.Create(r.Context(), dropservice.CreateInput{
		DropDate:         req.DropDate,
		ItemID:           req.ItemID,
		BossID:           req.BossID,
		Quantity:         req.Quantity,
		ParticipantCount: req.ParticipantCount,
		DropStatus:       req.DropStatus,
		FinanceStatus:    req.FinanceStatus,
		Note:             req.Note,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewDropDTO(*drop))
}

// UpdateDrop godoc
//
//	@Summary		Update a drop
//	@Description	Only the provided fields change; references are re-checked when they do.
//	@Tags			Drops
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int							true	"Drop ID"
//	@Param			body	body	dto.UpdateDropRequestDTO	true	"Fields to change"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DropResponseDTO
//	@Failure		404	{object}	utils.Response	"Drop not found"
//	@Router			/api/drops/{id} [put]
func (h *DropHandler) UpdateDrop(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.UpdateDropRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	drop, err := h.dropService.Update(r.Context(), id, dropservice.UpdateInput{
		DropDate:         req.DropDate,
		ItemID:           req.ItemID,
		BossID:           req.BossID,
		Quantity:         req.Quantity,
		ParticipantCount: req.ParticipantCount,
		DropStatus:       req.DropStatus,
		FinanceStatus:    req.FinanceStatus,
		Note:             req.Note,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDropDTO(*drop))
}

// DeleteDrop godoc
//
//	@Summary		Delete a drop
//	@Description	Removes the drop together with its sale and shares in one transaction.
//	@Tags			Drops
//	@Produce		json
//	@Param			id	path	int	true	"Drop ID"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		404	{object}	utils.Response	"Drop not found"
//	@Router			/api/drops/{id} [delete]
func (h *DropHandler) DeleteDrop(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.dropService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Drop deleted"})
}

// SetFinanceStatus godoc
//
//	@Summary		Force the finance status
//	@Description	Moves the drop to any of WAIT, PAID or PERSONAL without touching individual shares.
//	@Tags			Drops
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int								true	"Drop ID"
//	@Param			body	body	dto.SetFinanceStatusRequestDTO	true	"Target status"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DropResponseDTO
//	@Failure		400	{object}	utils.Response	"Unknown finance status"
//	@Failure		404	{object}	utils.Response	"Drop not found"
//	@Router			/api/drops/{id}/finance-status [put]
func (h *DropHandler) SetFinanceStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.SetFinanceStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	drop, err := h.dropService.SetFinanceStatus(r.Context(), id, req.FinanceStatus)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDropDTO(*drop))
}

func parseFilter(w http.ResponseWriter, r *http.Request) (domain.DropFilter, bool) {
	q := r.URL.Query()
	filter := domain.DropFilter{
		Search:        q.Get("search"),
		DropStatus:    q.Get("drop_status"),
		FinanceStatus: q.Get("finance_status"),
	}
	for _, p := range []struct {
		name string
		dst  **time.Time
	}{
		{"start_date", &filter.StartDate},
		{"end_date", &filter.EndDate},
	} {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid "+p.name)
			return filter, false
		}
		*p.dst = &t
	}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return filter, false
		}
		filter.Limit = n
	}
	if raw := q.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid offset")
			return filter, false
		}
		filter.Offset = n
	}
	return filter, true
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
