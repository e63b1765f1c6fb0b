package players

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mrzero/lootstock/internal/domain"
	"github.com/mrzero/lootstock/internal/dto"
	playerservice "github.com/mrzero/lootstock/internal/service/playerservice"
	"github.com/mrzero/lootstock/pkg/utils"
	"github.com/mrzero/lootstock/pkg/validate"
)

type Service interface {
	List(ctx context.Context, filter domain.PlayerFilter) ([]domain.Player, error)
	Get(ctx context.Context, id int) (*domain.Player, error)
	Create(ctx context.Context, in playerservice.CreateInput) (*domain.Player, error)
	Update(ctx context.Context, id int, in playerservice.UpdateInput) (*domain.Player, error)
	ChangePassword(ctx context.Context, id int, password string) error
	Delete(ctx context.Context, id int, hard bool) error
}

type PlayerHandler struct {
	playerService Service
}

func New(playerService Service) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// GetPlayers godoc
//
//	@Summary		List players
//	@Tags			Players
//	@Produce		json
//	@Param			search	query	string	false	"Match against player name"
//	@Param			role	query	string	false	"ADMIN or MEMBER"
//	@Param			active	query	bool	false	"Filter by active flag"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.PlayerResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/players [get]
func (h *PlayerHandler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	filter := domain.PlayerFilter{
		Search: r.URL.Query().Get("search"),
		Role:   r.URL.Query().Get("role"),
	}
	if raw := r.URL.Query().Get("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid active filter")
			return
		}
		filter.Active = &active
	}

	players, err := h.playerService.List(r.Context(), filter)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	out := make([]dto.PlayerResponseDTO, 0, len(players))
	for _, p := range players {
		out = append(out, dto.NewPlayerDTO(p))
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// GetPlayer godoc
//
//	@Summary	Get one player
//	@Tags		Players
//	@Produce	json
//	@Param		id	path	int	true	"Player ID"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.PlayerResponseDTO
//	@Failure	404	{object}	utils.Response	"Player not found"
//	@Router		/api/players/{id} [get]
func (h *PlayerHandler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	player, err := h.playerService.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPlayerDTO(*player))
}

// CreatePlayer godoc
//
//	@Summary		Create a player
//	@Description	Name must be unique among all players regardless of case. Password is optional; players without one cannot log in.
//	@Tags			Players
//	@Accept			json
//	@Produce		json
//	@Param			body	body	dto.CreatePlayerRequestDTO	true	"Player"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.PlayerResponseDTO
//	@Failure		400	{object}	utils.Response	"Validation failed"
//	@Failure		409	{object}	utils.Response	"Name or username already taken"
//	@Router			/api/players [post]
func (h *PlayerHandler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePlayerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	player, err := h.playerService.Create(r.Context(), playerservice.CreateInput{
		Name:      req.Name,
		DiscordID: req.DiscordID,
		Username:  req.Username,
		Password:  req.Password,
		Role:      req.Role,
		Active:    req.Active,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewPlayerDTO(*player))
}

// UpdatePlayer godoc
//
//	@Summary		Update a player
//	@Description	Only the provided fields change.
//	@Tags			Players
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int							true	"Player ID"
//	@Param			body	body	dto.UpdatePlayerRequestDTO	true	"Fields to change"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PlayerResponseDTO
//	@Failure		404	{object}	utils.Response	"Player not found"
//	@Failure		409	{object}	utils.Response	"Name or username already taken"
//	@Router			/api/players/{id} [put]
func (h *PlayerHandler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.UpdatePlayerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	player, err := h.playerService.Update(r.Context(), id, playerservice.UpdateInput{
		Name:      req.Name,
		DiscordID: req.DiscordID,
		Username:  req.Username,
		Role:      req.Role,
		Active:    req.Active,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPlayerDTO(*player))
}

// ChangePassword godoc
//
//	@Summary	Set a player's password
//	@Tags		Players
//	@Accept		json
//	@Produce	json
//	@Param		id		path	int								true	"Player ID"
//	@Param		body	body	dto.ChangePasswordRequestDTO	true	"New password"
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response
//	@Failure	404	{object}	utils.Response	"Player not found"
//	@Router		/api/players/{id}/password [put]
func (h *PlayerHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.ChangePasswordRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.playerService.ChangePassword(r.Context(), id, req.Password); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Password updated"})
}

// DeletePlayer godoc
//
//	@Summary		Delete a player
//	@Description	Deactivates the player so share history survives. Pass hard=true to remove the row entirely.
//	@Tags			Players
//	@Produce		json
//	@Param			id		path	int		true	"Player ID"
//	@Param			hard	query	bool	false	"Hard delete"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		404	{object}	utils.Response	"Player not found"
//	@Router			/api/players/{id} [delete]
func (h *PlayerHandler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	hard := r.URL.Query().Get("hard") == "true"

	if err := h.playerService.Delete(r.Context(), id, hard); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Player deleted"})
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid player id")
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
