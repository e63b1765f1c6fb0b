package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mrzero/lootstock/internal/domain"
	"github.com/mrzero/lootstock/internal/dto"
	"github.com/mrzero/lootstock/internal/service/authservice"
	pkgauth "github.com/mrzero/lootstock/pkg/auth"
	"github.com/mrzero/lootstock/pkg/utils"
	"github.com/mrzero/lootstock/pkg/validate"
)

type Service interface {
	Login(ctx context.Context, username, password string) (*authservice.Session, error)
	ChangePassword(ctx context.Context, username, password string) error
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login godoc
//
//	@Summary		Log in
//	@Description	Exchange username and password for a bearer token. The configured admin account works even with no player rows.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.LoginRequestDTO	true	"Credentials"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Malformed request"
//	@Failure		401		{object}	utils.Response	"Invalid username or password"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrUnauthorized):
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Token:    session.Token,
		Username: session.Username,
		Role:     session.Role,
		PlayerID: session.PlayerID,
	})
}

// ChangePassword godoc
//
//	@Summary		Change own password
//	@Description	Replaces the password of the authenticated player. The configured admin account has no stored password and is rejected.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body	dto.ChangePasswordRequestDTO	true	"New password"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Validation failed"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/change-password [post]
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	username, _ := r.Context().Value(pkgauth.UsernameKey).(string)

	var req dto.ChangePasswordRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.authService.ChangePassword(r.Context(), username, req.Password); err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Password updated"})
}
