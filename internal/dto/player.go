package dto

import (
	"time"

	"github.com/mrzero/lootstock/internal/domain"
)

type CreatePlayerRequestDTO struct {
	Name      string  `json:"name" validate:"required,min=1,max=100"`
	DiscordID *string `json:"discord_id,omitempty"`
	Username  *string `json:"username,omitempty"`
	Password  *string `json:"password,omitempty"`
	Role      string  `json:"role,omitempty" example:"MEMBER"`
	Active    *bool   `json:"active,omitempty"`
}

type UpdatePlayerRequestDTO struct {
	Name      *string `json:"name,omitempty"`
	DiscordID *string `json:"discord_id,omitempty"`
	Username  *string `json:"username,omitempty"`
	Role      *string `json:"role,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}

type ChangePasswordRequestDTO struct {
	Password string `json:"password" validate:"required,min=4"`
}

type PlayerResponseDTO struct {
	ID        int       `json:"id" example:"7"`
	Name      string    `json:"name" example:"Nyx"`
	DiscordID *string   `json:"discord_id,omitempty"`
	Username  *string   `json:"username,omitempty" example:"nyx"`
	Role      string    `json:"role" example:"MEMBER"`
	Active    bool      `json:"active" example:"true"`
	CreatedAt time.Time `json:"created_at"`
}

func NewPlayerDTO(p domain.Player) PlayerResponseDTO {
	return PlayerResponseDTO{
		ID:        p.ID,
		Name:      p.Name,
		DiscordID: p.DiscordID,
		Username:  p.Username,
		Role:      p.Role,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
	}
}
