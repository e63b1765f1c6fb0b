package dto

import (
	"time"

	"github.com/mrzero/lootstock/internal/domain"
)

type ItemRequestDTO struct {
	Name      string  `json:"name" validate:"required,min=1,max=200"`
	Category  string  `json:"category" validate:"required" example:"Weapon"`
	SubType   *string `json:"sub_type,omitempty" example:"Dagger"`
	Tradeable *bool   `json:"tradeable,omitempty"`
	Note      *string `json:"note,omitempty"`
}

type ItemResponseDTO struct {
	ID        int       `json:"id" example:"3"`
	Name      string    `json:"name" example:"Abyss Dagger"`
	Category  string    `json:"category" example:"Weapon"`
	SubType   *string   `json:"sub_type,omitempty"`
	Tradeable bool      `json:"tradeable" example:"true"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type BossRequestDTO struct {
	Name     string  `json:"name" validate:"required,min=1,max=200"`
	Location *string `json:"location,omitempty" example:"Clock Tower B3"`
}

type BossResponseDTO struct {
	ID        int       `json:"id" example:"2"`
	Name      string    `json:"name" example:"Baphomet"`
	Location  *string   `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewItemDTO(it domain.Item) ItemResponseDTO {
	return ItemResponseDTO{
		ID:        it.ID,
		Name:      it.Name,
		Category:  it.Category,
		SubType:   it.SubType,
		Tradeable: it.Tradeable,
		Note:      it.Note,
		CreatedAt: it.CreatedAt,
	}
}

func NewBossDTO(b domain.Boss) BossResponseDTO {
	return BossResponseDTO{
		ID:        b.ID,
		Name:      b.Name,
		Location:  b.Location,
		CreatedAt: b.CreatedAt,
	}
}
