package dto

import (
	"time"

	"github.com/mrzero/lootstock/internal/domain"
)

type CreateDropRequestDTO struct {
	DropDate         *time.Time `json:"drop_date,omitempty"`
	ItemID           int        `json:"item_id" validate:"required" example:"3"`
	BossID           *int       `json:"boss_id,omitempty" example:"2"`
	Quantity         int        `json:"quantity,omitempty" example:"1"`
	ParticipantCount int        `json:"participant_count" validate:"required" example:"5"`
	DropStatus       string     `json:"drop_status,omitempty" example:"DROPPED"`
	FinanceStatus    string     `json:"finance_status,omitempty" example:"WAIT"`
	Note             *string    `json:"note,omitempty"`
}

type UpdateDropRequestDTO struct {
	DropDate         *time.Time `json:"drop_date,omitempty"`
	ItemID           *int       `json:"item_id,omitempty"`
	BossID           *int       `json:"boss_id,omitempty"`
	Quantity         *int       `json:"quantity,omitempty"`
	ParticipantCount *int       `json:"participant_count,omitempty"`
	DropStatus       *string    `json:"drop_status,omitempty"`
	FinanceStatus    *string    `json:"finance_status,omitempty"`
	Note             *string    `json:"note,omitempty"`
}

type SetFinanceStatusRequestDTO struct {
	FinanceStatus string `json:"finance_status" validate:"required" example:"PAID"`
}

type DropResponseDTO struct {
	ID               int        `json:"id" example:"4"`
	DropDate         *time.Time `json:"drop_date,omitempty"`
	ItemID           int        `json:"item_id" example:"3"`
	BossID           *int       `json:"boss_id,omitempty" example:"2"`
	Quantity         int        `json:"quantity" example:"1"`
	ParticipantCount int        `json:"participant_count" example:"5"`
	DropStatus       string     `json:"drop_status" example:"DROPPED"`
	FinanceStatus    string     `json:"finance_status" example:"WAIT"`
	Note             *string    `json:"note,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

type DropDetailsResponseDTO struct {
	DropResponseDTO
	Item   *ItemResponseDTO   `json:"item,omitempty"`
	Boss   *BossResponseDTO   `json:"boss,omitempty"`
	Sale   *SaleResponseDTO   `json:"sale,omitempty"`
	Shares []ShareResponseDTO `json:"shares"`
}

func NewDropDTO(d domain.Drop) DropResponseDTO {
	return DropResponseDTO{
		ID:               d.ID,
		DropDate:         d.DropDate,
		ItemID:           d.ItemID,
		BossID:           d.BossID,
		Quantity:         d.Quantity,
		ParticipantCount: d.ParticipantCount,
		DropStatus:       d.DropStatus,
		FinanceStatus:    d.FinanceStatus,
		Note:             d.Note,
		CreatedAt:        d.CreatedAt,
	}
}

func NewDropDetailsDTO(d domain.DropDetails) DropDetailsResponseDTO {
	out := DropDetailsResponseDTO{
		DropResponseDTO: NewDropDTO(d.Drop),
		Shares:          make([]ShareResponseDTO, 0, len(d.Shares)),
	}
	if d.Item != nil {
		item := NewItemDTO(*d.Item)
		out.Item = &item
	}
	if d.Boss != nil {
		boss := NewBossDTO(*d.Boss)
		out.Boss = &boss
	}
	if d.Sale != nil {
		sale := NewSaleDTO(*d.Sale)
		out.Sale = &sale
	}
	for _, s := range d.Shares {
		out.Shares = append(out.Shares, NewShareWithPlayerDTO(s))
	}
	return out
}
