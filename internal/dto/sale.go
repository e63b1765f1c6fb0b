package dto

import (
	"time"

	"github.com/mrzero/lootstock/internal/domain"
)

type CreateSaleRequestDTO struct {
	SalePrice  float64    `json:"sale_price" validate:"min=0" example:"150000"`
	FeePercent *float64   `json:"fee_percent,omitempty" example:"5"`
	SaleDate   *time.Time `json:"sale_date,omitempty"`
	Platform   *string    `json:"platform,omitempty" example:"market"`
}

type UpdateSaleRequestDTO struct {
	SalePrice  *float64   `json:"sale_price,omitempty"`
	FeePercent *float64   `json:"fee_percent,omitempty"`
	SaleDate   *time.Time `json:"sale_date,omitempty"`
	Platform   *string    `json:"platform,omitempty"`
}

type SaleResponseDTO struct {
	ID         int        `json:"id" example:"11"`
	DropID     int        `json:"drop_id" example:"4"`
	SalePrice  float64    `json:"sale_price" example:"150000"`
	FeePercent float64    `json:"fee_percent" example:"5"`
	FeeAmount  float64    `json:"fee_amount" example:"7500"`
	NetAmount  float64    `json:"net_amount" example:"142500"`
	SaleDate   *time.Time `json:"sale_date,omitempty"`
	Platform   *string    `json:"platform,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func NewSaleDTO(s domain.Sale) SaleResponseDTO {
	return SaleResponseDTO{
		ID:         s.ID,
		DropID:     s.DropID,
		SalePrice:  s.SalePrice,
		FeePercent: s.FeePercent,
		FeeAmount:  s.FeeAmount,
		NetAmount:  s.NetAmount,
		SaleDate:   s.SaleDate,
		Platform:   s.Platform,
		CreatedAt:  s.CreatedAt,
	}
}
