package dto

import (
	"time"

	"github.com/mrzero/lootstock/internal/domain"
)

// CreateShareRequestDTO covers both write modes of the shares endpoint: a
// single manual share, or an equal split over player_ids when split_equally
// is set.
type CreateShareRequestDTO struct {
	SplitEqually bool     `json:"split_equally,omitempty"`
	PlayerIDs    []int    `json:"player_ids,omitempty"`
	NetOverride  *float64 `json:"net_override,omitempty" example:"106400"`

	PlayerID   int      `json:"player_id,omitempty" example:"7"`
	ShareType  string   `json:"share_type,omitempty" example:"AUTO"`
	Percent    *float64 `json:"percent,omitempty" example:"25"`
	Amount     float64  `json:"amount,omitempty" example:"35625"`
	PaidStatus string   `json:"paid_status,omitempty" example:"WAIT"`
	Remark     *string  `json:"remark,omitempty"`
}

type UpdateShareRequestDTO struct {
	PlayerID   *int     `json:"player_id,omitempty"`
	ShareType  *string  `json:"share_type,omitempty"`
	Percent    *float64 `json:"percent,omitempty"`
	Amount     *float64 `json:"amount,omitempty"`
	PaidStatus *string  `json:"paid_status,omitempty"`
	Remark     *string  `json:"remark,omitempty"`
}

type ShareResponseDTO struct {
	ID         int       `json:"id" example:"21"`
	DropID     int       `json:"drop_id" example:"4"`
	PlayerID   int       `json:"player_id" example:"7"`
	PlayerName string    `json:"player_name,omitempty" example:"Nyx"`
	ShareType  string    `json:"share_type" example:"AUTO"`
	Percent    *float64  `json:"percent,omitempty"`
	Amount     float64   `json:"amount" example:"35625"`
	PaidStatus string    `json:"paid_status" example:"WAIT"`
	Remark     *string   `json:"remark,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReconciliationResponseDTO struct {
	NetAmount float64 `json:"net_amount" example:"142500"`
	Allocated float64 `json:"allocated" example:"142500"`
	Remaining float64 `json:"remaining" example:"0"`
}

func NewShareDTO(s domain.Share) ShareResponseDTO {
	return ShareResponseDTO{
		ID:         s.ID,
		DropID:     s.DropID,
		PlayerID:   s.PlayerID,
		ShareType:  s.ShareType,
		Percent:    s.Percent,
		Amount:     s.Amount,
		PaidStatus: s.PaidStatus,
		Remark:     s.Remark,
		CreatedAt:  s.CreatedAt,
	}
}

func NewShareWithPlayerDTO(s domain.ShareWithPlayer) ShareResponseDTO {
	out := NewShareDTO(s.Share)
	out.PlayerName = s.PlayerName
	return out
}
