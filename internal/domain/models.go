package domain

import "time"

const (
	RoleAdmin  string = "ADMIN"
	RoleMember string = "MEMBER"
)

const (
	// DropStatusDropped лут выпал и может быть продан;
	DropStatusDropped string = "DROPPED"
	// DropStatusNotDropped запись о неудачном походе, продажа невозможна;
	DropStatusNotDropped string = "NOT_DROPPED"
)

const (
	FinanceStatusWait     string = "WAIT"
	FinanceStatusPaid     string = "PAID"
	FinanceStatusPersonal string = "PERSONAL"
)

const (
	ShareTypeAuto     string = "AUTO"
	ShareTypeBuy      string = "BUY"
	ShareTypePersonal string = "PERSONAL"
)

const (
	PaidStatusWait string = "WAIT"
	PaidStatusPaid string = "PAID"
)

type Player struct {
	ID           int       `db:"id"`
	Name         string    `db:"name"`
	DiscordID    *string   `db:"discord_id"`
	Username     *string   `db:"username"`
	PasswordHash *string   `db:"password_hash"`
	Role         string    `db:"role"`
	Active       bool      `db:"active"`
	CreatedAt    time.Time `db:"created_at"`
}

type Item struct {
	ID        int       `db:"id"`
	Name      string    `db:"name"`
	Category  string    `db:"category"`
	SubType   *string   `db:"sub_type"`
	Tradeable bool      `db:"tradeable"`
	Note      *string   `db:"note"`
	CreatedAt time.Time `db:"created_at"`
}

type Boss struct {
	ID        int       `db:"id"`
	Name      string    `db:"name"`
	Location  *string   `db:"location"`
	CreatedAt time.Time `db:"created_at"`
}

type Drop struct {
	ID               int        `db:"id"`
	DropDate         *time.Time `db:"drop_date"`
	ItemID           int        `db:"item_id"`
	BossID           *int       `db:"boss_id"`
	Quantity         int        `db:"quantity"`
	ParticipantCount int        `db:"participant_count"`
	DropStatus       string     `db:"drop_status"`
	FinanceStatus    string     `db:"finance_status"`
	Note             *string    `db:"note"`
	CreatedAt        time.Time  `db:"created_at"`
}

type Sale struct {
	ID         int        `db:"id"`
	DropID     int        `db:"drop_id"`
	SalePrice  float64    `db:"sale_price"`
	FeePercent float64    `db:"fee_percent"`
	FeeAmount  float64    `db:"fee_amount"`
	NetAmount  float64    `db:"net_amount"`
	SaleDate   *time.Time `db:"sale_date"`
	Platform   *string    `db:"platform"`
	CreatedAt  time.Time  `db:"created_at"`
}

type Share struct {
	ID         int       `db:"id"`
	DropID     int       `db:"drop_id"`
	PlayerID   int       `db:"player_id"`
	ShareType  string    `db:"share_type"`
	Percent    *float64  `db:"percent"`
	Amount     float64   `db:"amount"`
	PaidStatus string    `db:"paid_status"`
	Remark     *string   `db:"remark"`
	CreatedAt  time.Time `db:"created_at"`
}

// ShareWithPlayer is a Share joined with the owning player's display name.
type ShareWithPlayer struct {
	Share
	PlayerName string `db:"player_name"`
}

// DropDetails is a Drop with its related entities resolved.
type DropDetails struct {
	Drop
	Item   *Item
	Boss   *Boss
	Sale   *Sale
	Shares []ShareWithPlayer
}

// ShareStats are aggregates over the shares ledger, optionally scoped to one
// player. Always computed from the current rows, never cached.
type ShareStats struct {
	TotalAmount  float64
	UnpaidAmount float64
	PaidAmount   float64
}

// SaleStats are global aggregates over all sales.
type SaleStats struct {
	TotalNet   float64
	TotalDrops int
}

// Reconciliation compares a sale's net amount with the shares allocated
// against it. Remaining > 0 means under-allocated, < 0 over-allocated;
// neither state is rejected.
type Reconciliation struct {
	NetAmount float64
	Allocated float64
	Remaining float64
}
