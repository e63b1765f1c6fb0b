package dto

type ShareStatsDTO struct {
	TotalAmount  float64 `json:"total_amount" example:"142500"`
	UnpaidAmount float64 `json:"unpaid_amount" example:"35625"`
	PaidAmount   float64 `json:"paid_amount" example:"106875"`
}

type SaleStatsDTO struct {
	TotalNet   float64 `json:"total_net" example:"408500"`
	TotalDrops int     `json:"total_drops" example:"12"`
}

type AdminStatsDTO struct {
	Sales  SaleStatsDTO  `json:"sales"`
	Shares ShareStatsDTO `json:"shares"`
}

type DashboardResponseDTO struct {
	MyStats     ShareStatsDTO            `json:"my_stats"`
	RecentDrops []DropDetailsResponseDTO `json:"recent_drops"`
	Admin       *AdminStatsDTO           `json:"admin,omitempty"`
}

type OverviewResponseDTO struct {
	TotalSalePrice float64        `json:"total_sale_price" example:"430000"`
	TotalFee       float64        `json:"total_fee" example:"21500"`
	TotalNet       float64        `json:"total_net" example:"408500"`
	DropCount      int            `json:"drop_count" example:"12"`
	StatusCounts   map[string]int `json:"status_counts"`
}
